// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package discover enumerates candidate spreadsheet files under a source
// root.
package discover

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// spreadsheetExts is the recognized set of spreadsheet extensions,
// compared case-insensitively.
var spreadsheetExts = map[string]bool{
	".xls":  true,
	".xlsx": true,
	".xlsm": true,
	".xlsb": true,
}

// IsSpreadsheet reports whether path carries a recognized spreadsheet
// extension.
func IsSpreadsheet(path string) bool {
	return spreadsheetExts[strings.ToLower(filepath.Ext(path))]
}

// Files walks sourceRoot recursively and returns every file with a
// recognized spreadsheet extension, sorted lexicographically so runs are
// reproducible. An unreadable root is an error; unreadable subtrees are
// also surfaced since a partial walk would silently under-count the run.
func Files(sourceRoot string) ([]string, error) {
	var found []string
	err := filepath.WalkDir(sourceRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if IsSpreadsheet(path) {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", sourceRoot, err)
	}
	sort.Strings(found)
	return found, nil
}
