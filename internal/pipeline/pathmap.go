// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"
)

// PathError reports a discovered file that does not resolve under the
// source root. It should not occur when discovery is rooted there.
type PathError struct {
	Path string
	Root string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("path %s is not under source root %s", e.Path, e.Root)
}

// MapPath computes the destination for filePath: the output root, the
// file's directory relative to the source root, and the stem with a .csv
// extension. Pure and deterministic.
func MapPath(sourceRoot, outputRoot, filePath string) (string, error) {
	rel, err := filepath.Rel(sourceRoot, filePath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &PathError{Path: filePath, Root: sourceRoot}
	}
	stem := strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))
	return filepath.Join(outputRoot, filepath.Dir(rel), stem+".csv"), nil
}
