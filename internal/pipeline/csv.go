// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/pdiddy/sheetpipe/pkg/types"
)

// WriteCSV serializes a table to path as UTF-8 comma-separated values.
// The header row is emitted first when the table carries column labels.
func WriteCSV(path string, t *types.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if t.Header != nil {
		if err := w.Write(t.Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}
