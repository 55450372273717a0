// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Table is the rectangular grid decoded from the first sheet of a
// spreadsheet. Header is nil when the sheet was read without header
// interpretation, in which case every source row appears in Rows.
type Table struct {
	Header []string
	Rows   [][]string
}

// Empty reports whether the table carries no data rows. A table holding
// only a header row is empty.
func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

// RowCount returns the number of data rows (the header is not counted).
func (t *Table) RowCount() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}
