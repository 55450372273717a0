// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sheet decodes the first worksheet of a spreadsheet file into a
// tabular grid. Files in the wild share extensions but not internal
// encodings, so decoding runs through an ordered list of strategies and
// returns the first non-empty result.
package sheet

import (
	"errors"

	"github.com/pdiddy/sheetpipe/pkg/types"
)

// ErrNoData is returned when every strategy, including the final
// no-header attempt, fails or yields an empty grid.
var ErrNoData = errors.New("No data could be read from file")

// Strategy is one decode engine. Read returns the raw cell grid of the
// first sheet; header interpretation is applied by the Reader.
type Strategy struct {
	Name string
	Read func(path string) ([][]string, error)
}

// Reader tries strategies in order and short-circuits on the first
// non-empty table. A strategy error and an empty result are equivalent:
// both advance to the next strategy.
type Reader struct {
	strategies []Strategy
	final      Strategy
}

// NewReader returns a Reader with the default strategy order: the legacy
// BIFF decoder, the OOXML decoder, then format sniffing. The sniffing
// strategy doubles as the final no-header attempt.
func NewReader() *Reader {
	sniff := Strategy{Name: "sniff", Read: sniffRows}
	return &Reader{
		strategies: []Strategy{
			{Name: "legacy", Read: legacyRows},
			{Name: "ooxml", Read: ooxmlRows},
			sniff,
		},
		final: sniff,
	}
}

// NewReaderWith returns a Reader over the given strategies, with final
// used for the no-header fallback. Used by tests and by callers that
// need a custom engine order.
func NewReaderWith(strategies []Strategy, final Strategy) *Reader {
	return &Reader{strategies: strategies, final: final}
}

// Parse decodes the first sheet of the file at path. It returns the
// table, the name of the winning strategy, and ErrNoData when nothing
// usable could be read. Individual strategy failures are trials, never
// surfaced to the caller.
func (r *Reader) Parse(path string) (*types.Table, string, error) {
	for _, s := range r.strategies {
		rows, err := s.Read(path)
		if err != nil {
			continue
		}
		t := shape(rows, true)
		if !t.Empty() {
			return t, s.Name, nil
		}
	}

	// Last resort: treat row 1 as data rather than column names. This
	// recovers files whose only content would otherwise be consumed as
	// a header.
	rows, err := r.final.Read(path)
	if err == nil {
		t := shape(rows, false)
		if !t.Empty() {
			return t, r.final.Name + " (no header)", nil
		}
	}
	return nil, "", ErrNoData
}

// shape applies header interpretation to a raw grid. With header set,
// the first row becomes the column labels and the rest the data rows.
func shape(rows [][]string, header bool) *types.Table {
	if len(rows) == 0 {
		return &types.Table{}
	}
	if !header {
		return &types.Table{Rows: rows}
	}
	return &types.Table{Header: rows[0], Rows: rows[1:]}
}
