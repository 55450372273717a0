// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pdiddy/sheetpipe/pkg/types"
)

func TestWriteCSV(t *testing.T) {
	tests := []struct {
		name  string
		table *types.Table
		want  string
	}{
		{
			name: "header row first",
			table: &types.Table{
				Header: []string{"name", "qty"},
				Rows:   [][]string{{"alpha", "1"}, {"beta", "2"}},
			},
			want: "name,qty\nalpha,1\nbeta,2\n",
		},
		{
			name: "no header when table has no column labels",
			table: &types.Table{
				Rows: [][]string{{"raw", "cells"}, {"more", "cells"}},
			},
			want: "raw,cells\nmore,cells\n",
		},
		{
			name: "fields with commas and quotes are escaped",
			table: &types.Table{
				Header: []string{"note"},
				Rows:   [][]string{{`a, "quoted" value`}},
			},
			want: "note\n\"a, \"\"quoted\"\" value\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out.csv")
			if err := WriteCSV(path, tt.table); err != nil {
				t.Fatalf("WriteCSV: %v", err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != tt.want {
				t.Errorf("WriteCSV output = %q, want %q", data, tt.want)
			}
		})
	}
}

func TestWriteCSVUncreatablePath(t *testing.T) {
	err := WriteCSV(filepath.Join(t.TempDir(), "missing-dir", "out.csv"), &types.Table{Rows: [][]string{{"x"}}})
	if err == nil {
		t.Fatal("expected error for uncreatable destination")
	}
}
