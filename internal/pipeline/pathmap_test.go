// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestMapPath(t *testing.T) {
	tests := []struct {
		name     string
		filePath string
		want     string
	}{
		{
			name:     "nested file mirrors relative directory",
			filePath: filepath.Join("/src", "a", "b", "c.xlsx"),
			want:     filepath.Join("/out", "a", "b", "c.csv"),
		},
		{
			name:     "file at root",
			filePath: filepath.Join("/src", "top.xls"),
			want:     filepath.Join("/out", "top.csv"),
		},
		{
			name:     "extension replaced case preserved in stem",
			filePath: filepath.Join("/src", "Q1", "Totals.XLSM"),
			want:     filepath.Join("/out", "Q1", "Totals.csv"),
		},
		{
			name:     "dotted stem keeps inner dots",
			filePath: filepath.Join("/src", "v1.2.final.xlsb"),
			want:     filepath.Join("/out", "v1.2.final.csv"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MapPath("/src", "/out", tt.filePath)
			if err != nil {
				t.Fatalf("MapPath: %v", err)
			}
			if got != tt.want {
				t.Errorf("MapPath = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMapPathOutsideRoot(t *testing.T) {
	for _, path := range []string{
		filepath.Join("/elsewhere", "x.xlsx"),
		"/src",
	} {
		_, err := MapPath("/src/data", "/out", path)
		if err == nil {
			t.Fatalf("MapPath(%q): expected error", path)
		}
		var pathErr *PathError
		if !errors.As(err, &pathErr) {
			t.Errorf("MapPath(%q): error %v is not a *PathError", path, err)
		}
	}
}
