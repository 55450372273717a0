// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package discover

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, root string, parts ...string) string {
	t.Helper()
	path := filepath.Join(append([]string{root}, parts...)...)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestIsSpreadsheet(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"report.xls", true},
		{"report.xlsx", true},
		{"report.xlsm", true},
		{"report.xlsb", true},
		{"REPORT.XLSX", true},
		{"Report.Xls", true},
		{"report.csv", false},
		{"report.xlsx.bak", false},
		{"xlsx", false},
		{"notes.txt", false},
	}
	for _, tt := range tests {
		if got := IsSpreadsheet(tt.path); got != tt.want {
			t.Errorf("IsSpreadsheet(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestFiles(t *testing.T) {
	root := t.TempDir()

	b := writeFile(t, root, "reports", "b.xlsx")
	a := writeFile(t, root, "reports", "a.xls")
	deep := writeFile(t, root, "archive", "2023", "q4.XLSM")
	writeFile(t, root, "reports", "readme.txt")
	writeFile(t, root, "data.csv")

	got, err := Files(root)
	if err != nil {
		t.Fatalf("Files: %v", err)
	}

	want := []string{deep, a, b}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Files = %v, want %v", got, want)
	}
}

func TestFilesEmptyTree(t *testing.T) {
	got, err := Files(t.TempDir())
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Files = %v, want none", got)
	}
}

func TestFilesMissingRoot(t *testing.T) {
	_, err := Files(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatal("expected error for missing source root")
	}
}
