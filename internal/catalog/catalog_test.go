// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/sheetpipe/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	s.now = func() time.Time {
		return time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	}
	return s
}

func TestRecordAndList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, types.Outcome{
		Status:     types.StatusSucceeded,
		SourcePath: "/src/b.xlsx",
		DestPath:   "/out/b.csv",
		RowCount:   12,
	}))
	require.NoError(t, s.Record(ctx, types.Outcome{
		Status:     types.StatusFailed,
		SourcePath: "/src/a.xls",
		Reason:     "No data could be read from file",
	}))

	entries, err := s.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Ordered by source path.
	assert.Equal(t, "/src/a.xls", entries[0].SourcePath)
	assert.Equal(t, types.StatusFailed, entries[0].Status)
	assert.Equal(t, "No data could be read from file", entries[0].Reason)
	assert.Equal(t, "/src/b.xlsx", entries[1].SourcePath)
	assert.Equal(t, 12, entries[1].RowCount)
	assert.Equal(t, "2026-03-14T09:26:53Z", entries[1].RecordedAt)
}

func TestListFiltersByStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, types.Outcome{Status: types.StatusSucceeded, SourcePath: "/src/ok.xlsx"}))
	require.NoError(t, s.Record(ctx, types.Outcome{Status: types.StatusSkipped, SourcePath: "/src/skip.xlsx", Reason: "already exists"}))

	entries, err := s.List(ctx, types.StatusSkipped)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "/src/skip.xlsx", entries[0].SourcePath)
}

func TestRecordUpsertsOnRerun(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, types.Outcome{
		Status:     types.StatusFailed,
		SourcePath: "/src/flaky.xls",
		Reason:     "No data could be read from file",
	}))
	// A later run converts the same file.
	require.NoError(t, s.Record(ctx, types.Outcome{
		Status:     types.StatusSucceeded,
		SourcePath: "/src/flaky.xls",
		DestPath:   "/out/flaky.csv",
		RowCount:   3,
	}))

	entries, err := s.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, types.StatusSucceeded, entries[0].Status)
	assert.Equal(t, 3, entries[0].RowCount)
	assert.Empty(t, entries[0].Reason)
}

func TestSummarize(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i, status := range []types.OutcomeStatus{
		types.StatusSucceeded, types.StatusSucceeded,
		types.StatusFailed, types.StatusSkipped,
	} {
		require.NoError(t, s.Record(ctx, types.Outcome{
			Status:     status,
			SourcePath: filepath.Join("/src", string(rune('a'+i))+".xlsx"),
		}))
	}

	summary, err := s.Summarize(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.Skipped)
}

func TestExportYAML(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, types.Outcome{
		Status:     types.StatusFailed,
		SourcePath: "/src/bad.xls",
		Reason:     "No data could be read from file",
	}))

	path := filepath.Join(t.TempDir(), "export.yaml")
	require.NoError(t, s.ExportYAML(ctx, path, types.StatusFailed))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "source_path: /src/bad.xls")
	assert.Contains(t, string(data), "status: failed")
}
