// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ledger accumulates per-file conversion outcomes and keeps the
// durable failure log.
package ledger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pdiddy/sheetpipe/pkg/types"
)

// FailureLogName is the failure log file created under the log directory.
const FailureLogName = "failed_files.txt"

// Ledger counts run outcomes and appends one durable record per failure.
// It is touched only by the pipeline's single processing loop, so it
// carries no locking.
type Ledger struct {
	total     int
	succeeded int
	failed    int
	skipped   int

	outputDir string
	logDir    string

	// now is replaceable in tests.
	now func() time.Time
}

// New returns a Ledger writing failure records under logDir. The output
// directory is carried only for the summary.
func New(outputDir, logDir string) *Ledger {
	return &Ledger{
		outputDir: outputDir,
		logDir:    logDir,
		now:       time.Now,
	}
}

// RecordSucceeded counts one converted file.
func (l *Ledger) RecordSucceeded() {
	l.total++
	l.succeeded++
}

// RecordSkipped counts one file left untouched because its output
// already exists.
func (l *Ledger) RecordSkipped() {
	l.total++
	l.skipped++
}

// RecordFailed counts one failed file and appends a record to the
// failure log. The write is synced before returning so a crash mid-run
// preserves earlier records. A failure to append is returned but the
// counter is updated regardless.
func (l *Ledger) RecordFailed(sourcePath, reason string) error {
	l.total++
	l.failed++

	line := fmt.Sprintf("%s\t%s\t%s\n", l.now().Format(time.RFC3339), sourcePath, reason)
	return l.appendFailure(line)
}

func (l *Ledger) appendFailure(line string) error {
	path := filepath.Join(l.logDir, FailureLogName)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening failure log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("appending failure record: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("syncing failure log: %w", err)
	}
	return nil
}

// Summary returns the counters as of the call, plus the configured
// locations.
func (l *Ledger) Summary() types.Summary {
	return types.Summary{
		Total:     l.total,
		Succeeded: l.succeeded,
		Failed:    l.failed,
		Skipped:   l.skipped,
		OutputDir: l.outputDir,
		LogDir:    l.logDir,
	}
}
