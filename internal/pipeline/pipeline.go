// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline drives the batch conversion of spreadsheet trees into
// mirrored CSV trees, one file at a time.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/sheetpipe/internal/discover"
	"github.com/pdiddy/sheetpipe/internal/ledger"
	"github.com/pdiddy/sheetpipe/pkg/types"
)

// ReportName is the YAML run summary written under the log directory
// when reporting is enabled.
const ReportName = "report.yaml"

// Parser decodes the first sheet of a spreadsheet file. It returns the
// table, the name of the engine that produced it, and an error only when
// no usable data could be read.
type Parser interface {
	Parse(path string) (*types.Table, string, error)
}

// Recorder persists per-file outcomes. The outcome catalog implements
// it; a nil Recorder disables cataloging.
type Recorder interface {
	Record(ctx context.Context, outcome types.Outcome) error
}

// Pipeline converts every spreadsheet under the source root. All
// collaborators are injected at construction and scoped to one run.
type Pipeline struct {
	cfg     types.PipelineConfig
	parser  Parser
	ledger  *ledger.Ledger
	catalog Recorder
	out     io.Writer
}

// New returns a Pipeline over the given collaborators. catalog may be
// nil.
func New(cfg types.PipelineConfig, parser Parser, led *ledger.Ledger, catalog Recorder, out io.Writer) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		parser:  parser,
		ledger:  led,
		catalog: catalog,
		out:     out,
	}
}

// Run discovers candidate files and processes each in sequence. Per-file
// errors are recorded as outcomes and never abort the run; only an
// unreadable source root (or context cancellation between files) does.
func (p *Pipeline) Run(ctx context.Context) (types.Summary, error) {
	files, err := discover.Files(p.cfg.SourceDir)
	if err != nil {
		return types.Summary{}, err
	}
	fmt.Fprintf(p.out, "Found %d spreadsheet files to process\n", len(files))

	for _, src := range files {
		if err := ctx.Err(); err != nil {
			return p.ledger.Summary(), err
		}
		p.processFile(ctx, src)
	}

	summary := p.ledger.Summary()
	p.printSummary(summary)

	if p.cfg.Report {
		if err := writeReport(filepath.Join(p.cfg.LogDir, ReportName), summary); err != nil {
			fmt.Fprintf(p.out, "warning: writing run report: %v\n", err)
		}
	}
	return summary, nil
}

// processFile converts one source file and records exactly one outcome
// for it.
func (p *Pipeline) processFile(ctx context.Context, src string) {
	outcome := p.convert(src)

	switch outcome.Status {
	case types.StatusSucceeded:
		p.ledger.RecordSucceeded()
	case types.StatusSkipped:
		p.ledger.RecordSkipped()
	case types.StatusFailed:
		if err := p.ledger.RecordFailed(src, outcome.Reason); err != nil {
			fmt.Fprintf(p.out, "warning: %v\n", err)
		}
	}

	if p.catalog != nil {
		if err := p.catalog.Record(ctx, outcome); err != nil {
			fmt.Fprintf(p.out, "warning: recording to catalog: %v\n", err)
		}
	}
}

// convert runs the per-file step sequence: map the destination, create
// its directory, apply the skip policy, parse with fallback, serialize.
func (p *Pipeline) convert(src string) types.Outcome {
	base := filepath.Base(src)

	dest, err := MapPath(p.cfg.SourceDir, p.cfg.OutputDir, src)
	if err != nil {
		fmt.Fprintf(p.out, "failed:  %s (%v)\n", base, err)
		return failure(src, "", err.Error())
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		fmt.Fprintf(p.out, "failed:  %s (%v)\n", base, err)
		return failure(src, dest, err.Error())
	}

	// Re-running over a partially completed output tree resumes where
	// the previous run stopped.
	if _, err := os.Stat(dest); err == nil {
		fmt.Fprintf(p.out, "skipped: %s (already exists)\n", base)
		return types.Outcome{
			Status:     types.StatusSkipped,
			SourcePath: src,
			DestPath:   dest,
			Reason:     "already exists",
		}
	}

	fmt.Fprintf(p.out, "processing: %s\n", base)

	table, engine, err := p.parser.Parse(src)
	if err != nil {
		fmt.Fprintf(p.out, "failed:  %s (%v)\n", base, err)
		return failure(src, dest, err.Error())
	}

	if err := WriteCSV(dest, table); err != nil {
		// Remove the partial file so a re-run retries instead of
		// skipping a truncated output.
		os.Remove(dest)
		fmt.Fprintf(p.out, "failed:  %s (%v)\n", base, err)
		return failure(src, dest, err.Error())
	}

	fmt.Fprintf(p.out, "converted: %s (%d rows, via %s)\n", base, table.RowCount(), engine)
	return types.Outcome{
		Status:     types.StatusSucceeded,
		SourcePath: src,
		DestPath:   dest,
		RowCount:   table.RowCount(),
	}
}

func failure(src, dest, reason string) types.Outcome {
	return types.Outcome{
		Status:     types.StatusFailed,
		SourcePath: src,
		DestPath:   dest,
		Reason:     reason,
	}
}

func (p *Pipeline) printSummary(s types.Summary) {
	banner := strings.Repeat("=", 50)
	fmt.Fprintln(p.out, banner)
	fmt.Fprintln(p.out, "CONVERSION COMPLETE")
	fmt.Fprintln(p.out, banner)
	fmt.Fprintf(p.out, "Total files: %d\n", s.Total)
	fmt.Fprintf(p.out, "Successfully converted: %d\n", s.Succeeded)
	fmt.Fprintf(p.out, "Failed: %d\n", s.Failed)
	fmt.Fprintf(p.out, "Skipped (already exist): %d\n", s.Skipped)
	fmt.Fprintln(p.out, banner)
	fmt.Fprintf(p.out, "Output folder: %s\n", s.OutputDir)
	fmt.Fprintf(p.out, "Log folder: %s\n", s.LogDir)
}

func writeReport(path string, s types.Summary) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
