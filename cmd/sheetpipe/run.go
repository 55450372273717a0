// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/sheetpipe/internal/catalog"
	"github.com/pdiddy/sheetpipe/internal/ledger"
	"github.com/pdiddy/sheetpipe/internal/pipeline"
	"github.com/pdiddy/sheetpipe/internal/sheet"
	"github.com/pdiddy/sheetpipe/pkg/types"
)

// runLogName is the human-readable run log written under the log
// directory, alongside console output.
const runLogName = "conversion.log"

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Convert all spreadsheets under the source directory",
	Long: `Run discovers every .xls, .xlsx, .xlsm, and .xlsb file under the source
directory and converts the first sheet of each to a CSV file at the
mirrored path under the output directory. Existing outputs are skipped,
so interrupted runs can be resumed. Failures are appended to
failed_files.txt under the log directory and never abort the run.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().String("source-dir", "", "source directory to scan for spreadsheets (required unless set in config)")
	runCmd.Flags().String("output-dir", "", "output directory for converted CSV files (default: output)")
	runCmd.Flags().String("log-dir", "", "directory for run log, failure log, and catalog (default: logs)")
	runCmd.Flags().Bool("catalog", false, "record per-file outcomes into a SQLite catalog under the log directory")
	runCmd.Flags().Bool("report", false, "write a YAML run summary under the log directory")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig(cmd)

	if cfg.SourceDir == "" {
		return fmt.Errorf("source directory required: pass --source-dir or set source_dir in the config file")
	}
	if info, err := os.Stat(cfg.SourceDir); err != nil || !info.IsDir() {
		return fmt.Errorf("source directory %s does not exist or is not a directory", cfg.SourceDir)
	}

	for _, dir := range []string{cfg.OutputDir, cfg.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	logFile, err := os.OpenFile(filepath.Join(cfg.LogDir, runLogName),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer logFile.Close()
	out := io.MultiWriter(os.Stdout, logFile)

	var recorder pipeline.Recorder
	if cfg.Catalog {
		store, err := catalog.NewStore(cfg.LogDir)
		if err != nil {
			return err
		}
		defer store.Close()
		recorder = store
	}

	led := ledger.New(cfg.OutputDir, cfg.LogDir)
	p := pipeline.New(cfg, sheet.NewReader(), led, recorder, out)

	// Per-file failures are informational: they show up in the logs and
	// the summary, not in the exit code.
	_, err = p.Run(context.Background())
	return err
}

// pipelineConfig assembles the run configuration from flags, falling
// back to config-file values for anything not set on the command line.
func pipelineConfig(cmd *cobra.Command) types.PipelineConfig {
	sourceDir, _ := cmd.Flags().GetString("source-dir")
	if sourceDir == "" {
		sourceDir = viper.GetString("source_dir")
	}

	outputDir, _ := cmd.Flags().GetString("output-dir")
	if outputDir == "" {
		outputDir = viper.GetString("output_dir")
	}
	if outputDir == "" {
		outputDir = "output"
	}

	logDir, _ := cmd.Flags().GetString("log-dir")
	if logDir == "" {
		logDir = viper.GetString("log_dir")
	}
	if logDir == "" {
		logDir = "logs"
	}

	useCatalog, _ := cmd.Flags().GetBool("catalog")
	if !cmd.Flags().Changed("catalog") {
		useCatalog = viper.GetBool("catalog")
	}
	report, _ := cmd.Flags().GetBool("report")
	if !cmd.Flags().Changed("report") {
		report = viper.GetBool("report")
	}

	return types.PipelineConfig{
		SourceDir: sourceDir,
		OutputDir: outputDir,
		LogDir:    logDir,
		Catalog:   useCatalog,
		Report:    report,
	}
}
