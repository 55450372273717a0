// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/sheetpipe/internal/catalog"
	"github.com/pdiddy/sheetpipe/pkg/types"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Inspect cataloged conversion outcomes",
	Long: `Report queries the outcome catalog written by runs started with
--catalog. It lists per-file outcomes, optionally filtered by status,
and prints aggregate counts.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().String("log-dir", "", "log directory holding the catalog (default: logs)")
	reportCmd.Flags().String("status", "", "filter by status: succeeded, failed, or skipped")
	reportCmd.Flags().Bool("json", false, "output entries as JSON")
	reportCmd.Flags().String("export", "", "export entries to the given YAML file")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	logDir, _ := cmd.Flags().GetString("log-dir")
	if logDir == "" {
		logDir = viper.GetString("log_dir")
	}
	if logDir == "" {
		logDir = "logs"
	}

	if !catalog.Exists(logDir) {
		return fmt.Errorf("no catalog found under %s: run a conversion with --catalog first", logDir)
	}

	status, err := statusFromFlag(cmd)
	if err != nil {
		return err
	}

	store, err := catalog.NewStore(logDir)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()

	if exportPath, _ := cmd.Flags().GetString("export"); exportPath != "" {
		return store.ExportYAML(ctx, exportPath, status)
	}

	entries, err := store.List(ctx, status)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No cataloged outcomes found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-10s  %-6s  %-50s  %s\n", "Status", "Rows", "Source", "Reason")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))
	for _, e := range entries {
		source := e.SourcePath
		if len(source) > 50 {
			source = "..." + source[len(source)-47:]
		}
		fmt.Fprintf(os.Stdout, "%-10s  %-6d  %-50s  %s\n", e.Status, e.RowCount, source, e.Reason)
	}

	summary, err := store.Summarize(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "\n%d total: %d succeeded, %d failed, %d skipped\n",
		summary.Total, summary.Succeeded, summary.Failed, summary.Skipped)
	return nil
}

func statusFromFlag(cmd *cobra.Command) (types.OutcomeStatus, error) {
	raw, _ := cmd.Flags().GetString("status")
	switch types.OutcomeStatus(raw) {
	case "", types.StatusSucceeded, types.StatusFailed, types.StatusSkipped:
		return types.OutcomeStatus(raw), nil
	default:
		return "", fmt.Errorf("unknown status %q: use succeeded, failed, or skipped", raw)
	}
}
