// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data structures shared across pipeline stages.
package types

// PipelineConfig holds the locations and switches for one conversion run.
type PipelineConfig struct {
	// SourceDir is the root directory scanned for spreadsheet files.
	// It must exist and be readable; a missing source root aborts the run.
	SourceDir string `json:"source_dir" yaml:"source_dir"`

	// OutputDir is the root the converted CSV tree is written under.
	// Created if absent. The relative layout of SourceDir is mirrored.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// LogDir is the directory for the run log, the failure log, and the
	// optional outcome catalog. Created if absent.
	LogDir string `json:"log_dir" yaml:"log_dir"`

	// Catalog enables recording per-file outcomes into a SQLite catalog
	// under LogDir, queryable with the report command.
	Catalog bool `json:"catalog" yaml:"catalog"`

	// Report enables writing a YAML run summary under LogDir after the run.
	Report bool `json:"report" yaml:"report"`
}
