// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OutcomeStatus classifies the result of converting one source file.
type OutcomeStatus string

const (
	StatusSucceeded OutcomeStatus = "succeeded"
	StatusFailed    OutcomeStatus = "failed"
	StatusSkipped   OutcomeStatus = "skipped"
)

// Outcome is the per-file conversion result. Exactly one Outcome is
// produced for every discovered source file.
type Outcome struct {
	Status     OutcomeStatus `json:"status" yaml:"status"`
	SourcePath string        `json:"source_path" yaml:"source_path"`
	DestPath   string        `json:"dest_path,omitempty" yaml:"dest_path,omitempty"`

	// RowCount is the number of data rows written; set only on success.
	RowCount int `json:"row_count,omitempty" yaml:"row_count,omitempty"`

	// Reason explains a failure or a skip.
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Summary holds the aggregate counts of a completed run together with the
// configured output locations, for reporting.
type Summary struct {
	Total     int    `json:"total" yaml:"total"`
	Succeeded int    `json:"succeeded" yaml:"succeeded"`
	Failed    int    `json:"failed" yaml:"failed"`
	Skipped   int    `json:"skipped" yaml:"skipped"`
	OutputDir string `json:"output_dir" yaml:"output_dir"`
	LogDir    string `json:"log_dir" yaml:"log_dir"`
}

// HasFailures reports whether any file failed conversion.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}
