// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/sheetpipe/pkg/types"
)

// ExportYAML writes the cataloged entries matching status to path as
// YAML. An empty status exports everything.
func (s *Store) ExportYAML(ctx context.Context, path string, status types.OutcomeStatus) error {
	entries, err := s.List(ctx, status)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
