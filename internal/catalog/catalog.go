// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists per-file conversion outcomes in a SQLite
// database under the log directory, so past runs can be inspected with
// the report command.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/sheetpipe/pkg/types"
)

// dbFile is the catalog database file name under the log directory.
const dbFile = "catalog.db"

// Store manages the outcome catalog database.
type Store struct {
	db *sql.DB

	// now is replaceable in tests.
	now func() time.Time
}

// Entry is one cataloged conversion outcome.
type Entry struct {
	SourcePath string              `json:"source_path" yaml:"source_path"`
	DestPath   string              `json:"dest_path,omitempty" yaml:"dest_path,omitempty"`
	Status     types.OutcomeStatus `json:"status" yaml:"status"`
	RowCount   int                 `json:"row_count,omitempty" yaml:"row_count,omitempty"`
	Reason     string              `json:"reason,omitempty" yaml:"reason,omitempty"`
	RecordedAt string              `json:"recorded_at" yaml:"recorded_at"`
}

// Exists reports whether a catalog database is present under logDir.
func Exists(logDir string) bool {
	_, err := os.Stat(filepath.Join(logDir, dbFile))
	return err == nil
}

// NewStore opens or creates the catalog database at logDir/catalog.db,
// creating the schema if it does not exist.
func NewStore(logDir string) (*Store, error) {
	dbPath := filepath.Join(logDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating catalog schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS conversions (
		source_path TEXT PRIMARY KEY,
		dest_path   TEXT,
		status      TEXT NOT NULL,
		row_count   INTEGER NOT NULL DEFAULT 0,
		reason      TEXT,
		recorded_at TEXT NOT NULL
	)`)
	return err
}

// Record upserts one outcome keyed by source path, so a re-run updates a
// file's entry in place rather than duplicating it.
func (s *Store) Record(ctx context.Context, outcome types.Outcome) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO conversions
		(source_path, dest_path, status, row_count, reason, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(source_path) DO UPDATE SET
			dest_path = excluded.dest_path,
			status = excluded.status,
			row_count = excluded.row_count,
			reason = excluded.reason,
			recorded_at = excluded.recorded_at`,
		outcome.SourcePath, outcome.DestPath, string(outcome.Status),
		outcome.RowCount, outcome.Reason, s.now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("recording outcome for %s: %w", outcome.SourcePath, err)
	}
	return nil
}

// List returns cataloged entries ordered by source path, optionally
// filtered to one status. An empty status returns everything.
func (s *Store) List(ctx context.Context, status types.OutcomeStatus) ([]Entry, error) {
	query := `SELECT source_path, dest_path, status, row_count, reason, recorded_at
		FROM conversions`
	args := []any{}
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, string(status))
	}
	query += ` ORDER BY source_path`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var dest, reason sql.NullString
		if err := rows.Scan(&e.SourcePath, &dest, &e.Status, &e.RowCount, &reason, &e.RecordedAt); err != nil {
			return nil, fmt.Errorf("scanning catalog row: %w", err)
		}
		e.DestPath = dest.String
		e.Reason = reason.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Summarize returns aggregate counts over the cataloged outcomes.
func (s *Store) Summarize(ctx context.Context) (types.Summary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM conversions GROUP BY status`)
	if err != nil {
		return types.Summary{}, fmt.Errorf("summarizing catalog: %w", err)
	}
	defer rows.Close()

	var summary types.Summary
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return types.Summary{}, fmt.Errorf("scanning catalog count: %w", err)
		}
		switch types.OutcomeStatus(status) {
		case types.StatusSucceeded:
			summary.Succeeded = count
		case types.StatusFailed:
			summary.Failed = count
		case types.StatusSkipped:
			summary.Skipped = count
		}
		summary.Total += count
	}
	return summary, rows.Err()
}
