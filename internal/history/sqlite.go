package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrEntryNotFound is returned when no history entry matches the lookup.
var ErrEntryNotFound = errors.New("history entry not found")

// SQLiteStore implements the Store interface using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore creates a new SQLite history store.
// It creates the database file and schema if they don't exist.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// scanner is an interface for sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanEntry scans a row into an Entry struct.
func scanEntry(s scanner) (*Entry, error) {
	entry := &Entry{}
	err := s.Scan(
		&entry.ID, &entry.ReportID, &entry.ReportType,
		&entry.Gender, &entry.Age, &entry.TotalTests, &entry.AbnormalCount,
		&entry.SuspicionScore, &entry.Validated, &entry.Payload, &entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// createSchema creates the database tables and indexes.
func createSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS report_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		report_id TEXT NOT NULL UNIQUE,
		report_type TEXT NOT NULL,
		gender TEXT NOT NULL,
		age INTEGER NOT NULL,
		total_tests INTEGER NOT NULL DEFAULT 0,
		abnormal_count INTEGER NOT NULL DEFAULT 0,
		suspicion_score INTEGER NOT NULL DEFAULT 0,
		validated INTEGER NOT NULL DEFAULT 1,
		payload BLOB,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_history_report_type ON report_history(report_type);
	CREATE INDEX IF NOT EXISTS idx_history_created_at ON report_history(created_at);
	`

	_, err := db.Exec(schema)
	return err
}

// Save records a processed report, replacing any earlier record with the
// same report ID.
func (s *SQLiteStore) Save(ctx context.Context, entry *Entry) error {
	if entry.ReportID == "" {
		return fmt.Errorf("saving history entry: report ID is required")
	}

	now := time.Now()

	var existingID int64
	err := s.db.QueryRowContext(ctx,
		"SELECT id FROM report_history WHERE report_id = ?",
		entry.ReportID,
	).Scan(&existingID)

	if err == nil {
		entry.ID = existingID
		_, err = s.db.ExecContext(ctx, `
			UPDATE report_history SET
				report_type = ?,
				gender = ?,
				age = ?,
				total_tests = ?,
				abnormal_count = ?,
				suspicion_score = ?,
				validated = ?,
				payload = ?
			WHERE id = ?
		`,
			entry.ReportType,
			entry.Gender,
			entry.Age,
			entry.TotalTests,
			entry.AbnormalCount,
			entry.SuspicionScore,
			entry.Validated,
			entry.Payload,
			existingID,
		)
		return err
	}

	if err != sql.ErrNoRows {
		return fmt.Errorf("failed to check existing: %w", err)
	}

	entry.CreatedAt = now

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO report_history (
			report_id, report_type, gender, age,
			total_tests, abnormal_count, suspicion_score, validated,
			payload, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		entry.ReportID,
		entry.ReportType,
		entry.Gender,
		entry.Age,
		entry.TotalTests,
		entry.AbnormalCount,
		entry.SuspicionScore,
		entry.Validated,
		entry.Payload,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert: %w", err)
	}

	entry.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	return nil
}

// Get retrieves the history entry for a report ID.
func (s *SQLiteStore) Get(ctx context.Context, reportID string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, report_id, report_type, gender, age,
		       total_tests, abnormal_count, suspicion_score, validated,
		       payload, created_at
		FROM report_history
		WHERE report_id = ?
	`, reportID)

	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	return entry, nil
}

// List returns history entries, most recent first, with pagination.
func (s *SQLiteStore) List(ctx context.Context, limit, offset int) ([]*Entry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, report_id, report_type, gender, age,
		       total_tests, abnormal_count, suspicion_score, validated,
		       payload, created_at
		FROM report_history
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Count returns the total number of history entries.
func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM report_history").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return count, nil
}

// Delete removes a history entry by ID.
func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM report_history WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// ExportJSON exports all history to a JSON writer.
func (s *SQLiteStore) ExportJSON(ctx context.Context, writer io.Writer) error {
	entries, err := s.List(ctx, 1<<31-1, 0)
	if err != nil {
		return fmt.Errorf("failed to load entries for export: %w", err)
	}

	export := Export{
		Version:    "1.0",
		ExportedAt: time.Now().UTC(),
		Count:      len(entries),
		Entries:    entries,
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(export)
}

// ImportJSON imports history from a JSON reader. Entries whose report ID
// already exists are skipped, not overwritten.
func (s *SQLiteStore) ImportJSON(ctx context.Context, reader io.Reader) (imported int, skipped int, err error) {
	var export Export
	if err := json.NewDecoder(reader).Decode(&export); err != nil {
		return 0, 0, fmt.Errorf("failed to decode import: %w", err)
	}

	for _, entry := range export.Entries {
		if entry.ReportID == "" {
			skipped++
			continue
		}
		if _, err := s.Get(ctx, entry.ReportID); err == nil {
			skipped++
			continue
		}
		entry.ID = 0
		if err := s.Save(ctx, entry); err != nil {
			skipped++
			continue
		}
		imported++
	}

	return imported, skipped, nil
}

// Close closes the store and releases resources.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
