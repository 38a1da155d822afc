// Package history provides a standalone SQLite-backed record of processed
// reports for deployments running without PostgreSQL, such as the CLI.
package history

import (
	"context"
	"io"
	"time"
)

// Entry is one processed report as recorded in the history store. Payload
// carries the full parsed report and validation outcome as JSON; the other
// columns are denormalized for listing without decoding.
type Entry struct {
	ID             int64     `json:"id,omitempty"`
	ReportID       string    `json:"report_id"`
	ReportType     string    `json:"report_type"`
	Gender         string    `json:"gender"`
	Age            int       `json:"age"`
	TotalTests     int       `json:"total_tests"`
	AbnormalCount  int       `json:"abnormal_count"`
	SuspicionScore int       `json:"suspicion_score"`
	Validated      bool      `json:"validated"`
	Payload        []byte    `json:"payload,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Store defines the interface for history storage operations.
type Store interface {
	// Save records a processed report. Saving the same report ID again
	// replaces the earlier record.
	Save(ctx context.Context, entry *Entry) error

	// Get retrieves the history entry for a report ID.
	Get(ctx context.Context, reportID string) (*Entry, error)

	// List returns history entries, most recent first, with pagination.
	List(ctx context.Context, limit, offset int) ([]*Entry, error)

	// Count returns the total number of history entries.
	Count(ctx context.Context) (int64, error)

	// Delete removes a history entry by ID.
	Delete(ctx context.Context, id int64) error

	// ExportJSON exports all history to a JSON writer.
	ExportJSON(ctx context.Context, writer io.Writer) error

	// ImportJSON imports history from a JSON reader.
	// Returns the number of imported and skipped entries.
	ImportJSON(ctx context.Context, reader io.Reader) (imported int, skipped int, err error)

	// Close closes the store and releases resources.
	Close() error
}

// Export represents the JSON export format.
type Export struct {
	Version    string    `json:"version"`
	ExportedAt time.Time `json:"exported_at"`
	Count      int       `json:"count"`
	Entries    []*Entry  `json:"entries"`
}
