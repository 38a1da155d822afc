// Package repository handles persistence of parsed reports and their
// validation outcomes in PostgreSQL.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/lab-insight-server/internal/domain"
)

// ErrReportNotFound is returned when no stored report matches the ID.
var ErrReportNotFound = errors.New("report not found")

// StoredReport combines a parsed report with its validation outcome as
// persisted for later retrieval.
type StoredReport struct {
	Report     domain.ParsedReport     `json:"report"`
	Validation domain.ValidationReport `json:"validation"`
}

// ReportRepository handles report data persistence
type ReportRepository struct {
	db  *pgxpool.Pool
	log *logrus.Logger
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *pgxpool.Pool, logger *logrus.Logger) *ReportRepository {
	return &ReportRepository{
		db:  db,
		log: logger,
	}
}

// Create inserts a parsed report and its validation outcome
func (r *ReportRepository) Create(ctx context.Context, report *domain.ParsedReport, validation *domain.ValidationReport) error {
	results, err := json.Marshal(report.AllResults)
	if err != nil {
		return fmt.Errorf("marshaling results: %w", err)
	}
	findings, err := json.Marshal(validation.Findings)
	if err != nil {
		return fmt.Errorf("marshaling findings: %w", err)
	}

	query := `
		INSERT INTO reports (
			id, created_at, gender, age, report_type, total_tests,
			results, suspicion_score, validated, findings
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)`

	_, err = r.db.Exec(ctx, query,
		report.ID,
		report.CreatedAt,
		report.PatientInfo.Gender.String(),
		report.PatientInfo.Age,
		report.ReportType,
		report.TotalTests,
		results,
		validation.SuspicionScore,
		validation.Validated,
		findings,
	)

	if err != nil {
		r.log.WithFields(logrus.Fields{
			"report_id":   report.ID,
			"report_type": report.ReportType,
			"error":       err,
		}).Error("Failed to create report")
		return fmt.Errorf("creating report: %w", err)
	}

	r.log.WithFields(logrus.Fields{
		"report_id":   report.ID,
		"report_type": report.ReportType,
		"total_tests": report.TotalTests,
	}).Info("Report persisted")

	return nil
}

// GetByID retrieves a stored report by its ID
func (r *ReportRepository) GetByID(ctx context.Context, id string) (*StoredReport, error) {
	query := `
		SELECT id, created_at, gender, age, report_type, total_tests,
		       results, suspicion_score, validated, findings
		FROM reports
		WHERE id = $1`

	var (
		stored       StoredReport
		gender       string
		resultsJSON  []byte
		findingsJSON []byte
	)

	err := r.db.QueryRow(ctx, query, id).Scan(
		&stored.Report.ID,
		&stored.Report.CreatedAt,
		&gender,
		&stored.Report.PatientInfo.Age,
		&stored.Report.ReportType,
		&stored.Report.TotalTests,
		&resultsJSON,
		&stored.Validation.SuspicionScore,
		&stored.Validation.Validated,
		&findingsJSON,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("querying report: %w", err)
	}

	stored.Report.PatientInfo.Gender = domain.Gender(gender)
	if err := json.Unmarshal(resultsJSON, &stored.Report.AllResults); err != nil {
		return nil, fmt.Errorf("unmarshaling results: %w", err)
	}
	if err := json.Unmarshal(findingsJSON, &stored.Validation.Findings); err != nil {
		return nil, fmt.Errorf("unmarshaling findings: %w", err)
	}

	return &stored, nil
}

// ListRecent returns the most recently created reports
func (r *ReportRepository) ListRecent(ctx context.Context, limit int) ([]*StoredReport, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, created_at, gender, age, report_type, total_tests,
		       results, suspicion_score, validated, findings
		FROM reports
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}
	defer rows.Close()

	var reports []*StoredReport
	for rows.Next() {
		var (
			stored       StoredReport
			gender       string
			resultsJSON  []byte
			findingsJSON []byte
		)
		err := rows.Scan(
			&stored.Report.ID,
			&stored.Report.CreatedAt,
			&gender,
			&stored.Report.PatientInfo.Age,
			&stored.Report.ReportType,
			&stored.Report.TotalTests,
			&resultsJSON,
			&stored.Validation.SuspicionScore,
			&stored.Validation.Validated,
			&findingsJSON,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning report row: %w", err)
		}
		stored.Report.PatientInfo.Gender = domain.Gender(gender)
		if err := json.Unmarshal(resultsJSON, &stored.Report.AllResults); err != nil {
			return nil, fmt.Errorf("unmarshaling results: %w", err)
		}
		if err := json.Unmarshal(findingsJSON, &stored.Validation.Findings); err != nil {
			return nil, fmt.Errorf("unmarshaling findings: %w", err)
		}
		reports = append(reports, &stored)
	}

	return reports, rows.Err()
}

// Delete removes a stored report by ID
func (r *ReportRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting report: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrReportNotFound
	}
	return nil
}

// CountSince counts reports created after the given time
func (r *ReportRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM reports WHERE created_at >= $1`, since,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting reports: %w", err)
	}
	return count, nil
}
