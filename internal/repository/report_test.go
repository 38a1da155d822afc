package repository

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/lab-insight-server/internal/config"
	"github.com/lab-insight-server/internal/database"
	"github.com/lab-insight-server/internal/domain"
)

// generateTestPassword creates a random password for test databases
func generateTestPassword() string {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "test_fallback_password_123"
	}
	return "test_" + hex.EncodeToString(bytes)
}

func setupTestDB(t *testing.T) (*database.DB, func()) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx := context.Background()
	testPassword := generateTestPassword()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword(testPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}

	host, err := pgContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := pgContainer.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	cfg := &config.DatabaseConfig{
		Host:        host,
		Port:        port.Int(),
		Database:    "testdb",
		Username:    "testuser",
		Password:    testPassword,
		SSLMode:     "disable",
		MaxConns:    10,
		MinConns:    2,
		MaxConnLife: time.Hour,
		MaxConnIdle: time.Minute * 30,
	}

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	db, err := database.NewConnection(ctx, cfg, logger)
	if err != nil {
		t.Fatalf("Failed to create database connection: %v", err)
	}

	databaseURL := "postgres://testuser:" + testPassword + "@" + host + ":" + port.Port() + "/testdb?sslmode=disable"
	migrationRunner, err := database.NewMigrationRunner(databaseURL, "../../migrations", logger)
	if err != nil {
		t.Fatalf("Failed to create migration runner: %v", err)
	}

	if err := migrationRunner.Up(ctx); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	cleanup := func() {
		migrationRunner.Close()
		db.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate PostgreSQL container: %v", err)
		}
	}

	return db, cleanup
}

func sampleReport() (*domain.ParsedReport, *domain.ValidationReport) {
	report := &domain.ParsedReport{
		ID:         uuid.New().String(),
		ReportType: "Lipid Profile",
		TotalTests: 2,
		AllResults: []domain.InterpretedResult{
			{Term: "Total Cholesterol", Value: 210, Status: domain.STATUS_HIGH},
			{Term: "HDL Cholesterol", Value: 52, Status: domain.STATUS_NORMAL},
		},
		PatientInfo: domain.PatientInfo{Gender: domain.GENDER_MALE, Age: 45},
		CreatedAt:   time.Now().UTC(),
	}
	validation := &domain.ValidationReport{
		SuspicionScore: 0,
		Findings:       []string{},
		Validated:      true,
	}
	return report, validation
}

func TestReportRepository_CreateAndGet(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	repo := NewReportRepository(db.Pool, logger)

	report, validation := sampleReport()

	ctx := context.Background()
	if err := repo.Create(ctx, report, validation); err != nil {
		t.Fatalf("Failed to create report: %v", err)
	}

	stored, err := repo.GetByID(ctx, report.ID)
	if err != nil {
		t.Fatalf("Failed to retrieve report: %v", err)
	}

	if stored.Report.ID != report.ID {
		t.Errorf("Expected ID %s, got %s", report.ID, stored.Report.ID)
	}
	if stored.Report.ReportType != report.ReportType {
		t.Errorf("Expected report type %s, got %s", report.ReportType, stored.Report.ReportType)
	}
	if stored.Report.PatientInfo.Gender != domain.GENDER_MALE {
		t.Errorf("Expected gender male, got %s", stored.Report.PatientInfo.Gender)
	}
	if len(stored.Report.AllResults) != 2 {
		t.Errorf("Expected 2 results, got %d", len(stored.Report.AllResults))
	}
	if !stored.Validation.Validated {
		t.Error("Expected stored validation to be validated")
	}
}

func TestReportRepository_GetByID_NotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	repo := NewReportRepository(db.Pool, logger)

	_, err := repo.GetByID(context.Background(), uuid.New().String())
	if err != ErrReportNotFound {
		t.Errorf("Expected ErrReportNotFound, got %v", err)
	}
}

func TestReportRepository_ListRecent(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	repo := NewReportRepository(db.Pool, logger)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		report, validation := sampleReport()
		report.CreatedAt = time.Now().UTC().Add(time.Duration(i) * time.Second)
		if err := repo.Create(ctx, report, validation); err != nil {
			t.Fatalf("Failed to create report: %v", err)
		}
	}

	reports, err := repo.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("Failed to list reports: %v", err)
	}
	if len(reports) != 2 {
		t.Errorf("Expected 2 reports, got %d", len(reports))
	}
}

func TestReportRepository_Delete(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	repo := NewReportRepository(db.Pool, logger)

	report, validation := sampleReport()

	ctx := context.Background()
	if err := repo.Create(ctx, report, validation); err != nil {
		t.Fatalf("Failed to create report: %v", err)
	}

	if err := repo.Delete(ctx, report.ID); err != nil {
		t.Fatalf("Failed to delete report: %v", err)
	}

	if err := repo.Delete(ctx, report.ID); err != ErrReportNotFound {
		t.Errorf("Expected ErrReportNotFound on second delete, got %v", err)
	}
}

func TestReportRepository_CountSince(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	repo := NewReportRepository(db.Pool, logger)

	report, validation := sampleReport()

	ctx := context.Background()
	if err := repo.Create(ctx, report, validation); err != nil {
		t.Fatalf("Failed to create report: %v", err)
	}

	count, err := repo.CountSince(ctx, time.Now().UTC().Add(-time.Hour))
	if err != nil {
		t.Fatalf("Failed to count reports: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected count 1, got %d", count)
	}
}
