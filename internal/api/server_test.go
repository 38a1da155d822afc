package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lab-insight-server/internal/config"
	"github.com/lab-insight-server/internal/domain"
	"github.com/lab-insight-server/internal/knowledge"
	"github.com/lab-insight-server/internal/parser"
	"github.com/lab-insight-server/internal/repository"
	"github.com/lab-insight-server/internal/service"
	"github.com/lab-insight-server/internal/validator"
)

// memoryStore is an in-memory ReportStore for handler tests.
type memoryStore struct {
	reports map[string]*repository.StoredReport
}

func newMemoryStore() *memoryStore {
	return &memoryStore{reports: make(map[string]*repository.StoredReport)}
}

func (m *memoryStore) Create(_ context.Context, report *domain.ParsedReport, validation *domain.ValidationReport) error {
	m.reports[report.ID] = &repository.StoredReport{Report: *report, Validation: *validation}
	return nil
}

func (m *memoryStore) GetByID(_ context.Context, id string) (*repository.StoredReport, error) {
	stored, ok := m.reports[id]
	if !ok {
		return nil, repository.ErrReportNotFound
	}
	return stored, nil
}

func (m *memoryStore) ListRecent(_ context.Context, limit int) ([]*repository.StoredReport, error) {
	var out []*repository.StoredReport
	for _, stored := range m.reports {
		if len(out) == limit {
			break
		}
		out = append(out, stored)
	}
	return out, nil
}

func newTestServer(t *testing.T, store ReportStore) *Server {
	t.Helper()

	configManager, err := config.NewManager()
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	kb := knowledge.NewBase()
	interpreter, err := service.NewInterpreter(kb, 64, logger)
	require.NoError(t, err)
	extractor := parser.NewExtractor(parser.NewResolver(), logger)
	reports := service.NewReportService(extractor, interpreter, logger)
	v := validator.New(kb, logger)

	return NewServer(configManager, logger, reports, interpreter, v, kb, store)
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestParseReportEndpoint(t *testing.T) {
	store := newMemoryStore()
	server := newTestServer(t, store)

	body, err := json.Marshal(ParseReportRequest{
		Text:   "Hemoglobin 10.5 g/dL\nTSH 6.2 mIU/L",
		Gender: "female",
		Age:    30,
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	server.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ParseReportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 2, resp.Report.TotalTests)
	assert.NotEmpty(t, resp.Report.ID)
	assert.True(t, resp.Validation.Validated)

	// The parsed report is also persisted.
	assert.Len(t, store.reports, 1)
}

func TestParseReportEndpointInvalidBody(t *testing.T) {
	server := newTestServer(t, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", bytes.NewReader([]byte(`{"text": ""}`)))
	req.Header.Set("Content-Type", "application/json")
	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestParseReportEndpointInvalidGender(t *testing.T) {
	server := newTestServer(t, nil)

	body := []byte(`{"text": "Glucose 95 mg/dl", "gender": "robot", "age": 30}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetReportEndpoint(t *testing.T) {
	store := newMemoryStore()
	server := newTestServer(t, store)

	report := &domain.ParsedReport{ID: "report-1", ReportType: "Lipid Profile"}
	validation := &domain.ValidationReport{Validated: true, Findings: []string{}}
	require.NoError(t, store.Create(context.Background(), report, validation))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/report-1", nil)
	server.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Lipid Profile")
}

func TestGetReportEndpointNotFound(t *testing.T) {
	server := newTestServer(t, newMemoryStore())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/missing", nil)
	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInterpretTermEndpoint(t *testing.T) {
	server := newTestServer(t, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/terms/Glucose?value=110&gender=male", nil)
	server.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result domain.InterpretedResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, domain.STATUS_HIGH, result.Status)
	assert.Equal(t, "Prediabetes", result.GradedBand)
}

func TestInterpretTermEndpointUnknownTerm(t *testing.T) {
	server := newTestServer(t, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/terms/Midichlorians?value=42", nil)
	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "Unknown medical term"}`, rec.Body.String())
}

func TestInterpretTermEndpointMissingValue(t *testing.T) {
	server := newTestServer(t, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/terms/Glucose", nil)
	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListTermsEndpoint(t *testing.T) {
	server := newTestServer(t, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/terms", nil)
	server.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hemoglobin")
	assert.Contains(t, rec.Body.String(), "Glucose")
}
