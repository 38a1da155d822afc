// Package api exposes the report-understanding pipeline over HTTP. It is a
// thin collaborator layer: all domain behavior lives in the core packages.
package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lab-insight-server/internal/config"
	"github.com/lab-insight-server/internal/domain"
	"github.com/lab-insight-server/internal/knowledge"
	"github.com/lab-insight-server/internal/middleware"
	"github.com/lab-insight-server/internal/repository"
	"github.com/lab-insight-server/internal/service"
	"github.com/lab-insight-server/internal/validator"
)

// ReportStore is the persistence surface the API depends on. A nil store
// means the server runs without persistence.
type ReportStore interface {
	Create(ctx context.Context, report *domain.ParsedReport, validation *domain.ValidationReport) error
	GetByID(ctx context.Context, id string) (*repository.StoredReport, error)
	ListRecent(ctx context.Context, limit int) ([]*repository.StoredReport, error)
}

// Server represents the HTTP server
type Server struct {
	configManager *config.Manager
	logger        *logrus.Logger
	reports       *service.ReportService
	interpreter   *service.Interpreter
	validator     *validator.Validator
	kb            *knowledge.Base
	store         ReportStore
	router        *gin.Engine
	server        *http.Server
}

// NewServer creates a new HTTP server instance
func NewServer(
	configManager *config.Manager,
	logger *logrus.Logger,
	reports *service.ReportService,
	interpreter *service.Interpreter,
	v *validator.Validator,
	kb *knowledge.Base,
	store ReportStore,
) *Server {
	cfg := configManager.GetConfig()

	if cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS())
	router.Use(middleware.CorrelationID())
	router.Use(middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst).Handler())

	s := &Server{
		configManager: configManager,
		logger:        logger,
		reports:       reports,
		interpreter:   interpreter,
		validator:     v,
		kb:            kb,
		store:         store,
		router:        router,
	}

	s.setupRoutes()

	return s
}

// Router exposes the configured routes for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	cfg := s.configManager.GetServerConfig()
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}

// setupRoutes configures the API routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/reports", s.handleParseReport)
		v1.GET("/reports", s.handleListReports)
		v1.GET("/reports/:id", s.handleGetReport)
		v1.GET("/terms", s.handleListTerms)
		v1.GET("/terms/:term", s.handleInterpretTerm)
	}
}

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}

// ParseReportRequest is the submission body for report processing.
type ParseReportRequest struct {
	Text   string `json:"text" binding:"required"`
	Gender string `json:"gender" binding:"required"`
	Age    int    `json:"age" binding:"gte=0,lte=130"`
}

// ParseReportResponse pairs the parsed report with its validation outcome.
type ParseReportResponse struct {
	Report     domain.ParsedReport     `json:"report"`
	Validation domain.ValidationReport `json:"validation"`
}

// handleParseReport runs the full pipeline over submitted OCR text.
// Unreadable text is not an error: the response simply carries zero results
// and the caller decides how to surface "could not read your report".
func (s *Server) handleParseReport(c *gin.Context) {
	requestID := c.GetString("correlation_id")

	var req ParseReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAPIError(
			domain.ErrCodeInvalidInput, "Invalid request body", err.Error(), requestID))
		return
	}

	gender, err := domain.ParseGender(req.Gender)
	if err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAPIError(
			domain.ErrCodeInvalidInput, "Gender must be male or female", req.Gender, requestID))
		return
	}

	report := s.reports.ParseReport(req.Text, gender, req.Age)
	validation := s.validator.Validate(s.reports.ExtractResults(req.Text))

	if s.store != nil {
		if err := s.store.Create(c.Request.Context(), &report, validation); err != nil {
			// Persistence is best-effort for this endpoint; the response is
			// still the freshly computed pipeline output.
			s.logger.WithError(err).WithField("report_id", report.ID).Error("Failed to persist report")
		}
	}

	c.JSON(http.StatusOK, ParseReportResponse{
		Report:     report,
		Validation: *validation,
	})
}

// handleGetReport retrieves a persisted report by ID.
func (s *Server) handleGetReport(c *gin.Context) {
	requestID := c.GetString("correlation_id")

	if s.store == nil {
		c.JSON(http.StatusNotFound, domain.NewAPIError(
			domain.ErrCodeNotFound, "Report persistence is disabled", "", requestID))
		return
	}

	stored, err := s.store.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == repository.ErrReportNotFound {
			c.JSON(http.StatusNotFound, domain.NewAPIError(
				domain.ErrCodeNotFound, "Report not found", c.Param("id"), requestID))
			return
		}
		c.JSON(http.StatusInternalServerError, domain.NewAPIError(
			domain.ErrCodeDatabaseError, "Failed to load report", "", requestID))
		return
	}

	c.JSON(http.StatusOK, stored)
}

// handleListReports returns the most recent persisted reports.
func (s *Server) handleListReports(c *gin.Context) {
	requestID := c.GetString("correlation_id")

	if s.store == nil {
		c.JSON(http.StatusOK, gin.H{"reports": []any{}})
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	reports, err := s.store.ListRecent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, domain.NewAPIError(
			domain.ErrCodeDatabaseError, "Failed to list reports", "", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// handleListTerms returns every canonical term the knowledge base covers.
func (s *Server) handleListTerms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"terms": s.kb.Terms()})
}

// handleInterpretTerm serves the standalone "explain this term" lookup.
func (s *Server) handleInterpretTerm(c *gin.Context) {
	requestID := c.GetString("correlation_id")

	value, err := strconv.ParseFloat(c.Query("value"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAPIError(
			domain.ErrCodeInvalidInput, "Query parameter 'value' must be a number", c.Query("value"), requestID))
		return
	}

	gender, err := domain.ParseGender(c.DefaultQuery("gender", "male"))
	if err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAPIError(
			domain.ErrCodeInvalidInput, "Gender must be male or female", c.Query("gender"), requestID))
		return
	}

	result, err := s.interpreter.Interpret(c.Param("term"), value, gender)
	if err != nil {
		if err == domain.ErrUnknownTerm {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown medical term"})
			return
		}
		c.JSON(http.StatusInternalServerError, domain.NewAPIError(
			domain.ErrCodeInternalServer, "Interpretation failed", "", requestID))
		return
	}

	c.JSON(http.StatusOK, result)
}
