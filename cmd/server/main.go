package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lab-insight-server/internal/api"
	"github.com/lab-insight-server/internal/config"
	"github.com/lab-insight-server/internal/database"
	"github.com/lab-insight-server/internal/knowledge"
	"github.com/lab-insight-server/internal/logging"
	"github.com/lab-insight-server/internal/parser"
	"github.com/lab-insight-server/internal/repository"
	"github.com/lab-insight-server/internal/service"
	"github.com/lab-insight-server/internal/validator"
)

func main() {
	// Load configuration
	configManager, err := config.NewManager()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := configManager.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	cfg := configManager.GetConfig()
	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	logger.WithField("environment", cfg.Environment).Info("Starting lab insight server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Assemble the pipeline
	kb := knowledge.NewBase()
	interpreter, err := service.NewInterpreter(kb, cfg.Cache.InterpretationSize, logger)
	if err != nil {
		log.Fatalf("Failed to create interpreter: %v", err)
	}
	extractor := parser.NewExtractor(parser.NewResolver(), logger)
	reports := service.NewReportService(extractor, interpreter, logger)
	v := validator.New(kb, logger)

	// Optional persistence
	var store api.ReportStore
	if cfg.Database.Enabled {
		runner, err := database.NewMigrationRunner(configManager.DatabaseURL(), cfg.Database.MigrationsPath, logger)
		if err != nil {
			log.Fatalf("Failed to create migration runner: %v", err)
		}
		if err := runner.Up(ctx); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		if err := runner.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close migration runner")
		}

		db, err := database.NewConnection(ctx, configManager.GetDatabaseConfig(), logger)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		store = repository.NewReportRepository(db.Pool, logger)
	} else {
		logger.Info("Database persistence disabled, running stateless")
	}

	server := api.NewServer(configManager, logger, reports, interpreter, v, kb, store)

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("Shutdown signal received, gracefully shutting down")
		cancel()
	}()

	// Start server
	if err := server.Start(ctx); err != nil {
		log.Fatalf("Server failed: %v", err)
	}

	logger.Info("Server stopped")
}
