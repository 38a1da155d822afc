// Package main provides the standalone command line entry point. It runs the
// full pipeline over a text file without any server or database, optionally
// recording the outcome in a local SQLite history store.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/lab-insight-server/internal/domain"
	"github.com/lab-insight-server/internal/history"
	"github.com/lab-insight-server/internal/knowledge"
	"github.com/lab-insight-server/internal/logging"
	"github.com/lab-insight-server/internal/parser"
	"github.com/lab-insight-server/internal/service"
	"github.com/lab-insight-server/internal/validator"
)

type output struct {
	Report     domain.ParsedReport     `json:"report"`
	Validation domain.ValidationReport `json:"validation"`
}

func main() {
	var (
		filePath    = flag.String("file", "", "path to the extracted report text (required)")
		gender      = flag.String("gender", "male", "patient gender: male or female")
		age         = flag.Int("age", 30, "patient age in years")
		historyPath = flag.String("history", "", "optional SQLite history database path")
		logLevel    = flag.String("log-level", "warn", "log level: debug, info, warn, error")
	)
	flag.Parse()

	if *filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	raw, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatalf("Failed to read report file: %v", err)
	}

	parsedGender, err := domain.ParseGender(*gender)
	if err != nil {
		log.Fatalf("Invalid gender %q: must be male or female", *gender)
	}

	logger := logging.New(*logLevel, "text")

	kb := knowledge.NewBase()
	interpreter, err := service.NewInterpreter(kb, service.DefaultInterpretationCacheSize, logger)
	if err != nil {
		log.Fatalf("Failed to create interpreter: %v", err)
	}
	extractor := parser.NewExtractor(parser.NewResolver(), logger)
	reports := service.NewReportService(extractor, interpreter, logger)
	v := validator.New(kb, logger)

	report := reports.ParseReport(string(raw), parsedGender, *age)
	validation := v.Validate(reports.ExtractResults(string(raw)))

	out := output{Report: report, Validation: *validation}

	if *historyPath != "" {
		if err := saveHistory(*historyPath, &out); err != nil {
			log.Fatalf("Failed to record history: %v", err)
		}
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode output: %v", err)
	}
	fmt.Println(string(encoded))
}

func saveHistory(path string, out *output) error {
	store, err := history.NewSQLiteStore(path)
	if err != nil {
		return err
	}
	defer store.Close()

	payload, err := json.Marshal(out)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return store.Save(ctx, &history.Entry{
		ReportID:       out.Report.ID,
		ReportType:     out.Report.ReportType,
		Gender:         string(out.Report.PatientInfo.Gender),
		Age:            out.Report.PatientInfo.Age,
		TotalTests:     out.Report.TotalTests,
		AbnormalCount:  out.Report.Categorized.AbnormalCount(),
		SuspicionScore: out.Validation.SuspicionScore,
		Validated:      out.Validation.Validated,
		Payload:        payload,
	})
}
