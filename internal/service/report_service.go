package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lab-insight-server/internal/domain"
	"github.com/lab-insight-server/internal/parser"
)

// reportSignature names a report type by the canonical terms it requires.
type reportSignature struct {
	Label string
	Terms []string
}

// reportSignatures is scanned in declaration order; ties on match count keep
// the earlier signature.
var reportSignatures = []reportSignature{
	{Label: "Complete Blood Count", Terms: []string{"Hemoglobin", "Hematocrit", "RBC Count", "WBC Count", "Platelet Count"}},
	{Label: "Lipid Profile", Terms: []string{"Total Cholesterol", "HDL Cholesterol", "LDL Cholesterol", "Triglycerides"}},
	{Label: "Thyroid Profile", Terms: []string{"TSH", "T3", "T4"}},
	{Label: "Liver Function Test", Terms: []string{"ALT", "AST", "ALP", "Bilirubin"}},
	{Label: "Kidney Function Test", Terms: []string{"Creatinine", "Urea", "Uric Acid"}},
	{Label: "Diabetes Panel", Terms: []string{"Glucose", "HbA1c"}},
}

// DefaultReportType is used when no signature accumulates enough matches.
const DefaultReportType = "General Health Panel"

// CombinedReportType overrides the count-based winner whenever a diabetes
// marker and a lipid marker appear together.
const CombinedReportType = "Diabetes Screening / Lipid Profile"

// minSignatureMatches is the floor below which a signature cannot claim the
// report: a single stray test never turns a general panel into a named one.
const minSignatureMatches = 2

var (
	diabetesMarkers = []string{"HbA1c", "Glucose"}
	lipidMarkers    = []string{"Total Cholesterol", "HDL Cholesterol", "LDL Cholesterol"}
)

// ReportService runs the full parse pipeline: extraction, interpretation,
// bucketing, and report type detection. Stateless beyond its immutable
// collaborators; safe for concurrent use.
type ReportService struct {
	extractor   *parser.Extractor
	interpreter *Interpreter
	logger      *logrus.Logger
}

// NewReportService creates a report service.
func NewReportService(extractor *parser.Extractor, interpreter *Interpreter, logger *logrus.Logger) *ReportService {
	return &ReportService{
		extractor:   extractor,
		interpreter: interpreter,
		logger:      logger,
	}
}

// ParseReport converts raw OCR text into a fully interpreted report. It
// never fails on malformed text; empty or unreadable input yields a report
// with zero results, leaving "no findings" handling to the caller.
func (s *ReportService) ParseReport(rawText string, gender domain.Gender, age int) domain.ParsedReport {
	patient := domain.PatientInfo{Gender: gender, Age: age}
	extracted := s.extractor.Extract(rawText)

	report := domain.ParsedReport{
		ID:          uuid.New().String(),
		ReportType:  DefaultReportType,
		PatientInfo: patient,
		CreatedAt:   time.Now().UTC(),
	}

	for _, er := range extracted {
		interpreted, err := s.interpreter.InterpretExtracted(er, patient)
		if err != nil {
			// Extraction only emits knowledge base terms, so this would be a
			// programming error, not a domain outcome.
			s.logger.WithError(err).WithField("term", er.Term).Warn("Skipping uninterpretable result")
			continue
		}
		report.AllResults = append(report.AllResults, *interpreted)
	}

	report.TotalTests = len(report.AllResults)
	report.Categorized = categorize(report.AllResults)
	report.ReportType = DetectReportType(report.AllResults)

	s.logger.WithFields(logrus.Fields{
		"report_id":   report.ID,
		"report_type": report.ReportType,
		"total_tests": report.TotalTests,
		"abnormal":    report.Categorized.AbnormalCount(),
		"gender":      gender.String(),
		"age":         age,
	}).Info("Report parsed")

	return report
}

// ExtractResults exposes raw extraction for callers that feed the
// statistical validator directly.
func (s *ReportService) ExtractResults(rawText string) []domain.ExtractedResult {
	return s.extractor.Extract(rawText)
}

// categorize places each result into exactly one bucket, preserving
// extraction order within each bucket.
func categorize(results []domain.InterpretedResult) domain.CategorizedResults {
	var c domain.CategorizedResults
	for _, r := range results {
		switch r.Bucket() {
		case domain.BUCKET_CRITICAL:
			c.Critical = append(c.Critical, r)
		case domain.BUCKET_HIGH:
			c.High = append(c.High, r)
		case domain.BUCKET_LOW:
			c.Low = append(c.Low, r)
		default:
			c.Normal = append(c.Normal, r)
		}
	}
	return c
}

// DetectReportType infers the report's type from the set of tests present.
// Signatures are scored by how many of their required terms appear; the
// strict maximum wins, ties keep the first-declared signature, and fewer
// than minSignatureMatches matches falls back to the general label. The
// diabetes-plus-lipid combination overrides the count-based winner entirely.
func DetectReportType(results []domain.InterpretedResult) string {
	present := make(map[string]bool, len(results))
	for _, r := range results {
		present[r.Term] = true
	}

	if anyPresent(present, diabetesMarkers) && anyPresent(present, lipidMarkers) {
		return CombinedReportType
	}

	bestLabel := DefaultReportType
	bestCount := 0
	for _, sig := range reportSignatures {
		count := 0
		for _, term := range sig.Terms {
			if present[term] {
				count++
			}
		}
		if count > bestCount {
			bestCount = count
			bestLabel = sig.Label
		}
	}

	if bestCount < minSignatureMatches {
		return DefaultReportType
	}
	return bestLabel
}

func anyPresent(present map[string]bool, terms []string) bool {
	for _, t := range terms {
		if present[t] {
			return true
		}
	}
	return false
}
