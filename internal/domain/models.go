package domain

import (
	"fmt"
	"math"
	"time"
)

// Extraction sanity band. Values outside this band are OCR garbage (page
// numbers, dates, accession IDs) rather than lab measurements; medical
// plausibility is checked separately by the validator.
const (
	MinPlausibleValue = 0.001
	MaxPlausibleValue = 50000
)

// ExtractedResult is one (test, value, unit) triple pulled out of raw OCR
// text. Term is always a canonical knowledge base name; unresolved aliases
// are dropped at extraction time, never passed through.
type ExtractedResult struct {
	Term       string  `json:"term" validate:"required"`
	Value      float64 `json:"value"`
	Unit       string  `json:"unit,omitempty"`
	SourceLine int     `json:"source_line"`
}

// Validate ensures the extracted result meets the extraction contract.
func (er *ExtractedResult) Validate() error {
	if er.Term == "" {
		return fmt.Errorf("extracted result validation: term is required")
	}
	if !PlausibleMagnitude(er.Value) {
		return fmt.Errorf("extracted result validation: value %v outside plausibility band", er.Value)
	}
	return nil
}

// PlausibleMagnitude reports whether a number is inside the gross sanity band
// accepted at extraction time.
func PlausibleMagnitude(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return v >= MinPlausibleValue && v <= MaxPlausibleValue
}

// InterpretedResult is an ExtractedResult combined with reference range
// classification and the knowledge base's explanatory text. For UNKNOWN
// status the interpretive fields stay empty rather than erroring.
type InterpretedResult struct {
	Term       string  `json:"term"`
	Value      float64 `json:"value"`
	Unit       string  `json:"unit,omitempty"`
	SourceLine int     `json:"source_line"`

	Status          Status   `json:"status"`
	NormalRangeText string   `json:"normal_range,omitempty"`
	Category        string   `json:"category,omitempty"`
	Explanation     string   `json:"explanation,omitempty"`
	Condition       string   `json:"condition,omitempty"`
	Causes          []string `json:"causes,omitempty"`
	Symptoms        []string `json:"symptoms,omitempty"`
	Severity        string   `json:"severity,omitempty"`
	NextStep        string   `json:"next_step,omitempty"`
	GradedBand      string   `json:"graded_band,omitempty"`
}

// Bucket returns the report-level bucket for this result. Abnormal results
// escalate to critical when the severity text carries a critical marker.
func (ir *InterpretedResult) Bucket() Bucket {
	switch ir.Status {
	case STATUS_HIGH:
		if IsCriticalSeverity(ir.Severity) {
			return BUCKET_CRITICAL
		}
		return BUCKET_HIGH
	case STATUS_LOW:
		if IsCriticalSeverity(ir.Severity) {
			return BUCKET_CRITICAL
		}
		return BUCKET_LOW
	default:
		return BUCKET_NORMAL
	}
}

// PatientInfo carries the demographics used for reference range resolution.
type PatientInfo struct {
	Gender Gender `json:"gender"`
	Age    int    `json:"age"`
}

// AgeGroup returns the demographic bracket for this patient.
func (p PatientInfo) AgeGroup() AgeGroup {
	return AgeGroupForAge(p.Age)
}

// CategorizedResults groups interpreted results into report buckets. Each
// result lands in exactly one bucket, in extraction order.
type CategorizedResults struct {
	Normal   []InterpretedResult `json:"normal"`
	High     []InterpretedResult `json:"high"`
	Low      []InterpretedResult `json:"low"`
	Critical []InterpretedResult `json:"critical"`
}

// AbnormalCount returns the number of results outside their reference range,
// critical escalations included.
func (c CategorizedResults) AbnormalCount() int {
	return len(c.High) + len(c.Low) + len(c.Critical)
}

// ParsedReport is the full output of one report parse: every interpreted
// result in extraction order plus the derived report type and buckets.
// One instance per upload, owned by the caller, passed by value downstream.
type ParsedReport struct {
	ID          string             `json:"id,omitempty"`
	ReportType  string             `json:"report_type"`
	TotalTests  int                `json:"total_tests"`
	AllResults  []InterpretedResult `json:"all_results"`
	Categorized CategorizedResults `json:"categorized"`
	PatientInfo PatientInfo        `json:"patient_info"`
	CreatedAt   time.Time          `json:"created_at,omitempty"`
}

// ValidationReport is the statistical validator's verdict over a raw
// extracted result set. It annotates, never blocks: a high suspicion score
// is advisory, not a rejection.
type ValidationReport struct {
	SuspicionScore int             `json:"suspicion_score"`
	Findings       []string        `json:"findings"`
	Validated      bool            `json:"validated"`
	Details        CheckBreakdown  `json:"details"`
}

// CheckBreakdown counts triggered findings per validator check category.
type CheckBreakdown struct {
	ImpossibleValues      int `json:"impossible_values"`
	Outliers              int `json:"outliers"`
	CorrelationViolations int `json:"correlation_violations"`
	RoundNumberExcess     int `json:"round_number_excess"`
}

// LogFields returns structured logging fields for the validation outcome.
func (vr *ValidationReport) LogFields() map[string]any {
	return map[string]any{
		"suspicion_score": vr.SuspicionScore,
		"validated":       vr.Validated,
		"finding_count":   len(vr.Findings),
	}
}
