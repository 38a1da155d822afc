// Package domain contains core business entities and types for lab report
// understanding: extraction of test results from OCR text, classification
// against demographic reference ranges, and statistical plausibility scoring.
package domain

import (
	"errors"
	"strings"
)

// Status represents the clinical classification of a measured lab value
// against its reference range. UNKNOWN means no reference data was available
// for the term and demographic combination; it is a normal outcome, not an
// error condition.
type Status string

const (
	STATUS_NORMAL  Status = "normal"
	STATUS_HIGH    Status = "high"
	STATUS_LOW     Status = "low"
	STATUS_UNKNOWN Status = "unknown"
)

// Gender represents the patient gender used for reference range resolution.
type Gender string

const (
	GENDER_MALE   Gender = "male"
	GENDER_FEMALE Gender = "female"
)

// AgeGroup represents the demographic age bracket used as a reference range
// fallback key when no gender-specific range exists.
type AgeGroup string

const (
	AGE_GROUP_CHILD AgeGroup = "child"
	AGE_GROUP_ADULT AgeGroup = "adult"
)

// Bucket represents the report-level grouping of an interpreted result.
// CRITICAL is a text-driven escalation of HIGH or LOW, not a distinct
// numeric threshold.
type Bucket string

const (
	BUCKET_NORMAL   Bucket = "normal"
	BUCKET_HIGH     Bucket = "high"
	BUCKET_LOW      Bucket = "low"
	BUCKET_CRITICAL Bucket = "critical"
)

// Validation errors for lab report processing
var (
	ErrUnknownTerm   = errors.New("Unknown medical term")
	ErrInvalidGender = errors.New("invalid gender")
	ErrInvalidStatus = errors.New("invalid status")
)

// IsValid validates that the Status is one of the supported classifications.
func (s Status) IsValid() bool {
	switch s {
	case STATUS_NORMAL, STATUS_HIGH, STATUS_LOW, STATUS_UNKNOWN:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsAbnormal reports whether the status indicates a value outside its
// reference range.
func (s Status) IsAbnormal() bool {
	return s == STATUS_HIGH || s == STATUS_LOW
}

// LogFields returns structured logging fields for audit trails.
func (s Status) LogFields() map[string]any {
	return map[string]any{
		"status":      string(s),
		"is_valid":    s.IsValid(),
		"is_abnormal": s.IsAbnormal(),
	}
}

// IsValid validates the gender value for reference range resolution.
func (g Gender) IsValid() bool {
	switch g {
	case GENDER_MALE, GENDER_FEMALE:
		return true
	default:
		return false
	}
}

// String returns the string representation of the gender.
func (g Gender) String() string {
	return string(g)
}

// ParseGender parses a gender string case-insensitively.
func ParseGender(s string) (Gender, error) {
	g := Gender(strings.ToLower(strings.TrimSpace(s)))
	if !g.IsValid() {
		return "", ErrInvalidGender
	}
	return g, nil
}

// AgeGroupForAge maps a patient age in years to its demographic bracket.
func AgeGroupForAge(age int) AgeGroup {
	if age < 18 {
		return AGE_GROUP_CHILD
	}
	return AGE_GROUP_ADULT
}

// IsValid validates the age group value.
func (a AgeGroup) IsValid() bool {
	switch a {
	case AGE_GROUP_CHILD, AGE_GROUP_ADULT:
		return true
	default:
		return false
	}
}

// String returns the string representation of the age group.
func (a AgeGroup) String() string {
	return string(a)
}

// IsValid validates the bucket value.
func (b Bucket) IsValid() bool {
	switch b {
	case BUCKET_NORMAL, BUCKET_HIGH, BUCKET_LOW, BUCKET_CRITICAL:
		return true
	default:
		return false
	}
}

// String returns the string representation of the bucket.
func (b Bucket) String() string {
	return string(b)
}

// criticalSeverityMarkers are the severity-text fragments that escalate an
// abnormal result into the critical bucket. Substring matching on the
// free-text severity label is a known fragility; it is funneled through
// IsCriticalSeverity so a structured severity enum is a one-place change.
var criticalSeverityMarkers = []string{"high", "emergency", "critical"}

// IsCriticalSeverity reports whether a free-text severity label marks an
// abnormal result as critical.
func IsCriticalSeverity(severity string) bool {
	lowered := strings.ToLower(severity)
	for _, marker := range criticalSeverityMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}
