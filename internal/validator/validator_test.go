package validator

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lab-insight-server/internal/domain"
	"github.com/lab-insight-server/internal/knowledge"
)

func newTestValidator() *Validator {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(knowledge.NewBase(), logger)
}

func results(pairs ...any) []domain.ExtractedResult {
	out := make([]domain.ExtractedResult, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, domain.ExtractedResult{
			Term:  pairs[i].(string),
			Value: pairs[i+1].(float64),
		})
	}
	return out
}

func TestValidateEmptyResultSet(t *testing.T) {
	report := newTestValidator().Validate(nil)

	assert.Equal(t, 0, report.SuspicionScore)
	assert.True(t, report.Validated)
	assert.Empty(t, report.Findings)
}

func TestValidateCleanLipidPanel(t *testing.T) {
	report := newTestValidator().Validate(results(
		"Total Cholesterol", 192.0,
		"HDL Cholesterol", 52.0,
		"LDL Cholesterol", 111.0,
		"Triglycerides", 118.0,
	))

	assert.Equal(t, 0, report.SuspicionScore)
	assert.True(t, report.Validated)
	assert.Empty(t, report.Findings)
}

func TestValidateImpossibleValue(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{"Below physiological floor", 10},
		{"Above physiological ceiling", 1600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := newTestValidator().Validate(results("Glucose", tt.value))

			assert.Equal(t, 1, report.Details.ImpossibleValues)
			assert.GreaterOrEqual(t, report.SuspicionScore, 30)
			assert.False(t, report.Validated)
			require.NotEmpty(t, report.Findings)
			assert.Contains(t, report.Findings[0], "physiologically impossible")
		})
	}
}

func TestValidateOutliers(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		points    int
		validated bool
	}{
		{"Moderate z-score", 145, 5, true},
		{"Extreme z-score", 175, 15, true},
		{"Unremarkable value", 98, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := newTestValidator().Validate(results("Glucose", tt.value))

			assert.Equal(t, tt.points, report.SuspicionScore)
			assert.Equal(t, tt.validated, report.Validated)
		})
	}
}

func TestValidateGlucoseHbA1cConsistency(t *testing.T) {
	// Expected glucose for HbA1c 7.0 is about 154 mg/dL; 150 sits inside the
	// tolerance band, so only the moderate outlier on glucose itself scores.
	report := newTestValidator().Validate(results("HbA1c", 7.0, "Glucose", 150.0))

	assert.Equal(t, 0, report.Details.CorrelationViolations)
	assert.Equal(t, 5, report.SuspicionScore)
	assert.True(t, report.Validated)
}

func TestValidateGlucoseHbA1cMismatch(t *testing.T) {
	// HbA1c 5.0 predicts glucose near 97; a measured 200 is far outside the
	// 30% band and also an extreme outlier on its own.
	report := newTestValidator().Validate(results("HbA1c", 5.0, "Glucose", 200.0))

	assert.Equal(t, 1, report.Details.CorrelationViolations)
	assert.Equal(t, 1, report.Details.Outliers)
	assert.Equal(t, 35, report.SuspicionScore)
	assert.False(t, report.Validated)
}

func TestValidateCholesterolIdentityViolation(t *testing.T) {
	report := newTestValidator().Validate(results(
		"Total Cholesterol", 192.0,
		"HDL Cholesterol", 52.0,
		"LDL Cholesterol", 51.0,
		"Triglycerides", 21.0,
	))

	assert.Equal(t, 1, report.Details.CorrelationViolations)
	assert.Equal(t, 25, report.SuspicionScore)
	assert.True(t, report.Validated)
}

func TestValidateCholesterolIdentityExactSum(t *testing.T) {
	// 50 + 110 + 150/5 = 190 exactly. Every value is a multiple of ten, so
	// the round-number check fires, but the identity itself must not.
	report := newTestValidator().Validate(results(
		"Total Cholesterol", 190.0,
		"HDL Cholesterol", 50.0,
		"LDL Cholesterol", 110.0,
		"Triglycerides", 150.0,
	))

	assert.Equal(t, 0, report.Details.CorrelationViolations)
	assert.Equal(t, 10, report.SuspicionScore)
	assert.True(t, report.Validated)
}

func TestValidateASTALTRatio(t *testing.T) {
	report := newTestValidator().Validate(results("AST", 54.0, "ALT", 9.0))

	assert.Equal(t, 1, report.Details.CorrelationViolations)
	assert.Equal(t, 15, report.SuspicionScore)
	require.NotEmpty(t, report.Findings)
	assert.Contains(t, report.Findings[0], "AST/ALT ratio")
}

func TestValidateASTALTZeroGuard(t *testing.T) {
	report := newTestValidator().Validate(results("AST", 30.0, "ALT", 0.0))

	assert.Equal(t, 0, report.Details.CorrelationViolations)
}

func TestValidateThyroidDirectionality(t *testing.T) {
	tests := []struct {
		name       string
		input      []domain.ExtractedResult
		violations int
	}{
		{"High TSH with high T4 contradicts", results("TSH", 5.0, "T4", 13.0), 1},
		{"Low TSH with low T4 contradicts", results("TSH", 0.2, "T4", 3.0), 1},
		{"High TSH with low T4 is consistent", results("TSH", 5.0, "T4", 3.0), 0},
		{"TSH alone is never contradictory", results("TSH", 5.0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := newTestValidator().Validate(tt.input)
			assert.Equal(t, tt.violations, report.Details.CorrelationViolations)
		})
	}
}

func TestValidateRoundNumberExcess(t *testing.T) {
	report := newTestValidator().Validate(results(
		"Glucose", 90.0,
		"Urea", 20.0,
		"WBC Count", 10.0,
		"Hemoglobin", 14.0,
	))

	assert.Equal(t, 1, report.Details.RoundNumberExcess)
	assert.Equal(t, 10, report.SuspicionScore)
	assert.True(t, report.Validated)
}
