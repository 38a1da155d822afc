package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lab-insight-server/internal/domain"
)

func TestAllDefinitionsAreValid(t *testing.T) {
	base := NewBase()

	terms := base.Terms()
	require.NotEmpty(t, terms)

	for _, term := range terms {
		td, ok := base.Definition(term)
		require.True(t, ok, "definition missing for %s", term)
		assert.NoError(t, td.Validate(), "definition %s failed validation", term)
	}
}

func TestNormalRangeResolution(t *testing.T) {
	base := NewBase()

	tests := []struct {
		name     string
		term     string
		gender   domain.Gender
		ageGroup domain.AgeGroup
		wantMin  float64
		wantMax  float64
	}{
		{"Gender specific male", "Hemoglobin", domain.GENDER_MALE, domain.AGE_GROUP_ADULT, 13.5, 17.5},
		{"Gender specific female", "Hemoglobin", domain.GENDER_FEMALE, domain.AGE_GROUP_ADULT, 12.0, 15.5},
		{"Shared range via all", "WBC Count", domain.GENDER_MALE, domain.AGE_GROUP_ADULT, 4.0, 11.0},
		{"Shared range for both genders", "Glucose", domain.GENDER_FEMALE, domain.AGE_GROUP_ADULT, 70, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := base.NormalRange(tt.term, tt.gender, tt.ageGroup)
			require.True(t, ok)
			assert.Equal(t, tt.wantMin, r.Min)
			assert.Equal(t, tt.wantMax, r.Max)
		})
	}

	_, ok := base.NormalRange("Midichlorian Count", domain.GENDER_MALE, domain.AGE_GROUP_ADULT)
	assert.False(t, ok)
}

func TestValueStatusBoundariesInclusive(t *testing.T) {
	base := NewBase()

	tests := []struct {
		name  string
		value float64
		want  domain.Status
	}{
		{"At lower bound", 70, domain.STATUS_NORMAL},
		{"Just below lower bound", 69.9, domain.STATUS_LOW},
		{"At upper bound", 100, domain.STATUS_NORMAL},
		{"Just above upper bound", 100.1, domain.STATUS_HIGH},
		{"Mid range", 85, domain.STATUS_NORMAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := base.ValueStatus("Glucose", tt.value, domain.GENDER_MALE)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValueStatusUnknownTerm(t *testing.T) {
	base := NewBase()
	assert.Equal(t, domain.STATUS_UNKNOWN, base.ValueStatus("Midichlorian Count", 42, domain.GENDER_MALE))
}

func TestGradedBands(t *testing.T) {
	base := NewBase()

	tests := []struct {
		name  string
		term  string
		value float64
		want  string
	}{
		{"Glucose normal band", "Glucose", 90, "Normal"},
		{"Glucose prediabetes band", "Glucose", 110, "Prediabetes"},
		{"Glucose diabetes band", "Glucose", 180, "Diabetes"},
		{"HbA1c prediabetes band", "HbA1c", 6.0, "Prediabetes"},
		{"HbA1c diabetes band", "HbA1c", 7.2, "Diabetes"},
		{"No bands defined", "Hemoglobin", 14, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.GradedBandFor(tt.term, tt.value))
		})
	}
}

func TestInterpretationNormalValue(t *testing.T) {
	base := NewBase()

	result, err := base.Interpretation("Glucose", 85, domain.GENDER_MALE)
	require.NoError(t, err)

	assert.Equal(t, domain.STATUS_NORMAL, result.Status)
	assert.Equal(t, "Within normal limits", result.Condition)
	assert.Equal(t, "70 - 100 mg/dL", result.NormalRangeText)
	assert.Empty(t, result.Causes)
	assert.NotEmpty(t, result.Explanation)
}

func TestInterpretationAbnormalValue(t *testing.T) {
	base := NewBase()

	result, err := base.Interpretation("TSH", 6.2, domain.GENDER_FEMALE)
	require.NoError(t, err)

	assert.Equal(t, domain.STATUS_HIGH, result.Status)
	assert.NotEmpty(t, result.Condition)
	assert.NotEmpty(t, result.Causes)
	assert.NotEmpty(t, result.NextStep)
	assert.NotEmpty(t, result.Severity)
}

func TestInterpretationUnknownTerm(t *testing.T) {
	base := NewBase()

	result, err := base.Interpretation("Midichlorian Count", 42, domain.GENDER_MALE)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrUnknownTerm)
}

func TestDefaultRangePrefersShared(t *testing.T) {
	base := NewBase()

	r, ok := base.DefaultRange("T3")
	require.True(t, ok)
	assert.Equal(t, 80.0, r.Min)
	assert.Equal(t, 200.0, r.Max)

	r, ok = base.DefaultRange("ALT")
	require.True(t, ok)
	assert.Equal(t, 10.0, r.Min)
	assert.Equal(t, 55.0, r.Max)
}
