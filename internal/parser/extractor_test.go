package parser

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor() *Extractor {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewExtractor(NewResolver(), logger)
}

func TestExtractTableRow(t *testing.T) {
	extractor := newTestExtractor()

	results := extractor.Extract("Hemoglobin 13.5 g/dL")

	require.Len(t, results, 1)
	assert.Equal(t, "Hemoglobin", results[0].Term)
	assert.Equal(t, 13.5, results[0].Value)
	assert.Equal(t, "g/dL", results[0].Unit)
	assert.Equal(t, 0, results[0].SourceLine)
}

func TestExtractKeepsFirstSeenValue(t *testing.T) {
	extractor := newTestExtractor()

	text := "Hemoglobin 13.5 g/dL\n" +
		"Hemoglobin 14.2 g/dL"

	results := extractor.Extract(text)

	require.Len(t, results, 1)
	assert.Equal(t, 13.5, results[0].Value)
}

func TestExtractMultilineLayout(t *testing.T) {
	extractor := newTestExtractor()

	text := "Hemoglobin\n" +
		"\n" +
		"13.5 g/dL"

	results := extractor.Extract(text)

	require.Len(t, results, 1)
	assert.Equal(t, "Hemoglobin", results[0].Term)
	assert.Equal(t, 13.5, results[0].Value)
	assert.Equal(t, "g/dL", results[0].Unit)
}

func TestExtractBareNumberWithSeparateUnit(t *testing.T) {
	extractor := newTestExtractor()

	results := extractor.Extract("Glucose (mg/dl): 95")

	require.Len(t, results, 1)
	assert.Equal(t, "Glucose", results[0].Term)
	assert.Equal(t, 95.0, results[0].Value)
	assert.Equal(t, "mg/dL", results[0].Unit)
}

func TestExtractSkipsDigitsInsideTestNames(t *testing.T) {
	extractor := newTestExtractor()

	results := extractor.Extract("Free T3 2.8 pg/mL")

	require.Len(t, results, 1)
	assert.Equal(t, "Free T3", results[0].Term)
	assert.Equal(t, 2.8, results[0].Value)
	assert.Equal(t, "pg/mL", results[0].Unit)
}

func TestExtractRejectsImplausibleMagnitudes(t *testing.T) {
	extractor := newTestExtractor()

	results := extractor.Extract("Glucose 99999 mg/dL")

	assert.Empty(t, results)
}

func TestExtractNormalizesUnits(t *testing.T) {
	extractor := newTestExtractor()

	results := extractor.Extract("SGPT 42 iu/l")

	require.Len(t, results, 1)
	assert.Equal(t, "ALT", results[0].Term)
	assert.Equal(t, "U/L", results[0].Unit)
}

func TestExtractEmptyInput(t *testing.T) {
	extractor := newTestExtractor()

	assert.Nil(t, extractor.Extract(""))
	assert.Nil(t, extractor.Extract("   \n\n\t "))
	assert.Empty(t, extractor.Extract("No laboratory values in this text"))
}

func TestExtractFullReport(t *testing.T) {
	extractor := newTestExtractor()

	text := "COMPLETE BLOOD COUNT\n" +
		"Hemoglobin      13.5   g/dL\n" +
		"Hematocrit      41     %\n" +
		"WBC Count       7.2    thousand/ul\n" +
		"Platelet Count  250    thousand/ul\n"

	results := extractor.Extract(text)

	require.Len(t, results, 4)
	byTerm := make(map[string]float64, len(results))
	for _, r := range results {
		byTerm[r.Term] = r.Value
	}
	assert.Equal(t, 13.5, byTerm["Hemoglobin"])
	assert.Equal(t, 41.0, byTerm["Hematocrit"])
	assert.Equal(t, 7.2, byTerm["WBC Count"])
	assert.Equal(t, 250.0, byTerm["Platelet Count"])
}
