package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeUnit(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"Lowercase variant", "mg/dl", "mg/dL"},
		{"Uppercase variant", "MG/DL", "mg/dL"},
		{"Slashless OCR form", "gdl", "g/dL"},
		{"Legacy percent form", "mg%", "mg/dL"},
		{"IU spelled out", "IU/L", "U/L"},
		{"Micro prefix spelled mcg", "mcg/dl", "µg/dL"},
		{"Thousand count form", "10^3/ul", "thousand/µL"},
		{"Unknown passes through", "furlongs", "furlongs"},
		{"Whitespace trimmed", "  ng/ml ", "ng/mL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeUnit(tt.raw))
		})
	}
}

func TestMatchUnitAt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantUnit string
		wantLen  int
	}{
		{"Unit at start", "mg/dl fasting", "mg/dL", 5},
		{"Prefers longer token", "miu/ml sample", "mIU/mL", 6},
		{"Letter extends token", "mg/dlx", "", 0},
		{"No unit present", "within range", "", 0},
		{"Bare percent", "%", "%", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit, n := matchUnitAt(tt.input)
			assert.Equal(t, tt.wantUnit, unit)
			assert.Equal(t, tt.wantLen, n)
		})
	}
}

func TestFindUnitAnywhere(t *testing.T) {
	assert.Equal(t, "mg/dL", findUnitAnywhere("Result: 95 mg/dl (fasting)"))
	assert.Equal(t, "", findUnitAnywhere("no measurement here"))
}
