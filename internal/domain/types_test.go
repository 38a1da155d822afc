package domain

import (
	"testing"
)

func TestStatusConstants(t *testing.T) {
	tests := []struct {
		name     string
		value    Status
		expected string
	}{
		{"Normal", STATUS_NORMAL, "normal"},
		{"High", STATUS_HIGH, "high"},
		{"Low", STATUS_LOW, "low"},
		{"Unknown", STATUS_UNKNOWN, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if string(tt.value) != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, string(tt.value))
			}
			if !tt.value.IsValid() {
				t.Errorf("Expected %s to be valid", tt.value)
			}
		})
	}

	if Status("bogus").IsValid() {
		t.Error("Expected bogus status to be invalid")
	}
}

func TestStatusIsAbnormal(t *testing.T) {
	tests := []struct {
		name     string
		status   Status
		abnormal bool
	}{
		{"High is abnormal", STATUS_HIGH, true},
		{"Low is abnormal", STATUS_LOW, true},
		{"Normal is not abnormal", STATUS_NORMAL, false},
		{"Unknown is not abnormal", STATUS_UNKNOWN, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.IsAbnormal(); got != tt.abnormal {
				t.Errorf("IsAbnormal() = %v, want %v", got, tt.abnormal)
			}
		})
	}
}

func TestParseGender(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Gender
		wantErr bool
	}{
		{"Lowercase male", "male", GENDER_MALE, false},
		{"Uppercase female", "FEMALE", GENDER_FEMALE, false},
		{"Mixed case with spaces", "  Male ", GENDER_MALE, false},
		{"Empty string", "", "", true},
		{"Unsupported value", "other", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGender(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseGender(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseGender(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAgeGroupForAge(t *testing.T) {
	tests := []struct {
		name string
		age  int
		want AgeGroup
	}{
		{"Infant", 1, AGE_GROUP_CHILD},
		{"Seventeen", 17, AGE_GROUP_CHILD},
		{"Eighteen", 18, AGE_GROUP_ADULT},
		{"Elderly", 82, AGE_GROUP_ADULT},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AgeGroupForAge(tt.age); got != tt.want {
				t.Errorf("AgeGroupForAge(%d) = %v, want %v", tt.age, got, tt.want)
			}
		})
	}
}

func TestIsCriticalSeverity(t *testing.T) {
	tests := []struct {
		name     string
		severity string
		want     bool
	}{
		{"High marker", "High", true},
		{"Escalating range", "Moderate to High", true},
		{"Emergency marker", "EMERGENCY", true},
		{"Critical marker", "critical", true},
		{"Plain moderate", "Moderate", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCriticalSeverity(tt.severity); got != tt.want {
				t.Errorf("IsCriticalSeverity(%q) = %v, want %v", tt.severity, got, tt.want)
			}
		})
	}
}
