// Package knowledge holds the static lab test knowledge base: canonical test
// definitions with demographic reference ranges, explanations, and high/low
// interpretation blocks. The table is compiled in, built once at process
// start, and never mutated, so it is safe for unrestricted concurrent reads.
package knowledge

import (
	"fmt"

	"github.com/lab-insight-server/internal/domain"
)

// Range is a reference band for one demographic group. Invariant: Min <= Max.
type Range struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Unit string  `json:"unit"`
}

// Contains reports whether a value falls inside the band, boundaries
// inclusive.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Text renders the band for display, e.g. "70 - 100 mg/dL".
func (r Range) Text() string {
	return fmt.Sprintf("%g - %g %s", r.Min, r.Max, r.Unit)
}

// Interpretation describes what an out-of-range value means clinically.
type Interpretation struct {
	Condition string   `json:"condition"`
	Causes    []string `json:"causes"`
	Symptoms  []string `json:"symptoms"`
	Severity  string   `json:"severity"`
	NextStep  string   `json:"next_step"`
}

// GradedBand is an optional display threshold band, e.g. the
// normal/prediabetes/diabetes grading for HbA1c.
type GradedBand struct {
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// TestDefinition is one knowledge base entry for a canonical lab test.
// Ranges are keyed by demographic group: "male", "female", "child", "all".
// Every definition carries either an "all" range or a full male/female pair.
type TestDefinition struct {
	Name        string           `json:"name"`
	Category    string           `json:"category"`
	Ranges      map[string]Range `json:"ranges"`
	Explanation string           `json:"explanation"`
	HighMeans   *Interpretation  `json:"high_means,omitempty"`
	LowMeans    *Interpretation  `json:"low_means,omitempty"`
	GradedBands []GradedBand     `json:"graded_bands,omitempty"`
}

// Validate checks the definition invariants.
func (td *TestDefinition) Validate() error {
	if td.Name == "" {
		return domain.NewValidationError("name", "name is required", td.Name)
	}
	for key, r := range td.Ranges {
		if r.Min > r.Max {
			return domain.NewValidationError("ranges", fmt.Sprintf("%s range %q has min > max", td.Name, key), r)
		}
	}
	if _, ok := td.Ranges["all"]; ok {
		return nil
	}
	_, male := td.Ranges["male"]
	_, female := td.Ranges["female"]
	if male && female {
		return nil
	}
	return domain.NewValidationError("ranges", fmt.Sprintf("%s needs an \"all\" range or a male/female pair", td.Name), td.Ranges)
}

// Base is the process-wide knowledge base. Construct once via NewBase.
type Base struct {
	definitions map[string]*TestDefinition
	order       []string
}

// NewBase builds the knowledge base from the compiled-in definition table.
func NewBase() *Base {
	b := &Base{definitions: make(map[string]*TestDefinition, len(definitionTable))}
	for i := range definitionTable {
		td := &definitionTable[i]
		b.definitions[td.Name] = td
		b.order = append(b.order, td.Name)
	}
	return b
}

// Definition returns the definition for a canonical term.
func (b *Base) Definition(term string) (*TestDefinition, bool) {
	td, ok := b.definitions[term]
	return td, ok
}

// Terms returns all canonical term names in table order.
func (b *Base) Terms() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// NormalRange resolves the applicable reference range for a term. Resolution
// order: exact gender match, then "all", then the age group key. Absent
// demographic data degrades to no range (and later to UNKNOWN status) rather
// than failing the whole report.
func (b *Base) NormalRange(term string, gender domain.Gender, ageGroup domain.AgeGroup) (Range, bool) {
	td, ok := b.definitions[term]
	if !ok {
		return Range{}, false
	}
	if r, ok := td.Ranges[gender.String()]; ok {
		return r, true
	}
	if r, ok := td.Ranges["all"]; ok {
		return r, true
	}
	if r, ok := td.Ranges[ageGroup.String()]; ok {
		return r, true
	}
	return Range{}, false
}

// DefaultRange resolves a gender-neutral reference range for a term,
// preferring the "all" key. Used by consumers without patient demographics,
// such as the statistical validator's directionality checks.
func (b *Base) DefaultRange(term string) (Range, bool) {
	td, ok := b.definitions[term]
	if !ok {
		return Range{}, false
	}
	if r, ok := td.Ranges["all"]; ok {
		return r, true
	}
	if r, ok := td.Ranges["male"]; ok {
		return r, true
	}
	return Range{}, false
}

// ValueStatus classifies a value against the resolved reference range using
// the adult age bracket.
func (b *Base) ValueStatus(term string, value float64, gender domain.Gender) domain.Status {
	return b.ValueStatusFor(term, value, gender, domain.AGE_GROUP_ADULT)
}

// ValueStatusFor classifies a value against the reference range resolved for
// the full demographics. Boundaries are inclusive: a value equal to min or
// max is normal.
func (b *Base) ValueStatusFor(term string, value float64, gender domain.Gender, ageGroup domain.AgeGroup) domain.Status {
	r, ok := b.NormalRange(term, gender, ageGroup)
	if !ok {
		return domain.STATUS_UNKNOWN
	}
	switch {
	case value < r.Min:
		return domain.STATUS_LOW
	case value > r.Max:
		return domain.STATUS_HIGH
	default:
		return domain.STATUS_NORMAL
	}
}

// GradedBandFor returns the label of the graded display band containing the
// value, when the definition carries graded thresholds.
func (b *Base) GradedBandFor(term string, value float64) string {
	td, ok := b.definitions[term]
	if !ok {
		return ""
	}
	for _, band := range td.GradedBands {
		if value >= band.Min && value <= band.Max {
			return band.Label
		}
	}
	return ""
}

// Interpretation produces the full interpreted record for a single term and
// value using the adult age bracket. An unknown canonical term surfaces
// domain.ErrUnknownTerm as a sentinel; callers must check for it rather than
// expecting a panic.
func (b *Base) Interpretation(term string, value float64, gender domain.Gender) (*domain.InterpretedResult, error) {
	return b.InterpretationFor(term, value, gender, domain.AGE_GROUP_ADULT)
}

// InterpretationFor is Interpretation with an explicit age bracket.
func (b *Base) InterpretationFor(term string, value float64, gender domain.Gender, ageGroup domain.AgeGroup) (*domain.InterpretedResult, error) {
	td, ok := b.definitions[term]
	if !ok {
		return nil, domain.ErrUnknownTerm
	}

	result := &domain.InterpretedResult{
		Term:        term,
		Value:       value,
		Status:      b.ValueStatusFor(term, value, gender, ageGroup),
		Category:    td.Category,
		Explanation: td.Explanation,
		GradedBand:  b.GradedBandFor(term, value),
	}

	if r, ok := b.NormalRange(term, gender, ageGroup); ok {
		result.NormalRangeText = r.Text()
		result.Unit = r.Unit
	}

	switch result.Status {
	case domain.STATUS_HIGH:
		if td.HighMeans != nil {
			applyInterpretation(result, td.HighMeans)
		}
	case domain.STATUS_LOW:
		if td.LowMeans != nil {
			applyInterpretation(result, td.LowMeans)
		}
	case domain.STATUS_NORMAL:
		result.Condition = "Within normal limits"
		result.NextStep = "No action needed. Maintain your current health routine."
	}

	return result, nil
}

func applyInterpretation(result *domain.InterpretedResult, meaning *Interpretation) {
	result.Condition = meaning.Condition
	result.Causes = append([]string(nil), meaning.Causes...)
	result.Symptoms = append([]string(nil), meaning.Symptoms...)
	result.Severity = meaning.Severity
	result.NextStep = meaning.NextStep
}
