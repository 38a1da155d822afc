// Package validator implements the forensic/statistical screen over raw
// extracted lab results: physiological impossibility bounds, z-score outlier
// detection against population statistics, pairwise medical correlation
// checks, and a round-number excess heuristic. It is a heuristic screen, not
// a certification; it annotates reports and never blocks processing.
package validator

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/lab-insight-server/internal/domain"
	"github.com/lab-insight-server/internal/knowledge"
)

// Fixed point values per check. Scores are cumulative and additive; there is
// no weighting or normalization beyond these constants.
const (
	pointsImpossibleValue  = 30
	pointsExtremeOutlier   = 15
	pointsModerateOutlier  = 5
	pointsGlucoseMismatch  = 20
	pointsCholesterolMath  = 25
	pointsASTALTRatio      = 15
	pointsTSHContradiction = 20
	pointsRoundNumbers     = 10

	// A total below this threshold counts as validated.
	suspicionThreshold = 30

	extremeZScore  = 4.0
	moderateZScore = 3.0
)

// Validator scores an extracted result set for statistical plausibility.
// Pure and deterministic over its inputs; safe for concurrent use.
type Validator struct {
	kb     *knowledge.Base
	logger *logrus.Logger
}

// New creates a validator backed by the knowledge base, which supplies the
// normal bounds used by the hormone directionality check.
func New(kb *knowledge.Base, logger *logrus.Logger) *Validator {
	return &Validator{
		kb:     kb,
		logger: logger,
	}
}

// Validate runs all checks over the raw extracted results, in fixed order:
// impossible values, outliers, correlations, round-number excess. Findings
// appear in that order. An empty result set yields a clean report.
func (v *Validator) Validate(results []domain.ExtractedResult) *domain.ValidationReport {
	report := &domain.ValidationReport{Findings: []string{}}

	values := make(map[string]float64, len(results))
	for _, r := range results {
		if _, ok := values[r.Term]; !ok {
			values[r.Term] = r.Value
		}
	}

	v.checkImpossibleValues(results, report)
	v.checkOutliers(results, report)
	v.checkCorrelations(values, report)
	v.checkRoundNumbers(results, report)

	report.Validated = report.SuspicionScore < suspicionThreshold

	v.logger.WithFields(logrus.Fields{
		"suspicion_score": report.SuspicionScore,
		"validated":       report.Validated,
		"findings":        len(report.Findings),
	}).Info("Statistical validation completed")

	return report
}

// checkImpossibleValues flags values outside incompatible-with-life bounds.
func (v *Validator) checkImpossibleValues(results []domain.ExtractedResult, report *domain.ValidationReport) {
	for _, r := range results {
		bound, ok := physiologicalBounds[r.Term]
		if !ok {
			continue
		}
		if r.Value < bound.Min || r.Value > bound.Max {
			report.SuspicionScore += pointsImpossibleValue
			report.Details.ImpossibleValues++
			report.Findings = append(report.Findings, fmt.Sprintf(
				"%s value %g is physiologically impossible (expected %g-%g)",
				r.Term, r.Value, bound.Min, bound.Max))
		}
	}
}

// checkOutliers flags values whose z-score against fixed population
// statistics marks them as statistical outliers.
func (v *Validator) checkOutliers(results []domain.ExtractedResult, report *domain.ValidationReport) {
	for _, r := range results {
		stat, ok := populationStats[r.Term]
		if !ok || stat.SD == 0 {
			continue
		}
		z := math.Abs(r.Value-stat.Mean) / stat.SD
		switch {
		case z > extremeZScore:
			report.SuspicionScore += pointsExtremeOutlier
			report.Details.Outliers++
			report.Findings = append(report.Findings, fmt.Sprintf(
				"%s value %g is an extreme outlier (z-score %.1f)", r.Term, r.Value, z))
		case z > moderateZScore:
			report.SuspicionScore += pointsModerateOutlier
			report.Details.Outliers++
			report.Findings = append(report.Findings, fmt.Sprintf(
				"%s value %g is a statistical outlier (z-score %.1f)", r.Term, r.Value, z))
		}
	}
}

// checkCorrelations runs the pairwise and triple-wise medical consistency
// rules. Each rule triggers independently when its required terms are all
// present in the result set.
func (v *Validator) checkCorrelations(values map[string]float64, report *domain.ValidationReport) {
	v.checkGlucoseHbA1c(values, report)
	v.checkCholesterolIdentity(values, report)
	v.checkASTALTRatio(values, report)
	v.checkThyroidDirectionality(values, report)
}

// checkGlucoseHbA1c verifies the estimated-average-glucose relationship:
// expected glucose = HbA1c*28.7 - 46.7, with a 30% tolerance band.
func (v *Validator) checkGlucoseHbA1c(values map[string]float64, report *domain.ValidationReport) {
	hba1c, okA := values["HbA1c"]
	glucose, okG := values["Glucose"]
	if !okA || !okG {
		return
	}
	expected := hba1c*28.7 - 46.7
	if expected <= 0 {
		return
	}
	if math.Abs(glucose-expected) > 0.30*expected {
		report.SuspicionScore += pointsGlucoseMismatch
		report.Details.CorrelationViolations++
		report.Findings = append(report.Findings, fmt.Sprintf(
			"Glucose %g inconsistent with HbA1c %g (expected ~%.0f mg/dL)",
			glucose, hba1c, expected))
	}
}

// checkCholesterolIdentity verifies the Friedewald identity:
// Total = HDL + LDL + Triglycerides/5, with tolerance of 10 percent of Total.
func (v *Validator) checkCholesterolIdentity(values map[string]float64, report *domain.ValidationReport) {
	total, okT := values["Total Cholesterol"]
	hdl, okH := values["HDL Cholesterol"]
	ldl, okL := values["LDL Cholesterol"]
	trig, okG := values["Triglycerides"]
	if !okT || !okH || !okL || !okG {
		return
	}
	calculated := hdl + ldl + trig/5
	tolerance := 0.10 * total
	if math.Abs(total-calculated) > tolerance {
		report.SuspicionScore += pointsCholesterolMath
		report.Details.CorrelationViolations++
		report.Findings = append(report.Findings, fmt.Sprintf(
			"Cholesterol components (HDL+LDL+TG/5 = %g) do not add up to total %g",
			calculated, total))
	}
}

// checkASTALTRatio flags AST/ALT ratios outside the physiologic window.
// A zero ALT skips the check as valid rather than dividing by zero.
func (v *Validator) checkASTALTRatio(values map[string]float64, report *domain.ValidationReport) {
	ast, okA := values["AST"]
	alt, okL := values["ALT"]
	if !okA || !okL || alt == 0 {
		return
	}
	ratio := ast / alt
	if ratio < 0.2 || ratio > 5 {
		report.SuspicionScore += pointsASTALTRatio
		report.Details.CorrelationViolations++
		report.Findings = append(report.Findings, fmt.Sprintf(
			"AST/ALT ratio %.2f is outside the plausible range (0.2-5)", ratio))
	}
}

// checkThyroidDirectionality flags TSH values that contradict the measured
// thyroid hormones: high TSH with elevated T3/T4, or suppressed TSH with low
// T3/T4, is the opposite of the expected feedback direction.
func (v *Validator) checkThyroidDirectionality(values map[string]float64, report *domain.ValidationReport) {
	tsh, ok := values["TSH"]
	if !ok {
		return
	}

	hormoneAbove := func(term string) bool {
		value, present := values[term]
		if !present {
			return false
		}
		r, found := v.kb.DefaultRange(term)
		return found && value > r.Max
	}
	hormoneBelow := func(term string) bool {
		value, present := values[term]
		if !present {
			return false
		}
		r, found := v.kb.DefaultRange(term)
		return found && value < r.Min
	}

	switch {
	case tsh > 4.5 && (hormoneAbove("T3") || hormoneAbove("T4")):
		report.SuspicionScore += pointsTSHContradiction
		report.Details.CorrelationViolations++
		report.Findings = append(report.Findings, fmt.Sprintf(
			"TSH %g is high while T3/T4 are elevated; feedback direction is contradictory", tsh))
	case tsh < 0.5 && (hormoneBelow("T3") || hormoneBelow("T4")):
		report.SuspicionScore += pointsTSHContradiction
		report.Details.CorrelationViolations++
		report.Findings = append(report.Findings, fmt.Sprintf(
			"TSH %g is suppressed while T3/T4 are low; feedback direction is contradictory", tsh))
	}
}

// checkRoundNumbers flags result sets where more than half of the values are
// exact non-zero multiples of 10. Real lab measurements rarely cluster on
// round numbers, so an excess is treated as a forgery signal.
func (v *Validator) checkRoundNumbers(results []domain.ExtractedResult, report *domain.ValidationReport) {
	if len(results) == 0 {
		return
	}
	round := 0
	for _, r := range results {
		if r.Value != 0 && math.Mod(r.Value, 10) == 0 {
			round++
		}
	}
	if float64(round) > float64(len(results))/2 {
		report.SuspicionScore += pointsRoundNumbers
		report.Details.RoundNumberExcess++
		report.Findings = append(report.Findings, fmt.Sprintf(
			"%d of %d values are exact multiples of 10; unusual for real measurements",
			round, len(results)))
	}
}
