package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/lab-insight-server/internal/domain"
)

// Line strategy guards: shorter lines are OCR noise, longer ones are merged
// blocks that would produce accidental matches.
const (
	minLineLength = 3
	maxLineLength = 200

	// How many following lines a value may trail its test name by.
	lookaheadLines = 3
)

var numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// Extractor pulls (term, value, unit) triples out of raw OCR text using
// three independent strategies whose findings are merged first-seen-wins by
// canonical term. It never fails on malformed input; bad lines simply
// produce fewer results.
type Extractor struct {
	resolver *Resolver
	logger   *logrus.Logger
}

// NewExtractor creates an extractor over the shared alias resolver.
func NewExtractor(resolver *Resolver, logger *logrus.Logger) *Extractor {
	return &Extractor{
		resolver: resolver,
		logger:   logger,
	}
}

// Extract runs all strategies over the text and merges their findings.
// An empty or unparseable document yields zero results, not an error.
func (e *Extractor) Extract(rawText string) []domain.ExtractedResult {
	lines := splitLines(rawText)
	if len(lines) == 0 {
		return nil
	}

	candidates := e.tableStrategy(lines)
	candidates = append(candidates, e.lineStrategy(lines)...)
	candidates = append(candidates, e.multilineStrategy(lines)...)

	merged := mergeFirstSeen(candidates)

	e.logger.WithFields(logrus.Fields{
		"lines":      len(lines),
		"candidates": len(candidates),
		"results":    len(merged),
	}).Debug("Extraction completed")

	return merged
}

// tableStrategy handles inline table rows: test name and a unit-attached
// number on the same line.
func (e *Extractor) tableStrategy(lines []string) []domain.ExtractedResult {
	var results []domain.ExtractedResult
	for i, line := range lines {
		term, ok := e.resolver.FindTerm(line)
		if !ok {
			continue
		}
		value, unit, ok := extractNumberWithUnit(line)
		if !ok || !domain.PlausibleMagnitude(value) {
			continue
		}
		results = append(results, domain.ExtractedResult{
			Term:       term,
			Value:      value,
			Unit:       unit,
			SourceLine: i,
		})
	}
	return results
}

// lineStrategy handles rows where the value trails the name with intervening
// whitespace or table artifacts, on the same line or up to three lines below.
func (e *Extractor) lineStrategy(lines []string) []domain.ExtractedResult {
	var results []domain.ExtractedResult
	for i, line := range lines {
		if len(line) < minLineLength || len(line) > maxLineLength {
			continue
		}
		term, ok := e.resolver.FindTerm(line)
		if !ok {
			continue
		}
		for j := i; j <= i+lookaheadLines && j < len(lines); j++ {
			value, unit, found := extractValue(lines[j])
			if !found || !domain.PlausibleMagnitude(value) {
				continue
			}
			results = append(results, domain.ExtractedResult{
				Term:       term,
				Value:      value,
				Unit:       unit,
				SourceLine: i,
			})
			break
		}
	}
	return results
}

// multilineStrategy handles OCR layouts where a test name sits alone on its
// own line (no digits at all) and the value appears on one of the following
// lines with its unit attached.
func (e *Extractor) multilineStrategy(lines []string) []domain.ExtractedResult {
	var results []domain.ExtractedResult
	for i, line := range lines {
		term, ok := e.resolver.IsStandaloneTermLine(line)
		if !ok {
			continue
		}
		for j := i + 1; j <= i+lookaheadLines && j < len(lines); j++ {
			value, unit, found := extractNumberWithUnit(lines[j])
			if !found || !domain.PlausibleMagnitude(value) {
				continue
			}
			results = append(results, domain.ExtractedResult{
				Term:       term,
				Value:      value,
				Unit:       unit,
				SourceLine: i,
			})
			break
		}
	}
	return results
}

// mergeFirstSeen deduplicates candidates by canonical term, keeping the
// earliest-found value for each test. Later duplicate mentions are dropped
// even if they might be more accurate; a simplicity/robustness trade-off.
func mergeFirstSeen(candidates []domain.ExtractedResult) []domain.ExtractedResult {
	seen := make(map[string]bool, len(candidates))
	var merged []domain.ExtractedResult
	for _, c := range candidates {
		if seen[c.Term] {
			continue
		}
		seen[c.Term] = true
		merged = append(merged, c)
	}
	return merged
}

// extractValue applies the numeric extraction policy for one line: prefer a
// number immediately followed by a unit-looking token, otherwise fall back
// to the first bare number paired with a separate unit search anywhere in
// the line.
func extractValue(line string) (float64, string, bool) {
	if value, unit, ok := extractNumberWithUnit(line); ok {
		return value, unit, true
	}
	value, ok := extractBareNumber(line)
	if !ok {
		return 0, "", false
	}
	return value, findUnitAnywhere(line), true
}

// extractNumberWithUnit finds the first number in the line that is directly
// followed (spaces allowed) by a recognized unit token.
func extractNumberWithUnit(line string) (float64, string, bool) {
	for _, loc := range numberPattern.FindAllStringIndex(line, -1) {
		if partOfWord(line, loc[0]) {
			continue
		}
		rest := line[loc[1]:]
		trimmed := strings.TrimLeft(rest, " \t")
		unit, n := matchUnitAt(trimmed)
		if n == 0 {
			continue
		}
		value, err := strconv.ParseFloat(line[loc[0]:loc[1]], 64)
		if err != nil {
			continue
		}
		return value, unit, true
	}
	return 0, "", false
}

// extractBareNumber finds the first standalone number in the line.
func extractBareNumber(line string) (float64, bool) {
	for _, loc := range numberPattern.FindAllStringIndex(line, -1) {
		if partOfWord(line, loc[0]) {
			continue
		}
		value, err := strconv.ParseFloat(line[loc[0]:loc[1]], 64)
		if err != nil {
			continue
		}
		return value, true
	}
	return 0, false
}

// partOfWord reports whether the number starting at pos is glued to a
// preceding letter, as in the digit inside "HbA1c" or "T3".
func partOfWord(line string, pos int) bool {
	if pos == 0 {
		return false
	}
	c := line[pos-1]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// splitLines normalizes line endings and trims each line, keeping blank
// lines in place so source line indices stay stable.
func splitLines(rawText string) []string {
	if strings.TrimSpace(rawText) == "" {
		return nil
	}
	raw := strings.Split(strings.ReplaceAll(rawText, "\r\n", "\n"), "\n")
	lines := make([]string, len(raw))
	for i, line := range raw {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}
