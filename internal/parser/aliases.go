// Package parser implements the report-understanding front end: alias
// resolution of real-world test name spellings to canonical knowledge base
// terms, unit normalization, and the multi-strategy extraction of
// (term, value, unit) triples from raw OCR text.
package parser

import (
	"regexp"
	"sort"
	"strings"
)

// aliasTable maps every recognized spelling, abbreviation or synonym to its
// canonical knowledge base term. Matching is case-insensitive and
// word-boundary delimited; candidates are tried longest-alias-first, so
// ordering within this table carries no meaning and "free t3" can never be
// shadowed by "t3".
var aliasTable = map[string]string{
	"hemoglobin":  "Hemoglobin",
	"haemoglobin": "Hemoglobin",
	"hgb":         "Hemoglobin",
	"hb":          "Hemoglobin",

	"hematocrit":  "Hematocrit",
	"haematocrit": "Hematocrit",
	"hct":         "Hematocrit",
	"pcv":         "Hematocrit",

	"red blood cell count": "RBC Count",
	"total rbc count":      "RBC Count",
	"rbc count":            "RBC Count",
	"rbc":                  "RBC Count",

	"white blood cell count": "WBC Count",
	"total leucocyte count":  "WBC Count",
	"total leukocyte count":  "WBC Count",
	"wbc count":              "WBC Count",
	"wbc":                    "WBC Count",
	"tlc":                    "WBC Count",

	"platelet count": "Platelet Count",
	"platelets":      "Platelet Count",
	"plt":            "Platelet Count",

	"erythrocyte sedimentation rate": "ESR",
	"sed rate":                       "ESR",
	"esr":                            "ESR",

	"fasting blood sugar":    "Glucose",
	"fasting plasma glucose": "Glucose",
	"fasting glucose":        "Glucose",
	"glucose fasting":        "Glucose",
	"blood glucose":          "Glucose",
	"blood sugar":            "Glucose",
	"glucose":                "Glucose",
	"fbs":                    "Glucose",

	"glycosylated hemoglobin": "HbA1c",
	"glycated hemoglobin":     "HbA1c",
	"hba1c":                   "HbA1c",
	"a1c":                     "HbA1c",

	"total cholesterol": "Total Cholesterol",
	"cholesterol total": "Total Cholesterol",
	"serum cholesterol": "Total Cholesterol",
	"cholesterol":       "Total Cholesterol",

	"hdl cholesterol": "HDL Cholesterol",
	"hdl-c":           "HDL Cholesterol",
	"hdl":             "HDL Cholesterol",

	"ldl cholesterol": "LDL Cholesterol",
	"ldl-c":           "LDL Cholesterol",
	"ldl":             "LDL Cholesterol",

	"triglycerides": "Triglycerides",
	"triglyceride":  "Triglycerides",
	"tg":            "Triglycerides",

	"thyroid stimulating hormone": "TSH",
	"tsh":                         "TSH",

	"free triiodothyronine": "Free T3",
	"free t3":               "Free T3",
	"t3 free":               "Free T3",
	"ft3":                   "Free T3",

	"free thyroxine": "Free T4",
	"free t4":        "Free T4",
	"t4 free":        "Free T4",
	"ft4":            "Free T4",

	"triiodothyronine": "T3",
	"total t3":         "T3",
	"t3":               "T3",

	"thyroxine": "T4",
	"total t4":  "T4",
	"t4":        "T4",

	"alanine aminotransferase": "ALT",
	"alanine transaminase":     "ALT",
	"sgpt":                     "ALT",
	"alt":                      "ALT",

	"aspartate aminotransferase": "AST",
	"aspartate transaminase":     "AST",
	"sgot":                       "AST",
	"ast":                        "AST",

	"alkaline phosphatase": "ALP",
	"alp":                  "ALP",

	"total bilirubin": "Bilirubin",
	"bilirubin total": "Bilirubin",
	"serum bilirubin": "Bilirubin",
	"bilirubin":       "Bilirubin",

	"serum creatinine": "Creatinine",
	"creatinine":       "Creatinine",

	"blood urea nitrogen": "Urea",
	"blood urea":          "Urea",
	"urea":                "Urea",
	"bun":                 "Urea",

	"serum uric acid": "Uric Acid",
	"uric acid":       "Uric Acid",

	"25 hydroxy vitamin d": "Vitamin D",
	"25-oh vitamin d":      "Vitamin D",
	"vitamin d3":           "Vitamin D",
	"vitamin d":            "Vitamin D",
	"vit d":                "Vitamin D",

	"vitamin b12": "Vitamin B12",
	"vit b12":     "Vitamin B12",
	"cobalamin":   "Vitamin B12",
	"b12":         "Vitamin B12",

	"serum sodium": "Sodium",
	"sodium":       "Sodium",
	"na+":          "Sodium",

	"serum potassium": "Potassium",
	"potassium":       "Potassium",
	"k+":              "Potassium",
}

// aliasEntry is one compiled alias pattern bound to its canonical term.
type aliasEntry struct {
	alias     string
	canonical string
	pattern   *regexp.Regexp
}

// Resolver matches free text against the alias table. Built once, immutable,
// safe for concurrent use.
type Resolver struct {
	entries []aliasEntry
}

// NewResolver compiles the alias table into word-boundary patterns sorted by
// descending alias length, making longest-match-wins explicit and
// order-independent.
func NewResolver() *Resolver {
	entries := make([]aliasEntry, 0, len(aliasTable))
	for alias, canonical := range aliasTable {
		entries = append(entries, aliasEntry{
			alias:     alias,
			canonical: canonical,
			pattern:   compileAliasPattern(alias),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if len(entries[i].alias) != len(entries[j].alias) {
			return len(entries[i].alias) > len(entries[j].alias)
		}
		return entries[i].alias < entries[j].alias
	})
	return &Resolver{entries: entries}
}

// compileAliasPattern builds a case-insensitive pattern that matches the
// alias only as a whole word, so "t3" never matches inside unrelated longer
// tokens.
func compileAliasPattern(alias string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:^|[^a-z0-9])` + regexp.QuoteMeta(alias) + `(?:$|[^a-z0-9])`)
}

// FindTerm returns the canonical term for the longest alias appearing as a
// whole word in the line, or false when no alias matches.
func (r *Resolver) FindTerm(line string) (string, bool) {
	for _, entry := range r.entries {
		if entry.pattern.MatchString(line) {
			return entry.canonical, true
		}
	}
	return "", false
}

// IsStandaloneTermLine reports whether the line names a known test and
// carries no digits, i.e. an OCR layout where the value landed on a
// following line.
func (r *Resolver) IsStandaloneTermLine(line string) (string, bool) {
	if strings.ContainsAny(line, "0123456789") {
		return "", false
	}
	return r.FindTerm(line)
}

// KnownAliases returns the number of registered aliases.
func (r *Resolver) KnownAliases() int {
	return len(r.entries)
}
