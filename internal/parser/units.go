package parser

import (
	"sort"
	"strings"
)

// unitTable canonicalizes the OCR and typographic variants of measurement
// units seen in real reports. Keys are lowercase as they appear in text.
var unitTable = map[string]string{
	"mg/dl": "mg/dL",
	"mgdl":  "mg/dL",
	"mg%":   "mg/dL",

	"g/dl":  "g/dL",
	"gdl":   "g/dL",
	"gm/dl": "g/dL",
	"gm%":   "g/dL",

	"iu/l": "U/L",
	"u/l":  "U/L",

	"miu/l":  "mIU/L",
	"miu/ml": "mIU/mL",
	"uiu/ml": "µIU/mL",
	"µiu/ml": "µIU/mL",

	"ng/dl": "ng/dL",
	"ngdl":  "ng/dL",
	"ng/ml": "ng/mL",
	"ngml":  "ng/mL",
	"pg/ml": "pg/mL",

	"mcg/dl": "µg/dL",
	"ug/dl":  "µg/dL",
	"µg/dl":  "µg/dL",

	"mmol/l": "mmol/L",
	"meq/l":  "mEq/L",

	"mm/hr":     "mm/hr",
	"mm/1st hr": "mm/hr",

	"cells/cumm": "cells/cumm",
	"/cumm":      "cells/cumm",
	"lakhs/cumm": "lakh/cumm",
	"lakh/cumm":  "lakh/cumm",

	"thousand/ul":  "thousand/µL",
	"thousand/µl":  "thousand/µL",
	"10^3/ul":      "thousand/µL",
	"x10^3/ul":     "thousand/µL",
	"k/ul":         "thousand/µL",
	"million/cumm": "million/µL",
	"million/ul":   "million/µL",
	"million/µl":   "million/µL",
	"m/ul":         "million/µL",

	"%": "%",
}

// unitKeys holds the table keys sorted by descending length so prefix
// matching prefers "mg/dl" over "mg%"-style shorter variants.
var unitKeys = func() []string {
	keys := make([]string, 0, len(unitTable))
	for k := range unitTable {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

// NormalizeUnit maps a raw unit token to its canonical spelling. Unrecognized
// units pass through trimmed but otherwise untouched.
func NormalizeUnit(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if canonical, ok := unitTable[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// matchUnitAt tries to match a known unit token at the start of s, returning
// the canonical unit and the matched length. The character following the
// token must not extend it into a longer word.
func matchUnitAt(s string) (string, int) {
	lowered := strings.ToLower(s)
	for _, key := range unitKeys {
		if !strings.HasPrefix(lowered, key) {
			continue
		}
		if rest := lowered[len(key):]; rest != "" && isUnitChar(rune(rest[0])) {
			continue
		}
		return unitTable[key], len(key)
	}
	return "", 0
}

// findUnitAnywhere scans a line for the first known unit token appearing at
// a word boundary. Used by the bare-number fallback when no unit-attached
// number was found.
func findUnitAnywhere(line string) string {
	for i := 0; i < len(line); i++ {
		if i > 0 && isUnitChar(rune(line[i-1])) {
			continue
		}
		if unit, n := matchUnitAt(line[i:]); n > 0 {
			return unit
		}
	}
	return ""
}

// isUnitChar reports whether a character can be part of a unit token.
func isUnitChar(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '/', c == '%', c == '^', c == 'µ':
		return true
	default:
		return false
	}
}
