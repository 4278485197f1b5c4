package csvdata

import (
	"math"
	"strconv"
	"strings"
)

// missing holds the tokens read as an absent value.
var missing = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {},
	"NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {}, "nan": {}, "null": {},
}

// IsMissing reports whether s is exactly one of the missing tokens.
// Surrounding whitespace is significant: " " is a present text value.
func IsMissing(s string) bool {
	_, ok := missing[s]
	return ok
}

// inferKind picks the narrowest kind that every present value of column c
// parses as. A column with no present values is text.
func inferKind(raw [][]string, c int) Kind {
	canInt, canReal, canBool := true, true, true
	present := 0
	for _, rec := range raw {
		s := rec[c]
		if IsMissing(s) {
			continue
		}
		present++
		s = strings.TrimSpace(s)
		if canInt {
			if _, err := strconv.ParseInt(s, 10, 64); err != nil {
				canInt = false
			}
		}
		if canReal {
			if _, ok := parseReal(s); !ok {
				canReal = false
			}
		}
		if canBool {
			if _, ok := parseBool(s); !ok {
				canBool = false
			}
		}
		if !canInt && !canReal && !canBool {
			return KindText
		}
	}
	switch {
	case present == 0:
		return KindText
	case canInt:
		return KindInteger
	case canReal:
		return KindReal
	case canBool:
		return KindBoolean
	default:
		return KindText
	}
}

func convert(s string, kind Kind) any {
	if IsMissing(s) {
		return nil
	}
	trimmed := strings.TrimSpace(s)
	switch kind {
	case KindInteger:
		v, _ := strconv.ParseInt(trimmed, 10, 64)
		return v
	case KindReal:
		v, _ := parseReal(trimmed)
		return v
	case KindBoolean:
		v, _ := parseBool(trimmed)
		return v
	default:
		return s
	}
}

// parseReal rejects infinities and NaN so every real cell can be encoded as JSON.
func parseReal(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

func parseBool(s string) (bool, bool) {
	switch s {
	case "True", "TRUE", "true":
		return true, true
	case "False", "FALSE", "false":
		return false, true
	}
	return false, false
}
