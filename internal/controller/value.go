package controller

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numberPrefix matches the longest leading decimal literal, as a lenient
// number field would read it
var numberPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// ParseNumber reads a float from the start of raw and ignores trailing text.
// Input with no numeric prefix yields NaN.
func ParseNumber(raw string) float64 {
	s := strings.TrimLeft(raw, " \t\n\r\v\f")
	match := numberPrefix.FindString(s)
	if match == "" {
		return math.NaN()
	}

	switch strings.TrimLeft(match, "+-") {
	case "Infinity":
		if strings.HasPrefix(match, "-") {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	// Out-of-range literals parse to ±Inf
	f, _ := strconv.ParseFloat(match, 64)
	return f
}

// ParseFloatValue is the value parser of the numeric categories
func ParseFloatValue(raw string) any {
	return ParseNumber(raw)
}

// ParseStringValue is the value parser of number-base: the trimmed text is sent as is
func ParseStringValue(raw string) any {
	return strings.TrimSpace(raw)
}
