package calculator

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Exponent notation is used outside [ExponentLowerBound, ExponentUpperBound)
const (
	ExponentUpperBound = 1e21
	ExponentLowerBound = 1e-6
)

// Special value spellings shown on the display
const (
	TextInfinity         = "Infinity"
	TextNegativeInfinity = "-Infinity"
	TextNaN              = "NaN"
)

// FormatNumber converts a result to its shortest round-trippable decimal text.
// Negative zero is shown as "0".
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return TextNaN
	case math.IsInf(v, 1):
		return TextInfinity
	case math.IsInf(v, -1):
		return TextNegativeInfinity
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if abs >= ExponentUpperBound || abs < ExponentLowerBound {
		// Go pads the exponent to two digits ("1e-07"); trim it to "1e-7"
		s := strconv.FormatFloat(v, 'e', -1, 64)
		mantissa, exp, found := strings.Cut(s, "e")
		if !found || len(exp) < 2 {
			return s
		}
		digits := strings.TrimLeft(exp[1:], "0")
		if digits == "" {
			digits = "0"
		}
		return mantissa + "e" + exp[:1] + digits
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseDisplay parses display text into a float.
// Out-of-range input saturates to ±Inf, unparsable input yields NaN.
func ParseDisplay(text string) float64 {
	v, err := strconv.ParseFloat(text, 64)
	if err == nil {
		return v
	}
	if errors.Is(err, strconv.ErrRange) {
		return v
	}

	// "12." is accepted by ParseFloat, a lone "." or "-." is not
	trimmed := strings.TrimSuffix(text, ".")
	if trimmed != text && trimmed != "" && trimmed != "-" {
		if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return v
		}
	}
	if trimmed == "" || trimmed == "-" {
		return 0
	}
	return math.NaN()
}
