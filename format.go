package promptlab

import (
	"fmt"
	"strconv"
)

// FormatTokenCount formats a token count with thousands separators.
func FormatTokenCount(tokens int) string {
	s := strconv.Itoa(tokens)

	negative := false
	if len(s) > 0 && s[0] == '-' {
		negative = true
		s = s[1:]
	}

	if len(s) <= 3 {
		if negative {
			return "-" + s
		}
		return s
	}

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}

	if negative {
		return "-" + string(out)
	}
	return string(out)
}

// FormatCost formats a USD cost with enough precision for per-call
// fractions of a cent.
func FormatCost(cost float64) string {
	return fmt.Sprintf("$%.6f", cost)
}

// Truncate shortens text to at most maxLength characters, appending an
// ellipsis when anything was cut. Cuts fall on rune boundaries so the
// result is always valid UTF-8.
func Truncate(text string, maxLength int) string {
	if maxLength <= 0 || len(text) <= maxLength {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength]) + "..."
}

// TemperatureDescription explains what a temperature value means in
// practice, for display next to the parameter control.
func TemperatureDescription(temperature float64) string {
	switch {
	case temperature < 0.3:
		return "Very deterministic - same input yields nearly the same output (best for factual tasks)"
	case temperature < 0.7:
		return "Balanced - consistent with some variation (general purpose)"
	case temperature < 1.2:
		return "Creative - more varied responses (good for brainstorming)"
	default:
		return "Highly random - very unpredictable (experimental)"
	}
}
