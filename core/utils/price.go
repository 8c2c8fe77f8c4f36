package utils

import (
	"fmt"
	"strings"
)

// NormalizePrice validates a decimal price string and returns its canonical
// form. Prices are stored as text to avoid floating point rounding; the
// canonical form is digits with an optional dot and at most two decimals
// ("12.99", "2.5", "0").
func NormalizePrice(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("price is empty")
	}
	// A leading comma-decimal is a common client slip; accept and canonicalize.
	s = strings.ReplaceAll(s, ",", ".")

	whole, frac, hasDot := strings.Cut(s, ".")
	if whole == "" || !isDigits(whole) {
		return "", fmt.Errorf("invalid price %q", raw)
	}
	if hasDot {
		if frac == "" || len(frac) > 2 || !isDigits(frac) {
			return "", fmt.Errorf("invalid price %q", raw)
		}
	}

	whole = strings.TrimLeft(whole, "0")
	if whole == "" {
		whole = "0"
	}
	if !hasDot {
		return whole, nil
	}
	return whole + "." + frac, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
