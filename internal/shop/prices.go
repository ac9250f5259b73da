package shop

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePrice converts a displayed price string into a numeric value,
// stripping currency symbols and group separators.
func ParsePrice(text string) (float64, error) {
	cleaned := strings.TrimSpace(text)
	for _, sym := range []string{"$", "€", ","} {
		cleaned = strings.ReplaceAll(cleaned, sym, "")
	}
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, fmt.Errorf("empty price text %q", text)
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("could not parse price %q: %w", text, err)
	}
	return v, nil
}

// ParsePrices converts scraped price texts into numeric samples. Entries
// that fail to parse are returned separately so the caller can log and
// drop them; they are never fatal.
func ParsePrices(texts []string) (values []float64, dropped []string) {
	for _, t := range texts {
		v, err := ParsePrice(t)
		if err != nil {
			dropped = append(dropped, t)
			continue
		}
		values = append(values, v)
	}
	return values, dropped
}

// Ascending reports whether the sample equals its own sorted copy.
func Ascending(values []float64) bool {
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return false
		}
	}
	return true
}
