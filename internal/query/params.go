// internal/query/params.go
package query

import (
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Float parses raw as a decimal number. Empty or malformed input yields nil,
// which callers treat as an absent bound rather than an error.
func Float(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// Limit parses raw as a positive integer. Empty, malformed, zero, or negative
// input yields 0, meaning no truncation is applied.
func Limit(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// NewCollator returns a locale-aware collator for ordering display names.
// Collators are not safe for concurrent use, so callers create one per sort.
func NewCollator() *collate.Collator {
	return collate.New(language.English)
}
