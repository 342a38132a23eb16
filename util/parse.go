package util

import "strconv"

// ParseInt parses str as a decimal int, returning fallback on any failure.
func ParseInt(str string, fallback int) int {
	if v, err := strconv.Atoi(str); err == nil {
		return v
	}
	return fallback
}

// ParseBool parses str with strconv.ParseBool semantics, returning fallback
// on any failure.
func ParseBool(str string, fallback bool) bool {
	if v, err := strconv.ParseBool(str); err == nil {
		return v
	}
	return fallback
}
