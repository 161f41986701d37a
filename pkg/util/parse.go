package util

import "strconv"

// ParseIntDefault parses string to int or returns default if empty/invalid.
func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

// CoerceFloat parses a manually entered numeric string. Non-numeric input
// coerces to zero instead of being rejected; the second return reports
// whether coercion happened.
func CoerceFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, true
	}
	return v, false
}
