// Package humanfmt provides human-readable formatting for clock times and counts.
package humanfmt

import (
	"fmt"
	"math"
	"strconv"
)

// HMS formats a seconds value as a zero-padded "HH:MM:SS" clock string.
// Non-finite input (Inf, NaN) formats as "N/A". The value is rounded to
// the nearest whole second first; hours have no upper bound and are padded
// to at least two digits, minutes and seconds are always 00-59.
func HMS(seconds float64) string {
	if math.IsInf(seconds, 0) || math.IsNaN(seconds) {
		return "N/A"
	}

	sec := int64(math.Round(seconds))
	h := sec / 3600
	m := (sec % 3600) / 60
	s := sec % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// Count formats an integer compactly for axis labels and log fields.
// Examples: "1.23M", "456.00K", "789".
func Count(n int) string {
	if n < 0 {
		return strconv.Itoa(n)
	}

	const (
		thousand = 1000
		million  = 1000 * thousand
		billion  = 1000 * million
	)

	switch {
	case n >= billion:
		return fmt.Sprintf("%.2fB", float64(n)/billion)
	case n >= million:
		return fmt.Sprintf("%.2fM", float64(n)/million)
	case n >= thousand:
		return fmt.Sprintf("%.2fK", float64(n)/thousand)
	default:
		return strconv.Itoa(n)
	}
}
