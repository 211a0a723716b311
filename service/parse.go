package service

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber reads a form value leniently. Surrounding space, thousands
// separators, a leading currency sign and a trailing percent sign are
// ignored. A value carries at most one sign. Anything that still does not
// parse, or parses to NaN or an infinity, reads as zero.
func ParseNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "_", "")
	s = strings.TrimSuffix(s, "%")
	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}
	s = strings.TrimSpace(strings.TrimPrefix(s, "$"))
	if s == "" {
		return 0
	}
	if negative && (s[0] == '-' || s[0] == '+') {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if negative {
		v = -v
	}
	return v
}

// parseAmount parses a quantity that cannot be negative and clamps it to
// [0, limit].
func parseAmount(raw string, limit float64) float64 {
	return clamp(ParseNumber(raw), 0, limit)
}

// parseWhole parses a count of whole units (years, months, levels),
// truncating any fraction.
func parseWhole(raw string, limit int) int {
	return int(clamp(math.Trunc(ParseNumber(raw)), 0, float64(limit)))
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

// nonNegative drops negative values and NaN to zero.
func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// roundTo2Decimals rounds to whole cents.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}
