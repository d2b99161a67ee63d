package reader

import (
	"math"
	"strconv"
)

// ParseValue infers a dynamic type for a raw cell string: int64 for
// integers, float64 for decimals, bool for true/false spellings, nil for the
// empty cell, or the original string. NaN and infinity spellings stay
// strings; they have no JSON representation.
func ParseValue(s string) any {
	if s == "" {
		return nil
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	switch s {
	case "true", "True", "TRUE":
		return true
	case "false", "False", "FALSE":
		return false
	}
	return s
}
