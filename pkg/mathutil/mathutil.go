// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/brokerlane/dealengine/pkg/constants"
)

// ToNumber coerces an arbitrary value into a finite float64. Anything that is
// not a finite number (nil, NaN, Inf, malformed strings, unsupported types)
// degrades to def rather than raising. It is a total function.
func ToNumber(value interface{}, def float64) float64 {
	switch v := value.(type) {
	case float64:
		if isFinite(v) {
			return v
		}
	case float32:
		f := float64(v)
		if isFinite(f) {
			return f
		}
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint64:
		return float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil && isFinite(f) {
			return f
		}
	case string:
		trimmed := strings.TrimSpace(v)
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil && isFinite(f) {
			return f
		}
	case bool:
		if v {
			return 1
		}
		return 0
	}
	return def
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Clamp returns n bounded to [min, max].
func Clamp(n, min, max float64) float64 {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// RoundWhole rounds a value to the nearest whole dollar.
func RoundWhole(val float64) float64 {
	return math.Round(val)
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// IsPositive checks if a value is positive (greater than tolerance)
func IsPositive(val float64) bool {
	return val > constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}
