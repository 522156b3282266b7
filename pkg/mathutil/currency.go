// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/loan-amortization/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// Negligible reports whether |val| is strictly below tolerance.
func Negligible(val, tolerance float64) bool {
	return math.Abs(val) < tolerance
}

// ZeroIfNegligible returns a positive zero when |val| is below tolerance and
// val unchanged otherwise. Negative zero input also comes back as positive zero.
func ZeroIfNegligible(val, tolerance float64) float64 {
	if Negligible(val, tolerance) {
		return 0
	}
	return val
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// IsFinite reports whether val is neither NaN nor an infinity.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// FromPercentage converts a percentage (1.5 for 1.5%) to a fraction.
func FromPercentage(percentage float64) float64 {
	return percentage / constants.PercentageMultiplier
}

// ToPercentage converts a fraction (0.015) to a percentage (1.5).
func ToPercentage(fraction float64) float64 {
	return fraction * constants.PercentageMultiplier
}
