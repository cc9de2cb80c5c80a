// File: numx.go
// Title: Numeric Predicates and Helpers
// Description: Integer checks, sign, base-2 logarithm, tolerant float
//              comparison and zero-filled slices.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-13
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: NearlyEqual rejects NaN explicitly

package numx

import (
	"math"
)

// DBLEpsilon is the difference between 1.0 and the next representable
// float64, 2.220446049250313e-16.
const DBLEpsilon = 0x1p-52

// IsInteger reports whether value is an integer. Booleans count as the
// integers 0 and 1 and every Go integer kind is an integer. Floats must be
// finite and equal to their rounding. Any other type, strings included,
// is not an integer.
func IsInteger(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr:
		return true
	case float64:
		return isIntegral(v)
	case float32:
		return isIntegral(float64(v))
	default:
		return false
	}
}

func isIntegral(x float64) bool {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return false
	}
	return x == roundHalfUp(x)
}

// Sign returns 1 for positive x, -1 for negative x and 0 otherwise.
// NaN compares false both ways and therefore yields 0.
func Sign(x float64) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}

// Log2 returns the base-2 logarithm of x.
// x <= 0 fails with ErrInvalidArgument ("Input must be a positive number").
// NaN is not rejected and yields NaN.
func Log2(x float64) (float64, error) {
	if x <= 0 {
		return 0, invalidArgument("Log2", x)
	}
	return math.Log2(x), nil
}

// NearlyEqual compares two floats. Infinite or NaN inputs are never equal.
// Without epsilon the comparison is exact; with it, x and y are equal when
// |x-y| <= max(|x|, |y|) * epsilon. Only the first epsilon is used.
func NearlyEqual(x, y float64, epsilon ...float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return false
	}
	if len(epsilon) == 0 {
		return x == y
	}
	if x == y {
		return true
	}
	diff := math.Abs(x - y)
	return diff <= math.Max(math.Abs(x), math.Abs(y))*epsilon[0]
}

// Zeros returns a slice of count zeros. A negative count yields an empty slice.
func Zeros(count int) []float64 {
	if count < 0 {
		count = 0
	}
	return make([]float64, count)
}
