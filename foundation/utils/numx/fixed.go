// File: fixed.go
// Title: Fixed Notation Formatting
// Description: Number-to-string conversion following the ECMAScript
//              Number#toString rules, half-up rounding and fixed notation
//              with a given number of fraction digits.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-13
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: ToFixed always pads a plain decimal, never exponent form

package numx

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders x the way ECMAScript Number#toString does: the
// shortest digits that round-trip, plain notation for 1e-6 <= |x| < 1e21
// and exponent notation ("1e-7", "1.5e+21") outside that range.
// Negative zero renders as "0"; NaN and infinities as "NaN", "Infinity"
// and "-Infinity".
func FormatNumber(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		return "0"
	}

	abs := math.Abs(x)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}

	// strconv pads the exponent to two digits ("1e-07"); ECMAScript does not
	s := strconv.FormatFloat(x, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	return mantissa + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}

// ToFixed formats value with exactly precision digits after the decimal
// point. Rounding is done in binary floating point: value is scaled by
// 10^precision, rounded half up and scaled back, so results for large
// precisions carry ordinary float error. NaN and infinities are returned as
// "NaN", "Infinity" or "-Infinity" whatever the precision. A precision <= 0
// produces no decimal point; negative precisions round to tens, hundreds
// and so on. The result is always plain decimal notation, also for rounded
// values of 1e21 and above or below 1e-6, where Number#toString based
// implementations switch to exponent form.
func ToFixed(value float64, precision int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return FormatNumber(value)
	}

	var rounded float64
	factor := math.Pow10(precision)
	switch scaled := value * factor; {
	case factor == 0:
		// rounding to a power of ten beyond the float range
		rounded = 0
	case math.IsInf(scaled, 0) || math.IsNaN(scaled):
		// value has no digits at that scale to round away
		rounded = value
	default:
		rounded = roundHalfUp(scaled) / factor
		if math.IsInf(rounded, 0) {
			rounded = value
		}
	}

	result := "0"
	if rounded != 0 {
		result = strconv.FormatFloat(rounded, 'f', -1, 64)
	}

	if precision <= 0 {
		return result
	}

	decimals := ""
	if dot := strings.IndexByte(result, '.'); dot == -1 {
		result += "."
	} else {
		decimals = result[dot+1:]
	}
	if missing := precision - len(decimals); missing > 0 {
		result += strings.Repeat("0", missing)
	}
	return result
}

// roundHalfUp rounds to the nearest integer with ties toward +Inf, so
// -2.5 becomes -2. math.Round would give -3.
func roundHalfUp(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	f := math.Floor(x)
	if x-f >= 0.5 {
		f++
	}
	return f
}
