// File: doc.go
// Title: Package Documentation for numx
// Description: Package numx provides small numeric helpers used to decompose,
//              round and format float64 values for display.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-13
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Documentation for rounding and formatting rules

// Package numx provides numeric helpers for display formatting.
//
// Package: numx
// Title: Numeric Formatting Helpers
// Description: Split numerals into digits and exponent, round them to a
//              number of significant digits, format floats in fixed
//              notation and compare floats with a relative tolerance.
//
// Overview
//
// Every function in the package is pure and safe for concurrent use. Values
// are plain float64; there is no arbitrary precision arithmetic, no locale
// handling and no non-decimal input.
//
//   - IsInteger, Sign, Log2: predicates and transforms
//   - SplitNumber: numeral -> SplitValue{Sign, Coefficients, Exponent}
//   - RoundDigits: coefficient digits rounded to n significant digits
//   - RoundSignificant: like RoundDigits, keeping sign and magnitude
//   - ToFixed: fixed notation with n fraction digits
//   - FormatNumber: shortest round-trip rendering, plain or exponent form
//   - NearlyEqual: exact or relative-tolerance comparison
//   - Zeros: zero-filled slice
//   - DBLEpsilon: 2^-52
//
// Usage Examples
//
//	v, err := numx.SplitNumber("-0.00123")
//	// v == numx.SplitValue{Sign: "-", Coefficients: []int{1, 2, 3}, Exponent: -3}
//
//	numx.ToFixed(123.456, 2)  // "123.46"
//	numx.ToFixed(1, 2)        // "1.00"
//	numx.ToFixed(math.Inf(1), 2) // "Infinity"
//
//	numx.NearlyEqual(1.0, 1.1, 0.2) // true
//	numx.NearlyEqual(1.0, 1.000000000000001) // false, exact without epsilon
//
// Rounding
//
// Rounding is half up toward positive infinity, so ToFixed(-2.5, 0) is "-2"
// while ToFixed(2.5, 0) is "3". It happens in binary floating point: the
// value is scaled by a power of ten, rounded and scaled back. This is an
// approximation of decimal rounding that is exact for the precisions used
// in display code.
//
// Error Handling
//
// Only two functions fail. Log2 returns ErrInvalidArgument for x <= 0 with
// the message "Input must be a positive number". SplitNumber returns
// ErrSyntax with the message "Invalid number <input>" for input outside
// the numeral grammar, and ErrRange with the same message when the
// exponent lies beyond MaxExponent. All are *error.Error values from the
// foundation error package and can be tested with errors.Is:
//
//	if _, err := numx.SplitNumber(input); errors.Is(err, numx.ErrSyntax) {
//		// not a numeral
//	}
package numx
