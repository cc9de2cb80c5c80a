// File: example_test.go
// Title: Examples for the numx Package
// Description: Executable examples that document typical usage and run as
//              tests.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial example implementation

package numx_test

import (
	"errors"
	"fmt"

	"github.com/msto63/numfmt/foundation/utils/numx"
)

func ExampleSplitNumber() {
	split, _ := numx.SplitNumber("-0.00123")
	fmt.Println(split.Sign, split.Coefficients, split.Exponent)

	split, _ = numx.SplitNumber(123.45)
	fmt.Println(split.Coefficients, split.Exponent)

	_, err := numx.SplitNumber("invalid")
	fmt.Println(err)
	// Output:
	// - [1 2 3] -3
	// [1 2 3 4 5] 2
	// Invalid number invalid
}

func ExampleRoundDigits() {
	split := numx.MustSplitNumber(125)
	fmt.Println(numx.RoundDigits(split, 2).Coefficients)
	fmt.Println(numx.RoundDigits(numx.MustSplitNumber(999), 2))
	// Output:
	// [1 3]
	// 1000
}

func ExampleSplitValue_String() {
	fmt.Println(numx.MustSplitNumber("1.5e3").String())
	fmt.Println(numx.MustSplitNumber("-12e-4").String())
	// Output:
	// 1500
	// -0.0012
}

func ExampleToFixed() {
	fmt.Println(numx.ToFixed(123.456, 2))
	fmt.Println(numx.ToFixed(-123.456, 1))
	fmt.Println(numx.ToFixed(1, 2))
	fmt.Println(numx.ToFixed(-2.5, 0))
	// Output:
	// 123.46
	// -123.5
	// 1.00
	// -2
}

func ExampleFormatNumber() {
	fmt.Println(numx.FormatNumber(1e21))
	fmt.Println(numx.FormatNumber(0.000001))
	fmt.Println(numx.FormatNumber(0.0000001))
	// Output:
	// 1e+21
	// 0.000001
	// 1e-7
}

func ExampleNearlyEqual() {
	fmt.Println(numx.NearlyEqual(1.0, 1.0000001, 1e-6))
	fmt.Println(numx.NearlyEqual(1.0, 1.0000001))
	// Output:
	// true
	// false
}

func ExampleLog2() {
	v, _ := numx.Log2(8)
	fmt.Println(v)

	_, err := numx.Log2(0)
	fmt.Println(err, errors.Is(err, numx.ErrInvalidArgument))
	// Output:
	// 3
	// Input must be a positive number true
}

func ExampleIsInteger() {
	fmt.Println(numx.IsInteger(5.0), numx.IsInteger(5.5), numx.IsInteger(true))
	// Output:
	// true false true
}

func ExampleZeros() {
	fmt.Println(numx.Zeros(3))
	// Output:
	// [0 0 0]
}
