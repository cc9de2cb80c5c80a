// File: split_test.go
// Title: Unit Tests for Split Numerals
// Description: Tests for SplitNumber, RoundDigits and the reconstruction of
//              numerals from their split form.
// Author: msto63
// Version: v0.1.2
// Created: 2026-10-13
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-13 v0.1.0: Initial test implementation
// - 2026-10-16 v0.1.1: Round-trip tests for String and Float64
// - 2026-10-17 v0.1.2: Exponent range and numerals beyond float64

package numx

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitNumber(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  SplitValue
	}{
		{"negative fraction", "-0.00123", SplitValue{"-", []int{1, 2, 3}, -3}},
		{"float", 123.45, SplitValue{"", []int{1, 2, 3, 4, 5}, 2}},
		{"int zero", 0, SplitValue{"", []int{0}, 0}},
		{"float zero", 0.0, SplitValue{"", []int{0}, 0}},
		{"negative float zero", math.Copysign(0, -1), SplitValue{"", []int{0}, 0}},
		{"string zero", "0", SplitValue{"", []int{0}, 0}},
		{"zero with fraction digits", "0.00", SplitValue{"", []int{0}, -2}},
		{"negative zero string", "-0", SplitValue{"-", []int{0}, 0}},
		{"exponent", "1.5e10", SplitValue{"", []int{1, 5}, 10}},
		{"upper case exponent", "1.5E10", SplitValue{"", []int{1, 5}, 10}},
		{"explicit positive exponent", "2e+3", SplitValue{"", []int{2}, 3}},
		{"negative exponent", "-1.5e-10", SplitValue{"-", []int{1, 5}, -10}},
		{"trailing zeros", "100", SplitValue{"", []int{1}, 2}},
		{"trailing point", "5.", SplitValue{"", []int{5}, 0}},
		{"leading zeros", "007", SplitValue{"", []int{7}, 0}},
		{"inner zeros", "10.05", SplitValue{"", []int{1, 0, 0, 5}, 1}},
		{"fraction and exponent", "0.0012e5", SplitValue{"", []int{1, 2}, 2}},
		{"large float", 1e21, SplitValue{"", []int{1}, 21}},
		{"small float", 1e-7, SplitValue{"", []int{1}, -7}},
		{"shortest digits", 0.30000000000000004, SplitValue{"", []int{3, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 4}, -1}},
		{"int64", int64(-42), SplitValue{"-", []int{4, 2}, 1}},
		{"uint8", uint8(7), SplitValue{"", []int{7}, 0}},
		{"float32", float32(0.5), SplitValue{"", []int{5}, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitNumber(tt.input)
			if err != nil {
				t.Fatalf("SplitNumber(%v) unexpected error: %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitNumber(%v) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestSplitNumberInvalid(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		wantMsg string
	}{
		{"word", "invalid", "Invalid number invalid"},
		{"empty", "", "Invalid number "},
		{"two points", "1.2.3", "Invalid number 1.2.3"},
		{"plus sign", "+5", "Invalid number +5"},
		{"leading point", ".5", "Invalid number .5"},
		{"whitespace", " 1", "Invalid number  1"},
		{"dangling exponent", "1e", "Invalid number 1e"},
		{"hex", "0x1F", "Invalid number 0x1F"},
		{"exponent overflow", "1e99999999999999999999", "Invalid number 1e99999999999999999999"},
		{"NaN", math.NaN(), "Invalid number NaN"},
		{"infinity", math.Inf(1), "Invalid number Infinity"},
		{"negative infinity", math.Inf(-1), "Invalid number -Infinity"},
		{"bool", true, "Invalid number true"},
		{"nil", nil, "Invalid number <nil>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SplitNumber(tt.input)
			if err == nil {
				t.Fatalf("SplitNumber(%v) expected error", tt.input)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("SplitNumber(%v) error = %q, want %q", tt.input, err.Error(), tt.wantMsg)
			}
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("SplitNumber(%v) error is not ErrSyntax", tt.input)
			}
		})
	}
}

func TestMustSplitNumber(t *testing.T) {
	if got := MustSplitNumber("12"); !cmp.Equal(got, SplitValue{"", []int{1, 2}, 1}) {
		t.Errorf("MustSplitNumber(12) = %+v", got)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustSplitNumber(\"abc\") expected panic")
		}
	}()
	MustSplitNumber("abc")
}

func TestRoundDigits(t *testing.T) {
	tests := []struct {
		name      string
		input     SplitValue
		precision int
		want      SplitValue
	}{
		{"round down", SplitValue{Coefficients: []int{1, 2, 3}, Exponent: 2}, 2, SplitValue{"", []int{1, 2}, 2}},
		{"negative precision", SplitValue{Coefficients: []int{1, 2, 3}, Exponent: 2}, -1, SplitValue{"", []int{0}, 0}},
		{"round half up", SplitValue{Coefficients: []int{1, 2, 5}, Exponent: 2}, 2, SplitValue{"", []int{1, 3}, 2}},
		{"carry", SplitValue{Coefficients: []int{9, 9, 9}, Exponent: 2}, 2, SplitValue{"", []int{1}, 3}},
		{"more precision than digits", SplitValue{Coefficients: []int{1, 2, 3}, Exponent: 2}, 5, SplitValue{"", []int{1, 2, 3}, 2}},
		{"zero precision", SplitValue{Coefficients: []int{1, 2, 3}, Exponent: 2}, 0, SplitValue{"", []int{0}, 0}},
		{"sign is dropped", SplitValue{"-", []int{1, 2, 3}, 2}, 2, SplitValue{"", []int{1, 2}, 2}},
		{"exponent is not used", SplitValue{Coefficients: []int{1, 2, 3, 4, 5}, Exponent: -3}, 3, SplitValue{"", []int{1, 2, 3}, 4}},
		{"zero value", SplitValue{}, 2, SplitValue{"", []int{0}, 0}},
		{"huge precision", SplitValue{Coefficients: []int{4, 2}, Exponent: 1}, 400, SplitValue{"", []int{4, 2}, 1}},
		{"beyond float64", MustSplitNumber("1" + strings.Repeat("2", 399)), 3, SplitValue{"", []int{1, 2, 2}, 399}},
		{"beyond float64 half up", MustSplitNumber("125" + strings.Repeat("1", 397)), 2, SplitValue{"", []int{1, 3}, 399}},
		{"beyond float64 carry", MustSplitNumber(strings.Repeat("9", 400)), 3, SplitValue{"", []int{1}, 400}},
		{"beyond float64 zero precision", MustSplitNumber(strings.Repeat("6", 400)), 0, SplitValue{"", []int{1}, 400}},
		{"beyond float64 zero precision down", MustSplitNumber(strings.Repeat("4", 400)), 0, SplitValue{"", []int{0}, 0}},
		{"beyond float64 more precision than digits", MustSplitNumber("-" + strings.Repeat("3", 400)), 500, MustSplitNumber(strings.Repeat("3", 400))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundDigits(tt.input, tt.precision)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("RoundDigits(%+v, %d) mismatch (-want +got):\n%s", tt.input, tt.precision, diff)
			}
		})
	}
}

func TestRoundDigitsDoesNotModifyInput(t *testing.T) {
	input := SplitValue{"-", []int{1, 2, 3}, 2}
	RoundDigits(input, 1)
	if diff := cmp.Diff(SplitValue{"-", []int{1, 2, 3}, 2}, input); diff != "" {
		t.Errorf("input modified (-want +got):\n%s", diff)
	}
}

func TestRoundSignificant(t *testing.T) {
	tests := []struct {
		input     string
		precision int
		want      string
	}{
		{"-0.0012345", 3, "-0.00123"},
		{"123.456", 4, "123.5"},
		{"999", 2, "1000"},
		{"0.00999", 2, "0.01"},
		{"-125", 2, "-130"},
		{"1.5e10", 1, "20000000000"},
		{"42", 5, "42"},
		{"-42", 0, "0"},
		{"0", 3, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := RoundSignificant(MustSplitNumber(tt.input), tt.precision)
			if got.String() != tt.want {
				t.Errorf("RoundSignificant(%s, %d) = %s (%+v), want %s", tt.input, tt.precision, got, got, tt.want)
			}
		})
	}
}

func TestRoundSignificantBeyondFloat64(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		precision int
		want      string
	}{
		{"integer", "-1" + strings.Repeat("2", 399), 3, "-122" + strings.Repeat("0", 397)},
		{"fraction with carry", "0." + strings.Repeat("0", 10) + strings.Repeat("9", 400), 2, "0.0000000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundSignificant(MustSplitNumber(tt.input), tt.precision)
			if got.String() != tt.want {
				t.Errorf("RoundSignificant(%s, %d) = %+v, want %s", tt.name, tt.precision, got, tt.want)
			}
		})
	}
}

func TestSplitNumberRange(t *testing.T) {
	rejected := []string{
		"1e1000000000000000",
		"10e9223372036854775807",
		"1e-9223372036854775808",
		"1e100001",
		"1e-100001",
		"0e200000",
		"0." + strings.Repeat("0", MaxExponent) + "1",
	}

	for _, numeral := range rejected {
		_, err := SplitNumber(numeral)
		if err == nil {
			t.Errorf("SplitNumber(%.40s) expected error", numeral)
			continue
		}
		if !errors.Is(err, ErrRange) {
			t.Errorf("SplitNumber(%.40s) error is not ErrRange: %v", numeral, err)
		}
		if errors.Is(err, ErrSyntax) {
			t.Errorf("SplitNumber(%.40s) error matches ErrSyntax", numeral)
		}
		if err.Error() != "Invalid number "+numeral {
			t.Errorf("SplitNumber(%.40s) error = %.60q", numeral, err.Error())
		}
	}

	accepted := []struct {
		numeral string
		want    SplitValue
	}{
		{"1e100000", SplitValue{"", []int{1}, MaxExponent}},
		{"-1e-100000", SplitValue{"-", []int{1}, -MaxExponent}},
		{"10e99999", SplitValue{"", []int{1}, MaxExponent}},
		{"0.01e100001", SplitValue{"", []int{1}, 99999}},
	}

	for _, tt := range accepted {
		got, err := SplitNumber(tt.numeral)
		if err != nil {
			t.Errorf("SplitNumber(%s) unexpected error: %v", tt.numeral, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("SplitNumber(%s) mismatch (-want +got):\n%s", tt.numeral, diff)
		}
	}

	if s := MustSplitNumber("1e100000").String(); len(s) != MaxExponent+1 {
		t.Errorf("String() of 1e100000 has %d characters, want %d", len(s), MaxExponent+1)
	}
}

func TestSplitValueString(t *testing.T) {
	tests := []struct {
		input SplitValue
		want  string
	}{
		{SplitValue{"-", []int{1, 2, 3}, -3}, "-0.00123"},
		{SplitValue{"", []int{1, 2, 3, 4, 5}, 2}, "123.45"},
		{SplitValue{"", []int{0}, 0}, "0"},
		{SplitValue{"", []int{1, 5}, 10}, "15000000000"},
		{SplitValue{"", []int{1}, 21}, "1" + strings.Repeat("0", 21)},
		{SplitValue{"", []int{1, 2}, 1}, "12"},
		{SplitValue{"", []int{5}, -1}, "0.5"},
		{SplitValue{}, "0"},
		{SplitValue{"", []int{1, 5}, 200000}, "1.5e+200000"},
		{SplitValue{"-", []int{2}, -200000}, "-2e-200000"},
		{SplitValue{"", []int{1}, math.MaxInt}, "1e+" + strconv.Itoa(math.MaxInt)},
		{SplitValue{"", []int{7}, math.MinInt}, "7e" + strconv.Itoa(math.MinInt)},
	}

	for _, tt := range tests {
		if got := tt.input.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSplitRoundTrip(t *testing.T) {
	numerals := []string{
		"-0.00123", "123.45", "1.5e10", "007", "5.", "1e-7", "0.1",
		"-42", "9007199254740993", "1.7976931348623157e308", "5e-324",
		"0", "100", "10.05", "0.0012e5", "-3.14159E2",
	}

	for _, numeral := range numerals {
		t.Run(numeral, func(t *testing.T) {
			split, err := SplitNumber(numeral)
			if err != nil {
				t.Fatalf("SplitNumber(%q) unexpected error: %v", numeral, err)
			}

			want, err := strconv.ParseFloat(numeral, 64)
			if err != nil {
				t.Fatalf("ParseFloat(%q): %v", numeral, err)
			}
			if got := split.Float64(); got != want {
				t.Errorf("Float64() = %v, want %v", got, want)
			}

			again, err := SplitNumber(split.String())
			if err != nil {
				t.Fatalf("SplitNumber(%q) unexpected error: %v", split.String(), err)
			}
			if diff := cmp.Diff(split, again); diff != "" {
				t.Errorf("split of String() differs (-first +second):\n%s", diff)
			}
		})
	}
}

func TestSplitValueIsZero(t *testing.T) {
	if !MustSplitNumber("0.000").IsZero() {
		t.Error("0.000 should be zero")
	}
	if MustSplitNumber("0.001").IsZero() {
		t.Error("0.001 should not be zero")
	}
}
