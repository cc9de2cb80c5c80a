// File: split.go
// Title: Split Numerals
// Description: Decomposes decimal numerals into sign, significant digits and
//              decimal exponent, rounds them to a number of significant
//              digits and reconstructs plain decimal strings from them.
// Author: msto63
// Version: v0.1.3
// Created: 2026-10-13
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: String and Float64 reconstruction, MustSplitNumber
// - 2026-10-17 v0.1.2: RoundSignificant
// - 2026-10-17 v0.1.3: Exponent range limit, digit rounding beyond float64

package numx

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// SplitValue is a decimal numeral split into its parts. The value is
// Sign d1.d2d3... x 10^Exponent where d1, d2, ... are the Coefficients.
type SplitValue struct {
	// Sign is "-" for negative numerals and "" otherwise
	Sign string

	// Coefficients are the significant digits without leading or trailing
	// zeros. Zero is represented as [0].
	Coefficients []int

	// Exponent is the power of ten of the first coefficient
	Exponent int
}

// MaxExponent bounds the decimal exponent of a split numeral. SplitNumber
// rejects numerals whose first significant digit lies beyond 10^±MaxExponent.
const MaxExponent = 100000

var numeralPattern = regexp.MustCompile(`^(-?)(\d+\.?\d*)(e([+-]?\d+))?$`)

// SplitNumber splits a numeral into sign, coefficients and exponent.
//
// value may be a string such as "-0.00123" or "1.5e10", any float or
// integer kind, which is first rendered with FormatNumber (or its integer
// digits). Strings are matched case-insensitively against
// -?digits[.digits][e[+-]digits]. Anything else fails with ErrSyntax and
// the message "Invalid number <value>". Numerals whose exponent exceeds
// MaxExponent fail with ErrRange and the same message.
//
//	SplitNumber("-0.00123") // {"-", [1 2 3], -3}
//	SplitNumber(123.45)     // {"", [1 2 3 4 5], 2}
//	SplitNumber(0)          // {"", [0], 0}
func SplitNumber(value interface{}) (SplitValue, error) {
	numeral, ok := numeralString(value)
	if !ok {
		return SplitValue{}, syntaxError("SplitNumber", numeral)
	}

	match := numeralPattern.FindStringSubmatch(strings.ToLower(numeral))
	if match == nil {
		return SplitValue{}, syntaxError("SplitNumber", numeral)
	}

	sign, digits := match[1], match[2]
	exponent := 0
	if match[4] != "" {
		e, err := strconv.Atoi(match[4])
		if err != nil {
			return SplitValue{}, syntaxError("SplitNumber", numeral)
		}
		// keeps the adjustments below from overflowing
		if e > MaxExponent+len(digits) || e < -MaxExponent-len(digits) {
			return SplitValue{}, rangeError("SplitNumber", numeral)
		}
		exponent = e
	}

	if dot := strings.IndexByte(digits, '.'); dot != -1 {
		exponent += dot - 1
		digits = digits[:dot] + digits[dot+1:]
	} else {
		exponent += len(digits) - 1
	}

	significant := strings.TrimLeft(digits, "0")
	exponent -= len(digits) - len(significant)
	significant = strings.TrimRight(significant, "0")

	coefficients := make([]int, len(significant))
	for i := 0; i < len(significant); i++ {
		coefficients[i] = int(significant[i] - '0')
	}

	if len(coefficients) == 0 {
		coefficients = append(coefficients, 0)
		exponent++
	}

	if exponent > MaxExponent || exponent < -MaxExponent {
		return SplitValue{}, rangeError("SplitNumber", numeral)
	}

	return SplitValue{Sign: sign, Coefficients: coefficients, Exponent: exponent}, nil
}

// MustSplitNumber is like SplitNumber but panics on error.
// Use it for constants known to be valid.
func MustSplitNumber(value interface{}) SplitValue {
	v, err := SplitNumber(value)
	if err != nil {
		panic(err)
	}
	return v
}

func numeralString(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case float64:
		return FormatNumber(v), true
	case float32:
		return FormatNumber(float64(v)), true
	case int:
		return strconv.FormatInt(int64(v), 10), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	default:
		return fmt.Sprint(value), false
	}
}

// RoundDigits rounds v to precision significant digits.
//
// The rounding works on the coefficient digits read as an integer: it is
// scaled by 10^(precision-len(Coefficients)), rounded half up, scaled back
// and split again. Neither v.Sign nor v.Exponent takes part, so the result
// is always non-negative and its exponent is that of the rounded integer:
//
//	RoundDigits(SplitValue{Coefficients: []int{1, 2, 3}, Exponent: 2}, 2) // {"", [1 2], 2}
//
// Coefficients too long for a float64 are rounded on their digits with the
// same half-up rule.
//
// A negative precision returns {"", [0], 0}.
func RoundDigits(v SplitValue, precision int) SplitValue {
	if precision < 0 {
		return SplitValue{Coefficients: []int{0}, Exponent: 0}
	}

	digits := joinDigits(v.Coefficients)
	n, err := strconv.ParseFloat(digits, 64)
	if err != nil && n == 0 {
		// empty or malformed coefficients
		return SplitValue{Coefficients: []int{0}, Exponent: 0}
	}

	var out SplitValue
	if !math.IsInf(n, 0) {
		factor := math.Pow10(precision - len(v.Coefficients))
		rounded := roundHalfUp(n*factor) / factor
		out, err = SplitNumber(rounded)
	}
	if math.IsInf(n, 0) || err != nil {
		out = splitInteger(roundDigitString(digits, precision))
	}
	return out
}

// splitInteger splits an unsigned integer numeral of any length.
func splitInteger(digits string) SplitValue {
	significant := strings.TrimLeft(digits, "0")
	if significant == "" {
		return SplitValue{Coefficients: []int{0}, Exponent: 0}
	}
	exponent := len(significant) - 1
	significant = strings.TrimRight(significant, "0")

	coefficients := make([]int, len(significant))
	for i := 0; i < len(significant); i++ {
		coefficients[i] = int(significant[i] - '0')
	}
	return SplitValue{Coefficients: coefficients, Exponent: exponent}
}

// roundDigitString rounds the integer numeral digits half up to precision
// significant digits, keeping its length.
func roundDigitString(digits string, precision int) string {
	if precision >= len(digits) {
		return digits
	}

	kept := []byte(digits[:precision])
	if digits[precision] >= '5' {
		i := len(kept) - 1
		for ; i >= 0 && kept[i] == '9'; i-- {
			kept[i] = '0'
		}
		if i >= 0 {
			kept[i]++
		} else {
			kept = append([]byte{'1'}, kept...)
		}
	}
	if len(kept) == 0 {
		return "0"
	}
	return string(kept) + strings.Repeat("0", len(digits)-precision)
}

// RoundSignificant rounds v to precision significant digits and keeps its
// sign and magnitude, so "-0.0012345" at 3 digits becomes "-0.00123".
// A result of zero carries no sign.
func RoundSignificant(v SplitValue, precision int) SplitValue {
	rounded := RoundDigits(v, precision)
	if rounded.IsZero() || len(v.Coefficients) == 0 {
		return rounded
	}
	rounded.Exponent += v.Exponent - (len(v.Coefficients) - 1)
	rounded.Sign = v.Sign
	return rounded
}

func joinDigits(coefficients []int) string {
	var sb strings.Builder
	sb.Grow(len(coefficients))
	for _, c := range coefficients {
		sb.WriteString(strconv.Itoa(c))
	}
	return sb.String()
}

// IsZero reports whether v represents zero
func (v SplitValue) IsZero() bool {
	for _, c := range v.Coefficients {
		if c != 0 {
			return false
		}
	}
	return true
}

// String reconstructs the numeral in plain decimal notation, e.g.
// {"-", [1 2 3], -3} becomes "-0.00123". Leading and trailing zeros that
// SplitNumber stripped are not restored beyond what the exponent requires.
// Values with an exponent beyond ±MaxExponent use exponent notation
// ("1.5e+200000").
func (v SplitValue) String() string {
	digits := joinDigits(v.Coefficients)
	if digits == "" {
		digits = "0"
	}

	var s string
	switch point := v.Exponent + 1; {
	case v.Exponent > MaxExponent || v.Exponent < -MaxExponent:
		s = digits[:1]
		if len(digits) > 1 {
			s += "." + digits[1:]
		}
		if v.Exponent > 0 {
			s += "e+" + strconv.Itoa(v.Exponent)
		} else {
			s += "e" + strconv.Itoa(v.Exponent)
		}
	case point <= 0:
		s = "0." + strings.Repeat("0", -point) + digits
	case point >= len(digits):
		s = digits + strings.Repeat("0", point-len(digits))
	default:
		s = digits[:point] + "." + digits[point:]
	}

	if v.Sign == "-" {
		return "-" + s
	}
	return s
}

// Float64 returns the numeric value of v, correctly rounded.
// Values beyond the float64 range become ±Inf.
func (v SplitValue) Float64() float64 {
	digits := joinDigits(v.Coefficients)
	if digits == "" {
		return 0
	}
	numeral := digits + "e" + strconv.Itoa(v.Exponent-(len(digits)-1))
	if v.Sign == "-" {
		numeral = "-" + numeral
	}
	f, _ := strconv.ParseFloat(numeral, 64)
	return f
}
