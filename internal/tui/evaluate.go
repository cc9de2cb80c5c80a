// ============================================================================
// numfmt - Number formatting toolkit
// ============================================================================
//
// Package:     tui
// Description: Evaluation of a typed numeral for the explorer view
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package tui

import (
	"strconv"
	"strings"

	mdwerror "github.com/msto63/numfmt/foundation/core/error"
	"github.com/msto63/numfmt/foundation/utils/numx"
)

// Result holds everything the explorer shows for one numeral
type Result struct {
	Input string

	// Split and Rounded are set when SplitErr is nil
	Split    numx.SplitValue
	Rounded  numx.SplitValue
	SplitErr error

	// Value and the fields below are set when ValueErr is nil
	Value    float64
	ValueErr error
	Fixed    string
	Integer  bool
	Sign     int
	Log2     float64
	Log2Err  error
}

// Empty reports whether nothing was typed
func (r Result) Empty() bool {
	return r.Input == ""
}

// Valid reports whether the input parsed as a number
func (r Result) Valid() bool {
	return !r.Empty() && r.ValueErr == nil
}

// Evaluate runs the numx operations on input with the given settings.
// The numeral grammar is checked by SplitNumber; the numeric value is
// parsed separately so that fixed notation and Log2 work on it.
func Evaluate(input string, opts Options) Result {
	r := Result{Input: strings.TrimSpace(input)}
	if r.Empty() {
		return r
	}

	r.Split, r.SplitErr = numx.SplitNumber(r.Input)
	if r.SplitErr == nil {
		r.Rounded = numx.RoundSignificant(r.Split, opts.SignificantDigits)
	}

	value, err := strconv.ParseFloat(r.Input, 64)
	if err != nil {
		r.ValueErr = mdwerror.Wrap(err, "not a number").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("tui.Evaluate").
			WithDetail("input", r.Input)
		return r
	}

	r.Value = value
	r.Fixed = numx.ToFixed(value, opts.Precision)
	r.Integer = numx.IsInteger(value)
	r.Sign = numx.Sign(value)
	r.Log2, r.Log2Err = numx.Log2(value)
	return r
}
