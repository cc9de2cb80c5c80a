// File: errors.go
// Title: numx Error Values
// Description: Sentinel errors and constructors for the failure kinds of
//              the package: invalid arguments, unparsable numerals and
//              numerals out of range.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-13
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation
// - 2026-10-17 v0.1.1: ErrRange for exponents beyond MaxExponent

package numx

import (
	mdwerror "github.com/msto63/numfmt/foundation/core/error"
)

// Sentinels for errors.Is. They match any numx error with the same code.
// Do not call the With* methods on them.
var (
	ErrInvalidArgument = mdwerror.New("invalid argument").WithCode(mdwerror.CodeInvalidArgument)
	ErrSyntax          = mdwerror.New("invalid number").WithCode(mdwerror.CodeSyntaxError)
	ErrRange           = mdwerror.New("number out of range").WithCode(mdwerror.CodeValueOutOfRange)
)

const msgPositiveNumber = "Input must be a positive number"

func invalidArgument(operation string, input float64) *mdwerror.Error {
	return mdwerror.New(msgPositiveNumber).
		WithCode(mdwerror.CodeInvalidArgument).
		WithOperation("numx." + operation).
		WithDetail("input", input)
}

func syntaxError(operation, numeral string) *mdwerror.Error {
	return mdwerror.New("Invalid number "+numeral).
		WithCode(mdwerror.CodeSyntaxError).
		WithOperation("numx." + operation).
		WithDetail("input", numeral)
}

func rangeError(operation, numeral string) *mdwerror.Error {
	return mdwerror.New("Invalid number "+numeral).
		WithCode(mdwerror.CodeValueOutOfRange).
		WithOperation("numx." + operation).
		WithDetails(map[string]interface{}{
			"input":        numeral,
			"max_exponent": MaxExponent,
		})
}
