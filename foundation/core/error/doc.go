// Package error provides structured error handling for numfmt.
//
// Package: error
// Title: numfmt Error Handling
// Description: A small structured error type with codes, severity levels and
//              details, shared by the foundation packages and the CLI.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-17 v0.2.0: errors.Is support by code
//
// Usage:
//
//	import mdwerror "github.com/msto63/numfmt/foundation/core/error"
//
//	err := mdwerror.New("Input must be a positive number").
//		WithCode(mdwerror.CodeInvalidArgument).
//		WithOperation("numx.Log2").
//		WithDetail("input", x)
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) {
//		// handle bad input
//	}
//
// Two errors with the same non-unknown code match under errors.Is, so a
// package can export a sentinel built with New(...).WithCode(...) and callers
// can test against it without caring about message or details.
package error
