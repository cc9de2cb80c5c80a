// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across numfmt for structured
//              error classification and CLI exit reporting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial code set

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"

	// Input
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeSyntaxError     Code = "SYNTAX_ERROR"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound,
		CodeInvalidInput, CodeInvalidArgument, CodeSyntaxError, CodeValueOutOfRange,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidInput, CodeInvalidArgument, CodeSyntaxError, CodeValueOutOfRange:
		return "input"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode maps the error code to a process exit status
func (c Code) ExitCode() int {
	switch c.Category() {
	case "input":
		return 2
	case "configuration":
		return 3
	default:
		return 1
	}
}
