// File: validation.go
// Title: Settings Validation
// Description: Checks loaded settings for values the numfmt commands cannot
//              work with and reports all problems at once.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation of validation
// - 2026-10-15 v0.2.0: Fixed rules for the typed Settings

package config

import (
	"fmt"
	"math"
	"strings"

	mdwerror "github.com/msto63/numfmt/foundation/core/error"
	mdwlog "github.com/msto63/numfmt/foundation/core/log"
)

// Precision bounds. Beyond them the fixed notation is either all zeros or
// padding past the digits a float64 carries.
const (
	MinPrecision = -20
	MaxPrecision = 100
)

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Check validates s and lists every problem found
func (s *Settings) Check() *ValidationResult {
	result := &ValidationResult{Valid: true, Errors: make([]string, 0)}
	fail := func(format string, args ...interface{}) {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf(format, args...))
	}

	if p := s.Format.Precision; p < MinPrecision || p > MaxPrecision {
		fail("format.precision %d is outside [%d, %d]", p, MinPrecision, MaxPrecision)
	}
	if d := s.Format.SignificantDigits; d < 0 || d > MaxPrecision {
		fail("format.significant_digits %d is outside [0, %d]", d, MaxPrecision)
	}
	if e := s.Format.Epsilon; e < 0 || math.IsNaN(e) || math.IsInf(e, 0) {
		fail("format.epsilon %v must be a finite number >= 0", e)
	}
	if _, err := mdwlog.ParseLevel(s.Log.Level); err != nil {
		fail("log.level: %v", err)
	}
	if _, err := mdwlog.ParseFormat(s.Log.Format); err != nil {
		fail("log.format: %v", err)
	}

	return result
}

// Validate returns an INVALID_CONFIG error listing every problem, or nil
func (s *Settings) Validate() error {
	result := s.Check()
	if result.Valid {
		return nil
	}
	return mdwerror.New("invalid configuration: "+strings.Join(result.Errors, "; ")).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("errors", result.Errors)
}
