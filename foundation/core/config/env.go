// File: env.go
// Title: Environment Overrides
// Description: Applies environment variable overrides such as
//              NUMFMT_FORMAT_PRECISION on top of loaded settings.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation, split from discovery

package config

import (
	"os"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/numfmt/foundation/core/error"
)

// DefaultEnvPrefix is the prefix used by the numfmt command
const DefaultEnvPrefix = "NUMFMT"

// ApplyEnv overrides settings from environment variables named
// <PREFIX>_<SECTION>_<KEY>, e.g. NUMFMT_FORMAT_PRECISION=4 or
// NUMFMT_LOG_LEVEL=debug. Empty variables are ignored. A value that cannot
// be parsed leaves s unchanged for that key and is reported as
// INVALID_CONFIG.
func (s *Settings) ApplyEnv(prefix string) error {
	prefix = strings.ToUpper(strings.TrimSuffix(prefix, "_"))

	if err := envInt(prefix, "FORMAT_PRECISION", &s.Format.Precision); err != nil {
		return err
	}
	if err := envInt(prefix, "FORMAT_SIGNIFICANT_DIGITS", &s.Format.SignificantDigits); err != nil {
		return err
	}
	if err := envFloat(prefix, "FORMAT_EPSILON", &s.Format.Epsilon); err != nil {
		return err
	}
	envString(prefix, "LOG_LEVEL", &s.Log.Level)
	envString(prefix, "LOG_FORMAT", &s.Log.Format)
	return nil
}

func envKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "_" + key
}

func lookupEnv(prefix, key string) (string, string, bool) {
	name := envKey(prefix, key)
	value, ok := os.LookupEnv(name)
	value = strings.TrimSpace(value)
	return name, value, ok && value != ""
}

func envString(prefix, key string, target *string) {
	if _, value, ok := lookupEnv(prefix, key); ok {
		*target = value
	}
}

func envInt(prefix, key string, target *int) error {
	name, value, ok := lookupEnv(prefix, key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return envError(name, value, err)
	}
	*target = n
	return nil
}

func envFloat(prefix, key string, target *float64) error {
	name, value, ok := lookupEnv(prefix, key)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return envError(name, value, err)
	}
	*target = f
	return nil
}

func envError(name, value string, err error) error {
	return mdwerror.Wrap(err, "invalid environment override "+name).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.ApplyEnv").
		WithDetail("variable", name).
		WithDetail("value", value)
}
