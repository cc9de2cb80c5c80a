// File: doc.go
// Title: Configuration Package Documentation
// Description: Package config loads the numfmt settings from TOML or YAML
//              files with environment overrides and validation.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-15 v0.2.0: Typed Settings, discovery and env overrides

/*
Package config loads the numfmt settings.

A settings file is TOML by default; files ending in .yaml or .yml are read
as YAML. Every value is optional and falls back to Default():

	[format]
	precision = 2            # fraction digits for fixed notation
	significant_digits = 3   # precision for significant digit rounding
	epsilon = 1e-9           # relative tolerance for comparisons

	[log]
	level = "info"           # trace, debug, info, warn, error, fatal, audit
	format = "text"          # json, text, logfmt

Unknown keys are rejected.

# Usage

	settings, path, err := config.Discover(config.DefaultDiscoveryOptions())
	if err != nil {
		return err
	}
	if err := settings.ApplyEnv(config.DefaultEnvPrefix); err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}

Discover searches the working directory and the user configuration
directory for numfmt.toml, numfmt.yaml and numfmt.yml. ApplyEnv reads
NUMFMT_FORMAT_PRECISION, NUMFMT_FORMAT_SIGNIFICANT_DIGITS,
NUMFMT_FORMAT_EPSILON, NUMFMT_LOG_LEVEL and NUMFMT_LOG_FORMAT.

# Errors

All errors are *mdwerror.Error values. A missing file carries NOT_FOUND,
a syntax error, unknown key or failed validation INVALID_CONFIG and an
unreadable file CONFIG_ERROR.
*/
package config
