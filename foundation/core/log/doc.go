// Package log provides structured, leveled logging for numfmt.
//
// Package: log
// Title: numfmt Structured Logging
// Description: Leveled logger with JSON, text and logfmt output, immutable
//              context derivation and error-aware logging.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Error severity mapping, deterministic field order
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatText,
//		Name:   "numfmt",
//	})
//
//	logger.WithRequestID(runID).Info("split", log.Fields{
//		"input":    "-0.00123",
//		"exponent": -3,
//	})
//
//	if err != nil {
//		logger.LogError(err)
//	}
//
// With* methods never modify the receiver; they return a derived logger
// that shares the output writer.
package log
