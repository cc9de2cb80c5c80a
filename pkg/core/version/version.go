// ============================================================================
// numfmt - Number formatting toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management for the numfmt components
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the numfmt components
const (
	// Release version of the numfmt command
	Numfmt = "0.1.0"

	// Component versions
	Numx   = "0.1.2"
	Config = "0.2.0"
	Log    = "0.1.0"
	Error  = "0.2.0"
	TUI    = "0.1.0"
)

// Build information, set with -ldflags "-X ...".
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "numx":
		return Numx
	case "config":
		return Config
	case "log":
		return Log
	case "error":
		return Error
	case "tui":
		return TUI
	default:
		return Numfmt
	}
}

// BuildInfo describes the running binary
type BuildInfo struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

// Info returns the build information of the running binary
func Info() BuildInfo {
	return BuildInfo{
		Version:   Numfmt,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}
