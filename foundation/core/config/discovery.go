// File: discovery.go
// Title: Configuration File Discovery
// Description: Finds the numfmt configuration file in the working directory
//              and the user's configuration directories.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation of file discovery
// - 2026-10-15 v0.2.0: Search numfmt locations, fall back to defaults

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/numfmt/foundation/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
	Required   bool     // Whether finding a config file is required
}

// DefaultDiscoveryOptions searches the working directory, then
// $XDG_CONFIG_HOME/numfmt (or ~/.config/numfmt), for numfmt.toml,
// numfmt.yaml or numfmt.yml. A missing file is not an error.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "numfmt"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"numfmt"},
		Extensions: []string{".toml", ".yaml", ".yml"},
	}
}

// Discover loads the first configuration file found. When none exists it
// returns the defaults, or a NOT_FOUND error if options.Required is set.
// The returned path is empty when the defaults are used.
func Discover(options DiscoveryOptions) (*Settings, string, error) {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"numfmt"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	configPath, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, "", err
		}
		return Default(), "", nil
	}

	settings, err := Load(configPath)
	if err != nil {
		return nil, configPath, mdwerror.Wrap(err, fmt.Sprintf("found config file %s but failed to load", configPath)).
			WithOperation("config.Discover").
			WithDetail("configPath", configPath)
	}
	return settings, configPath, nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, configPath := range candidates {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}
	}

	return "", mdwerror.New(fmt.Sprintf("no configuration file found in paths: %s", strings.Join(candidates, ", "))).
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", candidates)
}

// ListPossibleConfigFiles returns all candidate paths in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	paths := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(options.Extensions))
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}
	return paths
}
