// File: config.go
// Title: Settings Loading
// Description: Typed numfmt settings loaded from TOML or YAML files or
//              strings, with defaults for every value that is not set.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-15 v0.2.0: Typed Settings replace the generic key/value store

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/numfmt/foundation/core/error"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Default values
const (
	DefaultPrecision         = 2
	DefaultSignificantDigits = 3
	DefaultEpsilon           = 1e-9
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
)

// Settings holds everything numfmt reads from its configuration file
type Settings struct {
	Format FormatSettings `toml:"format" yaml:"format"`
	Log    LogSettings    `toml:"log" yaml:"log"`
}

// FormatSettings are the defaults used when a command does not say otherwise
type FormatSettings struct {
	// Precision is the number of fraction digits for ToFixed
	Precision int `toml:"precision" yaml:"precision"`

	// SignificantDigits is the precision passed to RoundDigits
	SignificantDigits int `toml:"significant_digits" yaml:"significant_digits"`

	// Epsilon is the relative tolerance for NearlyEqual
	Epsilon float64 `toml:"epsilon" yaml:"epsilon"`
}

// LogSettings configure the logger
type LogSettings struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// Default returns the built-in settings
func Default() *Settings {
	return &Settings{
		Format: FormatSettings{
			Precision:         DefaultPrecision,
			SignificantDigits: DefaultSignificantDigits,
			Epsilon:           DefaultEpsilon,
		},
		Log: LogSettings{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Load reads settings from a file. The format is detected from the file
// extension (.yaml and .yml are YAML, everything else TOML). Values not
// present in the file keep their defaults.
func Load(filePath string) (*Settings, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.Load")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerror.New(fmt.Sprintf("config file not found: %s", filePath)).
				WithCode(mdwerror.CodeNotFound).
				WithOperation("config.Load").
				WithDetail("filePath", filePath)
		}
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("filePath", filePath)
	}

	format := detectFormat(filePath)
	settings, err := parseContent(content, format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config file").
			WithOperation("config.Load").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}
	return settings, nil
}

// LoadFromString parses settings from a string. FormatAuto is read as TOML.
func LoadFromString(content string, format Format) (*Settings, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	settings, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config from string").
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}
	return settings, nil
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent decodes content on top of the defaults. Unknown keys are
// rejected so that typos do not silently fall back to a default.
func parseContent(content []byte, format Format) (*Settings, error) {
	settings := Default()

	switch format {
	case FormatTOML:
		meta, err := toml.Decode(string(content), settings)
		if err != nil {
			return nil, mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, key := range undecoded {
				keys = append(keys, key.String())
			}
			sort.Strings(keys)
			return nil, mdwerror.New(fmt.Sprintf("unknown config keys: %s", strings.Join(keys, ", "))).
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.parseContent").
				WithDetail("keys", keys)
		}
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		decoder.KnownFields(true)
		// an empty document decodes to io.EOF and leaves the defaults
		if err := decoder.Decode(settings); err != nil && !errors.Is(err, io.EOF) {
			return nil, mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	default:
		return nil, mdwerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.parseContent").
			WithDetail("format", format.String())
	}

	return settings, nil
}

// String renders the settings as TOML
func (s *Settings) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return fmt.Sprintf("%+v", *s)
	}
	return buf.String()
}
