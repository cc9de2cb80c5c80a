package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/numfmt/foundation/core/config"
	mdwerror "github.com/msto63/numfmt/foundation/core/error"
	mdwlog "github.com/msto63/numfmt/foundation/core/log"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string

	// set by loadSettings before every command
	settings = config.Default()
	logger   = mdwlog.Discard()
)

// errNotEqual makes `equal` exit with status 1 without an error message
var errNotEqual = errors.New("values are not equal")

var rootCmd = &cobra.Command{
	Use:   "numfmt",
	Short: "numfmt - Zahlen zerlegen, runden und formatieren",
	Long: `numfmt zerlegt Dezimalzahlen in Vorzeichen, Ziffern und Exponent,
rundet auf signifikante Stellen und formatiert in Festkommadarstellung.

Befehle:
  split    - Zahl in Vorzeichen, Ziffern und Exponent zerlegen
  round    - auf signifikante Stellen runden
  fixed    - Festkommadarstellung mit n Nachkommastellen
  equal    - zwei Zahlen mit relativer Toleranz vergleichen
  inspect  - Ganzzahl, Signum und log2 einer Zahl
  zeros    - Liste von Nullen
  tui      - interaktive Oberfläche

Konfiguration: numfmt.toml oder numfmt.yaml im Arbeitsverzeichnis oder
im Benutzer-Konfigurationsverzeichnis, Umgebungsvariablen NUMFMT_*.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

// Execute runs the root command and reports errors on stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errNotEqual) {
		if logger.IsLevelEnabled(mdwlog.LevelDebug) {
			logger.LogError(err)
		}
		printError(rootCmd, err)
	}
	return err
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errNotEqual):
		return 1
	default:
		return mdwerror.GetCode(err).ExitCode()
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./numfmt.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log-Format: json, text oder logfmt")
}

func loadSettings(cmd *cobra.Command, args []string) error {
	logger = mdwlog.Discard()

	var (
		s    *config.Settings
		path = cfgFile
		err  error
	)
	if cfgFile != "" {
		s, err = config.Load(cfgFile)
	} else {
		s, path, err = config.Discover(config.DefaultDiscoveryOptions())
	}
	if err != nil {
		return err
	}

	if err := s.ApplyEnv(config.DefaultEnvPrefix); err != nil {
		return err
	}
	if verbose {
		s.Log.Level = "debug"
	}
	if logFormat != "" {
		s.Log.Format = logFormat
	}
	if err := s.Validate(); err != nil {
		return err
	}

	level, _ := mdwlog.ParseLevel(s.Log.Level)
	format, _ := mdwlog.ParseFormat(s.Log.Format)
	settings = s
	logger = mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "numfmt",
	}).WithRequestID(uuid.NewString()).WithField("command", cmd.Name())

	logger.Debug("settings loaded", mdwlog.Fields{
		"config":             path,
		"precision":          s.Format.Precision,
		"significant_digits": s.Format.SignificantDigits,
		"epsilon":            s.Format.Epsilon,
	})
	return nil
}

func printError(cmd *cobra.Command, err error) {
	w := cmd.ErrOrStderr()
	fmt.Fprintln(w, newStyles(w).err.Render("Fehler: "+err.Error()))
}

// parseNumber parses a command line number. Parse failures are
// INVALID_INPUT errors.
func parseNumber(arg string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, mdwerror.Wrap(err, "invalid number "+strconv.Quote(arg)).
			WithCode(mdwerror.CodeInvalidInput).
			WithDetail("input", arg)
	}
	return v, nil
}

// parseCount parses a non-negative integer argument
func parseCount(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, mdwerror.Wrap(err, "invalid count "+strconv.Quote(arg)).
			WithCode(mdwerror.CodeInvalidInput).
			WithDetail("input", arg)
	}
	return n, nil
}
