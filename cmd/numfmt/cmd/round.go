package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/numfmt/foundation/core/log"
	"github.com/msto63/numfmt/foundation/utils/numx"
)

var (
	roundDigits int
	roundRaw    bool
)

var roundCmd = &cobra.Command{
	Use:   "round <zahl>",
	Short: "Rundet auf signifikante Stellen",
	Long: `Rundet eine Zahl auf --digits signifikante Stellen (Standard aus der
Konfiguration, format.significant_digits). Vorzeichen und Größenordnung
bleiben erhalten. Negative Werte ergeben 0.

Mit --raw werden nur die Ziffern gerundet, ohne Vorzeichen und
Exponent der Eingabe.

Beispiel:
  numfmt round 123.456 --digits 4   # 123.5`,
	Args: cobra.ExactArgs(1),
	RunE: runRound,
}

func init() {
	roundCmd.Flags().IntVarP(&roundDigits, "digits", "d", 0, "Signifikante Stellen")
	roundCmd.Flags().BoolVar(&roundRaw, "raw", false, "Nur die Ziffern runden")
	rootCmd.AddCommand(roundCmd)
}

func runRound(cmd *cobra.Command, args []string) error {
	digits := settings.Format.SignificantDigits
	if cmd.Flags().Changed("digits") {
		digits = roundDigits
	}

	split, err := numx.SplitNumber(args[0])
	if err != nil {
		return err
	}

	var rounded numx.SplitValue
	if roundRaw {
		rounded = numx.RoundDigits(split, digits)
	} else {
		rounded = numx.RoundSignificant(split, digits)
	}
	logger.Debug("rounded", mdwlog.Fields{
		"input":        args[0],
		"digits":       digits,
		"coefficients": fmt.Sprint(rounded.Coefficients),
		"exponent":     rounded.Exponent,
	})

	fmt.Fprintln(cmd.OutOrStdout(), rounded.String())
	return nil
}
