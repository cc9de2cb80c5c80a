package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/numfmt/foundation/core/log"
	"github.com/msto63/numfmt/foundation/utils/numx"
)

var fixedPrecision int

var fixedCmd = &cobra.Command{
	Use:   "fixed <zahl>...",
	Short: "Festkommadarstellung mit n Nachkommastellen",
	Long: `Formatiert Zahlen mit genau --precision Nachkommastellen (Standard aus
der Konfiguration, format.precision). Gerundet wird kaufmännisch,
Halbwerte in Richtung +Unendlich. Negative Werte runden auf Zehner,
Hunderter usw.

Beispiel:
  numfmt fixed 123.456 --precision 2   # 123.46`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFixed,
}

func init() {
	fixedCmd.Flags().IntVarP(&fixedPrecision, "precision", "p", 0, "Nachkommastellen")
	rootCmd.AddCommand(fixedCmd)
}

func runFixed(cmd *cobra.Command, args []string) error {
	precision := settings.Format.Precision
	if cmd.Flags().Changed("precision") {
		precision = fixedPrecision
	}

	for _, arg := range args {
		v, err := parseNumber(arg)
		if err != nil {
			return err
		}
		out := numx.ToFixed(v, precision)
		logger.Debug("fixed", mdwlog.Fields{"input": arg, "precision": precision, "output": out})
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return nil
}
