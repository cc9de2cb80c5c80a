package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/numfmt/foundation/core/log"
	"github.com/msto63/numfmt/foundation/utils/numx"
)

var (
	equalEpsilon float64
	equalExact   bool
)

var equalCmd = &cobra.Command{
	Use:   "equal <x> <y>",
	Short: "Vergleicht zwei Zahlen mit relativer Toleranz",
	Long: `Vergleicht zwei Zahlen. Sie gelten als gleich, wenn ihr Abstand höchstens
epsilon mal dem größeren Betrag ist (Standard aus der Konfiguration,
format.epsilon). Mit --exact wird exakt verglichen. NaN und Unendlich
sind nie gleich.

Exit-Status 0 bei Gleichheit, sonst 1.`,
	Args: cobra.ExactArgs(2),
	RunE: runEqual,
}

func init() {
	equalCmd.Flags().Float64VarP(&equalEpsilon, "epsilon", "e", 0, "Relative Toleranz")
	equalCmd.Flags().BoolVar(&equalExact, "exact", false, "Exakt vergleichen")
	rootCmd.AddCommand(equalCmd)
}

func runEqual(cmd *cobra.Command, args []string) error {
	x, err := parseNumber(args[0])
	if err != nil {
		return err
	}
	y, err := parseNumber(args[1])
	if err != nil {
		return err
	}

	var equal bool
	epsilon := settings.Format.Epsilon
	switch {
	case equalExact:
		equal = numx.NearlyEqual(x, y)
	default:
		if cmd.Flags().Changed("epsilon") {
			epsilon = equalEpsilon
		}
		equal = numx.NearlyEqual(x, y, epsilon)
	}
	logger.Debug("compared", mdwlog.Fields{"x": x, "y": y, "epsilon": epsilon, "exact": equalExact, "equal": equal})

	fmt.Fprintln(cmd.OutOrStdout(), equal)
	if !equal {
		return errNotEqual
	}
	return nil
}
