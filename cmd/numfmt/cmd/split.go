package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/numfmt/foundation/core/log"
	"github.com/msto63/numfmt/foundation/utils/numx"
)

var splitCmd = &cobra.Command{
	Use:   "split <zahl>...",
	Short: "Zerlegt Zahlen in Vorzeichen, Ziffern und Exponent",
	Long: `Zerlegt jede Zahl in Vorzeichen, signifikante Ziffern und den
Zehnerexponenten der ersten Ziffer.

Negative Zahlen nach "--" angeben, sonst werden sie als Flags gelesen.

Beispiel:
  numfmt split -- -0.00123 1.5e10`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	timer := logger.StartTimer("split").WithField("count", len(args))

	st := newStyles(cmd.OutOrStdout())
	t := st.table("Eingabe", "Vorzeichen", "Ziffern", "Exponent", "Wert")
	for _, arg := range args {
		split, err := numx.SplitNumber(arg)
		if err != nil {
			return err
		}
		logger.Trace("split", mdwlog.Fields{"input": arg, "exponent": split.Exponent})
		t.Row(arg, split.Sign, fmt.Sprint(split.Coefficients), strconv.Itoa(split.Exponent), split.String())
	}

	fmt.Fprintln(cmd.OutOrStdout(), t.String())
	timer.Stop()
	return nil
}
