package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/numfmt/foundation/utils/numx"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <zahl>",
	Short: "Zeigt Ganzzahl, Signum und log2 einer Zahl",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	v, err := parseNumber(args[0])
	if err != nil {
		return err
	}

	st := newStyles(cmd.OutOrStdout())
	rows := []string{
		st.row("Wert", numx.FormatNumber(v)),
		st.row("Ganzzahl", fmt.Sprint(numx.IsInteger(v))),
		st.row("Signum", fmt.Sprint(numx.Sign(v))),
	}

	if l, err := numx.Log2(v); err != nil {
		logger.LogError(err)
		rows = append(rows, st.row("log2", st.err.Render(err.Error())))
	} else {
		rows = append(rows, st.row("log2", numx.FormatNumber(l)))
	}

	if split, err := numx.SplitNumber(v); err == nil {
		rows = append(rows, st.row("Zerlegung", fmt.Sprintf("%s %v e%d", split.Sign, split.Coefficients, split.Exponent)))
	}

	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(rows, "\n"))
	return nil
}
