package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/numfmt/foundation/utils/numx"
)

var zerosCmd = &cobra.Command{
	Use:   "zeros <anzahl>",
	Short: "Gibt eine Liste von Nullen aus",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseCount(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), numx.Zeros(n))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(zerosCmd)
}
