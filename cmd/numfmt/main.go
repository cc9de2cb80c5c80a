package main

import (
	"os"

	"github.com/msto63/numfmt/cmd/numfmt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
