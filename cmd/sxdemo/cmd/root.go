package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sxdemo",
	Short: "sxdemo - scalar symbolic expression playground",
	Long: `sxdemo exercises the scalar symbolic-expression engine from the
command line.

Subcommands:
  demo     - build an expression system and show eager simplification
  trunc    - show budgeted printing on a deep expression chain`,
}

func Execute() error {
	return rootCmd.Execute()
}
