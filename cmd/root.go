package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "pairs",
	Short: "A memory matching card game for the terminal",
	Long: `Pairs is a terminal memory game: a shuffled board of face-down cards,
two cards per symbol. Flip two cards a turn; matches stay open, mismatches
flip back. Fewer moves means more stars.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
