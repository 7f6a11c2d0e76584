// Package cli wires the cobra commands for the sudoku-tutor binary.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "sudoku-tutor",
	Short:         "Generate, solve, and explain 9x9 Sudoku puzzles",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
