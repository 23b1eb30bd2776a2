// Package cmd wires the tools into a single multiplexed binary.
package cmd

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "toybox",
	Short: "A toolbox of small standard-stream utilities.",
	Long: `A toolbox of small line-oriented utilities: echo, ed, and cat.

Each tool reads and writes only the standard streams, keeps no state
between runs, and treats any argument starting with '-' as a flag.
Unrecognized flags are silently ignored.

The tools can also be invoked directly by name, e.g. via a symlink
from "cat" to the toybox binary.`,
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}
