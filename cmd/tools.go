package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/toyutils/toybox/commands"
	"github.com/toyutils/toybox/core/ios"
)

// listTools writes one line per registered tool. Tool names are colored
// only when the runtime reports an interactive terminal.
func listTools(w io.Writer, colorize bool) error {
	toolName := color.New(color.FgGreen, color.Bold)
	if colorize {
		toolName.EnableColor()
	} else {
		toolName.DisableColor()
	}

	for _, entry := range commands.ListTools() {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", toolName.Sprint(entry.Name), entry.Short); err != nil {
			return err
		}
	}

	return nil
}

// toolsCmd lists every tool built into the binary.
var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools built into this binary.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listTools(cmd.OutOrStdout(), ios.System(os.Args).IsPTY())
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}
