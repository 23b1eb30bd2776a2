package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/toyutils/toybox/commands"
	"github.com/toyutils/toybox/core/ios"
)

// toolCommand bridges a registered tool into a cobra subcommand. Flag
// parsing is disabled so the tool's own lexical argument scan sees the
// raw tokens.
func toolCommand(entry commands.ToolEntry) *cobra.Command {
	return &cobra.Command{
		Use:                entry.Use,
		Short:              entry.Short,
		DisableFlagParsing: true,
		Run: func(cmd *cobra.Command, args []string) {
			argv := append([]string{entry.Name}, args...)
			if status := entry.Fn(ios.System(argv)); status != 0 {
				os.Exit(status)
			}
		},
	}
}

func init() {
	for _, entry := range commands.ListTools() {
		rootCmd.AddCommand(toolCommand(entry))
	}
}
