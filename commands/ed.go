package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/toyutils/toybox/core/ios"
)

// edSentinel ends the session when entered on its own line.
const edSentinel = "eat flaming death"

var edTool = &Tool{
	Name:  "ed",
	Use:   "ed",
	Short: "Answer every line of input with the only diagnostic ed knows.",
}

// Ed reads standard input line by line and answers each line with "?",
// in the grand tradition of its namesake. End of input ends the session
// normally. The sentinel line ends it too, and is checked before the
// answer so the final line produces no output.
func Ed(virtIO ios.IOS) int {
	return edTool.Run(virtIO, func(flags FlagSet, args []string) int {
		// Arguments and flags are accepted and ignored.
		scanner := bufio.NewScanner(virtIO.Stdin())
		for scanner.Scan() {
			if strings.TrimSpace(scanner.Text()) == edSentinel {
				return 0
			}
			fmt.Fprintln(virtIO.Stdout(), "?")
		}
		if err := scanner.Err(); err != nil {
			edTool.LogError(virtIO, err)
			return 1
		}
		return 0
	})
}

var _ ToolFunc = Ed

func init() {
	registerTool(edTool, Ed)
}
