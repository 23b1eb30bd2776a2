package commands

import (
	"io"
	"strings"

	"github.com/toyutils/toybox/core/ios"
)

var echoTool = &Tool{
	Name:  "echo",
	Use:   "echo [-s] [-n] [STRING]...",
	Short: "Print arguments to standard output.",
}

// Echo prints its positional arguments joined by a separator and followed
// by a terminator. -s squashes the separator to nothing, -n drops the
// trailing newline.
func Echo(virtIO ios.IOS) int {
	return echoTool.Run(virtIO, func(flags FlagSet, args []string) int {
		separator := " "
		if flags.Has("-s") {
			separator = ""
		}

		terminator := "\n"
		if flags.Has("-n") {
			terminator = ""
		}

		// A single write per invocation.
		io.WriteString(virtIO.Stdout(), strings.Join(args, separator)+terminator)
		return 0
	})
}

var _ ToolFunc = Echo

func init() {
	registerTool(echoTool, Echo)
}
