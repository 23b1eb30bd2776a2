package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/toyutils/toybox/core/ios"
)

var catTool = &Tool{
	Name:  "cat",
	Use:   "cat [-n] [-c] [FILE]...",
	Short: "Concatenate FILE(s), or standard input, to standard output.",
}

// Cat streams each named source, or standard input when none are named,
// to standard output one line at a time. Every emitted line carries
// exactly one trailing newline: one already present is kept, a missing
// one (an unterminated final line) is added.
//
// -n numbers each line in a six character field followed by a tab,
// restarting at one for each source. -c keeps the counter running across
// sources instead, and implies -n.
func Cat(virtIO ios.IOS) int {
	return catTool.Run(virtIO, func(flags FlagSet, args []string) int {
		continuous := flags.Has("-c")
		number := flags.Has("-n") || continuous

		w := virtIO.Stdout()
		lineNo := 0

		return catTool.RunEachSourceOrStdin(virtIO, args, func(name string, r io.Reader) error {
			if !continuous {
				lineNo = 0
			}

			reader := bufio.NewReader(r)
			for {
				line, err := reader.ReadString('\n')
				if len(line) > 0 {
					lineNo++
					if !strings.HasSuffix(line, "\n") {
						line += "\n"
					}
					if number {
						if _, werr := fmt.Fprintf(w, "%6d\t", lineNo); werr != nil {
							return werr
						}
					}
					if _, werr := io.WriteString(w, line); werr != nil {
						return werr
					}
				}
				if err == io.EOF {
					return nil
				}
				if err != nil {
					return err
				}
			}
		})
	})
}

var _ ToolFunc = Cat

func init() {
	registerTool(catTool, Cat)
}
