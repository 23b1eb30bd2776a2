package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/toyutils/toybox/core/ios"
)

// ToolFunc is the signature every tool implements.
type ToolFunc = ios.ToolFunc

// Tool describes one tool for help and listing purposes.
type Tool struct {
	// Name is the tool's invocation name.
	Name string
	// Use holds a one line usage string.
	Use string
	// Short holds a one line description of the tool.
	Short string
}

// ToolEntry pairs a tool's metadata with its entry point.
type ToolEntry struct {
	*Tool
	Fn ToolFunc
}

// AllTools holds every registered tool keyed by name.
var AllTools = make(map[string]ToolEntry)

func registerTool(tool *Tool, fn ToolFunc) {
	AllTools[tool.Name] = ToolEntry{Tool: tool, Fn: fn}
}

// Lookup finds a registered tool by name.
func Lookup(name string) (ToolFunc, bool) {
	entry, ok := AllTools[name]
	if !ok {
		return nil, false
	}
	return entry.Fn, true
}

// ListTools returns the registered tools sorted by name.
func ListTools() []ToolEntry {
	var out []ToolEntry
	for _, entry := range AllTools {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// FlagSet holds the marker-prefixed tokens of an argument list in their
// original order.
type FlagSet []string

// Has reports whether the given flag token appeared.
func (f FlagSet) Has(name string) bool {
	for _, flag := range f {
		if flag == name {
			return true
		}
	}
	return false
}

// ScanArgs splits an argument list (excluding the tool name) into flags
// and positional arguments. Detection is purely lexical: any token that
// begins with '-' is a flag, everything else is positional, relative order
// within each group is kept. There are no combined short flags, no flag
// arguments, and no "--" handling; tokens for flags a tool doesn't
// recognize are carried along and ignored.
func ScanArgs(argv []string) (flags FlagSet, rest []string) {
	for _, arg := range argv {
		if strings.HasPrefix(arg, "-") {
			flags = append(flags, arg)
		} else {
			rest = append(rest, arg)
		}
	}
	return flags, rest
}

// Run scans the runtime's arguments and invokes the callback. The tool
// name at argv position zero is skipped when present; an empty argv is
// treated as no arguments at all.
func (t *Tool) Run(virtIO ios.IOS, callback func(flags FlagSet, args []string) int) int {
	argv := virtIO.Args()
	if len(argv) > 0 {
		argv = argv[1:]
	}
	flags, rest := ScanArgs(argv)
	return callback(flags, rest)
}

// LogError reports a runtime failure the way coreutils do: "name: error".
func (t *Tool) LogError(virtIO ios.IOS, err error) {
	fmt.Fprintf(virtIO.Stderr(), "%s: %v\n", t.Name, err)
}

// RunEachSourceOrStdin calls visit once per named source in argument
// order, or once with stdin when no sources are named. Each source is
// opened immediately before its visit and closed immediately after,
// whether or not the visit succeeded. A source that fails to open or read
// is reported to stderr and skipped; the result is nonzero if any source
// failed.
func (t *Tool) RunEachSourceOrStdin(virtIO ios.IOS, sources []string, visit func(name string, r io.Reader) error) int {
	if len(sources) == 0 {
		if err := visit("-", virtIO.Stdin()); err != nil {
			t.LogError(virtIO, err)
			return 1
		}
		return 0
	}

	exitStatus := 0
	for _, source := range sources {
		err := func() error {
			fd, err := virtIO.FS().Open(source)
			if err != nil {
				return err
			}
			defer fd.Close()

			return visit(source, fd)
		}()
		if err != nil {
			t.LogError(virtIO, err)
			exitStatus = 1
		}
	}
	return exitStatus
}
