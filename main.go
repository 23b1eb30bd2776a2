package main

import (
	"os"
	"path/filepath"

	"github.com/toyutils/toybox/cmd"
	"github.com/toyutils/toybox/commands"
	"github.com/toyutils/toybox/core/ios"
)

func main() {
	// Multi-call dispatch: when invoked through a link named after a
	// tool, run that tool directly instead of the multiplexer.
	if fn, ok := commands.Lookup(filepath.Base(os.Args[0])); ok {
		os.Exit(fn(ios.System(os.Args)))
	}

	cmd.Execute()
}
