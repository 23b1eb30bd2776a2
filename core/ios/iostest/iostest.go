// Package iostest runs tools against buffered streams and an in-memory
// filesystem, with an interface similar to os/exec.
package iostest

import (
	"bytes"
	"io"

	"github.com/spf13/afero"
	"github.com/toyutils/toybox/core/ios"
)

// Cmd is similar to exec.Cmd.
type Cmd struct {
	// Fn is the tool under test.
	Fn ios.ToolFunc
	// Argv holds the tool's arguments, the first should be the tool name.
	Argv []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// FS is the filesystem the tool sees, an empty MemMapFs by default.
	FS afero.Fs

	ExitStatus int

	// Setup runs against FS before the tool starts, e.g. to seed files.
	Setup func(fs afero.Fs) error
}

// Command builds a Cmd for the given tool over an empty in-memory
// filesystem.
func Command(fn ios.ToolFunc, name string, arg ...string) *Cmd {
	return &Cmd{
		Fn:   fn,
		Argv: append([]string{name}, arg...),
		FS:   afero.NewMemMapFs(),
	}
}

// Run starts the tool and waits for it to complete, recording the exit
// status in ExitStatus.
func (c *Cmd) Run() error {
	if c.Setup != nil {
		if err := c.Setup(c.FS); err != nil {
			return err
		}
	}

	virtIO := ios.NewAdapter(c.Argv, c.Stdin, c.Stdout, c.Stderr, c.FS)
	c.ExitStatus = c.Fn(virtIO)
	return nil
}

// CombinedOutput runs the tool and returns its combined stdout and stderr.
func (c *Cmd) CombinedOutput() ([]byte, error) {
	buf := &bytes.Buffer{}
	c.Stdout = buf
	c.Stderr = buf

	if err := c.Run(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Output runs the tool and returns its stdout.
func (c *Cmd) Output() ([]byte, error) {
	buf := &bytes.Buffer{}
	c.Stdout = buf

	if err := c.Run(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
