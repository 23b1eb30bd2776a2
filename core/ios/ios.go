// Package ios provides the runtime surface the tools run against: argv,
// the three standard streams, and a filesystem. Tools never reach for the
// os package directly so tests can swap in buffers and an in-memory
// filesystem.
package ios

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
)

// ToolFunc is the entry point of a tool. It consumes the runtime it's
// given and returns the process exit status.
type ToolFunc func(virtIO IOS) int

// IOS is the I/O surface a tool sees when it runs.
type IOS interface {
	// Args holds the full argument list, including the tool name at
	// position zero.
	Args() []string

	Stdin() io.ReadCloser
	Stdout() io.WriteCloser
	Stderr() io.WriteCloser

	// FS is the filesystem used to open named sources.
	FS() afero.Fs

	// IsPTY reports whether stdout is an interactive terminal. It only
	// influences decoration, never tool semantics.
	IsPTY() bool
}

// Adapter is the concrete IOS used by both the real binary and tests.
type Adapter struct {
	IArgs   []string
	IStdin  io.ReadCloser
	IStdout io.WriteCloser
	IStderr io.WriteCloser
	IFS     afero.Fs
	PTY     bool
}

var _ IOS = (*Adapter)(nil)

// NewAdapter wraps the given streams into an IOS. Nil streams are promoted
// to a /dev/null implementation: reads fail closed and writes are
// discarded. A nil fs gets an empty in-memory filesystem.
func NewAdapter(argv []string, stdin io.Reader, stdout, stderr io.Writer, fs afero.Fs) *Adapter {
	if fs == nil {
		fs = afero.NewMemMapFs()
	}
	return &Adapter{
		IArgs:   argv,
		IStdin:  toReadCloserOrDiscard(stdin),
		IStdout: toWriteCloserOrDiscard(stdout),
		IStderr: toWriteCloserOrDiscard(stderr),
		IFS:     fs,
	}
}

// System binds the calling process's streams and the real filesystem.
func System(argv []string) *Adapter {
	a := NewAdapter(argv, os.Stdin, os.Stdout, os.Stderr, afero.NewOsFs())
	a.PTY = isatty.IsTerminal(os.Stdout.Fd())
	return a
}

func (a *Adapter) Args() []string         { return a.IArgs }
func (a *Adapter) Stdin() io.ReadCloser   { return a.IStdin }
func (a *Adapter) Stdout() io.WriteCloser { return a.IStdout }
func (a *Adapter) Stderr() io.WriteCloser { return a.IStderr }
func (a *Adapter) FS() afero.Fs           { return a.IFS }
func (a *Adapter) IsPTY() bool            { return a.PTY }

func toWriteCloserOrDiscard(w io.Writer) io.WriteCloser {
	if w == nil {
		return &devNull{}
	}
	if wc, ok := w.(io.WriteCloser); ok {
		return wc
	}
	return nopWriteCloser{w}
}

func toReadCloserOrDiscard(r io.Reader) io.ReadCloser {
	if r == nil {
		return &devNull{}
	}
	if rc, ok := r.(io.ReadCloser); ok {
		return rc
	}
	return io.NopCloser(r)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// devNull implements io.ReadCloser and io.WriteCloser, always closed for
// reads and discarding writes.
type devNull struct{}

var _ io.ReadCloser = (*devNull)(nil)
var _ io.WriteCloser = (*devNull)(nil)

func (*devNull) Read([]byte) (int, error) {
	return 0, os.ErrClosed
}

func (*devNull) Write(b []byte) (int, error) {
	return len(b), nil
}

func (*devNull) Close() error {
	return nil
}
