package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/toyutils/toybox/core/ios/iostest"
)

func TestEcho(t *testing.T) {
	cases := goldenTestSuite{
		"no-args":      {Args: []string{"echo"}},
		"plain":        {Args: []string{"echo", "foo", "bar"}},
		"squash":       {Args: []string{"echo", "-s", "foo", "bar"}},
		"no-newline":   {Args: []string{"echo", "-n", "foo"}},
		"unknown-flag": {Args: []string{"echo", "-z", "foo"}},
	}

	cases.Run(t, Echo)
}

func TestEcho_output(t *testing.T) {
	cases := []struct {
		name     string
		args     []string
		expected string
	}{
		{"joins-with-space", []string{"foo", "bar", "baz"}, "foo bar baz\n"},
		{"single-arg", []string{"foo"}, "foo\n"},
		{"empty", nil, "\n"},
		{"squash-and-no-newline", []string{"-s", "-n", "foo", "bar", "baz"}, "foobarbaz"},
		{"squash-only", []string{"-s", "foo", "bar"}, "foobar\n"},
		{"no-newline-only", []string{"-n"}, ""},
		{"flags-after-args", []string{"foo", "bar", "-s", "-n"}, "foobar"},
		{"unknown-flags-ignored", []string{"-q", "foo", "--verbose", "bar"}, "foo bar\n"},
		{"empty-arg-kept", []string{"foo", "", "bar"}, "foo  bar\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := iostest.Command(Echo, "echo", tc.args...)

			out, err := cmd.Output()

			assert.Nil(t, err)
			assert.Equal(t, 0, cmd.ExitStatus, "exit code")
			assert.Equal(t, tc.expected, string(out))
		})
	}
}
