package source

import (
	"errors"
	"fmt"
	"os/exec"
	"unicode/utf8"
)

// Errors reported by the command source.
var (
	ErrNoCommand     = errors.New("command source requires at least one argument")
	ErrInvalidOutput = errors.New("command produced invalid UTF-8")
)

// Command runs a subprocess on every poll and scrolls its stdout. The
// content is considered changed when the output differs from the
// previous run.
type Command struct {
	name string
	args []string
	last string
}

// NewCommand builds a command source from an argv vector.
func NewCommand(argv []string) (*Command, error) {
	if len(argv) == 0 {
		return nil, ErrNoCommand
	}
	return &Command{name: argv[0], args: argv[1:]}, nil
}

// Initial runs the command once and captures its output.
func (c *Command) Initial() (Content, error) {
	out, err := c.run()
	if err != nil {
		return Content{}, err
	}
	c.last = out
	return Content{Running: out}, nil
}

// Poll re-runs the command and reports whether the output changed.
func (c *Command) Poll() (Content, bool, error) {
	out, err := c.run()
	if err != nil {
		return Content{}, false, err
	}
	if out == c.last {
		return Content{}, false, nil
	}
	c.last = out
	return Content{Running: out}, true, nil
}

func (c *Command) run() (string, error) {
	out, err := exec.Command(c.name, c.args...).Output()
	if err != nil {
		return "", fmt.Errorf("running %s: %w", c.name, err)
	}
	if !utf8.Valid(out) {
		return "", fmt.Errorf("%w: %s", ErrInvalidOutput, c.name)
	}
	return string(out), nil
}
