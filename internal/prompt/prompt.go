// Package prompt asks the questions that configure a run. Terminal drives
// pterm's interactive printers; Line reads plain lines and is used when
// stdin is not a terminal and in tests.
package prompt

import (
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrCancelled is returned when the user interrupts a prompt, closes input,
// or declines to continue.
var ErrCancelled = errors.New("operation cancelled")

// Validator rejects an answer with a message shown before asking again.
type Validator func(string) error

// Prompter asks single questions.
type Prompter interface {
	Text(msg, initial string, validate Validator) (string, error)
	Confirm(msg string, initial bool) (bool, error)
	Select(msg string, options []string, initial int) (string, error)
}

// New returns a Terminal when in is a terminal and a Line prompter
// otherwise.
func New(in io.Reader, out io.Writer) Prompter {
	if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return &Terminal{}
	}
	return NewLine(in, out)
}
