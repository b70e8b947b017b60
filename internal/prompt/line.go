package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Line prompts on plain line-oriented streams. End of input cancels.
type Line struct {
	reader *bufio.Reader
	w      io.Writer
}

// NewLine returns a Line prompter reading r and writing questions to w.
func NewLine(r io.Reader, w io.Writer) *Line {
	return &Line{reader: bufio.NewReader(r), w: w}
}

func (l *Line) readLine() (string, error) {
	line, err := l.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (l *Line) Text(msg, initial string, validate Validator) (string, error) {
	for {
		if initial != "" {
			fmt.Fprintf(l.w, "%s (%s): ", msg, initial)
		} else {
			fmt.Fprintf(l.w, "%s: ", msg)
		}
		answer, err := l.readLine()
		if err != nil {
			return "", err
		}
		if answer == "" {
			answer = initial
		}
		if validate != nil {
			if verr := validate(answer); verr != nil {
				fmt.Fprintf(l.w, "✖ %s\n", verr)
				continue
			}
		}
		return answer, nil
	}
}

func (l *Line) Confirm(msg string, initial bool) (bool, error) {
	hint := "y/N"
	if initial {
		hint = "Y/n"
	}
	for {
		fmt.Fprintf(l.w, "%s (%s): ", msg, hint)
		answer, err := l.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return initial, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(l.w, "✖ answer y or n")
	}
}

// Select presents a numbered list; an empty answer picks initial.
func (l *Line) Select(msg string, options []string, initial int) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("select %q: no options", msg)
	}
	if initial < 0 || initial >= len(options) {
		initial = 0
	}
	for {
		fmt.Fprintf(l.w, "\n%s\n", msg)
		for i, opt := range options {
			fmt.Fprintf(l.w, "  %d) %s\n", i+1, opt)
		}
		fmt.Fprintf(l.w, "Enter number [1-%d] (%d): ", len(options), initial+1)

		answer, err := l.readLine()
		if err != nil {
			return "", err
		}
		if answer == "" {
			return options[initial], nil
		}
		num, convErr := strconv.Atoi(answer)
		if convErr != nil || num < 1 || num > len(options) {
			fmt.Fprintf(l.w, "✖ invalid selection %q: choose 1-%d\n", answer, len(options))
			continue
		}
		return options[num-1], nil
	}
}
