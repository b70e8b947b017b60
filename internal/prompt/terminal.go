package prompt

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Terminal prompts with pterm's interactive printers. Ctrl+C cancels.
type Terminal struct{}

func (t *Terminal) Text(msg, initial string, validate Validator) (string, error) {
	for {
		interrupted := false
		answer, err := pterm.DefaultInteractiveTextInput.
			WithDefaultValue(initial).
			WithOnInterruptFunc(func() { interrupted = true }).
			Show(msg)
		if interrupted {
			return "", ErrCancelled
		}
		if err != nil {
			return "", fmt.Errorf("prompt %q: %w", msg, err)
		}
		if answer == "" {
			answer = initial
		}
		if validate != nil {
			if verr := validate(answer); verr != nil {
				pterm.Error.Println(verr.Error())
				continue
			}
		}
		return answer, nil
	}
}

func (t *Terminal) Confirm(msg string, initial bool) (bool, error) {
	interrupted := false
	answer, err := pterm.DefaultInteractiveConfirm.
		WithDefaultValue(initial).
		WithOnInterruptFunc(func() { interrupted = true }).
		Show(msg)
	if interrupted {
		return false, ErrCancelled
	}
	if err != nil {
		return false, fmt.Errorf("prompt %q: %w", msg, err)
	}
	return answer, nil
}

func (t *Terminal) Select(msg string, options []string, initial int) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("select %q: no options", msg)
	}
	if initial < 0 || initial >= len(options) {
		initial = 0
	}
	interrupted := false
	answer, err := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultOption(options[initial]).
		WithOnInterruptFunc(func() { interrupted = true }).
		Show(msg)
	if interrupted {
		return "", ErrCancelled
	}
	if err != nil {
		return "", fmt.Errorf("prompt %q: %w", msg, err)
	}
	return answer, nil
}
