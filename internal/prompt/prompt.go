// Package prompt provides interactive terminal prompts for CLI commands.
package prompt

import (
	"errors"

	"github.com/manifoldco/promptui"
)

// ErrAborted is returned when the user aborts a prompt (Ctrl+C).
var ErrAborted = errors.New("aborted")

// IsAborted returns true if the error indicates the user aborted (Ctrl+C).
func IsAborted(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrAbort) || errors.Is(err, ErrAborted)
}

func wrapError(err error) error {
	if err == nil {
		return nil
	}
	if IsAborted(err) {
		return ErrAborted
	}
	return err
}

// Input prompts for text input.
func Input(label string, defaultValue string) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Default:  defaultValue,
		Validate: Required,
	}

	result, err := prompt.Run()
	return result, wrapError(err)
}

// Password prompts for a secret with masking.
func Password(label string) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Mask:     '*',
		Validate: Required,
	}

	result, err := prompt.Run()
	return result, wrapError(err)
}

// Required rejects empty input.
func Required(input string) error {
	if input == "" {
		return errors.New("value is required")
	}
	return nil
}
