package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
)

// PromptForTarget prompts the user for the path of the file to rewrite.
func PromptForTarget() (string, error) {
	var path string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Target file").
				Description("Path of the Go source file whose log calls should be rewritten").
				Placeholder("game/manager.go").
				Value(&path).
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return fmt.Errorf("path cannot be empty")
					}
					if _, err := os.Stat(s); err != nil {
						return fmt.Errorf("cannot read %s", s)
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("prompt cancelled: %w", err)
	}

	return strings.TrimSpace(path), nil
}

// ConfirmApply asks the user to confirm overwriting the target file.
func ConfirmApply(path string, replacements, emojiRemoved int) (bool, error) {
	var confirm bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Rewrite %d log call(s) in %s?", replacements, path)).
				Description(fmt.Sprintf("%d emoji prefix(es) will also be removed. The file is overwritten in place.", emojiRemoved)).
				Affirmative("Yes, rewrite").
				Negative("Cancel").
				Value(&confirm),
		),
	)

	if err := form.Run(); err != nil {
		return false, err
	}

	return confirm, nil
}
