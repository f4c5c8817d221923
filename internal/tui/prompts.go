package tui

import (
	"github.com/charmbracelet/huh"
)

// Confirm shows a yes/no confirmation prompt with the current theme.
func Confirm(title, description string) (bool, error) {
	var answer bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Value(&answer),
		),
	).WithTheme(currentThemeOrDefault())

	if err := form.Run(); err != nil {
		return false, err
	}
	return answer, nil
}

// Select shows a single-select prompt and returns the chosen value.
func Select(title, description string, options []huh.Option[string]) (string, error) {
	var choice string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Description(description).
				Options(options...).
				Value(&choice),
		),
	).WithTheme(currentThemeOrDefault())

	if err := form.Run(); err != nil {
		return "", err
	}
	return choice, nil
}

// Input shows a free-text prompt with a placeholder and returns the entry.
func Input(title, description, placeholder string) (string, error) {
	var entry string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description(description).
				Placeholder(placeholder).
				Value(&entry),
		),
	).WithTheme(currentThemeOrDefault())

	if err := form.Run(); err != nil {
		return "", err
	}
	return entry, nil
}
