package initialize

import (
	"github.com/charmbracelet/huh"

	"anchorver/internal/tui"
)

// Prompter abstracts interactive prompts for testability.
type Prompter interface {
	Confirm(title, description string) (bool, error)
	Select(title, description string, options []huh.Option[string]) (string, error)
	Input(title, description, placeholder string) (string, error)
}

// TUIPrompter implements Prompter using the tui package.
type TUIPrompter struct{}

// NewPrompter creates a new TUIPrompter.
func NewPrompter() Prompter {
	return &TUIPrompter{}
}

// Confirm shows a yes/no confirmation prompt.
func (p *TUIPrompter) Confirm(title, description string) (bool, error) {
	return tui.Confirm(title, description)
}

// Select shows a single-select prompt.
func (p *TUIPrompter) Select(title, description string, options []huh.Option[string]) (string, error) {
	return tui.Select(title, description, options)
}

// Input shows a free-text prompt.
func (p *TUIPrompter) Input(title, description, placeholder string) (string, error) {
	return tui.Input(title, description, placeholder)
}
