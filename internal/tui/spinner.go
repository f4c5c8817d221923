package tui

import (
	"context"

	"github.com/charmbracelet/huh/spinner"
)

// WithSpinner runs fn behind an animated spinner when the environment is
// interactive. In pipes, redirects and CI it calls fn directly, so output
// stays clean.
func WithSpinner(ctx context.Context, title string, fn func(context.Context) error) error {
	if !IsInteractive() {
		return fn(ctx)
	}

	return spinner.New().
		Title(title).
		Context(ctx).
		ActionWithErr(fn).
		Run()
}
