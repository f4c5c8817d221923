package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// The anchorver palette. Purple and green track the Solana brand colors,
// toned down for light terminals.
var (
	anchorPrimary           = lipgloss.AdaptiveColor{Light: "#6d28d9", Dark: "#9945ff"}
	anchorBright            = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#b980ff"}
	anchorAccent            = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#14f195"}
	anchorTextStrong        = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#f9fafb"}
	anchorTextNormal        = lipgloss.AdaptiveColor{Light: "#374151", Dark: "#d1d5db"}
	anchorTextMuted         = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	anchorTextFaint         = lipgloss.AdaptiveColor{Light: "#9ca3af", Dark: "#6b7280"}
	anchorBorderFocused     = lipgloss.AdaptiveColor{Light: "#6d28d9", Dark: "#9945ff"}
	anchorBorderNormal      = lipgloss.AdaptiveColor{Light: "#d1d5db", Dark: "#374151"}
	anchorButtonBg          = lipgloss.AdaptiveColor{Light: "#6d28d9", Dark: "#9945ff"}
	anchorButtonBgBlurred   = lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#1f2937"}
	anchorButtonText        = lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#0b0f17"}
	anchorButtonTextBlurred = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
)

// anchorverTheme builds the default huh theme for anchorver prompts.
func anchorverTheme() *huh.Theme {
	t := huh.ThemeBase()

	f := &t.Focused
	f.Base = f.Base.BorderStyle(lipgloss.RoundedBorder()).BorderForeground(anchorBorderFocused)
	f.Title = f.Title.Foreground(anchorPrimary).Bold(true)
	f.NoteTitle = f.NoteTitle.Foreground(anchorPrimary).Bold(true)
	f.Description = f.Description.Foreground(anchorTextMuted)
	f.SelectSelector = f.SelectSelector.Foreground(anchorAccent)
	f.Option = f.Option.Foreground(anchorTextNormal)
	f.SelectedOption = f.SelectedOption.Foreground(anchorBright)
	f.SelectedPrefix = f.SelectedPrefix.Foreground(anchorAccent)
	f.UnselectedOption = f.UnselectedOption.Foreground(anchorTextNormal)
	f.UnselectedPrefix = f.UnselectedPrefix.Foreground(anchorTextFaint)
	f.MultiSelectSelector = f.MultiSelectSelector.Foreground(anchorAccent)
	f.FocusedButton = f.FocusedButton.Foreground(anchorButtonText).Background(anchorButtonBg).Bold(true).Padding(0, 1)
	f.BlurredButton = f.BlurredButton.Foreground(anchorButtonTextBlurred).Background(anchorButtonBgBlurred).Padding(0, 1)
	f.TextInput.Cursor = f.TextInput.Cursor.Foreground(anchorAccent)
	f.TextInput.Prompt = f.TextInput.Prompt.Foreground(anchorPrimary)
	f.TextInput.Placeholder = f.TextInput.Placeholder.Foreground(anchorTextFaint)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder()).BorderForeground(anchorBorderNormal)
	t.Blurred.Title = t.Blurred.Title.Foreground(anchorTextMuted).Bold(false)
	t.Blurred.NoteTitle = t.Blurred.NoteTitle.Foreground(anchorTextMuted).Bold(false)
	t.Blurred.Description = t.Blurred.Description.Foreground(anchorTextFaint)

	h := &t.Help
	h.ShortKey = h.ShortKey.Foreground(anchorTextStrong)
	h.ShortDesc = h.ShortDesc.Foreground(anchorTextFaint)
	h.ShortSeparator = h.ShortSeparator.Foreground(anchorTextFaint)
	h.FullKey = h.FullKey.Foreground(anchorTextStrong)
	h.FullDesc = h.FullDesc.Foreground(anchorTextFaint)
	h.FullSeparator = h.FullSeparator.Foreground(anchorTextFaint)

	return t
}
