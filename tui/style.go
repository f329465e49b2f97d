package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	stylePaneTitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("34")).
			Bold(true)

	stylePaneTitleBlur = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243"))

	styleDirective = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))
)

// paneTitle renders a pane heading, dimmed when the pane lacks focus.
func paneTitle(label string, focused bool) string {
	if focused {
		return stylePaneTitle.Render("▸ " + label)
	}
	return stylePaneTitleBlur.Render("  " + label)
}
