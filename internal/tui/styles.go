// Package tui is the interactive terminal browser: a country grid that loads the next page
// when the cursor reaches the bottom, and a details page for the selected country.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#8BC34A")
	muted  = lipgloss.Color("#7a8699")
	danger = lipgloss.Color("#e53935")
)

type Styles struct {
	Title    lipgloss.Style
	Control  lipgloss.Style
	Row      lipgloss.Style
	Selected lipgloss.Style
	Label    lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Control:  lipgloss.NewStyle().Foreground(muted),
		Row:      lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Label:    lipgloss.NewStyle().Bold(true).Width(18),
		Status:   lipgloss.NewStyle().Foreground(muted),
		Error:    lipgloss.NewStyle().Foreground(danger),
		Help:     lipgloss.NewStyle().Foreground(muted).Italic(true),
	}
}
