package editor

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Style holds the lipgloss styles used by the editor.
type Style struct {
	Base    lipgloss.Style
	Title   lipgloss.Style
	Hint    lipgloss.Style
	Status  lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Table   table.Styles
}

func newStyle(dark bool) Style {
	accent := lipgloss.Color("#60a5fa")
	muted := lipgloss.Color("#6b7280")
	text := lipgloss.Color("#e5e7eb")

	if !dark {
		accent = lipgloss.Color("#1d4ed8")
		muted = lipgloss.Color("#4b5563")
		text = lipgloss.Color("#111827")
	}

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(muted).
		BorderBottom(true).
		Bold(true)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color("#000000")).
		Background(accent).
		Bold(false)

	return Style{
		Base:    lipgloss.NewStyle().Padding(1, 2),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		Hint:    lipgloss.NewStyle().Foreground(muted),
		Status:  lipgloss.NewStyle().Foreground(text),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b")),
		Table:   ts,
	}
}
