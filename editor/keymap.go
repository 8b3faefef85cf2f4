package editor

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
)

type keymap struct {
	add       key.Binding
	edit      key.Binding
	del       key.Binding
	save      key.Binding
	load      key.Binding
	importCSV key.Binding
	exportCSV key.Binding
	exportPNG key.Binding
	esc       key.Binding
	help      key.Binding
	quit      key.Binding
}

var defaultKeymap = keymap{
	add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add"),
	),
	edit: key.NewBinding(
		key.WithKeys("e", "enter"),
		key.WithHelp("e", "edit"),
	),
	del: key.NewBinding(
		key.WithKeys("d", "delete"),
		key.WithHelp("d", "delete"),
	),
	save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save clock"),
	),
	load: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "load clock"),
	),
	importCSV: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "import csv"),
	),
	exportCSV: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "export csv"),
	),
	exportPNG: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "export png"),
	),
	esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.add, k.edit, k.del, k.exportPNG, k.help, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.add, k.edit, k.del},
		{k.save, k.load},
		{k.importCSV, k.exportCSV, k.exportPNG},
		{k.help, k.quit},
	}
}

// tableKeymap frees "d" for deletion.
func tableKeymap() table.KeyMap {
	km := table.DefaultKeyMap()
	km.HalfPageDown = key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "½ page down"),
	)

	return km
}
