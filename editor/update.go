package editor

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"
)

// updateForm forwards msg to the open form and applies it once completed.
func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(keyMsg, defaultKeymap.esc):
			m.closeForm()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.submit()
		return m, nil
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	case huh.StateNormal:
	}

	return m, cmd
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.quit):
		return m, tea.Quit
	case key.Matches(msg, defaultKeymap.add):
		return m, m.openAdd()
	case key.Matches(msg, defaultKeymap.edit):
		return m, m.openEdit()
	case key.Matches(msg, defaultKeymap.del):
		return m, m.openDelete()
	case key.Matches(msg, defaultKeymap.save):
		return m, m.openSave()
	case key.Matches(msg, defaultKeymap.load):
		return m, m.openLoad()
	case key.Matches(msg, defaultKeymap.importCSV):
		return m, m.openImport()
	case key.Matches(msg, defaultKeymap.exportCSV):
		m.exportCSV()
		return m, nil
	case key.Matches(msg, defaultKeymap.exportPNG):
		m.exportPNG()
		return m, nil
	case key.Matches(msg, defaultKeymap.help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, defaultKeymap.esc):
		m.status = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.log.Enabled(context.Background(), slog.LevelDebug) {
		m.log.Debug(spew.Sdump(msg))
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}
