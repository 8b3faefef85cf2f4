// Package editor is the interactive terminal editor for the live clock. It
// shows the gap-filled clock as a ring and a table and drives every planner
// operation through keyboard shortcuts and huh forms.
package editor

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/hourclock/internal/models"
	"github.com/ayoisaiah/hourclock/internal/osutil"
	"github.com/ayoisaiah/hourclock/internal/planner"
	"github.com/ayoisaiah/hourclock/internal/render"
)

const (
	ringCols   = 44
	ringRows   = 22
	innerRatio = 0.35
)

type formKind int

const (
	noForm formKind = iota
	addForm
	editForm
	deleteForm
	saveForm
	loadForm
	importForm
)

// Options configures the editor.
type Options struct {
	// AfterExport runs after a PNG has been written, e.g. the export.cmd hook
	AfterExport func(path string) error
	PNGFile     string
	CSVFile     string
	Chart       render.Options
	DarkTheme   bool
}

// Model is the bubbletea model of the editor.
type Model struct {
	p       *planner.Planner
	log     *slog.Logger
	opts    Options
	style   Style
	help    help.Model
	table   table.Model
	form    *huh.Form
	values  *formValues
	status  string
	display []models.DisplaySegment
	kind    formKind
	failed  bool
}

// New returns an editor for p.
func New(p *planner.Planner, log *slog.Logger, opts Options) *Model {
	if opts.PNGFile == "" {
		opts.PNGFile = "clock.png"
	}

	if opts.CSVFile == "" {
		opts.CSVFile = "clock.csv"
	}

	style := newStyle(opts.DarkTheme)

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 3},
			{Title: "LABEL", Width: 24},
			{Title: "START", Width: 6},
			{Title: "END", Width: 6},
			{Title: "LENGTH", Width: 7},
			{Title: "COLOR", Width: 8},
		}),
		table.WithFocused(true),
		table.WithHeight(ringRows-2),
		table.WithKeyMap(tableKeymap()),
		table.WithStyles(style.Table),
	)

	m := &Model{
		p:     p,
		log:   log,
		opts:  opts,
		style: style,
		help:  help.New(),
		table: t,
	}

	m.refresh()

	return m
}

// Run starts the editor in the alternate screen and blocks until it quits.
func Run(p *planner.Planner, log *slog.Logger, opts Options) error {
	_, err := tea.NewProgram(New(p, log, opts), tea.WithAltScreen()).Run()

	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// refresh recomputes the projection and the table rows, keeping the cursor
// in range.
func (m *Model) refresh() {
	m.display = m.p.Display()

	cursor := m.table.Cursor()

	m.table.SetRows(tableRows(m.display))

	if cursor >= len(m.display) {
		cursor = len(m.display) - 1
	}

	if cursor < 0 {
		cursor = 0
	}

	m.table.SetCursor(cursor)
}

// selected returns the display row under the cursor.
func (m *Model) selected() (models.DisplaySegment, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.display) {
		return models.DisplaySegment{}, false
	}

	return m.display[i], true
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.failed = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.failed = true

	m.log.Warn("editor action failed", slog.String("error", err.Error()))
}

// exportPNG writes the chart to the configured file and runs the hook.
func (m *Model) exportPNG() {
	path := m.opts.PNGFile

	f, err := os.Create(path)
	if err != nil {
		m.setError(err)
		return
	}

	err = m.p.ExportPNG(f, m.opts.Chart)
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		m.setError(err)
		return
	}

	if m.opts.AfterExport != nil {
		if err := m.opts.AfterExport(path); err != nil {
			m.setError(err)
			return
		}
	}

	m.setStatus("Saved " + filepath.Base(path))
}

// exportCSV writes the live list to the configured CSV file.
func (m *Model) exportCSV() {
	path := m.opts.CSVFile

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, osutil.FilePermission)
	if err != nil {
		m.setError(err)
		return
	}

	err = m.p.ExportCSV(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		m.setError(err)
		return
	}

	m.setStatus("Saved " + filepath.Base(path))
}
