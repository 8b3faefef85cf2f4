package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/hourclock/internal/models"
	"github.com/ayoisaiah/hourclock/internal/planner"
	"github.com/ayoisaiah/hourclock/internal/render"
	"github.com/ayoisaiah/hourclock/internal/testutil"
)

type memDB struct {
	state *models.State
}

func (m *memDB) Load() (*models.State, error) {
	return m.state, nil
}

func (m *memDB) Save(s *models.State) error {
	m.state = s
	return nil
}

func (m *memDB) Close() error {
	return nil
}

func newTestModel(t *testing.T, segs []models.Segment) (*Model, *memDB) {
	t.Helper()

	db := &memDB{state: &models.State{
		Version:  models.SchemaVersion,
		Segments: segs,
	}}

	p, err := planner.New(db)
	require.NoError(t, err)

	dir := t.TempDir()

	chart := render.DefaultOptions()
	chart.Size = 120
	chart.InnerRadius = 10
	chart.OuterRadius = 50
	chart.LabelRadius = 40

	m := New(p, testutil.DiscardLogger(), Options{
		PNGFile: filepath.Join(dir, "clock.png"),
		CSVFile: filepath.Join(dir, "clock.csv"),
		Chart:   chart,
	})

	return m, db
}

func press(m *Model, k string) tea.Cmd {
	var msg tea.KeyMsg

	switch k {
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}

	_, cmd := m.Update(msg)

	return cmd
}

func gapped() []models.Segment {
	return []models.Segment{
		{ID: "a", Label: "Open", StartSeconds: 0, Duration: 600, Color: "#ff0000"},
		{ID: "b", Label: "Close", StartSeconds: 3000, Duration: 600, Color: "#0000ff"},
	}
}

func TestTableRows(t *testing.T) {
	m, _ := newTestModel(t, gapped())

	rows := tableRows(m.display)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"1", "Open", "00:00", "10:00", "10m", "#ff0000"}, []string(rows[0]))
	assert.Equal(t, []string{"2", "Undecided", "10:00", "50:00", "40m", "#444444"}, []string(rows[1]))
	assert.Equal(t, "00:00", rows[2][3])
}

func TestFormatLength(t *testing.T) {
	assert.Equal(t, "14m", formatLength(840))
	assert.Equal(t, "2m30s", formatLength(150))
	assert.Equal(t, "0m05s", formatLength(5))
}

func TestRingView(t *testing.T) {
	m, _ := newTestModel(t, testutil.SampleSegments())

	lines := strings.Split(ringView(m.display, 0), "\n")
	assert.Len(t, lines, ringRows)
	assert.Contains(t, ringView(m.display, 0), "▓")
	assert.NotContains(t, ringView(m.display, -1), "▓")
}

func TestExportPNGKey(t *testing.T) {
	m, _ := newTestModel(t, testutil.SampleSegments())

	var hooked string
	m.opts.AfterExport = func(path string) error {
		hooked = path
		return nil
	}

	press(m, "p")

	data, err := os.ReadFile(m.opts.PNGFile)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "\x89PNG"))
	assert.Equal(t, m.opts.PNGFile, hooked)
	assert.False(t, m.failed)
}

func TestExportCSVKey(t *testing.T) {
	m, _ := newTestModel(t, testutil.SampleSegments())

	press(m, "c")

	data, err := os.ReadFile(m.opts.CSVFile)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "label,start,end,color\n"))
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)

	cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestEditPlaceholderIsRefused(t *testing.T) {
	m, _ := newTestModel(t, gapped())

	press(m, "down")
	press(m, "e")

	assert.Nil(t, m.form)
	assert.Contains(t, m.status, "Unscheduled")
}

func TestAddFillsEmptyHour(t *testing.T) {
	m, db := newTestModel(t, []models.Segment{})

	press(m, "a")

	require.NotNil(t, m.form)
	assert.Equal(t, "00:00", m.values.start)
	assert.Equal(t, "60:00", m.values.end)

	m.values.label = "Special"
	m.submit()

	require.Len(t, db.state.Segments, 1)
	assert.Equal(t, 3600, db.state.Segments[0].Duration)
	require.Len(t, m.display, 1)
	assert.False(t, m.display[0].Placeholder)
}

func TestAddFillsGap(t *testing.T) {
	m, db := newTestModel(t, gapped())

	press(m, "down")
	press(m, "a")

	require.NotNil(t, m.form)
	assert.Equal(t, addForm, m.kind)
	assert.Equal(t, "10:00", m.values.start)
	assert.Equal(t, "50:00", m.values.end)

	m.values.label = "Interview"
	m.submit()

	assert.Nil(t, m.form)
	assert.Len(t, db.state.Segments, 3)
	assert.Len(t, m.display, 3)
	assert.Equal(t, "Interview", m.display[1].Label)
	assert.False(t, m.display[1].Placeholder)
}

func TestEditSegment(t *testing.T) {
	m, db := newTestModel(t, gapped())

	press(m, "e")
	require.Equal(t, editForm, m.kind)
	assert.Equal(t, "Open", m.values.label)

	m.values.end = "20:00"
	m.submit()

	assert.Equal(t, 1200, db.state.Segments[0].Duration)
	assert.Contains(t, m.status, "Updated")
}

func TestDeleteSegment(t *testing.T) {
	m, db := newTestModel(t, gapped())

	press(m, "d")
	require.Equal(t, deleteForm, m.kind)

	m.values.confirm = true
	m.submit()

	assert.Len(t, db.state.Segments, 1)
	assert.Equal(t, "Close", db.state.Segments[0].Label)
}

func TestCancelForm(t *testing.T) {
	m, db := newTestModel(t, gapped())

	press(m, "d")
	require.NotNil(t, m.form)

	press(m, "esc")

	assert.Nil(t, m.form)
	assert.Len(t, db.state.Segments, 2)
}

func TestSaveAndLoad(t *testing.T) {
	m, db := newTestModel(t, gapped())

	press(m, "s")
	require.Equal(t, saveForm, m.kind)

	m.values.name = "Late Show"
	m.values.episode = "3"
	m.submit()

	require.Len(t, db.state.SavedClocks, 1)
	assert.Contains(t, m.titleView(), "Late Show #3")

	press(m, "d")
	m.values.confirm = true
	m.submit()
	assert.Len(t, db.state.Segments, 1)

	press(m, "l")
	require.Equal(t, loadForm, m.kind)

	m.values.clockID = db.state.SavedClocks[0].ID
	m.submit()

	assert.Len(t, db.state.Segments, 2)
}

func TestLoadWithoutClocks(t *testing.T) {
	m, _ := newTestModel(t, gapped())

	press(m, "l")

	assert.Nil(t, m.form)
	assert.Contains(t, m.status, "No saved clocks")
}

func TestImport(t *testing.T) {
	m, db := newTestModel(t, gapped())

	require.NoError(t, os.WriteFile(
		m.opts.CSVFile,
		[]byte("label,start,end\nOne,00:00,30:00\n,01:00,02:00\n"),
		0o600,
	))

	press(m, "i")
	require.Equal(t, importForm, m.kind)
	assert.Equal(t, m.opts.CSVFile, m.values.path)

	m.submit()

	assert.Len(t, db.state.Segments, 1)
	assert.Contains(t, m.status, "1 rows skipped")
}

func TestImportMissingFile(t *testing.T) {
	m, db := newTestModel(t, gapped())

	press(m, "i")
	m.values.path = filepath.Join(t.TempDir(), "missing.csv")
	m.submit()

	assert.True(t, m.failed)
	assert.Len(t, db.state.Segments, 2)
}

func TestView(t *testing.T) {
	m, _ := newTestModel(t, gapped())

	view := m.View()
	assert.Contains(t, view, "Hour clock")
	assert.Contains(t, view, "Undecided")
	assert.Contains(t, view, "40m undecided")
}
