package editor

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/hourclock/internal/library"
	"github.com/ayoisaiah/hourclock/internal/segment"
	"github.com/ayoisaiah/hourclock/internal/timeutil"
)

// formValues backs the fields of whichever form is open.
type formValues struct {
	target  string
	label   string
	start   string
	end     string
	color   string
	name    string
	episode string
	clockID string
	path    string
	confirm bool
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}

		return nil
	}
}

func validateTime(s string) error {
	_, err := timeutil.TimeToSeconds(s)
	return err
}

func validateColor(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	_, err := segment.NormalizeColor(s)

	return err
}

func (m *Model) segmentForm(title string) *huh.Form {
	v := m.values

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Label").
				Value(&v.label).
				Validate(required("label")),
			huh.NewInput().
				Title("Start (mm:ss)").
				Value(&v.start).
				Validate(validateTime),
			huh.NewInput().
				Title("End (mm:ss)").
				Description("An end before the start wraps past the top of the hour").
				Value(&v.end).
				Validate(validateTime),
			huh.NewInput().
				Title("Color").
				Description("Hex code; leave empty for a random color").
				Value(&v.color).
				Validate(validateColor),
		).Title(title),
	).WithShowHelp(true)
}

// openForm makes f the active form.
func (m *Model) openForm(kind formKind, f *huh.Form) tea.Cmd {
	m.kind = kind
	m.form = f
	m.status = ""

	return f.Init()
}

func (m *Model) closeForm() {
	m.kind = noForm
	m.form = nil
	m.values = nil
}

// openAdd prefills the start with the end of the selected row, or with the
// bounds of the gap when an unscheduled row is selected.
func (m *Model) openAdd() tea.Cmd {
	m.values = &formValues{}

	if d, ok := m.selected(); ok {
		m.values.start = timeutil.SecondsToTime(timeutil.ClampSeconds(d.EndSeconds))

		if d.Placeholder {
			m.values.start = timeutil.SecondsToTime(d.StartSeconds)
			m.values.end = timeutil.SecondsToTime(timeutil.EndOffset(d.StartSeconds, d.Duration))
		}
	}

	return m.openForm(addForm, m.segmentForm("Add segment"))
}

func (m *Model) openEdit() tea.Cmd {
	d, ok := m.selected()
	if !ok {
		return nil
	}

	if d.Placeholder {
		m.setStatus("Unscheduled time can't be edited. Press a to fill it")
		return nil
	}

	m.values = &formValues{
		target: d.ID,
		label:  d.Label,
		start:  timeutil.SecondsToTime(d.StartSeconds),
		end:    timeutil.SecondsToTime(timeutil.EndOffset(d.StartSeconds, d.Duration)),
		color:  d.Color,
	}

	return m.openForm(editForm, m.segmentForm("Edit segment"))
}

func (m *Model) openDelete() tea.Cmd {
	d, ok := m.selected()
	if !ok || d.Placeholder {
		return nil
	}

	m.values = &formValues{target: d.ID}

	f := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Delete %q?", d.Label)).
			Affirmative("Delete").
			Negative("Cancel").
			Value(&m.values.confirm),
	))

	return m.openForm(deleteForm, f)
}

func (m *Model) openSave() tea.Cmd {
	m.values = &formValues{}

	if c, ok := m.p.CurrentClock(); ok {
		m.values.name = c.Name
	}

	f := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Show name").
			Value(&m.values.name).
			Validate(required("show name")),
		huh.NewInput().
			Title("Episode number").
			Value(&m.values.episode).
			Validate(required("episode number")),
	).Title("Save clock"))

	return m.openForm(saveForm, f)
}

func (m *Model) openLoad() tea.Cmd {
	clocks := m.p.Clocks(library.Filter{})
	if len(clocks) == 0 {
		m.setStatus("No saved clocks yet. Press s to save one")
		return nil
	}

	m.values = &formValues{}

	opts := make([]huh.Option[string], len(clocks))
	for i, c := range clocks {
		label := fmt.Sprintf(
			"%s #%s (%s)",
			c.Name,
			c.EpisodeNumber,
			c.CreatedAt.Format("Jan 02, 2006"),
		)
		opts[i] = huh.NewOption(label, c.ID)
	}

	f := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Load clock").
			Description("Unsaved changes to the live clock are replaced").
			Options(opts...).
			Value(&m.values.clockID),
	))

	return m.openForm(loadForm, f)
}

func (m *Model) openImport() tea.Cmd {
	m.values = &formValues{path: m.opts.CSVFile}

	f := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("CSV file").
			Description("Replaces every segment of the live clock").
			Value(&m.values.path).
			Validate(required("file")),
	))

	return m.openForm(importForm, f)
}

// submit applies the completed form.
func (m *Model) submit() {
	v := m.values
	kind := m.kind

	m.closeForm()

	if v == nil {
		return
	}

	in := segment.Input{Label: v.label, Start: v.start, End: v.end, Color: v.color}

	switch kind {
	case addForm:
		seg, err := m.p.Add(in)
		if err != nil {
			m.setError(err)
			return
		}

		m.setStatus("Added " + seg.Label)
	case editForm:
		seg, err := m.p.Update(v.target, in)
		if err != nil {
			m.setError(err)
			return
		}

		m.setStatus("Updated " + seg.Label)
	case deleteForm:
		if !v.confirm {
			return
		}

		seg, err := m.p.Delete(v.target)
		if err != nil {
			m.setError(err)
			return
		}

		m.setStatus("Deleted " + seg.Label)
	case saveForm:
		c, err := m.p.SaveClock(v.name, v.episode)
		if err != nil {
			m.setError(err)
			return
		}

		m.setStatus(fmt.Sprintf("Saved %s #%s", c.Name, c.EpisodeNumber))
	case loadForm:
		c, err := m.p.LoadClock(v.clockID)
		if err != nil {
			m.setError(err)
			return
		}

		m.setStatus(fmt.Sprintf("Loaded %s #%s", c.Name, c.EpisodeNumber))
	case importForm:
		m.importFile(v.path)
	case noForm:
	}

	m.refresh()
}

func (m *Model) importFile(path string) {
	f, err := os.Open(strings.TrimSpace(path))
	if err != nil {
		m.setError(err)
		return
	}
	defer f.Close()

	res, err := m.p.Import(f)
	if err != nil {
		m.setError(err)
		return
	}

	msg := fmt.Sprintf("Imported %d segments", len(res.Drafts))
	if len(res.Skipped) > 0 {
		msg += fmt.Sprintf(" (%d rows skipped)", len(res.Skipped))
	}

	m.setStatus(msg)
}
