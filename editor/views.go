package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/hourclock/internal/models"
	"github.com/ayoisaiah/hourclock/internal/render"
	"github.com/ayoisaiah/hourclock/internal/timeutil"
)

// tableRows numbers rows from 1 so they match the labels on the chart.
func tableRows(display []models.DisplaySegment) []table.Row {
	rows := make([]table.Row, len(display))

	for i := range display {
		d := display[i]

		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			d.Label,
			timeutil.SecondsToTime(d.StartSeconds),
			timeutil.SecondsToTime(timeutil.ClampSeconds(d.EndSeconds)),
			formatLength(d.Duration),
			d.Color,
		}
	}

	return rows
}

// formatLength renders a duration in seconds as "14m" or "2m30s".
func formatLength(secs int) string {
	m, s := timeutil.SecsToMinsAndSecs(secs)
	if s == 0 {
		return fmt.Sprintf("%dm", m)
	}

	return fmt.Sprintf("%dm%02ds", m, s)
}

// ringView draws the clock with each wedge in its segment color. The wedge
// under the table cursor is drawn with a lighter shade.
func ringView(display []models.DisplaySegment, selected int) string {
	wedges := render.Wedges(display)
	grid := render.Grid(wedges, ringCols, ringRows, innerRatio)

	styles := make([]lipgloss.Style, len(wedges))
	for i := range wedges {
		styles[i] = lipgloss.NewStyle().
			Foreground(lipgloss.Color(wedges[i].Segment.Color))
	}

	var s strings.Builder

	for y := range grid {
		for _, w := range grid[y] {
			if w < 0 {
				s.WriteByte(' ')
				continue
			}

			char := "█"
			if wedges[w].Index == selected {
				char = "▓"
			}

			s.WriteString(styles[w].Render(char))
		}

		if y < len(grid)-1 {
			s.WriteByte('\n')
		}
	}

	return s.String()
}

func (m *Model) summaryView() string {
	var s strings.Builder

	sum := m.p.Summary()

	s.WriteString(m.style.Hint.Render(fmt.Sprintf(
		"%s scheduled · %s undecided",
		formatLength(sum.Scheduled),
		formatLength(sum.Undecided),
	)))

	if sum.Overlaps {
		s.WriteString("\n" + m.style.Warning.Render("Some segments overlap"))
	}

	if sum.Overflows {
		s.WriteString("\n" + m.style.Warning.Render(
			"Some segments run past the top of the hour",
		))
	}

	return s.String()
}

func (m *Model) titleView() string {
	title := "Hour clock"

	if c, ok := m.p.CurrentClock(); ok {
		title = fmt.Sprintf("%s #%s", c.Name, c.EpisodeNumber)
	}

	return m.style.Title.Render(title)
}

func (m *Model) statusView() string {
	if m.status == "" {
		return ""
	}

	if m.failed {
		return m.style.Error.Render(m.status)
	}

	return m.style.Status.Render(m.status)
}

func (m *Model) View() string {
	ring := ringView(m.display, m.table.Cursor())

	right := m.table.View()
	if m.form != nil {
		right = m.form.View()
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		ring,
		"    ",
		right,
	)

	parts := []string{m.titleView(), body, m.summaryView()}

	if status := m.statusView(); status != "" {
		parts = append(parts, status)
	}

	if m.form == nil {
		parts = append(parts, m.help.View(defaultKeymap))
	}

	return m.style.Base.Render(strings.Join(parts, "\n\n"))
}
