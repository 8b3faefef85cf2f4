package app

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ayoisaiah/hourclock/internal/models"
	"github.com/ayoisaiah/hourclock/internal/segment"
	"github.com/ayoisaiah/hourclock/internal/timeutil"
	"github.com/ayoisaiah/hourclock/internal/ui"
	"github.com/ayoisaiah/hourclock/report"
)

const (
	noClocksMsg = "No saved clocks match the filter"
)

// printDisplayTable prints the gap-filled clock. Row numbers match the
// labels on the exported chart and are accepted by edit and delete.
func printDisplayTable(w io.Writer, display []models.DisplaySegment) {
	tableBody := make([][]string, len(display))

	for i, d := range display {
		label := d.Label
		if d.Placeholder {
			label = ui.Muted(label)
		}

		id := report.ShortID(d.ID)
		if d.Placeholder {
			id = ui.Muted("-")
		}

		tableBody[i] = []string{
			strconv.Itoa(i + 1),
			label,
			timeutil.SecondsToTime(d.StartSeconds),
			endTime(d.EndSeconds),
			timeutil.SecondsToTime(d.Duration),
			ui.Swatch(d.Color),
			id,
		}
	}

	tableBody = append([][]string{
		{"#", "LABEL", "START", "END", "LENGTH", "COLOR", "ID"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// endTime formats an end offset. The top of the hour prints as 60:00 and
// ends past it wrap around.
func endTime(end int) string {
	if end == timeutil.HourSeconds {
		return timeutil.SecondsToTime(end)
	}

	return timeutil.SecondsToTime(timeutil.ClampSeconds(end))
}

// printSummary prints the scheduled and undecided totals and flags overlaps
// and segments that run past the hour.
func printSummary(w io.Writer, s segment.Summary) {
	fmt.Fprintf(
		w,
		"%s scheduled, %s undecided\n",
		ui.Green(timeutil.SecondsToTime(s.Scheduled)),
		ui.Yellow(timeutil.SecondsToTime(s.Undecided)),
	)

	if s.Overlaps {
		fmt.Fprintln(w, ui.Red("warning: some segments overlap"))
	}

	if s.Overflows {
		fmt.Fprintln(w, ui.Red("warning: some segments run past the end of the hour"))
	}
}

// printClocksTable prints saved clocks. The clock matching currentID is
// highlighted.
func printClocksTable(w io.Writer, clocks []models.SavedClock, currentID string) {
	tableBody := make([][]string, len(clocks))

	for i, c := range clocks {
		name := c.Name
		if c.ID == currentID {
			name = ui.Highlight(name + " *")
		}

		tableBody[i] = []string{
			report.ShortID(c.ID),
			name,
			c.EpisodeNumber,
			strconv.Itoa(len(c.Segments)),
			c.CreatedAt.Format("Jan 02, 2006 03:04 PM"),
		}
	}

	tableBody = append([][]string{
		{"ID", "SHOW", "EPISODE", "SEGMENTS", "SAVED"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}
