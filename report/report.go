// Package report prints user-facing outcomes of CLI operations.
package report

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/hourclock/internal/csvio"
	"github.com/ayoisaiah/hourclock/internal/models"
	"github.com/ayoisaiah/hourclock/internal/osutil"
	"github.com/ayoisaiah/hourclock/internal/timeutil"
)

func SegmentAdded(seg models.Segment) {
	pterm.Success.Printfln(
		"added %q (%s to %s)",
		seg.Label,
		timeutil.SecondsToTime(seg.StartSeconds),
		timeutil.SecondsToTime(timeutil.ClampSeconds(seg.EndSeconds())),
	)
}

func SegmentUpdated(seg models.Segment) {
	pterm.Success.Printfln("updated %q", seg.Label)
}

func SegmentDeleted(seg models.Segment) {
	pterm.Success.Printfln("deleted %q", seg.Label)
}

// Imported prints a summary of a CSV import, listing every skipped row.
func Imported(res *csvio.Result) {
	pterm.Success.Printfln("imported %d segments", len(res.Drafts))

	for _, s := range res.Skipped {
		pterm.Warning.Printfln("skipped line %d: %s", s.Line, s.Reason)
	}
}

func ClockSaved(c models.SavedClock) {
	pterm.Success.Printfln("saved %s #%s as %s", c.Name, c.EpisodeNumber, ShortID(c.ID))
}

func ClockLoaded(c models.SavedClock) {
	pterm.Success.Printfln("loaded %s #%s", c.Name, c.EpisodeNumber)
}

func Exported(path string) {
	pterm.Success.Printfln("wrote %s", path)
}

func Info(format string, a ...any) {
	pterm.Info.Println(fmt.Sprintf(format, a...))
}

func Error(err error) {
	pterm.Error.Println(err)
}

func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(osutil.ExitError.Int())
}

// ShortID returns the prefix of id that the CLI prints and accepts.
func ShortID(id string) string {
	const n = 8

	if len(id) <= n {
		return id
	}

	return id[:n]
}
