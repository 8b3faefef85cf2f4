package segment

import (
	"strings"

	"github.com/ayoisaiah/hourclock/internal/models"
	"github.com/ayoisaiah/hourclock/internal/timeutil"
)

// Draft is a segment that has not been assigned an identifier yet.
type Draft struct {
	Label        string `json:"label"`
	Color        string `json:"color"`
	StartSeconds int    `json:"start_seconds"`
	Duration     int    `json:"duration"`
}

// Patch holds the fields to merge into an existing segment. Nil fields are
// left untouched.
type Patch struct {
	Label        *string
	Color        *string
	StartSeconds *int
	Duration     *int
}

// Input is the raw, user-supplied form of a segment. Start and End use the
// "mm:ss" format.
type Input struct {
	Label string
	Start string
	End   string
	Color string
}

// ParseDraft validates user input and converts it into a Draft. The duration
// is the forward distance from start to end around the clock face, so an end
// earlier than the start wraps past the top of the hour. An empty color is
// replaced with a random one.
func ParseDraft(in Input) (Draft, error) {
	label := strings.TrimSpace(in.Label)

	switch {
	case label == "":
		return Draft{}, errEmptyField.Fmt("label")
	case strings.TrimSpace(in.Start) == "":
		return Draft{}, errEmptyField.Fmt("start")
	case strings.TrimSpace(in.End) == "":
		return Draft{}, errEmptyField.Fmt("end")
	}

	start, dur, err := parseRange(in.Start, in.End)
	if err != nil {
		return Draft{}, err
	}

	color := RandomColor()
	if strings.TrimSpace(in.Color) != "" {
		color, err = NormalizeColor(in.Color)
		if err != nil {
			return Draft{}, err
		}
	}

	return Draft{
		Label:        label,
		StartSeconds: start,
		Duration:     dur,
		Color:        color,
	}, nil
}

// BuildPatch converts user input into a Patch for seg. Empty input fields
// leave the corresponding segment field unchanged. When only one of start or
// end is given, the other is taken from seg.
func BuildPatch(seg models.Segment, in Input) (Patch, error) {
	var p Patch

	if label := strings.TrimSpace(in.Label); label != "" {
		p.Label = &label
	}

	if strings.TrimSpace(in.Color) != "" {
		color, err := NormalizeColor(in.Color)
		if err != nil {
			return Patch{}, err
		}

		p.Color = &color
	}

	if strings.TrimSpace(in.Start) == "" && strings.TrimSpace(in.End) == "" {
		return p, nil
	}

	startStr, endStr := in.Start, in.End
	if strings.TrimSpace(startStr) == "" {
		startStr = timeutil.SecondsToTime(seg.StartSeconds)
	}

	if strings.TrimSpace(endStr) == "" {
		endStr = timeutil.SecondsToTime(seg.EndSeconds())
	}

	start, dur, err := parseRange(startStr, endStr)
	if err != nil {
		return Patch{}, err
	}

	p.StartSeconds = &start
	p.Duration = &dur

	return p, nil
}

// parseRange parses start and end offsets into a start wrapped into the hour
// and the forward duration to end, rejecting ranges of zero length.
func parseRange(startStr, endStr string) (start, dur int, err error) {
	start, err = timeutil.TimeToSeconds(startStr)
	if err != nil {
		return 0, 0, err
	}

	end, err := timeutil.TimeToSeconds(endStr)
	if err != nil {
		return 0, 0, err
	}

	dur = timeutil.DurationBetween(start, end)
	if dur == 0 {
		return 0, 0, errZeroDuration.Fmt(
			strings.TrimSpace(startStr),
			strings.TrimSpace(endStr),
		)
	}

	return timeutil.ClampSeconds(start), dur, nil
}
