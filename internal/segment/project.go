package segment

import (
	"strconv"
	"strings"

	"github.com/ayoisaiah/hourclock/internal/models"
	"github.com/ayoisaiah/hourclock/internal/timeutil"
)

const (
	// PlaceholderLabel is the label given to unscheduled time.
	PlaceholderLabel = "Undecided"

	placeholderPrefix = "undecided-"
)

type projectOpts struct {
	color string
}

// ProjectOption configures Project.
type ProjectOption func(*projectOpts)

// WithPlaceholderColor sets the fill used for placeholder segments.
func WithPlaceholderColor(c string) ProjectOption {
	return func(o *projectOpts) {
		if c != "" {
			o.color = c
		}
	}
}

// IsPlaceholderID reports whether id belongs to a synthetic placeholder.
// Real identifiers are UUIDs and never carry this prefix.
func IsPlaceholderID(id string) bool {
	return strings.HasPrefix(id, placeholderPrefix)
}

// Project sorts segs by start offset and returns a sequence that covers the
// hour from 0 to 3600 seconds, inserting placeholders wherever a segment
// starts after the end of the previous one and after the last segment.
//
// Overlaps and segments running past the hour are passed through untouched:
// the cursor simply moves to the end of the latest segment, so an overflow
// suppresses the trailing placeholder.
func Project(segs []models.Segment, opts ...ProjectOption) []models.DisplaySegment {
	o := projectOpts{color: DefaultPlaceholderColor}

	for _, opt := range opts {
		opt(&o)
	}

	sorted := models.CloneSegments(segs)
	sortByStart(sorted)

	out := make([]models.DisplaySegment, 0, len(sorted)*2+1)

	var current, gaps int

	placeholder := func(start, end int) models.DisplaySegment {
		gaps++

		return models.DisplaySegment{
			Segment: models.Segment{
				ID:           placeholderPrefix + strconv.Itoa(gaps),
				Label:        PlaceholderLabel,
				StartSeconds: start,
				Duration:     end - start,
				Color:        o.color,
			},
			EndSeconds:  end,
			Placeholder: true,
		}
	}

	for _, seg := range sorted {
		if seg.StartSeconds > current {
			out = append(out, placeholder(current, seg.StartSeconds))
		}

		out = append(out, models.DisplaySegment{
			Segment:    seg,
			EndSeconds: seg.EndSeconds(),
		})

		current = seg.EndSeconds()
	}

	if current < timeutil.HourSeconds {
		out = append(out, placeholder(current, timeutil.HourSeconds))
	}

	return out
}

// Summary describes how a projected clock uses the hour.
type Summary struct {
	// Scheduled is the total length of real segments in seconds
	Scheduled int `json:"scheduled"`
	// Undecided is the total length of placeholders in seconds
	Undecided int `json:"undecided"`
	// Overlaps is set when a segment starts before the previous one ends
	Overlaps bool `json:"overlaps"`
	// Overflows is set when a segment ends after the top of the next hour
	Overflows bool `json:"overflows"`
}

// Summarize computes a Summary for a projection returned by Project.
func Summarize(display []models.DisplaySegment) Summary {
	var (
		s      Summary
		cursor int
	)

	for _, d := range display {
		if d.Placeholder {
			s.Undecided += d.Duration
			cursor = d.EndSeconds

			continue
		}

		s.Scheduled += d.Duration

		if d.StartSeconds < cursor {
			s.Overlaps = true
		}

		if d.EndSeconds > timeutil.HourSeconds {
			s.Overflows = true
		}

		cursor = d.EndSeconds
	}

	return s
}
