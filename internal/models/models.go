package models

import (
	"time"
)

// SchemaVersion is the current version of the durable State record.
const SchemaVersion = 2

// Segment is a user-authored time range within the hour.
type Segment struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
	// StartSeconds is the offset from the top of the hour
	StartSeconds int `json:"start_seconds"`
	// Duration is the length in seconds. StartSeconds+Duration may exceed
	// an hour; it is never wrapped at rest
	Duration int `json:"duration"`
}

// EndSeconds returns the unwrapped end offset of the segment.
func (s Segment) EndSeconds() int {
	return s.StartSeconds + s.Duration
}

// DisplaySegment is a rendering-ready segment derived from the live list. It
// is never persisted.
type DisplaySegment struct {
	Segment
	EndSeconds  int  `json:"end_seconds"`
	Placeholder bool `json:"placeholder"`
}

// SavedClock is a named, dated snapshot of a segment list.
type SavedClock struct {
	CreatedAt     time.Time `json:"created_at"`
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	EpisodeNumber string    `json:"episode_number"`
	Segments      []Segment `json:"segments"`
}

// State is the single durable record kept by the store.
type State struct {
	CurrentClockID string       `json:"current_clock_id,omitempty"`
	SavedClocks    []SavedClock `json:"saved_clocks"`
	Segments       []Segment    `json:"segments"`
	Version        int          `json:"version"`
}

// CloneSegments returns a deep copy of segs. A nil input yields an empty,
// non-nil slice.
func CloneSegments(segs []Segment) []Segment {
	out := make([]Segment, len(segs))
	copy(out, segs)

	return out
}
