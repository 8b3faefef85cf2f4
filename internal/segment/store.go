// Package segment holds the live segment list of a clock and derives the
// gap-filled display partition used for rendering.
package segment

import (
	"cmp"
	"slices"

	"github.com/google/uuid"

	"github.com/ayoisaiah/hourclock/internal/models"
)

// IDFunc generates a new segment identifier.
type IDFunc func() string

// Store owns the authoritative list of segments for the current clock. It
// performs no overlap or bounds validation. Every mutation returns a fresh
// copy of the list so callers never share the backing array.
type Store struct {
	newID    IDFunc
	segments []models.Segment
}

// Option configures a Store.
type Option func(*Store)

// WithIDFunc overrides the identifier generator.
func WithIDFunc(fn IDFunc) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// NewID returns a random UUID string.
func NewID() string {
	return uuid.NewString()
}

// New returns a Store seeded with a copy of segments.
func New(segments []models.Segment, opts ...Option) *Store {
	s := &Store{
		newID:    NewID,
		segments: models.CloneSegments(segments),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Defaults returns the starter clock used when nothing has been saved yet.
func Defaults(newID IDFunc) []models.Segment {
	if newID == nil {
		newID = NewID
	}

	return []models.Segment{
		{ID: newID(), Label: "Show Segment", StartSeconds: 0, Duration: 840, Color: "#60a5fa"},
		{ID: newID(), Label: "Commercial", StartSeconds: 840, Duration: 900, Color: "#fbbf24"},
		{ID: newID(), Label: "Network Break", StartSeconds: 1740, Duration: 900, Color: "#9333ea"},
		{ID: newID(), Label: "News", StartSeconds: 2640, Duration: 960, Color: "#10b981"},
	}
}

// Segments returns a copy of the live list.
func (s *Store) Segments() []models.Segment {
	return models.CloneSegments(s.segments)
}

// Len returns the number of live segments.
func (s *Store) Len() int {
	return len(s.segments)
}

// Find returns the segment with the given id.
func (s *Store) Find(id string) (models.Segment, bool) {
	i := s.index(id)
	if i < 0 {
		return models.Segment{}, false
	}

	return s.segments[i], true
}

// Add assigns an identifier to d, inserts it and re-sorts the list by start
// offset. Equal starts keep their insertion order.
func (s *Store) Add(d Draft) (models.Segment, []models.Segment) {
	seg := models.Segment{
		ID:           s.newID(),
		Label:        d.Label,
		StartSeconds: d.StartSeconds,
		Duration:     d.Duration,
		Color:        d.Color,
	}

	next := append(models.CloneSegments(s.segments), seg)
	sortByStart(next)

	s.segments = next

	return seg, s.Segments()
}

// Update merges p into the segment identified by id. It is a no-op when no
// segment matches. The list is not re-sorted.
func (s *Store) Update(id string, p Patch) []models.Segment {
	i := s.index(id)
	if i < 0 {
		return s.Segments()
	}

	next := models.CloneSegments(s.segments)
	seg := &next[i]

	if p.Label != nil {
		seg.Label = *p.Label
	}

	if p.Color != nil {
		seg.Color = *p.Color
	}

	if p.StartSeconds != nil {
		seg.StartSeconds = *p.StartSeconds
	}

	if p.Duration != nil {
		seg.Duration = *p.Duration
	}

	s.segments = next

	return s.Segments()
}

// Delete removes the segment identified by id. Unknown ids are ignored.
func (s *Store) Delete(id string) []models.Segment {
	s.segments = slices.DeleteFunc(
		models.CloneSegments(s.segments),
		func(seg models.Segment) bool {
			return seg.ID == id
		},
	)

	return s.Segments()
}

// Replace discards the live list and replaces it with drafts, each given a
// fresh identifier. Draft order is preserved.
func (s *Store) Replace(drafts []Draft) []models.Segment {
	next := make([]models.Segment, len(drafts))

	for i, d := range drafts {
		next[i] = models.Segment{
			ID:           s.newID(),
			Label:        d.Label,
			StartSeconds: d.StartSeconds,
			Duration:     d.Duration,
			Color:        d.Color,
		}
	}

	s.segments = next

	return s.Segments()
}

// Set replaces the live list with a copy of segs, keeping their identifiers.
func (s *Store) Set(segs []models.Segment) []models.Segment {
	s.segments = models.CloneSegments(segs)

	return s.Segments()
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.segments, func(seg models.Segment) bool {
		return seg.ID == id
	})
}

func sortByStart(segs []models.Segment) {
	slices.SortStableFunc(segs, func(a, b models.Segment) int {
		return cmp.Compare(a.StartSeconds, b.StartSeconds)
	})
}
