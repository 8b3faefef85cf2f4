// Package library manages the list of saved clock snapshots and the pointer
// to the snapshot that is currently loaded.
package library

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/maruel/natural"

	"github.com/ayoisaiah/hourclock/internal/apperr"
	"github.com/ayoisaiah/hourclock/internal/models"
)

var (
	errClockNotFound = &apperr.Error{
		Message: "no saved clock matches %q",
	}

	errMissingField = &apperr.Error{
		Message: "%s is required to save a clock",
	}
)

// ErrClockNotFound is returned when a snapshot id cannot be resolved.
var ErrClockNotFound = errClockNotFound

// ErrMissingField is returned when a snapshot is saved without a show name
// or episode number.
var ErrMissingField = errMissingField

// Library is an append-only list of saved clocks.
type Library struct {
	newID   func() string
	current string
	clocks  []models.SavedClock
}

// New returns a Library seeded from the persisted state.
func New(clocks []models.SavedClock, current string) *Library {
	l := &Library{
		newID:  uuid.NewString,
		clocks: cloneClocks(clocks),
	}

	if l.index(current) >= 0 {
		l.current = current
	}

	return l
}

// Clocks returns a copy of the saved clocks in the order they were created.
func (l *Library) Clocks() []models.SavedClock {
	return cloneClocks(l.clocks)
}

// Current returns the id of the loaded snapshot, or "" if none.
func (l *Library) Current() string {
	return l.current
}

// Save stores a copy of segs under the given show name and episode number and
// marks the new snapshot as current.
func (l *Library) Save(
	name, episode string,
	segs []models.Segment,
	now time.Time,
) (models.SavedClock, error) {
	name = strings.TrimSpace(name)
	episode = strings.TrimSpace(episode)

	if name == "" {
		return models.SavedClock{}, errMissingField.Fmt("show name")
	}

	if episode == "" {
		return models.SavedClock{}, errMissingField.Fmt("episode number")
	}

	clock := models.SavedClock{
		ID:            l.newID(),
		Name:          name,
		EpisodeNumber: episode,
		CreatedAt:     now,
		Segments:      models.CloneSegments(segs),
	}

	l.clocks = append(l.clocks, clock)
	l.current = clock.ID

	return cloneClock(clock), nil
}

// Load marks the snapshot identified by id as current and returns a copy of
// its segments for the live store.
func (l *Library) Load(id string) ([]models.Segment, error) {
	clock, err := l.Get(id)
	if err != nil {
		return nil, err
	}

	l.current = clock.ID

	return clock.Segments, nil
}

// Get returns a copy of the snapshot with the given id. A unique id prefix
// is accepted so users can type the short form printed by the CLI.
func (l *Library) Get(id string) (models.SavedClock, error) {
	i := l.resolve(id)
	if i < 0 {
		return models.SavedClock{}, errClockNotFound.Fmt(id)
	}

	return cloneClock(l.clocks[i]), nil
}

// Delete removes the snapshot identified by id and clears the current
// pointer if it referenced it. Unknown ids are ignored.
func (l *Library) Delete(id string) bool {
	i := l.resolve(id)
	if i < 0 {
		return false
	}

	if l.clocks[i].ID == l.current {
		l.current = ""
	}

	l.clocks = slices.Delete(l.clocks, i, i+1)

	return true
}

// Filter narrows the result of List.
type Filter struct {
	Since time.Time
	Name  string
}

// List returns snapshots matching f ordered naturally by show name and then
// by episode number, so "Episode 2" sorts before "Episode 10".
func (l *Library) List(f Filter) []models.SavedClock {
	out := make([]models.SavedClock, 0, len(l.clocks))

	for i := range l.clocks {
		c := l.clocks[i]

		if !f.Since.IsZero() && c.CreatedAt.Before(f.Since) {
			continue
		}

		if f.Name != "" &&
			!strings.Contains(strings.ToLower(c.Name), strings.ToLower(f.Name)) {
			continue
		}

		out = append(out, cloneClock(c))
	}

	slices.SortStableFunc(out, func(a, b models.SavedClock) int {
		if a.Name != b.Name {
			return compareNatural(a.Name, b.Name)
		}

		return compareNatural(a.EpisodeNumber, b.EpisodeNumber)
	})

	return out
}

func compareNatural(a, b string) int {
	switch {
	case natural.Less(a, b):
		return -1
	case natural.Less(b, a):
		return 1
	default:
		return 0
	}
}

func (l *Library) index(id string) int {
	if id == "" {
		return -1
	}

	return slices.IndexFunc(l.clocks, func(c models.SavedClock) bool {
		return c.ID == id
	})
}

// resolve finds an exact id match, falling back to a unique prefix match.
func (l *Library) resolve(id string) int {
	if i := l.index(id); i >= 0 {
		return i
	}

	if id == "" {
		return -1
	}

	found := -1

	for i := range l.clocks {
		if strings.HasPrefix(l.clocks[i].ID, id) {
			if found >= 0 {
				return -1
			}

			found = i
		}
	}

	return found
}

func cloneClock(c models.SavedClock) models.SavedClock {
	c.Segments = models.CloneSegments(c.Segments)
	return c
}

func cloneClocks(clocks []models.SavedClock) []models.SavedClock {
	out := make([]models.SavedClock, len(clocks))

	for i := range clocks {
		out[i] = cloneClock(clocks[i])
	}

	return out
}
