package segment_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/hourclock/internal/models"
	"github.com/ayoisaiah/hourclock/internal/segment"
)

// counterIDs returns a deterministic identifier generator.
func counterIDs() segment.IDFunc {
	n := 0

	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func ids(segs []models.Segment) []string {
	out := make([]string, len(segs))
	for i := range segs {
		out[i] = segs[i].ID
	}

	return out
}

func TestStoreAddSortsByStart(t *testing.T) {
	s := segment.New(nil, segment.WithIDFunc(counterIDs()))

	s.Add(segment.Draft{Label: "News", StartSeconds: 2640, Duration: 960})
	s.Add(segment.Draft{Label: "Show", StartSeconds: 0, Duration: 840})

	added, list := s.Add(segment.Draft{Label: "Promo", StartSeconds: 0, Duration: 30})

	assert.Equal(t, "id-3", added.ID)
	assert.Equal(t, []string{"id-2", "id-3", "id-1"}, ids(list))
}

func TestStoreSnapshotsAreIndependent(t *testing.T) {
	s := segment.New(segment.Defaults(counterIDs()))

	snap := s.Segments()
	snap[0].Label = "changed"

	got, ok := s.Find(snap[0].ID)
	require.True(t, ok)
	assert.Equal(t, "Show Segment", got.Label)
}

func TestStoreUpdate(t *testing.T) {
	s := segment.New(segment.Defaults(counterIDs()))

	label := "Top of hour"
	start := 30

	list := s.Update("id-1", segment.Patch{Label: &label, StartSeconds: &start})

	assert.Equal(t, "Top of hour", list[0].Label)
	assert.Equal(t, 30, list[0].StartSeconds)
	assert.Equal(t, 840, list[0].Duration)
	assert.Equal(t, "#60a5fa", list[0].Color)
}

func TestStoreUpdateUnknownIsNoop(t *testing.T) {
	s := segment.New(segment.Defaults(counterIDs()))
	before := s.Segments()

	label := "x"
	after := s.Update("missing", segment.Patch{Label: &label})

	assert.Equal(t, before, after)
}

func TestStoreDelete(t *testing.T) {
	s := segment.New(segment.Defaults(counterIDs()))

	list := s.Delete("id-2")
	assert.Equal(t, []string{"id-1", "id-3", "id-4"}, ids(list))

	list = s.Delete("not-there")
	assert.Equal(t, []string{"id-1", "id-3", "id-4"}, ids(list))
	assert.Equal(t, 3, s.Len())
}

func TestStoreReplace(t *testing.T) {
	s := segment.New(segment.Defaults(counterIDs()), segment.WithIDFunc(counterIDs()))

	list := s.Replace([]segment.Draft{
		{Label: "B", StartSeconds: 600, Duration: 60},
		{Label: "A", StartSeconds: 0, Duration: 60},
	})

	assert.Equal(t, []string{"id-1", "id-2"}, ids(list))
	assert.Equal(t, "B", list[0].Label)
}

func TestDefaultsUseUUIDs(t *testing.T) {
	segs := segment.Defaults(nil)

	require.Len(t, segs, 4)

	seen := map[string]bool{}

	for _, s := range segs {
		assert.Len(t, s.ID, 36)
		assert.False(t, seen[s.ID])
		seen[s.ID] = true
	}
}
