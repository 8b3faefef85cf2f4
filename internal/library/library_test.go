package library

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/hourclock/internal/models"
)

var testNow = time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

func newTestLibrary() *Library {
	l := New(nil, "")

	n := 0
	l.newID = func() string {
		n++
		return fmt.Sprintf("clock-%d", n)
	}

	return l
}

func testSegments() []models.Segment {
	return []models.Segment{
		{ID: "a", Label: "Show", StartSeconds: 0, Duration: 840, Color: "#60a5fa"},
		{ID: "b", Label: "News", StartSeconds: 2640, Duration: 960, Color: "#10b981"},
	}
}

func TestSaveCopiesSegments(t *testing.T) {
	l := newTestLibrary()
	segs := testSegments()

	clock, err := l.Save("Morning Show", "12", segs, testNow)
	require.NoError(t, err)

	segs[0].Label = "mutated after save"

	got, err := l.Get(clock.ID)
	require.NoError(t, err)

	assert.Equal(t, "Show", got.Segments[0].Label)
	assert.Equal(t, "clock-1", l.Current())
	assert.Equal(t, testNow, got.CreatedAt)
}

func TestSaveRequiresNameAndEpisode(t *testing.T) {
	l := newTestLibrary()

	_, err := l.Save(" ", "1", testSegments(), testNow)
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = l.Save("Show", "", testSegments(), testNow)
	assert.ErrorIs(t, err, ErrMissingField)

	assert.Empty(t, l.Clocks())
}

func TestLoad(t *testing.T) {
	l := newTestLibrary()

	_, err := l.Save("Show", "1", testSegments(), testNow)
	require.NoError(t, err)

	_, err = l.Save("Show", "2", nil, testNow)
	require.NoError(t, err)

	segs, err := l.Load("clock-1")
	require.NoError(t, err)

	assert.Len(t, segs, 2)
	assert.Equal(t, "clock-1", l.Current())

	segs[0].Label = "edited live"

	again, err := l.Load("clock-1")
	require.NoError(t, err)
	assert.Equal(t, "Show", again[0].Label)

	_, err = l.Load("nope")
	assert.ErrorIs(t, err, ErrClockNotFound)
}

func TestDelete(t *testing.T) {
	l := newTestLibrary()

	_, _ = l.Save("Show", "1", testSegments(), testNow)
	_, _ = l.Save("Show", "2", testSegments(), testNow)

	assert.True(t, l.Delete("clock-1"))
	assert.Equal(t, "clock-2", l.Current())

	assert.True(t, l.Delete("clock-2"))
	assert.Equal(t, "", l.Current())

	assert.False(t, l.Delete("clock-2"))
	assert.Empty(t, l.Clocks())
}

func TestPrefixResolution(t *testing.T) {
	l := New([]models.SavedClock{
		{ID: "abc123", Name: "A", EpisodeNumber: "1"},
		{ID: "abd456", Name: "B", EpisodeNumber: "1"},
	}, "abc123")

	got, err := l.Get("abd")
	require.NoError(t, err)
	assert.Equal(t, "B", got.Name)

	_, err = l.Get("ab")
	assert.ErrorIs(t, err, ErrClockNotFound)
}

func TestNewDropsDanglingCurrent(t *testing.T) {
	l := New([]models.SavedClock{{ID: "x"}}, "missing")

	assert.Equal(t, "", l.Current())
}

func TestListNaturalOrderAndFilter(t *testing.T) {
	l := newTestLibrary()

	_, _ = l.Save("Morning Show", "10", nil, testNow)
	_, _ = l.Save("Drive Time", "3", nil, testNow.AddDate(0, 0, -10))
	_, _ = l.Save("Morning Show", "2", nil, testNow)

	list := l.List(Filter{})

	got := make([]string, len(list))
	for i := range list {
		got[i] = list[i].Name + " #" + list[i].EpisodeNumber
	}

	assert.Equal(t, []string{
		"Drive Time #3",
		"Morning Show #2",
		"Morning Show #10",
	}, got)

	recent := l.List(Filter{Since: testNow.AddDate(0, 0, -1)})
	assert.Len(t, recent, 2)

	named := l.List(Filter{Name: "drive"})
	require.Len(t, named, 1)
	assert.Equal(t, "3", named[0].EpisodeNumber)
}
