package store

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/hourclock/internal/models"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	path := filepath.Join(t.TempDir(), "hourclock.db")

	c, err := NewClient(
		path,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}

func putRaw(t *testing.T, c *Client, key string, value []byte) {
	t.Helper()

	err := c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key), value)
	})
	require.NoError(t, err)
}

func getRaw(t *testing.T, c *Client, key string) []byte {
	t.Helper()

	var out []byte

	err := c.View(func(tx *bolt.Tx) error {
		out = copyBytes(tx.Bucket([]byte(bucketName)).Get([]byte(key)))
		return nil
	})
	require.NoError(t, err)

	return out
}

func TestLoadFreshState(t *testing.T) {
	c := newTestClient(t)

	state, err := c.Load()
	require.NoError(t, err)

	assert.Equal(t, models.SchemaVersion, state.Version)
	assert.Len(t, state.Segments, 4)
	assert.Empty(t, state.SavedClocks)
	assert.Empty(t, state.CurrentClockID)
}

func TestSaveAndLoad(t *testing.T) {
	c := newTestClient(t)

	created := time.Date(2025, 5, 6, 7, 8, 9, 0, time.UTC)

	want := &models.State{
		Version:        models.SchemaVersion,
		CurrentClockID: "clock-1",
		SavedClocks: []models.SavedClock{
			{
				ID:            "clock-1",
				Name:          "Morning Show",
				EpisodeNumber: "4",
				CreatedAt:     created,
				Segments: []models.Segment{
					{ID: "s1", Label: "Intro", StartSeconds: 0, Duration: 60, Color: "#ffffff"},
				},
			},
		},
		Segments: []models.Segment{
			{ID: "s2", Label: "News", StartSeconds: 60, Duration: 300, Color: "#10b981"},
		},
	}

	require.NoError(t, c.Save(want))

	got, err := c.Load()
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestLoadCorruptFallsBack(t *testing.T) {
	c := newTestClient(t)

	putRaw(t, c, StateKey, []byte(`{"version": 2, "segments": "nope"`))

	state, err := c.Load()
	require.NoError(t, err)

	assert.Len(t, state.Segments, 4)
	assert.Equal(t, `{"version": 2, "segments": "nope"`, string(getRaw(t, c, corruptKey)))
}

func TestLoadFutureVersionFallsBack(t *testing.T) {
	c := newTestClient(t)

	putRaw(t, c, StateKey, []byte(`{"version": 99, "segments": []}`))

	state, err := c.Load()
	require.NoError(t, err)

	assert.Equal(t, models.SchemaVersion, state.Version)
	assert.NotEmpty(t, getRaw(t, c, corruptKey))
}

const legacyRecord = `{
  "state": {
    "savedClocks": [
      {
        "id": "c1",
        "name": "Drive Time",
        "episodeNumber": "7",
        "date": "2024-11-02T10:00:00.000Z",
        "slices": [
          {"id": "x1", "label": "Show Segment", "startSeconds": 0, "duration": 840, "color": "#60a5fa"},
          {"id": "x2", "label": "Broken", "startSeconds": 900, "duration": 0, "color": "#000000"}
        ]
      }
    ],
    "currentClock": {
      "id": "c1",
      "name": "Drive Time",
      "episodeNumber": "7",
      "date": "2024-11-02T10:00:00.000Z",
      "slices": [
        {"id": "x1", "label": "Show Segment", "startSeconds": 0, "duration": 840, "color": "#60a5fa"}
      ]
    }
  },
  "version": 1
}`

func TestLoadMigratesLegacyRecord(t *testing.T) {
	c := newTestClient(t)

	putRaw(t, c, StateKey, []byte(legacyRecord))

	state, err := c.Load()
	require.NoError(t, err)

	require.Len(t, state.SavedClocks, 1)

	clock := state.SavedClocks[0]
	assert.Equal(t, "Drive Time", clock.Name)
	assert.Equal(t, "7", clock.EpisodeNumber)
	assert.Equal(t, time.Date(2024, 11, 2, 10, 0, 0, 0, time.UTC), clock.CreatedAt.UTC())
	assert.Len(t, clock.Segments, 1, "zero-length slices are dropped")

	assert.Equal(t, "c1", state.CurrentClockID)
	require.Len(t, state.Segments, 1)
	assert.Equal(t, "x1", state.Segments[0].ID)

	again, err := Decode(getRaw(t, c, StateKey))
	require.NoError(t, err)
	assert.Equal(t, state, again, "migrated record is written back")
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([]byte(`not json`))
	assert.ErrorIs(t, err, ErrCorruptState)

	_, err = Decode([]byte(`{"segments": []}`))
	assert.ErrorIs(t, err, ErrCorruptState)

	_, err = Decode([]byte(`{"version": 3}`))
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestDecodeDropsDanglingCurrent(t *testing.T) {
	state, err := Decode([]byte(`{"version": 2, "current_clock_id": "gone", "saved_clocks": [], "segments": []}`))
	require.NoError(t, err)

	assert.Empty(t, state.CurrentClockID)
}

func TestSecondClientIsRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locked.db")

	c, err := NewClient(path)
	require.NoError(t, err)

	defer c.Close()

	_, err = NewClient(path)
	assert.ErrorIs(t, err, errAlreadyRunning)
}
