package store

import (
	"encoding/json"
	"slices"
	"strings"
	"time"

	"github.com/ayoisaiah/hourclock/internal/models"
	"github.com/ayoisaiah/hourclock/internal/segment"
)

// legacySlice and legacyClock mirror the version 1 layout, where the record
// was wrapped in a "state" envelope with camelCase fields and no live
// segment list.
type legacySlice struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	Color        string `json:"color"`
	StartSeconds int    `json:"startSeconds"`
	Duration     int    `json:"duration"`
}

type legacyClock struct {
	Date          time.Time     `json:"date"`
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	EpisodeNumber string        `json:"episodeNumber"`
	Slices        []legacySlice `json:"slices"`
}

type legacyState struct {
	State struct {
		CurrentClock *legacyClock  `json:"currentClock"`
		SavedClocks  []legacyClock `json:"savedClocks"`
	} `json:"state"`
	Version int `json:"version"`
}

func peekVersion(raw []byte) (int, error) {
	var header struct {
		Version *int `json:"version"`
	}

	if err := json.Unmarshal(raw, &header); err != nil {
		return 0, errCorruptState.Wrap(err)
	}

	if header.Version == nil {
		return 0, errCorruptState.Wrap(errMissingVersion)
	}

	return *header.Version, nil
}

// Decode parses a serialized state record of any supported schema version
// and upgrades it to the current one. Segments and clocks that cannot be
// used (missing ids, non-positive durations) are dropped.
func Decode(raw []byte) (*models.State, error) {
	version, err := peekVersion(raw)
	if err != nil {
		return nil, err
	}

	var state *models.State

	switch {
	case version > models.SchemaVersion:
		return nil, errUnsupportedVersion.Fmt(version, models.SchemaVersion)
	case version <= 1:
		state, err = migrateV1(raw)
	default:
		state = &models.State{}
		err = json.Unmarshal(raw, state)
	}

	if err != nil {
		return nil, errCorruptState.Wrap(err)
	}

	sanitize(state)

	return state, nil
}

func migrateV1(raw []byte) (*models.State, error) {
	var legacy legacyState

	if err := json.Unmarshal(raw, &legacy); err != nil {
		return nil, err
	}

	state := &models.State{
		Version:     models.SchemaVersion,
		SavedClocks: make([]models.SavedClock, 0, len(legacy.State.SavedClocks)),
	}

	for _, lc := range legacy.State.SavedClocks {
		state.SavedClocks = append(state.SavedClocks, lc.toModel())
	}

	if cur := legacy.State.CurrentClock; cur != nil {
		state.CurrentClockID = cur.ID
		state.Segments = cur.toModel().Segments
	} else {
		state.Segments = segment.Defaults(nil)
	}

	return state, nil
}

func (lc legacyClock) toModel() models.SavedClock {
	segs := make([]models.Segment, len(lc.Slices))

	for i, s := range lc.Slices {
		segs[i] = models.Segment{
			ID:           s.ID,
			Label:        s.Label,
			StartSeconds: s.StartSeconds,
			Duration:     s.Duration,
			Color:        s.Color,
		}
	}

	return models.SavedClock{
		ID:            lc.ID,
		Name:          lc.Name,
		EpisodeNumber: lc.EpisodeNumber,
		CreatedAt:     lc.Date,
		Segments:      segs,
	}
}

func sanitize(state *models.State) {
	state.Version = models.SchemaVersion

	state.SavedClocks = slices.DeleteFunc(state.SavedClocks, func(c models.SavedClock) bool {
		return strings.TrimSpace(c.ID) == ""
	})

	for i := range state.SavedClocks {
		state.SavedClocks[i].Segments = sanitizeSegments(state.SavedClocks[i].Segments)
	}

	if state.SavedClocks == nil {
		state.SavedClocks = []models.SavedClock{}
	}

	state.Segments = sanitizeSegments(state.Segments)

	if !slices.ContainsFunc(state.SavedClocks, func(c models.SavedClock) bool {
		return c.ID == state.CurrentClockID
	}) {
		state.CurrentClockID = ""
	}
}

func sanitizeSegments(segs []models.Segment) []models.Segment {
	out := make([]models.Segment, 0, len(segs))

	for _, s := range segs {
		if strings.TrimSpace(s.ID) == "" || s.Duration <= 0 {
			continue
		}

		if !segment.ValidColor(s.Color) {
			s.Color = segment.DefaultPlaceholderColor
		}

		out = append(out, s)
	}

	return out
}
