// Package planner ties the live segment list and the saved clock library to
// the durable store. Every successful mutation is committed before it
// returns. A Planner is not safe for concurrent use.
package planner

import (
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/ayoisaiah/hourclock/internal/csvio"
	"github.com/ayoisaiah/hourclock/internal/library"
	"github.com/ayoisaiah/hourclock/internal/models"
	"github.com/ayoisaiah/hourclock/internal/render"
	"github.com/ayoisaiah/hourclock/internal/segment"
	"github.com/ayoisaiah/hourclock/store"
)

// Planner is the state container shared by the TUI, the CLI and the server.
type Planner struct {
	db               store.DB
	log              *slog.Logger
	now              func() time.Time
	segments         *segment.Store
	library          *library.Library
	placeholderColor string
	segmentOpts      []segment.Option
}

// Option configures a Planner.
type Option func(*Planner)

// WithLogger sets the logger used for mutation events.
func WithLogger(l *slog.Logger) Option {
	return func(p *Planner) {
		p.log = l
	}
}

// WithClock overrides the time source used to stamp saved clocks.
func WithClock(now func() time.Time) Option {
	return func(p *Planner) {
		p.now = now
	}
}

// WithPlaceholderColor sets the fill of unscheduled time.
func WithPlaceholderColor(c string) Option {
	return func(p *Planner) {
		p.placeholderColor = c
	}
}

// WithIDFunc overrides the segment identifier generator.
func WithIDFunc(fn segment.IDFunc) Option {
	return func(p *Planner) {
		p.segmentOpts = append(p.segmentOpts, segment.WithIDFunc(fn))
	}
}

// New loads the persisted state from db.
func New(db store.DB, opts ...Option) (*Planner, error) {
	p := &Planner{
		db:               db,
		log:              slog.New(slog.DiscardHandler),
		now:              time.Now,
		placeholderColor: segment.DefaultPlaceholderColor,
	}

	for _, opt := range opts {
		opt(p)
	}

	state, err := db.Load()
	if err != nil {
		return nil, errLoadState.Wrap(err)
	}

	p.segments = segment.New(state.Segments, p.segmentOpts...)
	p.library = library.New(state.SavedClocks, state.CurrentClockID)

	return p, nil
}

// Segments returns the live segment list in store order.
func (p *Planner) Segments() []models.Segment {
	return p.segments.Segments()
}

// Display returns the gap-filled projection of the live list.
func (p *Planner) Display() []models.DisplaySegment {
	return segment.Project(
		p.segments.Segments(),
		segment.WithPlaceholderColor(p.placeholderColor),
	)
}

// Summary describes the current projection.
func (p *Planner) Summary() segment.Summary {
	return segment.Summarize(p.Display())
}

// Resolve finds a live segment by its 1-based row in Display (the number
// drawn on the chart), its id, or a unique id prefix.
func (p *Planner) Resolve(ref string) (models.Segment, error) {
	ref = strings.TrimSpace(ref)

	if n, err := strconv.Atoi(ref); err == nil {
		display := p.Display()
		if n >= 1 && n <= len(display) {
			d := display[n-1]
			if d.Placeholder {
				return models.Segment{}, errPlaceholder.Fmt(ref)
			}

			return d.Segment, nil
		}
	}

	if segment.IsPlaceholderID(ref) {
		return models.Segment{}, errPlaceholder.Fmt(ref)
	}

	if seg, ok := p.segments.Find(ref); ok {
		return seg, nil
	}

	var (
		match models.Segment
		found int
	)

	if ref != "" {
		for _, seg := range p.segments.Segments() {
			if strings.HasPrefix(seg.ID, ref) {
				match = seg
				found++
			}
		}
	}

	if found != 1 {
		return models.Segment{}, errSegmentNotFound.Fmt(ref)
	}

	return match, nil
}

// Add validates in and inserts the resulting segment.
func (p *Planner) Add(in segment.Input) (models.Segment, error) {
	prev := p.State()

	draft, err := segment.ParseDraft(in)
	if err != nil {
		return models.Segment{}, err
	}

	seg, _ := p.segments.Add(draft)

	p.log.Info("segment added",
		slog.String("id", seg.ID),
		slog.String("label", seg.Label),
		slog.Int("start", seg.StartSeconds),
		slog.Int("duration", seg.Duration),
	)

	return seg, p.commit(prev)
}

// Update merges in into the segment referenced by ref. Empty input fields
// are left unchanged.
func (p *Planner) Update(ref string, in segment.Input) (models.Segment, error) {
	prev := p.State()

	seg, err := p.Resolve(ref)
	if err != nil {
		return models.Segment{}, err
	}

	patch, err := segment.BuildPatch(seg, in)
	if err != nil {
		return models.Segment{}, err
	}

	p.segments.Update(seg.ID, patch)

	updated, _ := p.segments.Find(seg.ID)

	p.log.Info("segment updated", slog.String("id", seg.ID))

	return updated, p.commit(prev)
}

// Delete removes the segment referenced by ref.
func (p *Planner) Delete(ref string) (models.Segment, error) {
	prev := p.State()

	seg, err := p.Resolve(ref)
	if err != nil {
		return models.Segment{}, err
	}

	p.segments.Delete(seg.ID)

	p.log.Info("segment deleted", slog.String("id", seg.ID))

	return seg, p.commit(prev)
}

// Import replaces the live list with the rows read from a CSV document.
func (p *Planner) Import(r io.Reader) (*csvio.Result, error) {
	prev := p.State()

	res, err := csvio.Import(r)
	if err != nil {
		return nil, err
	}

	p.segments.Replace(res.Drafts)

	for _, s := range res.Skipped {
		p.log.Warn("csv row skipped",
			slog.Int("line", s.Line),
			slog.String("reason", s.Reason),
		)
	}

	p.log.Info("csv imported",
		slog.Int("segments", len(res.Drafts)),
		slog.Int("skipped", len(res.Skipped)),
	)

	return res, p.commit(prev)
}

// ExportCSV writes the live list as CSV.
func (p *Planner) ExportCSV(w io.Writer) error {
	return csvio.Export(w, p.segments.Segments())
}

// ExportPNG renders the projection as a ring chart.
func (p *Planner) ExportPNG(w io.Writer, opts render.Options) error {
	return render.PNG(w, p.Display(), opts)
}

// Reset restores the starter segments. Saved clocks are kept.
func (p *Planner) Reset() ([]models.Segment, error) {
	prev := p.State()

	segs := p.segments.Replace(draftsOf(segment.Defaults(nil)))

	p.log.Info("segments reset")

	return segs, p.commit(prev)
}

// SaveClock snapshots the live list under a show name and episode number.
func (p *Planner) SaveClock(name, episode string) (models.SavedClock, error) {
	prev := p.State()

	clock, err := p.library.Save(name, episode, p.segments.Segments(), p.now())
	if err != nil {
		return models.SavedClock{}, err
	}

	p.log.Info("clock saved",
		slog.String("id", clock.ID),
		slog.String("name", clock.Name),
		slog.String("episode", clock.EpisodeNumber),
	)

	return clock, p.commit(prev)
}

// LoadClock replaces the live list with a copy of a saved clock's segments.
func (p *Planner) LoadClock(id string) (models.SavedClock, error) {
	prev := p.State()

	clock, err := p.library.Get(id)
	if err != nil {
		return models.SavedClock{}, err
	}

	segs, err := p.library.Load(clock.ID)
	if err != nil {
		return models.SavedClock{}, err
	}

	p.segments.Set(segs)

	p.log.Info("clock loaded", slog.String("id", clock.ID))

	return clock, p.commit(prev)
}

// DeleteClock removes a saved clock. It reports false without error when
// nothing matched.
func (p *Planner) DeleteClock(id string) (bool, error) {
	prev := p.State()

	if !p.library.Delete(id) {
		return false, nil
	}

	p.log.Info("clock deleted", slog.String("id", id))

	return true, p.commit(prev)
}

// Clocks lists saved clocks matching f.
func (p *Planner) Clocks(f library.Filter) []models.SavedClock {
	return p.library.List(f)
}

// GetClock returns a saved clock by id or unique id prefix.
func (p *Planner) GetClock(id string) (models.SavedClock, error) {
	return p.library.Get(id)
}

// CurrentClock returns the loaded snapshot, if any.
func (p *Planner) CurrentClock() (models.SavedClock, bool) {
	id := p.library.Current()
	if id == "" {
		return models.SavedClock{}, false
	}

	clock, err := p.library.Get(id)
	if err != nil {
		return models.SavedClock{}, false
	}

	return clock, true
}

// State returns the record that would be persisted.
func (p *Planner) State() *models.State {
	return &models.State{
		Version:        models.SchemaVersion,
		SavedClocks:    p.library.Clocks(),
		CurrentClockID: p.library.Current(),
		Segments:       p.segments.Segments(),
	}
}

// commit persists the current state. On failure the in-memory state is
// rolled back to prev so it never runs ahead of the store.
func (p *Planner) commit(prev *models.State) error {
	if err := p.db.Save(p.State()); err != nil {
		p.log.Error("commit failed", slog.String("error", err.Error()))
		p.rollback(prev)

		return errCommit.Wrap(err)
	}

	p.log.Debug("state committed", slog.Int("segments", p.segments.Len()))

	return nil
}

func (p *Planner) rollback(prev *models.State) {
	p.segments.Set(prev.Segments)
	p.library = library.New(prev.SavedClocks, prev.CurrentClockID)
}

func draftsOf(segs []models.Segment) []segment.Draft {
	out := make([]segment.Draft, len(segs))

	for i, s := range segs {
		out[i] = segment.Draft{
			Label:        s.Label,
			Color:        s.Color,
			StartSeconds: s.StartSeconds,
			Duration:     s.Duration,
		}
	}

	return out
}
