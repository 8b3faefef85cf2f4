package server

import (
	"bytes"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ayoisaiah/hourclock/internal/csvio"
	"github.com/ayoisaiah/hourclock/internal/library"
	"github.com/ayoisaiah/hourclock/internal/models"
	"github.com/ayoisaiah/hourclock/internal/segment"
	"github.com/ayoisaiah/hourclock/internal/timeutil"
)

// segmentRequest is the body of POST and PATCH /api/segments. Times use the
// mm:ss format. For PATCH, omitted fields are left unchanged.
type segmentRequest struct {
	Label string `json:"label"`
	Start string `json:"start"`
	End   string `json:"end"`
	Color string `json:"color"`
}

func (r segmentRequest) input() segment.Input {
	return segment.Input{
		Label: r.Label,
		Start: r.Start,
		End:   r.End,
		Color: r.Color,
	}
}

type clockRequest struct {
	Name          string `json:"name"`
	EpisodeNumber string `json:"episode_number"`
}

type displayResponse struct {
	Segments []models.DisplaySegment `json:"segments"`
	Summary  segment.Summary         `json:"summary"`
}

type importResponse struct {
	Segments []models.Segment `json:"segments"`
	Skipped  []csvio.Skipped  `json:"skipped"`
}

// ListSegments handles GET /api/segments.
func (s *Server) ListSegments(w http.ResponseWriter, _ *http.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, http.StatusOK, s.p.Segments())

	return nil
}

// AddSegment handles POST /api/segments.
func (s *Server) AddSegment(w http.ResponseWriter, r *http.Request) error {
	var req segmentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seg, err := s.p.Add(req.input())
	if err != nil {
		return err
	}

	s.mutated("add")
	writeJSON(w, http.StatusCreated, seg)

	return nil
}

// UpdateSegment handles PATCH /api/segments/{id}.
func (s *Server) UpdateSegment(w http.ResponseWriter, r *http.Request) error {
	var req segmentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seg, err := s.p.Update(chi.URLParam(r, "id"), req.input())
	if err != nil {
		return err
	}

	s.mutated("update")
	writeJSON(w, http.StatusOK, seg)

	return nil
}

// DeleteSegment handles DELETE /api/segments/{id}.
func (s *Server) DeleteSegment(w http.ResponseWriter, r *http.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.p.Delete(chi.URLParam(r, "id")); err != nil {
		return err
	}

	s.mutated("delete")
	w.WriteHeader(http.StatusNoContent)

	return nil
}

// Display handles GET /api/display.
func (s *Server) Display(w http.ResponseWriter, _ *http.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	display := s.p.Display()

	writeJSON(w, http.StatusOK, displayResponse{
		Segments: display,
		Summary:  segment.Summarize(display),
	})

	return nil
}

// ImportCSV handles POST /api/import with a text/csv body.
func (s *Server) ImportCSV(w http.ResponseWriter, r *http.Request) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.p.Import(body)
	if err != nil {
		return err
	}

	skipped := res.Skipped
	if skipped == nil {
		skipped = []csvio.Skipped{}
	}

	s.mutated("import")
	writeJSON(w, http.StatusOK, importResponse{
		Segments: s.p.Segments(),
		Skipped:  skipped,
	})

	return nil
}

// ExportCSV handles GET /api/export.csv.
func (s *Server) ExportCSV(w http.ResponseWriter, _ *http.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var buf bytes.Buffer
	if err := s.p.ExportCSV(&buf); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="clock.csv"`)

	_, err := w.Write(buf.Bytes())

	s.exported("csv")

	return err
}

// ClockPNG handles GET /clock.png.
func (s *Server) ClockPNG(w http.ResponseWriter, _ *http.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var buf bytes.Buffer
	if err := s.p.ExportPNG(&buf, s.chart); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "image/png")

	_, err := w.Write(buf.Bytes())

	s.exported("png")

	return err
}

// ListClocks handles GET /api/clocks. The optional since query parameter
// accepts expressions such as "last week" or "2026-01-01".
func (s *Server) ListClocks(w http.ResponseWriter, r *http.Request) error {
	var f library.Filter

	f.Name = r.URL.Query().Get("name")

	if since := r.URL.Query().Get("since"); since != "" {
		t, err := timeutil.DayStartFromStr(since, time.Now())
		if err != nil {
			return badRequest(err)
		}

		f.Since = t
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, http.StatusOK, s.p.Clocks(f))

	return nil
}

// SaveClock handles POST /api/clocks.
func (s *Server) SaveClock(w http.ResponseWriter, r *http.Request) error {
	var req clockRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	clock, err := s.p.SaveClock(req.Name, req.EpisodeNumber)
	if err != nil {
		return err
	}

	s.mutated("save_clock")
	writeJSON(w, http.StatusCreated, clock)

	return nil
}

// LoadClock handles POST /api/clocks/{id}/load.
func (s *Server) LoadClock(w http.ResponseWriter, r *http.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clock, err := s.p.LoadClock(chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	s.mutated("load_clock")
	writeJSON(w, http.StatusOK, clock)

	return nil
}

// DeleteClock handles DELETE /api/clocks/{id}. Unknown ids respond with 404.
func (s *Server) DeleteClock(w http.ResponseWriter, r *http.Request) error {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()

	ok, err := s.p.DeleteClock(id)
	if err != nil {
		return err
	}

	if !ok {
		return library.ErrClockNotFound.Fmt(id)
	}

	s.mutated("delete_clock")
	w.WriteHeader(http.StatusNoContent)

	return nil
}
