// Package server exposes the live clock over a local JSON API, alongside a
// PNG rendering and Prometheus metrics.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ayoisaiah/hourclock/internal/csvio"
	"github.com/ayoisaiah/hourclock/internal/library"
	"github.com/ayoisaiah/hourclock/internal/logger"
	"github.com/ayoisaiah/hourclock/internal/planner"
	"github.com/ayoisaiah/hourclock/internal/render"
	"github.com/ayoisaiah/hourclock/internal/segment"
	"github.com/ayoisaiah/hourclock/internal/timeutil"
)

const (
	shutdownTimeout = 10 * time.Second
	maxBodyBytes    = 1 << 20
)

// Server serialises all access to a Planner behind a mutex.
type Server struct {
	p       *planner.Planner
	log     *slog.Logger
	metrics *Metrics
	chart   render.Options
	mu      sync.Mutex
}

// New returns a Server for p. Metrics may be nil to disable recording.
func New(
	p *planner.Planner,
	log *slog.Logger,
	m *Metrics,
	chart render.Options,
) *Server {
	return &Server{p: p, log: log, metrics: m, chart: chart}
}

// Router builds the chi router with logging and metrics middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(logger.RequestLogger(s.log))

	if s.metrics != nil {
		r.Use(RequestMiddleware(s.metrics))
		r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			s.metrics.Handler(s.updateGauges).ServeHTTP(w, r)
		})
	}

	r.Method(http.MethodGet, "/clock.png", errorHandler(s.ClockPNG))

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/segments", errorHandler(s.ListSegments))
		r.Method(http.MethodPost, "/segments", errorHandler(s.AddSegment))
		r.Method(http.MethodPatch, "/segments/{id}", errorHandler(s.UpdateSegment))
		r.Method(http.MethodDelete, "/segments/{id}", errorHandler(s.DeleteSegment))
		r.Method(http.MethodGet, "/display", errorHandler(s.Display))
		r.Method(http.MethodPost, "/import", errorHandler(s.ImportCSV))
		r.Method(http.MethodGet, "/export.csv", errorHandler(s.ExportCSV))
		r.Method(http.MethodGet, "/clocks", errorHandler(s.ListClocks))
		r.Method(http.MethodPost, "/clocks", errorHandler(s.SaveClock))
		r.Method(http.MethodPost, "/clocks/{id}/load", errorHandler(s.LoadClock))
		r.Method(http.MethodDelete, "/clocks/{id}", errorHandler(s.DeleteClock))
	})

	return r
}

// ListenAndServe serves the router on addr until ctx is cancelled, then
// drains open connections.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.log.Info("server starting", slog.String("addr", addr))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	case <-ctx.Done():
	}

	s.log.Info("shutdown signal received, draining connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	s.log.Info("server stopped")

	return nil
}

func (s *Server) updateGauges() {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := s.p.Summary()

	s.metrics.SetClock(
		len(s.p.Segments()),
		len(s.p.Clocks(library.Filter{})),
		sum.Undecided,
	)
}

func (s *Server) mutated(op string) {
	if s.metrics != nil {
		s.metrics.IncMutation(op)
	}
}

func (s *Server) exported(format string) {
	if s.metrics != nil {
		s.metrics.IncExport(format)
	}
}

// httpError carries the status code to respond with.
type httpError struct {
	err    error
	status int
}

func (e *httpError) Error() string {
	return e.err.Error()
}

func (e *httpError) Unwrap() error {
	return e.err
}

func badRequest(err error) error {
	return &httpError{err: err, status: http.StatusBadRequest}
}

type errorHandler func(w http.ResponseWriter, r *http.Request) error

func (h errorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := h(w, r)
	if err == nil {
		return
	}

	status := statusFor(err)

	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	var he *httpError
	if errors.As(err, &he) {
		return he.status
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}

	switch {
	case errors.Is(err, planner.ErrSegmentNotFound),
		errors.Is(err, library.ErrClockNotFound):
		return http.StatusNotFound
	case errors.Is(err, planner.ErrPlaceholder):
		return http.StatusConflict
	case errors.Is(err, segment.ErrEmptyField),
		errors.Is(err, segment.ErrZeroDuration),
		errors.Is(err, segment.ErrInvalidColor),
		errors.Is(err, timeutil.ErrInvalidTime),
		errors.Is(err, library.ErrMissingField),
		errors.Is(err, csvio.ErrMissingColumns):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return badRequest(err)
	}

	return nil
}
