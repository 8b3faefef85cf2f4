package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus counters and gauges for the clock server.
type Metrics struct {
	registry         *prometheus.Registry
	requestsTotal    prometheus.Counter
	errorsTotal      prometheus.Counter
	mutationsTotal   *prometheus.CounterVec
	exportsTotal     *prometheus.CounterVec
	segments         prometheus.Gauge
	savedClocks      prometheus.Gauge
	undecidedSeconds prometheus.Gauge
}

// NewMetrics creates and registers Prometheus metrics on a private registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		requestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hourclock_requests_total",
			Help: "Total number of HTTP requests received",
		}),
		errorsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hourclock_errors_total",
			Help: "Total number of HTTP responses with error status (4xx or 5xx)",
		}),
		mutationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hourclock_mutations_total",
			Help: "Successful clock mutations by operation",
		}, []string{"op"}),
		exportsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hourclock_exports_total",
			Help: "Exports served by format",
		}, []string{"format"}),
		segments: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hourclock_segments",
			Help: "Number of segments in the live clock",
		}),
		savedClocks: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hourclock_saved_clocks",
			Help: "Number of saved clock snapshots",
		}),
		undecidedSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hourclock_undecided_seconds",
			Help: "Seconds of the hour not covered by any segment",
		}),
	}

	registry.MustRegister(
		m.requestsTotal,
		m.errorsTotal,
		m.mutationsTotal,
		m.exportsTotal,
		m.segments,
		m.savedClocks,
		m.undecidedSeconds,
	)

	return m
}

// IncMutation counts a successful mutation such as "add" or "import".
func (m *Metrics) IncMutation(op string) {
	m.mutationsTotal.WithLabelValues(op).Inc()
}

// IncExport counts an export in the given format.
func (m *Metrics) IncExport(format string) {
	m.exportsTotal.WithLabelValues(format).Inc()
}

// SetClock refreshes the gauges describing the live clock.
func (m *Metrics) SetClock(segments, savedClocks, undecided int) {
	m.segments.Set(float64(segments))
	m.savedClocks.Set(float64(savedClocks))
	m.undecidedSeconds.Set(float64(undecided))
}

// Handler returns an http.Handler that serves Prometheus metrics.
// updateGauges is called before each scrape.
func (m *Metrics) Handler(updateGauges func()) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if updateGauges != nil {
			updateGauges()
		}

		promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}).ServeHTTP(w, r)
	})
}

// statusWriter captures the status code for metrics.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// RequestMiddleware returns chi-compatible middleware that records request
// count and error count (status >= 400).
func RequestMiddleware(m *Metrics) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wrap := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(wrap, r)

			m.requestsTotal.Inc()

			if wrap.status >= http.StatusBadRequest {
				m.errorsTotal.Inc()
			}
		})
	}
}
