// Package metrics provides Prometheus instrumentation for reelpick.
//
// Metrics are registered on an explicit registry so tests can build isolated
// instances; Handler exposes them at GET /metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels shared by catalog calls and selections.
const (
	OutcomeOK        = "ok"
	OutcomeError     = "error"
	OutcomeNoMatch   = "no_match"
	OutcomeInvalid   = "invalid"
	OutcomeNoKeyword = "keyword_not_found"
)

// Metrics holds the collectors for one process.
type Metrics struct {
	registry *prometheus.Registry

	catalogRequests   *prometheus.CounterVec
	selections        *prometheus.CounterVec
	selectionDuration *prometheus.HistogramVec
}

// New creates and registers all collectors on a fresh registry,
// including the Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		catalogRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reelpick_catalog_requests_total",
			Help: "Outbound catalog API requests by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		selections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reelpick_selections_total",
			Help: "Movie selection requests by mode and outcome.",
		}, []string{"mode", "outcome"}),
		selectionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "reelpick_selection_duration_seconds",
			Help:    "Time to complete a selection, including enrichment.",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"mode"}),
	}
	reg.MustRegister(m.catalogRequests, m.selections, m.selectionDuration)

	return m
}

// ObserveCatalogRequest counts one outbound catalog call. Safe on a nil receiver.
func (m *Metrics) ObserveCatalogRequest(endpoint, outcome string) {
	if m == nil {
		return
	}
	m.catalogRequests.WithLabelValues(endpoint, outcome).Inc()
}

// ObserveSelection records the outcome and latency of one selection. Safe on a nil receiver.
func (m *Metrics) ObserveSelection(mode, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.selections.WithLabelValues(mode, outcome).Inc()
	m.selectionDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
}

// CatalogRequestCounter returns the counter for one endpoint/outcome pair.
func (m *Metrics) CatalogRequestCounter(endpoint, outcome string) prometheus.Counter {
	return m.catalogRequests.WithLabelValues(endpoint, outcome)
}

// SelectionCounter returns the counter for one mode/outcome pair.
func (m *Metrics) SelectionCounter(mode, outcome string) prometheus.Counter {
	return m.selections.WithLabelValues(mode, outcome)
}

// Handler returns the Prometheus scrape handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
