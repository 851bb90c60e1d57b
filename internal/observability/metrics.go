package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the cuaca client, repository and screen.
type Metrics struct {
	// Remote API metrics.
	APIRequests        *prometheus.CounterVec   // labels: operation={list,delete}, outcome={success,error}
	APIRequestDuration *prometheus.HistogramVec // labels: operation={list,delete}
	BreakerOpen        *prometheus.GaugeVec     // labels: name

	// Repository results by operation and terminal status.
	RepositoryResults *prometheus.CounterVec // labels: operation, status={success,error}

	// Screen metrics.
	RefreshTriggers *prometheus.CounterVec // labels: source={mount,manual,scheduled,delete}
	ItemsDisplayed  prometheus.Gauge
	Renders         prometheus.Counter

	// Deletion audit publishing.
	AuditEvents *prometheus.CounterVec // labels: outcome={success,error}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.APIRequests,
		m.APIRequestDuration,
		m.BreakerOpen,
		m.RepositoryResults,
		m.RefreshTriggers,
		m.ItemsDisplayed,
		m.Renders,
		m.AuditEvents,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		APIRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dekat",
			Name:      "api_requests_total",
			Help:      "Cuaca API requests by operation and outcome.",
		}, []string{"operation", "outcome"}),
		APIRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "dekat",
			Name:      "api_request_duration_seconds",
			Help:      "Cuaca API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"operation"}),
		BreakerOpen: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "dekat",
			Name:      "api_breaker_open",
			Help:      "1 while the cuaca API circuit breaker is open, 0 otherwise.",
		}, []string{"name"}),
		RepositoryResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dekat",
			Name:      "repository_results_total",
			Help:      "Terminal repository results by operation and status.",
		}, []string{"operation", "status"}),
		RefreshTriggers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dekat",
			Name:      "refresh_triggers_total",
			Help:      "List fetches started by the screen, by trigger source.",
		}, []string{"source"}),
		ItemsDisplayed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "dekat",
			Name:      "items_displayed",
			Help:      "Number of reports currently held by the screen.",
		}),
		Renders: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dekat",
			Name:      "renders_total",
			Help:      "Total screen renders.",
		}),
		AuditEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dekat",
			Name:      "audit_events_total",
			Help:      "Deletion audit events by publish outcome.",
		}, []string{"outcome"}),
	}
}
