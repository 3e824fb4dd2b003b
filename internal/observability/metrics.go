package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus instruments for the exploration API.
type Metrics struct {
	DatasetRows prometheus.Gauge

	// QueriesServed counts exploration queries by view
	// (neighborhood_species, park_map, diameter) and outcome
	// (ok, empty, not_found, bad_request, error).
	QueriesServed *prometheus.CounterVec

	RequestDuration *prometheus.HistogramVec // labels: method, path, status
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.DatasetRows,
		m.QueriesServed,
		m.RequestDuration,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, so parallel
// tests don't collide on the default registry.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		DatasetRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tree_explorer",
			Name:      "dataset_rows",
			Help:      "Number of tree records in the loaded dataset.",
		}),
		QueriesServed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tree_explorer",
			Name:      "queries_served_total",
			Help:      "Exploration queries by view and outcome.",
		}, []string{"view", "outcome"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tree_explorer",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"method", "path", "status"}),
	}
}
