package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for map generation.
type Metrics struct {
	ReportsProcessed prometheus.Counter
	MapsRendered     prometheus.Counter
	ResidualBuckets  *prometheus.CounterVec // label: bucket={zero,one,two-or-more}
	GenerateDuration prometheus.Histogram
}

// NewMetrics creates and registers all generator metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		ReportsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "feltmaps",
			Name:      "reports_processed_total",
			Help:      "Total felt reports enriched and placed on a map.",
		}),
		MapsRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "feltmaps",
			Name:      "maps_rendered_total",
			Help:      "Total HTML map artifacts written.",
		}),
		ResidualBuckets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "feltmaps",
			Name:      "residual_bucket_total",
			Help:      "Reports classified per residual bucket.",
		}, []string{"bucket"}),
		GenerateDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "feltmaps",
			Name:      "generate_duration_seconds",
			Help:      "Duration of a complete load-enrich-render run.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}

	prometheus.MustRegister(
		m.ReportsProcessed,
		m.MapsRendered,
		m.ResidualBuckets,
		m.GenerateDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		ReportsProcessed: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "feltmaps", Name: "reports_processed_total"}),
		MapsRendered:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "feltmaps", Name: "maps_rendered_total"}),
		ResidualBuckets:  prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "feltmaps", Name: "residual_bucket_total"}, []string{"bucket"}),
		GenerateDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "feltmaps", Name: "generate_duration_seconds"}),
	}
}
