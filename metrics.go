package main

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus instruments for the underwriting pipeline.
type Metrics struct {
	AssessmentsTotal   prometheus.Counter
	AssessmentDuration prometheus.Histogram

	ElevationLookups *prometheus.CounterVec // labels: outcome={success,unknown}
	ElevationCache   *prometheus.CounterVec // labels: result={hit,miss}

	ReportsGenerated *prometheus.CounterVec // labels: outcome={success,error}
}

// NewMetrics creates and registers all metrics with the default registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.AssessmentsTotal,
		m.AssessmentDuration,
		m.ElevationLookups,
		m.ElevationCache,
		m.ReportsGenerated,
	)
	return m
}

// newMetrics creates unregistered metrics. Tests use this directly to
// avoid "already registered" panics across test cases.
func newMetrics() *Metrics {
	return &Metrics{
		AssessmentsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "underwriting",
			Name:      "assessments_total",
			Help:      "Total risk assessments run.",
		}),
		AssessmentDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "underwriting",
			Name:      "assessment_duration_seconds",
			Help:      "Duration of a full pipeline run.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		ElevationLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "underwriting",
			Name:      "elevation_lookups_total",
			Help:      "Elevation service lookups by outcome.",
		}, []string{"outcome"}),
		ElevationCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "underwriting",
			Name:      "elevation_cache_total",
			Help:      "Elevation cache lookups by result.",
		}, []string{"result"}),
		ReportsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "underwriting",
			Name:      "reports_generated_total",
			Help:      "PDF report generations by outcome.",
		}, []string{"outcome"}),
	}
}
