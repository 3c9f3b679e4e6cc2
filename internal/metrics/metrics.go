package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Crewboard
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Ingestion Metrics
	ReportsIngestedTotal prometheus.CounterVec
	RowsAcceptedTotal    prometheus.CounterVec
	RowsSkippedTotal     prometheus.CounterVec
	IngestDuration       prometheus.HistogramVec

	// Snapshot Metrics
	SnapshotBuildDuration prometheus.Histogram
	SnapshotCacheHits     prometheus.Counter
	SnapshotCacheMisses   prometheus.Counter
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crewboard_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "crewboard_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "crewboard_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		ReportsIngestedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crewboard_reports_ingested_total",
				Help: "Total report files ingested, by report type",
			},
			[]string{"report_type"},
		),
		RowsAcceptedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crewboard_report_rows_accepted_total",
				Help: "Rows that produced records, by report type",
			},
			[]string{"report_type"},
		),
		RowsSkippedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crewboard_report_rows_skipped_total",
				Help: "Rows that contributed nothing, by report type",
			},
			[]string{"report_type"},
		),
		IngestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "crewboard_report_ingest_duration_seconds",
				Help:    "Wall time of one report ingestion, by report type",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"report_type"},
		),

		SnapshotBuildDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "crewboard_snapshot_build_duration_seconds",
				Help:    "Wall time of composing one dashboard snapshot",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
		),
		SnapshotCacheHits: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "crewboard_snapshot_cache_hits_total",
				Help: "Snapshot reads served from cache",
			},
		),
		SnapshotCacheMisses: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "crewboard_snapshot_cache_misses_total",
				Help: "Snapshot reads that rebuilt the snapshot",
			},
		),
	}
}
