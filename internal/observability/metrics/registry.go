package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// Buckets run from 5ms to 10s so p95/p99 stay readable for both block
	// lookups and large feed analyses.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)

	HTTPRequestSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_size_bytes",
			Help:    "HTTP request size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)
)

// Analysis
var (
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stringlang_analyses_total",
			Help: "Total number of analyses by input source and outcome",
		},
		[]string{"source", "status"},
	)

	AnalysisDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stringlang_analysis_duration_seconds",
			Help:    "Time spent counting one input",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
		[]string{"source"},
	)

	CodePointsAnalyzed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stringlang_code_points_analyzed_total",
			Help: "Total number of code points counted",
		},
	)

	// Label cardinality is bounded by the catalog size.
	BlockHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stringlang_block_hits_total",
			Help: "Code points counted per Unicode block",
		},
		[]string{"block"},
	)
)

// Text acquisition
var (
	ContentFetchAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stringlang_content_fetch_attempts_total",
			Help: "Total number of URL and feed fetch attempts",
		},
		[]string{"kind", "result"},
	)

	ContentFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stringlang_content_fetch_duration_seconds",
			Help:    "Time taken to fetch remote text",
			Buckets: []float64{0.1, 0.2, 0.4, 0.8, 1.6, 3.2, 6.4, 12.8},
		},
		[]string{"kind"},
	)

	ContentFetchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stringlang_content_fetch_size_bytes",
			Help:    "Size of fetched text in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 4, 10),
		},
	)
)

// Archive
var (
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"operation"},
	)

	AnalysesStored = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "stringlang_analyses_stored",
			Help: "Number of analyses in the archive at the last count",
		},
	)

	DBConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of active database connections",
		},
	)

	DBConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		},
	)
)

// Resilience
var (
	// CircuitBreakerState is 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "stringlang_circuit_breaker_state",
			Help: "Circuit breaker state by name (0 closed, 1 half-open, 2 open)",
		},
		[]string{"name"},
	)

	RetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stringlang_retries_total",
			Help: "Retried attempts by operation",
		},
		[]string{"operation"},
	)
)
