package ratelimit

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics receives limiter events. Implementations must be safe for concurrent
// use since Allow reports outside the limiter lock.
type Metrics interface {
	RecordAllowed(limiter string)
	RecordDenied(limiter string)
	RecordEviction(limiter string)
	SetActiveKeys(limiter string, n int)
}

// NoopMetrics discards everything.
type NoopMetrics struct{}

func (NoopMetrics) RecordAllowed(string)      {}
func (NoopMetrics) RecordDenied(string)       {}
func (NoopMetrics) RecordEviction(string)     {}
func (NoopMetrics) SetActiveKeys(string, int) {}

// PrometheusMetrics exports limiter events as Prometheus collectors:
//   - http_rate_limit_requests_total{limiter_type,status}: status is "allowed" or "denied"
//   - http_rate_limit_evictions_total{limiter_type}
//   - http_rate_limit_active_keys{limiter_type}
type PrometheusMetrics struct {
	requests   *prometheus.CounterVec
	evictions  *prometheus.CounterVec
	activeKeys *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the limiter collectors with reg. Pass a fresh
// prometheus.NewRegistry() in tests to keep them isolated.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_rate_limit_requests_total",
				Help: "Rate limit checks by limiter and outcome",
			},
			[]string{"limiter_type", "status"},
		),
		evictions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_rate_limit_evictions_total",
				Help: "Buckets evicted because the key cap was reached",
			},
			[]string{"limiter_type"},
		),
		activeKeys: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "http_rate_limit_active_keys",
				Help: "Keys currently tracked by the limiter",
			},
			[]string{"limiter_type"},
		),
	}
	reg.MustRegister(m.requests, m.evictions, m.activeKeys)
	return m
}

func (m *PrometheusMetrics) RecordAllowed(limiter string) {
	m.requests.WithLabelValues(limiter, "allowed").Inc()
}

func (m *PrometheusMetrics) RecordDenied(limiter string) {
	m.requests.WithLabelValues(limiter, "denied").Inc()
}

func (m *PrometheusMetrics) RecordEviction(limiter string) {
	m.evictions.WithLabelValues(limiter).Inc()
}

func (m *PrometheusMetrics) SetActiveKeys(limiter string, n int) {
	m.activeKeys.WithLabelValues(limiter).Set(float64(n))
}
