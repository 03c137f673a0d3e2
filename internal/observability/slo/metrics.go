// Package slo turns request outcomes into service level indicator gauges.
package slo

import (
	"context"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SLO targets define the service level objectives for the public API.
const (
	// AvailabilitySLO is the target share of non-5xx responses in percent
	// (99.9% = 43 minutes of errors per month)
	AvailabilitySLO = 99.9

	// LatencyP95SLO is the target 95th percentile latency in seconds (200ms)
	LatencyP95SLO = 0.200

	// LatencyP99SLO is the target 99th percentile latency in seconds (500ms).
	// Feed analyses dominate the tail.
	LatencyP99SLO = 0.500

	// ErrorRateSLO is the maximum acceptable 5xx ratio (0.1% = 0.001)
	ErrorRateSLO = 0.001
)

// SLO gauges, published by Tracker.Flush for the last window.
var (
	// SLOAvailability is (requests - 5xx) / requests, 1 for an empty window
	SLOAvailability = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_availability_ratio",
			Help: "Non-5xx share of requests in the last window (0-1), target: 0.999",
		},
	)

	// SLOLatencyP95 is the nearest-rank p95 of the sampled durations
	SLOLatencyP95 = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_latency_p95_seconds",
			Help: "p95 latency of the last window in seconds, target: 0.200",
		},
	)

	SLOLatencyP99 = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_latency_p99_seconds",
			Help: "p99 latency of the last window in seconds, target: 0.500",
		},
	)

	// SLOErrorRate is 5xx / requests
	SLOErrorRate = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_error_rate_ratio",
			Help: "5xx share of requests in the last window (0-1), target: 0.001",
		},
	)
)

// maxSamples bounds the latency samples kept per window. Later samples
// replace earlier ones round-robin once the buffer is full.
const maxSamples = 4096

// Snapshot is the indicator set computed for one window.
type Snapshot struct {
	Requests     int
	Errors       int
	Availability float64
	ErrorRate    float64
	P95          time.Duration
	P99          time.Duration
}

// Tracker collects request outcomes between flushes. It is safe for concurrent use.
//
// The HTTP metrics middleware calls Observe for every response and a
// background goroutine flushes once a minute:
//
//	tracker := slo.NewTracker()
//	go tracker.Run(ctx, time.Minute)
//	handler = hhttp.MetricsMiddleware(tracker)(handler)
type Tracker struct {
	mu       sync.Mutex
	requests int
	errors   int
	samples  []time.Duration
	next     int
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{samples: make([]time.Duration, 0, 256)}
}

// Observe records one finished request.
func (t *Tracker) Observe(status int, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.requests++
	if status >= 500 {
		t.errors++
	}
	if len(t.samples) < maxSamples {
		t.samples = append(t.samples, d)
		return
	}
	t.samples[t.next] = d
	t.next = (t.next + 1) % maxSamples
}

// Flush computes the indicators for the current window, publishes them to the
// gauges and starts a new window. An empty window reports full availability.
func (t *Tracker) Flush() Snapshot {
	t.mu.Lock()
	s := Snapshot{Requests: t.requests, Errors: t.errors}
	samples := t.samples
	t.requests, t.errors, t.next = 0, 0, 0
	t.samples = make([]time.Duration, 0, cap(samples))
	t.mu.Unlock()

	s.Availability = 1
	if s.Requests > 0 {
		s.ErrorRate = float64(s.Errors) / float64(s.Requests)
		s.Availability = 1 - s.ErrorRate
	}
	slices.Sort(samples)
	s.P95 = percentile(samples, 0.95)
	s.P99 = percentile(samples, 0.99)

	SLOAvailability.Set(s.Availability)
	SLOErrorRate.Set(s.ErrorRate)
	SLOLatencyP95.Set(s.P95.Seconds())
	SLOLatencyP99.Set(s.P99.Seconds())
	return s
}

// Run flushes every interval until ctx is done.
func (t *Tracker) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.Flush()
		}
	}
}

// percentile uses the nearest-rank method on sorted samples.
func percentile(sorted []time.Duration, q float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	rank := int(math.Ceil(q*float64(len(sorted)))) - 1
	if rank < 0 {
		rank = 0
	}
	return sorted[rank]
}
