package worker

import (
	"stringlang/internal/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// WorkerMetrics are the retention worker's Prometheus metrics. Config load
// metrics are embedded under the "retention" prefix.
type WorkerMetrics struct {
	*config.ConfigMetrics

	// JobRunsTotal counts runs by status: started, success, failure.
	JobRunsTotal *prometheus.CounterVec

	JobDurationSeconds prometheus.Histogram

	// AnalysesPurgedTotal counts archive rows deleted across all runs.
	AnalysesPurgedTotal prometheus.Counter

	JobLastSuccessTimestamp prometheus.Gauge
}

// NewWorkerMetrics registers with the default registry. Call it once per process.
func NewWorkerMetrics() *WorkerMetrics {
	return NewWorkerMetricsWith(prometheus.DefaultRegisterer)
}

// NewWorkerMetricsWith registers with reg, so tests can use a private registry.
func NewWorkerMetricsWith(reg prometheus.Registerer) *WorkerMetrics {
	f := promauto.With(reg)
	return &WorkerMetrics{
		ConfigMetrics: config.NewConfigMetricsWith(reg, "retention"),

		JobRunsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "retention_job_runs_total",
			Help: "Total number of retention job runs by status",
		}, []string{"status"}),

		JobDurationSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "retention_job_duration_seconds",
			Help:    "Duration of retention job execution in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 30, 60, 300, 600},
		}),

		AnalysesPurgedTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "retention_analyses_purged_total",
			Help: "Total number of archived analyses deleted by the retention job",
		}),

		JobLastSuccessTimestamp: f.NewGauge(prometheus.GaugeOpts{
			Name: "retention_job_last_success_timestamp",
			Help: "Unix timestamp of the last successful retention job run",
		}),
	}
}

// RecordJobRun counts a run transition. status is "started", "success" or
// "failure"; every run records "started" and exactly one outcome.
func (m *WorkerMetrics) RecordJobRun(status string) {
	m.JobRunsTotal.WithLabelValues(status).Inc()
}

func (m *WorkerMetrics) RecordJobDuration(seconds float64) {
	m.JobDurationSeconds.Observe(seconds)
}

func (m *WorkerMetrics) RecordPurged(count int64) {
	m.AnalysesPurgedTotal.Add(float64(count))
}

// RecordLastSuccess stamps the current time. Alert on
// time() - retention_job_last_success_timestamp exceeding two schedule periods.
func (m *WorkerMetrics) RecordLastSuccess() {
	m.JobLastSuccessTimestamp.SetToCurrentTime()
}
