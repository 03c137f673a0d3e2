package worker

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newTestMetrics(t *testing.T) *WorkerMetrics {
	t.Helper()
	return NewWorkerMetricsWith(prometheus.NewRegistry())
}

func TestNewWorkerMetricsWith(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewWorkerMetricsWith(reg)

	if metrics.ConfigMetrics == nil {
		t.Error("ConfigMetrics is nil")
	}

	// Touch the vector so it is exported.
	metrics.RecordJobRun("started")

	count, err := testutil.GatherAndCount(reg,
		"retention_job_runs_total",
		"retention_job_duration_seconds",
		"retention_analyses_purged_total",
		"retention_job_last_success_timestamp",
		"retention_config_load_timestamp",
		"retention_config_fallback_active",
	)
	if err != nil {
		t.Fatalf("GatherAndCount() error = %v", err)
	}
	if count != 6 {
		t.Errorf("expected 6 metric series, got %d", count)
	}
}

func TestWorkerMetrics_RecordJobRun(t *testing.T) {
	metrics := newTestMetrics(t)

	metrics.RecordJobRun("success")
	metrics.RecordJobRun("success")
	metrics.RecordJobRun("failure")

	if got := testutil.ToFloat64(metrics.JobRunsTotal.WithLabelValues("success")); got != 2 {
		t.Errorf("expected 2 successful runs, got %f", got)
	}
	if got := testutil.ToFloat64(metrics.JobRunsTotal.WithLabelValues("failure")); got != 1 {
		t.Errorf("expected 1 failed run, got %f", got)
	}
}

func TestWorkerMetrics_RecordPurged(t *testing.T) {
	metrics := newTestMetrics(t)

	metrics.RecordPurged(5)
	metrics.RecordPurged(0)
	metrics.RecordPurged(17)

	if got := testutil.ToFloat64(metrics.AnalysesPurgedTotal); got != 22 {
		t.Errorf("expected 22 purged analyses, got %f", got)
	}
}

func TestWorkerMetrics_RecordDurationAndLastSuccess(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewWorkerMetricsWith(reg)

	metrics.RecordJobDuration(0.3)
	metrics.RecordJobDuration(12)
	metrics.RecordLastSuccess()

	if got := testutil.CollectAndCount(metrics.JobDurationSeconds); got != 1 {
		t.Errorf("expected one histogram series, got %d", got)
	}
	if got := testutil.ToFloat64(metrics.JobLastSuccessTimestamp); got <= 0 {
		t.Errorf("expected positive last success timestamp, got %f", got)
	}
}

func TestWorkerMetrics_ConcurrentAccess(t *testing.T) {
	metrics := newTestMetrics(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			metrics.RecordJobRun("success")
			metrics.RecordJobDuration(1.0)
			metrics.RecordPurged(1)
			metrics.RecordLastSuccess()
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(metrics.JobRunsTotal.WithLabelValues("success")); got != 10 {
		t.Errorf("expected 10 successful runs, got %f", got)
	}
	if got := testutil.ToFloat64(metrics.AnalysesPurgedTotal); got != 10 {
		t.Errorf("expected 10 purged analyses, got %f", got)
	}
}
