package slo

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestTracker_Flush(t *testing.T) {
	tr := NewTracker()
	for i := 1; i <= 100; i++ {
		status := 200
		if i <= 2 {
			status = 503
		}
		tr.Observe(status, time.Duration(i)*time.Millisecond)
	}

	s := tr.Flush()
	assert.Equal(t, 100, s.Requests)
	assert.Equal(t, 2, s.Errors)
	assert.InDelta(t, 0.98, s.Availability, 1e-9)
	assert.InDelta(t, 0.02, s.ErrorRate, 1e-9)
	assert.Equal(t, 95*time.Millisecond, s.P95)
	assert.Equal(t, 99*time.Millisecond, s.P99)

	assert.InDelta(t, 0.98, testutil.ToFloat64(SLOAvailability), 1e-9)
	assert.InDelta(t, 0.095, testutil.ToFloat64(SLOLatencyP95), 1e-9)
}

func TestTracker_EmptyWindow(t *testing.T) {
	tr := NewTracker()
	tr.Observe(500, time.Second)
	tr.Flush()

	s := tr.Flush()
	assert.Equal(t, 0, s.Requests)
	assert.Equal(t, 1.0, s.Availability)
	assert.Zero(t, s.P99)
}

func TestTracker_SampleCap(t *testing.T) {
	tr := NewTracker()
	for i := 0; i < maxSamples+10; i++ {
		tr.Observe(200, time.Millisecond)
	}
	assert.Len(t, tr.samples, maxSamples)
	assert.Equal(t, maxSamples+10, tr.Flush().Requests)
}

func TestTracker_RunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewTracker().Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
