package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "default", mutate: func(*Config) {}},
		{name: "zero limit", mutate: func(c *Config) { c.Limit = 0 }, wantErr: "limit must be positive"},
		{name: "zero window", mutate: func(c *Config) { c.Window = 0 }, wantErr: "window must be positive"},
		{name: "negative burst", mutate: func(c *Config) { c.Burst = -1 }, wantErr: "burst cannot be negative"},
		{name: "negative keys", mutate: func(c *Config) { c.MaxKeys = -1 }, wantErr: "max keys cannot be negative"},
		{name: "negative ttl", mutate: func(c *Config) { c.IdleTTL = -time.Second }, wantErr: "idle ttl cannot be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestKeyedLimiter_Allow(t *testing.T) {
	clock := newFakeClock()
	l, err := New("ip", Config{Limit: 2, Window: time.Second}, WithClock(clock.Now))
	require.NoError(t, err)

	d := l.Allow("10.0.0.1")
	assert.True(t, d.Allowed)
	assert.Equal(t, 2, d.Limit)
	assert.Equal(t, 1, d.Remaining)
	assert.Equal(t, clock.Now().Add(500*time.Millisecond), d.ResetAt)

	d = l.Allow("10.0.0.1")
	assert.True(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)

	d = l.Allow("10.0.0.1")
	assert.False(t, d.Allowed)
	assert.Equal(t, 500*time.Millisecond, d.RetryAfter)
	assert.Equal(t, 1, d.RetryAfterSeconds())

	// other keys have their own bucket
	assert.True(t, l.Allow("10.0.0.2").Allowed)

	clock.Advance(500 * time.Millisecond)
	assert.True(t, l.Allow("10.0.0.1").Allowed)
}

func TestKeyedLimiter_DeniedRequestsDoNotConsume(t *testing.T) {
	clock := newFakeClock()
	l, err := New("ip", Config{Limit: 1, Window: time.Second}, WithClock(clock.Now))
	require.NoError(t, err)

	require.True(t, l.Allow("k").Allowed)
	for i := 0; i < 5; i++ {
		assert.False(t, l.Allow("k").Allowed)
	}
	clock.Advance(time.Second)
	assert.True(t, l.Allow("k").Allowed)
}

func TestKeyedLimiter_MaxKeysEvictsOldest(t *testing.T) {
	clock := newFakeClock()
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg)
	l, err := New("ip", Config{Limit: 5, Window: time.Minute, MaxKeys: 2}, WithClock(clock.Now), WithMetrics(m))
	require.NoError(t, err)

	l.Allow("a")
	clock.Advance(time.Second)
	l.Allow("b")
	clock.Advance(time.Second)
	l.Allow("c")

	assert.Equal(t, 2, l.Len())
	assert.Equal(t, float64(1), testutil.ToFloat64(m.evictions.WithLabelValues("ip")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.requests.WithLabelValues("ip", "allowed")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.activeKeys.WithLabelValues("ip")))
}

func TestKeyedLimiter_Cleanup(t *testing.T) {
	clock := newFakeClock()
	l, err := New("ip", Config{Limit: 5, Window: time.Minute, IdleTTL: time.Minute}, WithClock(clock.Now))
	require.NoError(t, err)

	l.Allow("old")
	clock.Advance(2 * time.Minute)
	l.Allow("fresh")

	assert.Equal(t, 1, l.Cleanup())
	assert.Equal(t, 1, l.Len())
}

func TestKeyedLimiter_Concurrent(t *testing.T) {
	clock := newFakeClock()
	l, err := New("ip", Config{Limit: 50, Window: time.Hour}, WithClock(clock.Now))
	require.NoError(t, err)

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow("shared").Allowed {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, allowed)
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New("ip", Config{})
	assert.Error(t, err)
}

func TestDecision_String(t *testing.T) {
	d := Decision{Key: "1.2.3.4", Allowed: true, Limit: 10, Remaining: 3}
	assert.Equal(t, "allowed 1.2.3.4 (3/10 remaining)", d.String())

	d = Decision{Key: "1.2.3.4", RetryAfter: 1500 * time.Millisecond}
	assert.Equal(t, fmt.Sprintf("denied 1.2.3.4 (retry after %s)", 1500*time.Millisecond), d.String())
	assert.Equal(t, 2, d.RetryAfterSeconds())
}
