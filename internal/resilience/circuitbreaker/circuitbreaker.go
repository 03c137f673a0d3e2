// Package circuitbreaker wraps sony/gobreaker with the settings used for the
// archive database and the outbound fetchers.
package circuitbreaker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"stringlang/internal/observability/metrics"
)

// Config holds the circuit breaker settings.
//
// State machine:
//   - Closed: calls pass; after MinRequests calls in an Interval, a failure
//     ratio >= FailureThreshold opens the breaker
//   - Open: calls fail with gobreaker.ErrOpenState for Timeout
//   - Half-open: up to MaxRequests trial calls; one failure reopens, all
//     succeeding closes
type Config struct {
	Name string
	// MaxRequests is the number of trial calls allowed while half-open.
	MaxRequests uint32
	// Interval clears the closed-state counts; zero never clears.
	Interval time.Duration
	// Timeout is how long the breaker stays open.
	Timeout time.Duration
	// FailureThreshold is the failure ratio (0-1) that opens the breaker.
	FailureThreshold float64
	// MinRequests is the sample size needed before the ratio is considered.
	MinRequests uint32
}

// DefaultConfig returns general purpose settings.
//
// Parameters:
//   - name: Breaker name for logs and the state metric
//
// Returns:
//   - Config: 60% failures over at least 5 calls open the breaker for 60s
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		MaxRequests:      3,
		Interval:         30 * time.Second,
		Timeout:          60 * time.Second,
		FailureThreshold: 0.6,
		MinRequests:      5,
	}
}

// FeedFetchConfig tolerates more failures since feeds are flaky: 70% over at
// least 10 calls, open for 2 minutes.
func FeedFetchConfig() Config {
	return Config{
		Name:             "feed-fetch",
		MaxRequests:      5,
		Interval:         60 * time.Second,
		Timeout:          120 * time.Second,
		FailureThreshold: 0.7,
		MinRequests:      10,
	}
}

// ContentFetchConfig is for article downloads: 80% over at least 5 calls,
// open for 5 minutes so a failing site is not hammered.
func ContentFetchConfig() Config {
	return Config{
		Name:             "content-fetch",
		MaxRequests:      3,
		Interval:         60 * time.Second,
		Timeout:          5 * time.Minute,
		FailureThreshold: 0.8,
		MinRequests:      5,
	}
}

// CircuitBreaker is a named gobreaker instance. It is safe for concurrent use.
type CircuitBreaker struct {
	breaker *gobreaker.CircuitBreaker
	name    string
}

// New builds a breaker from cfg.
//
// Cancellation by the caller (context.Canceled) does not count as a failure. The
// state is exported as stringlang_circuit_breaker_state{name} (0 closed,
// 1 half-open, 2 open) and every transition is logged as a warning.
//
// Example:
//
//	cb := circuitbreaker.New(circuitbreaker.FeedFetchConfig())
//	items, err := circuitbreaker.Do(cb, func() ([]fetch.FeedItem, error) {
//	    return f.fetch(ctx, url)
//	})
//	if errors.Is(err, gobreaker.ErrOpenState) {
//	    // fail fast, the feed host is down
//	}
func New(cfg Config) *CircuitBreaker {
	metrics.CircuitBreakerState.WithLabelValues(cfg.Name).Set(float64(gobreaker.StateClosed))
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			slog.Warn("circuit breaker state changed",
				slog.String("circuit", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
			metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
		},
		IsSuccessful: isSuccessful,
	}

	return &CircuitBreaker{
		breaker: gobreaker.NewCircuitBreaker(settings),
		name:    cfg.Name,
	}
}

func isSuccessful(err error) bool {
	return err == nil || errors.Is(err, context.Canceled)
}

// Execute runs fn through the breaker with an untyped result.
func (cb *CircuitBreaker) Execute(fn func() (interface{}, error)) (interface{}, error) {
	return cb.breaker.Execute(fn)
}

// Do is Execute with a typed result.
func Do[T any](cb *CircuitBreaker, fn func() (T, error)) (T, error) {
	v, err := cb.breaker.Execute(func() (interface{}, error) { return fn() })
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

func (cb *CircuitBreaker) State() gobreaker.State {
	return cb.breaker.State()
}

func (cb *CircuitBreaker) Name() string {
	return cb.name
}

// IsOpen reports whether calls are currently rejected. Health checks use it to
// report degraded dependencies.
func (cb *CircuitBreaker) IsOpen() bool {
	return cb.breaker.State() == gobreaker.StateOpen
}
