// Package ratelimit implements keyed token-bucket rate limiting on top of
// golang.org/x/time/rate. Each key (an IP address, a user) gets its own
// bucket; idle buckets are evicted so memory stays bounded.
package ratelimit

import (
	"errors"
	"fmt"
	"time"
)

// Config describes one keyed limiter.
//
// A key receives Limit tokens per Window, refilled continuously, and may hold
// up to Burst tokens at once. With the defaults a client can send 100
// requests at once and then about one request every 600ms.
//
// Example:
//
//	cfg := ratelimit.Config{Limit: 5, Window: time.Minute}
//	limiter, err := ratelimit.New("auth", cfg)
type Config struct {
	// Limit is the number of requests a key may make per Window.
	Limit int
	// Window is the refill period for Limit tokens.
	Window time.Duration
	// Burst is the bucket size. Zero means Limit.
	Burst int
	// MaxKeys caps the number of tracked keys. The least recently seen key is
	// evicted when the cap is reached. Zero means unbounded.
	MaxKeys int
	// IdleTTL is how long an unused bucket is kept before Cleanup drops it.
	IdleTTL time.Duration
}

// DefaultConfig allows 100 requests per minute per key and tracks at most
// 10,000 keys, each kept for 10 minutes after its last request.
func DefaultConfig() Config {
	return Config{
		Limit:   100,
		Window:  time.Minute,
		MaxKeys: 10000,
		IdleTTL: 10 * time.Minute,
	}
}

// Validate checks that the limiter can be built from c.
//
// Returns:
//   - error: nil if valid, otherwise every problem joined with errors.Join
func (c Config) Validate() error {
	var errs []error
	if c.Limit <= 0 {
		errs = append(errs, fmt.Errorf("limit must be positive, got %d", c.Limit))
	}
	if c.Window <= 0 {
		errs = append(errs, fmt.Errorf("window must be positive, got %v", c.Window))
	}
	if c.Burst < 0 {
		errs = append(errs, fmt.Errorf("burst cannot be negative, got %d", c.Burst))
	}
	if c.MaxKeys < 0 {
		errs = append(errs, fmt.Errorf("max keys cannot be negative, got %d", c.MaxKeys))
	}
	if c.IdleTTL < 0 {
		errs = append(errs, fmt.Errorf("idle ttl cannot be negative, got %v", c.IdleTTL))
	}
	return errors.Join(errs...)
}

func (c Config) burst() int {
	if c.Burst > 0 {
		return c.Burst
	}
	return c.Limit
}
