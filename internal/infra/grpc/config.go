package grpc

import (
	"fmt"
	"time"

	pkgconfig "stringlang/pkg/config"
)

// ClientConfig configures the connection to a remote Analyzer service.
type ClientConfig struct {
	// Address of the server, e.g. "localhost:9090".
	Address string
	// ConnectTimeout bounds the initial connection. Default: 5s
	ConnectTimeout time.Duration
	// CallTimeout bounds every call. Default: 10s
	CallTimeout time.Duration
	// CircuitBreaker guards every call. See BreakerConfig.
	CircuitBreaker BreakerConfig
}

// BreakerConfig trips the client breaker once FailureThreshold of at least
// MinRequests calls in Interval have failed.
type BreakerConfig struct {
	// MaxRequests allowed through while half-open. Default: 3
	MaxRequests uint32
	// Interval after which closed-state counts reset. Default: 60s
	Interval time.Duration
	// Timeout before an open breaker goes half-open. Default: 30s
	Timeout time.Duration
	// MinRequests before the failure ratio is considered. Default: 5
	MinRequests uint32
	// FailureThreshold is the failure ratio in (0, 1] that trips. Default: 0.6
	FailureThreshold float64
}

// DefaultClientConfig returns the defaults for a client of address.
func DefaultClientConfig(address string) ClientConfig {
	return ClientConfig{
		Address:        address,
		ConnectTimeout: 5 * time.Second,
		CallTimeout:    10 * time.Second,
		CircuitBreaker: BreakerConfig{
			MaxRequests:      3,
			Interval:         60 * time.Second,
			Timeout:          30 * time.Second,
			MinRequests:      5,
			FailureThreshold: 0.6,
		},
	}
}

// LoadClientConfig reads ANALYZER_CONNECT_TIMEOUT and ANALYZER_CALL_TIMEOUT
// on top of the defaults for address.
func LoadClientConfig(address string) (ClientConfig, error) {
	cfg := DefaultClientConfig(address)
	cfg.ConnectTimeout = pkgconfig.GetEnvDuration("ANALYZER_CONNECT_TIMEOUT", cfg.ConnectTimeout)
	cfg.CallTimeout = pkgconfig.GetEnvDuration("ANALYZER_CALL_TIMEOUT", cfg.CallTimeout)
	return cfg, cfg.Validate()
}

// Validate checks that the address is set, that both timeouts are positive
// and that the failure threshold is a ratio in (0, 1].
func (c ClientConfig) Validate() error {
	if c.Address == "" {
		return fmt.Errorf("analyzer address is required")
	}
	if err := pkgconfig.ValidatePositiveDuration(c.ConnectTimeout); err != nil {
		return fmt.Errorf("ANALYZER_CONNECT_TIMEOUT: %w", err)
	}
	if err := pkgconfig.ValidatePositiveDuration(c.CallTimeout); err != nil {
		return fmt.Errorf("ANALYZER_CALL_TIMEOUT: %w", err)
	}
	if c.CircuitBreaker.FailureThreshold <= 0 || c.CircuitBreaker.FailureThreshold > 1 {
		return fmt.Errorf("circuit breaker failure threshold must be in (0, 1]")
	}
	return nil
}
