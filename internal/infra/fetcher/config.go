package fetcher

import (
	"fmt"
	"time"

	pkgconfig "stringlang/pkg/config"
)

// ContentFetchConfig controls outbound HTTP for article and feed fetching.
type ContentFetchConfig struct {
	// Timeout bounds a single HTTP request, body included.
	// Default: 10s
	Timeout time.Duration

	// MaxBodySize is enforced while reading, not from Content-Length.
	// Default: 10485760 (10MB)
	MaxBodySize int64

	// MaxRedirects is the number of redirects to follow. Each target is
	// validated again.
	// Default: 5
	MaxRedirects int

	// DenyPrivateIPs rejects hosts that resolve to private, loopback or
	// link-local addresses, both before the request and at dial time.
	// Should always be true in production.
	// Default: true
	DenyPrivateIPs bool

	// UserAgent is sent with every request.
	// Default: "StringlangBot/1.0"
	UserAgent string
}

// DefaultConfig returns safe production defaults: 10s timeout, 10MB body cap,
// 5 redirects, private addresses denied.
func DefaultConfig() ContentFetchConfig {
	return ContentFetchConfig{
		Timeout:        10 * time.Second,
		MaxBodySize:    10 * 1024 * 1024, // 10MB
		MaxRedirects:   5,
		DenyPrivateIPs: true,
		UserAgent:      "StringlangBot/1.0",
	}
}

// Validate checks if the configuration values are valid and safe.
//
// Validation rules:
//   - Timeout: must be positive
//   - MaxBodySize: 1KB to 100MB
//   - MaxRedirects: 0 to 10
//   - UserAgent: must not be empty
//
// Returns:
//   - error: nil if valid, descriptive error otherwise
func (c *ContentFetchConfig) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}

	minBodySize := int64(1024)              // 1KB
	maxBodySize := int64(100 * 1024 * 1024) // 100MB
	if c.MaxBodySize < minBodySize || c.MaxBodySize > maxBodySize {
		return fmt.Errorf("max body size must be between %d and %d bytes, got %d", minBodySize, maxBodySize, c.MaxBodySize)
	}

	if c.MaxRedirects < 0 || c.MaxRedirects > 10 {
		return fmt.Errorf("max redirects must be between 0 and 10, got %d", c.MaxRedirects)
	}

	if c.UserAgent == "" {
		return fmt.Errorf("user agent cannot be empty")
	}

	return nil
}

// LoadConfigFromEnv loads configuration from environment variables and
// validates it. Unparseable values fall back to the defaults.
//
// Environment variables:
//   - CONTENT_FETCH_TIMEOUT: duration string, e.g., "10s" (default: 10s)
//   - CONTENT_FETCH_MAX_BODY_SIZE: integer in bytes (default: 10485760)
//   - CONTENT_FETCH_MAX_REDIRECTS: integer (default: 5)
//   - CONTENT_FETCH_DENY_PRIVATE_IPS: "true" or "false" (default: true)
//   - CONTENT_FETCH_USER_AGENT: string (default: "StringlangBot/1.0")
func LoadConfigFromEnv() (ContentFetchConfig, error) {
	def := DefaultConfig()
	cfg := ContentFetchConfig{
		Timeout:        pkgconfig.GetEnvDuration("CONTENT_FETCH_TIMEOUT", def.Timeout),
		MaxBodySize:    pkgconfig.GetEnvInt64("CONTENT_FETCH_MAX_BODY_SIZE", def.MaxBodySize),
		MaxRedirects:   pkgconfig.GetEnvInt("CONTENT_FETCH_MAX_REDIRECTS", def.MaxRedirects),
		DenyPrivateIPs: pkgconfig.GetEnvBool("CONTENT_FETCH_DENY_PRIVATE_IPS", def.DenyPrivateIPs),
		UserAgent:      pkgconfig.GetEnvString("CONTENT_FETCH_USER_AGENT", def.UserAgent),
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid content fetch configuration: %w", err)
	}
	return cfg, nil
}
