package config

import (
	"log/slog"
	"time"

	"stringlang/pkg/ratelimit"
)

// RateLimitSettings configures the API limiters: one keyed by client IP for
// every route, one keyed by JWT subject for the archive routes.
//
// The token endpoint has its own fixed limiter and is not configured here.
type RateLimitSettings struct {
	// Enabled turns the IP and user limiters on. Default: true
	Enabled bool

	// Limiter is the per-IP bucket applied to every request.
	// Default: 100 requests per minute
	Limiter ratelimit.Config

	// User is the per-subject bucket applied to archive routes.
	// Default: 1000 requests per hour
	User ratelimit.Config

	// CleanupInterval is how often idle buckets are dropped.
	// Default: 5 minutes
	CleanupInterval time.Duration
}

// LoadRateLimitConfig reads the per-IP limiter settings:
//
//	RATELIMIT_ENABLED           (default true)
//	RATELIMIT_IP_LIMIT          requests per window (default 100)
//	RATELIMIT_IP_WINDOW         (default 1m)
//	RATELIMIT_IP_BURST          bucket size (default = limit)
//	RATELIMIT_MAX_KEYS          (default 10000)
//	RATELIMIT_IDLE_TTL          (default 10m)
//	RATELIMIT_USER_LIMIT        requests per user window (default 1000)
//	RATELIMIT_USER_WINDOW       (default 1h)
//	RATELIMIT_CLEANUP_INTERVAL  (default 5m)
//
// Invalid values are logged and replaced with their defaults.
func LoadRateLimitConfig() RateLimitSettings {
	def := ratelimit.DefaultConfig()
	s := RateLimitSettings{
		Enabled: GetEnvBool("RATELIMIT_ENABLED", true),
		Limiter: ratelimit.Config{
			Limit:   positiveInt("RATELIMIT_IP_LIMIT", def.Limit),
			Window:  positiveDuration("RATELIMIT_IP_WINDOW", def.Window),
			Burst:   GetEnvInt("RATELIMIT_IP_BURST", 0),
			MaxKeys: positiveInt("RATELIMIT_MAX_KEYS", def.MaxKeys),
			IdleTTL: positiveDuration("RATELIMIT_IDLE_TTL", def.IdleTTL),
		},
		User: ratelimit.Config{
			Limit:   positiveInt("RATELIMIT_USER_LIMIT", 1000),
			Window:  positiveDuration("RATELIMIT_USER_WINDOW", time.Hour),
			MaxKeys: positiveInt("RATELIMIT_MAX_KEYS", def.MaxKeys),
			IdleTTL: positiveDuration("RATELIMIT_IDLE_TTL", def.IdleTTL),
		},
		CleanupInterval: positiveDuration("RATELIMIT_CLEANUP_INTERVAL", 5*time.Minute),
	}
	if s.Limiter.Burst < 0 {
		slog.Warn("invalid RATELIMIT_IP_BURST, using limit", slog.Int("value", s.Limiter.Burst))
		s.Limiter.Burst = 0
	}
	return s
}

func positiveInt(key string, def int) int {
	v := GetEnvInt(key, def)
	if v <= 0 {
		slog.Warn("non-positive value for environment variable, using default",
			slog.String("key", key),
			slog.Int("value", v),
			slog.Int("default", def))
		return def
	}
	return v
}

func positiveDuration(key string, def time.Duration) time.Duration {
	v := GetEnvDuration(key, def)
	if err := ValidatePositiveDuration(v); err != nil {
		slog.Warn("non-positive value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", v.String()),
			slog.String("default", def.String()))
		return def
	}
	return v
}
