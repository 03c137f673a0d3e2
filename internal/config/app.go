package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	cfgloader "stringlang/internal/pkg/config"
	pkgconfig "stringlang/pkg/config"
)

// AppConfig holds the API server settings.
type AppConfig struct {
	HTTP     HTTPConfig
	GRPC     GRPCConfig
	Analysis AnalysisConfig
	Auth     AuthConfig
	Tracing  TracingConfig

	// FetchEnabled turns on /analyze/url and /analyze/feed.
	// Default: true
	FetchEnabled bool

	// ProfilesPath points at a profiles YAML file. Empty uses the built-in set.
	ProfilesPath string
}

// HTTPConfig configures the HTTP listener.
type HTTPConfig struct {
	// Addr is the listen address. Default: ":8080"
	Addr string
	// MaxBodyBytes caps request bodies. Default: 8 MiB
	MaxBodyBytes int64
	// RequestTimeout bounds handler execution. Default: 30s
	RequestTimeout time.Duration
	// ShutdownTimeout bounds graceful shutdown. Default: 10s
	ShutdownTimeout time.Duration
}

// GRPCConfig configures the optional gRPC listener.
type GRPCConfig struct {
	// Addr is the gRPC listen address. Empty disables the gRPC server.
	Addr string
}

// AuthConfig guards the archive endpoints.
type AuthConfig struct {
	// JWTSecret signs archive tokens. Required when the archive is enabled.
	JWTSecret string
	// TokenTTL is the lifetime of issued tokens. Default: 1h
	TokenTTL time.Duration
}

// TracingConfig configures OpenTelemetry span recording.
type TracingConfig struct {
	// Enabled turns on span recording. Default: false
	Enabled bool
	// SampleRatio is the fraction of new traces recorded. Default: 1.0
	SampleRatio float64
}

// AnalysisConfig limits the work a single request may ask for.
type AnalysisConfig struct {
	// MaxRunes is the per-text code point limit. Default: 1,000,000
	MaxRunes int
	// MaxBatch is the batch size limit. Default: 100
	MaxBatch int
	// Concurrency bounds batch and feed fan-out. Default: 4
	Concurrency int
	// MaxFeedItems caps how many feed items are analyzed. Default: 50
	MaxFeedItems int
}

// LoadAppConfig loads configuration from environment variables.
// Returns a config with defaults if environment variables are not set.
//
// Environment variables:
//   - HTTP_ADDR, HTTP_MAX_BODY_BYTES, HTTP_REQUEST_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT
//   - GRPC_ADDR
//   - ANALYSIS_MAX_RUNES, ANALYSIS_MAX_BATCH, ANALYSIS_CONCURRENCY, ANALYSIS_MAX_FEED_ITEMS
//   - JWT_SECRET, JWT_TOKEN_TTL
//   - TRACING_ENABLED, TRACING_SAMPLE_RATIO
//   - FETCH_ENABLED, PROFILES_PATH
//
// Malformed values fall back to their defaults. Values that parse but are out
// of range fail Validate and are returned as an error.
func LoadAppConfig() (*AppConfig, error) {
	config := &AppConfig{
		HTTP: HTTPConfig{
			Addr:            pkgconfig.GetEnvString("HTTP_ADDR", ":8080"),
			MaxBodyBytes:    pkgconfig.GetEnvInt64("HTTP_MAX_BODY_BYTES", 8<<20),
			RequestTimeout:  pkgconfig.GetEnvDuration("HTTP_REQUEST_TIMEOUT", 30*time.Second),
			ShutdownTimeout: pkgconfig.GetEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		GRPC: GRPCConfig{
			Addr: pkgconfig.GetEnvString("GRPC_ADDR", ""),
		},
		Analysis: AnalysisConfig{
			MaxRunes:     pkgconfig.GetEnvInt("ANALYSIS_MAX_RUNES", 1_000_000),
			MaxBatch:     pkgconfig.GetEnvInt("ANALYSIS_MAX_BATCH", 100),
			Concurrency:  pkgconfig.GetEnvInt("ANALYSIS_CONCURRENCY", 4),
			MaxFeedItems: pkgconfig.GetEnvInt("ANALYSIS_MAX_FEED_ITEMS", 50),
		},
		Auth: AuthConfig{
			JWTSecret: pkgconfig.GetEnvString("JWT_SECRET", ""),
			TokenTTL:  pkgconfig.GetEnvDuration("JWT_TOKEN_TTL", time.Hour),
		},
		Tracing: TracingConfig{
			Enabled:     pkgconfig.GetEnvBool("TRACING_ENABLED", false),
			SampleRatio: loadSampleRatio(),
		},
		FetchEnabled: pkgconfig.GetEnvBool("FETCH_ENABLED", true),
		ProfilesPath: pkgconfig.GetEnvString("PROFILES_PATH", ""),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Validate checks configuration correctness.
func (c *AppConfig) Validate() error {
	if c.HTTP.Addr == "" {
		return fmt.Errorf("HTTP_ADDR cannot be empty")
	}

	if c.HTTP.MaxBodyBytes <= 0 {
		return fmt.Errorf("HTTP_MAX_BODY_BYTES must be positive")
	}

	if c.HTTP.RequestTimeout <= 0 {
		return fmt.Errorf("HTTP_REQUEST_TIMEOUT must be positive")
	}

	if c.HTTP.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive")
	}

	if c.Analysis.MaxRunes <= 0 {
		return fmt.Errorf("ANALYSIS_MAX_RUNES must be positive")
	}

	if c.Analysis.MaxBatch <= 0 || c.Analysis.MaxBatch > 10_000 {
		return fmt.Errorf("ANALYSIS_MAX_BATCH must be between 1 and 10000")
	}

	if c.Analysis.Concurrency <= 0 || c.Analysis.Concurrency > 256 {
		return fmt.Errorf("ANALYSIS_CONCURRENCY must be between 1 and 256")
	}

	if c.Analysis.MaxFeedItems <= 0 {
		return fmt.Errorf("ANALYSIS_MAX_FEED_ITEMS must be positive")
	}

	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("JWT_TOKEN_TTL must be positive")
	}

	if c.Auth.JWTSecret != "" {
		if err := ValidateJWTSecret(c.Auth.JWTSecret); err != nil {
			return err
		}
	}

	return nil
}

var weakSecrets = []string{"secret", "password", "test", "admin", "default"}

// ValidateJWTSecret requires at least 32 characters (256 bits) and rejects
// common placeholder values.
func ValidateJWTSecret(secret string) error {
	if len(secret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters (256 bits)")
	}
	for _, weak := range weakSecrets {
		if secret == weak || secret == weak+"123" {
			return fmt.Errorf("JWT_SECRET must not be a common weak value")
		}
	}
	return nil
}

// loadSampleRatio reads TRACING_SAMPLE_RATIO, falling back to 1.0 with a
// warning when it is not a number in [0, 1].
func loadSampleRatio() float64 {
	res := cfgloader.LoadEnv("TRACING_SAMPLE_RATIO", 1.0,
		func(s string) (float64, error) { return strconv.ParseFloat(s, 64) },
		func(v float64) error {
			if v < 0 || v > 1 {
				return fmt.Errorf("must be between 0 and 1")
			}
			return nil
		})
	for _, w := range res.Warnings {
		slog.Warn(w)
	}
	return res.Value
}
