// Package worker holds the building blocks of the archive retention worker:
// configuration, metrics, the health server and the purge job itself.
package worker

import (
	"fmt"
	"log/slog"
	"time"

	"stringlang/internal/pkg/config"
)

// WorkerConfig controls when the retention job runs and what it deletes.
//
// Configuration sources:
//   - Environment variables (loaded via LoadConfigFromEnv)
//   - Default values (provided by DefaultConfig)
//
// LoadConfigFromEnv never fails: a variable that does not parse or validate
// is replaced by its default, logged, and counted in the config metrics.
//
// Example usage:
//
//	metrics := worker.NewWorkerMetrics()
//	cfg := worker.LoadConfigFromEnv(logger, metrics)
//	c := cron.New(cron.WithLocation(cfg.Location()))
//	_, err := c.AddFunc(cfg.CronSchedule, func() { job.Run(ctx) })
type WorkerConfig struct {
	// CronSchedule is a five-field cron expression.
	// Default: "0 3 * * *" (every day at 03:00)
	CronSchedule string

	// Timezone is the IANA name the schedule is evaluated in.
	// Default: "UTC"
	Timezone string

	// MaxAge is how long an archived analysis is kept. Records created before
	// now-MaxAge are purged.
	// Range: 1h-87600h (10 years)
	// Default: 720h (30 days)
	MaxAge time.Duration

	// JobTimeout bounds a single purge run.
	// Range: 10s-1h
	// Default: 10m
	JobTimeout time.Duration

	// HealthPort serves /health, /health/ready and /metrics.
	// Range: 1024-65535
	// Default: 9091
	HealthPort int
}

// DefaultConfig returns the defaults documented on each WorkerConfig field.
func DefaultConfig() WorkerConfig {
	return WorkerConfig{
		CronSchedule: "0 3 * * *",
		Timezone:     "UTC",
		MaxAge:       30 * 24 * time.Hour,
		JobTimeout:   10 * time.Minute,
		HealthPort:   9091,
	}
}

// Validate checks every field against its documented range.
//
// Returns:
//   - error: nil if valid, otherwise one error listing every invalid field
func (c *WorkerConfig) Validate() error {
	var errs []error

	if err := config.ValidateCronSchedule(c.CronSchedule); err != nil {
		errs = append(errs, fmt.Errorf("cron schedule: %w", err))
	}
	if err := config.ValidateTimezone(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone: %w", err))
	}
	if err := validateMaxAge(c.MaxAge); err != nil {
		errs = append(errs, fmt.Errorf("max age: %w", err))
	}
	if err := validateJobTimeout(c.JobTimeout); err != nil {
		errs = append(errs, fmt.Errorf("job timeout: %w", err))
	}
	if err := validatePort(c.HealthPort); err != nil {
		errs = append(errs, fmt.Errorf("health port: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed: %v", errs)
	}
	return nil
}

// Location returns the schedule's time zone, or UTC if it cannot be loaded.
func (c *WorkerConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func validateMaxAge(d time.Duration) error {
	return config.ValidateDuration(d, time.Hour, 87600*time.Hour)
}

func validateJobTimeout(d time.Duration) error {
	return config.ValidateDuration(d, 10*time.Second, time.Hour)
}

func validatePort(p int) error {
	return config.ValidateIntRange(p, 1024, 65535)
}

// LoadConfigFromEnv reads the worker configuration.
//
// Environment variables:
//   - RETENTION_CRON: cron expression (default: "0 3 * * *")
//   - WORKER_TIMEZONE: IANA timezone name (default: "UTC")
//   - RETENTION_MAX_AGE: duration, e.g. "168h" (default: 720h)
//   - RETENTION_TIMEOUT: duration (default: 10m)
//   - WORKER_HEALTH_PORT: integer 1024-65535 (default: 9091)
func LoadConfigFromEnv(logger *slog.Logger, metrics *WorkerMetrics) *WorkerConfig {
	cfg := DefaultConfig()
	fallbackApplied := false

	report := func(field, envKey string, applied bool, warnings []string) {
		if !applied {
			return
		}
		fallbackApplied = true
		metrics.RecordValidationError(field)
		metrics.RecordFallback(field, "default")
		for _, warning := range warnings {
			logger.Warn("Configuration fallback applied",
				slog.String("field", field),
				slog.String("env_key", envKey),
				slog.String("warning", warning))
		}
	}

	cron := config.LoadEnvWithFallback("RETENTION_CRON", cfg.CronSchedule, config.ValidateCronSchedule)
	cfg.CronSchedule = cron.Value
	report("cron_schedule", "RETENTION_CRON", cron.FallbackApplied, cron.Warnings)

	tz := config.LoadEnvWithFallback("WORKER_TIMEZONE", cfg.Timezone, config.ValidateTimezone)
	cfg.Timezone = tz.Value
	report("timezone", "WORKER_TIMEZONE", tz.FallbackApplied, tz.Warnings)

	maxAge := config.LoadEnvDuration("RETENTION_MAX_AGE", cfg.MaxAge, validateMaxAge)
	cfg.MaxAge = maxAge.Value
	report("max_age", "RETENTION_MAX_AGE", maxAge.FallbackApplied, maxAge.Warnings)

	timeout := config.LoadEnvDuration("RETENTION_TIMEOUT", cfg.JobTimeout, validateJobTimeout)
	cfg.JobTimeout = timeout.Value
	report("job_timeout", "RETENTION_TIMEOUT", timeout.FallbackApplied, timeout.Warnings)

	port := config.LoadEnvInt("WORKER_HEALTH_PORT", cfg.HealthPort, validatePort)
	cfg.HealthPort = port.Value
	report("health_port", "WORKER_HEALTH_PORT", port.FallbackApplied, port.Warnings)

	metrics.SetFallbackActive(fallbackApplied)
	metrics.RecordLoadTimestamp()
	return &cfg
}
