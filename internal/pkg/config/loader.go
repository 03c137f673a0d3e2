// Package config loads validated settings from the environment. A value that
// fails to parse or validate is replaced by its default and reported as a
// warning, so a bad variable degrades a component instead of stopping it.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ConfigLoadResult is the outcome of loading one variable.
//
// The loader never returns an error. Callers inspect Warnings and
// FallbackApplied to log the problem and record it in ConfigMetrics:
//
//	res := LoadEnvWithFallback("RETENTION_CRON", "0 3 * * *", ValidateCronSchedule)
//	for _, w := range res.Warnings {
//	    logger.Warn("configuration fallback", slog.String("warning", w))
//	}
//	if res.FallbackApplied {
//	    metrics.RecordFallback("cron_schedule", "default")
//	}
type ConfigLoadResult[T any] struct {
	Value T
	// Warnings explain why the default was used. Empty when the variable was
	// unset or valid.
	Warnings []string
	// FallbackApplied is true when the variable was set but rejected.
	FallbackApplied bool
}

// LoadEnv reads envKey, parses it and validates it, falling back to
// defaultValue on any failure.
//
// Behavior:
//   - Unset or blank variable: defaultValue, no warning
//   - Parse error: defaultValue, one warning, FallbackApplied = true
//   - Validation error: defaultValue, one warning, FallbackApplied = true
//   - Otherwise: the parsed value
//
// Parameters:
//   - envKey: Environment variable name
//   - defaultValue: Value used when the variable is unset or rejected
//   - parse: Converts the trimmed raw string to T
//   - validator: Checks the parsed value; nil accepts every value
//
// Returns:
//   - ConfigLoadResult[T]: The value plus any warnings
//
// Warnings have the form
//
//	Invalid RETENTION_CRON='61 * * * *': ..., falling back to default '0 3 * * *'
//
// Example:
//
//	ratio := LoadEnv("TRACING_SAMPLE_RATIO", 1.0,
//	    func(s string) (float64, error) { return strconv.ParseFloat(s, 64) },
//	    nil)
func LoadEnv[T any](envKey string, defaultValue T, parse func(string) (T, error), validator func(T) error) ConfigLoadResult[T] {
	raw := strings.TrimSpace(os.Getenv(envKey))
	if raw == "" {
		return ConfigLoadResult[T]{Value: defaultValue}
	}

	fallback := func(err error) ConfigLoadResult[T] {
		return ConfigLoadResult[T]{
			Value: defaultValue,
			Warnings: []string{fmt.Sprintf("Invalid %s='%s': %v, falling back to default '%v'",
				envKey, raw, err, defaultValue)},
			FallbackApplied: true,
		}
	}

	value, err := parse(raw)
	if err != nil {
		return fallback(err)
	}
	if validator != nil {
		if err := validator(value); err != nil {
			return fallback(err)
		}
	}
	return ConfigLoadResult[T]{Value: value}
}

// LoadEnvWithFallback loads a string checked by validator.
func LoadEnvWithFallback(envKey, defaultValue string, validator func(string) error) ConfigLoadResult[string] {
	return LoadEnv(envKey, defaultValue, func(s string) (string, error) { return s, nil }, validator)
}

// LoadEnvDuration loads a time.ParseDuration value checked by validator.
func LoadEnvDuration(envKey string, defaultValue time.Duration, validator func(time.Duration) error) ConfigLoadResult[time.Duration] {
	return LoadEnv(envKey, defaultValue, time.ParseDuration, validator)
}

// LoadEnvInt loads a base-10 integer checked by validator.
func LoadEnvInt(envKey string, defaultValue int, validator func(int) error) ConfigLoadResult[int] {
	return LoadEnv(envKey, defaultValue, strconv.Atoi, validator)
}
