// Package config reads typed values from environment variables. Malformed
// values never fail start-up: they are logged and the default is used.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// GetEnvString returns the value of an environment variable or the default value if not set.
//
// Surrounding whitespace is trimmed, so a variable holding only blanks counts
// as unset. No warning is logged.
//
// Parameters:
//   - key: Environment variable name
//   - defaultValue: Value to return if the variable is not set or empty
//
// Returns:
//   - string: The trimmed value or defaultValue
//
// Example:
//
//	path := GetEnvString("PROFILES_PATH", "")
func GetEnvString(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvInt returns the value of an environment variable as an integer.
//
// If the variable is not set, empty, or not a base-10 integer, defaultValue is
// returned. A malformed value is logged as a warning.
//
// Parameters:
//   - key: Environment variable name
//   - defaultValue: Value to return on error or if not set
//
// Returns:
//   - int: The parsed value or defaultValue
//
// Example:
//
//	maxRunes := GetEnvInt("ANALYSIS_MAX_RUNES", 1_000_000)
func GetEnvInt(key string, defaultValue int) int {
	valueStr := strings.TrimSpace(os.Getenv(key))
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		slog.Warn("invalid integer value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.Int("default", defaultValue))
		return defaultValue
	}
	return value
}

// GetEnvInt64 is GetEnvInt for values that may not fit in an int, such as
// byte limits.
func GetEnvInt64(key string, defaultValue int64) int64 {
	valueStr := strings.TrimSpace(os.Getenv(key))
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		slog.Warn("invalid integer value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.Int64("default", defaultValue))
		return defaultValue
	}
	return value
}

// GetEnvBool returns the value of an environment variable as a boolean.
//
// Accepted true values: "1", "t", "T", "true", "TRUE", "True"
// Accepted false values: "0", "f", "F", "false", "FALSE", "False"
//
// If the variable is not set, empty, or has an invalid value, defaultValue is
// returned and a malformed value is logged as a warning.
//
// Parameters:
//   - key: Environment variable name
//   - defaultValue: Value to return on error or if not set
//
// Returns:
//   - bool: The parsed value or defaultValue
//
// Example:
//
//	fetch := GetEnvBool("FETCH_ENABLED", true)
func GetEnvBool(key string, defaultValue bool) bool {
	valueStr := strings.TrimSpace(os.Getenv(key))
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		slog.Warn("invalid boolean value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.Bool("default", defaultValue))
		return defaultValue
	}
	return value
}

// GetEnvDuration returns the value of an environment variable as a time.Duration.
//
// The value uses time.ParseDuration syntax ("300ms", "30s", "1h30m"). A
// malformed value is logged as a warning and defaultValue is returned.
//
// Parameters:
//   - key: Environment variable name
//   - defaultValue: Value to return on error or if not set
//
// Returns:
//   - time.Duration: The parsed duration or defaultValue
//
// Example:
//
//	timeout := GetEnvDuration("HTTP_REQUEST_TIMEOUT", 30*time.Second)
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := strings.TrimSpace(os.Getenv(key))
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		slog.Warn("invalid duration value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.String("default", defaultValue.String()))
		return defaultValue
	}
	return value
}

// GetEnvStringList splits a comma separated variable into its items.
//
// Items are trimmed and empty items are dropped. When nothing is left the
// default is returned.
//
// Parameters:
//   - key: Environment variable name
//   - defaultValue: Value to return if the variable is not set or holds no items
//
// Returns:
//   - []string: The items in their original order, or defaultValue
//
// Example:
//
//	// RATELIMIT_TRUSTED_PROXIES="10.0.0.1, 10.0.1.0/24,,"
//	proxies := GetEnvStringList("RATELIMIT_TRUSTED_PROXIES", nil)
//	// proxies == []string{"10.0.0.1", "10.0.1.0/24"}
func GetEnvStringList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if strings.TrimSpace(valueStr) == "" {
		return defaultValue
	}

	parts := strings.Split(valueStr, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}
