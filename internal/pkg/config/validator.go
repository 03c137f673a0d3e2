package config

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ValidateCronSchedule validates a cron expression using the robfig/cron/v3 parser,
// the same parser the worker schedules with.
//
// The expression must follow the standard five-field format:
//   - "minute hour day month weekday"
//   - Example: "0 3 * * *" (every day at 3:00)
//   - Example: "*/15 * * * *" (every 15 minutes)
//   - Example: "30 2 * * 0" (Sundays at 2:30)
//
// Descriptors such as "@daily" and a leading seconds field are rejected.
//
// Parameters:
//   - schedule: Cron expression to validate
//
// Returns:
//   - error: nil if valid, descriptive error otherwise
//
// Example:
//
//	if err := ValidateCronSchedule(os.Getenv("RETENTION_CRON")); err != nil {
//	    logger.Warn("invalid retention schedule", slog.Any("error", err))
//	}
func ValidateCronSchedule(schedule string) error {
	if schedule == "" {
		return fmt.Errorf("invalid cron schedule: cannot be empty")
	}
	if _, err := cronParser.Parse(schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", schedule, err)
	}
	return nil
}

// ValidateTimezone validates a timezone string by loading it with
// time.LoadLocation.
//
// The timezone must be a valid IANA name:
//   - Example: "UTC"
//   - Example: "Asia/Tokyo"
//   - Example: "Europe/Berlin"
//
// The check depends on tzdata being available on the host or embedded in the
// binary.
//
// Parameters:
//   - timezone: IANA timezone name
//
// Returns:
//   - error: nil if the location loads, descriptive error otherwise
func ValidateTimezone(timezone string) error {
	if timezone == "" {
		return fmt.Errorf("invalid timezone: cannot be empty")
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return fmt.Errorf("invalid timezone '%s': %w", timezone, err)
	}
	return nil
}

// ValidateDuration checks min <= duration <= max.
//
// Parameters:
//   - duration: Value to check
//   - min: Inclusive lower bound
//   - max: Inclusive upper bound
//
// Returns:
//   - error: nil if in range, descriptive error otherwise
//
// Example:
//
//	err := ValidateDuration(timeout, time.Second, time.Hour)
func ValidateDuration(duration, min, max time.Duration) error {
	if duration < min {
		return fmt.Errorf("duration %v is below minimum %v", duration, min)
	}
	if duration > max {
		return fmt.Errorf("duration %v exceeds maximum %v", duration, max)
	}
	return nil
}

// ValidateIntRange checks min <= value <= max.
//
// Parameters:
//   - value: Value to check
//   - min: Inclusive lower bound
//   - max: Inclusive upper bound
//
// Returns:
//   - error: nil if in range, descriptive error otherwise
func ValidateIntRange(value, min, max int) error {
	if value < min || value > max {
		return fmt.Errorf("value %d is out of range [%d, %d]", value, min, max)
	}
	return nil
}

// ValidatePositiveDuration rejects zero and negative durations.
func ValidatePositiveDuration(duration time.Duration) error {
	if duration <= 0 {
		return fmt.Errorf("duration must be positive, got %v", duration)
	}
	return nil
}
