package config

import (
	"fmt"
	"time"
)

// ValidatePositiveDuration rejects zero and negative durations.
//
// Parameters:
//   - d: Duration to validate
//
// Returns:
//   - error: nil if d > 0, descriptive error otherwise
//
// Example:
//
//	if err := ValidatePositiveDuration(cfg.RetentionMaxAge); err != nil {
//	    return fmt.Errorf("RETENTION_MAX_AGE: %w", err)
//	}
func ValidatePositiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("duration must be positive, got %v", d)
	}
	return nil
}
