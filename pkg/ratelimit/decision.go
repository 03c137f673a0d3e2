package ratelimit

import (
	"fmt"
	"time"
)

// Decision is the outcome of one rate limit check.
type Decision struct {
	// Key is the bucket the request drew from (IP address or user).
	Key string

	// Allowed is false when the bucket had no token.
	Allowed bool

	// Limit is the bucket size, reported as X-RateLimit-Limit.
	Limit int

	// Remaining is the whole number of tokens left after this request,
	// reported as X-RateLimit-Remaining.
	Remaining int

	// ResetAt is when the bucket will be full again.
	ResetAt time.Time
	// RetryAfter is zero for allowed requests and the wait until a token is
	// available otherwise.
	RetryAfter time.Duration
}

// String formats the decision for logs, e.g. "denied 10.0.0.1 (retry after 2s)".
func (d Decision) String() string {
	if d.Allowed {
		return fmt.Sprintf("allowed %s (%d/%d remaining)", d.Key, d.Remaining, d.Limit)
	}
	return fmt.Sprintf("denied %s (retry after %s)", d.Key, d.RetryAfter)
}

// RetryAfterSeconds rounds RetryAfter up to whole seconds for the Retry-After
// header.
//
// Returns:
//   - int: 0 for allowed requests, otherwise at least 1
func (d Decision) RetryAfterSeconds() int {
	if d.Allowed {
		return 0
	}
	s := int((d.RetryAfter + time.Second - 1) / time.Second)
	if s < 1 {
		s = 1
	}
	return s
}
