// Package middleware holds the HTTP middleware that needs its own state:
// rate limiting, client address extraction and response compression.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"stringlang/internal/handler/http/respond"
	"stringlang/pkg/ratelimit"
)

// KeyFunc names the bucket a request draws from.
//
// Returns:
//   - key: Bucket key, such as the client IP or the user name
//   - ok: false lets the request through without touching any bucket
type KeyFunc func(r *http.Request) (key string, ok bool)

// IPKey keys requests by client address.
//
// A request whose address cannot be determined is let through and logged. A
// broken extractor then degrades to "no IP limit" instead of rejecting every
// client.
//
// Parameters:
//   - extractor: RemoteAddrExtractor, or TrustedProxyExtractor behind a proxy
func IPKey(extractor IPExtractor) KeyFunc {
	return func(r *http.Request) (string, bool) {
		ip, err := extractor.ExtractIP(r)
		if err != nil {
			slog.Error("rate limiter: failed to extract IP, allowing request",
				slog.String("error", err.Error()),
				slog.String("remote_addr", r.RemoteAddr),
				slog.String("path", r.URL.Path))
			return "", false
		}
		return ip, true
	}
}

// UserKey keys requests by the authenticated user that subject finds in the
// request context. Anonymous requests are not limited by it, so it must run
// after the auth middleware.
//
// Example:
//
//	user := NewRateLimiter(limiter, UserKey(auth.Subject), logger)
//	protect := func(h http.Handler) http.Handler { return authz(user.Middleware(h)) }
func UserKey(subject func(ctx context.Context) (string, bool)) KeyFunc {
	return func(r *http.Request) (string, bool) {
		user, ok := subject(r.Context())
		if !ok || user == "" {
			return "", false
		}
		return user, true
	}
}

// RateLimiter enforces a KeyedLimiter on HTTP requests.
type RateLimiter struct {
	limiter *ratelimit.KeyedLimiter
	key     KeyFunc
	logger  *slog.Logger
}

// NewRateLimiter wraps limiter.
//
// Parameters:
//   - limiter: Bucket store; its Name is reported as X-RateLimit-Type
//   - key: Picks the bucket for each request
//   - logger: Receives denials and cleanup stats; nil uses slog.Default()
func NewRateLimiter(limiter *ratelimit.KeyedLimiter, key KeyFunc, logger *slog.Logger) *RateLimiter {
	if logger == nil {
		logger = slog.Default()
	}
	return &RateLimiter{limiter: limiter, key: key, logger: logger}
}

// Middleware enforces the limit.
//
// Headers set on every limited request:
//   - X-RateLimit-Limit: bucket size
//   - X-RateLimit-Remaining: tokens left
//   - X-RateLimit-Reset: Unix time when the bucket is full again
//   - X-RateLimit-Type: limiter name ("ip", "user", "auth")
//
// Once the bucket is empty the request is answered with 429, a Retry-After
// header in seconds, and {"error":"rate limit exceeded"}.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key, ok := rl.key(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		d := rl.limiter.Allow(key)
		h := w.Header()
		h.Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
		h.Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
		h.Set("X-RateLimit-Reset", strconv.FormatInt(d.ResetAt.Unix(), 10))
		h.Set("X-RateLimit-Type", rl.limiter.Name())

		if !d.Allowed {
			rl.logger.Warn("rate limit exceeded",
				slog.String("limiter_type", rl.limiter.Name()),
				slog.String("key", key),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Duration("retry_after", d.RetryAfter))
			h.Set("Retry-After", strconv.Itoa(d.RetryAfterSeconds()))
			respond.JSON(w, http.StatusTooManyRequests, respond.ErrorResponse{Error: "rate limit exceeded"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Limiter returns the wrapped limiter.
func (rl *RateLimiter) Limiter() *ratelimit.KeyedLimiter { return rl.limiter }

// RunCleanup drops idle buckets every interval until ctx is done. Start it in
// its own goroutine:
//
//	go ipLimiter.RunCleanup(ctx, settings.CleanupInterval)
func (rl *RateLimiter) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := rl.limiter.Cleanup(); n > 0 {
				rl.logger.Debug("rate limiter cleanup",
					slog.String("limiter_type", rl.limiter.Name()),
					slog.Int("removed", n),
					slog.Int("active", rl.limiter.Len()))
			}
		}
	}
}
