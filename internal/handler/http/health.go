// Package http holds the API's shared HTTP plumbing: health probes, metrics,
// and the middleware that wraps every route.
package http

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"stringlang/internal/handler/http/respond"
	"stringlang/pkg/ratelimit"
	"stringlang/pkg/unicodeblock"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string                 `json:"status" example:"healthy"`
	Timestamp string                 `json:"timestamp" example:"2026-03-01T12:00:00Z"`
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version" example:"1.0.0"`
}

// CheckStatus is one entry of HealthResponse.Checks. Status is "healthy",
// "degraded", "disabled" or "unhealthy"; only "unhealthy" fails the probe.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// BreakerState is implemented by the circuit breakers in front of the archive.
type BreakerState interface {
	State() gobreaker.State
}

// HealthHandler reports the catalog, the archive database and the rate
// limiters. DB is nil when the archive is disabled, which is not a failure.
type HealthHandler struct {
	DB       *sql.DB
	Breaker  BreakerState
	Limiters []*ratelimit.KeyedLimiter
	Version  string
}

// ServeHTTP health check
// @Summary      Health check
// @Description  Reports the catalog, archive database and rate limiter state.
// @Tags         health
// @Produce      json
// @Success      200 {object} HealthResponse
// @Failure      503 {object} HealthResponse
// @Router       /health [get]
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := map[string]CheckStatus{
		"catalog": {
			Status: "healthy",
			Details: map[string]any{
				"blocks":          unicodeblock.Standard().Len(),
				"unicode_version": unicodeblock.UnicodeVersion,
			},
		},
	}

	db := h.checkDatabase(ctx)
	checks["database"] = db
	if len(h.Limiters) > 0 {
		checks["rate_limiter"] = h.checkRateLimiters()
	}

	status, code := "healthy", http.StatusOK
	if db.Status == "unhealthy" {
		status, code = "unhealthy", http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

// checkDatabase reports "disabled" without an archive and "unhealthy" when
// the breaker is open or the ping fails. A reachable pool above 80%
// utilization, or one without a connection limit, is "degraded".
func (h *HealthHandler) checkDatabase(ctx context.Context) CheckStatus {
	if h.DB == nil {
		return CheckStatus{Status: "disabled", Message: "archive is disabled"}
	}

	details := map[string]any{}
	if h.Breaker != nil {
		state := h.Breaker.State()
		details["circuit_breaker"] = state.String()
		if state == gobreaker.StateOpen {
			return CheckStatus{Status: "unhealthy", Message: "circuit breaker open", Details: details}
		}
	}

	if err := h.DB.PingContext(ctx); err != nil {
		slog.Default().Warn("health: database ping failed", slog.String("error", respond.SanitizeError(err)))
		return CheckStatus{Status: "unhealthy", Message: "database unreachable", Details: details}
	}

	stats := h.DB.Stats()
	details["max_open_connections"] = stats.MaxOpenConnections
	details["open_connections"] = stats.OpenConnections
	details["in_use"] = stats.InUse
	details["idle"] = stats.Idle
	details["wait_count"] = stats.WaitCount
	details["wait_duration_ms"] = stats.WaitDuration.Milliseconds()

	if stats.MaxOpenConnections == 0 {
		return CheckStatus{Status: "degraded", Message: "connection pool max connections not configured", Details: details}
	}
	utilization := float64(stats.InUse) / float64(stats.MaxOpenConnections) * 100
	details["utilization_percent"] = utilization
	if utilization >= 80 {
		return CheckStatus{Status: "degraded", Message: "connection pool utilization above 80%", Details: details}
	}
	return CheckStatus{Status: "healthy", Details: details}
}

// checkRateLimiters is informational; a full limiter still serves requests.
func (h *HealthHandler) checkRateLimiters() CheckStatus {
	details := make(map[string]any, len(h.Limiters))
	for _, l := range h.Limiters {
		details[l.Name()] = map[string]any{"active_keys": l.Len()}
	}
	return CheckStatus{Status: "healthy", Details: details}
}

// ReadyHandler answers the readiness probe. Without an archive the service
// is ready as soon as it listens.
type ReadyHandler struct {
	DB Pinger
}

// Pinger is satisfied by *sql.DB and by the archive circuit breaker, which
// fails fast while open.
type Pinger interface {
	PingContext(ctx context.Context) error
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.DB != nil {
		if err := h.DB.PingContext(ctx); err != nil {
			http.Error(w, "database not ready", http.StatusServiceUnavailable)
			return
		}
	}
	writePlain(w, "ready")
}

// LiveHandler answers the liveness probe. It has no dependencies, so it fails
// only when the process cannot serve HTTP at all.
type LiveHandler struct{}

func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writePlain(w, "alive")
}

// writePlain writes a 200 text/plain probe body.
func writePlain(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		slog.Default().Warn("failed to write probe response", slog.String("error", err.Error()))
	}
}
