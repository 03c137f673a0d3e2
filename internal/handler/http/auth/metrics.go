package auth

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stringlang_auth_logins_total",
			Help: "Token requests by role and result",
		},
		[]string{"role", "result"}, // result: success | failure
	)

	loginDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stringlang_auth_login_duration_seconds",
			Help:    "Time spent checking credentials and signing a token",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0},
		},
	)

	// archiveAccessTotal outcome is one of granted, unauthenticated, forbidden.
	archiveAccessTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stringlang_archive_access_total",
			Help: "Archive requests by authorization outcome, role and method",
		},
		[]string{"outcome", "role", "method"},
	)

	authzDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stringlang_archive_authz_duration_seconds",
			Help:    "Time spent validating the bearer token and role",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
	)
)

func recordLogin(role, result string, start time.Time) {
	loginsTotal.WithLabelValues(role, result).Inc()
	loginDuration.Observe(time.Since(start).Seconds())
}

func recordArchiveAccess(outcome, role, method string, start time.Time) {
	archiveAccessTotal.WithLabelValues(outcome, role, method).Inc()
	authzDuration.Observe(time.Since(start).Seconds())
}
