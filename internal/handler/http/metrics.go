package http

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"stringlang/internal/handler/http/pathutil"
	"stringlang/internal/handler/http/responsewriter"
	"stringlang/internal/observability/metrics"
	"stringlang/internal/observability/slo"
)

// MetricsMiddleware records request count, latency and sizes per normalized
// route, so /analyses/{uuid} does not create a series per analysis. When
// tracker is non-nil every request also feeds the SLO window.
func MetricsMiddleware(tracker *slo.Tracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			metrics.HTTPRequestsInFlight.Inc()
			defer metrics.HTTPRequestsInFlight.Dec()

			// Normalize path to keep label cardinality bounded
			path := pathutil.NormalizePath(r.URL.Path)
			rw := responsewriter.Wrap(w)

			start := time.Now()
			next.ServeHTTP(rw, r)
			d := time.Since(start)

			metrics.RecordHTTPRequest(r.Method, path, rw.StatusCode(), d, r.ContentLength, int64(rw.BytesWritten()))
			if tracker != nil {
				tracker.Observe(rw.StatusCode(), d)
			}
		})
	}
}

// MetricsHandler serves the Prometheus exposition format from the default
// registry, which holds the HTTP, analysis, SLO and rate limiter metrics.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
