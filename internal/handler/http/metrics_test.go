package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stringlang/internal/observability/metrics"
	"stringlang/internal/observability/slo"
)

func TestMetricsMiddleware(t *testing.T) {
	tracker := slo.NewTracker()
	h := MetricsMiddleware(tracker)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.HTTPRequestsInFlight))
		if r.URL.Path == "/blocks/klingon" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = io.WriteString(w, `{"block":"hiragana","count":2}`)
	}))

	okSeries := metrics.HTTPRequestsTotal.WithLabelValues("POST", "/blocks/:name/count", "200")
	notFound := metrics.HTTPRequestsTotal.WithLabelValues("GET", "/blocks/:name", "404")
	failed := metrics.HTTPRequestsTotal.WithLabelValues("DELETE", "/analyses/:id", "500")
	beforeOK := testutil.ToFloat64(okSeries)
	beforeNF := testutil.ToFloat64(notFound)
	beforeFail := testutil.ToFloat64(failed)

	for _, name := range []string{"hiragana", "katakana"} {
		req := httptest.NewRequest(http.MethodPost, "/blocks/"+name+"/count", strings.NewReader(`{"text":"あア"}`))
		h.ServeHTTP(httptest.NewRecorder(), req)
	}
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/blocks/klingon", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/analyses/2f1c6a9e-3b5d-4c7e-9f00-1a2b3c4d5e6f", nil))

	assert.Equal(t, beforeOK+2, testutil.ToFloat64(okSeries))
	assert.Equal(t, beforeNF+1, testutil.ToFloat64(notFound))
	assert.Equal(t, beforeFail+1, testutil.ToFloat64(failed))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.HTTPRequestsInFlight))

	snap := tracker.Flush()
	assert.Equal(t, 4, snap.Requests)
	assert.Equal(t, 1, snap.Errors)
	assert.InDelta(t, 0.75, snap.Availability, 1e-9)
}

func TestMetricsMiddleware_NilTracker(t *testing.T) {
	h := MetricsMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Millisecond)
	}))
	require.NotPanics(t, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/profiles", nil))
	})
}

func TestMetricsHandler(t *testing.T) {
	metrics.HTTPRequestsTotal.WithLabelValues("GET", "/profiles", "200").Inc()

	rec := httptest.NewRecorder()
	MetricsHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
	assert.Contains(t, rec.Body.String(), `path="/profiles"`)
}
