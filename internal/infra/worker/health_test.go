package worker

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func newTestHealthServer(addr string) *HealthServer {
	return NewHealthServer(addr, slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

func get(t *testing.T, h *HealthServer, path string) (int, readinessResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	var body readinessResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return rec.Code, body
}

func TestHealthServer_Liveness(t *testing.T) {
	h := newTestHealthServer(":0")
	code, body := get(t, h, "/health")
	if code != http.StatusOK || body.Status != "ok" {
		t.Errorf("liveness = %d %q, want 200 ok", code, body.Status)
	}
}

func TestHealthServer_Readiness(t *testing.T) {
	h := newTestHealthServer(":0")

	code, body := get(t, h, "/health/ready")
	if code != http.StatusServiceUnavailable || body.Status != "not ready" {
		t.Errorf("before SetReady = %d %q, want 503 not ready", code, body.Status)
	}

	h.SetReady(true)
	code, body = get(t, h, "/health/ready")
	if code != http.StatusOK || body.Status != "ok" {
		t.Errorf("after SetReady(true) = %d %q, want 200 ok", code, body.Status)
	}
	if body.LastRun != nil {
		t.Errorf("expected no last run yet, got %+v", body.LastRun)
	}

	h.SetReady(false)
	if code, _ = get(t, h, "/health/ready"); code != http.StatusServiceUnavailable {
		t.Errorf("after SetReady(false) = %d, want 503", code)
	}
}

func TestHealthServer_ReportsLastRun(t *testing.T) {
	h := newTestHealthServer(":0")
	h.SetReady(true)
	at := time.Date(2026, 3, 10, 3, 0, 0, 0, time.UTC)

	h.RecordRun(at, 12, nil)
	_, body := get(t, h, "/health/ready")
	if body.LastRun == nil || body.LastRun.Deleted != 12 || !body.LastRun.At.Equal(at) || body.LastRun.Error != "" {
		t.Fatalf("last run = %+v, want 12 deleted at %v", body.LastRun, at)
	}

	h.RecordRun(at.Add(24*time.Hour), 0, errors.New("dial postgres://app:hunter2@db:5432 failed"))
	code, body := get(t, h, "/health/ready")
	if code != http.StatusOK {
		t.Errorf("a failed run must not make the worker unready, got %d", code)
	}
	if body.LastRun == nil || body.LastRun.Error == "" {
		t.Fatalf("expected failed run to be reported, got %+v", body.LastRun)
	}
	if got := body.LastRun.Error; got == "dial postgres://app:hunter2@db:5432 failed" {
		t.Errorf("error was not sanitized: %q", got)
	}
}

func TestHealthServer_LastRunIsCopy(t *testing.T) {
	h := newTestHealthServer(":0")
	if h.LastRun() != nil {
		t.Fatal("expected nil before the first run")
	}
	h.RecordRun(time.Now(), 3, nil)
	h.LastRun().Deleted = 99
	if got := h.LastRun().Deleted; got != 3 {
		t.Errorf("LastRun must return a copy, got %d", got)
	}
}

func TestHealthServer_Handle(t *testing.T) {
	h := newTestHealthServer(":0")
	h.Handle("/metrics", promhttp.Handler())

	rec := httptest.NewRecorder()
	h.mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("/metrics = %d, want 200", rec.Code)
	}
}

func TestHealthServer_Start(t *testing.T) {
	h := newTestHealthServer("127.0.0.1:19095")
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() { errCh <- h.Start(ctx) }()

	var resp *http.Response
	var err error
	for i := 0; i < 50; i++ {
		if resp, err = http.Get("http://127.0.0.1:19095/health"); err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("server not running: %v", err)
	}
	_ = resp.Body.Close()

	cancel()
	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			t.Errorf("Start() = %v, want http.ErrServerClosed", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("shutdown timeout")
	}
}

func TestRetentionJob_RecordsRunOnHealthServer(t *testing.T) {
	h := newTestHealthServer(":0")
	job := newJob(t, purgeFunc(func(context.Context, time.Time) (int64, error) { return 4, nil }))
	job.Health = h

	if _, err := job.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	last := h.LastRun()
	if last == nil || last.Deleted != 4 {
		t.Fatalf("last run = %+v, want 4 deleted", last)
	}
	if !last.At.Equal(job.Now()) {
		t.Errorf("last run at %v, want %v", last.At, job.Now())
	}
}
