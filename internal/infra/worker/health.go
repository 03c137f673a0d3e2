package worker

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"stringlang/internal/handler/http/respond"
)

// HealthServer serves the worker's probes:
//
//	GET /health        liveness, always 200
//	GET /health/ready  200 once the scheduler runs, 503 before and during shutdown
//
// The readiness body also reports the outcome of the last retention run.
// More handlers, such as /metrics, can be added with Handle before Start.
type HealthServer struct {
	addr   string
	logger *slog.Logger
	ready  atomic.Bool
	mux    *http.ServeMux

	mu      sync.Mutex
	lastRun *RunStatus
}

// RunStatus is the outcome of one retention run.
type RunStatus struct {
	At      time.Time `json:"at"`
	Deleted int64     `json:"deleted"`
	Error   string    `json:"error,omitempty"`
}

type readinessResponse struct {
	Status  string     `json:"status"`
	LastRun *RunStatus `json:"last_run,omitempty"`
}

// NewHealthServer builds a server for addr (e.g. ":9091"). It starts not ready;
// call SetReady(true) once the scheduler runs.
func NewHealthServer(addr string, logger *slog.Logger) *HealthServer {
	h := &HealthServer{addr: addr, logger: logger, mux: http.NewServeMux()}
	h.mux.HandleFunc("GET /health", h.handleLiveness)
	h.mux.HandleFunc("GET /health/ready", h.handleReadiness)
	return h
}

// Handle registers an additional handler. It must be called before Start.
func (h *HealthServer) Handle(pattern string, handler http.Handler) {
	h.mux.Handle(pattern, handler)
}

// Start serves until ctx is cancelled, then shuts down within 5 seconds and
// returns http.ErrServerClosed.
func (h *HealthServer) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:         h.addr,
		Handler:      h.mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		h.logger.Info("health server starting", slog.String("addr", h.addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			h.logger.Error("health server shutdown failed", slog.Any("error", err))
			return err
		}
		h.logger.Info("health server stopped")
		return http.ErrServerClosed
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			h.logger.Error("health server failed", slog.Any("error", err))
		}
		return err
	}
}

// SetReady flips the readiness probe. The worker sets it false before stopping
// the scheduler so traffic drains first.
func (h *HealthServer) SetReady(ready bool) {
	h.ready.Store(ready)
	h.logger.Info("worker readiness changed", slog.Bool("ready", ready))
}

// RecordRun stores the outcome of a retention run for the readiness body.
func (h *HealthServer) RecordRun(at time.Time, deleted int64, err error) {
	s := &RunStatus{At: at.UTC(), Deleted: deleted}
	if err != nil {
		s.Error = respond.SanitizeError(err)
	}
	h.mu.Lock()
	h.lastRun = s
	h.mu.Unlock()
}

// LastRun returns a copy of the last recorded run, or nil before the first.
func (h *HealthServer) LastRun() *RunStatus {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.lastRun == nil {
		return nil
	}
	s := *h.lastRun
	return &s
}

func (h *HealthServer) handleLiveness(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, readinessResponse{Status: "ok"})
}

func (h *HealthServer) handleReadiness(w http.ResponseWriter, _ *http.Request) {
	resp := readinessResponse{Status: "ok", LastRun: h.LastRun()}
	code := http.StatusOK
	if !h.ready.Load() {
		resp.Status = "not ready"
		code = http.StatusServiceUnavailable
	}
	respond.JSON(w, code, resp)
}
