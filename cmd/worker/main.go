package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"

	pgRepo "stringlang/internal/infra/adapter/persistence/postgres"
	"stringlang/internal/infra/db"
	workerPkg "stringlang/internal/infra/worker"
	"stringlang/internal/observability/logging"
	analysisUC "stringlang/internal/usecase/analysis"
)

// waitForMigrations blocks until the analyses table exists. The API applies
// migrations on startup, so a worker started alongside it may run first.
// Exits after 10 attempts 3s apart.
func waitForMigrations(ctx context.Context, logger *slog.Logger, database *sql.DB) {
	const query = "SELECT 1 FROM analyses LIMIT 1"
	for i := 0; i < 10; i++ {
		if _, err := database.ExecContext(ctx, query); err == nil {
			return
		}
		logger.Info("waiting for migrations, retrying in 3s", slog.Int("attempt", i+1))
		time.Sleep(3 * time.Second)
	}
	logger.Error("migrations did not complete in time")
	os.Exit(1)
}

// main runs the retention worker: it purges archived analyses older than
// RETENTION_MAX_AGE on a cron schedule and serves health and metrics.
func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The worker has nothing to do without an archive, so DATABASE_URL is required
	database, err := db.Open(ctx)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()
	waitForMigrations(ctx, logger, database)

	// Load configuration, falling back to defaults for invalid values
	workerMetrics := workerPkg.NewWorkerMetrics()
	workerConfig := workerPkg.LoadConfigFromEnv(logger, workerMetrics)
	logger.Info("worker configuration loaded",
		slog.String("cron_schedule", workerConfig.CronSchedule),
		slog.String("timezone", workerConfig.Timezone),
		slog.Duration("max_age", workerConfig.MaxAge),
		slog.Duration("job_timeout", workerConfig.JobTimeout),
		slog.Int("health_port", workerConfig.HealthPort))

	// Health endpoints and /metrics share one listener
	healthAddr := fmt.Sprintf(":%d", workerConfig.HealthPort)
	healthServer := workerPkg.NewHealthServer(healthAddr, logger)
	healthServer.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := healthServer.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("health server failed", slog.Any("error", err))
		}
	}()

	svc := &analysisUC.Service{Repo: pgRepo.NewAnalysisRepo(database)}
	job := &workerPkg.RetentionJob{
		Purger:  svc,
		Config:  workerConfig,
		Metrics: workerMetrics,
		Logger: logging.WithFields(logger, map[string]any{
			"component": "retention",
			"schedule":  workerConfig.CronSchedule,
		}),
		Health: healthServer,
	}

	runCron(ctx, logger, job, workerConfig, healthServer)
}

// runCron schedules the retention job and blocks until ctx is cancelled.
// A run still in progress at shutdown is allowed to finish.
func runCron(ctx context.Context, logger *slog.Logger, job *workerPkg.RetentionJob, cfg *workerPkg.WorkerConfig, healthServer *workerPkg.HealthServer) {
	c := cron.New(cron.WithLocation(cfg.Location()), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))

	_, err := c.AddFunc(cfg.CronSchedule, func() {
		// Errors are logged and counted by the job.
		_, _ = job.Run(context.WithoutCancel(ctx))
	})
	if err != nil {
		logger.Error("failed to add cron job", slog.Any("error", err))
		os.Exit(1)
	}
	c.Start()

	healthServer.SetReady(true)
	logger.Info("worker started", slog.String("schedule", cfg.CronSchedule), slog.String("timezone", cfg.Timezone))

	<-ctx.Done()
	logger.Info("shutting down worker...")
	healthServer.SetReady(false)
	<-c.Stop().Done()
	logger.Info("worker stopped")
}
