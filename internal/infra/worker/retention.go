package worker

import (
	"context"
	"log/slog"
	"time"

	"stringlang/internal/handler/http/respond"
)

// Purger deletes archived analyses created before cutoff and reports how many
// rows went. analysis.Service satisfies it.
type Purger interface {
	Purge(ctx context.Context, cutoff time.Time) (int64, error)
}

// RetentionJob purges analyses older than MaxAge. Run is what the cron
// scheduler calls.
type RetentionJob struct {
	// Purger performs the delete; required.
	Purger Purger
	// Config supplies MaxAge and JobTimeout; required.
	Config *WorkerConfig
	// Metrics records run counts, duration and deleted rows; required.
	Metrics *WorkerMetrics
	// Logger receives start, completion and failure records; required.
	Logger *slog.Logger
	// Health, when set, is told the outcome of every run.
	Health *HealthServer
	Now    func() time.Time
}

// Run performs one purge.
//
// Flow:
//  1. cutoff = now - Config.MaxAge (UTC)
//  2. Purger.Purge under a Config.JobTimeout deadline
//  3. Metrics, logs and the health server's last run are updated
//
// A failed run does not stop the scheduler; the next tick tries again.
//
// Parameters:
//   - ctx: Parent context; cancelling it aborts the purge
//
// Returns:
//   - int64: Number of deleted analyses
//   - error: The purge error, already logged and counted
func (j *RetentionJob) Run(ctx context.Context) (int64, error) {
	start := time.Now()
	j.Metrics.RecordJobRun("started")

	now := time.Now
	if j.Now != nil {
		now = j.Now
	}
	cutoff := now().UTC().Add(-j.Config.MaxAge)
	j.Logger.Info("retention started", slog.Time("cutoff", cutoff))

	ctx, cancel := context.WithTimeout(ctx, j.Config.JobTimeout)
	defer cancel()

	deleted, err := j.Purger.Purge(ctx, cutoff)
	j.Metrics.RecordJobDuration(time.Since(start).Seconds())
	if j.Health != nil {
		j.Health.RecordRun(now(), deleted, err)
	}
	if err != nil {
		j.Logger.Error("retention failed", slog.String("error", respond.SanitizeError(err)))
		j.Metrics.RecordJobRun("failure")
		return 0, err
	}

	j.Metrics.RecordJobRun("success")
	j.Metrics.RecordPurged(deleted)
	j.Metrics.RecordLastSuccess()
	j.Logger.Info("retention completed",
		slog.Int64("deleted", deleted),
		slog.Duration("duration", time.Since(start)))
	return deleted, nil
}
