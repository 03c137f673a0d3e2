package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"stringlang/internal/domain/entity"
	"stringlang/internal/observability/metrics"
	"stringlang/internal/repository"
	"stringlang/internal/resilience/circuitbreaker"
	"stringlang/internal/resilience/retry"
	"stringlang/pkg/unicodeblock"
)

// AnalysisRepo stores analyses in the analyses table. The report column is a
// JSONB array of {"block","count"} objects so catalog order survives storage.
type AnalysisRepo struct {
	db    *circuitbreaker.DBCircuitBreaker
	retry retry.Config
	qb    *AnalysisQueryBuilder
}

// NewAnalysisRepo guards db with the default database breaker and retries
// writes with retry.DBConfig.
func NewAnalysisRepo(db *sql.DB) repository.AnalysisRepository {
	return NewAnalysisRepoWithBreaker(circuitbreaker.NewDBCircuitBreaker(db), retry.DBConfig())
}

// NewAnalysisRepoWithBreaker shares cb with other users of the pool, such as
// the health check.
func NewAnalysisRepoWithBreaker(cb *circuitbreaker.DBCircuitBreaker, retryCfg retry.Config) *AnalysisRepo {
	return &AnalysisRepo{db: cb, retry: retryCfg, qb: NewAnalysisQueryBuilder()}
}

const analysisColumns = `id, source, origin, code_points, report, created_at`

func encodeReport(r unicodeblock.Report) ([]byte, error) {
	return json.Marshal(r.Entries())
}

func decodeReport(data []byte) (unicodeblock.Report, error) {
	var entries []unicodeblock.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return unicodeblock.Report{}, err
	}
	return unicodeblock.NewReport(entries...), nil
}

func scanAnalysis(scan func(dest ...any) error) (*entity.Analysis, error) {
	var (
		a      entity.Analysis
		source string
		report []byte
	)
	if err := scan(&a.ID, &source, &a.Origin, &a.CodePoints, &report, &a.CreatedAt); err != nil {
		return nil, err
	}
	a.Source = entity.Source(source)
	a.CreatedAt = a.CreatedAt.UTC()

	r, err := decodeReport(report)
	if err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}
	a.Report = r
	return &a, nil
}

func (repo *AnalysisRepo) observe(op string, start time.Time) {
	metrics.RecordDBQuery(op, time.Since(start))
}

func (repo *AnalysisRepo) Create(ctx context.Context, a *entity.Analysis) error {
	defer repo.observe("create", time.Now())

	report, err := encodeReport(a.Report)
	if err != nil {
		return fmt.Errorf("Create: marshal report: %w", err)
	}

	const query = `
INSERT INTO analyses (` + analysisColumns + `)
VALUES ($1, $2, $3, $4, $5, $6)`
	err = retry.WithBackoff(ctx, repo.retry, func() error {
		_, err := repo.db.ExecContext(ctx, query,
			a.ID, string(a.Source), a.Origin, a.CodePoints, report, a.CreatedAt)
		return err
	})
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

// Get returns nil, nil when no row has id.
func (repo *AnalysisRepo) Get(ctx context.Context, id uuid.UUID) (*entity.Analysis, error) {
	defer repo.observe("get", time.Now())

	const query = `
SELECT ` + analysisColumns + `
FROM analyses
WHERE id = $1
LIMIT 1`
	a, err := scanAnalysis(func(dest ...any) error {
		return repo.db.QueryRowScan(ctx, query, []any{id}, dest...)
	})
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return a, nil
}

// List orders by created_at then id so pages are stable when timestamps tie.
func (repo *AnalysisRepo) List(ctx context.Context, filter repository.AnalysisFilter, offset, limit int) ([]*entity.Analysis, error) {
	defer repo.observe("list", time.Now())

	where, args := repo.qb.BuildWhereClause(filter)
	n := len(args)
	query := fmt.Sprintf(`
SELECT %s
FROM analyses
%s
ORDER BY created_at DESC, id DESC
LIMIT $%d OFFSET $%d`, analysisColumns, where, n+1, n+2)
	args = append(args, limit, offset)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]*entity.Analysis, 0, limit)
	for rows.Next() {
		a, err := scanAnalysis(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("List: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Count also refreshes the stored-analyses gauge when filter is empty.
func (repo *AnalysisRepo) Count(ctx context.Context, filter repository.AnalysisFilter) (int64, error) {
	defer repo.observe("count", time.Now())

	where, args := repo.qb.BuildWhereClause(filter)
	query := "SELECT COUNT(*) FROM analyses " + where

	var total int64
	if err := repo.db.QueryRowScan(ctx, query, args, &total); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	if where == "" {
		metrics.UpdateAnalysesStored(total)
	}
	return total, nil
}

func (repo *AnalysisRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	defer repo.observe("delete", time.Now())

	res, err := repo.db.ExecContext(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	return n > 0, nil
}

// DeleteOlderThan is retried like Create; deleting twice is harmless.
func (repo *AnalysisRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	defer repo.observe("delete_older_than", time.Now())

	var n int64
	err := retry.WithBackoff(ctx, repo.retry, func() error {
		res, err := repo.db.ExecContext(ctx, `DELETE FROM analyses WHERE created_at < $1`, cutoff)
		if err != nil {
			return err
		}
		n, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("DeleteOlderThan: %w", err)
	}
	return n, nil
}
