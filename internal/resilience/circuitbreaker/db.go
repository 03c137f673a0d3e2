package circuitbreaker

import (
	"context"
	"database/sql"
	"time"

	"github.com/sony/gobreaker"
)

// DBCircuitBreaker guards a *sql.DB. When the database keeps failing, calls
// fail fast with gobreaker.ErrOpenState instead of waiting on the pool.
type DBCircuitBreaker struct {
	cb *CircuitBreaker
	db *sql.DB
}

// DBConfig opens after five straight failures and probes again after 30s.
func DBConfig() Config {
	return Config{
		Name:             "database",
		MaxRequests:      3,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 1.0,
		MinRequests:      5,
	}
}

// NewDBCircuitBreaker guards db with DBConfig.
//
// Example:
//
//	breaker := circuitbreaker.NewDBCircuitBreaker(db)
//	repo := postgres.NewAnalysisRepoWithBreaker(breaker, retry.DBConfig())
func NewDBCircuitBreaker(db *sql.DB) *DBCircuitBreaker {
	return NewDBCircuitBreakerWithConfig(db, DBConfig())
}

// NewDBCircuitBreakerWithConfig is NewDBCircuitBreaker with a custom breaker
// configuration, used by tests that need a fast trip.
func NewDBCircuitBreakerWithConfig(db *sql.DB, cfg Config) *DBCircuitBreaker {
	return &DBCircuitBreaker{cb: New(cfg), db: db}
}

// QueryContext runs a query through the breaker. The caller closes the rows.
func (dcb *DBCircuitBreaker) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return Do(dcb.cb, func() (*sql.Rows, error) {
		return dcb.db.QueryContext(ctx, query, args...)
	})
}

// ExecContext runs a statement through the breaker.
func (dcb *DBCircuitBreaker) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return Do(dcb.cb, func() (sql.Result, error) {
		return dcb.db.ExecContext(ctx, query, args...)
	})
}

// QueryRowScan runs a single-row query and scans it through the breaker.
// sql.ErrNoRows is returned to the caller but does not count as a failure.
func (dcb *DBCircuitBreaker) QueryRowScan(ctx context.Context, query string, args []any, dest ...any) error {
	var noRows bool
	_, err := dcb.cb.Execute(func() (interface{}, error) {
		err := dcb.db.QueryRowContext(ctx, query, args...).Scan(dest...)
		if err == sql.ErrNoRows {
			noRows = true
			return nil, nil
		}
		return nil, err
	})
	if noRows {
		return sql.ErrNoRows
	}
	return err
}

// PingContext checks the connection through the breaker. The readiness probe
// uses it so an open circuit reports not-ready without touching Postgres.
func (dcb *DBCircuitBreaker) PingContext(ctx context.Context) error {
	_, err := dcb.cb.Execute(func() (interface{}, error) {
		return nil, dcb.db.PingContext(ctx)
	})
	return err
}

func (dcb *DBCircuitBreaker) State() gobreaker.State {
	return dcb.cb.State()
}

func (dcb *DBCircuitBreaker) IsOpen() bool {
	return dcb.cb.IsOpen()
}
