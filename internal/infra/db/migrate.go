package db

import (
	"context"
	"database/sql"
)

// MigrateUp creates the analyses table and its indexes. It is idempotent, so
// the API runs it on every start.
//
// The report column holds the entry array ([{"block":..., "count":...}]) so
// catalog order survives storage and the block filter can use containment.
func MigrateUp(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS analyses (
    id          UUID PRIMARY KEY,
    source      VARCHAR(16) NOT NULL,
    origin      TEXT NOT NULL DEFAULT '',
    code_points INTEGER NOT NULL CHECK (code_points >= 0),
    report      JSONB NOT NULL DEFAULT '[]'::jsonb,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// listing is newest first; retention deletes by age
		`CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_source ON analyses(source)`,
		// serves report @> '[{"block": ...}]'
		`CREATE INDEX IF NOT EXISTS idx_analyses_report ON analyses USING GIN (report jsonb_path_ops)`,
	}
	for _, idx := range indexes {
		if _, err := db.ExecContext(ctx, idx); err != nil {
			return err
		}
	}
	return nil
}
