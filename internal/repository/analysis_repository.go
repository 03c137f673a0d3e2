// Package repository declares the storage ports of the use cases.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"stringlang/internal/domain/entity"
)

// AnalysisFilter narrows List and Count. Zero fields do not filter.
type AnalysisFilter struct {
	Source entity.Source
	// Block keeps analyses whose report contains this block.
	Block string
}

// AnalysisRepository stores archived analyses. The Postgres implementation
// lives in internal/infra/adapter/persistence/postgres.
type AnalysisRepository interface {
	// Create stores a, whose ID is already assigned.
	Create(ctx context.Context, a *entity.Analysis) error
	// Get returns (nil, nil) when no analysis has the ID.
	Get(ctx context.Context, id uuid.UUID) (*entity.Analysis, error)
	// List returns analyses newest first.
	List(ctx context.Context, filter AnalysisFilter, offset, limit int) ([]*entity.Analysis, error)
	Count(ctx context.Context, filter AnalysisFilter) (int64, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	// DeleteOlderThan removes analyses created before cutoff and returns how many.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
