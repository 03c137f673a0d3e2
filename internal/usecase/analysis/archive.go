package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"stringlang/internal/common/pagination"
	"stringlang/internal/domain/entity"
	"stringlang/internal/repository"
	"stringlang/pkg/unicodeblock"
)

// PaginatedResult is one page of archived analyses.
type PaginatedResult struct {
	Data       []*Result
	Pagination pagination.Metadata
}

// Get returns an archived analysis.
// Returns ErrArchiveDisabled if no repository is configured.
// Returns ErrAnalysisNotFound if the ID is nil or no analysis has it.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Result, error) {
	if s.Repo == nil {
		return nil, ErrArchiveDisabled
	}
	if id == uuid.Nil {
		return nil, ErrAnalysisNotFound
	}

	a, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get analysis: %w", err)
	}
	if a == nil {
		return nil, ErrAnalysisNotFound
	}
	return a, nil
}

// List returns a page of archived analyses, newest first.
// It counts the filtered rows first so the metadata and the page agree on the
// same filter.
// Returns a *entity.ValidationError if filter.Source is not a known source.
// Returns ErrUnknownBlock if filter.Block is not in the standard catalog.
func (s *Service) List(ctx context.Context, params pagination.Params, filter repository.AnalysisFilter) (*PaginatedResult, error) {
	if s.Repo == nil {
		return nil, ErrArchiveDisabled
	}
	if filter.Source != "" && !filter.Source.Valid() {
		return nil, &entity.ValidationError{Field: "source", Message: fmt.Sprintf("invalid source %q", filter.Source)}
	}
	if filter.Block != "" {
		if _, ok := unicodeblock.Standard().Lookup(filter.Block); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBlock, filter.Block)
		}
	}

	// Get total count for metadata
	total, err := s.Repo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count analyses: %w", err)
	}

	items, err := s.Repo.List(ctx, filter, params.Offset(), params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}

	return &PaginatedResult{
		Data:       items,
		Pagination: pagination.NewMetadata(params, total),
	}, nil
}

// Delete removes an archived analysis.
// Returns ErrAnalysisNotFound if nothing was removed.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if s.Repo == nil {
		return ErrArchiveDisabled
	}

	ok, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete analysis: %w", err)
	}
	if !ok {
		return ErrAnalysisNotFound
	}
	return nil
}

// Purge removes analyses created before cutoff and returns how many.
// The retention worker calls it on its schedule. A zero cutoff is rejected
// so a misconfigured caller cannot empty the archive.
func (s *Service) Purge(ctx context.Context, cutoff time.Time) (int64, error) {
	if s.Repo == nil {
		return 0, ErrArchiveDisabled
	}
	if cutoff.IsZero() {
		return 0, &entity.ValidationError{Field: "cutoff", Message: "cutoff is required"}
	}

	n, err := s.Repo.DeleteOlderThan(ctx, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("purge analyses: %w", err)
	}
	return n, nil
}
