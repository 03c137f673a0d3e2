package analysis_test

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"stringlang/internal/domain/entity"
	"stringlang/internal/repository"
	"stringlang/internal/usecase/fetch"
)

/* ───────── stubs ───────── */

// in-memory AnalysisRepository
type stubRepo struct {
	mu   sync.Mutex
	data map[uuid.UUID]*entity.Analysis
	err  error // forced error for every call
}

func newStub() *stubRepo {
	return &stubRepo{data: map[uuid.UUID]*entity.Analysis{}}
}

func (s *stubRepo) Create(_ context.Context, a *entity.Analysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.data[a.ID] = a
	return nil
}

func (s *stubRepo) Get(_ context.Context, id uuid.UUID) (*entity.Analysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data[id], s.err
}

func (s *stubRepo) matching(filter repository.AnalysisFilter) []*entity.Analysis {
	var out []*entity.Analysis
	for _, a := range s.data {
		if filter.Source != "" && a.Source != filter.Source {
			continue
		}
		if filter.Block != "" && a.Report.Get(filter.Block) == 0 {
			continue
		}
		out = append(out, a)
	}
	slices.SortFunc(out, func(a, b *entity.Analysis) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out
}

func (s *stubRepo) List(_ context.Context, filter repository.AnalysisFilter, offset, limit int) ([]*entity.Analysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	all := s.matching(filter)
	if offset >= len(all) {
		return nil, nil
	}
	return all[offset:min(offset+limit, len(all))], nil
}

func (s *stubRepo) Count(_ context.Context, filter repository.AnalysisFilter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	return int64(len(s.matching(filter))), nil
}

func (s *stubRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return false, s.err
	}
	_, ok := s.data[id]
	delete(s.data, id)
	return ok, nil
}

func (s *stubRepo) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	var n int64
	for id, a := range s.data {
		if a.CreatedAt.Before(cutoff) {
			delete(s.data, id)
			n++
		}
	}
	return n, nil
}

type stubContent struct {
	body string
	err  error
	urls []string
}

func (s *stubContent) FetchContent(_ context.Context, url string) (string, error) {
	s.urls = append(s.urls, url)
	return s.body, s.err
}

type stubFeed struct {
	items []fetch.FeedItem
	err   error
}

func (s *stubFeed) Fetch(_ context.Context, _ string) ([]fetch.FeedItem, error) {
	return s.items, s.err
}
