package analysis_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"stringlang/internal/domain/entity"
	"stringlang/internal/repository"
	"stringlang/internal/usecase/fetch"
)

type memRepo struct {
	mu   sync.Mutex
	data map[uuid.UUID]*entity.Analysis
}

func newMemRepo() *memRepo { return &memRepo{data: map[uuid.UUID]*entity.Analysis{}} }

func (m *memRepo) Create(_ context.Context, a *entity.Analysis) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[a.ID] = a
	return nil
}

func (m *memRepo) Get(_ context.Context, id uuid.UUID) (*entity.Analysis, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[id], nil
}

func (m *memRepo) filtered(f repository.AnalysisFilter) []*entity.Analysis {
	var out []*entity.Analysis
	for _, a := range m.data {
		if f.Source != "" && a.Source != f.Source {
			continue
		}
		if f.Block != "" && a.Report.Get(f.Block) == 0 {
			continue
		}
		out = append(out, a)
	}
	slices.SortFunc(out, func(a, b *entity.Analysis) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out
}

func (m *memRepo) List(_ context.Context, f repository.AnalysisFilter, offset, limit int) ([]*entity.Analysis, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := m.filtered(f)
	if offset >= len(all) {
		return nil, nil
	}
	return all[offset:min(offset+limit, len(all))], nil
}

func (m *memRepo) Count(_ context.Context, f repository.AnalysisFilter) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.filtered(f))), nil
}

func (m *memRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[id]
	delete(m.data, id)
	return ok, nil
}

func (m *memRepo) DeleteOlderThan(context.Context, time.Time) (int64, error) { return 0, nil }

type stubContent struct {
	body string
	err  error
}

func (s stubContent) FetchContent(context.Context, string) (string, error) { return s.body, s.err }

type stubFeed struct {
	items []fetch.FeedItem
	err   error
}

func (s stubFeed) Fetch(context.Context, string) ([]fetch.FeedItem, error) { return s.items, s.err }

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}
