package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"syscall"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"stringlang/internal/domain/entity"
	"stringlang/internal/infra/adapter/persistence/postgres"
	"stringlang/internal/repository"
	"stringlang/internal/resilience/circuitbreaker"
	"stringlang/internal/resilience/retry"
	"stringlang/pkg/unicodeblock"
)

/* ──────────────────────────────── helpers ──────────────────────────────── */

var columns = []string{"id", "source", "origin", "code_points", "report", "created_at"}

var reportEqual = cmp.Comparer(func(a, b unicodeblock.Report) bool { return a.Equal(b) })

func newRepo(t *testing.T) (*postgres.AnalysisRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	fast := retry.Config{MaxAttempts: 2, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond, Multiplier: 1}
	return postgres.NewAnalysisRepoWithBreaker(circuitbreaker.NewDBCircuitBreaker(db), fast), mock
}

func sample() *entity.Analysis {
	return &entity.Analysis{
		ID:         uuid.MustParse("7f9c24e8-3b12-4a8e-9c1d-5f6a7b8c9d0e"),
		Source:     entity.SourceURL,
		Origin:     "https://example.com/a",
		CodePoints: 5,
		Report: unicodeblock.NewReport(
			unicodeblock.Entry{Block: "basicLatin", Count: 3},
			unicodeblock.Entry{Block: "hiragana", Count: 2},
		),
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

const sampleReportJSON = `[{"block":"basicLatin","count":3},{"block":"hiragana","count":2}]`

func row(a *entity.Analysis, report string) *sqlmock.Rows {
	return sqlmock.NewRows(columns).AddRow(
		a.ID.String(), string(a.Source), a.Origin, a.CodePoints, report, a.CreatedAt,
	)
}

/* ──────────────────────────────── 1. Create ──────────────────────────────── */

func TestAnalysisRepo_Create(t *testing.T) {
	repo, mock := newRepo(t)
	a := sample()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO analyses`)).
		WithArgs(a.ID, "url", a.Origin, 5, []byte(sampleReportJSON), a.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), a); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestAnalysisRepo_Create_RetriesTransientError(t *testing.T) {
	repo, mock := newRepo(t)
	a := sample()

	mock.ExpectExec(`INSERT INTO analyses`).WillReturnError(syscall.ECONNRESET)
	mock.ExpectExec(`INSERT INTO analyses`).WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), a); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestAnalysisRepo_Create_PermanentError(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`INSERT INTO analyses`).WillReturnError(errors.New("duplicate key"))

	err := repo.Create(context.Background(), sample())
	if err == nil || !regexp.MustCompile(`^Create: duplicate key`).MatchString(err.Error()) {
		t.Fatalf("want wrapped error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

/* ──────────────────────────────── 2. Get ──────────────────────────────── */

func TestAnalysisRepo_Get(t *testing.T) {
	repo, mock := newRepo(t)
	want := sample()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM analyses`)).
		WithArgs(want.ID).
		WillReturnRows(row(want, sampleReportJSON))

	got, err := repo.Get(context.Background(), want.ID)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got, reportEqual); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if got.Report.Names()[0] != "basicLatin" {
		t.Errorf("report order lost: %v", got.Report.Names())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestAnalysisRepo_Get_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`FROM analyses`).WillReturnRows(sqlmock.NewRows(columns))

	got, err := repo.Get(context.Background(), uuid.New())
	if err != nil || got != nil {
		t.Fatalf("want (nil, nil), got (%v, %v)", got, err)
	}
}

func TestAnalysisRepo_Get_BadReport(t *testing.T) {
	repo, mock := newRepo(t)
	a := sample()

	mock.ExpectQuery(`FROM analyses`).WillReturnRows(row(a, `{"not":"an array"}`))

	if _, err := repo.Get(context.Background(), a.ID); err == nil {
		t.Fatal("want unmarshal error")
	}
}

/* ──────────────────────────────── 3. List / Count ──────────────────────────────── */

func TestAnalysisRepo_List(t *testing.T) {
	repo, mock := newRepo(t)
	a := sample()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM analyses`+"\n"+`WHERE source = $1 AND report @> jsonb_build_array(jsonb_build_object('block', $2::text))`)).
		WithArgs("url", "hiragana", 10, 20).
		WillReturnRows(row(a, sampleReportJSON))

	got, err := repo.List(context.Background(), repository.AnalysisFilter{Source: entity.SourceURL, Block: "hiragana"}, 20, 10)
	if err != nil || len(got) != 1 {
		t.Fatalf("List err=%v len=%d", err, len(got))
	}
	if diff := cmp.Diff(a, got[0], reportEqual); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestAnalysisRepo_List_NoFilter(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`LIMIT $1 OFFSET $2`)).
		WithArgs(5, 0).
		WillReturnRows(sqlmock.NewRows(columns)) // empty set OK

	got, err := repo.List(context.Background(), repository.AnalysisFilter{}, 0, 5)
	if err != nil || len(got) != 0 {
		t.Fatalf("List err=%v len=%d", err, len(got))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestAnalysisRepo_Count(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM analyses WHERE source = $1`)).
		WithArgs("text").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(42)))

	n, err := repo.Count(context.Background(), repository.AnalysisFilter{Source: entity.SourceText})
	if err != nil || n != 42 {
		t.Fatalf("Count=%d err=%v", n, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

/* ──────────────────────────────── 4. Delete ──────────────────────────────── */

func TestAnalysisRepo_Delete(t *testing.T) {
	repo, mock := newRepo(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM analyses WHERE id = $1`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM analyses WHERE id = $1`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.Delete(context.Background(), id)
	if err != nil || !ok {
		t.Fatalf("first Delete ok=%v err=%v", ok, err)
	}
	ok, err = repo.Delete(context.Background(), id)
	if err != nil || ok {
		t.Fatalf("second Delete ok=%v err=%v", ok, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestAnalysisRepo_DeleteOlderThan(t *testing.T) {
	repo, mock := newRepo(t)
	cutoff := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM analyses WHERE created_at < $1`)).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 7))

	n, err := repo.DeleteOlderThan(context.Background(), cutoff)
	if err != nil || n != 7 {
		t.Fatalf("DeleteOlderThan=%d err=%v", n, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

/* ──────────────────────────────── 5. Query builder ──────────────────────────────── */

func TestAnalysisQueryBuilder(t *testing.T) {
	qb := postgres.NewAnalysisQueryBuilder()

	tests := []struct {
		name       string
		filter     repository.AnalysisFilter
		wantClause string
		wantArgs   []any
	}{
		{"empty", repository.AnalysisFilter{}, "", nil},
		{"source", repository.AnalysisFilter{Source: entity.SourceFeed}, "WHERE source = $1", []any{"feed"}},
		{
			"block",
			repository.AnalysisFilter{Block: "emoticons"},
			"WHERE report @> jsonb_build_array(jsonb_build_object('block', $1::text))",
			[]any{"emoticons"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := qb.BuildWhereClause(tt.filter)
			if clause != tt.wantClause {
				t.Errorf("clause = %q, want %q", clause, tt.wantClause)
			}
			if diff := cmp.Diff(tt.wantArgs, args); diff != "" {
				t.Errorf("args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
