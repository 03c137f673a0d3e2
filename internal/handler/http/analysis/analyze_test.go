package analysis_test

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stringlang/internal/domain/profile"
	handler "stringlang/internal/handler/http/analysis"
	"stringlang/internal/usecase/analysis"
	"stringlang/internal/usecase/fetch"
	"stringlang/pkg/unicodeblock"
)

func newService(t *testing.T) *analysis.Service {
	t.Helper()
	reg, err := profile.NewRegistry(unicodeblock.Standard(),
		profile.Definition{Name: "cjk", Blocks: []string{"cjkUnifiedIdeographs", "hiragana", "katakana"}})
	require.NoError(t, err)
	return &analysis.Service{
		Profiles: reg,
		Config:   analysis.Config{MaxRunes: 10, MaxBatch: 3, Concurrency: 2, MaxFeedItems: 5},
	}
}

func TestAnalyzeHandler(t *testing.T) {
	utf16 := func(units ...uint16) string {
		b := make([]byte, 0, 2*len(units))
		for _, u := range units {
			b = append(b, byte(u), byte(u>>8))
		}
		return base64.StdEncoding.EncodeToString(b)
	}

	tests := []struct {
		name     string
		body     string
		wantCode int
		wantBody string
	}{
		{"ordered report", `{"text":"Aa文"}`, http.StatusOK,
			`"report":{"basicLatin":2,"cjkUnifiedIdeographs":1}`},
		{"emoji counts once", `{"text":"😀b"}`, http.StatusOK,
			`"report":{"basicLatin":1,"emoticons":1}`},
		{"unassigned gap", `{"text":"⿠"}`, http.StatusOK, `"report":{}`},
		{"block subset", `{"text":"Aa文","blocks":["cjkUnifiedIdeographs"]}`, http.StatusOK,
			`"report":{"cjkUnifiedIdeographs":1}`},
		{"profile", `{"text":"Aかa","profile":"cjk"}`, http.StatusOK, `"report":{"hiragana":1}`},
		{"utf16 pair", `{"utf16le":"` + utf16(0xD83D, 0xDE00) + `"}`, http.StatusOK,
			`"report":{"emoticons":1}`},
		{"utf16 lone kept", `{"utf16le":"` + utf16(0xDC00) + `","surrogates":"keep"}`, http.StatusOK,
			`"report":{"lowSurrogates":1}`},
		{"utf16 lone replaced", `{"utf16le":"` + utf16(0xDC00) + `"}`, http.StatusOK,
			`"report":{"specials":1}`},
		{"empty text", `{"text":""}`, http.StatusOK, `"report":{}`},
		{"empty text with profile", `{"text":"","profile":"cjk"}`, http.StatusOK, `"code_points":0`},
		{"missing text", `{}`, http.StatusBadRequest, "text is required"},
		{"malformed", `{"text":`, http.StatusBadRequest, "invalid request body"},
		{"text and utf16", `{"text":"a","utf16le":"` + utf16('a') + `"}`, http.StatusBadRequest, "cannot be combined"},
		{"bad surrogate policy", `{"utf16le":"` + utf16('a') + `","surrogates":"drop"}`, http.StatusBadRequest, "unknown policy"},
		{"unknown block", `{"text":"a","blocks":["klingon"]}`, http.StatusBadRequest, "unknown unicode block"},
		{"unknown profile", `{"text":"a","profile":"klingon"}`, http.StatusBadRequest, "unknown profile"},
		{"blocks with profile", `{"text":"a","profile":"cjk","blocks":["basicLatin"]}`, http.StatusBadRequest, "cannot be combined"},
		{"too long", `{"text":"` + strings.Repeat("x", 11) + `"}`, http.StatusRequestEntityTooLarge, "text too long"},
		{"persist without archive", `{"text":"a","persist":true}`, http.StatusServiceUnavailable, "archive is disabled"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, handler.AnalyzeHandler{Svc: newService(t)}, "/analyze", tt.body)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestAnalyzeHandler_Persist(t *testing.T) {
	svc := newService(t)
	repo := newMemRepo()
	svc.Repo = repo
	svc.Now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	rec := post(t, handler.AnalyzeHandler{Svc: svc}, "/analyze", `{"text":"Aa","persist":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	dto := decode[handler.DTO](t, rec)
	assert.NotEmpty(t, dto.ID)
	assert.Equal(t, "text", dto.Source)
	assert.Equal(t, 2, dto.CodePoints)
	assert.Len(t, repo.data, 1)
}

func TestBatchHandler(t *testing.T) {
	h := handler.BatchHandler{Svc: newService(t)}

	rec := post(t, h, "/analyze/batch", `{"texts":["A","文","😀"]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[handler.BatchResponse](t, rec)
	require.Len(t, resp.Results, 3)
	assert.Equal(t, []string{"basicLatin"}, resp.Results[0].Report.Names())
	assert.Equal(t, []string{"cjkUnifiedIdeographs"}, resp.Results[1].Report.Names())
	assert.Equal(t, []string{"emoticons"}, resp.Results[2].Report.Names())

	assert.Equal(t, http.StatusBadRequest, post(t, h, "/analyze/batch", `{"texts":[]}`).Code)
	assert.Equal(t, http.StatusRequestEntityTooLarge, post(t, h, "/analyze/batch", `{"texts":["a","b","c","d"]}`).Code)
}

func TestURLHandler(t *testing.T) {
	tests := []struct {
		name     string
		content  fetch.ContentFetcher
		body     string
		wantCode int
	}{
		{"analyzed", stubContent{body: "Grüße"}, `{"url":"https://example.com/a"}`, http.StatusOK},
		{"disabled", nil, `{"url":"https://example.com/a"}`, http.StatusServiceUnavailable},
		{"missing url", stubContent{}, `{}`, http.StatusBadRequest},
		{"private address", stubContent{}, `{"url":"http://127.0.0.1/admin"}`, http.StatusBadRequest},
		{"bad scheme", stubContent{}, `{"url":"ftp://example.com"}`, http.StatusBadRequest},
		{"upstream failure", stubContent{err: fetch.ErrReadabilityFailed}, `{"url":"https://example.com/a"}`, http.StatusBadGateway},
		{"upstream timeout", stubContent{err: fetch.ErrTimeout}, `{"url":"https://example.com/a"}`, http.StatusGatewayTimeout},
		{"unexpected failure", stubContent{err: errors.New("boom")}, `{"url":"https://example.com/a"}`, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t)
			svc.Content = tt.content
			rec := post(t, handler.URLHandler{Svc: svc}, "/analyze/url", tt.body)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			if tt.wantCode >= 500 {
				assert.NotContains(t, rec.Body.String(), "boom")
			}
		})
	}
}

func TestFeedHandler(t *testing.T) {
	svc := newService(t)
	svc.Feeds = stubFeed{items: []fetch.FeedItem{
		{Title: "A", URL: "https://example.com/1", Content: "<p>文</p>"},
		{Title: "B", URL: "https://example.com/2", Content: "b"},
	}}

	rec := post(t, handler.FeedHandler{Svc: svc}, "/analyze/feed", `{"url":"https://example.com/feed"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[handler.FeedResponse](t, rec)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "https://example.com/1", resp.Items[0].URL)
	assert.Equal(t, 1, resp.Items[0].Analysis.Report.Get("cjkUnifiedIdeographs"))
	assert.Equal(t, 1, resp.Merged.Report.Get("cjkUnifiedIdeographs"))
	assert.Equal(t,
		resp.Items[0].Analysis.Report.Get("basicLatin")+resp.Items[1].Analysis.Report.Get("basicLatin"),
		resp.Merged.Report.Get("basicLatin"))
	assert.Equal(t, "feed", resp.Merged.Source)

	svc.Feeds = stubFeed{err: fetch.ErrInvalidFeedFormat}
	rec = post(t, handler.FeedHandler{Svc: svc}, "/analyze/feed", `{"url":"https://example.com/feed"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
