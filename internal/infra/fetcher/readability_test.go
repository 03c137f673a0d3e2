package fetcher_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"stringlang/internal/infra/fetcher"
	"stringlang/internal/resilience/retry"
	"stringlang/internal/usecase/fetch"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>Test Article</title></head>
<body>
	<article>
		<h1>Test Article Title</h1>
		<p>This is the first paragraph of the article content.</p>
		<p>This is the second paragraph with more important information.</p>
		<p>これは三番目の段落です。十分な内容があることを確認します。</p>
	</article>
</body>
</html>`

func localConfig() fetcher.ContentFetchConfig {
	cfg := fetcher.DefaultConfig()
	cfg.DenyPrivateIPs = false // httptest listens on loopback
	return cfg
}

func TestFetchContent_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "StringlangBot/1.0" {
			t.Errorf("expected User-Agent='StringlangBot/1.0', got %q", got)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer server.Close()

	content, err := fetcher.NewReadabilityFetcher(localConfig()).FetchContent(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchContent() error = %v", err)
	}
	if !strings.Contains(content, "first paragraph") {
		t.Errorf("expected content to contain 'first paragraph', got: %q", content)
	}
	if !strings.Contains(content, "三番目の段落") {
		t.Errorf("expected content to keep non-Latin text, got: %q", content)
	}
	if strings.Contains(content, "<p>") {
		t.Errorf("expected plain text, got: %q", content)
	}
}

func TestFetchContent_InvalidURL(t *testing.T) {
	f := fetcher.NewReadabilityFetcher(fetcher.DefaultConfig())

	tests := []struct {
		name string
		url  string
		want error
	}{
		{name: "ftp scheme", url: "ftp://example.com/file", want: fetch.ErrInvalidURL},
		{name: "file scheme", url: "file:///etc/passwd", want: fetch.ErrInvalidURL},
		{name: "no host", url: "http://", want: fetch.ErrInvalidURL},
		{name: "malformed", url: "http://[::1", want: fetch.ErrInvalidURL},
		{name: "loopback", url: "http://127.0.0.1/", want: fetch.ErrPrivateIP},
		{name: "ipv6 loopback", url: "http://[::1]/", want: fetch.ErrPrivateIP},
		{name: "10/8", url: "http://10.0.0.1/", want: fetch.ErrPrivateIP},
		{name: "172.16/12", url: "http://172.16.0.1/", want: fetch.ErrPrivateIP},
		{name: "192.168/16", url: "http://192.168.1.1/", want: fetch.ErrPrivateIP},
		{name: "metadata", url: "http://169.254.169.254/latest/meta-data/", want: fetch.ErrPrivateIP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.FetchContent(context.Background(), tt.url)
			if !errors.Is(err, tt.want) {
				t.Errorf("FetchContent(%q) error = %v, want %v", tt.url, err, tt.want)
			}
		})
	}
}

func TestFetchContent_ReadabilityFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body></body></html>"))
	}))
	defer server.Close()

	_, err := fetcher.NewReadabilityFetcher(localConfig()).FetchContent(context.Background(), server.URL)
	if !errors.Is(err, fetch.ErrReadabilityFailed) {
		t.Errorf("expected ErrReadabilityFailed, got %v", err)
	}
}

func TestFetchContent_NotFoundIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := fetcher.NewReadabilityFetcher(localConfig()).FetchContent(context.Background(), server.URL)

	var httpErr *retry.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *retry.HTTPError, got %v", err)
	}
	if httpErr.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", httpErr.StatusCode)
	}
	if calls.Load() != 1 {
		t.Errorf("expected 1 request, got %d", calls.Load())
	}
}

func TestFetchContent_ServerErrorIsRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer server.Close()

	content, err := fetcher.NewReadabilityFetcher(localConfig()).FetchContent(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchContent() error = %v", err)
	}
	if content == "" {
		t.Error("expected content after retry")
	}
	if calls.Load() != 2 {
		t.Errorf("expected 2 requests, got %d", calls.Load())
	}
}

func TestFetchContent_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer server.Close()

	cfg := localConfig()
	cfg.Timeout = 100 * time.Millisecond

	_, err := fetcher.NewReadabilityFetcher(cfg).FetchContent(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestFetchContent_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := fetcher.NewReadabilityFetcher(localConfig()).FetchContent(ctx, server.URL)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestFetchContent_BodyTooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body><p>" + strings.Repeat("a", 4096) + "</p></body></html>"))
	}))
	defer server.Close()

	cfg := localConfig()
	cfg.MaxBodySize = 1024

	_, err := fetcher.NewReadabilityFetcher(cfg).FetchContent(context.Background(), server.URL)
	if !errors.Is(err, fetch.ErrBodyTooLarge) {
		t.Errorf("expected ErrBodyTooLarge, got %v", err)
	}
}

func TestFetchContent_Redirects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/article", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(articleHTML))
	})
	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/article", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/loop", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/loop", http.StatusFound)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	f := fetcher.NewReadabilityFetcher(localConfig())

	content, err := f.FetchContent(context.Background(), server.URL+"/old")
	if err != nil {
		t.Fatalf("FetchContent(/old) error = %v", err)
	}
	if !strings.Contains(content, "first paragraph") {
		t.Errorf("expected redirected article, got %q", content)
	}

	_, err = f.FetchContent(context.Background(), server.URL+"/loop")
	if !errors.Is(err, fetch.ErrTooManyRedirects) {
		t.Errorf("expected ErrTooManyRedirects, got %v", err)
	}
}

func TestGet_RedirectToPrivateIP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "http://169.254.169.254/latest/meta-data/", http.StatusFound)
	}))
	defer server.Close()

	// Unguarded transport so the loopback test server is reachable; redirect
	// targets are still validated by the client.
	client := fetcher.NewHTTPClient(fetcher.DefaultConfig())
	client.Transport = http.DefaultTransport

	_, _, err := fetcher.Get(context.Background(), client, server.URL, "test", 1024)
	if !errors.Is(err, fetch.ErrPrivateIP) {
		t.Errorf("expected ErrPrivateIP, got %v", err)
	}
}

func TestGet_DialGuardRefusesLoopback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	}))
	defer server.Close()

	client := fetcher.NewHTTPClient(fetcher.DefaultConfig())
	_, _, err := fetcher.Get(context.Background(), client, server.URL, "test", 1024)
	if !errors.Is(err, fetch.ErrPrivateIP) {
		t.Errorf("expected ErrPrivateIP, got %v", err)
	}
}

func TestFetchContent_CircuitBreakerOpens(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	f := fetcher.NewReadabilityFetcher(localConfig())
	for i := 0; i < 5; i++ {
		_, _ = f.FetchContent(context.Background(), server.URL)
	}
	before := calls.Load()

	_, err := f.FetchContent(context.Background(), server.URL)
	if err == nil || !strings.Contains(err.Error(), "circuit breaker is open") {
		t.Errorf("expected open breaker error, got %v", err)
	}
	if calls.Load() != before {
		t.Errorf("expected no request while open, got %d more", calls.Load()-before)
	}
}
