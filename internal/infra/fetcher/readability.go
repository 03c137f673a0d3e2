package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"stringlang/internal/observability/metrics"
	"stringlang/internal/resilience/circuitbreaker"
	"stringlang/internal/resilience/retry"
	"stringlang/internal/usecase/fetch"

	"github.com/go-shiori/go-readability"
)

// ReadabilityFetcher implements fetch.ContentFetcher with Mozilla's
// Readability algorithm. It is safe for concurrent use.
type ReadabilityFetcher struct {
	client         *http.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
	config         ContentFetchConfig
}

// NewReadabilityFetcher builds a fetcher with its own HTTP client, circuit
// breaker and retry policy.
//
// Example:
//
//	cfg, err := fetcher.LoadConfigFromEnv()
//	if err != nil {
//	    return err
//	}
//	svc.Content = fetcher.NewReadabilityFetcher(cfg)
func NewReadabilityFetcher(config ContentFetchConfig) *ReadabilityFetcher {
	return &ReadabilityFetcher{
		client:         NewHTTPClient(config),
		circuitBreaker: circuitbreaker.New(circuitbreaker.ContentFetchConfig()),
		retryConfig:    retry.ContentFetchConfig(),
		config:         config,
	}
}

// FetchContent validates urlStr, downloads the page and returns its readable
// text.
//
// Flow:
//  1. ValidateURL (SSRF check)
//  2. HTTP GET under retry.ContentFetchConfig and the content-fetch breaker
//  3. Readability extraction of the main article text
//
// Transient failures (timeouts, 5xx, 429) are retried; policy errors and 4xx
// are not. An open breaker fails fast with gobreaker.ErrOpenState.
//
// Returns:
//   - string: Plain article text without markup
//   - error: See Get for the error kinds
func (f *ReadabilityFetcher) FetchContent(ctx context.Context, urlStr string) (string, error) {
	if err := ValidateURL(ctx, urlStr, f.config.DenyPrivateIPs); err != nil {
		return "", err
	}

	start := time.Now()
	var text string
	err := retry.WithBackoff(ctx, f.retryConfig, func() error {
		var err error
		text, err = circuitbreaker.Do(f.circuitBreaker, func() (string, error) {
			return f.doFetch(ctx, urlStr)
		})
		return err
	})
	metrics.RecordContentFetch("url", time.Since(start), len(text), err)
	if err != nil {
		return "", err
	}
	return text, nil
}

func (f *ReadabilityFetcher) doFetch(ctx context.Context, urlStr string) (string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, f.config.Timeout)
	defer cancel()

	html, finalURL, err := Get(reqCtx, f.client, urlStr, f.config.UserAgent, f.config.MaxBodySize)
	if err != nil {
		return "", err
	}

	article, err := readability.FromReader(bytes.NewReader(html), finalURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", fetch.ErrReadabilityFailed, err)
	}

	if article.TextContent == "" {
		if article.Content == "" {
			return "", fmt.Errorf("%w: no readable content found", fetch.ErrReadabilityFailed)
		}
		slog.Debug("using article Content instead of TextContent",
			slog.String("url", urlStr),
			slog.Int("content_length", len(article.Content)))
		return article.Content, nil
	}
	return article.TextContent, nil
}
