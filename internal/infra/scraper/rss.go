// Package scraper fetches RSS, Atom and JSON feeds for analysis.
package scraper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"stringlang/internal/infra/fetcher"
	"stringlang/internal/observability/metrics"
	"stringlang/internal/resilience/circuitbreaker"
	"stringlang/internal/resilience/retry"
	"stringlang/internal/usecase/fetch"

	"github.com/mmcdole/gofeed"
	"github.com/sony/gobreaker"
)

// RSSFetcher implements fetch.FeedFetcher using gofeed, behind a circuit
// breaker and retry.
type RSSFetcher struct {
	client         *http.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
	config         fetcher.ContentFetchConfig
}

// NewRSSFetcher shares the outbound policy of cfg (timeouts, body limit,
// redirects, private address checks) with the content fetcher.
func NewRSSFetcher(cfg fetcher.ContentFetchConfig) *RSSFetcher {
	return &RSSFetcher{
		client:         fetcher.NewHTTPClient(cfg),
		circuitBreaker: circuitbreaker.New(circuitbreaker.FeedFetchConfig()),
		retryConfig:    retry.FeedFetchConfig(),
		config:         cfg,
	}
}

// Fetch retrieves and parses the feed at feedURL.
//
// Flow:
//  1. Validate the URL, resolving the host when private addresses are denied
//  2. Download through the circuit breaker, retrying transient failures
//  3. Parse the body with gofeed, which accepts RSS, Atom and JSON Feed
//
// Returns:
//   - Items in feed order. Published falls back to Updated, content to description.
//   - fetch.ErrFeedFetchFailed for download failures
//   - fetch.ErrInvalidFeedFormat when the body is not a feed
//   - gobreaker.ErrOpenState while the feed circuit is open
func (f *RSSFetcher) Fetch(ctx context.Context, feedURL string) ([]fetch.FeedItem, error) {
	if err := fetcher.ValidateURL(ctx, feedURL, f.config.DenyPrivateIPs); err != nil {
		return nil, err
	}

	start := time.Now()
	var items []fetch.FeedItem
	var size int

	retryErr := retry.WithBackoff(ctx, f.retryConfig, func() error {
		body, err := circuitbreaker.Do(f.circuitBreaker, func() ([]byte, error) {
			return f.download(ctx, feedURL)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("feed fetch circuit breaker open, request rejected",
					slog.String("service", "feed-fetch"),
					slog.String("url", feedURL),
					slog.String("state", f.circuitBreaker.State().String()))
			}
			return err
		}
		size = len(body)
		items, err = parse(body)
		return err
	})
	metrics.RecordContentFetch("feed", time.Since(start), size, retryErr)

	if retryErr != nil {
		return nil, retryErr
	}
	return items, nil
}

func (f *RSSFetcher) download(ctx context.Context, feedURL string) ([]byte, error) {
	reqCtx, cancel := context.WithTimeout(ctx, f.config.Timeout)
	defer cancel()

	body, _, err := fetcher.Get(reqCtx, f.client, feedURL, f.config.UserAgent, f.config.MaxBodySize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", fetch.ErrFeedFetchFailed, err)
	}
	return body, nil
}

// parse is outside the breaker: a malformed feed says nothing about the
// health of the host.
func parse(body []byte) ([]fetch.FeedItem, error) {
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", fetch.ErrInvalidFeedFormat, err)
	}

	items := make([]fetch.FeedItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		var pubAt time.Time
		switch {
		case it.PublishedParsed != nil:
			pubAt = *it.PublishedParsed
		case it.UpdatedParsed != nil:
			pubAt = *it.UpdatedParsed
		}

		// Prefer the full content; many feeds only carry a summary.
		content := it.Content
		if content == "" {
			content = it.Description
		}

		items = append(items, fetch.FeedItem{
			Title:       it.Title,
			URL:         it.Link,
			Content:     content,
			PublishedAt: pubAt,
		})
	}
	return items, nil
}
