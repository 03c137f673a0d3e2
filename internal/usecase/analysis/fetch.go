package analysis

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"stringlang/internal/domain/entity"
	"stringlang/internal/utils/text"
	"stringlang/pkg/unicodeblock"
)

// FeedItemResult is the analysis of one feed entry.
type FeedItemResult struct {
	Title       string
	URL         string
	PublishedAt time.Time
	Result      *Result
}

// FeedResult holds per-item analyses and their sum.
type FeedResult struct {
	Items []FeedItemResult
	// Merged sums the item reports in catalog order. It is the record that
	// gets archived when persistence is requested.
	Merged *Result
}

// AnalyzeURL fetches the readable text of an article and analyzes it.
// The URL is recorded as the origin of the result.
// Returns ErrFetchDisabled if no content fetcher is configured.
// Returns a *entity.ValidationError if rawURL is not an absolute http(s) URL.
// Fetch failures are wrapped with "fetch content".
func (s *Service) AnalyzeURL(ctx context.Context, rawURL string, opts Options) (*Result, error) {
	if s.Content == nil {
		return nil, ErrFetchDisabled
	}
	if err := entity.ValidateURL(rawURL); err != nil {
		return nil, err
	}
	if _, err := s.Catalog(opts); err != nil {
		s.reject(entity.SourceURL)
		return nil, err
	}

	content, err := s.Content.FetchContent(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch content: %w", err)
	}
	return s.analyzeText(ctx, entity.SourceURL, rawURL, content, opts)
}

// AnalyzeFeed fetches a feed and analyzes each item's title and body. HTML
// bodies are reduced to their visible text first. At most MaxFeedItems items
// are analyzed.
//
// Items are never archived individually. With opts.Persist only the merged
// report is stored, with the feed URL as its origin.
// Returns ErrFetchDisabled if no feed fetcher is configured.
func (s *Service) AnalyzeFeed(ctx context.Context, feedURL string, opts Options) (*FeedResult, error) {
	if s.Feeds == nil {
		return nil, ErrFetchDisabled
	}
	if err := entity.ValidateURL(feedURL); err != nil {
		return nil, err
	}
	cat, err := s.Catalog(opts)
	if err != nil {
		s.reject(entity.SourceFeed)
		return nil, err
	}

	items, err := s.Feeds.Fetch(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	cfg := s.config()
	if len(items) > cfg.MaxFeedItems {
		items = items[:cfg.MaxFeedItems]
	}

	itemOpts := opts
	itemOpts.Persist = false // only the merged record is archived

	out := &FeedResult{Items: make([]FeedItemResult, len(items))}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)
	for i, item := range items {
		g.Go(func() error {
			body := item.Title + "\n" + text.FromHTML(item.Content)
			res, err := s.analyzeText(gctx, entity.SourceFeed, item.URL, body, itemOpts)
			if err != nil {
				return fmt.Errorf("feed item %d: %w", i, err)
			}
			out.Items[i] = FeedItemResult{
				Title:       item.Title,
				URL:         item.URL,
				PublishedAt: item.PublishedAt,
				Result:      res,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	reports := make([]unicodeblock.Report, len(out.Items))
	codePoints := 0
	for i, it := range out.Items {
		reports[i] = it.Result.Report
		codePoints += it.Result.CodePoints
	}
	merged, err := s.finish(ctx, entity.SourceFeed, feedURL, codePoints, unicodeblock.Merge(cat, reports...), opts.Persist)
	if err != nil {
		return nil, err
	}
	out.Merged = merged
	return out, nil
}
