package fetch

import (
	"context"
	"errors"
	"time"
)

// FeedFetcher returns the items of the RSS, Atom or JSON feed at url.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) ([]FeedItem, error)
}

// FeedItem is one entry of a feed.
type FeedItem struct {
	Title string
	// URL is the item link. It becomes the origin of the item's result.
	URL string
	// Content is the full content, or the description when the feed has
	// none. It may be HTML.
	Content string
	// PublishedAt is zero when the feed gives neither a published nor an
	// updated time.
	PublishedAt time.Time
}

// Feed fetch errors. Download and parse failures are kept apart so callers
// can tell an unreachable host from a page that is not a feed.
var (
	ErrFeedFetchFailed   = errors.New("failed to fetch feed from source")
	ErrInvalidFeedFormat = errors.New("invalid feed format")
)
