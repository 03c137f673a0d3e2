// Package fetch declares the ports the analysis use case uses to pull text
// from the network. Implementations live in internal/infra.
package fetch

import (
	"context"
	"errors"
)

// ContentFetcher returns the readable text of the article at url.
//
// The analysis use case counts what a reader would see, so implementations
// strip navigation, scripts and markup before returning.
//
// Example:
//
//	f := fetcher.NewReadabilityFetcher(fetcher.DefaultConfig())
//	text, err := f.FetchContent(ctx, "https://example.com/article")
//
// Implementations must refuse private destinations, bound the response size
// and the request time, and check every redirect target.
type ContentFetcher interface {
	// FetchContent downloads the page and extracts its main text.
	//
	// Errors:
	//   - ErrInvalidURL: not an absolute http(s) URL
	//   - ErrPrivateIP: the host resolves to a private or loopback address
	//   - ErrTooManyRedirects: the redirect chain exceeds the configured maximum
	//   - ErrBodyTooLarge: the body exceeds the size limit
	//   - ErrTimeout: the request timed out
	//   - ErrReadabilityFailed: no article text could be extracted
	//   - gobreaker.ErrOpenState: the content circuit is open
	FetchContent(ctx context.Context, url string) (string, error)
}

// Sentinel errors of the fetch ports. Handlers map them to 4xx or 502
// responses; see the analysis handler.
var (
	// ErrInvalidURL indicates a malformed URL or a scheme other than http(s),
	// e.g. "file:///etc/passwd".
	ErrInvalidURL = errors.New("invalid URL or unsupported scheme")

	// ErrPrivateIP indicates the destination is loopback, private, link-local
	// (including cloud metadata at 169.254.169.254) or unspecified.
	ErrPrivateIP = errors.New("private IP access denied (SSRF prevention)")

	// ErrTooManyRedirects indicates the redirect chain exceeded its limit.
	ErrTooManyRedirects = errors.New("too many redirects")

	// ErrBodyTooLarge indicates the response exceeded the body size limit.
	ErrBodyTooLarge = errors.New("response body too large")

	// ErrTimeout indicates the request did not finish in time.
	ErrTimeout = errors.New("request timeout")

	// ErrReadabilityFailed indicates the page held no extractable article.
	ErrReadabilityFailed = errors.New("content extraction failed")
)
