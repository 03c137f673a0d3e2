package fetcher

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"stringlang/internal/resilience/retry"
	"stringlang/internal/usecase/fetch"
)

// NewHTTPClient returns a client that enforces cfg's timeout, redirect limit
// and private address policy. It is shared by the content and feed fetchers.
func NewHTTPClient(cfg ContentFetchConfig) *http.Client {
	dialer := &net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	if cfg.DenyPrivateIPs {
		dialer.Control = dialGuard
	}

	return &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			DialContext:         dialer.DialContext,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 5 * time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= cfg.MaxRedirects {
				return fmt.Errorf("%w: %d redirects", fetch.ErrTooManyRedirects, len(via))
			}
			if err := ValidateURL(req.Context(), req.URL.String(), cfg.DenyPrivateIPs); err != nil {
				return fmt.Errorf("redirect target validation failed: %w", err)
			}
			return nil
		},
	}
}

// Get issues a GET for urlStr and returns the body and the final URL after
// redirects.
//
// Parameters:
//   - ctx: Cancels the request
//   - client: Usually from NewHTTPClient
//   - urlStr: Absolute URL, already validated
//   - userAgent: User-Agent header value
//   - maxBody: Byte cap enforced while reading
//
// Returns:
//   - []byte: The body, at most maxBody bytes
//   - *url.URL: Final URL, used to resolve relative links
//   - error: fetch.ErrTimeout, fetch.ErrBodyTooLarge, a policy error from a
//     redirect, or *retry.HTTPError for non-200 responses so the caller's retry
//     policy can classify them
func Get(ctx context.Context, client *http.Client, urlStr, userAgent string, maxBody int64) ([]byte, *url.URL, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to create request: %v", fetch.ErrInvalidURL, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, nil, fmt.Errorf("%w: %v", fetch.ErrTimeout, err)
		}
		var urlErr *url.Error
		if errors.As(err, &urlErr) && isPolicyError(urlErr.Err) {
			return nil, nil, urlErr.Err
		}
		return nil, nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, &retry.HTTPError{StatusCode: resp.StatusCode, Message: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody+1))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(body)) > maxBody {
		return nil, nil, fmt.Errorf("%w: response exceeds limit %d bytes", fetch.ErrBodyTooLarge, maxBody)
	}

	final := req.URL
	if resp.Request != nil && resp.Request.URL != nil {
		final = resp.Request.URL
	}
	return body, final, nil
}

func isPolicyError(err error) bool {
	return errors.Is(err, fetch.ErrInvalidURL) ||
		errors.Is(err, fetch.ErrPrivateIP) ||
		errors.Is(err, fetch.ErrTooManyRedirects)
}
