// Package fetcher provides the HTTP client and content fetcher used to
// analyze remote articles.
package fetcher

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"net/url"
	"syscall"

	"stringlang/internal/domain/entity"
	"stringlang/internal/usecase/fetch"
)

// lookupNetIP is replaced in tests.
var lookupNetIP = net.DefaultResolver.LookupNetIP

// ValidateURL checks urlStr before any request is made.
//
// Checks:
//   - scheme is http or https
//   - host is present
//   - with denyPrivateIPs, every address the host resolves to is public
//     (not loopback, private, link-local, multicast or unspecified)
//
// Parameters:
//   - ctx: Bounds the DNS lookup
//   - urlStr: URL to check
//   - denyPrivateIPs: Enables the address check
//
// Returns:
//   - error: nil if allowed; otherwise wraps fetch.ErrInvalidURL or
//     fetch.ErrPrivateIP
//
// Example:
//
//	if err := ValidateURL(ctx, "http://169.254.169.254/latest", true); err != nil {
//	    // errors.Is(err, fetch.ErrPrivateIP) == true
//	}
func ValidateURL(ctx context.Context, urlStr string, denyPrivateIPs bool) error {
	u, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("%w: parse error: %v", fetch.ErrInvalidURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme '%s' not allowed (only http/https)", fetch.ErrInvalidURL, u.Scheme)
	}

	hostname := u.Hostname()
	if hostname == "" {
		return fmt.Errorf("%w: empty hostname", fetch.ErrInvalidURL)
	}

	if !denyPrivateIPs {
		return nil
	}

	if addr, err := netip.ParseAddr(hostname); err == nil {
		return checkAddr(hostname, addr)
	}

	addrs, err := lookupNetIP(ctx, "ip", hostname)
	if err != nil {
		return fmt.Errorf("%w: DNS lookup failed for %s: %v", fetch.ErrInvalidURL, hostname, err)
	}
	for _, addr := range addrs {
		if err := checkAddr(hostname, addr); err != nil {
			return err
		}
	}
	return nil
}

func checkAddr(hostname string, addr netip.Addr) error {
	if entity.IsPrivateAddr(addr) {
		return fmt.Errorf("%w: hostname '%s' resolves to private IP %s", fetch.ErrPrivateIP, hostname, addr)
	}
	return nil
}

// dialGuard rejects connections to private addresses after DNS resolution,
// so a name that changes its answer between validation and dial is still caught.
func dialGuard(_, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return fmt.Errorf("%w: %v", fetch.ErrInvalidURL, err)
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return fmt.Errorf("%w: %v", fetch.ErrInvalidURL, err)
	}
	return checkAddr(host, addr)
}
