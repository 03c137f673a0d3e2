package entity

import (
	"fmt"
	"net/netip"
	"net/url"
)

// maxURLLength bounds URLs accepted from clients.
const maxURLLength = 2048

// ValidateURL checks that rawURL is an absolute http(s) URL with a host. Hosts
// given as private, loopback or link-local IP literals are rejected; names are
// resolved and checked again by the fetcher at dial time.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return &ValidationError{Field: "url", Message: "url is required"}
	}
	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   "url",
			Message: fmt.Sprintf("url must not exceed %d characters", maxURLLength),
		}
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return &ValidationError{Field: "url", Message: "url is invalid"}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &ValidationError{Field: "url", Message: "url must use http or https scheme"}
	}
	if u.Hostname() == "" {
		return &ValidationError{Field: "url", Message: "url must have a valid host"}
	}
	if addr, err := netip.ParseAddr(u.Hostname()); err == nil && IsPrivateAddr(addr) {
		return &ValidationError{Field: "url", Message: "url cannot point to private network"}
	}
	return nil
}

// IsPrivateAddr reports loopback, private, link-local (including cloud
// metadata), unspecified and multicast addresses.
func IsPrivateAddr(addr netip.Addr) bool {
	addr = addr.Unmap()
	return addr.IsLoopback() ||
		addr.IsPrivate() ||
		addr.IsLinkLocalUnicast() ||
		addr.IsLinkLocalMulticast() ||
		addr.IsUnspecified() ||
		addr.IsMulticast()
}
