package middleware

import (
	"net/http/httptest"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteAddrExtractor(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		want       string
		wantErr    bool
	}{
		{name: "ipv4 with port", remoteAddr: "192.168.1.1:54321", want: "192.168.1.1"},
		{name: "ipv6 with port", remoteAddr: "[2001:db8::1]:443", want: "2001:db8::1"},
		{name: "ipv4 without port", remoteAddr: "127.0.0.1", want: "127.0.0.1"},
		{name: "bracketed ipv6 without port", remoteAddr: "[::1]", want: "::1"},
		{name: "garbage", remoteAddr: "not-an-address", wantErr: true},
		{name: "empty", remoteAddr: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr

			got, err := (&RemoteAddrExtractor{}).ExtractIP(req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTrustedProxyExtractor(t *testing.T) {
	cfg := TrustedProxyConfig{
		Enabled:      true,
		AllowedCIDRs: []netip.Prefix{netip.MustParsePrefix("10.0.0.0/8")},
	}
	tests := []struct {
		name       string
		cfg        TrustedProxyConfig
		remoteAddr string
		xff        string
		xri        string
		want       string
	}{
		{name: "disabled ignores headers", cfg: TrustedProxyConfig{}, remoteAddr: "10.0.0.1:80", xff: "203.0.113.9", want: "10.0.0.1"},
		{name: "untrusted peer ignores headers", cfg: cfg, remoteAddr: "198.51.100.7:80", xff: "203.0.113.9", want: "198.51.100.7"},
		{name: "trusted peer uses first forwarded", cfg: cfg, remoteAddr: "10.1.2.3:80", xff: "203.0.113.9, 10.1.2.3", want: "203.0.113.9"},
		{name: "trusted peer falls back to x-real-ip", cfg: cfg, remoteAddr: "10.1.2.3:80", xff: "garbage", xri: "203.0.113.10", want: "203.0.113.10"},
		{name: "trusted peer without headers", cfg: cfg, remoteAddr: "10.1.2.3:80", want: "10.1.2.3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				req.Header.Set("X-Real-IP", tt.xri)
			}

			got, err := NewTrustedProxyExtractor(tt.cfg).ExtractIP(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadTrustedProxyConfig(t *testing.T) {
	t.Run("disabled by default", func(t *testing.T) {
		cfg, err := LoadTrustedProxyConfig()
		require.NoError(t, err)
		assert.False(t, cfg.Enabled)
		assert.Empty(t, cfg.AllowedCIDRs)
	})

	t.Run("single ips become host prefixes", func(t *testing.T) {
		t.Setenv("RATELIMIT_TRUST_PROXY", "true")
		t.Setenv("RATELIMIT_TRUSTED_PROXIES", "192.168.1.100, 10.0.0.0/8, 2001:db8::1")

		cfg, err := LoadTrustedProxyConfig()
		require.NoError(t, err)
		assert.Equal(t, []netip.Prefix{
			netip.MustParsePrefix("192.168.1.100/32"),
			netip.MustParsePrefix("10.0.0.0/8"),
			netip.MustParsePrefix("2001:db8::1/128"),
		}, cfg.AllowedCIDRs)
		assert.True(t, cfg.IsTrusted("10.20.30.40:1234"))
		assert.False(t, cfg.IsTrusted("192.168.1.101:1234"))
	})

	t.Run("enabled without proxies", func(t *testing.T) {
		t.Setenv("RATELIMIT_TRUST_PROXY", "true")
		_, err := LoadTrustedProxyConfig()
		assert.ErrorContains(t, err, "RATELIMIT_TRUSTED_PROXIES is empty")
	})

	t.Run("invalid entry", func(t *testing.T) {
		t.Setenv("RATELIMIT_TRUST_PROXY", "true")
		t.Setenv("RATELIMIT_TRUSTED_PROXIES", "10.0.0.0/8,proxy.internal")
		_, err := LoadTrustedProxyConfig()
		assert.ErrorContains(t, err, "proxy.internal")
	})
}
