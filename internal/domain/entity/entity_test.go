package entity

import (
	"errors"
	"net/netip"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stringlang/pkg/unicodeblock"
)

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "text", Message: "text is required"}
	assert.Equal(t, "validation error on field 'text': text is required", err.Error())
	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, errors.New("validation failed")))
}

func TestNewAnalysis(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("JST", 9*3600))
	a := NewAnalysis(SourceText, "", 3, unicodeblock.Analyze("Aa文"), now)

	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.Equal(t, time.UTC, a.CreatedAt.Location())
	assert.True(t, a.CreatedAt.Equal(now))
	require.NoError(t, a.Validate())
}

func TestAnalysis_Validate(t *testing.T) {
	valid := func() *Analysis {
		return NewAnalysis(SourceURL, "https://example.com", 1, unicodeblock.Analyze("A"), time.Now())
	}
	tests := []struct {
		name   string
		mutate func(*Analysis)
		field  string
	}{
		{name: "nil id", mutate: func(a *Analysis) { a.ID = uuid.Nil }, field: "id"},
		{name: "bad source", mutate: func(a *Analysis) { a.Source = "email" }, field: "source"},
		{name: "negative code points", mutate: func(a *Analysis) { a.CodePoints = -1 }, field: "code_points"},
		{name: "report without code points", mutate: func(a *Analysis) { a.CodePoints = 0 }, field: "code_points"},
		{name: "long origin", mutate: func(a *Analysis) { a.Origin = strings.Repeat("x", 2049) }, field: "origin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := valid()
			tt.mutate(a)
			var verr *ValidationError
			require.ErrorAs(t, a.Validate(), &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr string
	}{
		{name: "https", url: "https://example.com/post"},
		{name: "http with port", url: "http://example.com:8080/feed.xml"},
		{name: "empty", url: "", wantErr: "url is required"},
		{name: "too long", url: "https://example.com/" + strings.Repeat("a", 2048), wantErr: "must not exceed"},
		{name: "ftp", url: "ftp://example.com/file", wantErr: "http or https"},
		{name: "no host", url: "https:///path", wantErr: "valid host"},
		{name: "loopback", url: "http://127.0.0.1/admin", wantErr: "private network"},
		{name: "metadata", url: "http://169.254.169.254/latest/meta-data", wantErr: "private network"},
		{name: "private v6", url: "http://[fd00::1]/", wantErr: "private network"},
		{name: "mapped v4", url: "http://[::ffff:10.0.0.1]/", wantErr: "private network"},
		{name: "control char", url: "http://exa mple.com/\x7f", wantErr: "invalid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestIsPrivateAddr(t *testing.T) {
	assert.True(t, IsPrivateAddr(netip.MustParseAddr("192.168.1.10")))
	assert.True(t, IsPrivateAddr(netip.MustParseAddr("::1")))
	assert.True(t, IsPrivateAddr(netip.MustParseAddr("0.0.0.0")))
	assert.False(t, IsPrivateAddr(netip.MustParseAddr("93.184.216.34")))
	assert.False(t, IsPrivateAddr(netip.MustParseAddr("2606:2800:220:1::1")))
}
