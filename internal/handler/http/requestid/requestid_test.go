package requestid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantEcho bool
	}{
		{name: "generates when missing", header: "", wantEcho: false},
		{name: "propagates caller id", header: "req-abc-123", wantEcho: true},
		{name: "rejects whitespace", header: "bad id", wantEcho: false},
		{name: "rejects newline", header: "bad\nid", wantEcho: false},
		{name: "rejects long id", header: strings.Repeat("a", 129), wantEcho: false},
		{name: "rejects non ascii", header: "ид", wantEcho: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = FromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/blocks", nil)
			if tt.header != "" {
				req.Header.Set(RequestIDHeader, tt.header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			got := rr.Header().Get(RequestIDHeader)
			assert.Equal(t, seen, got)
			if tt.wantEcho {
				assert.Equal(t, tt.header, got)
				return
			}
			_, err := uuid.Parse(got)
			require.NoError(t, err)
		})
	}
}

func TestFromContext_Empty(t *testing.T) {
	assert.Equal(t, "", FromContext(context.Background()))
	assert.Equal(t, "x", FromContext(WithRequestID(context.Background(), "x")))
}
