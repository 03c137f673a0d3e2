package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func TestJSON(t *testing.T) {
	tests := []struct {
		name string
		code int
		data any
		body string
	}{
		{name: "map", code: http.StatusOK, data: map[string]int{"basicLatin": 3}, body: `{"basicLatin":3}`},
		{name: "struct", code: http.StatusCreated, data: struct{ ID int }{ID: 123}, body: `{"ID":123}`},
		{name: "nil", code: http.StatusNoContent, data: nil, body: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			JSON(w, tt.code, tt.data)

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.body, strings.TrimSpace(w.Body.String()))
		})
	}
}

func TestSafeError(t *testing.T) {
	tests := []struct {
		name string
		code int
		err  error
		want string
	}{
		{name: "validation", code: http.StatusBadRequest, err: errors.New("text is required"), want: "text is required"},
		{name: "unknown block", code: http.StatusBadRequest, err: errors.New(`unknown unicode block: "klingon"`), want: `unknown unicode block: "klingon"`},
		{name: "not found", code: http.StatusNotFound, err: errors.New("analysis not found"), want: "analysis not found"},
		{name: "internal detail hidden", code: http.StatusBadRequest, err: errors.New("pq: relation analyses does not exist"), want: "internal server error"},
		{name: "5xx always hidden", code: http.StatusInternalServerError, err: errors.New("field is required"), want: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			SafeError(w, tt.code, tt.err)
			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, tt.want, decodeError(t, w))
		})
	}
}

func TestSafeError_Nil(t *testing.T) {
	w := httptest.NewRecorder()
	SafeError(w, http.StatusBadRequest, nil)
	assert.Equal(t, 0, w.Body.Len())
}

func TestSafeErrorV2(t *testing.T) {
	t.Run("app error", func(t *testing.T) {
		w := httptest.NewRecorder()
		err := fmt.Errorf("handler: %w", NewAppError(http.StatusBadGateway, "could not fetch url", errors.New("dial tcp: refused")))
		SafeErrorV2(w, http.StatusInternalServerError, err)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, "could not fetch url", decodeError(t, w))
	})

	t.Run("plain error falls back", func(t *testing.T) {
		w := httptest.NewRecorder()
		SafeErrorV2(w, http.StatusBadRequest, errors.New("url is required"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "url is required", decodeError(t, w))
	})
}

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	e := NewAppError(http.StatusTeapot, "short and stout", cause)
	assert.Equal(t, "boom", e.Error())
	assert.ErrorIs(t, e, cause)
	assert.Equal(t, "short and stout", (&AppError{UserMsg: "short and stout"}).Error())
}
