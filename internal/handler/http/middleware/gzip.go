package middleware

import (
	"fmt"
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// gzipMinSize keeps tiny replies like {"block":"x","count":1} uncompressed.
const gzipMinSize = 1024

// Gzip returns a middleware that compresses responses for clients sending
// Accept-Encoding: gzip.
//
// Responses smaller than gzipMinSize are sent as is. The wrapper also sets
// Vary: Accept-Encoding and drops Content-Length on compressed replies.
//
// Returns:
//   - func(http.Handler) http.Handler: The middleware
//   - error: When the gzhttp wrapper rejects its options
//
// Example:
//
//	gz, err := middleware.Gzip()
//	if err != nil {
//	    return err
//	}
//	srv.Handler = gz(mux)
func Gzip() (func(http.Handler) http.Handler, error) {
	wrap, err := gzhttp.NewWrapper(gzhttp.MinSize(gzipMinSize))
	if err != nil {
		return nil, fmt.Errorf("gzip wrapper: %w", err)
	}
	return func(next http.Handler) http.Handler {
		return wrap(next)
	}, nil
}
