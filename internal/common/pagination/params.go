// Package pagination parses page/limit query parameters and shapes paged
// responses for the archive listing.
package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

// Params is a 1-based page and a page size.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the number of rows to skip.
func (p Params) Offset() int {
	return CalculateOffset(p.Page, p.Limit)
}

// ParseQueryParams reads ?page= and ?limit= from r.
//
// Missing values take config.DefaultPage and config.DefaultLimit. Present values
// must be integers with page >= 1 and 1 <= limit <= config.MaxLimit.
//
// Parameters:
//   - r: Incoming request
//   - config: Defaults and the limit cap
//
// Returns:
//   - Params: The parsed values
//   - error: A client-facing message suitable for a 400 response
//
// Example:
//
//	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
//	if err != nil {
//	    respond.SafeError(w, http.StatusBadRequest, err)
//	    return
//	}
func ParseQueryParams(r *http.Request, config Config) (Params, error) {
	params := Params{
		Page:  config.DefaultPage,
		Limit: config.DefaultLimit,
	}
	q := r.URL.Query()

	if pageStr := q.Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return params, fmt.Errorf("invalid query parameter: page must be a positive integer")
		}
		params.Page = page
	}

	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > config.MaxLimit {
			return params, fmt.Errorf("invalid query parameter: limit must be between 1 and %d", config.MaxLimit)
		}
		params.Limit = limit
	}

	return params, nil
}
