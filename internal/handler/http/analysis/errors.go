package analysis

import (
	"context"
	"errors"
	"net/http"

	"github.com/sony/gobreaker"

	"stringlang/internal/domain/entity"
	"stringlang/internal/domain/profile"
	"stringlang/internal/handler/http/respond"
	analysisUC "stringlang/internal/usecase/analysis"
	"stringlang/internal/usecase/fetch"
	"stringlang/pkg/unicodeblock"
)

// WriteError maps use-case errors to HTTP status codes. Client errors keep
// their message; upstream and internal failures get a fixed one.
func WriteError(w http.ResponseWriter, err error) {
	var ve *unicodeblock.ValidationError
	switch {
	case errors.Is(err, analysisUC.ErrTextTooLong),
		errors.Is(err, analysisUC.ErrBatchTooLarge):
		respond.SafeError(w, http.StatusRequestEntityTooLarge, err)
	case errors.Is(err, analysisUC.ErrEmptyBatch),
		errors.Is(err, analysisUC.ErrInvalidOptions),
		errors.Is(err, unicodeblock.ErrUnknownBlock),
		errors.Is(err, profile.ErrUnknownProfile),
		errors.Is(err, entity.ErrValidationFailed),
		errors.As(err, &ve):
		respond.SafeError(w, http.StatusBadRequest, err)
	case errors.Is(err, analysisUC.ErrAnalysisNotFound):
		respond.SafeError(w, http.StatusNotFound, err)
	case errors.Is(err, analysisUC.ErrFetchDisabled),
		errors.Is(err, analysisUC.ErrArchiveDisabled):
		respond.SafeErrorV2(w, http.StatusServiceUnavailable,
			respond.NewAppError(http.StatusServiceUnavailable, err.Error(), nil))
	case errors.Is(err, fetch.ErrInvalidURL),
		errors.Is(err, fetch.ErrPrivateIP):
		respond.SafeErrorV2(w, http.StatusBadRequest,
			respond.NewAppError(http.StatusBadRequest, "url is invalid or not allowed", err))
	case errors.Is(err, gobreaker.ErrOpenState),
		errors.Is(err, gobreaker.ErrTooManyRequests):
		respond.SafeErrorV2(w, http.StatusServiceUnavailable,
			respond.NewAppError(http.StatusServiceUnavailable, "upstream temporarily unavailable", err))
	case errors.Is(err, fetch.ErrTimeout),
		errors.Is(err, context.DeadlineExceeded):
		respond.SafeErrorV2(w, http.StatusGatewayTimeout,
			respond.NewAppError(http.StatusGatewayTimeout, "upstream timeout", err))
	case errors.Is(err, fetch.ErrTooManyRedirects),
		errors.Is(err, fetch.ErrBodyTooLarge),
		errors.Is(err, fetch.ErrReadabilityFailed),
		errors.Is(err, fetch.ErrFeedFetchFailed),
		errors.Is(err, fetch.ErrInvalidFeedFormat):
		respond.SafeErrorV2(w, http.StatusBadGateway,
			respond.NewAppError(http.StatusBadGateway, "failed to fetch upstream content", err))
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}
