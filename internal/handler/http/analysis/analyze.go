package analysis

import (
	"encoding/json"
	"errors"
	"net/http"

	"stringlang/internal/handler/http/respond"
	analysisUC "stringlang/internal/usecase/analysis"
	"stringlang/pkg/unicodeblock"
)

type AnalyzeHandler struct{ Svc *analysisUC.Service }

// ServeHTTP analyze text
// @Summary      Count characters per Unicode block
// @Description  Returns the blocks with at least one code point in the text, in catalog order. Blocks and profile narrow the catalog; persist archives the result.
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        request body AnalyzeRequest true "Text to analyze"
// @Success      200 {object} DTO
// @Failure      400 {object} respond.ErrorResponse "Missing text, unknown block or profile"
// @Failure      413 {object} respond.ErrorResponse "Text too long"
// @Failure      429 {object} respond.ErrorResponse "Rate limit exceeded"
// @Header       429 {integer} Retry-After "Seconds until the client should retry"
// @Failure      503 {object} respond.ErrorResponse "Persist requested but the archive is disabled"
// @Router       /analyze [post]
func (h AnalyzeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	opts := req.options()
	var (
		res *analysisUC.Result
		err error
	)
	switch {
	case req.UTF16LE != nil:
		if req.Text != nil {
			respond.SafeError(w, http.StatusBadRequest, errors.New("text and utf16le cannot be combined"))
			return
		}
		if len(req.UTF16LE)%2 != 0 {
			respond.SafeError(w, http.StatusBadRequest, errors.New("utf16le must be an even number of bytes"))
			return
		}
		opts.Surrogates, err = unicodeblock.ParseSurrogatePolicy(req.Surrogates)
		if err != nil {
			WriteError(w, err)
			return
		}
		res, err = h.Svc.AnalyzeUTF16(r.Context(), unicodeblock.DecodeUTF16LE(req.UTF16LE), opts)
	case req.Text != nil:
		res, err = h.Svc.AnalyzeWith(r.Context(), *req.Text, opts)
	default:
		respond.SafeError(w, http.StatusBadRequest, errors.New("text is required"))
		return
	}
	if err != nil {
		WriteError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(res))
}
