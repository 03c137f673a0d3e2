package analysis

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"stringlang/internal/handler/http/respond"
	"stringlang/internal/observability/logging"
	analysisUC "stringlang/internal/usecase/analysis"
)

func decodeURLRequest(w http.ResponseWriter, r *http.Request) (URLRequest, bool) {
	var req URLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return req, false
	}
	if req.URL == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("url is required"))
		return req, false
	}
	return req, true
}

type URLHandler struct{ Svc *analysisUC.Service }

// ServeHTTP analyze an article
// @Summary      Analyze the readable text of a web page
// @Description  Fetches the page, extracts its main text and counts it. Private and loopback addresses are refused.
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        request body URLRequest true "Page URL"
// @Success      200 {object} DTO
// @Failure      400 {object} respond.ErrorResponse "Invalid or forbidden URL"
// @Failure      502 {object} respond.ErrorResponse "Upstream fetch failed"
// @Failure      503 {object} respond.ErrorResponse "Fetching is disabled"
// @Failure      504 {object} respond.ErrorResponse "Upstream timeout"
// @Router       /analyze/url [post]
func (h URLHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeURLRequest(w, r)
	if !ok {
		return
	}
	res, err := h.Svc.AnalyzeURL(r.Context(), req.URL, req.options())
	if err != nil {
		logging.FromContext(r.Context()).Warn("url analysis failed",
			slog.String("url", req.URL),
			slog.String("error", respond.SanitizeError(err)))
		WriteError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(res))
}

type FeedHandler struct{ Svc *analysisUC.Service }

// ServeHTTP analyze a feed
// @Summary      Analyze the entries of an RSS or Atom feed
// @Description  Counts the title and visible body text of each entry and merges the reports in catalog order.
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        request body URLRequest true "Feed URL"
// @Success      200 {object} FeedResponse
// @Failure      400 {object} respond.ErrorResponse "Invalid or forbidden URL"
// @Failure      502 {object} respond.ErrorResponse "Upstream fetch failed"
// @Failure      503 {object} respond.ErrorResponse "Fetching is disabled"
// @Router       /analyze/feed [post]
func (h FeedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeURLRequest(w, r)
	if !ok {
		return
	}
	res, err := h.Svc.AnalyzeFeed(r.Context(), req.URL, req.options())
	if err != nil {
		logging.FromContext(r.Context()).Warn("feed analysis failed",
			slog.String("url", req.URL),
			slog.String("error", respond.SanitizeError(err)))
		WriteError(w, err)
		return
	}

	out := FeedResponse{
		Items:  make([]FeedItemDTO, 0, len(res.Items)),
		Merged: toDTO(res.Merged),
	}
	for _, it := range res.Items {
		out.Items = append(out.Items, FeedItemDTO{
			Title:       it.Title,
			URL:         it.URL,
			PublishedAt: it.PublishedAt,
			Analysis:    toDTO(it.Result),
		})
	}
	respond.JSON(w, http.StatusOK, out)
}
