package analysis

import (
	"encoding/json"
	"errors"
	"net/http"

	"stringlang/internal/handler/http/respond"
	analysisUC "stringlang/internal/usecase/analysis"
)

type BatchHandler struct{ Svc *analysisUC.Service }

// ServeHTTP analyze many texts
// @Summary      Analyze a batch of texts
// @Description  Analyzes every text with the same selection. Results keep request order.
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        request body BatchRequest true "Texts to analyze"
// @Success      200 {object} BatchResponse
// @Failure      400 {object} respond.ErrorResponse "Empty batch or invalid selection"
// @Failure      413 {object} respond.ErrorResponse "Too many texts or a text too long"
// @Router       /analyze/batch [post]
func (h BatchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	results, err := h.Svc.AnalyzeBatch(r.Context(), req.Texts, req.options())
	if err != nil {
		WriteError(w, err)
		return
	}
	out := BatchResponse{Results: make([]DTO, 0, len(results))}
	for _, res := range results {
		out.Results = append(out.Results, toDTO(res))
	}
	respond.JSON(w, http.StatusOK, out)
}
