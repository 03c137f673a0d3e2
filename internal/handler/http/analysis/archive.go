package analysis

import (
	"log/slog"
	"net/http"
	"time"

	"stringlang/internal/common/pagination"
	"stringlang/internal/domain/entity"
	"stringlang/internal/handler/http/auth"
	"stringlang/internal/handler/http/pathutil"
	"stringlang/internal/handler/http/respond"
	"stringlang/internal/observability/logging"
	"stringlang/internal/repository"
	analysisUC "stringlang/internal/usecase/analysis"
)

type ListHandler struct {
	Svc           *analysisUC.Service
	PaginationCfg pagination.Config
}

// ServeHTTP list archived analyses
// @Summary      List archived analyses
// @Description  Returns archived analyses newest first. Filter by source or by a block the report must contain.
// @Tags         archive
// @Security     BearerAuth
// @Produce      json
// @Param        page    query  int     false  "Page number (1-based)" default(1) minimum(1)
// @Param        limit   query  int     false  "Items per page" default(20) minimum(1) maximum(100)
// @Param        source  query  string  false  "text, url, feed or batch"
// @Param        block   query  string  false  "Block name the report must contain"
// @Success      200 {object} pagination.Response[DTO]
// @Failure      400 {object} respond.ErrorResponse "Invalid query parameters"
// @Failure      401 {object} respond.ErrorResponse "Missing or invalid token"
// @Failure      503 {object} respond.ErrorResponse "Archive disabled"
// @Router       /analyses [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	logger := logging.FromContext(ctx)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		pagination.RecordRequest(http.StatusBadRequest, 0)
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	q := r.URL.Query()
	filter := repository.AnalysisFilter{
		Source: entity.Source(q.Get("source")),
		Block:  q.Get("block"),
	}
	result, err := h.Svc.List(ctx, params, filter)
	if err != nil {
		logger.Error("failed to list analyses",
			slog.String("error", respond.SanitizeError(err)),
			slog.Int("page", params.Page),
			slog.Int("limit", params.Limit))
		WriteError(w, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Data))
	for _, a := range result.Data {
		dtos = append(dtos, toDTO(a))
	}
	pagination.RecordRequest(http.StatusOK, params.Page)
	logger.Info("paginated analyses",
		slog.Int("page", params.Page),
		slog.Int("limit", params.Limit),
		slog.Int("returned_count", len(dtos)),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))

	respond.JSON(w, http.StatusOK, pagination.NewResponse(dtos, result.Pagination))
}

type GetHandler struct{ Svc *analysisUC.Service }

// ServeHTTP get an archived analysis
// @Summary      Get an archived analysis
// @Tags         archive
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Analysis ID" format(uuid)
// @Success      200 {object} DTO
// @Failure      400 {object} respond.ErrorResponse "Invalid ID"
// @Failure      401 {object} respond.ErrorResponse "Missing or invalid token"
// @Failure      404 {object} respond.ErrorResponse "Not found"
// @Router       /analyses/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	res, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(res))
}

type DeleteHandler struct{ Svc *analysisUC.Service }

// ServeHTTP delete an archived analysis
// @Summary      Delete an archived analysis
// @Tags         archive
// @Security     BearerAuth
// @Param        id path string true "Analysis ID" format(uuid)
// @Success      204 "Deleted"
// @Failure      400 {object} respond.ErrorResponse "Invalid ID"
// @Failure      401 {object} respond.ErrorResponse "Missing or invalid token"
// @Failure      403 {object} respond.ErrorResponse "Admin role required"
// @Failure      404 {object} respond.ErrorResponse "Not found"
// @Router       /analyses/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	if u, ok := auth.UserFromContext(r.Context()); ok {
		logging.FromContext(r.Context()).Info("analysis deleted",
			slog.String("id", id.String()),
			slog.String("user", u.Subject))
	}
	w.WriteHeader(http.StatusNoContent)
}
