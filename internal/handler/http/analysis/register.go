package analysis

import (
	"net/http"

	"stringlang/internal/common/pagination"
	analysisUC "stringlang/internal/usecase/analysis"
)

// Register mounts the public counting endpoints.
func Register(mux *http.ServeMux, svc *analysisUC.Service) {
	mux.Handle("POST /analyze", AnalyzeHandler{svc})
	mux.Handle("POST /analyze/batch", BatchHandler{svc})
	mux.Handle("POST /analyze/url", URLHandler{svc})
	mux.Handle("POST /analyze/feed", FeedHandler{svc})
}

// RegisterArchive mounts the archive endpoints behind protect, which is
// expected to authenticate the caller and apply per-user limits.
func RegisterArchive(mux *http.ServeMux, svc *analysisUC.Service, paginationCfg pagination.Config, protect func(http.Handler) http.Handler) {
	mux.Handle("GET /analyses", protect(ListHandler{Svc: svc, PaginationCfg: paginationCfg}))
	mux.Handle("GET /analyses/{id}", protect(GetHandler{svc}))
	mux.Handle("DELETE /analyses/{id}", protect(DeleteHandler{svc}))
}
