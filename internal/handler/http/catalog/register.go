package catalog

import (
	"net/http"

	analysisUC "stringlang/internal/usecase/analysis"
)

// Register mounts the catalog, block count and profile routes. They are
// public and work without an archive.
func Register(mux *http.ServeMux, svc *analysisUC.Service) {
	mux.Handle("GET /blocks", ListBlocksHandler{svc})
	mux.Handle("GET /blocks/{name}", GetBlockHandler{})
	mux.Handle("POST /blocks/{name}/count", CountHandler{svc})
	mux.Handle("GET /profiles", ProfilesHandler{svc.Profiles})
}
