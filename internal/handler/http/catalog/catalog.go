// Package catalog serves the block catalog, single-block counts and the
// configured profiles.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	analysishttp "stringlang/internal/handler/http/analysis"
	"stringlang/internal/handler/http/respond"
	analysisUC "stringlang/internal/usecase/analysis"
	"stringlang/pkg/unicodeblock"
)

// BlockDTO is one catalog entry. Bounds are formatted as U+XXXX.
type BlockDTO struct {
	Name string `json:"name" example:"basicLatin"`
	Low  string `json:"low" example:"U+0000"`
	High string `json:"high" example:"U+007F"`
	Size int    `json:"size" example:"128"`
}

func toBlockDTO(b unicodeblock.Block) BlockDTO {
	return BlockDTO{
		Name: b.Name,
		Low:  unicodeblock.FormatCodePoint(b.Low),
		High: unicodeblock.FormatCodePoint(b.High),
		Size: b.Size(),
	}
}

// BlocksResponse lists blocks in catalog order.
type BlocksResponse struct {
	UnicodeVersion string     `json:"unicode_version" example:"15.1.0"`
	Count          int        `json:"count" example:"328"`
	Blocks         []BlockDTO `json:"blocks"`
}

type ListBlocksHandler struct{ Svc *analysisUC.Service }

// ServeHTTP list blocks
// @Summary      List the Unicode block catalog
// @Description  Returns every block in enumeration order, or only the blocks of a profile.
// @Tags         catalog
// @Produce      json
// @Param        profile query string false "Profile name"
// @Success      200 {object} BlocksResponse
// @Failure      400 {object} respond.ErrorResponse "Unknown profile"
// @Router       /blocks [get]
func (h ListBlocksHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cat, err := h.Svc.Catalog(analysisUC.Options{Profile: r.URL.Query().Get("profile")})
	if err != nil {
		analysishttp.WriteError(w, err)
		return
	}
	out := BlocksResponse{
		UnicodeVersion: unicodeblock.UnicodeVersion,
		Count:          cat.Len(),
		Blocks:         make([]BlockDTO, 0, cat.Len()),
	}
	for _, b := range cat.All() {
		out.Blocks = append(out.Blocks, toBlockDTO(b))
	}
	respond.JSON(w, http.StatusOK, out)
}

type GetBlockHandler struct{}

// ServeHTTP get a block
// @Summary      Get one block
// @Tags         catalog
// @Produce      json
// @Param        name path string true "Block name" example(basicLatin)
// @Success      200 {object} BlockDTO
// @Failure      404 {object} respond.ErrorResponse "Unknown block"
// @Router       /blocks/{name} [get]
func (GetBlockHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	b, ok := unicodeblock.Standard().Lookup(name)
	if !ok {
		respond.SafeError(w, http.StatusNotFound, fmt.Errorf("%w: %q", unicodeblock.ErrUnknownBlock, name))
		return
	}
	respond.JSON(w, http.StatusOK, toBlockDTO(b))
}

// CountRequest is the body of POST /blocks/{name}/count.
type CountRequest struct {
	Text string `json:"text" example:"Aa文"`
}

// CountResponse is the number of code points of the text in one block.
type CountResponse struct {
	Block string `json:"block" example:"basicLatin"`
	Count int    `json:"count" example:"2"`
}

type CountHandler struct{ Svc *analysisUC.Service }

// ServeHTTP count one block
// @Summary      Count the characters of one block
// @Description  Returns zero when the text has no code point in the block.
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        name    path  string        true  "Block name" example(basicLatin)
// @Param        request body  CountRequest  true  "Text to count"
// @Success      200 {object} CountResponse
// @Failure      400 {object} respond.ErrorResponse "Invalid body"
// @Failure      404 {object} respond.ErrorResponse "Unknown block"
// @Failure      413 {object} respond.ErrorResponse "Text too long"
// @Router       /blocks/{name}/count [post]
func (h CountHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	var req CountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	n, err := h.Svc.Count(r.Context(), req.Text, name)
	if errors.Is(err, unicodeblock.ErrUnknownBlock) {
		respond.SafeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		analysishttp.WriteError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, CountResponse{Block: name, Count: n})
}
