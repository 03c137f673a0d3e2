package catalog

import (
	"net/http"

	"stringlang/internal/domain/profile"
	"stringlang/internal/handler/http/respond"
)

type ProfileDTO struct {
	Name        string   `json:"name" example:"cjk"`
	Description string   `json:"description,omitempty" example:"Han ideographs and kana"`
	Blocks      []string `json:"blocks" example:"cjkUnifiedIdeographs,hiragana,katakana"`
}

type ProfilesHandler struct{ Registry *profile.Registry }

// ServeHTTP list profiles
// @Summary      List block profiles
// @Description  Profiles are named block selections usable as "profile" in analysis requests.
// @Tags         catalog
// @Produce      json
// @Success      200 {array} ProfileDTO
// @Router       /profiles [get]
func (h ProfilesHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	profiles := h.Registry.List()
	out := make([]ProfileDTO, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, ProfileDTO{Name: p.Name, Description: p.Description, Blocks: p.Blocks()})
	}
	respond.JSON(w, http.StatusOK, out)
}
