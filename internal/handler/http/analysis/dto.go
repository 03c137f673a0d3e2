// Package analysis serves the counting endpoints and the analysis archive.
package analysis

import (
	"time"

	"github.com/google/uuid"

	analysisUC "stringlang/internal/usecase/analysis"
	"stringlang/pkg/unicodeblock"
)

// DTO is one analysis as returned by the API. Report keys keep catalog order.
type DTO struct {
	ID         string              `json:"id,omitempty" example:"0b0f5d39-5a0e-4b7e-9d43-0d7b2f1d8c11"`
	Source     string              `json:"source" example:"text"`
	Origin     string              `json:"origin,omitempty" example:"https://example.com/post"`
	CodePoints int                 `json:"code_points" example:"3"`
	Report     unicodeblock.Report `json:"report" swaggertype:"object,integer" example:"basicLatin:2,cjkUnifiedIdeographs:1"`
	CreatedAt  time.Time           `json:"created_at" example:"2026-03-01T12:00:00Z"`
}

func toDTO(r *analysisUC.Result) DTO {
	d := DTO{
		Source:     string(r.Source),
		Origin:     r.Origin,
		CodePoints: r.CodePoints,
		Report:     r.Report,
		CreatedAt:  r.CreatedAt,
	}
	if r.ID != uuid.Nil {
		d.ID = r.ID.String()
	}
	return d
}

// selection is embedded by every request that chooses what to count.
type selection struct {
	Blocks  []string `json:"blocks,omitempty" example:"basicLatin,hiragana"`
	Profile string   `json:"profile,omitempty" example:"cjk"`
	Persist bool     `json:"persist,omitempty" example:"false"`
}

func (s selection) options() analysisUC.Options {
	return analysisUC.Options{Blocks: s.Blocks, Profile: s.Profile, Persist: s.Persist}
}

// AnalyzeRequest is the body of POST /analyze. Exactly one of Text and
// UTF16LE is used; UTF16LE is base64 of little-endian UTF-16 code units.
// An empty text is valid and yields an empty report.
type AnalyzeRequest struct {
	Text    *string `json:"text,omitempty" swaggertype:"string" example:"Aa文"`
	UTF16LE []byte  `json:"utf16le,omitempty" swaggertype:"string" format:"base64"`
	// Surrogates is "replace" (default) or "keep" and only applies to UTF16LE.
	Surrogates string `json:"surrogates,omitempty" example:"replace"`
	selection
}

// BatchRequest is the body of POST /analyze/batch.
type BatchRequest struct {
	Texts []string `json:"texts" example:"A,文"`
	selection
}

// BatchResponse lists results in request order.
type BatchResponse struct {
	Results []DTO `json:"results"`
}

// URLRequest is the body of POST /analyze/url and POST /analyze/feed.
type URLRequest struct {
	URL string `json:"url" example:"https://example.com/feed.xml"`
	selection
}

// FeedItemDTO is one analyzed feed entry.
type FeedItemDTO struct {
	Title       string    `json:"title" example:"Release notes"`
	URL         string    `json:"url" example:"https://example.com/post/1"`
	PublishedAt time.Time `json:"published_at" example:"2026-03-01T10:00:00Z"`
	Analysis    DTO       `json:"analysis"`
}

// FeedResponse holds the per-item analyses and their merged report.
type FeedResponse struct {
	Items  []FeedItemDTO `json:"items"`
	Merged DTO           `json:"merged"`
}
