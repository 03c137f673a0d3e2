// Package entity defines the archived analysis record and the validation rules
// shared by the use cases.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"stringlang/pkg/unicodeblock"
)

// Source says where the analyzed text came from.
type Source string

const (
	// SourceText is text sent inline, including UTF-16 input.
	SourceText Source = "text"
	// SourceURL is the readable text of a fetched article.
	SourceURL Source = "url"
	// SourceFeed is a feed item or the merged report of a feed.
	SourceFeed Source = "feed"
	// SourceBatch is one text of a batch request.
	SourceBatch Source = "batch"
)

// Valid reports whether s is one of the known sources.
func (s Source) Valid() bool {
	switch s {
	case SourceText, SourceURL, SourceFeed, SourceBatch:
		return true
	}
	return false
}

// Analysis is one counted input and its report.
type Analysis struct {
	// ID is uuid.Nil until the analysis is archived.
	ID     uuid.UUID
	Source Source
	// Origin is the URL for url and feed analyses, empty otherwise.
	Origin string
	// CodePoints is the number of code points examined, counted or not.
	CodePoints int
	Report     unicodeblock.Report
	CreatedAt  time.Time
}

// NewAnalysis stamps a fresh ID and creation time.
func NewAnalysis(source Source, origin string, codePoints int, report unicodeblock.Report, now time.Time) *Analysis {
	return &Analysis{
		ID:         uuid.New(),
		Source:     source,
		Origin:     origin,
		CodePoints: codePoints,
		Report:     report,
		CreatedAt:  now.UTC(),
	}
}

// Validate checks the record before it is stored.
// Returns a *ValidationError naming the first invalid field.
func (a *Analysis) Validate() error {
	if a.ID == uuid.Nil {
		return &ValidationError{Field: "id", Message: "id is required"}
	}
	if !a.Source.Valid() {
		return &ValidationError{Field: "source", Message: fmt.Sprintf("invalid source %q", a.Source)}
	}
	if a.CodePoints < 0 {
		return &ValidationError{Field: "code_points", Message: "code_points cannot be negative"}
	}
	if len(a.Origin) > maxURLLength {
		return &ValidationError{Field: "origin", Message: fmt.Sprintf("origin must not exceed %d characters", maxURLLength)}
	}
	if a.Report.Total() > 0 && a.CodePoints == 0 {
		return &ValidationError{Field: "code_points", Message: "code_points must be set for a non-empty report"}
	}
	return nil
}
