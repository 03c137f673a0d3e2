// Package analysis provides the Unicode block analysis use cases: counting
// text, URLs and feeds, batching, and managing the analysis archive.
package analysis

import (
	"errors"

	"stringlang/internal/domain/profile"
	"stringlang/pkg/unicodeblock"
)

// Sentinel errors for analysis use case operations. Messages are safe to show
// to API clients.
var (
	// ErrTextTooLong indicates the input exceeds the configured code point limit.
	ErrTextTooLong = errors.New("text too long")

	// ErrEmptyBatch indicates a batch request without texts.
	ErrEmptyBatch = errors.New("batch is empty")

	// ErrBatchTooLarge indicates a batch request above the configured size.
	ErrBatchTooLarge = errors.New("batch too large")

	// ErrInvalidOptions indicates both a block list and a profile were given.
	ErrInvalidOptions = errors.New("invalid options: blocks and profile cannot be combined")

	// ErrFetchDisabled is returned by URL and feed analysis when no fetcher is configured.
	ErrFetchDisabled = errors.New("fetching is disabled")

	// ErrArchiveDisabled is returned by archive operations when no repository is configured.
	ErrArchiveDisabled = errors.New("archive is disabled")

	// ErrAnalysisNotFound indicates the requested analysis was not found.
	ErrAnalysisNotFound = errors.New("analysis not found")

	ErrUnknownBlock   = unicodeblock.ErrUnknownBlock
	ErrUnknownProfile = profile.ErrUnknownProfile
)
