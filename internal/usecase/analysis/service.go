package analysis

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"stringlang/internal/domain/entity"
	"stringlang/internal/domain/profile"
	"stringlang/internal/observability/metrics"
	"stringlang/internal/observability/tracing"
	"stringlang/internal/repository"
	"stringlang/internal/usecase/fetch"
	"stringlang/internal/utils/text"
	"stringlang/pkg/unicodeblock"
)

// Result is one analysis. ID is uuid.Nil unless the analysis was archived.
type Result = entity.Analysis

// Config limits the work a single call may do. Zero fields take the defaults.
type Config struct {
	// MaxRunes caps the code points of one text, URL body or feed item.
	MaxRunes int
	// MaxBatch caps the number of texts in one AnalyzeBatch call.
	MaxBatch int
	// Concurrency bounds the batch and feed worker goroutines.
	Concurrency int
	// MaxFeedItems caps the feed items analyzed per AnalyzeFeed call.
	MaxFeedItems int
}

// DefaultConfig returns the limits used when Config fields are zero:
// 1,000,000 code points, 100 texts per batch, 4 workers and 50 feed items.
func DefaultConfig() Config {
	return Config{
		MaxRunes:     1_000_000,
		MaxBatch:     100,
		Concurrency:  4,
		MaxFeedItems: 50,
	}
}

// Options selects what to count and whether to keep the result.
// Blocks and Profile are mutually exclusive; with neither, the full catalog is used.
type Options struct {
	Blocks  []string
	Profile string
	// Surrogates only applies to UTF-16 input.
	Surrogates unicodeblock.SurrogatePolicy
	Persist    bool
}

// Service provides the analysis use cases. Repo, Content, Feeds and Profiles
// are optional; operations that need a missing one fail with a typed error.
type Service struct {
	Repo     repository.AnalysisRepository
	Content  fetch.ContentFetcher
	Feeds    fetch.FeedFetcher
	Profiles *profile.Registry
	Config   Config
	// Now defaults to time.Now.
	Now func() time.Time
}

// Analyze counts text against the full catalog.
// It never persists; use AnalyzeWith with Options.Persist to archive.
// Returns ErrTextTooLong if text exceeds Config.MaxRunes.
func (s *Service) Analyze(ctx context.Context, input string) (*Result, error) {
	return s.AnalyzeWith(ctx, input, Options{})
}

// AnalyzeWith counts text against the catalog selected by opts.
// Empty text is valid and yields an empty report.
// Returns ErrInvalidOptions if both Blocks and Profile are set.
// Returns ErrTextTooLong if text exceeds Config.MaxRunes.
// Returns ErrArchiveDisabled if opts.Persist is set without a repository.
func (s *Service) AnalyzeWith(ctx context.Context, input string, opts Options) (*Result, error) {
	return s.analyzeText(ctx, entity.SourceText, "", input, opts)
}

// AnalyzeUTF16 counts UTF-16 code units. A valid surrogate pair is one code
// point; lone surrogates follow opts.Surrogates.
// The result is recorded with the text source since the encoding is a
// transport detail.
func (s *Service) AnalyzeUTF16(ctx context.Context, units []uint16, opts Options) (*Result, error) {
	cat, err := s.Catalog(opts)
	if err != nil {
		s.reject(entity.SourceText)
		return nil, err
	}
	n := unicodeblock.CodePointsUTF16(units)
	if err := s.checkSize(n); err != nil {
		s.reject(entity.SourceText)
		return nil, err
	}

	report := s.measure(ctx, entity.SourceText, n, func() unicodeblock.Report {
		return unicodeblock.AnalyzeUTF16(units, cat, opts.Surrogates)
	})
	return s.finish(ctx, entity.SourceText, "", n, report, opts.Persist)
}

// Count returns how many code points of text fall in the named block.
// Returns ErrUnknownBlock if blockName is not in the standard catalog.
// Returns ErrTextTooLong if text exceeds Config.MaxRunes.
func (s *Service) Count(ctx context.Context, input, blockName string) (int, error) {
	b, ok := unicodeblock.Standard().Lookup(blockName)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownBlock, blockName)
	}
	if err := s.checkText(input); err != nil {
		return 0, err
	}
	_, span := tracing.StartSpan(ctx, "analysis.Count", attribute.String("analysis.block", b.Name))
	defer span.End()
	return unicodeblock.Count(input, b), nil
}

// AnalyzeBatch analyzes texts in parallel. Results are in input order. The
// first failure cancels the rest of the batch.
// At most Config.Concurrency texts are counted at a time.
// Returns ErrEmptyBatch if texts is empty.
// Returns ErrBatchTooLarge if len(texts) exceeds Config.MaxBatch.
// Failures of a single text are wrapped with its index.
func (s *Service) AnalyzeBatch(ctx context.Context, texts []string, opts Options) ([]*Result, error) {
	cfg := s.config()
	if len(texts) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(texts) > cfg.MaxBatch {
		return nil, fmt.Errorf("%w: %d texts exceeds limit %d", ErrBatchTooLarge, len(texts), cfg.MaxBatch)
	}
	if _, err := s.Catalog(opts); err != nil {
		s.reject(entity.SourceBatch)
		return nil, err
	}

	// each goroutine owns results[i], so no lock is needed
	results := make([]*Result, len(texts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)
	for i, t := range texts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := s.analyzeText(gctx, entity.SourceBatch, "", t, opts)
			if err != nil {
				return fmt.Errorf("text %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Catalog resolves the block selection of opts.
// Explicit block names yield a subset of the standard catalog in catalog
// order, a profile yields its own catalog and neither yields the full one.
// Returns ErrInvalidOptions if both Blocks and Profile are set.
func (s *Service) Catalog(opts Options) (unicodeblock.Catalog, error) {
	switch {
	case len(opts.Blocks) > 0 && opts.Profile != "":
		return unicodeblock.Catalog{}, ErrInvalidOptions
	case len(opts.Blocks) > 0:
		return unicodeblock.Standard().Subset(opts.Blocks...)
	case opts.Profile != "":
		p, err := s.Profiles.Lookup(opts.Profile)
		if err != nil {
			return unicodeblock.Catalog{}, err
		}
		return p.Catalog, nil
	default:
		return unicodeblock.Standard(), nil
	}
}

func (s *Service) analyzeText(ctx context.Context, source entity.Source, origin, input string, opts Options) (*Result, error) {
	cat, err := s.Catalog(opts)
	if err != nil {
		s.reject(source)
		return nil, err
	}
	if err := s.checkText(input); err != nil {
		s.reject(source)
		return nil, err
	}

	n := text.CountRunes(input)
	report := s.measure(ctx, source, n, func() unicodeblock.Report {
		return unicodeblock.AnalyzeCatalog(input, cat)
	})
	return s.finish(ctx, source, origin, n, report, opts.Persist)
}

func (s *Service) checkText(input string) error {
	limit := s.config().MaxRunes
	if text.ExceedsRunes(input, limit) {
		return fmt.Errorf("%w: limit is %d code points", ErrTextTooLong, limit)
	}
	return nil
}

func (s *Service) checkSize(codePoints int) error {
	if limit := s.config().MaxRunes; codePoints > limit {
		return fmt.Errorf("%w: %d code points exceeds limit %d", ErrTextTooLong, codePoints, limit)
	}
	return nil
}

// measure runs count inside an analysis span and records its metrics.
func (s *Service) measure(ctx context.Context, source entity.Source, codePoints int, count func() unicodeblock.Report) unicodeblock.Report {
	_, span := tracing.StartSpan(ctx, "analysis.Analyze",
		attribute.String("analysis.source", string(source)),
		attribute.Int("analysis.code_points", codePoints))
	defer span.End()

	start := time.Now()
	report := count()
	metrics.RecordAnalysis(string(source), "success", time.Since(start), codePoints, report)

	span.SetAttributes(attribute.Int("analysis.blocks", report.Len()))
	return report
}

// reject counts input refused before any code point was examined.
func (s *Service) reject(source entity.Source) {
	metrics.RecordAnalysis(string(source), "rejected", 0, 0, unicodeblock.Report{})
}

// finish builds the result and archives it when asked to.
func (s *Service) finish(ctx context.Context, source entity.Source, origin string, codePoints int, report unicodeblock.Report, persist bool) (*Result, error) {
	res := &Result{
		Source:     source,
		Origin:     origin,
		CodePoints: codePoints,
		Report:     report,
		CreatedAt:  s.now().UTC(),
	}
	if !persist {
		return res, nil
	}
	if err := s.store(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// store archives res and replaces it with the stored copy, which carries the
// assigned ID.
func (s *Service) store(ctx context.Context, res *Result) (err error) {
	if s.Repo == nil {
		return ErrArchiveDisabled
	}
	ctx, span := tracing.StartSpan(ctx, "analysis.Store",
		attribute.String("analysis.source", string(res.Source)))
	defer func() {
		tracing.RecordError(span, err)
		span.End()
	}()

	a := entity.NewAnalysis(res.Source, res.Origin, res.CodePoints, res.Report, res.CreatedAt)
	if err := a.Validate(); err != nil {
		return fmt.Errorf("validate analysis: %w", err)
	}
	if err := s.Repo.Create(ctx, a); err != nil {
		return fmt.Errorf("create analysis: %w", err)
	}
	*res = *a
	return nil
}

// config fills zero fields of s.Config from DefaultConfig.
func (s *Service) config() Config {
	cfg := s.Config
	def := DefaultConfig()
	if cfg.MaxRunes <= 0 {
		cfg.MaxRunes = def.MaxRunes
	}
	if cfg.MaxBatch <= 0 {
		cfg.MaxBatch = def.MaxBatch
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = def.Concurrency
	}
	if cfg.MaxFeedItems <= 0 {
		cfg.MaxFeedItems = def.MaxFeedItems
	}
	return cfg
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
