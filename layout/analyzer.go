package layout

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/tsawler/docoutline/model"
	"github.com/tsawler/docoutline/tables"
)

// ErrInvalidConfig is returned when an AnalyzerConfig fails validation
var ErrInvalidConfig = errors.New("layout: invalid configuration")

// PageSource supplies the text runs of a document one page at a time
type PageSource interface {
	// NumPages returns the number of pages
	NumPages() int

	// Page returns the 0-based page i
	Page(ctx context.Context, i int) (model.Page, error)
}

// AnalyzerConfig holds the configuration of every pipeline stage
type AnalyzerConfig struct {
	// Noise filter configuration
	Noise NoiseConfig

	// Title selection configuration
	Title TitleConfig

	// Heading classification configuration
	Heading HeadingConfig

	// OCR configuration shared by title and headings
	OCR OCRConfig

	// Workers is the number of pages merged concurrently.
	// Default: runtime.GOMAXPROCS(0)
	Workers int
}

// DefaultAnalyzerConfig returns the default configuration for every stage
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		Noise:   DefaultNoiseConfig(),
		Title:   DefaultTitleConfig(),
		Heading: DefaultHeadingConfig(),
		OCR:     DefaultOCRConfig(),
		Workers: runtime.GOMAXPROCS(0),
	}
}

// Validate checks the configuration for values the pipeline cannot use
func (c AnalyzerConfig) Validate() error {
	if c.Noise.Margin < 0 || c.Noise.Margin >= 1 {
		return fmt.Errorf("%w: margin %.3f out of range [0, 1)", ErrInvalidConfig, c.Noise.Margin)
	}
	if c.OCR.Zoom < 0 {
		return fmt.Errorf("%w: zoom %.2f must not be negative", ErrInvalidConfig, c.OCR.Zoom)
	}
	if c.Heading.MinLength > c.Heading.MaxLength {
		return fmt.Errorf("%w: heading length bounds [%d, %d] are inverted",
			ErrInvalidConfig, c.Heading.MinLength, c.Heading.MaxLength)
	}
	return nil
}

// Result holds everything the pipeline produced for a document
type Result struct {
	// Blocks are all merged blocks, before noise filtering
	Blocks []model.Block

	// Filtered are the blocks that survived the noise filter
	Filtered []model.Block

	// Title is the selected title; empty when nothing qualified
	Title model.Title

	// Headings are the hierarchy-filtered headings in reading order
	Headings []model.Heading
}

// Outline returns the final outline record
func (r *Result) Outline() model.Outline {
	return model.NewOutline(r.Title, r.Headings)
}

// Analyzer runs the full outline pipeline
type Analyzer struct {
	config     AnalyzerConfig
	tables     tables.Source
	recognizer Recognizer
	logger     *zap.Logger
}

// NewAnalyzer creates an analyzer with default configuration
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithConfig(DefaultAnalyzerConfig())
}

// NewAnalyzerWithConfig creates an analyzer with custom configuration
func NewAnalyzerWithConfig(config AnalyzerConfig) *Analyzer {
	return &Analyzer{
		config: config,
		logger: zap.NewNop(),
	}
}

// WithTables sets the table regions consulted by the noise filter
func (a *Analyzer) WithTables(src tables.Source) *Analyzer {
	a.tables = src
	return a
}

// WithRecognizer sets the OCR collaborator used for the title and headings
func (a *Analyzer) WithRecognizer(rec Recognizer) *Analyzer {
	a.recognizer = rec
	return a
}

// WithLogger sets the logger
func (a *Analyzer) WithLogger(logger *zap.Logger) *Analyzer {
	if logger != nil {
		a.logger = logger
	}
	return a
}

// AnalyzeSource reads every page from src and analyzes them. Pages that
// fail to load are skipped with a warning.
func (a *Analyzer) AnalyzeSource(ctx context.Context, src PageSource) (*Result, error) {
	pages, err := a.ReadPages(ctx, src)
	if err != nil {
		return nil, err
	}
	return a.Analyze(ctx, pages)
}

// ReadPages loads every page of src in order, skipping pages that fail to
// load. Only context cancellation is returned as an error.
func (a *Analyzer) ReadPages(ctx context.Context, src PageSource) ([]model.Page, error) {
	n := src.NumPages()
	pages := make([]model.Page, 0, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page, err := src.Page(ctx, i)
		if err != nil {
			a.logger.Warn("skipping unreadable page", zap.Int("page", i+1), zap.Error(err))
			continue
		}
		a.logger.Debug("page loaded", zap.Int("page", i+1), zap.Int("runs", page.RunCount()))
		pages = append(pages, page)
	}
	return pages, nil
}

// Filter merges pages into blocks and removes headers, footers and table
// blocks. It returns all merged blocks and the survivors.
func (a *Analyzer) Filter(ctx context.Context, pages []model.Page) (blocks, filtered []model.Block, err error) {
	if err := a.config.Validate(); err != nil {
		return nil, nil, err
	}

	blocks, err = MergePages(ctx, pages, a.config.Workers)
	if err != nil {
		return nil, nil, fmt.Errorf("merging pages: %w", err)
	}
	a.logger.Debug("merged blocks", zap.Int("pages", len(pages)), zap.Int("blocks", len(blocks)))

	filter := NewNoiseFilter(a.config.Noise, a.tableIndex(pages))
	filtered = filter.Filter(blocks)
	a.logger.Debug("filtered blocks",
		zap.Int("kept", len(filtered)),
		zap.Int("removed", len(blocks)-len(filtered)),
	)
	return blocks, filtered, nil
}

// Analyze runs merge, noise filter, title selection and heading
// classification over pages. No pages yields an empty result, not an error.
func (a *Analyzer) Analyze(ctx context.Context, pages []model.Page) (*Result, error) {
	blocks, filtered, err := a.Filter(ctx, pages)
	if err != nil {
		return nil, err
	}

	title := NewTitleSelector(a.config.Title, a.recognizer, a.config.OCR, a.logger).Select(ctx, filtered)
	headings := NewHeadingClassifier(a.config.Heading, a.recognizer, a.config.OCR, a.logger).
		Classify(ctx, filtered, title.Text)

	return &Result{
		Blocks:   blocks,
		Filtered: filtered,
		Title:    title,
		Headings: headings,
	}, nil
}

// tableIndex builds a spatial index over the configured table regions for
// the given pages, unless the source is already an index.
func (a *Analyzer) tableIndex(pages []model.Page) tables.Source {
	if a.tables == nil {
		return nil
	}
	if idx, ok := a.tables.(*tables.Index); ok {
		return idx
	}
	indices := make([]int, len(pages))
	for i, p := range pages {
		indices[i] = p.Index
	}
	return tables.NewIndex(tables.Collect(a.tables, indices))
}
