package docoutline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tsawler/docoutline/layout"
	"github.com/tsawler/docoutline/model"
	"github.com/tsawler/docoutline/ocr"
	"github.com/tsawler/docoutline/reader"
	"github.com/tsawler/docoutline/tables"
)

// Extractor provides a fluent interface for extracting outlines.
// Each configuration method returns a new Extractor instance, making it
// safe to branch a base configuration and allowing method chaining.
type Extractor struct {
	// Source: a file opened on demand, or caller-supplied pages
	filename string
	source   layout.PageSource

	// Lifecycle
	reader     *reader.Reader
	ownsReader bool // true if we opened the reader and should close it

	// Configuration
	options extractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
// A reader the Extractor opened itself is never shared: the copy opens its
// own file on demand.
func (e *Extractor) clone() *Extractor {
	newExt := &Extractor{
		filename: e.filename,
		options:  e.options.clone(),
		err:      e.err,
	}
	if !e.ownsReader {
		newExt.source = e.source
	}
	return newExt
}

// ensureSource opens the file if no page source is available yet.
func (e *Extractor) ensureSource() error {
	if e.source != nil {
		return nil
	}
	if e.filename == "" {
		return ErrNoSource
	}

	r, err := reader.Open(e.filename)
	if err != nil {
		if errors.Is(err, reader.ErrNotFound) {
			return fmt.Errorf("%w: %w", ErrInputNotFound, err)
		}
		return fmt.Errorf("failed to open PDF: %w", err)
	}
	e.reader = r
	e.source = r
	e.ownsReader = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if !e.ownsReader || e.reader == nil {
		return nil
	}
	err := e.reader.Close()
	e.reader = nil
	e.source = nil
	e.ownsReader = false
	return err
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Margin sets the fraction of the page height treated as header band at
// the top and footer band at the bottom. Default: 0.1
//
// Example:
//
//	outline, err := docoutline.Open("doc.pdf").Margin(0.08).Outline(ctx)
func (e *Extractor) Margin(m float64) *Extractor {
	newExt := e.clone()
	newExt.options.analyzer.Noise.Margin = m
	return newExt
}

// Zoom sets the magnification used when cropping regions for OCR.
// Default: 2
func (e *Extractor) Zoom(z float64) *Extractor {
	newExt := e.clone()
	newExt.options.analyzer.OCR.Zoom = z
	return newExt
}

// OCRTimeout bounds each OCR call; zero means no limit. Default: 30s
func (e *Extractor) OCRTimeout(d time.Duration) *Extractor {
	newExt := e.clone()
	newExt.options.analyzer.OCR.Timeout = d
	return newExt
}

// Tables sets the table regions whose blocks are dropped.
//
// Example:
//
//	regions := tables.Regions{0: {model.NewRect(50, 300, 560, 500)}}
//	outline, err := docoutline.Open("doc.pdf").Tables(regions).Outline(ctx)
func (e *Extractor) Tables(src tables.Source) *Extractor {
	newExt := e.clone()
	newExt.options.tables = src
	return newExt
}

// TablesFile loads table regions from a YAML or JSON file when the
// extraction runs. Ignored when Tables is also set.
func (e *Extractor) TablesFile(path string) *Extractor {
	newExt := e.clone()
	newExt.options.tablesFile = path
	return newExt
}

// OCR sets the recognizer used to re-read the title and heading regions.
// A nil recognizer disables OCR.
func (e *Extractor) OCR(rec layout.Recognizer) *Extractor {
	newExt := e.clone()
	newExt.options.recognizer = rec
	return newExt
}

// EnableOCR re-reads the title and heading regions with pdftoppm and
// Tesseract, configured by cfg. Only available for extractors created with
// Open. Ignored when OCR is also set.
//
// Example:
//
//	outline, err := docoutline.Open("scan.pdf").EnableOCR(ocr.DefaultConfig()).Outline(ctx)
func (e *Extractor) EnableOCR(cfg ocr.Config) *Extractor {
	newExt := e.clone()
	newExt.options.ocrTools = &cfg
	return newExt
}

// Logger sets the logger. Default: no logging.
func (e *Extractor) Logger(logger *zap.Logger) *Extractor {
	newExt := e.clone()
	if logger == nil {
		logger = zap.NewNop()
	}
	newExt.options.logger = logger
	return newExt
}

// Workers sets how many pages are merged concurrently.
// Values below 2 merge sequentially.
func (e *Extractor) Workers(n int) *Extractor {
	newExt := e.clone()
	newExt.options.analyzer.Workers = n
	return newExt
}

// TitleConfig replaces the title selection settings.
func (e *Extractor) TitleConfig(cfg layout.TitleConfig) *Extractor {
	newExt := e.clone()
	newExt.options.analyzer.Title = cfg
	newExt.options.analyzer.Title.Blacklist = cloneStrings(cfg.Blacklist)
	return newExt
}

// HeadingConfig replaces the heading classification settings.
func (e *Extractor) HeadingConfig(cfg layout.HeadingConfig) *Extractor {
	newExt := e.clone()
	newExt.options.analyzer.Heading = cfg
	newExt.options.analyzer.Heading.Blacklist = cloneStrings(cfg.Blacklist)
	return newExt
}

// Config replaces every pipeline setting at once.
func (e *Extractor) Config(cfg layout.AnalyzerConfig) *Extractor {
	newExt := e.clone()
	newExt.options.analyzer = cfg
	newExt.options = newExt.options.clone()
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// PageCount returns the number of pages in the document.
// Note: This does NOT close the reader, allowing further operations.
//
// Example:
//
//	ext := docoutline.Open("document.pdf")
//	defer ext.Close()
//	count, err := ext.PageCount()
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if err := e.ensureSource(); err != nil {
		return 0, err
	}
	return e.source.NumPages(), nil
}

// Blocks returns the merged blocks that survive header, footer and table
// filtering, in reading order. No OCR is performed.
// This is a terminal operation that closes the underlying reader.
//
// Example:
//
//	blocks, err := docoutline.Open("document.pdf").Blocks(ctx)
//	for _, b := range blocks {
//	    fmt.Printf("p%d %.1fpt %s\n", b.Page+1, b.Size, b.Text)
//	}
func (e *Extractor) Blocks(ctx context.Context) ([]model.Block, error) {
	if e.err != nil {
		return nil, e.err
	}
	if err := e.ensureSource(); err != nil {
		return nil, err
	}
	defer e.Close()

	tbl, err := e.tableSource()
	if err != nil {
		return nil, err
	}

	analyzer := layout.NewAnalyzerWithConfig(e.options.analyzer).
		WithTables(tbl).
		WithLogger(e.options.logger)

	pages, err := analyzer.ReadPages(ctx, e.source)
	if err != nil {
		return nil, err
	}
	_, filtered, err := analyzer.Filter(ctx, pages)
	return filtered, err
}

// Analyze runs the full pipeline and returns every intermediate result:
// merged blocks, filtered blocks, title and headings.
// This is a terminal operation that closes the underlying reader.
func (e *Extractor) Analyze(ctx context.Context) (*layout.Result, error) {
	if e.err != nil {
		return nil, e.err
	}
	if err := e.ensureSource(); err != nil {
		return nil, err
	}
	defer e.Close()

	tbl, err := e.tableSource()
	if err != nil {
		return nil, err
	}

	rec, closeOCR, err := e.recognizer()
	if err != nil {
		return nil, err
	}
	defer closeOCR()

	result, err := layout.NewAnalyzerWithConfig(e.options.analyzer).
		WithTables(tbl).
		WithRecognizer(rec).
		WithLogger(e.options.logger).
		AnalyzeSource(ctx, e.source)
	if err != nil {
		return nil, err
	}

	e.options.logger.Debug("outline extracted",
		zap.Int("blocks", len(result.Blocks)),
		zap.Int("filtered", len(result.Filtered)),
		zap.Int("headings", len(result.Headings)),
	)
	return result, nil
}

// Outline extracts the title and heading outline. Text re-read by OCR is
// preferred over extracted text, and pages are 1-based.
// This is a terminal operation that closes the underlying reader.
//
// Example:
//
//	outline, err := docoutline.Open("document.pdf").Outline(ctx)
//	fmt.Println(outline.Title)
func (e *Extractor) Outline(ctx context.Context) (model.Outline, error) {
	result, err := e.Analyze(ctx)
	if err != nil {
		return model.Outline{}, err
	}
	return result.Outline(), nil
}

// tableSource resolves the configured table regions
func (e *Extractor) tableSource() (tables.Source, error) {
	if e.options.tables != nil {
		return e.options.tables, nil
	}
	if e.options.tablesFile == "" {
		return tables.None, nil
	}
	regions, err := tables.Load(e.options.tablesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load table regions: %w", err)
	}
	e.options.logger.Debug("table regions loaded",
		zap.String("path", e.options.tablesFile),
		zap.Int("regions", regions.Count()),
	)
	return regions, nil
}

// recognizer resolves the configured OCR collaborator. The returned close
// function is never nil.
func (e *Extractor) recognizer() (layout.Recognizer, func() error, error) {
	noop := func() error { return nil }

	if e.options.recognizer != nil {
		return e.options.recognizer, noop, nil
	}
	if e.options.ocrTools == nil {
		return nil, noop, nil
	}
	if e.filename == "" {
		return nil, noop, ErrOCRNeedsFile
	}

	cfg := *e.options.ocrTools
	runner := ocr.NewExecRunner(e.options.logger.Named("exec"))
	engine, closeEngine, err := ocr.NewEngine(cfg, runner)
	if err != nil {
		return nil, noop, fmt.Errorf("failed to start OCR engine: %w", err)
	}

	raster := ocr.NewRasterizer(e.filename, cfg.Pdftoppm, runner)
	return ocr.NewRegionRecognizer(raster, engine, cfg, e.options.logger.Named("ocr")), closeEngine, nil
}
