package layout

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tsawler/docoutline/model"
)

// DefaultZoom is the magnification used when cropping a region for OCR
const DefaultZoom = 2.0

// Recognizer re-reads the text under a region of a page. An empty string
// with a nil error means no text was found.
type Recognizer interface {
	Recognize(ctx context.Context, page int, box model.Rect, zoom float64) (string, error)
}

// RecognizerFunc adapts a function to the Recognizer interface
type RecognizerFunc func(ctx context.Context, page int, box model.Rect, zoom float64) (string, error)

// Recognize calls f
func (f RecognizerFunc) Recognize(ctx context.Context, page int, box model.Rect, zoom float64) (string, error) {
	return f(ctx, page, box, zoom)
}

// OCRConfig controls how regions are re-read
type OCRConfig struct {
	// Zoom is the crop magnification. Default: 2
	Zoom float64

	// Timeout bounds each recognition call; zero means no limit.
	// Default: 30s
	Timeout time.Duration
}

// DefaultOCRConfig returns the default OCR configuration
func DefaultOCRConfig() OCRConfig {
	return OCRConfig{Zoom: DefaultZoom, Timeout: 30 * time.Second}
}

// regionReader applies zoom, timeout and error policy around a Recognizer.
// A nil recognizer reads nothing.
type regionReader struct {
	rec     Recognizer
	zoom    float64
	timeout time.Duration
	logger  *zap.Logger
}

func newRegionReader(rec Recognizer, cfg OCRConfig, logger *zap.Logger) regionReader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return regionReader{rec: rec, zoom: cfg.Zoom, timeout: cfg.Timeout, logger: logger}
}

// read returns the trimmed OCR text for b, or "" on any failure
func (r regionReader) read(ctx context.Context, b model.Block) string {
	if r.rec == nil {
		return ""
	}

	zoom := r.zoom
	if zoom <= 0 {
		zoom = DefaultZoom
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	text, err := r.rec.Recognize(ctx, b.Page, b.BBox, zoom)
	if err != nil {
		r.logger.Warn("ocr failed, using extracted text",
			zap.Int("page", b.Page+1),
			zap.String("text", b.Text),
			zap.Error(err),
		)
		return ""
	}
	return strings.TrimSpace(text)
}
