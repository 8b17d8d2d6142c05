package ocr

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/tsawler/docoutline/model"
)

// RegionRecognizer re-reads page regions: render, prepare, recognize.
// It satisfies layout.Recognizer.
type RegionRecognizer struct {
	renderer  Renderer
	engine    Engine
	padding   int
	minHeight int
	logger    *zap.Logger
}

// NewRegionRecognizer creates a RegionRecognizer. Only the Padding and
// MinHeight fields of cfg are used here.
func NewRegionRecognizer(renderer Renderer, engine Engine, cfg Config, logger *zap.Logger) *RegionRecognizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg = cfg.withDefaults()
	return &RegionRecognizer{
		renderer:  renderer,
		engine:    engine,
		padding:   cfg.Padding,
		minHeight: cfg.MinHeight,
		logger:    logger,
	}
}

// Recognize returns the trimmed text found inside box on the 0-based page
func (r *RegionRecognizer) Recognize(ctx context.Context, page int, box model.Rect, zoom float64) (string, error) {
	if box.IsEmpty() {
		return "", ErrEmptyRegion
	}

	img, err := r.renderer.Render(ctx, page, box, zoom)
	if err != nil {
		return "", err
	}

	img, err = Prepare(img, r.padding, r.minHeight)
	if err != nil {
		return "", err
	}

	text, err := r.engine.RecognizeImage(ctx, img)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)

	r.logger.Debug("region recognized",
		zap.Int("page", page+1),
		zap.Float64("zoom", zoom),
		zap.String("text", text),
	)
	return text, nil
}
