package ocr

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrOCRNotEnabled is returned when the library engine is requested but
	// was not compiled in. Rebuild with -tags ocr, or use the CLI engine.
	ErrOCRNotEnabled = errors.New("OCR library support not enabled; rebuild with -tags ocr")

	// ErrEmptyRegion is returned for a region with no area
	ErrEmptyRegion = errors.New("ocr: empty region")
)

// Engine names accepted by Config.Engine
const (
	EngineCLI       = "cli"
	EngineGosseract = "gosseract"
)

// Engine turns an encoded image into text
type Engine interface {
	RecognizeImage(ctx context.Context, image []byte) (string, error)
}

// Config holds the OCR tool settings
type Config struct {
	// Engine selects the recognizer: "cli" (default) or "gosseract".
	Engine string

	// Language is passed to Tesseract, e.g. "eng" or "eng+fra".
	Language string

	PageSegMode PageSegMode

	// Pdftoppm and Tesseract are binary names or absolute paths.
	Pdftoppm  string
	Tesseract string

	// TessdataDir overrides Tesseract's data directory when set.
	TessdataDir string

	// Padding is the white border, in pixels, added around each crop.
	Padding int

	// MinHeight upscales crops shorter than this many pixels.
	MinHeight int
}

// DefaultConfig returns the default OCR configuration
func DefaultConfig() Config {
	return Config{
		Engine:      EngineCLI,
		Language:    "eng",
		PageSegMode: PSM_AUTO,
		Pdftoppm:    "pdftoppm",
		Tesseract:   "tesseract",
		Padding:     8,
		MinHeight:   32,
	}
}

// withDefaults fills empty fields from DefaultConfig
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Engine == "" {
		c.Engine = d.Engine
	}
	if c.Language == "" {
		c.Language = d.Language
	}
	if c.Pdftoppm == "" {
		c.Pdftoppm = d.Pdftoppm
	}
	if c.Tesseract == "" {
		c.Tesseract = d.Tesseract
	}
	if c.Padding < 0 {
		c.Padding = 0
	}
	return c
}

// NewEngine builds the engine named by cfg.Engine. Close the returned
// closer when done; it is a no-op for the CLI engine.
func NewEngine(cfg Config, runner Runner) (Engine, func() error, error) {
	cfg = cfg.withDefaults()

	switch cfg.Engine {
	case EngineCLI:
		return NewTesseract(cfg, runner), func() error { return nil }, nil
	case EngineGosseract:
		client, err := New()
		if err != nil {
			return nil, nil, err
		}
		if err := client.SetLanguage(cfg.Language); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to set language %q: %w", cfg.Language, err)
		}
		if err := client.SetPageSegMode(cfg.PageSegMode); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to set page segmentation mode: %w", err)
		}
		return client, client.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown OCR engine %q (want %q or %q)", cfg.Engine, EngineCLI, EngineGosseract)
	}
}
