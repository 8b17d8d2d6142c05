// Package config loads docoutline settings from defaults, an optional YAML
// file, DOCOUTLINE_* environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/tsawler/docoutline/layout"
	"github.com/tsawler/docoutline/ocr"
)

// Configuration keys. Nested keys map to YAML sections and to environment
// variables with "." replaced by "_", e.g. DOCOUTLINE_OCR_ENGINE.
const (
	KeyMargin  = "margin"
	KeyZoom    = "zoom"
	KeyTables  = "tables"
	KeyWorkers = "workers"

	KeyOCREnabled   = "ocr.enabled"
	KeyOCREngine    = "ocr.engine"
	KeyOCRLanguage  = "ocr.language"
	KeyOCRTimeout   = "ocr.timeout"
	KeyOCRPdftoppm  = "ocr.pdftoppm"
	KeyOCRTesseract = "ocr.tesseract"
	KeyOCRTessdata  = "ocr.tessdata"
	KeyOCRPadding   = "ocr.padding"

	KeyTitlePages     = "title.pages"
	KeyTitleMinLength = "title.min_length"
	KeyTitleBlacklist = "title.blacklist"

	KeyHeadingSizeOffset    = "headings.size_offset"
	KeyHeadingMinLength     = "headings.min_length"
	KeyHeadingMaxLength     = "headings.max_length"
	KeyHeadingSkipLastBlock = "headings.skip_last_block"
	KeyHeadingBlacklist     = "headings.blacklist"
)

// EnvPrefix prefixes every environment variable
const EnvPrefix = "DOCOUTLINE"

// FileName is the config file searched for in the working and home
// directories.
const FileName = ".docoutline"

// Settings is the resolved configuration
type Settings struct {
	Analyzer layout.AnalyzerConfig

	// OCREnabled turns on region re-recognition
	OCREnabled bool
	OCR        ocr.Config

	// Tables is the path of a table regions file; empty means no tables.
	Tables string
}

// New returns a viper instance with defaults and environment binding set up
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// SetDefaults registers the default value of every key
func SetDefaults(v *viper.Viper) {
	a := layout.DefaultAnalyzerConfig()
	o := ocr.DefaultConfig()

	v.SetDefault(KeyMargin, a.Noise.Margin)
	v.SetDefault(KeyZoom, a.OCR.Zoom)
	v.SetDefault(KeyTables, "")
	v.SetDefault(KeyWorkers, runtime.GOMAXPROCS(0))

	v.SetDefault(KeyOCREnabled, true)
	v.SetDefault(KeyOCREngine, o.Engine)
	v.SetDefault(KeyOCRLanguage, o.Language)
	v.SetDefault(KeyOCRTimeout, a.OCR.Timeout)
	v.SetDefault(KeyOCRPdftoppm, o.Pdftoppm)
	v.SetDefault(KeyOCRTesseract, o.Tesseract)
	v.SetDefault(KeyOCRTessdata, "")
	v.SetDefault(KeyOCRPadding, o.Padding)

	v.SetDefault(KeyTitlePages, a.Title.MaxPage+1)
	v.SetDefault(KeyTitleMinLength, a.Title.MinLength)
	v.SetDefault(KeyTitleBlacklist, a.Title.Blacklist)

	v.SetDefault(KeyHeadingSizeOffset, a.Heading.SizeOffset)
	v.SetDefault(KeyHeadingMinLength, a.Heading.MinLength)
	v.SetDefault(KeyHeadingMaxLength, a.Heading.MaxLength)
	v.SetDefault(KeyHeadingSkipLastBlock, a.Heading.SkipLastBlock)
	v.SetDefault(KeyHeadingBlacklist, []string{})
}

// ReadFile reads path, or when path is empty searches the working and home
// directories for .docoutline.yaml. A missing searched file is not an
// error; a missing explicit file is.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// Load resolves v into Settings and validates the analyzer configuration
func Load(v *viper.Viper) (Settings, error) {
	a := layout.DefaultAnalyzerConfig()

	a.Noise.Margin = v.GetFloat64(KeyMargin)
	a.OCR.Zoom = v.GetFloat64(KeyZoom)
	a.OCR.Timeout = v.GetDuration(KeyOCRTimeout)
	a.Workers = v.GetInt(KeyWorkers)

	pages := v.GetInt(KeyTitlePages)
	if pages < 1 {
		return Settings{}, fmt.Errorf("%w: %s must be at least 1, got %d", layout.ErrInvalidConfig, KeyTitlePages, pages)
	}
	a.Title.MaxPage = pages - 1
	a.Title.MinLength = v.GetInt(KeyTitleMinLength)
	a.Title.Blacklist = v.GetStringSlice(KeyTitleBlacklist)

	a.Heading.SizeOffset = v.GetFloat64(KeyHeadingSizeOffset)
	a.Heading.MinLength = v.GetInt(KeyHeadingMinLength)
	a.Heading.MaxLength = v.GetInt(KeyHeadingMaxLength)
	a.Heading.SkipLastBlock = v.GetBool(KeyHeadingSkipLastBlock)
	a.Heading.Blacklist = v.GetStringSlice(KeyHeadingBlacklist)

	if err := a.Validate(); err != nil {
		return Settings{}, err
	}

	o := ocr.DefaultConfig()
	o.Engine = v.GetString(KeyOCREngine)
	o.Language = v.GetString(KeyOCRLanguage)
	o.Pdftoppm = v.GetString(KeyOCRPdftoppm)
	o.Tesseract = v.GetString(KeyOCRTesseract)
	o.TessdataDir = v.GetString(KeyOCRTessdata)
	o.Padding = v.GetInt(KeyOCRPadding)

	switch o.Engine {
	case ocr.EngineCLI, ocr.EngineGosseract:
	default:
		return Settings{}, fmt.Errorf("%w: unknown %s %q", layout.ErrInvalidConfig, KeyOCREngine, o.Engine)
	}

	return Settings{
		Analyzer:   a,
		OCREnabled: v.GetBool(KeyOCREnabled),
		OCR:        o,
		Tables:     v.GetString(KeyTables),
	}, nil
}

// Describe returns a one-line summary for debug logging
func (s Settings) Describe() string {
	return fmt.Sprintf("margin=%g zoom=%g workers=%d ocr=%t engine=%s timeout=%s tables=%q",
		s.Analyzer.Noise.Margin, s.Analyzer.OCR.Zoom, s.Analyzer.Workers,
		s.OCREnabled, s.OCR.Engine, s.Analyzer.OCR.Timeout.Round(time.Millisecond), s.Tables)
}
