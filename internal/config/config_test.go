package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/docoutline/layout"
	"github.com/tsawler/docoutline/ocr"
)

func TestLoad_Defaults(t *testing.T) {
	s, err := Load(New())
	require.NoError(t, err)

	want := layout.DefaultAnalyzerConfig()
	want.Heading.Blacklist = []string{}
	assert.Equal(t, want, s.Analyzer)
	assert.Equal(t, runtime.GOMAXPROCS(0), s.Analyzer.Workers)
	assert.True(t, s.OCREnabled)
	assert.Equal(t, ocr.DefaultConfig(), s.OCR)
	assert.Empty(t, s.Tables)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("DOCOUTLINE_MARGIN", "0.2")
	t.Setenv("DOCOUTLINE_OCR_ENABLED", "false")
	t.Setenv("DOCOUTLINE_OCR_TIMEOUT", "750ms")
	t.Setenv("DOCOUTLINE_HEADINGS_SKIP_LAST_BLOCK", "false")

	s, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, 0.2, s.Analyzer.Noise.Margin)
	assert.False(t, s.OCREnabled)
	assert.Equal(t, 750*time.Millisecond, s.Analyzer.OCR.Timeout)
	assert.False(t, s.Analyzer.Heading.SkipLastBlock)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outline.yaml")
	data := `margin: 0.05
zoom: 3
tables: regions.yaml
ocr:
  enabled: true
  engine: gosseract
  language: deu
  timeout: 5s
title:
  pages: 1
  blacklist: [draft]
headings:
  size_offset: 2
  blacklist: [appendix, index]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	v := New()
	require.NoError(t, ReadFile(v, path))
	s, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 0.05, s.Analyzer.Noise.Margin)
	assert.Equal(t, 3.0, s.Analyzer.OCR.Zoom)
	assert.Equal(t, 5*time.Second, s.Analyzer.OCR.Timeout)
	assert.Equal(t, 0, s.Analyzer.Title.MaxPage)
	assert.Equal(t, []string{"draft"}, s.Analyzer.Title.Blacklist)
	assert.Equal(t, 2.0, s.Analyzer.Heading.SizeOffset)
	assert.Equal(t, []string{"appendix", "index"}, s.Analyzer.Heading.Blacklist)
	assert.True(t, s.OCREnabled)
	assert.Equal(t, ocr.EngineGosseract, s.OCR.Engine)
	assert.Equal(t, "deu", s.OCR.Language)
	assert.Equal(t, "regions.yaml", s.Tables)
}

func TestReadFile_Missing(t *testing.T) {
	err := ReadFile(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{"margin too large", KeyMargin, 1.0},
		{"negative zoom", KeyZoom, -1.0},
		{"inverted heading bounds", KeyHeadingMinLength, 500},
		{"no title pages", KeyTitlePages, 0},
		{"unknown engine", KeyOCREngine, "easyocr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.Set(tt.key, tt.value)

			_, err := Load(v)
			assert.ErrorIs(t, err, layout.ErrInvalidConfig)
		})
	}
}

func TestSettings_Describe(t *testing.T) {
	s, err := Load(New())
	require.NoError(t, err)

	assert.Contains(t, s.Describe(), "margin=0.1 zoom=2")
	assert.Contains(t, s.Describe(), "engine=cli timeout=30s")
}
