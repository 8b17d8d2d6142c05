package docoutline

import (
	"go.uber.org/zap"

	"github.com/tsawler/docoutline/layout"
	"github.com/tsawler/docoutline/ocr"
	"github.com/tsawler/docoutline/tables"
)

// extractOptions holds the configuration of an Extractor.
type extractOptions struct {
	analyzer layout.AnalyzerConfig

	// Table regions: an explicit source wins over a file
	tables     tables.Source
	tablesFile string

	// OCR: an explicit recognizer wins over the built-in tools
	recognizer layout.Recognizer
	ocrTools   *ocr.Config

	logger *zap.Logger
}

// defaultOptions returns the default extraction options.
func defaultOptions() extractOptions {
	return extractOptions{
		analyzer: layout.DefaultAnalyzerConfig(),
		logger:   zap.NewNop(),
	}
}

// clone creates a deep copy of extractOptions.
func (o extractOptions) clone() extractOptions {
	newOpts := o

	// Deep copy blacklist slices
	newOpts.analyzer.Title.Blacklist = cloneStrings(o.analyzer.Title.Blacklist)
	newOpts.analyzer.Heading.Blacklist = cloneStrings(o.analyzer.Heading.Blacklist)

	if o.ocrTools != nil {
		cfg := *o.ocrTools
		newOpts.ocrTools = &cfg
	}
	return newOpts
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
