// Package docoutline extracts a title and a heading outline from PDF files.
//
// Basic usage:
//
//	outline, err := docoutline.Open("report.pdf").Outline(ctx)
//	if err != nil {
//	    // handle error
//	}
//	for _, h := range outline.Headings {
//	    fmt.Printf("%s | Page %d | %s\n", h.Level, h.Page, h.Text)
//	}
//
// With options:
//
//	outline, err := docoutline.Open("report.pdf").
//	    Margin(0.08).
//	    TablesFile("regions.yaml").
//	    EnableOCR(ocr.DefaultConfig()).
//	    Logger(logger).
//	    Outline(ctx)
//
// The pipeline stages live in the layout package and can be used directly
// with any layout.PageSource.
package docoutline

import (
	"github.com/tsawler/docoutline/layout"
)

// Open returns an Extractor for the PDF file at filename. The file is
// opened lazily by the first terminal operation, which also closes it.
//
// Example:
//
//	outline, err := docoutline.Open("document.pdf").Outline(ctx)
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromSource creates an Extractor over pages supplied by src.
// The caller owns src; the Extractor never closes it.
//
// Example:
//
//	r, err := reader.Open("document.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	outline, err := docoutline.FromSource(r).Outline(ctx)
func FromSource(src layout.PageSource) *Extractor {
	e := &Extractor{
		source:  src,
		options: defaultOptions(),
	}
	if src == nil {
		e.err = ErrNoSource
	}
	return e
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	outline := docoutline.Must(docoutline.Open("document.pdf").Outline(ctx))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
