package docoutline

import "errors"

var (
	// ErrInputNotFound is returned when the input path does not resolve to
	// a file. It wraps reader.ErrNotFound.
	ErrInputNotFound = errors.New("input not found")

	// ErrNoSource is returned when an Extractor has neither a filename nor
	// a page source.
	ErrNoSource = errors.New("no input specified")

	// ErrOCRNeedsFile is returned when built-in OCR is enabled for a page
	// source that is not backed by a PDF file.
	ErrOCRNeedsFile = errors.New("built-in OCR requires a PDF file")
)
