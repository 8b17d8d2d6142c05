package export

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/tsawler/docoutline/layout"
)

// Format represents a supported output format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// JSON is the outline as {"title", "outline": [...]}.
	JSON
	// Text is the block listing.
	Text
	// XLSX is the diagnostic workbook.
	XLSX
	// HTML is the outline as a nested table of contents.
	HTML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case JSON:
		return "JSON"
	case Text:
		return "Text"
	case XLSX:
		return "XLSX"
	case HTML:
		return "HTML"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case JSON:
		return ".json"
	case Text:
		return ".txt"
	case XLSX:
		return ".xlsx"
	case HTML:
		return ".html"
	default:
		return ""
	}
}

// Detect determines the output format from a filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return JSON
	case ".txt", ".text":
		return Text
	case ".xlsx":
		return XLSX
	case ".html", ".htm":
		return HTML
	default:
		return Unknown
	}
}

// Write renders res to w in format f
func Write(w io.Writer, f Format, res *layout.Result) error {
	switch f {
	case JSON:
		return WriteJSON(w, res.Outline())
	case Text:
		return WriteBlocks(w, res.Filtered)
	case XLSX:
		return WriteWorkbook(w, res.Filtered, res.Outline())
	case HTML:
		return WriteHTML(w, res.Outline())
	default:
		return fmt.Errorf("unsupported output format %v", f)
	}
}
