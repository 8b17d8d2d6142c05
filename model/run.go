package model

import "strings"

// Flags is a style bitmask attached to a text run. The bit layout follows
// the MuPDF span flags; only the bold and italic bits drive any decision.
type Flags uint32

const (
	FlagSuperscript Flags = 1 << iota // 1
	FlagItalic                        // 2
	FlagSerif                         // 4
	FlagMonospace                     // 8
	FlagBold                          // 16
)

// Bold reports whether the bold bit is set
func (f Flags) Bold() bool {
	return f&FlagBold != 0
}

// Italic reports whether the italic bit is set
func (f Flags) Italic() bool {
	return f&FlagItalic != 0
}

// Style is the (font, size, flags) triple that decides whether two pieces of
// text may be merged.
type Style struct {
	Font  string
	Size  float64
	Flags Flags
}

// TextRun is the atomic unit produced by the page extractor
type TextRun struct {
	Text  string
	Font  string
	Size  float64
	Flags Flags
	BBox  Rect
	Page  int // 0-based page index
}

// Style returns the run's merge key
func (r TextRun) Style() Style {
	return Style{Font: r.Font, Size: r.Size, Flags: r.Flags}
}

// IsBlank reports whether the run carries no text after trimming
func (r TextRun) IsBlank() bool {
	return strings.TrimSpace(r.Text) == ""
}

// Line is an ordered (reading order) sequence of runs that share a baseline
type Line []TextRun

// Page is the extractor's output for one page: its size and its lines in
// the order they were delivered.
type Page struct {
	Index  int // 0-based
	Width  float64
	Height float64
	Lines  []Line
}

// RunCount returns the number of runs across all lines
func (p Page) RunCount() int {
	n := 0
	for _, l := range p.Lines {
		n += len(l)
	}
	return n
}
