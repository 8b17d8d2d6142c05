package model

import (
	"strconv"
	"strings"
)

// LevelLabel formats a 1-based heading tier as "H1", "H2", ...
func LevelLabel(level int) string {
	return "H" + strconv.Itoa(level)
}

// ParseLevel extracts the numeric tier from a label such as "H2" or "h3".
// It returns false for labels that carry no number.
func ParseLevel(label string) (int, bool) {
	if len(label) < 2 || (label[0] != 'H' && label[0] != 'h') {
		return 0, false
	}
	n, err := strconv.Atoi(label[1:])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Heading is a classified heading derived from a Block
type Heading struct {
	Level   string // "H1".."Hn"
	Text    string // geometric text
	OCRText string // recognized text, empty when OCR was skipped or failed
	Page    int    // 0-based page index
	BBox    Rect
	Size    float64
}

// DisplayText returns the OCR text when present, otherwise the geometric text
func (h Heading) DisplayText() string {
	return preferOCR(h.OCRText, h.Text)
}

// Title is the selected document title
type Title struct {
	Text    string
	OCRText string
	Page    int
	BBox    Rect
	Size    float64
}

// DisplayText returns the OCR text when present, otherwise the geometric text
func (t Title) DisplayText() string {
	return preferOCR(t.OCRText, t.Text)
}

// OutlineEntry is one heading in the final outline record
type OutlineEntry struct {
	Level string `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"` // 1-based
}

// Outline is the pipeline's final artifact
type Outline struct {
	Title    string         `json:"title"`
	Headings []OutlineEntry `json:"outline"`
}

// NewOutline assembles the final record, preferring OCR text and converting
// page indices to 1-based page numbers.
func NewOutline(title Title, headings []Heading) Outline {
	out := Outline{
		Title:    title.DisplayText(),
		Headings: make([]OutlineEntry, 0, len(headings)),
	}
	for _, h := range headings {
		out.Headings = append(out.Headings, OutlineEntry{
			Level: h.Level,
			Text:  h.DisplayText(),
			Page:  h.Page + 1,
		})
	}
	return out
}

func preferOCR(ocrText, text string) string {
	if strings.TrimSpace(ocrText) != "" {
		return ocrText
	}
	return text
}
