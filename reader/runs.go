package reader

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/docoutline/model"
)

const (
	// wordGapRatio is the horizontal gap, as a fraction of the font size,
	// that splits two glyphs into separate runs.
	wordGapRatio = 0.3

	// rowTolerance is the baseline drift, as a fraction of the font size,
	// still treated as the same row.
	rowTolerance = 0.2

	// avgGlyphWidth estimates a glyph's advance, as a fraction of the font
	// size, when the font carries no Widths array.
	avgGlyphWidth = 0.5

	// stallRatio bounds the movement between two glyphs, as a fraction of
	// the font size, below which the second one is taken as not advanced.
	stallRatio = 0.1
)

// glyphBox is a glyph with its resolved right edge
type glyphBox struct {
	pdf.Text
	x1 float64
}

// row is the glyphs that share a baseline, in content-stream order
type row struct {
	y      float64
	glyphs []pdf.Text
}

// BuildLines converts the glyphs of one page, in content-stream order, into
// lines of runs ordered top to bottom. box is the page's MediaBox in PDF user
// space; output coordinates have a top-left origin.
func BuildLines(glyphs []pdf.Text, pageIndex int, box model.Rect) []model.Line {
	var lines []model.Line
	for _, r := range groupRows(glyphs) {
		if line := buildLine(place(r.glyphs), pageIndex, box); len(line) > 0 {
			lines = append(lines, line)
		}
	}
	return lines
}

// groupRows buckets glyphs by baseline, highest row first
func groupRows(glyphs []pdf.Text) []*row {
	var rows []*row
	for _, g := range glyphs {
		r := findRow(rows, g)
		if r == nil {
			r = &row{y: g.Y}
			rows = append(rows, r)
		}
		r.glyphs = append(r.glyphs, g)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].y > rows[j].y })
	return rows
}

func findRow(rows []*row, g pdf.Text) *row {
	tol := math.Max(rowTolerance*g.FontSize, 1)
	// Most glyphs continue the row before them
	for i := len(rows) - 1; i >= 0; i-- {
		if math.Abs(rows[i].y-g.Y) <= tol {
			return rows[i]
		}
	}
	return nil
}

// place fills in the positions and advances the PDF library leaves unset.
// For fonts without a Widths array every glyph reports W == 0 and the text
// position does not move within one string, so such glyphs are laid out
// from a running cursor. The result is sorted by X.
func place(glyphs []pdf.Text) []glyphBox {
	out := make([]glyphBox, len(glyphs))
	var prevRaw pdf.Text
	cursor := 0.0

	for i, g := range glyphs {
		raw := g
		if i > 0 && prevRaw.W <= 0 && g.Font == prevRaw.Font && g.FontSize == prevRaw.FontSize {
			if d := g.X - prevRaw.X; d >= 0 && d < stallRatio*g.FontSize {
				g.X = cursor + d
			}
		}
		advance := g.W
		if advance <= 0 {
			advance = avgGlyphWidth * g.FontSize
		}
		cursor = g.X + advance
		out[i] = glyphBox{Text: g, x1: g.X + g.W}
		prevRaw = raw
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].X < out[j].X })

	for i := range out {
		if out[i].W > 0 {
			continue
		}
		size := out[i].FontSize
		out[i].x1 = out[i].X + avgGlyphWidth*size
		if i+1 < len(out) {
			if d := out[i+1].X - out[i].X; d > 0 && d <= size {
				out[i].x1 = out[i+1].X
			}
		}
	}
	return out
}

// runBuilder accumulates glyphs of one run
type runBuilder struct {
	text  strings.Builder
	font  string
	size  float64
	x0    float64
	x1    float64
	base  float64
	empty bool
}

func buildLine(glyphs []glyphBox, pageIndex int, box model.Rect) model.Line {
	var line model.Line
	cur := runBuilder{empty: true}

	flush := func() {
		if cur.empty {
			return
		}
		run := model.TextRun{
			Text:  strings.TrimSpace(norm.NFKC.String(cur.text.String())),
			Font:  cur.font,
			Size:  cur.size,
			Flags: FontFlags(cur.font),
			Page:  pageIndex,
		}
		if !run.IsBlank() {
			top := box.Y1 - cur.base - cur.size
			run.BBox = model.NewRect(cur.x0-box.X0, top, cur.x1-box.X0, top+cur.size)
			line = append(line, run)
		}
		cur = runBuilder{empty: true}
	}

	for _, g := range glyphs {
		if isSpace(g.S) {
			flush()
			continue
		}
		if !cur.empty {
			sameStyle := g.Font == cur.font && g.FontSize == cur.size
			gap := g.X - cur.x1
			if !sameStyle || gap > wordGapRatio*g.FontSize {
				flush()
			}
		}
		if cur.empty {
			cur = runBuilder{font: g.Font, size: g.FontSize, x0: g.X, base: g.Y}
		}
		cur.text.WriteString(g.S)
		cur.x1 = g.x1
		cur.empty = false
	}
	flush()

	return line
}

func isSpace(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}

// FontFlags derives style flags from a font name such as
// "ABCDEF+Helvetica-BoldOblique".
func FontFlags(font string) model.Flags {
	name := strings.ToLower(font)
	if i := strings.IndexByte(name, '+'); i >= 0 {
		name = name[i+1:]
	}

	var flags model.Flags
	for _, w := range []string{"bold", "black", "heavy", "semibold", "demibold"} {
		if strings.Contains(name, w) {
			flags |= model.FlagBold
			break
		}
	}
	if strings.Contains(name, "italic") || strings.Contains(name, "oblique") {
		flags |= model.FlagItalic
	}
	if strings.Contains(name, "mono") || strings.Contains(name, "courier") {
		flags |= model.FlagMonospace
	}
	return flags
}
