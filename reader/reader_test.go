package reader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/docoutline/internal/pdftest"
	"github.com/tsawler/docoutline/model"
)

func glyph(s, font string, size, x, y, w float64) pdf.Text {
	return pdf.Text{S: s, Font: font, FontSize: size, X: x, Y: y, W: w}
}

// word lays out s one glyph per rune starting at x
func word(s, font string, size, x, y float64) []pdf.Text {
	var out []pdf.Text
	for _, r := range s {
		out = append(out, glyph(string(r), font, size, x, y, size/2))
		x += size / 2
	}
	return out
}

func TestBuildLines_GroupsGlyphsIntoRuns(t *testing.T) {
	letter := model.Rect{X1: 612, Y1: 792}
	var glyphs []pdf.Text
	glyphs = append(glyphs, word("Hello", "Helvetica", 10, 72, 700)...)
	glyphs = append(glyphs, glyph(" ", "Helvetica", 10, 97, 700, 3))
	glyphs = append(glyphs, word("World", "Helvetica-Bold", 10, 100, 700)...)

	lines := BuildLines(glyphs, 4, letter)

	require.Len(t, lines, 1)
	require.Len(t, lines[0], 2)

	hello := lines[0][0]
	assert.Equal(t, "Hello", hello.Text)
	assert.Equal(t, "Helvetica", hello.Font)
	assert.Equal(t, 4, hello.Page)
	assert.Equal(t, model.Flags(0), hello.Flags)
	assert.Equal(t, model.Rect{X0: 72, Y0: 82, X1: 97, Y1: 92}, hello.BBox)

	assert.Equal(t, "World", lines[0][1].Text)
	assert.True(t, lines[0][1].Flags.Bold())
}

func TestBuildLines_SortsByXAndSplitsOnGaps(t *testing.T) {
	letter := model.Rect{X1: 612, Y1: 792}
	glyphs := []pdf.Text{
		glyph("b", "Times", 12, 306, 500, 6),
		glyph("a", "Times", 12, 300, 500, 6),
		glyph("c", "Times", 12, 400, 500, 6), // far away: new run
		glyph("d", "Times", 14, 406, 500, 7), // size change: new run
	}

	lines := BuildLines(glyphs, 0, letter)

	require.Len(t, lines, 1)
	var got []string
	for _, r := range lines[0] {
		got = append(got, r.Text)
	}
	assert.Equal(t, []string{"ab", "c", "d"}, got)
}

func TestBuildLines_GroupsRowsTopToBottom(t *testing.T) {
	letter := model.Rect{X1: 612, Y1: 792}
	var glyphs []pdf.Text
	glyphs = append(glyphs, word("low", "Helvetica", 10, 72, 500)...)
	glyphs = append(glyphs, word("high", "Helvetica", 10, 72, 700)...)
	glyphs = append(glyphs, word("er", "Helvetica", 10, 87, 500.5)...)

	lines := BuildLines(glyphs, 0, letter)

	require.Len(t, lines, 2)
	assert.Equal(t, "high", lines[0][0].Text)
	assert.Equal(t, "lower", lines[1][0].Text, "small baseline drift stays on the row")
}

func TestBuildLines_EstimatesMissingWidths(t *testing.T) {
	letter := model.Rect{X1: 612, Y1: 792}
	// Fonts without a Widths array never advance the text position
	var glyphs []pdf.Text
	for _, r := range "Big Title" {
		glyphs = append(glyphs, glyph(string(r), "Helvetica-Bold", 20, 100, 600, 0))
	}

	lines := BuildLines(glyphs, 0, letter)

	require.Len(t, lines, 1)
	require.Len(t, lines[0], 2)
	assert.Equal(t, "Big", lines[0][0].Text)
	assert.Equal(t, "Title", lines[0][1].Text)
	assert.Equal(t, 20.0, lines[0][0].Size)
	assert.Equal(t, model.Rect{X0: 100, Y0: 172, X1: 130, Y1: 192}, lines[0][0].BBox)
	assert.Equal(t, model.Rect{X0: 140, Y0: 172, X1: 190, Y1: 192}, lines[0][1].BBox)
}

func TestBuildLines_EstimatesWidthsFromNextGlyph(t *testing.T) {
	letter := model.Rect{X1: 612, Y1: 792}
	// Individually positioned glyphs with no width: wide letters must not
	// break the word
	glyphs := []pdf.Text{
		glyph("M", "Helvetica", 10, 100, 600, 0),
		glyph("W", "Helvetica", 10, 108.3, 600, 0),
		glyph("i", "Helvetica", 10, 117.7, 600, 0),
	}

	lines := BuildLines(glyphs, 0, letter)

	require.Len(t, lines, 1)
	require.Len(t, lines[0], 1)
	assert.Equal(t, "MWi", lines[0][0].Text)
	assert.InDelta(t, 122.7, lines[0][0].BBox.X1, 1e-9)
}

func TestBuildLines_NormalizesLigaturesAndSkipsBlankRows(t *testing.T) {
	box := model.Rect{X0: 10, Y0: 10, X1: 622, Y1: 802}
	glyphs := []pdf.Text{
		glyph(" ", "Times", 10, 20, 10, 3),
		glyph("ﬁ", "Times", 10, 82, 700, 5),
		glyph("le", "Times", 10, 87, 700, 10),
	}

	lines := BuildLines(glyphs, 0, box)

	require.Len(t, lines, 1)
	assert.Equal(t, "file", lines[0][0].Text)
	assert.Equal(t, 72.0, lines[0][0].BBox.X0, "MediaBox origin is subtracted")
	assert.Equal(t, 92.0, lines[0][0].BBox.Y0)
}

func TestFontFlags(t *testing.T) {
	tests := []struct {
		font   string
		bold   bool
		italic bool
	}{
		{"Helvetica", false, false},
		{"Helvetica-Bold", true, false},
		{"ABCDEF+Arial-BoldItalicMT", true, true},
		{"Times-Oblique", false, true},
		{"Inter-SemiBold", true, false},
		{"Roboto-Black", true, false},
		{"BOLDFACE+Times-Roman", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.font, func(t *testing.T) {
			f := FontFlags(tt.font)
			assert.Equal(t, tt.bold, f.Bold())
			assert.Equal(t, tt.italic, f.Italic())
		})
	}
	assert.NotZero(t, FontFlags("Courier")&model.FlagMonospace)
}

func TestOpen_NotFound(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Open(t.TempDir())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOpen_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.pdf")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o600))

	_, err := Open(path)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestReader_Page(t *testing.T) {
	path := pdftest.Write(t, []pdftest.Text{
		{Font: pdftest.Bold, Size: 18, X: 72, Y: 700, S: "Quarterly Report"},
		{Font: pdftest.Regular, Size: 10, X: 72, Y: 650, S: "Body text here"},
	})
	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	require.Equal(t, 1, r.NumPages())

	page, err := r.Page(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, 0, page.Index)
	assert.Equal(t, 612.0, page.Width, "MediaBox inherited from the page tree")
	assert.Equal(t, 792.0, page.Height)
	require.Len(t, page.Lines, 2)

	title := page.Lines[0]
	require.Len(t, title, 2)
	for _, run := range title {
		assert.Equal(t, "Helvetica-Bold", run.Font)
		assert.Equal(t, 18.0, run.Size)
		assert.True(t, run.Flags.Bold())
	}
	assert.Equal(t, "Quarterly", title[0].Text)
	assert.Equal(t, "Report", title[1].Text)
	assert.Equal(t, 74.0, title[0].BBox.Y0)
	assert.Equal(t, 92.0, title[0].BBox.Y1)
	assert.Equal(t, 72.0, title[0].BBox.X0)

	var body []string
	for _, run := range page.Lines[1] {
		assert.Equal(t, 10.0, run.Size)
		assert.False(t, run.Flags.Bold())
		body = append(body, run.Text)
	}
	assert.Equal(t, "Body text here", strings.Join(body, " "))

	_, err = r.Page(context.Background(), 1)
	assert.Error(t, err)
}

func TestReader_Close(t *testing.T) {
	r, err := Open(pdftest.Write(t, []pdftest.Text{
		{Font: pdftest.Regular, Size: 12, X: 72, Y: 700, S: "Closing"},
	}))
	require.NoError(t, err)

	assert.NoError(t, r.Close())
	assert.NoError(t, r.Close(), "second close is a no-op")
	assert.Equal(t, 1, r.NumPages(), "page count survives close")

	_, err = r.Page(context.Background(), 0)
	assert.ErrorIs(t, err, ErrClosed)
}
