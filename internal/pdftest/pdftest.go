// Package pdftest writes small PDF files for tests. Pages are US Letter and
// text is set in the standard Helvetica fonts, which carry no Widths array.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Font resource names
const (
	Bold    = "F1" // Helvetica-Bold
	Regular = "F2" // Helvetica
)

// Text is one string shown at baseline (X, Y) in PDF user space
type Text struct {
	Font string
	Size float64
	X, Y float64
	S    string
}

// Write writes a PDF with one page per argument into a temporary directory
// and returns its path.
func Write(t testing.TB, pages ...[]Text) string {
	t.Helper()

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"", // page tree, filled in once the kids are known
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica-Bold /Encoding /WinAnsiEncoding >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}

	var kids []string
	for _, page := range pages {
		stream := contentStream(page)
		pageObj := len(objects) + 1
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /Resources << /Font << /F1 3 0 R /F2 4 0 R >> >> /Contents %d 0 R >>", pageObj+1),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
		)
		kids = append(kids, fmt.Sprintf("%d 0 R", pageObj))
	}
	objects[1] = fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d /MediaBox [0 0 612 792] >>",
		strings.Join(kids, " "), len(kids))

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	path := filepath.Join(t.TempDir(), "doc.pdf")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	return path
}

func contentStream(texts []Text) string {
	escaper := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	var parts []string
	for _, t := range texts {
		parts = append(parts, fmt.Sprintf("BT /%s %g Tf %g %g Td (%s) Tj ET",
			t.Font, t.Size, t.X, t.Y, escaper.Replace(t.S)))
	}
	return strings.Join(parts, "\n")
}
