// Package reader extracts positioned, styled text runs from PDF files.
//
// # Opening PDF Files
//
// Use [Open] to open a PDF file for reading:
//
//	r, err := reader.Open("document.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
// A path that does not exist yields an error wrapping [ErrNotFound].
//
// # Pages
//
// [Reader.Page] returns a 0-based page as a [model.Page]: its size and its
// text lines, each an ordered list of runs. Glyphs are grouped into runs by
// font, size and horizontal spacing; whitespace glyphs end a run. Style
// flags are derived from the font name, and coordinates are converted to a
// top-left origin. Fonts without a Widths array get estimated glyph
// advances.
//
// A page that the PDF library cannot parse yields an error instead of a
// panic, and a closed Reader returns [ErrClosed].
//
// Reader satisfies the layout.PageSource interface.
package reader
