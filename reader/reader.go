package reader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/docoutline/model"
)

// ErrNotFound is returned when the input path does not resolve to a file
var ErrNotFound = errors.New("reader: input not found")

// US Letter, used when a page carries no usable MediaBox
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// ErrClosed is returned when a page is requested from a closed Reader
var ErrClosed = errors.New("reader: file already closed")

// Reader represents an open PDF file
type Reader struct {
	file     *os.File
	pdf      *pdf.Reader
	numPages int
}

// Open opens a PDF file and returns a Reader
func Open(path string) (*Reader, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	n, err := countPages(r)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &Reader{file: f, pdf: r, numPages: n}, nil
}

// countPages reads the page count once, while the file is known to be open.
// The PDF library panics on a malformed page tree.
func countPages(r *pdf.Reader) (n int, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("malformed page tree: %v", rec)
		}
	}()
	return r.NumPage(), nil
}

// Close closes the PDF file. It is safe to call Close multiple times.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// NumPages returns the number of pages
func (r *Reader) NumPages() int {
	return r.numPages
}

// Page extracts the 0-based page i
func (r *Reader) Page(ctx context.Context, i int) (page model.Page, err error) {
	// The PDF library panics on malformed objects and content streams
	defer func() {
		if rec := recover(); rec != nil {
			page = model.Page{}
			err = fmt.Errorf("page %d: malformed content: %v", i+1, rec)
		}
	}()

	if err := ctx.Err(); err != nil {
		return model.Page{}, err
	}
	if r.file == nil {
		return model.Page{}, ErrClosed
	}
	if i < 0 || i >= r.numPages {
		return model.Page{}, fmt.Errorf("page %d out of range (0-%d)", i, r.numPages-1)
	}

	p := r.pdf.Page(i + 1)
	if p.V.IsNull() {
		return model.Page{Index: i, Width: defaultPageWidth, Height: defaultPageHeight}, nil
	}

	box := mediaBox(p.V)

	return model.Page{
		Index:  i,
		Width:  box.Width(),
		Height: box.Height(),
		Lines:  BuildLines(p.Content().Text, i, box),
	}, nil
}

// mediaBox returns the page's MediaBox, following the Parent chain for
// inherited values, or US Letter when none is usable.
func mediaBox(v pdf.Value) model.Rect {
	for depth := 0; depth < 32 && v.Kind() == pdf.Dict; depth++ {
		mb := v.Key("MediaBox")
		if mb.Kind() == pdf.Array && mb.Len() == 4 {
			box := model.NewRect(
				mb.Index(0).Float64(), mb.Index(1).Float64(),
				mb.Index(2).Float64(), mb.Index(3).Float64(),
			)
			if !box.IsEmpty() {
				return box
			}
		}
		v = v.Key("Parent")
	}
	return model.Rect{X1: defaultPageWidth, Y1: defaultPageHeight}
}
