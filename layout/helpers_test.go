package layout

import (
	"context"
	"errors"
	"sync"

	"github.com/tsawler/docoutline/model"
)

// Helper to create a run on page 0 at the given position
func makeRun(text string, size float64, x0, y0, x1, y1 float64) model.TextRun {
	return model.TextRun{
		Text: text,
		Font: "Helvetica",
		Size: size,
		BBox: model.NewRect(x0, y0, x1, y1),
	}
}

// Helper to create a block on a 612x792 page
func makeBlock(page int, text string, size float64, y0, y1 float64) model.Block {
	return model.Block{
		Text:       text,
		Font:       "Helvetica",
		Size:       size,
		BBox:       model.NewRect(72, y0, 540, y1),
		Page:       page,
		PageWidth:  612,
		PageHeight: 792,
	}
}

// fakeRecognizer records every call and answers from a map keyed by page
type fakeRecognizer struct {
	mu    sync.Mutex
	calls []model.Rect
	zooms []float64
	text  map[int]string
	err   error
}

func (f *fakeRecognizer) Recognize(_ context.Context, page int, box model.Rect, zoom float64) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, box)
	f.zooms = append(f.zooms, zoom)
	if f.err != nil {
		return "", f.err
	}
	return f.text[page], nil
}

var errOCR = errors.New("tesseract crashed")
