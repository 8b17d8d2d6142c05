package ocr

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/docoutline/layout"
	"github.com/tsawler/docoutline/model"
)

var _ layout.Recognizer = (*RegionRecognizer)(nil)

type fakeRenderer struct {
	page int
	box  model.Rect
	zoom float64
	png  []byte
	err  error
}

func (f *fakeRenderer) Render(ctx context.Context, page int, box model.Rect, zoom float64) ([]byte, error) {
	f.page, f.box, f.zoom = page, box, zoom
	return f.png, f.err
}

func TestRegionRecognizer_Recognize(t *testing.T) {
	renderer := &fakeRenderer{png: createTestPNG(60, 40)}
	engine := &fakeEngine{text: "\n 2. Methods \n"}
	box := model.Rect{X0: 72, Y0: 90, X1: 300, Y1: 110}

	text, err := NewRegionRecognizer(renderer, engine, DefaultConfig(), nil).
		Recognize(context.Background(), 3, box, 2)

	require.NoError(t, err)
	assert.Equal(t, "2. Methods", text)
	assert.Equal(t, 3, renderer.page)
	assert.Equal(t, box, renderer.box)
	assert.Equal(t, 2.0, renderer.zoom)

	// the engine sees the padded crop
	assert.Equal(t, 76, decode(t, engine.image).Bounds().Dx())
}

func TestRegionRecognizer_Errors(t *testing.T) {
	ctx := context.Background()
	box := model.Rect{X0: 72, Y0: 90, X1: 300, Y1: 110}

	rr := NewRegionRecognizer(&fakeRenderer{}, &fakeEngine{}, DefaultConfig(), nil)
	_, err := rr.Recognize(ctx, 0, model.Rect{X0: 1, Y0: 1, X1: 1, Y1: 1}, 2)
	assert.ErrorIs(t, err, ErrEmptyRegion)

	renderErr := errors.New("render failed")
	rr = NewRegionRecognizer(&fakeRenderer{err: renderErr}, &fakeEngine{}, DefaultConfig(), nil)
	_, err = rr.Recognize(ctx, 0, box, 2)
	assert.ErrorIs(t, err, renderErr)

	engineErr := errors.New("engine failed")
	rr = NewRegionRecognizer(&fakeRenderer{png: createTestPNG(10, 40)}, &fakeEngine{err: engineErr}, DefaultConfig(), nil)
	_, err = rr.Recognize(ctx, 0, box, 2)
	assert.ErrorIs(t, err, engineErr)
}
