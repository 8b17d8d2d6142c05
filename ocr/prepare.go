package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"

	"golang.org/x/image/draw"
)

// Prepare converts a PNG crop to grayscale, upscales it to at least
// minHeight pixels and surrounds it with a white border of padding pixels.
// Tesseract drops glyphs that touch the image edge.
func Prepare(data []byte, padding, minHeight int) ([]byte, error) {
	src, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode crop: %w", err)
	}

	sb := src.Bounds()
	if sb.Empty() {
		return nil, ErrEmptyRegion
	}
	if padding < 0 {
		padding = 0
	}

	scale := 1.0
	if minHeight > 0 && sb.Dy() < minHeight {
		scale = float64(minHeight) / float64(sb.Dy())
	}
	w := int(math.Round(float64(sb.Dx()) * scale))
	h := int(math.Round(float64(sb.Dy()) * scale))

	dst := image.NewGray(image.Rect(0, 0, w+2*padding, h+2*padding))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	inner := image.Rect(padding, padding, padding+w, padding+h)
	if scale == 1 {
		draw.Draw(dst, inner, src, sb.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, inner, src, sb, draw.Src, nil)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("failed to encode crop: %w", err)
	}
	return buf.Bytes(), nil
}
