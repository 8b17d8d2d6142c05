package ocr

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tsawler/docoutline/model"
)

// Renderer produces an encoded PNG of a region of a page
type Renderer interface {
	Render(ctx context.Context, page int, box model.Rect, zoom float64) ([]byte, error)
}

// Rasterizer renders page regions of a PDF file with pdftoppm
type Rasterizer struct {
	path   string
	binary string
	runner Runner
}

// NewRasterizer creates a Rasterizer for the PDF at path. An empty binary
// means "pdftoppm"; a nil runner runs commands with os/exec.
func NewRasterizer(path, binary string, runner Runner) *Rasterizer {
	if binary == "" {
		binary = DefaultConfig().Pdftoppm
	}
	if runner == nil {
		runner = NewExecRunner(nil)
	}
	return &Rasterizer{path: path, binary: binary, runner: runner}
}

// Render crops box out of the 0-based page at 72*zoom DPI. box is in PDF
// points with a top-left origin.
func (r *Rasterizer) Render(ctx context.Context, page int, box model.Rect, zoom float64) ([]byte, error) {
	if box.IsEmpty() {
		return nil, ErrEmptyRegion
	}
	if zoom <= 0 {
		zoom = 1
	}

	dir, err := os.MkdirTemp("", "docoutline-crop-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	prefix := filepath.Join(dir, "crop")
	_, errb, err := r.runner.Run(ctx, r.binary, cropArgs(r.path, prefix, page, box, zoom)...)
	if err != nil {
		return nil, commandError(r.binary, errb, err)
	}

	// -singlefile writes exactly <prefix>.png
	data, err := os.ReadFile(prefix + ".png")
	if err != nil {
		return nil, fmt.Errorf("%s produced no image: %w", r.binary, err)
	}
	return data, nil
}

// cropArgs builds pdftoppm arguments. Crop offsets and sizes are pixels at
// the rendering resolution.
func cropArgs(path, prefix string, page int, box model.Rect, zoom float64) []string {
	n := strconv.Itoa(page + 1)
	x := int(math.Floor(box.X0 * zoom))
	y := int(math.Floor(box.Y0 * zoom))
	w := int(math.Ceil(box.X1*zoom)) - x
	h := int(math.Ceil(box.Y1*zoom)) - y

	return []string{
		"-f", n, "-l", n,
		"-r", strconv.FormatFloat(72*zoom, 'f', -1, 64),
		"-x", strconv.Itoa(x), "-y", strconv.Itoa(y),
		"-W", strconv.Itoa(w), "-H", strconv.Itoa(h),
		"-png", "-singlefile",
		path, prefix,
	}
}
