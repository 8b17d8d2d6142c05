package ocr

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"sync"
)

// createTestPNG creates a white image with a black bar across it
func createTestPNG(width, height int) []byte {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	for x := width / 10; x < width/2; x++ {
		for y := height / 4; y < height/2; y++ {
			img.Set(x, y, color.Black)
		}
	}

	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

type call struct {
	name string
	args []string
}

// fakeRunner records calls and answers with fixed output. When png is set
// it is written to the file named by the last argument plus ".png", which
// is where pdftoppm -singlefile puts its output.
type fakeRunner struct {
	mu     sync.Mutex
	calls  []call
	stdout string
	stderr string
	err    error
	png    []byte

	// seen holds the contents of the first argument at call time
	seen []byte
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, call{name: name, args: args})
	if len(args) > 0 {
		if data, err := os.ReadFile(args[0]); err == nil {
			f.seen = data
		}
	}
	if f.err != nil {
		return nil, []byte(f.stderr), f.err
	}
	if f.png != nil && len(args) > 0 {
		if err := os.WriteFile(args[len(args)-1]+".png", f.png, 0o600); err != nil {
			return nil, nil, err
		}
	}
	return []byte(f.stdout), []byte(f.stderr), nil
}

type fakeEngine struct {
	text  string
	err   error
	image []byte
}

func (f *fakeEngine) RecognizeImage(ctx context.Context, image []byte) (string, error) {
	f.image = image
	return f.text, f.err
}
