package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Tesseract is an Engine that runs the tesseract command line tool
type Tesseract struct {
	binary      string
	language    string
	psm         PageSegMode
	tessdataDir string
	runner      Runner
}

// NewTesseract creates a command line engine. A nil runner runs commands
// with os/exec.
func NewTesseract(cfg Config, runner Runner) *Tesseract {
	cfg = cfg.withDefaults()
	if runner == nil {
		runner = NewExecRunner(nil)
	}
	return &Tesseract{
		binary:      cfg.Tesseract,
		language:    cfg.Language,
		psm:         cfg.PageSegMode,
		tessdataDir: cfg.TessdataDir,
		runner:      runner,
	}
}

// RecognizeImage writes the image to a temporary file and runs
// tesseract <file> stdout -l <lang> --psm <mode>.
func (t *Tesseract) RecognizeImage(ctx context.Context, image []byte) (string, error) {
	dir, err := os.MkdirTemp("", "docoutline-ocr-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "region.png")
	if err := os.WriteFile(in, image, 0o600); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}

	out, errb, err := t.runner.Run(ctx, t.binary, t.args(in)...)
	if err != nil {
		return "", commandError(t.binary, errb, err)
	}
	return strings.TrimSpace(string(out)), nil
}

func (t *Tesseract) args(in string) []string {
	args := []string{in, "stdout", "-l", t.language, "--psm", strconv.Itoa(int(t.psm))}
	if t.tessdataDir != "" {
		args = append(args, "--tessdata-dir", t.tessdataDir)
	}
	return args
}
