package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/tsawler/docoutline/model"
)

// blockSeparator ends each entry of the block listing
const blockSeparator = "---------"

// WriteBlocks writes one entry per block:
//
//	Text: 1. Introduction
//	Font: Helvetica-Bold | Size: 16 | Bold: true | Italic: false
//	Page: 2
//	BBox: (72, 80, 540, 96)
//	---------
//
// Pages are 1-based.
func WriteBlocks(w io.Writer, blocks []model.Block) error {
	bw := bufio.NewWriter(w)
	for _, b := range blocks {
		fmt.Fprintf(bw, "Text: %s\n", b.Text)
		fmt.Fprintf(bw, "Font: %s | Size: %s | Bold: %t | Italic: %t\n",
			b.Font, num(b.Size), b.Flags.Bold(), b.Flags.Italic())
		fmt.Fprintf(bw, "Page: %d\n", b.Page+1)
		fmt.Fprintf(bw, "BBox: %s\n", formatRect(b.BBox))
		fmt.Fprintln(bw, blockSeparator)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write blocks: %w", err)
	}
	return nil
}

func formatRect(r model.Rect) string {
	return "(" + num(r.X0) + ", " + num(r.Y0) + ", " + num(r.X1) + ", " + num(r.Y1) + ")"
}

// num formats f with the fewest digits that round-trip
func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
