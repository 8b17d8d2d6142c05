package model

import "fmt"

// Block is a style-homogeneous piece of text made from one or more runs on a
// single page. Blocks are values; merging builds a new Block.
type Block struct {
	Text       string
	Font       string
	Size       float64
	Flags      Flags
	BBox       Rect
	Page       int // 0-based page index
	PageWidth  float64
	PageHeight float64
}

// Style returns the block's merge key
func (b Block) Style() Style {
	return Style{Font: b.Font, Size: b.Size, Flags: b.Flags}
}

// Mergeable reports whether other can be appended to b: same page and
// bit-for-bit identical font, size and flags.
func (b Block) Mergeable(other Block) bool {
	return b.Page == other.Page && b.Style() == other.Style()
}

// Append returns a new Block holding b followed by other, joined by a
// single space, with the enclosing bounding box.
func (b Block) Append(other Block) Block {
	merged := b
	merged.Text = b.Text + " " + other.Text
	merged.BBox = b.BBox.Union(other.BBox)
	return merged
}

// String returns a short human-readable description
func (b Block) String() string {
	return fmt.Sprintf("Block{page=%d size=%.1f font=%q text=%q}", b.Page, b.Size, b.Font, b.Text)
}
