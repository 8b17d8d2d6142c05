package layout

import (
	"github.com/tsawler/docoutline/model"
	"github.com/tsawler/docoutline/tables"
)

// NoiseKind tells why a block was excluded from classification
type NoiseKind int

const (
	NoiseNone NoiseKind = iota
	NoiseHeader
	NoiseFooter
	NoiseTable
)

func (k NoiseKind) String() string {
	switch k {
	case NoiseHeader:
		return "header"
	case NoiseFooter:
		return "footer"
	case NoiseTable:
		return "table"
	default:
		return "none"
	}
}

// NoiseConfig holds configuration for the noise filter
type NoiseConfig struct {
	// Margin is the fraction of the page height that forms the header band
	// at the top and the footer band at the bottom.
	// Default: 0.1
	Margin float64
}

// DefaultNoiseConfig returns the default noise filter configuration
func DefaultNoiseConfig() NoiseConfig {
	return NoiseConfig{Margin: 0.1}
}

// IsHeader reports whether the block's bottom edge lies within the top
// margin band. The boundary is inclusive.
func IsHeader(b model.Block, margin float64) bool {
	return b.BBox.Y1 <= b.PageHeight*margin
}

// IsFooter reports whether the block's top edge lies within the bottom
// margin band. The boundary is inclusive.
func IsFooter(b model.Block, margin float64) bool {
	return b.BBox.Y0 >= b.PageHeight*(1-margin)
}

// NoiseFilter removes running headers, footers and table content
type NoiseFilter struct {
	config NoiseConfig
	tables tables.Source
}

// NewNoiseFilter creates a filter. A nil table source means no tables.
func NewNoiseFilter(config NoiseConfig, src tables.Source) *NoiseFilter {
	return &NoiseFilter{config: config, tables: src}
}

// Kind classifies a single block. Header/footer takes precedence over
// table overlap.
func (f *NoiseFilter) Kind(b model.Block) NoiseKind {
	switch {
	case IsHeader(b, f.config.Margin):
		return NoiseHeader
	case IsFooter(b, f.config.Margin):
		return NoiseFooter
	case f.tables != nil && tables.Overlaps(f.tables, b.Page, b.BBox):
		return NoiseTable
	default:
		return NoiseNone
	}
}

// Classify returns one NoiseKind per block, indexed like the input
func (f *NoiseFilter) Classify(blocks []model.Block) []NoiseKind {
	kinds := make([]NoiseKind, len(blocks))
	for i, b := range blocks {
		kinds[i] = f.Kind(b)
	}
	return kinds
}

// Filter returns the blocks that are neither header/footer nor table
// content, in their original order.
func (f *NoiseFilter) Filter(blocks []model.Block) []model.Block {
	kinds := f.Classify(blocks)
	kept := make([]model.Block, 0, len(blocks))
	for i, b := range blocks {
		if kinds[i] == NoiseNone {
			kept = append(kept, b)
		}
	}
	return kept
}
