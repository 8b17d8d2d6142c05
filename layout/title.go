package layout

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/tsawler/docoutline/model"
)

// TitleConfig holds configuration for title selection
type TitleConfig struct {
	// MaxPage is the last 0-based page index that may hold the title.
	// Default: 1 (first two pages)
	MaxPage int

	// MinLength is the minimum number of characters a candidate needs.
	// Default: 6
	MinLength int

	// Blacklist lists case-insensitive substrings that disqualify a block.
	// Default: "page", "draft", "confidential"
	Blacklist []string
}

// DefaultTitleConfig returns the default title selection configuration
func DefaultTitleConfig() TitleConfig {
	return TitleConfig{
		MaxPage:   1,
		MinLength: 6,
		Blacklist: []string{"page", "draft", "confidential"},
	}
}

// TitleSelector picks the document title from the filtered blocks
type TitleSelector struct {
	config    TitleConfig
	blacklist blacklist
	reader    regionReader
}

// NewTitleSelector creates a selector. rec may be nil to skip OCR.
func NewTitleSelector(config TitleConfig, rec Recognizer, ocr OCRConfig, logger *zap.Logger) *TitleSelector {
	return &TitleSelector{
		config:    config,
		blacklist: newBlacklist(config.Blacklist),
		reader:    newRegionReader(rec, ocr, logger),
	}
}

// Candidates returns the blocks eligible as title, in input order
func (s *TitleSelector) Candidates(blocks []model.Block) []model.Block {
	var candidates []model.Block
	for _, b := range blocks {
		if b.Page < 0 || b.Page > s.config.MaxPage {
			continue
		}
		if textLength(b.Text) < s.config.MinLength {
			continue
		}
		if s.blacklist.matches(b.Text) {
			continue
		}
		candidates = append(candidates, b)
	}
	return candidates
}

// Best ranks candidates by descending size, then page, then top edge, and
// returns the winner. It returns false when there are no candidates.
func (s *TitleSelector) Best(blocks []model.Block) (model.Block, bool) {
	candidates := s.Candidates(blocks)
	if len(candidates) == 0 {
		return model.Block{}, false
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Size != b.Size {
			return a.Size > b.Size
		}
		if a.Page != b.Page {
			return a.Page < b.Page
		}
		return a.BBox.Y0 < b.BBox.Y0
	})
	return candidates[0], true
}

// Select returns the title. The winning block's region is re-read with OCR
// exactly once. An empty Title is returned when nothing qualifies.
func (s *TitleSelector) Select(ctx context.Context, blocks []model.Block) model.Title {
	best, ok := s.Best(blocks)
	if !ok {
		return model.Title{}
	}

	return model.Title{
		Text:    best.Text,
		OCRText: s.reader.read(ctx, best),
		Page:    best.Page,
		BBox:    best.BBox,
		Size:    best.Size,
	}
}
