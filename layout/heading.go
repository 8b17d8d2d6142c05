package layout

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/tsawler/docoutline/model"
)

// HeadingConfig holds configuration for heading classification
type HeadingConfig struct {
	// SizeOffset is added to the mean block font size to get the minimum
	// heading size.
	// Default: 1.5
	SizeOffset float64

	// MinLength and MaxLength bound the trimmed heading text, inclusive.
	// Default: 3 and 150
	MinLength int
	MaxLength int

	// SkipLastBlock excludes the final block of the document, which is
	// usually a trailing artifact such as a page number.
	// Default: true
	SkipLastBlock bool

	// Blacklist lists case-insensitive substrings that disqualify a block.
	// Independent of the title blacklist.
	// Default: empty
	Blacklist []string
}

// DefaultHeadingConfig returns the default heading configuration
func DefaultHeadingConfig() HeadingConfig {
	return HeadingConfig{
		SizeOffset:    1.5,
		MinLength:     3,
		MaxLength:     150,
		SkipLastBlock: true,
	}
}

// HeadingClassifier turns filtered blocks into a leveled heading outline.
// It keeps no state between calls.
type HeadingClassifier struct {
	config    HeadingConfig
	blacklist blacklist
	reader    regionReader
	logger    *zap.Logger
}

// NewHeadingClassifier creates a classifier. rec may be nil to skip OCR.
func NewHeadingClassifier(config HeadingConfig, rec Recognizer, ocr OCRConfig, logger *zap.Logger) *HeadingClassifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HeadingClassifier{
		config:    config,
		blacklist: newBlacklist(config.Blacklist),
		reader:    newRegionReader(rec, ocr, logger),
		logger:    logger,
	}
}

// Threshold returns the minimum heading size: the mean size of all blocks
// plus the configured offset. It is 0 for no blocks.
func (c *HeadingClassifier) Threshold(blocks []model.Block) float64 {
	if len(blocks) == 0 {
		return 0
	}
	var sum float64
	for _, b := range blocks {
		sum += b.Size
	}
	return sum/float64(len(blocks)) + c.config.SizeOffset
}

// Candidates returns the blocks that pass every heading criterion, in
// input order.
func (c *HeadingClassifier) Candidates(blocks []model.Block, threshold float64, titleText string) []model.Block {
	var candidates []model.Block
	for i, b := range blocks {
		if c.config.SkipLastBlock && i == len(blocks)-1 {
			continue
		}
		text := strings.TrimSpace(b.Text)
		if text == "" || text == titleText {
			continue
		}
		if n := textLength(text); n < c.config.MinLength || n > c.config.MaxLength {
			continue
		}
		if EndsWithSingleDot(text) {
			continue
		}
		if b.Size < threshold {
			continue
		}
		if c.blacklist.matches(text) {
			continue
		}
		candidates = append(candidates, b)
	}
	return candidates
}

// ClusterLevels maps each distinct candidate size to a level label: the
// largest size is "H1", the next "H2", and so on.
func ClusterLevels(candidates []model.Block) map[float64]string {
	seen := make(map[float64]bool)
	var sizes []float64
	for _, b := range candidates {
		if !seen[b.Size] {
			seen[b.Size] = true
			sizes = append(sizes, b.Size)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))

	levels := make(map[float64]string, len(sizes))
	for i, size := range sizes {
		levels[size] = model.LevelLabel(i + 1)
	}
	return levels
}

// EnforceHierarchy drops headings that deepen the outline by more than one
// level relative to the last accepted heading. Headings with a non-numeric
// level are always kept and do not affect tracking.
func EnforceHierarchy(headings []model.Heading) []model.Heading {
	var kept []model.Heading
	var last int
	tracking := false

	for _, h := range headings {
		level, ok := model.ParseLevel(h.Level)
		if !ok {
			kept = append(kept, h)
			continue
		}
		if !tracking || level <= last+1 {
			kept = append(kept, h)
			last = level
			tracking = true
		}
	}
	return kept
}

// Classify runs threshold, candidate filter, level clustering, OCR and
// reading-order sort, then the hierarchy pass.
func (c *HeadingClassifier) Classify(ctx context.Context, blocks []model.Block, titleText string) []model.Heading {
	threshold := c.Threshold(blocks)
	candidates := c.Candidates(blocks, threshold, titleText)

	c.logger.Debug("heading candidates",
		zap.Float64("threshold", threshold),
		zap.Int("blocks", len(blocks)),
		zap.Int("candidates", len(candidates)),
	)
	if len(candidates) == 0 {
		return nil
	}

	levels := ClusterLevels(candidates)

	headings := make([]model.Heading, 0, len(candidates))
	for _, b := range candidates {
		headings = append(headings, model.Heading{
			Level:   levels[b.Size],
			Text:    strings.TrimSpace(b.Text),
			OCRText: c.reader.read(ctx, b),
			Page:    b.Page,
			BBox:    b.BBox,
			Size:    b.Size,
		})
	}

	sort.SliceStable(headings, func(i, j int) bool {
		if headings[i].Page != headings[j].Page {
			return headings[i].Page < headings[j].Page
		}
		return headings[i].BBox.Y0 < headings[j].BBox.Y0
	})

	return EnforceHierarchy(headings)
}
