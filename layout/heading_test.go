package layout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/docoutline/model"
)

func levelsOf(headings []model.Heading) []string {
	out := make([]string, len(headings))
	for i, h := range headings {
		out[i] = h.Level
	}
	return out
}

func TestEnforceHierarchy_DropsSkippedLevels(t *testing.T) {
	headings := []model.Heading{
		{Level: "H1", Text: "a"},
		{Level: "H2", Text: "b"},
		{Level: "H4", Text: "c"},
		{Level: "H3", Text: "d"},
	}

	got := EnforceHierarchy(headings)

	assert.Equal(t, []string{"H1", "H2", "H3"}, levelsOf(got))
	assert.Equal(t, "d", got[2].Text)
}

func TestEnforceHierarchy_Cases(t *testing.T) {
	tests := []struct {
		name   string
		levels []string
		want   []string
	}{
		{"empty", nil, nil},
		{"first heading may be deep", []string{"H3", "H4", "H1"}, []string{"H3", "H4", "H1"}},
		{"jump up any amount", []string{"H1", "H2", "H3", "H1", "H2"}, []string{"H1", "H2", "H3", "H1", "H2"}},
		{"repeated skip rejected", []string{"H1", "H3", "H3", "H2", "H3"}, []string{"H1", "H2", "H3"}},
		{"malformed kept without tracking", []string{"H1", "Hx", "H3", "H2"}, []string{"H1", "Hx", "H2"}},
		{"malformed first", []string{"title", "H2", "H4"}, []string{"title", "H2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in []model.Heading
			for _, l := range tt.levels {
				in = append(in, model.Heading{Level: l})
			}
			got := EnforceHierarchy(in)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, levelsOf(got))
		})
	}
}

func TestClusterLevels_RankBySize(t *testing.T) {
	candidates := []model.Block{
		{Size: 14}, {Size: 20}, {Size: 14}, {Size: 16.5}, {Size: 20},
	}

	levels := ClusterLevels(candidates)

	assert.Equal(t, map[float64]string{20: "H1", 16.5: "H2", 14: "H3"}, levels)
	assert.Empty(t, ClusterLevels(nil))
}

func TestHeadingClassifier_Threshold(t *testing.T) {
	c := NewHeadingClassifier(DefaultHeadingConfig(), nil, DefaultOCRConfig(), nil)

	assert.Equal(t, 0.0, c.Threshold(nil))
	assert.InDelta(t, 13.5, c.Threshold([]model.Block{{Size: 10}, {Size: 14}}), 1e-9)
}

func TestHeadingClassifier_Candidates(t *testing.T) {
	blocks := []model.Block{
		makeBlock(0, "Report Title", 24, 100, 130),                   // equals title
		makeBlock(0, "1. Introduction", 16, 150, 166),                // candidate
		makeBlock(0, "It", 16, 170, 186),                             // too short
		makeBlock(0, "This heading ends with a stop.", 16, 190, 206), // single dot
		makeBlock(0, "To be continued...", 16, 210, 226),             // ellipsis is fine
		makeBlock(0, "Body text", 10, 230, 240),                      // below threshold
		makeBlock(0, "   ", 16, 250, 260),                            // blank
		makeBlock(1, "Trailing Artifact", 16, 700, 716),              // last block
	}
	c := NewHeadingClassifier(DefaultHeadingConfig(), nil, DefaultOCRConfig(), nil)

	got := c.Candidates(blocks, 12, "Report Title")

	assert.Equal(t, []string{"1. Introduction", "To be continued..."}, texts(got))
}

func TestHeadingClassifier_LengthBoundsInclusive(t *testing.T) {
	long := make([]byte, 150)
	for i := range long {
		long[i] = 'x'
	}
	blocks := []model.Block{
		makeBlock(0, "abc", 16, 100, 110),
		makeBlock(0, string(long), 16, 120, 130),
		makeBlock(0, string(long)+"y", 16, 140, 150),
		makeBlock(0, "last", 16, 160, 170),
	}
	c := NewHeadingClassifier(DefaultHeadingConfig(), nil, DefaultOCRConfig(), nil)

	got := c.Candidates(blocks, 0, "")

	require.Len(t, got, 2)
	assert.Equal(t, "abc", got[0].Text)
}

func TestHeadingClassifier_SkipLastBlockIsAPolicy(t *testing.T) {
	blocks := []model.Block{
		makeBlock(0, "Chapter One", 16, 100, 116),
		makeBlock(0, "Chapter Two", 16, 200, 216),
	}

	cfg := DefaultHeadingConfig()
	c := NewHeadingClassifier(cfg, nil, DefaultOCRConfig(), nil)
	assert.Equal(t, []string{"Chapter One"}, texts(c.Candidates(blocks, 0, "")))

	cfg.SkipLastBlock = false
	c = NewHeadingClassifier(cfg, nil, DefaultOCRConfig(), nil)
	assert.Equal(t, []string{"Chapter One", "Chapter Two"}, texts(c.Candidates(blocks, 0, "")))
}

func TestHeadingClassifier_Blacklist(t *testing.T) {
	blocks := []model.Block{
		makeBlock(0, "Table of Contents", 16, 100, 116),
		makeBlock(0, "Overview", 16, 200, 216),
		makeBlock(0, "end", 10, 300, 310),
	}
	cfg := DefaultHeadingConfig()
	cfg.Blacklist = []string{"contents"}
	c := NewHeadingClassifier(cfg, nil, DefaultOCRConfig(), nil)

	assert.Equal(t, []string{"Overview"}, texts(c.Candidates(blocks, 0, "")))
}

func TestHeadingClassifier_Classify(t *testing.T) {
	blocks := []model.Block{
		makeBlock(0, "Report Title", 24, 100, 130),
		makeBlock(0, "Body text on the first page", 10, 140, 400),
		makeBlock(1, "2. Methods", 18, 400, 418),
		makeBlock(1, "Body text", 10, 420, 600),
		makeBlock(1, "1. Introduction", 18, 100, 118),
		makeBlock(1, "1.1 Scope", 14, 130, 144),
		makeBlock(2, "1.1.1.1 Too Deep", 12, 100, 112),
		makeBlock(2, "Body text", 10, 120, 700),
		makeBlock(2, "Body text", 10, 120, 700),
		makeBlock(2, "Body text", 10, 120, 700),
		makeBlock(2, "Body text", 10, 120, 700),
		makeBlock(2, "Body text", 10, 120, 700),
		makeBlock(2, "Body text", 10, 120, 700),
		makeBlock(2, "Body text", 10, 120, 700),
		makeBlock(2, "Body text", 10, 120, 700),
		makeBlock(2, "Body text", 10, 120, 700),
		makeBlock(2, "7", 10, 750, 760),
	}
	rec := &fakeRecognizer{text: map[int]string{1: "ocr text"}}
	c := NewHeadingClassifier(DefaultHeadingConfig(), rec, DefaultOCRConfig(), nil)

	headings := c.Classify(context.Background(), blocks, "Report Title")

	// threshold = mean 12.12 + 1.5 = 13.62: sizes 18 and 14 survive, 12 does not
	require.Len(t, headings, 3)
	assert.Equal(t, []string{"1. Introduction", "1.1 Scope", "2. Methods"},
		[]string{headings[0].Text, headings[1].Text, headings[2].Text})
	assert.Equal(t, []string{"H1", "H2", "H1"}, levelsOf(headings))
	assert.Equal(t, "ocr text", headings[0].OCRText)
	assert.Len(t, rec.calls, 3, "one OCR call per candidate")
}

func TestHeadingClassifier_Empty(t *testing.T) {
	rec := &fakeRecognizer{}
	c := NewHeadingClassifier(DefaultHeadingConfig(), rec, DefaultOCRConfig(), nil)

	assert.Empty(t, c.Classify(context.Background(), nil, ""))
	assert.Empty(t, rec.calls)
}
