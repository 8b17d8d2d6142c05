package layout

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/docoutline/model"
)

// MergeRuns merges adjacent runs of one line that share font, size and flags.
// Blank runs are dropped before merging and never break a chain. The result
// is in the line's original order and carries the page's dimensions.
func MergeRuns(line model.Line, page model.Page) []model.Block {
	var spans []model.Block
	var current *model.Block

	for _, run := range line {
		if run.IsBlank() {
			continue
		}
		if current != nil && current.Style() == run.Style() {
			merged := current.Append(spanOf(run, page))
			current = &merged
			continue
		}
		if current != nil {
			spans = append(spans, *current)
		}
		span := spanOf(run, page)
		current = &span
	}

	if current != nil {
		spans = append(spans, *current)
	}
	return spans
}

// spanOf lifts a run into a one-run block
func spanOf(run model.TextRun, page model.Page) model.Block {
	return model.Block{
		Text:       strings.TrimSpace(run.Text),
		Font:       run.Font,
		Size:       run.Size,
		Flags:      run.Flags,
		BBox:       run.BBox,
		Page:       page.Index,
		PageWidth:  page.Width,
		PageHeight: page.Height,
	}
}

// MergeSpans folds consecutive blocks that are on the same page and share
// font, size and flags into single blocks. Order is preserved and the input
// is not modified.
func MergeSpans(spans []model.Block) []model.Block {
	if len(spans) == 0 {
		return nil
	}

	merged := make([]model.Block, 0, len(spans))
	current := spans[0]
	for _, span := range spans[1:] {
		if current.Mergeable(span) {
			current = current.Append(span)
			continue
		}
		merged = append(merged, current)
		current = span
	}
	return append(merged, current)
}

// MergeBlocks builds the blocks of one page: it merges runs line by line,
// stable-sorts the spans by their top edge, and merges consecutive spans of
// the same style.
func MergeBlocks(page model.Page) []model.Block {
	var spans []model.Block
	for _, line := range page.Lines {
		spans = append(spans, MergeRuns(line, page)...)
	}

	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].BBox.Y0 < spans[j].BBox.Y0
	})

	return MergeSpans(spans)
}

// MergePages builds the blocks of every page and returns them as one
// sequence ordered by page, then by position. Pages are processed by up to
// workers goroutines; workers <= 1 processes them sequentially. The
// concatenated result is merged once more, which cannot join blocks across
// pages.
func MergePages(ctx context.Context, pages []model.Page, workers int) ([]model.Block, error) {
	perPage := make([][]model.Block, len(pages))

	if workers <= 1 {
		for i, page := range pages {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			perPage[i] = MergeBlocks(page)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for i, page := range pages {
			i, page := i, page
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				perPage[i] = MergeBlocks(page)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	// Pages are expected in index order; a caller-supplied slice may not be.
	order := make([]int, len(pages))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return pages[order[a]].Index < pages[order[b]].Index
	})

	var all []model.Block
	for _, i := range order {
		all = append(all, perPage[i]...)
	}
	return MergeSpans(all), nil
}
