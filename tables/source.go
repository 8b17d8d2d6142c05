package tables

import (
	"sort"

	"github.com/tsawler/docoutline/model"
)

// Source supplies the table regions of a page
type Source interface {
	// Regions returns the table boxes on the 0-based page; it may be empty
	Regions(page int) []model.Rect
}

// Overlapper answers overlap queries directly
type Overlapper interface {
	Overlaps(page int, box model.Rect) bool
}

// Regions maps a 0-based page index to its table boxes
type Regions map[int][]model.Rect

// Regions returns the boxes registered for page
func (r Regions) Regions(page int) []model.Rect {
	return r[page]
}

// Pages returns the page indices that have at least one region, ascending
func (r Regions) Pages() []int {
	pages := make([]int, 0, len(r))
	for p, boxes := range r {
		if len(boxes) > 0 {
			pages = append(pages, p)
		}
	}
	sort.Ints(pages)
	return pages
}

// Count returns the total number of boxes
func (r Regions) Count() int {
	n := 0
	for _, boxes := range r {
		n += len(boxes)
	}
	return n
}

// None is a Source with no tables on any page
var None Source = Regions(nil)

// Overlaps reports whether box touches any table region on page. Sources
// that implement Overlapper answer directly; others are scanned.
func Overlaps(src Source, page int, box model.Rect) bool {
	if src == nil {
		return false
	}
	if o, ok := src.(Overlapper); ok {
		return o.Overlaps(page, box)
	}
	for _, t := range src.Regions(page) {
		if box.Intersects(t) {
			return true
		}
	}
	return false
}

// Collect copies the regions of the given pages out of src
func Collect(src Source, pages []int) Regions {
	out := make(Regions)
	for _, p := range pages {
		if boxes := src.Regions(p); len(boxes) > 0 {
			out[p] = append([]model.Rect(nil), boxes...)
		}
	}
	return out
}
