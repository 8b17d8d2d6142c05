package tables

import (
	"github.com/tidwall/rtree"

	"github.com/tsawler/docoutline/model"
)

// searchSlack widens R-tree queries so that boxes sharing only an edge are
// returned as candidates; each candidate is then confirmed exactly.
const searchSlack = 1e-9

// Index is a per-page R-tree over table regions
type Index struct {
	regions Regions
	trees   map[int]*rtree.RTreeG[model.Rect]
}

// NewIndex builds an index over regions
func NewIndex(regions Regions) *Index {
	idx := &Index{
		regions: regions,
		trees:   make(map[int]*rtree.RTreeG[model.Rect], len(regions)),
	}
	for page, boxes := range regions {
		if len(boxes) == 0 {
			continue
		}
		tr := &rtree.RTreeG[model.Rect]{}
		for _, b := range boxes {
			tr.Insert([2]float64{b.X0, b.Y0}, [2]float64{b.X1, b.Y1}, b)
		}
		idx.trees[page] = tr
	}
	return idx
}

// Regions returns the boxes registered for page
func (idx *Index) Regions(page int) []model.Rect {
	return idx.regions[page]
}

// Overlaps reports whether box touches any table region on page
func (idx *Index) Overlaps(page int, box model.Rect) bool {
	tr, ok := idx.trees[page]
	if !ok {
		return false
	}

	found := false
	tr.Search(
		[2]float64{box.X0 - searchSlack, box.Y0 - searchSlack},
		[2]float64{box.X1 + searchSlack, box.Y1 + searchSlack},
		func(_, _ [2]float64, t model.Rect) bool {
			if box.Intersects(t) {
				found = true
				return false
			}
			return true
		},
	)
	return found
}

// Len returns the number of indexed boxes
func (idx *Index) Len() int {
	n := 0
	for _, tr := range idx.trees {
		n += tr.Len()
	}
	return n
}
