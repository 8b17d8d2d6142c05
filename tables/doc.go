// Package tables holds the table regions that outline extraction treats as
// noise.
//
// Table detection itself happens elsewhere; this package only stores its
// output, a list of bounding boxes per 0-based page index, and answers
// overlap queries against it.
//
// # Sources
//
// Anything implementing [Source] can supply regions. [Regions] is a plain
// map; [Index] wraps a [Regions] value in one R-tree per page for fast
// overlap queries:
//
//	regions, err := tables.Load("tables.yaml")
//	idx := tables.NewIndex(regions)
//	if idx.Overlaps(0, box) {
//	    // skip the block
//	}
//
// # File Format
//
// [Load] and [Parse] accept YAML or JSON mapping page indices to boxes given
// as [x0, y0, x1, y1] in top-left page coordinates:
//
//	0:
//	  - [72, 300, 540, 420]
//	2:
//	  - [72, 100, 300, 200]
package tables
