package model

import "math"

// Rect is an axis-aligned rectangle in page coordinates with the origin at
// the top-left corner of the page: X grows to the right and Y grows down.
type Rect struct {
	X0 float64 // Left
	Y0 float64 // Top
	X1 float64 // Right
	Y1 float64 // Bottom
}

// NewRect creates a rectangle from two corners in any order
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{
		X0: math.Min(x0, x1),
		Y0: math.Min(y0, y1),
		X1: math.Max(x0, x1),
		Y1: math.Max(y0, y1),
	}
}

// Width returns the horizontal extent
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the vertical extent
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Area returns the area of the rectangle
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// IsEmpty returns true if the rectangle has zero area
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Intersects checks if two rectangles overlap. Touching edges count as an
// intersection: the rectangles are disjoint only when one lies strictly
// outside the other along either axis.
func (r Rect) Intersects(other Rect) bool {
	return !(r.X1 < other.X0 ||
		other.X1 < r.X0 ||
		r.Y1 < other.Y0 ||
		other.Y1 < r.Y0)
}

// Union returns the smallest rectangle enclosing both rectangles
func (r Rect) Union(other Rect) Rect {
	return Rect{
		X0: math.Min(r.X0, other.X0),
		Y0: math.Min(r.Y0, other.Y0),
		X1: math.Max(r.X1, other.X1),
		Y1: math.Max(r.Y1, other.Y1),
	}
}

// Scale multiplies every coordinate by factor
func (r Rect) Scale(factor float64) Rect {
	return Rect{
		X0: r.X0 * factor,
		Y0: r.Y0 * factor,
		X1: r.X1 * factor,
		Y1: r.Y1 * factor,
	}
}

// Envelope returns the coordinate-wise min/max envelope of rects.
// It returns the zero Rect for an empty slice.
func Envelope(rects ...Rect) Rect {
	if len(rects) == 0 {
		return Rect{}
	}
	env := rects[0]
	for _, r := range rects[1:] {
		env = env.Union(r)
	}
	return env
}
