// Package clip computes the area of a viewport left visible once overlapping
// UI panels are cut out of it.
package clip

import "image"

// Region is a base rectangle minus any number of subtracted rectangles. It
// is stored as a set of disjoint rectangles covering exactly the remaining
// area.
type Region struct {
	base  image.Rectangle
	rects []image.Rectangle
}

// New returns a region covering r.
func New(r image.Rectangle) Region {
	r = r.Canon()
	if r.Empty() {
		return Region{}
	}
	return Region{base: r, rects: []image.Rectangle{r}}
}

// Subtract returns the region with o removed. The receiver is not modified.
func (r Region) Subtract(o image.Rectangle) Region {
	o = o.Canon()
	if o.Empty() || len(r.rects) == 0 {
		return r
	}
	out := make([]image.Rectangle, 0, len(r.rects)+3)
	for _, rect := range r.rects {
		out = append(out, subtract(rect, o)...)
	}
	return Region{base: r.base, rects: out}
}

// Base returns the rectangle the region started from.
func (r Region) Base() image.Rectangle {
	return r.base
}

// Rects returns the disjoint rectangles that make up the region.
func (r Region) Rects() []image.Rectangle {
	out := make([]image.Rectangle, len(r.rects))
	copy(out, r.rects)
	return out
}

// Empty reports whether nothing of the base rectangle remains.
func (r Region) Empty() bool {
	return len(r.rects) == 0
}

// Area returns the number of pixels in the region.
func (r Region) Area() int {
	total := 0
	for _, rect := range r.rects {
		total += rect.Dx() * rect.Dy()
	}
	return total
}

// Contains reports whether pixel p lies inside the region.
func (r Region) Contains(p image.Point) bool {
	for _, rect := range r.rects {
		if p.In(rect) {
			return true
		}
	}
	return false
}

// Equal reports whether the region covers exactly rect.
func (r Region) Equal(rect image.Rectangle) bool {
	rect = rect.Canon()
	if rect.Empty() {
		return r.Empty()
	}
	return r.Area() == rect.Dx()*rect.Dy() && r.within(rect)
}

func (r Region) within(rect image.Rectangle) bool {
	for _, piece := range r.rects {
		if !piece.In(rect) {
			return false
		}
	}
	return true
}

// subtract cuts b out of a and returns up to four bands: full-width strips
// above and below the overlap, then the pieces left and right of it.
func subtract(a, b image.Rectangle) []image.Rectangle {
	in := a.Intersect(b)
	if in.Empty() {
		return []image.Rectangle{a}
	}
	bands := [...]image.Rectangle{
		{Min: a.Min, Max: image.Pt(a.Max.X, in.Min.Y)},
		{Min: image.Pt(a.Min.X, in.Max.Y), Max: a.Max},
		{Min: image.Pt(a.Min.X, in.Min.Y), Max: image.Pt(in.Min.X, in.Max.Y)},
		{Min: image.Pt(in.Max.X, in.Min.Y), Max: image.Pt(a.Max.X, in.Max.Y)},
	}
	var out []image.Rectangle
	for _, band := range bands {
		if !band.Empty() {
			out = append(out, band)
		}
	}
	return out
}
