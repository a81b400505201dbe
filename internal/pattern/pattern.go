// Package pattern provides the sparse cell patterns that can be stamped onto
// a grid, the built-in pattern set, and decoding of patterns from images.
package pattern

// Point is a cell offset relative to a stamp anchor: DX columns right and DY
// rows down.
type Point struct {
	DX, DY int
}

// Pattern is an ordered list of offsets. Patterns are treated as read-only
// once built.
type Pattern []Point

// Dot is the single-cell pattern used by the void tools.
var Dot = Pattern{{0, 0}}

// Bounds returns the width and height of the smallest box holding every
// offset, measured from the origin.
func (p Pattern) Bounds() (w, h int) {
	for _, pt := range p {
		if pt.DX+1 > w {
			w = pt.DX + 1
		}
		if pt.DY+1 > h {
			h = pt.DY + 1
		}
	}
	return w, h
}
