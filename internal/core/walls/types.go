package walls

import "chosenoffset.com/tilemarker/internal/core/geom"

// Segment is one wall edge of a projected tile.
type Segment struct {
	A, B geom.ScreenPoint
	From int // polygon vertex index of A
	To   int // polygon vertex index of B
	Side geom.Direction
}

// Walkability holds whether each neighbouring tile can be entered from the
// tile being decorated.
type Walkability struct {
	North, South, East, West bool
}

// Open reports whether the neighbour towards d is walkable.
func (w Walkability) Open(d geom.Direction) bool {
	switch d {
	case geom.North:
		return w.North
	case geom.South:
		return w.South
	case geom.East:
		return w.East
	case geom.West:
		return w.West
	}
	return true
}

// Enclosed reports whether no side is walkable.
func (w Walkability) Enclosed() bool {
	return !w.North && !w.South && !w.East && !w.West
}

// WalkableFunc answers whether the tile at p offset by (dx, dy) can be
// walked to from p. (0, 0) asks about p itself.
type WalkableFunc func(p geom.WorldPoint, dx, dy int) bool
