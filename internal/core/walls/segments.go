// Package walls decorates projected tiles with wall edges on the sides whose
// neighbour cannot be walked to.
package walls

import "chosenoffset.com/tilemarker/internal/core/geom"

// edge maps a side of the tile to the polygon vertices it runs between.
type edge struct {
	side geom.Direction
	a, b int
}

// edges is in evaluation order; Evaluate emits segments in this order.
var edges = [...]edge{
	{geom.North, geom.NorthWest, geom.NorthEast},
	{geom.South, geom.SouthWest, geom.SouthEast},
	{geom.East, geom.SouthEast, geom.NorthEast},
	{geom.West, geom.SouthWest, geom.NorthWest},
}

// Edge returns the polygon vertex indices the wall on side d runs between.
func Edge(d geom.Direction) (a, b int) {
	for _, e := range edges {
		if e.side == d {
			return e.a, e.b
		}
	}
	return 0, 0
}

// Evaluate returns one segment per non-walkable side of the tile, taken from
// fixed vertex pairs of poly: north (3,2), south (0,1), east (1,2) and
// west (0,3).
func Evaluate(poly geom.ScreenPolygon, w Walkability) []Segment {
	var segments []Segment
	for _, e := range edges {
		if w.Open(e.side) {
			continue
		}
		segments = append(segments, Segment{
			A:    poly[e.a],
			B:    poly[e.b],
			From: e.a,
			To:   e.b,
			Side: e.side,
		})
	}
	return segments
}

// Probe asks walkable about each cardinal neighbour of p.
func Probe(p geom.WorldPoint, walkable WalkableFunc) Walkability {
	if walkable == nil {
		return Walkability{North: true, South: true, East: true, West: true}
	}
	var w Walkability
	for _, d := range geom.Directions {
		dx, dy := d.Delta()
		open := walkable(p, dx, dy)
		switch d {
		case geom.North:
			w.North = open
		case geom.South:
			w.South = open
		case geom.East:
			w.East = open
		case geom.West:
			w.West = open
		}
	}
	return w
}
