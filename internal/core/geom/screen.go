package geom

// ScreenPoint is a position in canvas pixels.
type ScreenPoint struct {
	X, Y float64
}

// Vertex positions inside a ScreenPolygon.
//
//	3-------2
//	|       |
//	|       |
//	0-------1
const (
	SouthWest = 0
	SouthEast = 1
	NorthEast = 2
	NorthWest = 3
)

// ScreenPolygon is a tile footprint projected onto the canvas. The vertex
// order is fixed (see SouthWest..NorthWest); wall edges are looked up by
// index, so projections must keep it.
type ScreenPolygon [4]ScreenPoint

// Points returns the vertices as a slice.
func (p ScreenPolygon) Points() []ScreenPoint {
	return p[:]
}

// Bounds returns the axis-aligned box around the polygon.
func (p ScreenPolygon) Bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = p[0].X, p[0].Y
	maxX, maxY = minX, minY
	for _, v := range p[1:] {
		minX = min(minX, v.X)
		minY = min(minY, v.Y)
		maxX = max(maxX, v.X)
		maxY = max(maxY, v.Y)
	}
	return minX, minY, maxX, maxY
}

// Direction is a cardinal neighbour of a tile.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists the cardinal directions in wall evaluation order.
var Directions = [...]Direction{North, South, East, West}

// Delta returns the tile offset towards d. North is +y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "unknown"
}
