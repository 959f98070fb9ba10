// Package geom holds the coordinate types shared by the scene and world map
// overlays: world tiles, packed region ids, region-local tiles and projected
// screen polygons.
package geom

import (
	"fmt"
	"math"
)

const (
	// RegionShift is log2 of the region edge length in tiles.
	RegionShift = 6
	// RegionSize is the edge length of a region in world tiles.
	RegionSize = 1 << RegionShift
	// RegionTruncate clears the in-region bits, giving the first coordinate
	// of the region a tile belongs to.
	RegionTruncate = ^(RegionSize - 1)

	// WorldSize is the exclusive upper bound of a coordinate that can be
	// packed into a RegionID (256 regions of 64 tiles per axis).
	WorldSize = RegionSize << 8
)

// WorldPoint is an absolute tile coordinate.
type WorldPoint struct {
	X, Y  int
	Plane int
}

// Offset returns the point shifted by (dx, dy) on the same plane.
func (p WorldPoint) Offset(dx, dy int) WorldPoint {
	return WorldPoint{X: p.X + dx, Y: p.Y + dy, Plane: p.Plane}
}

// DistanceTo returns the tile distance to other: the larger of the two axis
// deltas. Points on different planes are never near each other, so the
// result is math.MaxInt.
func (p WorldPoint) DistanceTo(other WorldPoint) int {
	if p.Plane != other.Plane {
		return math.MaxInt
	}
	return max(abs(p.X-other.X), abs(p.Y-other.Y))
}

// Region returns the id of the region containing p. ok is false for points
// outside the packable world.
func (p WorldPoint) Region() (id RegionID, ok bool) {
	return RegionOf(p.X, p.Y)
}

func (p WorldPoint) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.X, p.Y, p.Plane)
}

// RegionID identifies a 64x64 block of tiles. The high byte is the region
// column (x >> 6) and the low byte the region row (y >> 6). The plane is not
// part of the id.
type RegionID uint16

// RegionOf packs the region id of tile (x, y).
func RegionOf(x, y int) (RegionID, bool) {
	if x < 0 || y < 0 || x >= WorldSize || y >= WorldSize {
		return 0, false
	}
	return RegionID((x>>RegionShift)<<8 | y>>RegionShift), true
}

// Column returns the region's x index.
func (r RegionID) Column() int { return int(r >> 8) }

// Row returns the region's y index.
func (r RegionID) Row() int { return int(r & 0xFF) }

// BaseX returns the world x of the region's south-west tile.
func (r RegionID) BaseX() int { return r.Column() << RegionShift }

// BaseY returns the world y of the region's south-west tile.
func (r RegionID) BaseY() int { return r.Row() << RegionShift }

func (r RegionID) String() string {
	return fmt.Sprintf("region %d [%d,%d]", uint16(r), r.Column(), r.Row())
}

// LocalTile is a tile stored relative to the origin of its region.
type LocalTile struct {
	Region RegionID
	X, Y   uint8 // 0..RegionSize-1
	Plane  int
}

// LocalOf converts a world point into its region-local form.
func LocalOf(p WorldPoint) (LocalTile, bool) {
	id, ok := p.Region()
	if !ok {
		return LocalTile{}, false
	}
	return LocalTile{
		Region: id,
		X:      uint8(p.X & (RegionSize - 1)),
		Y:      uint8(p.Y & (RegionSize - 1)),
		Plane:  p.Plane,
	}, true
}

// World converts the tile back to an absolute point.
func (t LocalTile) World() WorldPoint {
	return WorldPoint{
		X:     t.Region.BaseX() + int(t.X),
		Y:     t.Region.BaseY() + int(t.Y),
		Plane: t.Plane,
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
