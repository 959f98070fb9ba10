// Package overlay turns the marked tile set into draw commands for the
// perspective scene and the world map. Everything it needs from the game
// client arrives through the host interfaces below, once per frame.
package overlay

import (
	"image"

	"chosenoffset.com/tilemarker/internal/core/geom"
)

// Camera is the host's perspective projection of a tile footprint.
type Camera interface {
	// TilePoly returns the tile's corners in SW, SE, NE, NW order, or false
	// when the tile is not on screen.
	TilePoly(p geom.WorldPoint) (geom.ScreenPolygon, bool)
}

// TileIndex answers which marked tiles fall in a region. It is read-only
// for the duration of a render pass.
type TileIndex interface {
	TilesInRegion(id geom.RegionID) []geom.LocalTile
}

// SceneHost supplies the per-frame state of the perspective view.
type SceneHost interface {
	Plane() int
	PlayerLocation() geom.WorldPoint
	Camera() Camera
	HoveredTile() (geom.WorldPoint, bool)
	Walkable(p geom.WorldPoint, dx, dy int) bool
	RemainingTiles() int
	MarkedTiles() []geom.WorldPoint
}

// Occluder is a UI panel drawn on top of the world map.
type Occluder struct {
	Bounds image.Rectangle
	Hidden bool
}

// MapHost supplies the per-frame state of the world map view.
type MapHost interface {
	Plane() int

	// MapBounds returns the map widget's bounds, or false when the map is
	// not open.
	MapBounds() (image.Rectangle, bool)
	MapZoom() float64 // pixels per tile
	MapAnchor() image.Point
	SurfaceContains(x, y int) bool
	Occluders() []Occluder
	Tiles() TileIndex
}
