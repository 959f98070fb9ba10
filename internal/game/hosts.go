package game

import (
	"image"

	"chosenoffset.com/tilemarker/internal/core/geom"
	"chosenoffset.com/tilemarker/internal/overlay"
)

// sceneHost exposes the perspective view to the scene overlay.
type sceneHost struct {
	g *Game
}

func (h sceneHost) Plane() int                      { return h.g.Player.Pos.Plane }
func (h sceneHost) PlayerLocation() geom.WorldPoint { return h.g.Player.Pos }
func (h sceneHost) Camera() overlay.Camera          { return h.g.Camera }
func (h sceneHost) RemainingTiles() int             { return h.g.RemainingTiles() }

func (h sceneHost) HoveredTile() (geom.WorldPoint, bool) {
	return h.g.Hovered, h.g.HasHovered
}

func (h sceneHost) Walkable(p geom.WorldPoint, dx, dy int) bool {
	return h.g.World.Walkable(p, dx, dy)
}

// MarkedTiles returns the marked tiles in the regions around the player.
// Anything further away is beyond any sensible draw distance.
func (h sceneHost) MarkedTiles() []geom.WorldPoint {
	reach := 2 * max(h.g.Config.MaxDrawDistance, 1)
	pos := h.g.Player.Pos
	bounds := image.Rect(0, 0, reach, reach)

	var tiles []geom.WorldPoint
	for id := range overlay.VisibleRegions(bounds, 1, image.Pt(pos.X, pos.Y)) {
		for _, t := range h.g.Tiles.TilesInRegion(id) {
			tiles = append(tiles, t.World())
		}
	}
	return tiles
}

// mapHost exposes the world map window to the map overlay.
type mapHost struct {
	g *Game
}

func (h mapHost) Plane() int                    { return h.g.Player.Pos.Plane }
func (h mapHost) MapZoom() float64              { return h.g.Map.PixelsPerTile }
func (h mapHost) SurfaceContains(x, y int) bool { return h.g.World.SurfaceContains(x, y) }

func (h mapHost) MapBounds() (image.Rectangle, bool) {
	return h.g.mapBounds(), h.g.Map.Open
}

func (h mapHost) MapAnchor() image.Point {
	return h.g.MapViewport().Anchor
}

func (h mapHost) Occluders() []overlay.Occluder {
	return []overlay.Occluder{h.g.Map.Overview}
}

// Tiles returns a snapshot so the whole map pass sees one consistent set.
func (h mapHost) Tiles() overlay.TileIndex {
	return h.g.Tiles.Snapshot()
}
