package overlay

import (
	"image"
	"image/color"
	"iter"
	"math"

	"chosenoffset.com/tilemarker/internal/config"
	"chosenoffset.com/tilemarker/internal/core/clip"
	"chosenoffset.com/tilemarker/internal/core/geom"
	"chosenoffset.com/tilemarker/internal/render"
)

// Viewport is the world map camera for one frame.
type Viewport struct {
	Bounds        image.Rectangle // map widget on the canvas
	PixelsPerTile float64
	Anchor        image.Point // world tile at the centre of the map
}

// TilesAcross returns how many tiles fit across and down the map, rounded up.
func (v Viewport) TilesAcross() (width, height int) {
	if v.PixelsPerTile <= 0 {
		return 0, 0
	}
	width = int(math.Ceil(float64(v.Bounds.Dx()) / v.PixelsPerTile))
	height = int(math.Ceil(float64(v.Bounds.Dy()) / v.PixelsPerTile))
	return width, height
}

// centering is the pixel shift from a tile's corner to its centre.
func (v Viewport) centering() float64 {
	return v.PixelsPerTile - math.Ceil(v.PixelsPerTile/2)
}

// SurfaceFunc reports whether a tile lies on the map surface being shown.
type SurfaceFunc func(x, y int) bool

// VisibleRegions yields the regions covering the map viewport, x-major then
// y. The range is widened outward to whole regions and limited to the
// packable world.
func VisibleRegions(bounds image.Rectangle, pixelsPerTile float64, anchor image.Point) iter.Seq[geom.RegionID] {
	vp := Viewport{Bounds: bounds, PixelsPerTile: pixelsPerTile, Anchor: anchor}
	width, height := vp.TilesAcross()

	xMin := (anchor.X - width/2) & geom.RegionTruncate
	xMax := ((anchor.X + width/2) & geom.RegionTruncate) + geom.RegionSize
	yMin := (anchor.Y - height/2) & geom.RegionTruncate
	yMax := ((anchor.Y + height/2) & geom.RegionTruncate) + geom.RegionSize

	xMin, yMin = max(xMin, 0), max(yMin, 0)
	xMax, yMax = min(xMax, geom.WorldSize), min(yMax, geom.WorldSize)

	return func(yield func(geom.RegionID) bool) {
		if pixelsPerTile <= 0 {
			return
		}
		for x := xMin; x < xMax; x += geom.RegionSize {
			for y := yMin; y < yMax; y += geom.RegionSize {
				id, _ := geom.RegionOf(x, y)
				if !yield(id) {
					return
				}
			}
		}
	}
}

// ProjectToMap returns the canvas position of the centre of tile p. It is
// false only when surface rejects the tile (or the zoom is unusable); tiles
// outside the viewport still get a position.
func ProjectToMap(p geom.WorldPoint, vp Viewport, surface SurfaceFunc) (image.Point, bool) {
	if surface != nil && !surface(p.X, p.Y) {
		return image.Point{}, false
	}
	if vp.PixelsPerTile <= 0 {
		return image.Point{}, false
	}
	width, height := vp.TilesAcross()

	// Offset in tiles from the map's left and bottom edges
	yTileMax := vp.Anchor.Y - height/2
	yTileOffset := (yTileMax - p.Y - 1) * -1
	xTileOffset := p.X + width/2 - vp.Anchor.X

	xGraph := int(float64(xTileOffset) * vp.PixelsPerTile)
	yGraph := int(float64(yTileOffset) * vp.PixelsPerTile)

	half := vp.centering()
	yGraph = int(float64(yGraph) - half)
	xGraph = int(float64(xGraph) + half)

	// Canvas y grows downward.
	yGraph = vp.Bounds.Dy() - yGraph
	yGraph += vp.Bounds.Min.Y
	xGraph += vp.Bounds.Min.X

	return image.Pt(xGraph, yGraph), true
}

// MapToWorld returns the tile whose projected centre is nearest to the
// canvas position. It inverts ProjectToMap exactly at tile centres for
// whole-number zoom levels, and to within a tile otherwise.
func MapToWorld(screen image.Point, vp Viewport) (x, y int) {
	if vp.PixelsPerTile <= 0 {
		return vp.Anchor.X, vp.Anchor.Y
	}
	width, height := vp.TilesAcross()
	half := vp.centering()

	xGraph := float64(screen.X - vp.Bounds.Min.X)
	yGraph := float64(vp.Bounds.Dy() - (screen.Y - vp.Bounds.Min.Y))

	xTileOffset := int(math.Round((xGraph - half) / vp.PixelsPerTile))
	yTileOffset := int(math.Round((yGraph + half) / vp.PixelsPerTile))

	x = xTileOffset - width/2 + vp.Anchor.X
	y = yTileOffset - 1 + vp.Anchor.Y - height/2
	return x, y
}

// ClipArea returns the part of the map viewport not covered by a visible
// occluder.
func ClipArea(viewport image.Rectangle, occluders []Occluder) clip.Region {
	area := clip.New(viewport)
	for _, o := range occluders {
		if o.Hidden || o.Bounds.Empty() {
			continue
		}
		area = area.Subtract(o.Bounds)
	}
	return area
}

// MapOverlay draws marked tiles onto the world map.
type MapOverlay struct {
	cfg *config.Overlay
}

// NewMapOverlay creates a world map overlay reading options from cfg.
func NewMapOverlay(cfg *config.Overlay) *MapOverlay {
	if cfg == nil {
		cfg = config.Default()
	}
	return &MapOverlay{cfg: cfg}
}

// MarkerSize returns the edge length of a tile marker at the given zoom.
func (o *MapOverlay) MarkerSize(pixelsPerTile float64) int {
	return max(o.cfg.WorldMapMinWidth, int(pixelsPerTile))
}

// Render builds this frame's map overlay. It returns nil when drawing on the
// map is disabled or the map is not open.
func (o *MapOverlay) Render(host MapHost) *render.Frame {
	if !o.cfg.DrawOnWorldMap {
		return nil
	}
	bounds, ok := host.MapBounds()
	if !ok {
		return nil
	}

	frame := render.NewFrame(render.LayerAboveMap, render.PriorityHighest)
	area := ClipArea(bounds, host.Occluders())
	frame.Clip = area.Rects()
	if area.Empty() {
		return frame
	}

	vp := Viewport{Bounds: bounds, PixelsPerTile: host.MapZoom(), Anchor: host.MapAnchor()}
	index := host.Tiles()
	if index == nil || vp.PixelsPerTile <= 0 {
		return frame
	}

	plane := host.Plane()
	size := o.MarkerSize(vp.PixelsPerTile)
	marker := o.cfg.MarkerColor
	var fill color.Color
	if o.cfg.WorldMapFill {
		fill = marker
	}

	for id := range VisibleRegions(bounds, vp.PixelsPerTile, vp.Anchor) {
		for _, tile := range index.TilesInRegion(id) {
			if tile.Plane != plane {
				continue
			}
			pt, ok := ProjectToMap(tile.World(), vp, host.SurfaceContains)
			if !ok {
				continue
			}
			x, y := pt.X-size/2, pt.Y-size/2
			rect := image.Rect(x, y, x+size, y+size)
			if !rect.Overlaps(bounds) {
				continue
			}
			frame.Add(render.Rect(rect, marker, fill))
		}
	}
	return frame
}
