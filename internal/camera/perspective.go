// Package camera implements the host-side projection of world tiles onto the
// canvas for the perspective scene view.
package camera

import (
	"image"
	"math"

	"chosenoffset.com/tilemarker/internal/core/geom"
)

// nearPlane is the minimum depth, in tiles, a point needs to be drawn.
const nearPlane = 0.1

// HeightFunc returns the ground height in tiles at a world position.
type HeightFunc func(x, y float64) float64

// Perspective is a pinhole camera orbiting a focus point. The world uses
// tile units: x grows east, y grows north and height grows up.
type Perspective struct {
	FocusX, FocusY float64 // world position the camera looks at
	Yaw            float64 // rotation around the focus in radians; 0 looks north
	Pitch          float64 // angle below the horizon in radians
	Distance       float64 // tiles between camera and focus
	Scale          float64 // focal length in pixels
	Viewport       image.Rectangle

	// SceneRadius limits projection to tiles within this many tiles of the
	// focus, like a host that only keeps nearby tiles loaded. 0 disables it.
	SceneRadius int

	Height HeightFunc
}

// Project maps a world position and height to the canvas. ok is false when
// the point is behind the near plane.
func (c *Perspective) Project(x, y, h float64) (geom.ScreenPoint, bool) {
	rx, ry := c.rotate(x-c.FocusX, y-c.FocusY)
	sp, cp := math.Sincos(c.Pitch)

	depth := ry*cp - h*sp + c.Distance
	if depth < nearPlane {
		return geom.ScreenPoint{}, false
	}
	up := ry*sp + h*cp

	cx, cy := c.center()
	return geom.ScreenPoint{
		X: cx + c.Scale*rx/depth,
		Y: cy - c.Scale*up/depth,
	}, true
}

// TilePoly returns the projected footprint of tile p in SW, SE, NE, NW
// order. ok is false when the tile is outside the loaded scene, crosses the
// near plane, or misses the viewport entirely.
func (c *Perspective) TilePoly(p geom.WorldPoint) (geom.ScreenPolygon, bool) {
	if c.SceneRadius > 0 {
		fx, fy := int(math.Floor(c.FocusX)), int(math.Floor(c.FocusY))
		if max(abs(p.X-fx), abs(p.Y-fy)) > c.SceneRadius {
			return geom.ScreenPolygon{}, false
		}
	}

	x, y := float64(p.X), float64(p.Y)
	corners := [4][2]float64{
		geom.SouthWest: {x, y},
		geom.SouthEast: {x + 1, y},
		geom.NorthEast: {x + 1, y + 1},
		geom.NorthWest: {x, y + 1},
	}

	var poly geom.ScreenPolygon
	for i, corner := range corners {
		pt, ok := c.Project(corner[0], corner[1], c.heightAt(corner[0], corner[1]))
		if !ok {
			return geom.ScreenPolygon{}, false
		}
		poly[i] = pt
	}

	minX, minY, maxX, maxY := poly.Bounds()
	vp := c.Viewport
	if maxX < float64(vp.Min.X) || minX > float64(vp.Max.X) ||
		maxY < float64(vp.Min.Y) || minY > float64(vp.Max.Y) {
		return geom.ScreenPolygon{}, false
	}
	return poly, true
}

// PickTile returns the ground tile under a canvas position, assuming flat
// ground at height 0. ok is false above the horizon.
func (c *Perspective) PickTile(screen image.Point, plane int) (geom.WorldPoint, bool) {
	cx, cy := c.center()
	a := (float64(screen.X) - cx) / c.Scale
	b := (cy - float64(screen.Y)) / c.Scale

	sp, cp := math.Sincos(c.Pitch)
	denom := sp - b*cp
	if denom <= 0 {
		return geom.WorldPoint{}, false
	}
	ry := b * c.Distance / denom
	depth := ry*cp + c.Distance
	if depth < nearPlane {
		return geom.WorldPoint{}, false
	}
	rx := a * depth

	sinYaw, cosYaw := math.Sincos(c.Yaw)
	dx := cosYaw*rx + sinYaw*ry
	dy := -sinYaw*rx + cosYaw*ry

	return geom.WorldPoint{
		X:     int(math.Floor(c.FocusX + dx)),
		Y:     int(math.Floor(c.FocusY + dy)),
		Plane: plane,
	}, true
}

// rotate turns a focus-relative offset into camera axes: rx to the right,
// ry away from the camera.
func (c *Perspective) rotate(dx, dy float64) (rx, ry float64) {
	s, co := math.Sincos(c.Yaw)
	return dx*co - dy*s, dx*s + dy*co
}

func (c *Perspective) center() (float64, float64) {
	return float64(c.Viewport.Min.X+c.Viewport.Max.X) / 2, float64(c.Viewport.Min.Y+c.Viewport.Max.Y) / 2
}

func (c *Perspective) heightAt(x, y float64) float64 {
	if c.Height == nil {
		return 0
	}
	return c.Height(x, y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
