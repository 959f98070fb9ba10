// Package world generates the terrain the demo host walks around in: a seeded
// scatter of walled buildings around a spawn tile on a bounded surface.
package world

import (
	"image"
	"math/rand"
	"sort"

	"chosenoffset.com/tilemarker/internal/core/geom"
)

// GeneratorConfig controls building placement.
type GeneratorConfig struct {
	Seed      int64
	Spawn     geom.WorldPoint
	Radius    int             // buildings are placed within this many tiles of Spawn
	Buildings int             // number of buildings to attempt
	Surface   image.Rectangle // walkable extent of the world, in tiles
}

// DefaultGeneratorConfig returns the layout used by the demo.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Seed:      9,
		Spawn:     geom.WorldPoint{X: 3222, Y: 3218},
		Radius:    40,
		Buildings: 14,
		Surface:   image.Rect(1024, 2496, 3904, 4160),
	}
}

// Building is a walled rectangle with a single door. Bounds are in tiles,
// Max exclusive.
type Building struct {
	Bounds image.Rectangle
	Door   geom.Direction
}

// DoorTile returns the gap left in the wall on the door side.
func (b Building) DoorTile(plane int) geom.WorldPoint {
	r := b.Bounds
	midX, midY := r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2
	switch b.Door {
	case geom.North:
		return geom.WorldPoint{X: midX, Y: r.Max.Y - 1, Plane: plane}
	case geom.South:
		return geom.WorldPoint{X: midX, Y: r.Min.Y, Plane: plane}
	case geom.East:
		return geom.WorldPoint{X: r.Max.X - 1, Y: midY, Plane: plane}
	default:
		return geom.WorldPoint{X: r.Min.X, Y: midY, Plane: plane}
	}
}

// World is a walkability grid. Tiles are walkable unless blocked or off the
// surface.
type World struct {
	Spawn     geom.WorldPoint
	Surface   image.Rectangle
	Buildings []Building

	blocked map[geom.WorldPoint]struct{}
}

// New creates an empty world.
func New(spawn geom.WorldPoint, surface image.Rectangle) *World {
	return &World{
		Spawn:   spawn,
		Surface: surface,
		blocked: make(map[geom.WorldPoint]struct{}),
	}
}

// Generate places up to cfg.Buildings non-overlapping buildings around the
// spawn tile. The same config always yields the same world.
func Generate(cfg GeneratorConfig) *World {
	w := New(cfg.Spawn, cfg.Surface)
	rng := rand.New(rand.NewSource(cfg.Seed))

	keepClear := image.Rect(cfg.Spawn.X, cfg.Spawn.Y, cfg.Spawn.X+1, cfg.Spawn.Y+1).Inset(-3)
	attempts := cfg.Buildings * 10
	for i := 0; i < attempts && len(w.Buildings) < cfg.Buildings; i++ {
		width, height := 4+rng.Intn(6), 4+rng.Intn(6)
		x := cfg.Spawn.X - cfg.Radius + rng.Intn(2*cfg.Radius)
		y := cfg.Spawn.Y - cfg.Radius + rng.Intn(2*cfg.Radius)
		b := Building{
			Bounds: image.Rect(x, y, x+width, y+height),
			Door:   geom.Directions[rng.Intn(len(geom.Directions))],
		}
		if !b.Bounds.In(cfg.Surface) || b.Bounds.Overlaps(keepClear) || w.crowded(b.Bounds) {
			continue
		}
		w.AddBuilding(b)
	}
	return w
}

// crowded reports whether r would touch an existing building, leaving at
// least one free tile between walls.
func (w *World) crowded(r image.Rectangle) bool {
	for _, b := range w.Buildings {
		if b.Bounds.Inset(-2).Overlaps(r) {
			return true
		}
	}
	return false
}

// AddBuilding blocks the perimeter of b except its door tile.
func (w *World) AddBuilding(b Building) {
	plane := w.Spawn.Plane
	door := b.DoorTile(plane)
	r := b.Bounds
	for x := r.Min.X; x < r.Max.X; x++ {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			edge := x == r.Min.X || x == r.Max.X-1 || y == r.Min.Y || y == r.Max.Y-1
			p := geom.WorldPoint{X: x, Y: y, Plane: plane}
			if edge && p != door {
				w.Block(p)
			}
		}
	}
	w.Buildings = append(w.Buildings, b)
}

// Block makes p unwalkable.
func (w *World) Block(p geom.WorldPoint) {
	w.blocked[p] = struct{}{}
}

// Blocked reports whether p has been blocked.
func (w *World) Blocked(p geom.WorldPoint) bool {
	_, ok := w.blocked[p]
	return ok
}

// SurfaceContains reports whether the tile lies on the world surface.
func (w *World) SurfaceContains(x, y int) bool {
	return image.Pt(x, y).In(w.Surface)
}

// Walkable reports whether the tile at p offset by (dx, dy) can be stood on.
func (w *World) Walkable(p geom.WorldPoint, dx, dy int) bool {
	target := p.Offset(dx, dy)
	return w.SurfaceContains(target.X, target.Y) && !w.Blocked(target)
}

// BlockedTiles returns every blocked tile ordered by plane, y, then x.
func (w *World) BlockedTiles() []geom.WorldPoint {
	tiles := make([]geom.WorldPoint, 0, len(w.blocked))
	for p := range w.blocked {
		tiles = append(tiles, p)
	}
	sort.Slice(tiles, func(i, j int) bool {
		a, b := tiles[i], tiles[j]
		if a.Plane != b.Plane {
			return a.Plane < b.Plane
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return tiles
}
