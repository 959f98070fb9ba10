// Package tileindex stores marked tiles bucketed by region so overlays can
// fetch only the regions they can see.
package tileindex

import (
	"sort"
	"sync"

	"chosenoffset.com/tilemarker/internal/core/geom"
)

// localKey is a tile's position inside its region bucket.
type localKey struct {
	x, y  uint8
	plane int
}

// Index maps region ids to the set of marked tiles in each region. It is
// safe for concurrent use: marking may happen while a render reads it.
type Index struct {
	mu      sync.RWMutex
	regions map[geom.RegionID]map[localKey]struct{}
	count   int
}

// New creates an empty index.
func New() *Index {
	return &Index{regions: make(map[geom.RegionID]map[localKey]struct{})}
}

// Mark adds p. It reports false if p was already marked or lies outside the
// region-addressable world.
func (idx *Index) Mark(p geom.WorldPoint) bool {
	local, ok := geom.LocalOf(p)
	if !ok {
		return false
	}
	key := localKey{local.X, local.Y, local.Plane}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	bucket, exists := idx.regions[local.Region]
	if !exists {
		bucket = make(map[localKey]struct{})
		idx.regions[local.Region] = bucket
	}
	if _, dup := bucket[key]; dup {
		return false
	}
	bucket[key] = struct{}{}
	idx.count++
	return true
}

// Unmark removes p and reports whether it was marked.
func (idx *Index) Unmark(p geom.WorldPoint) bool {
	local, ok := geom.LocalOf(p)
	if !ok {
		return false
	}
	key := localKey{local.X, local.Y, local.Plane}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	bucket, exists := idx.regions[local.Region]
	if !exists {
		return false
	}
	if _, marked := bucket[key]; !marked {
		return false
	}
	delete(bucket, key)
	if len(bucket) == 0 {
		delete(idx.regions, local.Region)
	}
	idx.count--
	return true
}

// Toggle flips p and reports whether it is marked afterwards.
func (idx *Index) Toggle(p geom.WorldPoint) bool {
	if idx.Unmark(p) {
		return false
	}
	return idx.Mark(p)
}

// Contains reports whether p is marked.
func (idx *Index) Contains(p geom.WorldPoint) bool {
	local, ok := geom.LocalOf(p)
	if !ok {
		return false
	}
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	_, marked := idx.regions[local.Region][localKey{local.X, local.Y, local.Plane}]
	return marked
}

// Len returns the number of marked tiles across all planes.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.count
}

// TilesInRegion returns a copy of the tiles marked in region id, sorted by
// plane, then y, then x.
func (idx *Index) TilesInRegion(id geom.RegionID) []geom.LocalTile {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return collect(id, idx.regions[id])
}

// Points returns every marked tile as a world point.
func (idx *Index) Points() []geom.WorldPoint {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	points := make([]geom.WorldPoint, 0, idx.count)
	for _, id := range sortedIDs(idx.regions) {
		for _, t := range collect(id, idx.regions[id]) {
			points = append(points, t.World())
		}
	}
	return points
}

// Snapshot returns an immutable copy for use over a whole render pass.
func (idx *Index) Snapshot() *Snapshot {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	snap := &Snapshot{regions: make(map[geom.RegionID][]geom.LocalTile, len(idx.regions))}
	for id, bucket := range idx.regions {
		snap.regions[id] = collect(id, bucket)
		snap.count += len(bucket)
	}
	return snap
}

// Snapshot is a read-only view of an Index at one point in time. A nil
// *Snapshot reads as empty.
type Snapshot struct {
	regions map[geom.RegionID][]geom.LocalTile
	count   int
}

// TilesInRegion returns the tiles marked in region id. The slice must not
// be modified.
func (s *Snapshot) TilesInRegion(id geom.RegionID) []geom.LocalTile {
	if s == nil {
		return nil
	}
	return s.regions[id]
}

// Len returns the number of tiles in the snapshot.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return s.count
}

// Points returns every tile in the snapshot as a world point.
func (s *Snapshot) Points() []geom.WorldPoint {
	if s == nil {
		return nil
	}
	points := make([]geom.WorldPoint, 0, s.count)
	ids := make([]geom.RegionID, 0, len(s.regions))
	for id := range s.regions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		for _, t := range s.regions[id] {
			points = append(points, t.World())
		}
	}
	return points
}

func collect(id geom.RegionID, bucket map[localKey]struct{}) []geom.LocalTile {
	if len(bucket) == 0 {
		return nil
	}
	tiles := make([]geom.LocalTile, 0, len(bucket))
	for k := range bucket {
		tiles = append(tiles, geom.LocalTile{Region: id, X: k.x, Y: k.y, Plane: k.plane})
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

func sortedIDs(regions map[geom.RegionID]map[localKey]struct{}) []geom.RegionID {
	ids := make([]geom.RegionID, 0, len(regions))
	for id := range regions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
