package tileindex

import (
	"sync"
	"testing"

	"chosenoffset.com/tilemarker/internal/core/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkAndQueryRegion(t *testing.T) {
	idx := New()
	p := geom.WorldPoint{X: 3222, Y: 3218, Plane: 0}

	require.True(t, idx.Mark(p))
	assert.False(t, idx.Mark(p), "second mark is a duplicate")
	assert.Equal(t, 1, idx.Len())
	assert.True(t, idx.Contains(p))

	id, _ := p.Region()
	tiles := idx.TilesInRegion(id)
	require.Len(t, tiles, 1)
	assert.Equal(t, p, tiles[0].World())

	other, _ := geom.RegionOf(0, 0)
	assert.Empty(t, idx.TilesInRegion(other))
}

func TestPlanesAreSeparateTiles(t *testing.T) {
	idx := New()
	ground := geom.WorldPoint{X: 100, Y: 100, Plane: 0}
	upstairs := geom.WorldPoint{X: 100, Y: 100, Plane: 1}

	assert.True(t, idx.Mark(ground))
	assert.True(t, idx.Mark(upstairs))
	assert.Equal(t, 2, idx.Len())

	id, _ := ground.Region()
	tiles := idx.TilesInRegion(id)
	require.Len(t, tiles, 2)
	assert.Equal(t, 0, tiles[0].Plane)
	assert.Equal(t, 1, tiles[1].Plane)
}

func TestMarkRejectsUnaddressableTiles(t *testing.T) {
	idx := New()
	assert.False(t, idx.Mark(geom.WorldPoint{X: -1, Y: 5}))
	assert.False(t, idx.Mark(geom.WorldPoint{X: geom.WorldSize, Y: 5}))
	assert.Equal(t, 0, idx.Len())
}

func TestUnmarkAndToggle(t *testing.T) {
	idx := New()
	p := geom.WorldPoint{X: 10, Y: 20}

	assert.False(t, idx.Unmark(p))
	assert.True(t, idx.Toggle(p))
	assert.True(t, idx.Contains(p))
	assert.False(t, idx.Toggle(p))
	assert.False(t, idx.Contains(p))
	assert.Equal(t, 0, idx.Len())

	id, _ := p.Region()
	assert.Nil(t, idx.TilesInRegion(id))
}

func TestPointsAreOrdered(t *testing.T) {
	idx := New()
	idx.Mark(geom.WorldPoint{X: 70, Y: 1})
	idx.Mark(geom.WorldPoint{X: 2, Y: 3})
	idx.Mark(geom.WorldPoint{X: 1, Y: 3})

	assert.Equal(t, []geom.WorldPoint{
		{X: 1, Y: 3},
		{X: 2, Y: 3},
		{X: 70, Y: 1},
	}, idx.Points())
}

func TestSnapshotIsIsolated(t *testing.T) {
	idx := New()
	p := geom.WorldPoint{X: 5, Y: 5}
	idx.Mark(p)

	snap := idx.Snapshot()
	idx.Unmark(p)
	idx.Mark(geom.WorldPoint{X: 6, Y: 6})

	id, _ := p.Region()
	require.Len(t, snap.TilesInRegion(id), 1)
	assert.Equal(t, p, snap.TilesInRegion(id)[0].World())
	assert.Equal(t, 1, snap.Len())
	assert.Equal(t, []geom.WorldPoint{p}, snap.Points())
}

func TestNilSnapshotIsEmpty(t *testing.T) {
	var snap *Snapshot
	id, _ := geom.RegionOf(3200, 3200)

	assert.Nil(t, snap.TilesInRegion(id))
	assert.Zero(t, snap.Len())
	assert.Empty(t, snap.Points())
}

func TestConcurrentMarkAndRead(t *testing.T) {
	idx := New()
	id, _ := geom.RegionOf(0, 0)

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(2)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 64; i++ {
				idx.Mark(geom.WorldPoint{X: i, Y: w})
			}
		}(w)
		go func() {
			defer wg.Done()
			for i := 0; i < 64; i++ {
				_ = idx.TilesInRegion(id)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 4*64, idx.Len())
	assert.Len(t, idx.TilesInRegion(id), 4*64)
}
