package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionOfPacking(t *testing.T) {
	cases := []struct {
		x, y int
		want RegionID
	}{
		{0, 0, 0},
		{63, 63, 0},
		{64, 0, 0x0100},
		{0, 64, 0x0001},
		{3222, 3218, RegionID((3222>>6)<<8 | 3218>>6)},
		{WorldSize - 1, WorldSize - 1, 0xFFFF},
	}
	for _, c := range cases {
		got, ok := RegionOf(c.x, c.y)
		require.True(t, ok, "(%d,%d) should be packable", c.x, c.y)
		assert.Equal(t, c.want, got, "region of (%d,%d)", c.x, c.y)
	}
}

func TestRegionOfRejectsOutsideWorld(t *testing.T) {
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {WorldSize, 0}, {0, WorldSize}} {
		_, ok := RegionOf(p[0], p[1])
		assert.False(t, ok, "(%d,%d) should not have a region", p[0], p[1])
	}
}

func TestTilesInSameBlockShareRegion(t *testing.T) {
	base, _ := RegionOf(3200, 3200)
	for dx := 0; dx < RegionSize; dx += 7 {
		for dy := 0; dy < RegionSize; dy += 5 {
			id, ok := RegionOf(3200+dx, 3200+dy)
			require.True(t, ok)
			assert.Equal(t, base, id)
		}
	}

	east, _ := RegionOf(3200+RegionSize, 3200)
	north, _ := RegionOf(3200, 3200+RegionSize)
	assert.NotEqual(t, base, east)
	assert.NotEqual(t, base, north)
	assert.NotEqual(t, east, north)
}

func TestRegionBase(t *testing.T) {
	id, _ := RegionOf(3222, 3218)
	assert.Equal(t, 3222&RegionTruncate, id.BaseX())
	assert.Equal(t, 3218&RegionTruncate, id.BaseY())
	assert.Equal(t, 3222>>6, id.Column())
	assert.Equal(t, 3218>>6, id.Row())
}

func TestLocalTileRoundTrip(t *testing.T) {
	p := WorldPoint{X: 3222, Y: 3218, Plane: 2}
	local, ok := LocalOf(p)
	require.True(t, ok)

	assert.Equal(t, uint8(3222%64), local.X)
	assert.Equal(t, uint8(3218%64), local.Y)
	assert.Equal(t, 2, local.Plane)
	assert.Equal(t, p, local.World())

	_, ok = LocalOf(WorldPoint{X: -5, Y: 10})
	assert.False(t, ok)
}

func TestDistanceTo(t *testing.T) {
	a := WorldPoint{X: 100, Y: 100}
	assert.Equal(t, 5, a.DistanceTo(WorldPoint{X: 100, Y: 95}))
	assert.Equal(t, 7, a.DistanceTo(WorldPoint{X: 93, Y: 103}))
	assert.Equal(t, 0, a.DistanceTo(a))
	assert.Equal(t, math.MaxInt, a.DistanceTo(WorldPoint{X: 100, Y: 100, Plane: 1}))
}

func TestPolygonBounds(t *testing.T) {
	poly := ScreenPolygon{{10, 40}, {30, 42}, {28, 20}, {12, 18}}
	minX, minY, maxX, maxY := poly.Bounds()
	assert.Equal(t, 10.0, minX)
	assert.Equal(t, 18.0, minY)
	assert.Equal(t, 30.0, maxX)
	assert.Equal(t, 42.0, maxY)
	assert.Len(t, poly.Points(), 4)
}

func TestDirectionDelta(t *testing.T) {
	want := map[Direction][2]int{
		North: {0, 1},
		South: {0, -1},
		East:  {1, 0},
		West:  {-1, 0},
	}
	for d, delta := range want {
		dx, dy := d.Delta()
		assert.Equal(t, delta, [2]int{dx, dy}, d.String())
	}
}
