package overlay

import (
	"image/color"
	"testing"

	"chosenoffset.com/tilemarker/internal/config"
	"chosenoffset.com/tilemarker/internal/core/geom"
	"chosenoffset.com/tilemarker/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridCamera projects every tile to a 10px square; y is flipped so north is
// up on the canvas.
type gridCamera struct {
	hidden map[geom.WorldPoint]bool
}

func (c gridCamera) TilePoly(p geom.WorldPoint) (geom.ScreenPolygon, bool) {
	if c.hidden[p] {
		return geom.ScreenPolygon{}, false
	}
	x, y := float64(p.X*10), float64(-p.Y*10)
	return geom.ScreenPolygon{
		{X: x, Y: y + 10},
		{X: x + 10, Y: y + 10},
		{X: x + 10, Y: y},
		{X: x, Y: y},
	}, true
}

type sceneHost struct {
	plane     int
	player    geom.WorldPoint
	camera    Camera
	hovered   *geom.WorldPoint
	blocked   map[geom.WorldPoint]bool
	remaining int
	marked    []geom.WorldPoint
}

func (h *sceneHost) Plane() int                      { return h.plane }
func (h *sceneHost) PlayerLocation() geom.WorldPoint { return h.player }
func (h *sceneHost) Camera() Camera                  { return h.camera }
func (h *sceneHost) RemainingTiles() int             { return h.remaining }
func (h *sceneHost) MarkedTiles() []geom.WorldPoint  { return h.marked }

func (h *sceneHost) HoveredTile() (geom.WorldPoint, bool) {
	if h.hovered == nil {
		return geom.WorldPoint{}, false
	}
	return *h.hovered, true
}

func (h *sceneHost) Walkable(p geom.WorldPoint, dx, dy int) bool {
	return !h.blocked[p.Offset(dx, dy)]
}

func newSceneHost(marked ...geom.WorldPoint) *sceneHost {
	return &sceneHost{
		player:    geom.WorldPoint{X: 100, Y: 100},
		camera:    gridCamera{},
		remaining: 100,
		marked:    marked,
	}
}

func sceneConfig() *config.Overlay {
	cfg := config.Default()
	cfg.MaxDrawDistance = 10
	cfg.WarningLimit = 20
	cfg.ShowHoveredTile = false
	return cfg
}

func TestSceneDrawDistance(t *testing.T) {
	tile := geom.WorldPoint{X: 100, Y: 100, Plane: 0}
	host := newSceneHost(tile)
	overlay := NewSceneOverlay(sceneConfig())

	host.player = geom.WorldPoint{X: 100, Y: 95, Plane: 0}
	assert.Equal(t, 1, overlay.Render(host).Len(), "distance 5 is drawn")

	host.player = geom.WorldPoint{X: 100, Y: 80, Plane: 0}
	assert.Equal(t, 0, overlay.Render(host).Len(), "distance 20 is skipped")

	host.player = geom.WorldPoint{X: 110, Y: 100, Plane: 0}
	assert.Equal(t, 0, overlay.Render(host).Len(), "distance equal to the maximum is skipped")

	host.player = geom.WorldPoint{X: 109, Y: 100, Plane: 0}
	assert.Equal(t, 1, overlay.Render(host).Len())
}

func TestSceneSkipsOtherPlanesAndHiddenTiles(t *testing.T) {
	upstairs := geom.WorldPoint{X: 101, Y: 100, Plane: 1}
	hidden := geom.WorldPoint{X: 102, Y: 100}
	visible := geom.WorldPoint{X: 103, Y: 100}

	host := newSceneHost(upstairs, hidden, visible)
	host.camera = gridCamera{hidden: map[geom.WorldPoint]bool{hidden: true}}

	frame := NewSceneOverlay(sceneConfig()).Render(host)
	require.Equal(t, 1, frame.Len())

	want, _ := gridCamera{}.TilePoly(visible)
	assert.Equal(t, want.Points(), frame.Commands[0].Points)
	assert.Equal(t, render.LayerAboveScene, frame.Layer)
	assert.Equal(t, render.PriorityLow, frame.Priority)
	assert.False(t, frame.Clipped())
}

func TestSceneWithoutCamera(t *testing.T) {
	host := newSceneHost(geom.WorldPoint{X: 100, Y: 100})
	host.camera = nil
	assert.Equal(t, 0, NewSceneOverlay(sceneConfig()).Render(host).Len())
}

func TestTileColorThresholds(t *testing.T) {
	cfg := sceneConfig()
	overlay := NewSceneOverlay(cfg)

	assert.Equal(t, AlertColor, overlay.TileColor(-4))
	assert.Equal(t, AlertColor, overlay.TileColor(0))
	assert.Equal(t, CautionColor, overlay.TileColor(1))
	assert.Equal(t, CautionColor, overlay.TileColor(cfg.WarningLimit))
	assert.Equal(t, color.Color(cfg.MarkerColor), overlay.TileColor(cfg.WarningLimit+1))
}

func TestSceneTileStyle(t *testing.T) {
	host := newSceneHost(geom.WorldPoint{X: 100, Y: 101})
	cfg := sceneConfig()
	overlay := NewSceneOverlay(cfg)

	host.remaining = 0
	cmd := overlay.Render(host).Commands[0]
	assert.Equal(t, render.KindPolygon, cmd.Kind)
	assert.Equal(t, AlertColor, cmd.Stroke)
	assert.Equal(t, color.NRGBA{255, 0, 0, 50}, cmd.Fill)

	host.remaining = cfg.WarningLimit
	assert.Equal(t, CautionColor, overlay.Render(host).Commands[0].Stroke)

	host.remaining = cfg.WarningLimit + 1
	cmd = overlay.Render(host).Commands[0]
	assert.Equal(t, color.Color(cfg.MarkerColor), cmd.Stroke)
	assert.Equal(t, color.NRGBA{255, 255, 0, 50}, cmd.Fill)
}

func TestHoveredTileWalls(t *testing.T) {
	hovered := geom.WorldPoint{X: 50, Y: 50}
	host := newSceneHost()
	host.hovered = &hovered
	host.blocked = map[geom.WorldPoint]bool{
		hovered.Offset(0, 1):  true, // north
		hovered.Offset(-1, 0): true, // west
	}
	cfg := sceneConfig()
	cfg.ShowHoveredTile = true

	frame := NewSceneOverlay(cfg).Render(host)
	require.Equal(t, 3, frame.Len())

	poly, _ := gridCamera{}.TilePoly(hovered)
	assert.Equal(t, render.KindPolygon, frame.Commands[0].Kind)
	assert.Equal(t, color.Color(cfg.MarkerColor), frame.Commands[0].Stroke)

	north := frame.Commands[1]
	assert.Equal(t, render.KindLine, north.Kind)
	assert.Equal(t, []geom.ScreenPoint{poly[geom.NorthWest], poly[geom.NorthEast]}, north.Points)
	assert.Equal(t, AlertColor, north.Stroke)

	west := frame.Commands[2]
	assert.Equal(t, []geom.ScreenPoint{poly[geom.SouthWest], poly[geom.NorthWest]}, west.Points)
}

func TestHoveredTileUnwalkable(t *testing.T) {
	hovered := geom.WorldPoint{X: 50, Y: 50}
	host := newSceneHost()
	host.hovered = &hovered
	host.blocked = map[geom.WorldPoint]bool{hovered: true}
	cfg := sceneConfig()
	cfg.ShowHoveredTile = true

	frame := NewSceneOverlay(cfg).Render(host)
	require.Equal(t, 1, frame.Len())
	assert.Equal(t, AlertColor, frame.Commands[0].Stroke)
}

func TestHoveredTileDisabled(t *testing.T) {
	hovered := geom.WorldPoint{X: 50, Y: 50}
	host := newSceneHost()
	host.hovered = &hovered

	assert.Equal(t, 0, NewSceneOverlay(sceneConfig()).Render(host).Len())
}

func TestProjector(t *testing.T) {
	p := Projector{Camera: gridCamera{}, Plane: 1}

	_, ok := p.Project(geom.WorldPoint{X: 1, Y: 1, Plane: 0})
	assert.False(t, ok)

	poly, ok := p.Project(geom.WorldPoint{X: 1, Y: 1, Plane: 1})
	require.True(t, ok)
	assert.Equal(t, geom.ScreenPoint{X: 10, Y: 0}, poly[geom.SouthWest])

	_, ok = Projector{Plane: 1}.Project(geom.WorldPoint{X: 1, Y: 1, Plane: 1})
	assert.False(t, ok)
}

func TestWithAlpha(t *testing.T) {
	marker, err := config.ParseColor("#f80")
	require.NoError(t, err)

	assert.Equal(t, color.NRGBA{255, 136, 0, 50}, withAlpha(marker, 50))
	assert.Equal(t, color.NRGBA{255, 0, 0, 0}, withAlpha(AlertColor, 0))
}
