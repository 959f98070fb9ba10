package overlay

import (
	"image/color"

	"chosenoffset.com/tilemarker/internal/config"
	"chosenoffset.com/tilemarker/internal/core/geom"
	"chosenoffset.com/tilemarker/internal/core/walls"
	"chosenoffset.com/tilemarker/internal/render"
)

var (
	// AlertColor marks an exhausted tile budget, unwalkable hovered tiles
	// and walls.
	AlertColor color.Color = color.RGBA{255, 0, 0, 255}
	// CautionColor marks a tile budget at or below the warning limit.
	CautionColor color.Color = color.RGBA{255, 200, 0, 255}
)

const (
	tileStrokeWidth = 2
	wallStrokeWidth = 2
)

// Projector maps world tiles onto the scene for one viewing plane.
type Projector struct {
	Camera Camera
	Plane  int
}

// Project returns the tile's screen polygon. It is false for tiles on another
// plane and for tiles the camera cannot see.
func (p Projector) Project(pt geom.WorldPoint) (geom.ScreenPolygon, bool) {
	if p.Camera == nil || pt.Plane != p.Plane {
		return geom.ScreenPolygon{}, false
	}
	return p.Camera.TilePoly(pt)
}

// SceneOverlay draws marked tiles over the perspective view.
type SceneOverlay struct {
	cfg *config.Overlay
}

// NewSceneOverlay creates a scene overlay reading options from cfg. cfg is
// read on every frame, so changes apply immediately.
func NewSceneOverlay(cfg *config.Overlay) *SceneOverlay {
	if cfg == nil {
		cfg = config.Default()
	}
	return &SceneOverlay{cfg: cfg}
}

// TileColor picks the marker color from the remaining tile budget.
func (o *SceneOverlay) TileColor(remaining int) color.Color {
	switch {
	case remaining <= 0:
		return AlertColor
	case remaining <= o.cfg.WarningLimit:
		return CautionColor
	default:
		return o.cfg.MarkerColor
	}
}

// Render builds this frame's scene overlay.
func (o *SceneOverlay) Render(host SceneHost) *render.Frame {
	frame := render.NewFrame(render.LayerAboveScene, render.PriorityLow)

	projector := Projector{Camera: host.Camera(), Plane: host.Plane()}
	player := host.PlayerLocation()
	clr := o.TileColor(host.RemainingTiles())

	for _, p := range host.MarkedTiles() {
		if p.Plane != projector.Plane {
			continue
		}
		if p.DistanceTo(player) >= o.cfg.MaxDrawDistance {
			continue
		}
		poly, ok := projector.Project(p)
		if !ok {
			continue
		}
		frame.Add(o.tile(poly, clr))
	}

	if o.cfg.ShowHoveredTile {
		if hovered, ok := host.HoveredTile(); ok {
			o.renderInfoTile(frame, projector, host, hovered)
		}
	}

	return frame
}

// renderInfoTile highlights the hovered tile and outlines the sides that
// cannot be walked through.
func (o *SceneOverlay) renderInfoTile(frame *render.Frame, projector Projector, host SceneHost, p geom.WorldPoint) {
	poly, ok := projector.Project(p)
	if !ok {
		return
	}

	clr := AlertColor
	if host.Walkable(p, 0, 0) {
		clr = o.cfg.MarkerColor
	}
	frame.Add(o.tile(poly, clr))

	for _, seg := range walls.Evaluate(poly, walls.Probe(p, host.Walkable)) {
		frame.Add(render.Line(seg.A, seg.B, AlertColor, wallStrokeWidth))
	}
}

func (o *SceneOverlay) tile(poly geom.ScreenPolygon, clr color.Color) render.Command {
	return render.Polygon(poly, clr, withAlpha(clr, uint8(o.cfg.TileFillAlpha)), tileStrokeWidth)
}

func withAlpha(c color.Color, alpha uint8) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = alpha
	return n
}
