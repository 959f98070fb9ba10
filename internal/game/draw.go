package game

import (
	"fmt"
	"image"
	"image/color"

	"chosenoffset.com/tilemarker/internal/overlay"
	"chosenoffset.com/tilemarker/internal/render"
)

const (
	// groundRadius is how many tiles around the player the scene ground covers.
	groundRadius = 24

	hudTextMargin = 10
	hudLineHeight = 16
)

var (
	skyColor     = color.RGBA{24, 28, 40, 255}
	grassColor   = color.RGBA{58, 92, 48, 255}
	wallColor    = color.RGBA{110, 100, 90, 255}
	waterColor   = color.RGBA{36, 60, 110, 255}
	gridColor    = color.RGBA{0, 0, 0, 60}
	playerColor  = color.RGBA{255, 255, 255, 255}
	mapColor     = color.RGBA{40, 50, 38, 255}
	mapWallColor = color.RGBA{150, 140, 120, 255}
	panelColor   = color.RGBA{20, 20, 24, 235}
	panelBorder  = color.RGBA{200, 180, 120, 255}
)

// Draw renders the scene, the overlays and, when open, the world map.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(skyColor)
	g.drawGround(screen)
	render.DrawAll(g.Renderer, screen, g.SceneOverlay.Render(sceneHost{g}), g.playerFrame())

	if g.Map.Open {
		g.drawMap(screen)
		render.Draw(g.Renderer, screen, g.MapOverlay.Render(mapHost{g}))
		g.drawOverview(screen)
	}

	g.drawHUD(screen)
}

func (g *Game) drawGround(screen render.Image) {
	for dy := -groundRadius; dy <= groundRadius; dy++ {
		for dx := -groundRadius; dx <= groundRadius; dx++ {
			p := g.Player.Pos.Offset(dx, dy)
			poly, ok := g.Camera.TilePoly(p)
			if !ok {
				continue
			}

			var clr color.Color = grassColor
			switch {
			case !g.World.SurfaceContains(p.X, p.Y):
				clr = waterColor
			case g.World.Blocked(p):
				clr = wallColor
			}
			points := poly.Points()
			g.Renderer.FillPolygon(screen, points, clr)
			g.Renderer.StrokePolygon(screen, points, 1, gridColor)
		}
	}
}

// playerFrame outlines the player's tile between the marked tiles and the
// hovered tile highlight.
func (g *Game) playerFrame() *render.Frame {
	frame := render.NewFrame(render.LayerAboveScene, render.PriorityMedium)
	if poly, ok := g.Camera.TilePoly(g.Player.Pos); ok {
		frame.Add(render.Polygon(poly, playerColor, nil, 2))
	}
	return frame
}

func (g *Game) drawMap(screen render.Image) {
	vp := g.MapViewport()
	g.drawTerrain(screen.SubImage(vp.Bounds), vp, mapColor)
}

// drawOverview draws the overview panel: the area around the player at one
// pixel per tile.
func (g *Game) drawOverview(screen render.Image) {
	bounds := g.Map.Overview.Bounds
	vp := overlay.Viewport{
		Bounds:        bounds,
		PixelsPerTile: 1,
		Anchor:        image.Pt(g.Player.Pos.X, g.Player.Pos.Y),
	}
	g.drawTerrain(screen.SubImage(bounds), vp, panelColor)
	g.Renderer.StrokeRect(screen, bounds, 2, panelBorder)
	g.Renderer.DrawText(screen, "Overview", bounds.Min.X+6, bounds.Min.Y+4)
}

// drawTerrain draws the map background, walls and player into dst, which is
// expected to be clipped to vp.Bounds.
func (g *Game) drawTerrain(dst render.Image, vp overlay.Viewport, bg color.Color) {
	g.Renderer.FillRect(dst, vp.Bounds, bg)

	size := max(1, int(vp.PixelsPerTile))
	for _, p := range g.World.BlockedTiles() {
		if p.Plane != g.Player.Pos.Plane {
			continue
		}
		pt, ok := overlay.ProjectToMap(p, vp, g.World.SurfaceContains)
		if !ok {
			continue
		}
		r := image.Rect(pt.X-size/2, pt.Y-size/2, pt.X-size/2+size, pt.Y-size/2+size)
		if r.Overlaps(vp.Bounds) {
			g.Renderer.FillRect(dst, r, mapWallColor)
		}
	}

	if pt, ok := overlay.ProjectToMap(g.Player.Pos, vp, nil); ok {
		g.Renderer.FillRect(dst, image.Rect(pt.X-2, pt.Y-2, pt.X+2, pt.Y+2), playerColor)
	}
}

func (g *Game) drawHUD(screen render.Image) {
	lines := []string{
		fmt.Sprintf("Tiles: %d marked, %d remaining", g.Tiles.Len(), g.RemainingTiles()),
		fmt.Sprintf("Position: %v", g.Player.Pos),
		"Click: mark/unmark  WASD: move  Q/E: rotate  M: map  PgUp/PgDn: zoom  H: hover  F: fill",
	}
	if g.HasHovered {
		lines = append(lines, fmt.Sprintf("Hovered: %v", g.Hovered))
	}
	y := hudTextMargin
	for _, line := range lines {
		g.Renderer.DrawText(screen, line, hudTextMargin, y)
		y += hudLineHeight
	}

	y = g.ScreenHeight - hudTextMargin - hudLineHeight*len(g.Messages)
	for _, msg := range g.Messages {
		g.Renderer.DrawText(screen, msg.Text, hudTextMargin, y)
		y += hudLineHeight
	}
}
