// Package game is the demo host for the tile overlays. It owns a generated
// world, a perspective camera, a world map window and the marked tile index,
// and feeds their state to the overlays every frame.
package game

import (
	"fmt"
	"image"
	"log"
	"math"

	"chosenoffset.com/tilemarker/internal/camera"
	"chosenoffset.com/tilemarker/internal/config"
	"chosenoffset.com/tilemarker/internal/core/geom"
	"chosenoffset.com/tilemarker/internal/overlay"
	"chosenoffset.com/tilemarker/internal/render"
	"chosenoffset.com/tilemarker/internal/tileindex"
	"chosenoffset.com/tilemarker/internal/world"
)

const (
	// rotateSpeed is the camera yaw change per tick while Q or E is held.
	rotateSpeed = 0.04

	minMapZoom = 1.0
	maxMapZoom = 16.0

	mapMargin      = 40
	overviewWidth  = 200
	overviewHeight = 150
)

// Game holds all host state and logic.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Renderer     render.Renderer
	InputMgr     render.InputManager

	Config     *config.Overlay
	World      *world.World
	Tiles      *tileindex.Index
	TileBudget int

	Player Player
	Camera *camera.Perspective
	Map    MapView

	SceneOverlay *overlay.SceneOverlay
	MapOverlay   *overlay.MapOverlay

	// Tile under the cursor in the scene view
	Hovered    geom.WorldPoint
	HasHovered bool

	Messages []Message
}

// New creates a host with the player standing on the world's spawn tile.
func New(cfg *config.Overlay, w *world.World, budget int, r render.Renderer, input render.InputManager, width, height int) *Game {
	if cfg == nil {
		cfg = config.Default()
	}
	g := &Game{
		ScreenWidth:  width,
		ScreenHeight: height,
		Renderer:     r,
		InputMgr:     input,
		Config:       cfg,
		World:        w,
		Tiles:        tileindex.New(),
		TileBudget:   budget,
		Player:       Player{Pos: w.Spawn},
		Camera: &camera.Perspective{
			Pitch:       0.65,
			Distance:    14,
			Scale:       700,
			SceneRadius: 32,
		},
		Map:          MapView{PixelsPerTile: 4},
		SceneOverlay: overlay.NewSceneOverlay(cfg),
		MapOverlay:   overlay.NewMapOverlay(cfg),
	}
	g.layout()
	g.UpdateCamera()
	return g
}

// Update handles input and advances host state by one tick.
func (g *Game) Update() error {
	// Delta time for timers (assuming 60 FPS)
	dt := 1.0 / 60.0
	g.updateMessages(dt)

	g.handleToggles()
	if !g.Map.Open {
		g.handleMovement()
		g.handleRotation()
	} else {
		g.handleMapZoom()
	}
	g.UpdateCamera()
	g.updateHover()

	if g.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		g.clickTile()
	}
	return nil
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

// RemainingTiles is the tile budget left after the tiles already marked. It
// goes negative once the budget is overspent.
func (g *Game) RemainingTiles() int {
	return g.TileBudget - g.Tiles.Len()
}

// MapViewport returns the world map camera for this frame.
func (g *Game) MapViewport() overlay.Viewport {
	return overlay.Viewport{
		Bounds:        g.mapBounds(),
		PixelsPerTile: g.Map.PixelsPerTile,
		Anchor:        image.Pt(g.Player.Pos.X, g.Player.Pos.Y),
	}
}

// UpdateCamera keeps the camera centred on the player's tile.
func (g *Game) UpdateCamera() {
	g.Camera.FocusX = float64(g.Player.Pos.X) + 0.5
	g.Camera.FocusY = float64(g.Player.Pos.Y) + 0.5
	g.Camera.Viewport = image.Rect(0, 0, g.ScreenWidth, g.ScreenHeight)
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: 3.0,
		MaxTime:  3.0,
	})
	log.Printf("Message: %s", text)
}

func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

func (g *Game) handleToggles() {
	if g.InputMgr.IsKeyJustPressed(render.KeyM) {
		g.Map.Open = !g.Map.Open
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		g.Map.Open = false
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyH) {
		g.Config.ShowHoveredTile = !g.Config.ShowHoveredTile
		g.ShowMessage(fmt.Sprintf("Hovered tile %s", onOff(g.Config.ShowHoveredTile)))
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyF) {
		g.Config.WorldMapFill = !g.Config.WorldMapFill
		g.ShowMessage(fmt.Sprintf("Map marker fill %s", onOff(g.Config.WorldMapFill)))
	}
}

func (g *Game) handleMovement() {
	var dx, dy int
	switch {
	case g.justPressed(render.KeyW, render.KeyUp):
		dy = 1
	case g.justPressed(render.KeyS, render.KeyDown):
		dy = -1
	case g.justPressed(render.KeyA, render.KeyLeft):
		dx = -1
	case g.justPressed(render.KeyD, render.KeyRight):
		dx = 1
	default:
		return
	}
	if g.World.Walkable(g.Player.Pos, dx, dy) {
		g.Player.Pos = g.Player.Pos.Offset(dx, dy)
	}
}

func (g *Game) handleRotation() {
	if g.InputMgr.IsKeyPressed(render.KeyQ) {
		g.Camera.Yaw -= rotateSpeed
	}
	if g.InputMgr.IsKeyPressed(render.KeyE) {
		g.Camera.Yaw += rotateSpeed
	}
	g.Camera.Yaw = math.Mod(g.Camera.Yaw, 2*math.Pi)
}

func (g *Game) handleMapZoom() {
	if g.InputMgr.IsKeyJustPressed(render.KeyPageUp) {
		g.Map.PixelsPerTile = min(g.Map.PixelsPerTile*2, maxMapZoom)
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyPageDown) {
		g.Map.PixelsPerTile = max(g.Map.PixelsPerTile/2, minMapZoom)
	}
}

// updateHover picks the scene tile under the cursor. Nothing is hovered while
// the map covers the scene.
func (g *Game) updateHover() {
	g.HasHovered = false
	if g.Map.Open {
		return
	}
	x, y := g.InputMgr.GetCursorPosition()
	g.Hovered, g.HasHovered = g.Camera.PickTile(image.Pt(x, y), g.Player.Pos.Plane)
}

// clickTile toggles the tile under the cursor, on the map when it is open
// and in the scene otherwise.
func (g *Game) clickTile() {
	target, ok := g.cursorTile()
	if !ok {
		return
	}
	switch {
	case g.Tiles.Unmark(target):
		g.ShowMessage(fmt.Sprintf("Unmarked %v, %d tiles left", target, g.RemainingTiles()))
	case g.Tiles.Mark(target):
		g.ShowMessage(fmt.Sprintf("Marked %v, %d tiles left", target, g.RemainingTiles()))
	default:
		g.ShowMessage(fmt.Sprintf("Cannot mark %v", target))
	}
}

func (g *Game) cursorTile() (geom.WorldPoint, bool) {
	if !g.Map.Open {
		return g.Hovered, g.HasHovered
	}
	x, y := g.InputMgr.GetCursorPosition()
	cursor := image.Pt(x, y)
	vp := g.MapViewport()
	if !cursor.In(vp.Bounds) || cursor.In(g.Map.Overview.Bounds) {
		return geom.WorldPoint{}, false
	}
	tx, ty := overlay.MapToWorld(cursor, vp)
	return geom.WorldPoint{X: tx, Y: ty, Plane: g.Player.Pos.Plane}, true
}

// layout places the map window and its overview panel on the screen.
func (g *Game) layout() {
	b := g.mapBounds()
	g.Map.Overview = overlay.Occluder{
		Bounds: image.Rect(b.Max.X-overviewWidth, b.Max.Y-overviewHeight, b.Max.X, b.Max.Y),
	}
}

func (g *Game) mapBounds() image.Rectangle {
	return image.Rect(0, 0, g.ScreenWidth, g.ScreenHeight).Inset(mapMargin)
}

func (g *Game) justPressed(keys ...render.Key) bool {
	for _, k := range keys {
		if g.InputMgr.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
