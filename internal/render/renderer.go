package render

import (
	"image"
	"image/color"

	"chosenoffset.com/tilemarker/internal/core/geom"
)

// Renderer is the drawing backend overlays are executed against. It
// abstracts the underlying graphics engine so overlay geometry can be tested
// and reused without it.
type Renderer interface {
	// Shape operations
	FillPolygon(dst Image, points []geom.ScreenPoint, clr color.Color)
	StrokePolygon(dst Image, points []geom.ScreenPoint, strokeWidth float32, clr color.Color)
	StrokeLine(dst Image, a, b geom.ScreenPoint, strokeWidth float32, clr color.Color)
	FillRect(dst Image, r image.Rectangle, clr color.Color)
	StrokeRect(dst Image, r image.Rectangle, strokeWidth float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int)
}

// Image represents a renderable surface. Sub-images share the coordinate
// space of their parent, so a sub-image acts as a clip rectangle.
type Image interface {
	Bounds() image.Rectangle

	// SubImage returns the part of the image inside r.
	SubImage(r image.Rectangle) Image

	Fill(clr color.Color)
}

// InputManager handles input from the user (keyboard, mouse, etc).
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
	GetCursorPosition() (x, y int)
	IsMouseButtonJustPressed(button MouseButton) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the host reacts to
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyM // World map toggle
	KeyH // Hovered tile toggle
	KeyF // Map fill toggle
	KeyQ // Rotate camera left
	KeyE // Rotate camera right
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyEscape
)

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
