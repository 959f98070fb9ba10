package game

import (
	"chosenoffset.com/tilemarker/internal/core/geom"
	"chosenoffset.com/tilemarker/internal/overlay"
)

// Player represents the player's position in the world. It moves one tile
// per key press.
type Player struct {
	Pos geom.WorldPoint
}

// MapView is the state of the world map window.
type MapView struct {
	Open          bool
	PixelsPerTile float64
	Overview      overlay.Occluder // overview panel drawn over the map's corner
}

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}
