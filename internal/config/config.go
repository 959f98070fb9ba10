// Package config provides the user-facing options of the tile overlays.
// Options are loaded from a YAML (or JSON) file layered over the defaults.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Overlay holds every option the scene and world map overlays read.
type Overlay struct {
	// Scene overlay
	MarkerColor     Color `yaml:"marker_color"`      // Fill/outline of marked tiles, e.g. "#ffff00"
	MaxDrawDistance int   `yaml:"max_draw_distance"` // Tiles at or beyond this distance are not drawn
	WarningLimit    int   `yaml:"warning_limit"`     // Remaining tiles at or below this turn the marker orange
	ShowHoveredTile bool  `yaml:"show_hovered_tile"` // Highlight the tile under the pointer with its walls
	TileFillAlpha   int   `yaml:"tile_fill_alpha"`   // Alpha of the polygon fill (0-255)

	// World map overlay
	DrawOnWorldMap   bool `yaml:"draw_on_world_map"`   // Draw marked tiles on the world map
	WorldMapMinWidth int  `yaml:"world_map_min_width"` // Minimum marker square size in pixels
	WorldMapFill     bool `yaml:"world_map_fill"`      // Fill map markers instead of outlining only
}

// Default returns the options used when no file is present.
func Default() *Overlay {
	return &Overlay{
		MarkerColor:      Color{color.RGBA{255, 255, 0, 255}},
		MaxDrawDistance:  50,
		WarningLimit:     20,
		ShowHoveredTile:  true,
		TileFillAlpha:    50,
		DrawOnWorldMap:   true,
		WorldMapMinWidth: 4,
		WorldMapFill:     false,
	}
}

// Load reads options from path. A missing file yields the defaults.
func Load(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read overlay config: %w", err)
	}
	return Parse(data)
}

// Parse decodes options from YAML or JSON bytes over the defaults.
func Parse(data []byte) (*Overlay, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse overlay config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the options to path as YAML.
func (c *Overlay) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode overlay config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write overlay config: %w", err)
	}
	return nil
}

// Validate rejects values no overlay can work with.
func (c *Overlay) Validate() error {
	switch {
	case c.MaxDrawDistance < 0:
		return fmt.Errorf("max_draw_distance must not be negative, got %d", c.MaxDrawDistance)
	case c.WorldMapMinWidth < 0:
		return fmt.Errorf("world_map_min_width must not be negative, got %d", c.WorldMapMinWidth)
	case c.TileFillAlpha < 0 || c.TileFillAlpha > 255:
		return fmt.Errorf("tile_fill_alpha must be within 0-255, got %d", c.TileFillAlpha)
	}
	return nil
}

// rgba lets Color embed color.RGBA without a field named RGBA hiding the
// RGBA method, so Color satisfies color.Color.
type rgba = color.RGBA

// Color is an opaque RGB color written as "#rrggbb" in config files.
type Color struct {
	rgba
}

// ParseColor parses "#rrggbb", "rrggbb" or the short "#rgb" form.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{color.RGBA{r, g, b, 255}}, nil
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (interface{}, error) {
	return c.Hex(), nil
}
