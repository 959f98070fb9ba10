// Package render describes overlay output as backend-independent draw
// commands and executes them against a Renderer.
package render

import (
	"image"
	"image/color"
	"sort"

	"chosenoffset.com/tilemarker/internal/core/geom"
)

// Layer is the host render pass a frame belongs to.
type Layer int

const (
	LayerAboveScene Layer = iota
	LayerAboveMap
)

// Priority orders frames within a layer; higher draws later.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityHighest
)

// Kind selects the primitive a Command draws.
type Kind int

const (
	KindPolygon Kind = iota
	KindLine
	KindRect
)

// Command is a single drawing primitive. A nil Fill or Stroke color skips
// that part of the primitive.
type Command struct {
	Kind        Kind
	Points      []geom.ScreenPoint // polygon vertices, or the two line ends
	Rect        image.Rectangle
	Fill        color.Color
	Stroke      color.Color
	StrokeWidth float32
}

// Polygon draws a tile footprint.
func Polygon(poly geom.ScreenPolygon, stroke, fill color.Color, width float32) Command {
	return Command{
		Kind:        KindPolygon,
		Points:      append([]geom.ScreenPoint(nil), poly.Points()...),
		Stroke:      stroke,
		Fill:        fill,
		StrokeWidth: width,
	}
}

// Line draws a single segment.
func Line(a, b geom.ScreenPoint, clr color.Color, width float32) Command {
	return Command{
		Kind:        KindLine,
		Points:      []geom.ScreenPoint{a, b},
		Stroke:      clr,
		StrokeWidth: width,
	}
}

// Rect draws an axis-aligned rectangle.
func Rect(r image.Rectangle, stroke, fill color.Color) Command {
	return Command{
		Kind:        KindRect,
		Rect:        r,
		Stroke:      stroke,
		Fill:        fill,
		StrokeWidth: 1,
	}
}

// Frame is everything one overlay wants drawn this frame.
type Frame struct {
	Layer    Layer
	Priority Priority

	// Clip limits drawing to the union of these rectangles. nil means
	// unclipped; an empty non-nil slice means nothing is visible.
	Clip []image.Rectangle

	Commands []Command
}

// NewFrame returns an empty, unclipped frame.
func NewFrame(layer Layer, priority Priority) *Frame {
	return &Frame{Layer: layer, Priority: priority}
}

// Add appends a command.
func (f *Frame) Add(c Command) {
	f.Commands = append(f.Commands, c)
}

// Len returns the number of commands.
func (f *Frame) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Commands)
}

// Clipped reports whether the frame carries a clip region.
func (f *Frame) Clipped() bool {
	return f != nil && f.Clip != nil
}

// SortFrames orders frames by layer, then priority. Frames with equal keys
// keep their relative order.
func SortFrames(frames []*Frame) {
	sort.SliceStable(frames, func(i, j int) bool {
		if frames[i].Layer != frames[j].Layer {
			return frames[i].Layer < frames[j].Layer
		}
		return frames[i].Priority < frames[j].Priority
	})
}
