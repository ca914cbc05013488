// Package draw defines the immediate-mode drawing context the layout code
// issues its primitives against, plus helpers shared by every backend.
package draw

import (
	"image/color"

	"github.com/darkwater/console-timeline/pkg/engine/geom"
)

// Span is a run of text drawn in a single colour
type Span struct {
	Text  string
	Color color.RGBA
}

// TooltipRow is one line of a tooltip, made of coloured spans
type TooltipRow []Span

// Text returns the row's spans concatenated
func (r TooltipRow) Text() string {
	var s string
	for _, span := range r {
		s += span.Text
	}
	return s
}

// Context is a drawing surface for a single frame. All coordinates are screen
// pixels with the origin at the top-left of the surface.
type Context interface {
	// ClipRect returns the visible part of the surface
	ClipRect() geom.Rect

	// FillRect fills r with c
	FillRect(r geom.Rect, c color.RGBA)

	// LineSegment strokes a line from a to b
	LineSegment(a, b geom.Point, width float64, c color.RGBA)

	// Text draws s so that the anchor point of its bounding box sits on pos
	Text(pos geom.Point, anchor geom.Align2, s string, size float64, c color.RGBA)

	// MeasureText returns the size of s laid out on a single line
	MeasureText(s string, size float64) (w, h float64)

	// Mesh draws coloured triangles
	Mesh(m Mesh)

	// Hovered reports whether the pointer is over r this frame
	Hovered(r geom.Rect) bool

	// Tooltip shows rows next to the pointer once the frame is complete
	Tooltip(rows []TooltipRow)
}
