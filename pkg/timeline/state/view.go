// Package state holds the mutable view state a host keeps across frames.
package state

import (
	"math"

	"github.com/darkwater/console-timeline/pkg/engine/geom"
)

// Zoom limits in pixels per year. The lower bound is soft: the layout raises
// the scale to fit the window every frame.
const (
	MinPixelsPerYear = 1.0
	MaxPixelsPerYear = 2000.0
)

// View is the host-owned scale and scroll offset of the timeline
type View struct {
	PixelsPerYear float64
	Scroll        geom.Point // content coordinate at the top-left of the window
}

// NewView returns a view at the given scale, scrolled to the origin
func NewView(pixelsPerYear float64) *View {
	return &View{PixelsPerYear: pixelsPerYear}
}

// ScrollBy moves the view by (dx, dy) content pixels
func (v *View) ScrollBy(dx, dy float64) {
	v.Scroll = v.Scroll.Add(geom.Pt(dx, dy))
}

// ZoomAt multiplies the scale by factor while keeping the date under
// pointerX (window coordinates) in place
func (v *View) ZoomAt(factor, pointerX, leftMargin float64) {
	if factor <= 0 || v.PixelsPerYear <= 0 {
		return
	}

	next := math.Min(math.Max(v.PixelsPerYear*factor, MinPixelsPerYear), MaxPixelsPerYear)

	// years from the axis start under the pointer
	years := (v.Scroll.X + pointerX - leftMargin) / v.PixelsPerYear
	v.Scroll.X = leftMargin + years*next - pointerX
	v.PixelsPerYear = next
}

// Clamp keeps the scroll offset inside the content. content is the content
// size, viewport the window size.
func (v *View) Clamp(contentW, contentH, viewportW, viewportH float64) {
	v.Scroll.X = clamp(v.Scroll.X, 0, contentW-viewportW)
	v.Scroll.Y = clamp(v.Scroll.Y, 0, contentH-viewportH)
}

// Viewport returns the visible content rectangle for a window of w×h
func (v *View) Viewport(w, h float64) geom.Rect {
	return geom.RectFromMinSize(v.Scroll, w, h)
}

// Reset scrolls back to the origin at the given scale
func (v *View) Reset(pixelsPerYear float64) {
	v.PixelsPerYear = pixelsPerYear
	v.Scroll = geom.Point{}
}

// clamp bounds x to [lo, hi], preferring lo when the range is empty
func clamp(x, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Min(math.Max(x, lo), hi)
}
