package draw

import (
	"github.com/darkwater/console-timeline/pkg/engine/geom"
)

// Tooltip geometry shared by every backend
const (
	TooltipTextSize = 14.0
	TooltipPadding  = 6.0
	TooltipOffset   = 16.0 // distance from the pointer to the box corner
)

// PlacedSpan is a tooltip span with the left-top point of its text
type PlacedSpan struct {
	Span
	Pos geom.Point
}

// TooltipLayout is a tooltip positioned on the surface
type TooltipLayout struct {
	Box   geom.Rect
	Spans []PlacedSpan
}

// MeasureFunc measures a single line of text
type MeasureFunc func(s string, size float64) (w, h float64)

// LayoutTooltip places rows below and right of pointer, flipping to the other
// side of the pointer when the box would leave clip
func LayoutTooltip(rows []TooltipRow, pointer geom.Point, clip geom.Rect, measure MeasureFunc) TooltipLayout {
	var width, height float64
	lineHeights := make([]float64, len(rows))
	for i, row := range rows {
		w, h := measure(row.Text(), TooltipTextSize)
		width = max(width, w)
		lineHeights[i] = h
		height += h
	}
	width += TooltipPadding * 2
	height += TooltipPadding * 2

	x := pointer.X + TooltipOffset
	if x+width > clip.Right() {
		x = pointer.X - TooltipOffset - width
	}
	y := pointer.Y + TooltipOffset
	if y+height > clip.Bottom() {
		y = pointer.Y - TooltipOffset - height
	}
	x = max(x, clip.Left())
	y = max(y, clip.Top())

	out := TooltipLayout{Box: geom.RectFromMinSize(geom.Pt(x, y), width, height)}

	lineY := y + TooltipPadding
	for i, row := range rows {
		spanX := x + TooltipPadding
		for _, span := range row {
			out.Spans = append(out.Spans, PlacedSpan{Span: span, Pos: geom.Pt(spanX, lineY)})
			w, _ := measure(span.Text, TooltipTextSize)
			spanX += w
		}
		lineY += lineHeights[i]
	}
	return out
}
