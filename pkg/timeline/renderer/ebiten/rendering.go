package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/darkwater/console-timeline/pkg/engine/draw"
	"github.com/darkwater/console-timeline/pkg/engine/geom"
	"github.com/darkwater/console-timeline/pkg/timeline/layout"
)

// Draw lays out the whole timeline for the current view, then the tooltip of
// the hovered bar on top (Ebiten interface)
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(h.timeline.Theme.Background)

	ctx := h.newScreenContext(screen, h.pointer())
	w, hgt := ctx.clip.Width(), ctx.clip.Height()
	h.timeline.Show(ctx, h.frame(w, hgt))

	if ctx.pointer == nil {
		return
	}
	for _, rows := range ctx.tooltips {
		h.drawTooltip(screen, ctx, rows, *ctx.pointer)
	}
}

// frame describes the current view for a w×h surface
func (h *Host) frame(w, hgt float64) layout.Frame {
	contentW, _ := h.timeline.ContentSize(h.view.PixelsPerYear)
	return layout.Frame{
		Viewport:       h.view.Viewport(w, hgt),
		AvailableWidth: max(w, contentW),
		PixelsPerYear:  &h.view.PixelsPerYear,
	}
}

// pointer returns the cursor position, or nil when it is outside the window
func (h *Host) pointer() *geom.Point {
	x, y := ebiten.CursorPosition()
	if x < 0 || y < 0 || x >= h.windowWidth || y >= h.windowHeight {
		return nil
	}
	p := geom.Pt(float64(x), float64(y))
	return &p
}

func (h *Host) drawTooltip(screen *ebiten.Image, ctx *screenContext, rows []draw.TooltipRow, pointer geom.Point) {
	tip := draw.LayoutTooltip(rows, pointer, ctx.clip, h.measure)
	box := tip.Box

	vector.DrawFilledRect(screen, float32(box.Left()), float32(box.Top()), float32(box.Width()), float32(box.Height()), colorTooltipBackground, false)
	vector.StrokeRect(screen, float32(box.Left()), float32(box.Top()), float32(box.Width()), float32(box.Height()), 1, colorTooltipBorder, false)

	for _, span := range tip.Spans {
		ctx.Text(span.Pos, geom.LeftTop, span.Text, draw.TooltipTextSize, span.Color)
	}
}
