package layout

import (
	"math"

	"github.com/darkwater/console-timeline/pkg/engine/draw"
	"github.com/darkwater/console-timeline/pkg/engine/geom"
	"github.com/darkwater/console-timeline/pkg/timeline/axis"
	"github.com/darkwater/console-timeline/pkg/timeline/model"
)

// BarExtent returns the content-space x range of a console's bar. Without an
// end of production the bar is open and reaches availableWidth.
func BarExtent(m axis.Mapper, c *model.Console, availableWidth float64) (start, end float64) {
	first, ok := c.FirstRelease()
	if !ok {
		// catalogs are validated on load; reaching this is a programming error
		panic("layout: console " + c.Name + " has no release date")
	}
	start = m.DateToX(first)

	end = availableWidth
	if eop, ok := c.Discontinued(); ok {
		end = m.DateToX(eop.Date)
	}
	return start, end
}

// drawConsole draws one bar. row carries the bar's content-space y range.
func (t *Timeline) drawConsole(ctx draw.Context, m axis.Mapper, f Frame, l *model.Lineage, c *model.Console, row geom.Rect, origin geom.Point) {
	start, end := BarExtent(m, c, f.AvailableWidth)
	bar := geom.RectFromXYRanges(start, end, row.Top(), row.Bottom()).Translate(origin.X, origin.Y)

	hovered := ctx.Hovered(bar)
	clip := ctx.ClipRect()
	if !clip.Intersects(bar) {
		return
	}

	accentColor := l.Color
	bgColor := draw.MultiplyAlpha(accentColor, barAlpha)
	if hovered {
		bgColor = draw.MultiplyAlpha(accentColor, barHoverAlpha)
	}

	ctx.FillRect(bar, bgColor)
	accent := bar.WithMinY(bar.Bottom() - AccentHeight)
	ctx.FillRect(accent, accentColor)

	w, _ := ctx.MeasureText(c.Name, LabelSize)
	anchor := labelAnchor(bar, clip, w)
	ctx.Text(anchor, geom.LeftCenter, c.Name, LabelSize, t.Theme.labelColor(hovered))

	if eop, ok := c.Discontinued(); ok && eop.Date.IsYearOnly() {
		// only the year is known, so fade out over the following year
		fade := geom.RectFromMinSize(bar.RightTop(), m.PixelsPerYear, bar.Height())
		ctx.Mesh(draw.GradientMesh(fade, bgColor, draw.Transparent))
		ctx.Mesh(draw.GradientMesh(fade.WithMinY(accent.Top()), accentColor, draw.Transparent))
	}

	if hovered {
		ctx.Tooltip(SalesTooltip(c, t.Theme))
	}
}

// labelAnchor returns the left-centre point of a bar label of width w. The
// label sticks to the clip's left edge while the bar is scrolled partly
// off-screen but never runs past the bar's right end. A bar too narrow for
// its label is left alone and the label overflows.
func labelAnchor(bar, clip geom.Rect, w float64) geom.Point {
	textWidth := math.Ceil(w) + LabelMargin*2
	anchor := bar.LeftCenter().Add(geom.Pt(LabelMargin, 0))

	if textWidth < bar.Width() {
		anchor.X = max(anchor.X, clip.Left()+LabelMargin)
		anchor.X = min(anchor.X, bar.Right()-textWidth+LabelMargin)
	}
	return anchor
}
