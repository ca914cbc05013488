// Package layout lays out the console timeline for one frame and issues the
// drawing calls through a draw.Context. Nothing is retained between frames.
package layout

import (
	"strconv"

	"github.com/darkwater/console-timeline/pkg/engine/draw"
	"github.com/darkwater/console-timeline/pkg/engine/geom"
	"github.com/darkwater/console-timeline/pkg/timeline/axis"
	"github.com/darkwater/console-timeline/pkg/timeline/catalog"
	"github.com/darkwater/console-timeline/pkg/timeline/model"
)

// Frame is the host state one Show call lays out against
type Frame struct {
	// Viewport is the visible part of the content, in content coordinates
	Viewport geom.Rect

	// AvailableWidth is the content width the host gives the timeline.
	// Bars without an end of production extend to it.
	AvailableWidth float64

	// PixelsPerYear is owned by the host. Show raises it so the axis is never
	// narrower than AvailableWidth.
	PixelsPerYear *float64
}

// Timeline renders a catalog. The zero RowHeight means RowHeight.
type Timeline struct {
	Catalog   *catalog.Catalog
	Theme     Theme
	RowHeight float64
}

// New returns a timeline over c with the default theme
func New(c *catalog.Catalog) *Timeline {
	return &Timeline{Catalog: c, Theme: DefaultTheme(), RowHeight: RowHeight}
}

func (t *Timeline) rowHeight() float64 {
	if t.RowHeight <= 0 {
		return RowHeight
	}
	return t.RowHeight
}

// Mapper returns the axis mapper for the catalog at the given scale
func (t *Timeline) Mapper(pixelsPerYear float64) axis.Mapper {
	return axis.New(t.Catalog.StartYear, t.Catalog.EndYear, pixelsPerYear)
}

// ContentSize returns the size of everything Show lays out at the given
// scale, for host scrolling
func (t *Timeline) ContentSize(pixelsPerYear float64) (w, h float64) {
	return t.Mapper(pixelsPerYear).Width(), t.blocksHeight() + BottomPadding
}

func (t *Timeline) blocksHeight() float64 {
	return float64(t.Catalog.ConsoleCount()) * t.rowHeight()
}

// Show draws one frame: gridlines with year labels, a band per lineage and a
// bar per console, plus the tooltip of the hovered bar
func (t *Timeline) Show(ctx draw.Context, f Frame) {
	*f.PixelsPerYear = axis.FitScale(*f.PixelsPerYear, f.AvailableWidth, axis.LeftMargin, t.Catalog.StartYear, t.Catalog.EndYear)
	m := t.Mapper(*f.PixelsPerYear)

	clip := ctx.ClipRect()
	// screen position of the content origin
	origin := clip.Min.Sub(f.Viewport.Min)

	t.drawGridlines(ctx, m, f.Viewport, origin)

	rh := t.rowHeight()
	y := 0.0
	for li := range t.Catalog.Lineages {
		l := &t.Catalog.Lineages[li]
		block := geom.RectFromMinSize(origin.Add(geom.Pt(0, y)), m.Width(), float64(len(l.Consoles))*rh)
		t.drawLineageBand(ctx, l, block, m.LeftMargin)

		for ci := range l.Consoles {
			row := geom.RectFromXYRanges(0, 0, y+float64(ci)*rh, y+float64(ci+1)*rh)
			t.drawConsole(ctx, m, f, l, &l.Consoles[ci], row, origin)
		}
		y += block.Height()
	}
}

func (t *Timeline) drawGridlines(ctx draw.Context, m axis.Mapper, viewport geom.Rect, origin geom.Point) {
	clip := ctx.ClipRect()
	lineColor := draw.MultiplyAlpha(t.Theme.WeakText, gridlineAlpha)

	for _, year := range m.VisibleYears(viewport.Left(), viewport.Right()) {
		x := m.DateToX(model.Year(year)) + origin.X

		ctx.LineSegment(
			geom.Pt(x+GridlineWidth/2, clip.Top()),
			geom.Pt(x+GridlineWidth/2, clip.Bottom()),
			GridlineWidth,
			lineColor,
		)
		ctx.Text(geom.Pt(x+2, clip.Bottom()), geom.LeftBottom, strconv.Itoa(year), LabelSize, t.Theme.WeakText)
	}
}

// drawLineageBand fills the header and the background strip. The strip runs
// to the clip's right edge so the band never visibly ends.
func (t *Timeline) drawLineageBand(ctx draw.Context, l *model.Lineage, block geom.Rect, leftMargin float64) {
	header, rest := block.SplitLeftRightAtX(block.Left() + leftMargin)

	ctx.FillRect(header, draw.MultiplyAlpha(l.Color, headerAlpha))
	ctx.Text(header.Center(), geom.CenterCenter, l.Name, LineageNameSize, draw.White)

	strip, _ := rest.SplitLeftRightAtX(ctx.ClipRect().Right())
	ctx.FillRect(strip, draw.MultiplyAlpha(l.Color, stripAlpha))
}
