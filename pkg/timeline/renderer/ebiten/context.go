package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/darkwater/console-timeline/pkg/engine/draw"
	"github.com/darkwater/console-timeline/pkg/engine/geom"
)

// screenContext is a draw.Context over the window for one frame
type screenContext struct {
	host    *Host
	screen  *ebiten.Image
	clip    geom.Rect
	pointer *geom.Point

	tooltips [][]draw.TooltipRow
}

func (h *Host) newScreenContext(screen *ebiten.Image, pointer *geom.Point) *screenContext {
	b := screen.Bounds()
	return &screenContext{
		host:    h,
		screen:  screen,
		clip:    geom.RectFromXYRanges(float64(b.Min.X), float64(b.Max.X), float64(b.Min.Y), float64(b.Max.Y)),
		pointer: pointer,
	}
}

func (c *screenContext) ClipRect() geom.Rect {
	return c.clip
}

func (c *screenContext) FillRect(r geom.Rect, col color.RGBA) {
	if col.A == 0 || r.Width() <= 0 || r.Height() <= 0 {
		return
	}
	// bars may be far wider than the window
	r.Min.X = max(r.Min.X, c.clip.Left()-1)
	r.Max.X = min(r.Max.X, c.clip.Right()+1)
	if r.Width() <= 0 {
		return
	}
	vector.DrawFilledRect(c.screen, float32(r.Left()), float32(r.Top()), float32(r.Width()), float32(r.Height()), col, false)
}

func (c *screenContext) LineSegment(a, b geom.Point, width float64, col color.RGBA) {
	vector.StrokeLine(c.screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), col, false)
}

func (c *screenContext) Text(pos geom.Point, anchor geom.Align2, s string, size float64, col color.RGBA) {
	w, h := c.MeasureText(s, size)
	r := anchor.AnchorSize(pos, w, h)

	op := &text.DrawOptions{}
	op.GeoM.Translate(r.Left(), r.Top())
	op.ColorScale.ScaleWithColor(col)
	text.Draw(c.screen, s, c.host.face(size), op)
}

func (c *screenContext) MeasureText(s string, size float64) (w, h float64) {
	return c.host.measure(s, size)
}

func (c *screenContext) Mesh(m draw.Mesh) {
	if len(m.Indices) == 0 {
		return
	}

	vertices := make([]ebiten.Vertex, len(m.Vertices))
	for i, v := range m.Vertices {
		vertices[i] = ebiten.Vertex{
			DstX:   float32(v.Pos.X),
			DstY:   float32(v.Pos.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(v.Color.R) / 255,
			ColorG: float32(v.Color.G) / 255,
			ColorB: float32(v.Color.B) / 255,
			ColorA: float32(v.Color.A) / 255,
		}
	}

	op := &ebiten.DrawTrianglesOptions{}
	// draw colours are premultiplied
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	c.screen.DrawTriangles(vertices, m.Indices, c.host.whitePixel, op)
}

func (c *screenContext) Hovered(r geom.Rect) bool {
	return c.pointer != nil && r.Contains(*c.pointer)
}

func (c *screenContext) Tooltip(rows []draw.TooltipRow) {
	c.tooltips = append(c.tooltips, rows)
}
