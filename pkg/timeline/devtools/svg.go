// Package devtools exports recorded timeline frames for inspection outside the
// window: SVG snapshots and a self-contained HTML page.
package devtools

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/darkwater/console-timeline/pkg/engine/draw"
	"github.com/darkwater/console-timeline/pkg/engine/geom"
	"github.com/darkwater/console-timeline/pkg/timeline/layout"
)

const fontFamily = "Go, DejaVu Sans, sans-serif"

// WriteSVG writes the frame recorded by rec as a standalone SVG document.
// The tooltip queued during the frame is drawn last, next to the recorded
// pointer.
func WriteSVG(w io.Writer, rec *draw.Recorder, theme layout.Theme) error {
	var b strings.Builder
	writeSVG(&b, rec, theme)
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteHTML wraps the SVG in a dark page with the given title
func WriteHTML(w io.Writer, rec *draw.Recorder, theme layout.Theme, title string) error {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("    <meta charset=\"UTF-8\">\n")
	fmt.Fprintf(&b, "    <title>%s</title>\n", escape(title))
	b.WriteString("    <style>\n")
	fmt.Fprintf(&b, "        body { background-color: %s; margin: 0; padding: 20px; }\n", cssColor(theme.Background))
	b.WriteString("        svg { display: block; }\n")
	b.WriteString("    </style>\n</head>\n<body>\n")
	writeSVG(&b, rec, theme)
	b.WriteString("</body>\n</html>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeSVG(b *strings.Builder, rec *draw.Recorder, theme layout.Theme) {
	clip := rec.Clip
	fmt.Fprintf(b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="%s %s %s %s" font-family="%s">`+"\n",
		num(clip.Width()), num(clip.Height()),
		num(clip.Left()), num(clip.Top()), num(clip.Width()), num(clip.Height()),
		fontFamily)

	var defs strings.Builder
	var body strings.Builder
	gradients := 0

	fmt.Fprintf(&body, `<rect x="%s" y="%s" width="%s" height="%s"%s/>`+"\n",
		num(clip.Left()), num(clip.Top()), num(clip.Width()), num(clip.Height()), fill(theme.Background))

	for _, op := range rec.Ops {
		switch op.Kind {
		case draw.OpFillRect:
			writeRect(&body, op.Rect, op.Color)
		case draw.OpLine:
			fmt.Fprintf(&body, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke-width="%s"%s/>`+"\n",
				num(op.From.X), num(op.From.Y), num(op.To.X), num(op.To.Y), num(op.Width), stroke(op.Color))
		case draw.OpText:
			writeText(&body, op.Rect.Min, op.Text, op.Size, op.Color)
		case draw.OpMesh:
			if left, right, ok := horizontalGradient(op.Mesh); ok {
				id := fmt.Sprintf("fade%d", gradients)
				gradients++
				fmt.Fprintf(&defs, `<linearGradient id="%s" x1="0" y1="0" x2="1" y2="0">`, id)
				fmt.Fprintf(&defs, `<stop offset="0"%s/><stop offset="1"%s/>`, stopColor(left), stopColor(right))
				defs.WriteString("</linearGradient>\n")

				r := op.Mesh.Bounds()
				fmt.Fprintf(&body, `<rect x="%s" y="%s" width="%s" height="%s" fill="url(#%s)"/>`+"\n",
					num(r.Left()), num(r.Top()), num(r.Width()), num(r.Height()), id)
				continue
			}
			writeTriangles(&body, op.Mesh)
		}
	}

	if rec.Pointer != nil {
		for _, rows := range rec.Tooltips {
			tip := draw.LayoutTooltip(rows, *rec.Pointer, clip, rec.MeasureText)
			fmt.Fprintf(&body, `<rect x="%s" y="%s" width="%s" height="%s" rx="4"%s%s/>`+"\n",
				num(tip.Box.Left()), num(tip.Box.Top()), num(tip.Box.Width()), num(tip.Box.Height()),
				fill(theme.Background), stroke(theme.WeakText))
			for _, span := range tip.Spans {
				writeText(&body, span.Pos, span.Text, draw.TooltipTextSize, span.Color)
			}
		}
	}

	if defs.Len() > 0 {
		b.WriteString("<defs>\n")
		b.WriteString(defs.String())
		b.WriteString("</defs>\n")
	}
	b.WriteString(body.String())
	b.WriteString("</svg>\n")
}

func writeRect(b *strings.Builder, r geom.Rect, c color.RGBA) {
	if c.A == 0 || r.Width() <= 0 || r.Height() <= 0 {
		return
	}
	fmt.Fprintf(b, `<rect x="%s" y="%s" width="%s" height="%s"%s/>`+"\n",
		num(r.Left()), num(r.Top()), num(r.Width()), num(r.Height()), fill(c))
}

func writeText(b *strings.Builder, topLeft geom.Point, s string, size float64, c color.RGBA) {
	fmt.Fprintf(b, `<text x="%s" y="%s" font-size="%s" dominant-baseline="text-before-edge"%s>%s</text>`+"\n",
		num(topLeft.X), num(topLeft.Y), num(size), fill(c), escape(s))
}

// writeTriangles draws a mesh that is not a plain horizontal fade, one flat
// polygon per triangle in the average vertex colour
func writeTriangles(b *strings.Builder, m draw.Mesh) {
	for i := 0; i+2 < len(m.Indices); i += 3 {
		v := [3]draw.Vertex{m.Vertices[m.Indices[i]], m.Vertices[m.Indices[i+1]], m.Vertices[m.Indices[i+2]]}
		avg := func(f func(color.RGBA) uint8) uint8 {
			return uint8((int(f(v[0].Color)) + int(f(v[1].Color)) + int(f(v[2].Color))) / 3)
		}
		c := color.RGBA{
			avg(func(c color.RGBA) uint8 { return c.R }),
			avg(func(c color.RGBA) uint8 { return c.G }),
			avg(func(c color.RGBA) uint8 { return c.B }),
			avg(func(c color.RGBA) uint8 { return c.A }),
		}
		fmt.Fprintf(b, `<polygon points="%s,%s %s,%s %s,%s"%s/>`+"\n",
			num(v[0].Pos.X), num(v[0].Pos.Y), num(v[1].Pos.X), num(v[1].Pos.Y), num(v[2].Pos.X), num(v[2].Pos.Y), fill(c))
	}
}

// horizontalGradient reports whether m is a quad whose colour only varies
// from its left edge to its right edge, and returns the two edge colours
func horizontalGradient(m draw.Mesh) (left, right color.RGBA, ok bool) {
	if len(m.Vertices) != 4 {
		return left, right, false
	}
	r := m.Bounds()
	var haveLeft, haveRight bool
	for _, v := range m.Vertices {
		switch v.Pos.X {
		case r.Left():
			if haveLeft && v.Color != left {
				return left, right, false
			}
			left, haveLeft = v.Color, true
		case r.Right():
			if haveRight && v.Color != right {
				return left, right, false
			}
			right, haveRight = v.Color, true
		default:
			return left, right, false
		}
	}
	return left, right, haveLeft && haveRight
}

// straight converts a premultiplied colour to straight RGB plus opacity
func straight(c color.RGBA) (r, g, b uint8, opacity float64) {
	if c.A == 0 {
		return 0, 0, 0, 0
	}
	un := func(v uint8) uint8 {
		return uint8(min(255, int(v)*255/int(c.A)))
	}
	return un(c.R), un(c.G), un(c.B), float64(c.A) / 255
}

func cssColor(c color.RGBA) string {
	r, g, b, _ := straight(c)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func fill(c color.RGBA) string {
	_, _, _, a := straight(c)
	if a >= 1 {
		return fmt.Sprintf(` fill="%s"`, cssColor(c))
	}
	return fmt.Sprintf(` fill="%s" fill-opacity="%s"`, cssColor(c), num(a))
}

func stroke(c color.RGBA) string {
	_, _, _, a := straight(c)
	if a >= 1 {
		return fmt.Sprintf(` stroke="%s"`, cssColor(c))
	}
	return fmt.Sprintf(` stroke="%s" stroke-opacity="%s"`, cssColor(c), num(a))
}

func stopColor(c color.RGBA) string {
	_, _, _, a := straight(c)
	return fmt.Sprintf(` stop-color="%s" stop-opacity="%s"`, cssColor(c), num(a))
}

// num formats a coordinate without trailing zeros
func num(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func escape(s string) string {
	var b strings.Builder
	// strings.Builder never fails
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
