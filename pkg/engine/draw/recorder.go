package draw

import (
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/darkwater/console-timeline/pkg/engine/geom"
)

// OpKind identifies a recorded drawing operation
type OpKind int

const (
	OpFillRect OpKind = iota
	OpLine
	OpText
	OpMesh
)

// Op is one recorded drawing call. Only the fields relevant to Kind are set.
type Op struct {
	Kind   OpKind
	Rect   geom.Rect   // OpFillRect; laid-out text box for OpText
	From   geom.Point  // OpLine
	To     geom.Point  // OpLine
	Width  float64     // OpLine
	Text   string      // OpText
	Anchor geom.Align2 // OpText
	Size   float64     // OpText
	Color  color.RGBA
	Mesh   Mesh // OpMesh
}

// Recorder is a Context that keeps every call instead of drawing it. It backs
// the unit tests and the SVG export.
type Recorder struct {
	Clip    geom.Rect
	Pointer *geom.Point // nil when the pointer is outside the surface

	Ops      []Op
	Tooltips [][]TooltipRow
}

// NewRecorder returns a recorder for a w×h surface
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{Clip: geom.RectFromXYRanges(0, w, 0, h)}
}

// WithPointer sets the pointer position used for hover queries
func (r *Recorder) WithPointer(x, y float64) *Recorder {
	p := geom.Pt(x, y)
	r.Pointer = &p
	return r
}

func (r *Recorder) ClipRect() geom.Rect {
	return r.Clip
}

func (r *Recorder) FillRect(rect geom.Rect, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, Rect: rect, Color: c})
}

func (r *Recorder) LineSegment(a, b geom.Point, width float64, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, From: a, To: b, Width: width, Color: c})
}

func (r *Recorder) Text(pos geom.Point, anchor geom.Align2, s string, size float64, c color.RGBA) {
	w, h := r.MeasureText(s, size)
	r.Ops = append(r.Ops, Op{
		Kind:   OpText,
		Rect:   anchor.AnchorSize(pos, w, h),
		Text:   s,
		Anchor: anchor,
		Size:   size,
		Color:  c,
	})
}

// MeasureText estimates the width from the rune count, the way SVG layout
// code without font metrics does
func (r *Recorder) MeasureText(s string, size float64) (w, h float64) {
	return EstimateTextWidth(s, size), math.Ceil(size * 1.2)
}

func (r *Recorder) Mesh(m Mesh) {
	r.Ops = append(r.Ops, Op{Kind: OpMesh, Mesh: m})
}

func (r *Recorder) Hovered(rect geom.Rect) bool {
	return r.Pointer != nil && rect.Contains(*r.Pointer)
}

func (r *Recorder) Tooltip(rows []TooltipRow) {
	r.Tooltips = append(r.Tooltips, rows)
}

// OpsOfKind returns the recorded operations of one kind, in call order
func (r *Recorder) OpsOfKind(kind OpKind) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}
	return ops
}

// TextOp returns the first text operation drawing s
func (r *Recorder) TextOp(s string) (Op, bool) {
	for _, op := range r.Ops {
		if op.Kind == OpText && op.Text == s {
			return op, true
		}
	}
	return Op{}, false
}

// EstimateTextWidth approximates the advance of s in a proportional font
func EstimateTextWidth(s string, size float64) float64 {
	return float64(utf8.RuneCountInString(s)) * size * 0.55
}
