package draw

import (
	"image/color"
	"testing"

	"github.com/darkwater/console-timeline/pkg/engine/geom"
)

func TestMultiplyAlpha(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}

	tests := []struct {
		name   string
		factor float64
		want   color.RGBA
	}{
		{"zero", 0, Transparent},
		{"negative", -1, Transparent},
		{"one", 1, c},
		{"above one", 2, c},
		{"fifth", 0.2, color.RGBA{40, 20, 10, 51}},
		{"sixty percent", 0.6, color.RGBA{120, 60, 30, 153}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MultiplyAlpha(c, tt.factor); got != tt.want {
				t.Errorf("MultiplyAlpha(%v, %v) = %v, want %v", c, tt.factor, got, tt.want)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	a := color.RGBA{0, 0, 0, 255}
	b := color.RGBA{200, 100, 50, 255}

	if got := Lerp(a, b, 0.5); got != (color.RGBA{100, 50, 25, 255}) {
		t.Errorf("Lerp(a, b, 0.5) = %v", got)
	}
	if got := Lerp(a, b, 0); got != a {
		t.Errorf("Lerp(a, b, 0) = %v, want %v", got, a)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("Lerp(a, b, 1) = %v, want %v", got, b)
	}
}

func TestHex(t *testing.T) {
	if got := Hex(0xE60012); got != (color.RGBA{0xE6, 0x00, 0x12, 0xFF}) {
		t.Errorf("Hex(0xE60012) = %v", got)
	}
}

func TestGradientMesh(t *testing.T) {
	r := geom.RectFromXYRanges(10, 30, 0, 28)
	start := color.RGBA{255, 0, 0, 255}

	m := GradientMesh(r, start, Transparent)

	if len(m.Vertices) != 4 {
		t.Fatalf("len(Vertices) = %d, want 4", len(m.Vertices))
	}
	if len(m.Indices) != 6 {
		t.Fatalf("len(Indices) = %d, want 6 (two triangles)", len(m.Indices))
	}

	for _, v := range m.Vertices {
		onLeft := v.Pos.X == r.Left()
		if onLeft && v.Color != start {
			t.Errorf("left vertex %v has colour %v, want %v", v.Pos, v.Color, start)
		}
		if !onLeft && v.Color != Transparent {
			t.Errorf("right vertex %v has colour %v, want transparent", v.Pos, v.Color)
		}
	}

	if b := m.Bounds(); b != r {
		t.Errorf("Bounds() = %v, want %v", b, r)
	}
}

func TestRecorder_Hovered(t *testing.T) {
	rec := NewRecorder(800, 600)
	bar := geom.RectFromXYRanges(100, 200, 0, 28)

	if rec.Hovered(bar) {
		t.Error("Hovered() = true without a pointer")
	}

	rec.WithPointer(150, 10)
	if !rec.Hovered(bar) {
		t.Error("Hovered() = false with the pointer inside the bar")
	}
	if rec.Hovered(bar.Translate(0, 100)) {
		t.Error("Hovered() = true for a bar below the pointer")
	}
}

func TestRecorder_TextUsesAnchor(t *testing.T) {
	rec := NewRecorder(800, 600)
	rec.Text(geom.Pt(50, 100), geom.LeftBottom, "1990", 14, White)

	op, ok := rec.TextOp("1990")
	if !ok {
		t.Fatal("text op not recorded")
	}
	if op.Rect.Bottom() != 100 || op.Rect.Left() != 50 {
		t.Errorf("text box = %v, want left=50 bottom=100", op.Rect)
	}
}

func TestTooltipRow_Text(t *testing.T) {
	row := TooltipRow{{Text: "  Global: 1.00 M"}, {Text: " ⚠ Unverified"}}
	if got := row.Text(); got != "  Global: 1.00 M ⚠ Unverified" {
		t.Errorf("Text() = %q", got)
	}
}

func TestLayoutTooltip(t *testing.T) {
	rec := NewRecorder(800, 600)
	rows := []TooltipRow{
		{{Text: "SNES"}},
		{{Text: "  Global: 49.10 M"}, {Text: " ⚠ Unverified"}},
	}

	tests := []struct {
		name    string
		pointer geom.Point
		rightOf bool
		belowOf bool
	}{
		{"room on both sides", geom.Pt(100, 100), true, true},
		{"near the right edge", geom.Pt(780, 100), false, true},
		{"near the bottom", geom.Pt(100, 590), true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LayoutTooltip(rows, tt.pointer, rec.Clip, rec.MeasureText)

			if right := got.Box.Left() > tt.pointer.X; right != tt.rightOf {
				t.Errorf("box %v right of pointer = %v, want %v", got.Box, right, tt.rightOf)
			}
			if below := got.Box.Top() > tt.pointer.Y; below != tt.belowOf {
				t.Errorf("box %v below pointer = %v, want %v", got.Box, below, tt.belowOf)
			}
			if len(got.Spans) != 3 {
				t.Fatalf("len(Spans) = %d, want 3", len(got.Spans))
			}
			if got.Spans[2].Pos.X <= got.Spans[1].Pos.X {
				t.Errorf("second span at %v does not follow the first at %v", got.Spans[2].Pos, got.Spans[1].Pos)
			}
			if got.Spans[1].Pos.Y <= got.Spans[0].Pos.Y {
				t.Errorf("second row at y=%v not below the first at y=%v", got.Spans[1].Pos.Y, got.Spans[0].Pos.Y)
			}
		})
	}
}
