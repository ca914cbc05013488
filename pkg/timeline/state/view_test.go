package state

import (
	"math"
	"testing"

	"github.com/darkwater/console-timeline/pkg/engine/geom"
	"github.com/darkwater/console-timeline/pkg/timeline/axis"
)

func TestView_ZoomKeepsDateUnderPointer(t *testing.T) {
	tests := []struct {
		name     string
		factor   float64
		pointerX float64
	}{
		{"zoom in", 1.25, 400},
		{"zoom out", 0.8, 120},
		{"at margin", 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewView(20)
			v.Scroll = geom.Pt(350, 0)

			before := axis.New(1970, 2025, v.PixelsPerYear)
			x := v.Scroll.X + tt.pointerX
			years := (x - axis.LeftMargin) / before.PixelsPerYear

			v.ZoomAt(tt.factor, tt.pointerX, axis.LeftMargin)

			after := axis.New(1970, 2025, v.PixelsPerYear)
			gotYears := (v.Scroll.X + tt.pointerX - after.LeftMargin) / after.PixelsPerYear
			if math.Abs(gotYears-years) > 1e-9 {
				t.Errorf("years under pointer = %v, want %v", gotYears, years)
			}
			if want := 20 * tt.factor; math.Abs(v.PixelsPerYear-want) > 1e-9 {
				t.Errorf("PixelsPerYear = %v, want %v", v.PixelsPerYear, want)
			}
		})
	}
}

func TestView_ZoomLimits(t *testing.T) {
	v := NewView(MaxPixelsPerYear)
	v.ZoomAt(2, 0, axis.LeftMargin)
	if v.PixelsPerYear != MaxPixelsPerYear {
		t.Errorf("PixelsPerYear = %v, want capped at %v", v.PixelsPerYear, MaxPixelsPerYear)
	}

	v.ZoomAt(0, 0, axis.LeftMargin)
	if v.PixelsPerYear != MaxPixelsPerYear {
		t.Errorf("zero factor changed the scale to %v", v.PixelsPerYear)
	}
}

func TestView_Clamp(t *testing.T) {
	tests := []struct {
		name   string
		scroll geom.Point
		want   geom.Point
	}{
		{"inside", geom.Pt(100, 10), geom.Pt(100, 10)},
		{"negative", geom.Pt(-50, -5), geom.Pt(0, 0)},
		{"past the end", geom.Pt(5000, 500), geom.Pt(500, 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := View{PixelsPerYear: 20, Scroll: tt.scroll}
			v.Clamp(1300, 500, 800, 400)
			if v.Scroll != tt.want {
				t.Errorf("Scroll = %v, want %v", v.Scroll, tt.want)
			}
		})
	}
}

func TestView_ClampSmallContent(t *testing.T) {
	v := View{Scroll: geom.Pt(30, 30)}
	v.Clamp(500, 100, 800, 400)
	if v.Scroll != (geom.Point{}) {
		t.Errorf("Scroll = %v, want origin when content fits", v.Scroll)
	}
}

func TestView_ViewportAndReset(t *testing.T) {
	v := NewView(20)
	v.ScrollBy(40, 12)
	v.ScrollBy(-10, 0)

	if got, want := v.Viewport(800, 400), geom.RectFromXYRanges(30, 830, 12, 412); got != want {
		t.Errorf("Viewport() = %v, want %v", got, want)
	}

	v.Reset(11)
	if v.PixelsPerYear != 11 || v.Scroll != (geom.Point{}) {
		t.Errorf("after Reset: %+v", v)
	}
}
