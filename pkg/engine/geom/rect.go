// Package geom provides the small 2D geometry vocabulary shared by the layout
// code and the drawing backends.
package geom

// Point is a position (or offset) in pixels
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p offset by o
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p minus o
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Rect is an axis-aligned rectangle. Min is the top-left corner, Max the
// bottom-right; a rectangle with Max < Min on either axis is empty.
type Rect struct {
	Min, Max Point
}

// RectFromXYRanges builds a rectangle spanning [x0,x1] × [y0,y1]
func RectFromXYRanges(x0, x1, y0, y1 float64) Rect {
	return Rect{Min: Point{X: x0, Y: y0}, Max: Point{X: x1, Y: y1}}
}

// RectFromMinSize builds a rectangle from its top-left corner and size
func RectFromMinSize(min Point, w, h float64) Rect {
	return Rect{Min: min, Max: Point{X: min.X + w, Y: min.Y + h}}
}

func (r Rect) Left() float64   { return r.Min.X }
func (r Rect) Right() float64  { return r.Max.X }
func (r Rect) Top() float64    { return r.Min.Y }
func (r Rect) Bottom() float64 { return r.Max.Y }
func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the middle of the rectangle
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// LeftCenter returns the middle of the left edge
func (r Rect) LeftCenter() Point {
	return Point{X: r.Min.X, Y: (r.Min.Y + r.Max.Y) / 2}
}

// RightTop returns the top-right corner
func (r Rect) RightTop() Point {
	return Point{X: r.Max.X, Y: r.Min.Y}
}

// Translate moves the rectangle by (dx, dy)
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Min: Point{X: r.Min.X + dx, Y: r.Min.Y + dy},
		Max: Point{X: r.Max.X + dx, Y: r.Max.Y + dy},
	}
}

// WithMinY returns a copy of r with its top edge moved to y
func (r Rect) WithMinY(y float64) Rect {
	r.Min.Y = y
	return r
}

// Intersects reports whether the two rectangles overlap. Touching edges count
// as overlapping.
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X <= o.Max.X && o.Min.X <= r.Max.X &&
		r.Min.Y <= o.Max.Y && o.Min.Y <= r.Max.Y
}

// Contains reports whether p lies inside r (edges included)
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// SplitLeftRightAtX cuts r vertically at x. x is not clamped, so the halves
// may extend past r when x lies outside it.
func (r Rect) SplitLeftRightAtX(x float64) (left, right Rect) {
	left = Rect{Min: r.Min, Max: Point{X: x, Y: r.Max.Y}}
	right = Rect{Min: Point{X: x, Y: r.Min.Y}, Max: r.Max}
	return left, right
}
