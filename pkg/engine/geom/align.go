package geom

// Align is the placement of a box relative to an anchor on one axis
type Align int

const (
	AlignMin Align = iota // anchor on the left/top edge
	AlignCenter
	AlignMax // anchor on the right/bottom edge
)

// Align2 combines horizontal and vertical alignment
type Align2 struct {
	H, V Align
}

// Common anchors
var (
	LeftTop      = Align2{H: AlignMin, V: AlignMin}
	LeftCenter   = Align2{H: AlignMin, V: AlignCenter}
	LeftBottom   = Align2{H: AlignMin, V: AlignMax}
	CenterCenter = Align2{H: AlignCenter, V: AlignCenter}
)

// AnchorSize returns the w×h rectangle placed so that its aligned point sits
// on pos. For LeftCenter the left edge is at pos.X and the box is vertically
// centred on pos.Y.
func (a Align2) AnchorSize(pos Point, w, h float64) Rect {
	min := pos
	switch a.H {
	case AlignCenter:
		min.X -= w / 2
	case AlignMax:
		min.X -= w
	}
	switch a.V {
	case AlignCenter:
		min.Y -= h / 2
	case AlignMax:
		min.Y -= h
	}
	return RectFromMinSize(min, w, h)
}
