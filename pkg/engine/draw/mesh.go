package draw

import (
	"image/color"

	"github.com/darkwater/console-timeline/pkg/engine/geom"
)

// Vertex is a mesh corner with its own colour
type Vertex struct {
	Pos   geom.Point
	Color color.RGBA
}

// Mesh is a list of coloured vertices and the triangles joining them.
// Colours are interpolated across each triangle.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

// ColoredVertex appends a vertex
func (m *Mesh) ColoredVertex(pos geom.Point, c color.RGBA) {
	m.Vertices = append(m.Vertices, Vertex{Pos: pos, Color: c})
}

// AddTriangle appends a triangle referencing three existing vertices
func (m *Mesh) AddTriangle(a, b, c uint16) {
	m.Indices = append(m.Indices, a, b, c)
}

// GradientMesh returns a two-triangle quad covering r that fades horizontally
// from start on the left edge to end on the right edge
func GradientMesh(r geom.Rect, start, end color.RGBA) Mesh {
	var m Mesh

	m.ColoredVertex(r.Min, start)
	m.ColoredVertex(r.RightTop(), end)
	m.ColoredVertex(geom.Pt(r.Left(), r.Bottom()), start)
	m.ColoredVertex(r.Max, end)

	m.AddTriangle(0, 1, 2)
	m.AddTriangle(2, 1, 3)

	return m
}

// Bounds returns the smallest rectangle holding every vertex
func (m Mesh) Bounds() geom.Rect {
	if len(m.Vertices) == 0 {
		return geom.Rect{}
	}
	b := geom.Rect{Min: m.Vertices[0].Pos, Max: m.Vertices[0].Pos}
	for _, v := range m.Vertices[1:] {
		b.Min.X = min(b.Min.X, v.Pos.X)
		b.Min.Y = min(b.Min.Y, v.Pos.Y)
		b.Max.X = max(b.Max.X, v.Pos.X)
		b.Max.Y = max(b.Max.Y, v.Pos.Y)
	}
	return b
}
