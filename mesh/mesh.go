// Package mesh turns gui rectangles into triangle meshes for the renderer.
package mesh

import (
	"fmt"

	earcut "github.com/flywave/go-earcut"
)

// Quad is an axis aligned rectangle in gui space.
type Quad struct {
	X, Y          float64
	Width, Height float64
}

// ring returns the corners counter clockwise, starting bottom left.
func (q Quad) ring() []float64 {
	return []float64{
		q.X, q.Y,
		q.X + q.Width, q.Y,
		q.X + q.Width, q.Y + q.Height,
		q.X, q.Y + q.Height,
	}
}

// Mesh is a triangulated polygon. Vertices are flat x, y pairs and every three
// indices form a triangle.
type Mesh struct {
	Vertices []float64
	Indices  []int
}

// Empty reports whether the mesh has no triangles.
func (m Mesh) Empty() bool {
	return len(m.Indices) == 0
}

// Translate returns a copy of m moved by (dx, dy).
func (m Mesh) Translate(dx, dy float64) Mesh {
	out := Mesh{
		Vertices: make([]float64, len(m.Vertices)),
		Indices:  m.Indices,
	}
	for i := 0; i+1 < len(m.Vertices); i += 2 {
		out.Vertices[i] = m.Vertices[i] + dx
		out.Vertices[i+1] = m.Vertices[i+1] + dy
	}
	return out
}

// Rect triangulates a filled quad.
func Rect(q Quad) (Mesh, error) {
	if q.Width <= 0 || q.Height <= 0 {
		return Mesh{}, nil
	}

	vertices := q.ring()
	indices, err := earcut.Earcut(vertices, nil, 2)
	if err != nil {
		return Mesh{}, fmt.Errorf("triangulating quad %+v: %w", q, err)
	}
	return Mesh{Vertices: vertices, Indices: indices}, nil
}

// Frame triangulates the area between outer and inner, used to draw borders.
func Frame(outer, inner Quad) (Mesh, error) {
	if inner.Width <= 0 || inner.Height <= 0 {
		return Rect(outer)
	}
	if inner == outer {
		return Mesh{}, nil
	}

	vertices := append(outer.ring(), inner.ring()...)
	indices, err := earcut.Earcut(vertices, []int{4}, 2)
	if err != nil {
		return Mesh{}, fmt.Errorf("triangulating frame %+v around %+v: %w", outer, inner, err)
	}
	return Mesh{Vertices: vertices, Indices: indices}, nil
}
