package geometry

import "fmt"

// Loop is a closed polygon. The edge list always includes the closing edge
// from the last vertex back to the first, so callers never handle the
// wrap-around themselves.
type Loop struct {
	vertices []Point2
	bounds   Rect
}

// NewLoop creates a loop from its vertices in order. The slice is copied.
func NewLoop(vertices []Point2) (Loop, error) {
	if len(vertices) < 3 {
		return Loop{}, fmt.Errorf("loop requires 3 or more vertices: got=%d", len(vertices))
	}

	vs := make([]Point2, len(vertices))
	copy(vs, vertices)

	bounds := Rect{Min: vs[0], Max: vs[0]}
	for _, v := range vs[1:] {
		bounds.Min.X = min(bounds.Min.X, v.X)
		bounds.Min.Y = min(bounds.Min.Y, v.Y)
		bounds.Max.X = max(bounds.Max.X, v.X)
		bounds.Max.Y = max(bounds.Max.Y, v.Y)
	}

	return Loop{vertices: vs, bounds: bounds}, nil
}

// NumVertices returns the number of vertices, which equals the number of edges.
func (l Loop) NumVertices() int {
	return len(l.vertices)
}

// Vertex returns vertex i. Indices wrap around in both directions.
func (l Loop) Vertex(i int) Point2 {
	n := len(l.vertices)
	return l.vertices[((i%n)+n)%n]
}

// Edge returns edge i, which runs from vertex i-1 to vertex i. Edge 0 is
// the closing edge.
func (l Loop) Edge(i int) (Point2, Point2) {
	return l.Vertex(i - 1), l.Vertex(i)
}

// Bounds returns the axis-aligned bounding rectangle.
func (l Loop) Bounds() Rect {
	return l.bounds
}

// Rotate returns the same loop with its vertex list cyclically shifted so
// that vertex k becomes vertex 0.
func (l Loop) Rotate(k int) Loop {
	n := len(l.vertices)
	vs := make([]Point2, n)
	for i := range vs {
		vs[i] = l.Vertex(i + k)
	}
	return Loop{vertices: vs, bounds: l.bounds}
}

// ContainsPoint reports whether p is inside the loop using an even-odd ray
// cast towards +X. Points on the boundary get whatever parity the ray cast
// produces for them.
func (l Loop) ContainsPoint(p Point2) bool {
	if !l.bounds.Contains(p) {
		return false
	}

	inside := false
	for i := range l.vertices {
		pj, pi := l.Edge(i)
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}
