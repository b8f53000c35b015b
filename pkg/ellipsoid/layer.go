package ellipsoid

import (
	"math"

	"github.com/philipparndt/coinpack/pkg/geometry"
)

// Layer is one horizontal slice of the ellipsoid. Z is the bottom of the
// slice and Thickness its height; A and B are the semi-axes of the boundary
// ellipse used for packing.
type Layer struct {
	Index     int
	Z         float32
	Thickness float32
	A, B      float32
	Boundary  geometry.Loop
}

// NewLayer builds a layer whose boundary approximates the ellipse with
// BoundarySegments evenly angle-spaced vertices.
func NewLayer(index int, a, b, z, thickness float32) Layer {
	vertices := make([]geometry.Point2, BoundarySegments)
	for i := range vertices {
		angle := float32(2*math.Pi) * float32(i) / BoundarySegments
		vertices[i] = geometry.NewPoint2(
			a*float32(math.Cos(float64(angle))),
			b*float32(math.Sin(float64(angle))),
		)
	}

	// BoundarySegments >= 3, so NewLoop cannot fail here.
	boundary, _ := geometry.NewLoop(vertices)

	return Layer{
		Index:     index,
		Z:         z,
		Thickness: thickness,
		A:         a,
		B:         b,
		Boundary:  boundary,
	}
}

// Top returns the height of the upper face of the layer.
func (l Layer) Top() float32 {
	return l.Z + l.Thickness
}

// Area returns the area of the layer's boundary ellipse.
func (l Layer) Area() float32 {
	return math.Pi * l.A * l.B
}
