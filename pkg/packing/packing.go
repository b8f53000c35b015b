// Package packing places equal circles into a layer boundary in staggered,
// horizontally tangent rows.
//
// The arrangement is a fixed heuristic, not an optimal packing: row zero is
// pushed as low as the boundary allows, further rows follow at hexagonal
// spacing, and every row grows outwards from the vertical axis until the
// boundary stops it.
package packing

import (
	"math"

	"github.com/philipparndt/coinpack/pkg/ellipsoid"
	"github.com/philipparndt/coinpack/pkg/geometry"
	"github.com/philipparndt/coinpack/pkg/search"
)

// SearchTolerance is the resolution of the row-zero offset search.
const SearchTolerance float32 = 1e-4

var sqrt3 = float32(math.Sqrt(3))

// PackedLayer is a layer together with the circles placed in it. Skipped is
// set when no starting row could be found and the layer holds no circles.
type PackedLayer struct {
	Layer   ellipsoid.Layer
	Circles []geometry.Circle
	Skipped bool
}

// Coverage returns the fraction of the layer's boundary ellipse covered by
// its circles, or 0 for a degenerate layer.
func (p PackedLayer) Coverage() float32 {
	area := p.Layer.Area()
	if area <= 0 {
		return 0
	}

	var covered float32
	for _, c := range p.Circles {
		covered += c.Area()
	}
	return covered / area
}

// RowSpacing returns the vertical distance between neighbouring rows.
func RowSpacing(radius float32) float32 {
	return radius * sqrt3
}

// RowCount returns the number of rows attempted for a boundary of vertical
// half-width b.
func RowCount(radius, b float32) int {
	return int(math.Floor(float64(1 + 2*b/(radius*sqrt3))))
}

// StartOffset finds the lowest y at which a circle centered on the vertical
// axis fits inside the boundary. ok is false when the search did not
// converge; the returned value is then search.Limit and must not be used
// as a coordinate.
func StartOffset(boundary geometry.Loop, radius, b float32) (float32, bool) {
	fits := func(y float32) bool {
		return geometry.NewCircle(radius, 0, y).InsideLoop(boundary)
	}
	return search.FirstTrue(-b-radius, fits, SearchTolerance)
}

// Pack fills the boundary with circles of the given radius. b is the
// boundary's vertical semi-axis. The result is nil when no start offset
// could be found.
func Pack(boundary geometry.Loop, radius, b float32) []geometry.Circle {
	circles, _ := pack(boundary, radius, b)
	return circles
}

// PackLayer packs a single slicer layer with the given coin.
func PackLayer(layer ellipsoid.Layer, coin ellipsoid.Coin) PackedLayer {
	circles, ok := pack(layer.Boundary, coin.Radius, layer.B)
	return PackedLayer{
		Layer:   layer,
		Circles: circles,
		Skipped: !ok,
	}
}

func pack(boundary geometry.Loop, radius, b float32) ([]geometry.Circle, bool) {
	startY, ok := StartOffset(boundary, radius, b)
	if !ok {
		return nil, false
	}

	var result []geometry.Circle
	rows := RowCount(radius, b)
	for row := 0; row < rows; row++ {
		y := startY + float32(row)*RowSpacing(radius)
		if row%2 == 0 {
			result = append(result, centeredRow(boundary, radius, y)...)
		} else {
			result = append(result, offsetRow(boundary, radius, y)...)
		}
	}

	return result, true
}

// centeredRow places a circle on the axis, then mirrored pairs at 2r, 4r, ...
// until one no longer fits.
func centeredRow(boundary geometry.Loop, radius, y float32) []geometry.Circle {
	circle := geometry.NewCircle(radius, 0, y)
	if !circle.InsideLoop(boundary) {
		return nil
	}

	circles := []geometry.Circle{circle}
	for {
		if !advance(&circle) || !circle.InsideLoop(boundary) {
			break
		}
		circles = append(circles, circle, circle.Mirror())
	}
	return circles
}

// offsetRow places mirrored pairs at r, 3r, 5r, ... until one no longer fits.
func offsetRow(boundary geometry.Loop, radius, y float32) []geometry.Circle {
	var circles []geometry.Circle

	circle := geometry.NewCircle(radius, radius, y)
	for circle.InsideLoop(boundary) {
		circles = append(circles, circle, circle.Mirror())
		if !advance(&circle) {
			break
		}
	}
	return circles
}

// advance moves the circle one diameter along +X. It reports false once the
// step is lost to float32 rounding and the center no longer moves.
func advance(circle *geometry.Circle) bool {
	next := circle.Center.X + 2*circle.Radius
	if next == circle.Center.X {
		return false
	}
	circle.Center.X = next
	return true
}
