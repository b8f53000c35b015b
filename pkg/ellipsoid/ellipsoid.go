// Package ellipsoid slices an axis-aligned ellipsoid into horizontal layers
// whose elliptical boundaries bound the coins packed into them.
package ellipsoid

import (
	"fmt"
	"math"
)

// BoundarySegments is the number of vertices used to approximate each
// layer's ellipse.
const BoundarySegments = 64

// Coin is the disk template packed everywhere in a run.
type Coin struct {
	Radius float32
	Height float32
}

// Volume returns the volume of a single coin.
func (c Coin) Volume() float32 {
	return math.Pi * c.Radius * c.Radius * c.Height
}

// Validate rejects coins the packer cannot place: a non-positive radius
// never leaves a row and a non-positive height never advances a layer.
func (c Coin) Validate() error {
	if !(c.Radius > 0 && c.Height > 0) {
		return fmt.Errorf("coin radius and height must be positive: r=%v h=%v", c.Radius, c.Height)
	}
	return nil
}

// Ellipsoid is x²/A² + y²/B² + z²/C² = 1.
type Ellipsoid struct {
	A, B, C float32
}

// Validate reports non-positive semi-axes. Layers does not call it: such
// ellipsoids simply produce no layers.
func (e Ellipsoid) Validate() error {
	if !(e.A > 0 && e.B > 0 && e.C > 0) {
		return fmt.Errorf("semi-axes must be positive: a=%v b=%v c=%v", e.A, e.B, e.C)
	}
	return nil
}

// Volume returns 4/3·π·a·b·c.
func (e Ellipsoid) Volume() float32 {
	return 4.0 / 3.0 * math.Pi * e.A * e.B * e.C
}

// CrossSectionAt returns the semi-axes of the ellipse cut by the plane at
// height z. Outside the ellipsoid (|z| > c) both values are NaN.
func CrossSectionAt(a, b, c, z float32) (float32, float32) {
	zc := z * z / (c * c)
	na := float32(math.Sqrt(float64(a * a * (1 - zc))))
	nb := float32(math.Sqrt(float64(b * b * (1 - zc))))
	return na, nb
}

// Valid reports whether a cross-section returned by CrossSectionAt is usable.
func Valid(a, b float32) bool {
	return !isNaN(a) && !isNaN(b)
}

// Layers slices the ellipsoid bottom-up into layers of the given thickness.
// Each layer uses the smaller of its bottom and top cross-sections so that
// a coin fitting the boundary fits through the whole thickness. Slicing
// stops at the first step where either cross-section is invalid; the last
// layer may therefore poke slightly above z = c.
func (e Ellipsoid) Layers(thickness float32) []Layer {
	if !(thickness > 0) {
		return nil
	}

	var layers []Layer

	z := -e.C
	for {
		lowerA, lowerB := CrossSectionAt(e.A, e.B, e.C, z)
		upperA, upperB := CrossSectionAt(e.A, e.B, e.C, z+thickness)
		if !Valid(lowerA, lowerB) || !Valid(upperA, upperB) {
			break
		}

		a, b := lowerA, lowerB
		if upperA < lowerA {
			a, b = upperA, upperB
		}

		layers = append(layers, NewLayer(len(layers), a, b, z, thickness))

		next := z + thickness
		if next == z {
			break
		}
		z = next
	}

	return layers
}

func isNaN(f float32) bool {
	return f != f
}
