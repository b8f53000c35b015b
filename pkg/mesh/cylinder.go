// Package mesh triangulates packed coins into closed cylinders.
package mesh

import (
	"math"

	"github.com/philipparndt/coinpack/pkg/geometry"
	"github.com/philipparndt/coinpack/pkg/packing"
)

// Segments is the angular resolution of every cylinder.
const Segments = 16

// TrianglesPerCylinder is the number of facets Cylinder emits: one fan
// triangle per segment on each cap and two wall triangles per segment.
const TrianglesPerCylinder = 4 * Segments

// Cylinder triangulates a closed cylinder whose base circle is centered at
// center and which extends heightDelta along Z (downwards when negative).
//
// Vertex order is corrected for the sign of heightDelta so that every facet
// winds counter-clockwise around its outward normal.
func Cylinder(center geometry.Vector3, radius, heightDelta float32) []geometry.Triangle {
	triangles := make([]geometry.Triangle, 0, TrianglesPerCylinder)

	step := float32(2*math.Pi) / Segments
	ox, oy, oz := center.X, center.Y, center.Z
	d := heightDelta

	rim := func(angle, z float32) geometry.Vector3 {
		return geometry.NewVector3(
			ox+radius*cos32(angle),
			oy+radius*sin32(angle),
			z,
		)
	}

	for _, z := range [2]float32{oz, oz + d} {
		// +1 for whichever cap lies above the middle of the cylinder.
		zn := sign(z - oz - d/2)
		normal := geometry.NewVector3(0, 0, zn)
		hub := geometry.NewVector3(ox, oy, z)

		for i := 0; i < Segments; i++ {
			angle := step * float32(i)
			v1, v2, v3 := rim(angle, z), rim(angle+step, z), hub
			if zn < 0 {
				v2, v3 = v3, v2
			}
			triangles = append(triangles, geometry.NewTriangle(normal, v1, v2, v3))
		}
	}

	for i := 0; i < Segments; i++ {
		angle := step * float32(i)
		normal := geometry.NewVector3(cos32(angle), sin32(angle), 0)

		v1, v2, v3 := rim(angle, oz), rim(angle, oz+d), rim(angle+step, oz)
		if d > 0 {
			v2, v3 = v3, v2
		}
		triangles = append(triangles, geometry.NewTriangle(normal, v1, v2, v3))

		v1, v2, v3 = rim(angle, oz+d), rim(angle+step, oz+d), rim(angle+step, oz)
		if d > 0 {
			v2, v3 = v3, v2
		}
		triangles = append(triangles, geometry.NewTriangle(normal, v1, v2, v3))
	}

	return triangles
}

// Layer triangulates every coin of a packed layer. Coins stand on the
// layer's lower face and extend through its thickness.
func Layer(packed packing.PackedLayer) []geometry.Triangle {
	triangles := make([]geometry.Triangle, 0, len(packed.Circles)*TrianglesPerCylinder)
	for _, c := range packed.Circles {
		triangles = append(triangles, Cylinder(c.Center.At(packed.Layer.Z), c.Radius, packed.Layer.Thickness)...)
	}
	return triangles
}

func sign(x float32) float32 {
	if math.Signbit(float64(x)) {
		return -1
	}
	return 1
}

func cos32(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

func sin32(x float32) float32 {
	return float32(math.Sin(float64(x)))
}
