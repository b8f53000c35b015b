package analysis

import (
	"math"
	"testing"

	"github.com/philipparndt/coinpack/pkg/ellipsoid"
	"github.com/philipparndt/coinpack/pkg/geometry"
	"github.com/philipparndt/coinpack/pkg/mesh"
	"github.com/philipparndt/coinpack/pkg/packing"
	"github.com/philipparndt/coinpack/pkg/stl"
)

func TestSummarize(t *testing.T) {
	e := ellipsoid.Ellipsoid{A: 10, B: 10, C: 10}
	coin := ellipsoid.Coin{Radius: 1, Height: 1}

	layers := []packing.PackedLayer{
		{Circles: make([]geometry.Circle, 3)},
		{Circles: make([]geometry.Circle, 5)},
		{Skipped: true},
	}

	s := Summarize(e, coin, layers)

	if s.Layers != 3 || s.SkippedLayers != 1 || s.Circles != 8 {
		t.Errorf("unexpected counts: %+v", s)
	}

	expected := 8 * math.Pi / (4.0 / 3.0 * math.Pi * 1000) * 100
	if math.Abs(s.FillPercent-expected) > 1e-4 {
		t.Errorf("FillPercent failed: expected %v, got %v", expected, s.FillPercent)
	}
}

func TestSummarizeDegenerateEllipsoid(t *testing.T) {
	s := Summarize(ellipsoid.Ellipsoid{}, ellipsoid.Coin{Radius: 1, Height: 1}, nil)
	if s.FillPercent != 0 {
		t.Errorf("expected 0%% fill for empty ellipsoid, got %v", s.FillPercent)
	}
}

func TestAnalyzeModelCylinder(t *testing.T) {
	model := stl.NewModel("coin")
	model.AddTriangles(mesh.Cylinder(geometry.NewVector3(0, 0, 0), 1, 2))

	result := AnalyzeModel(model)

	if result.TriangleCount != mesh.TrianglesPerCylinder {
		t.Errorf("TriangleCount failed: expected %d, got %d", mesh.TrianglesPerCylinder, result.TriangleCount)
	}
	if result.EdgeCount != 3*result.TriangleCount {
		t.Errorf("EdgeCount failed: got %d", result.EdgeCount)
	}
	if math.Abs(float64(result.Dimensions.Z)-2) > 1e-6 {
		t.Errorf("height failed: expected 2, got %v", result.Dimensions.Z)
	}
	// The wall diagonal spans the height and one rim chord.
	diagonal := math.Hypot(2, 2*math.Sin(math.Pi/16))
	if math.Abs(result.MaxEdgeLength-diagonal) > 1e-5 {
		t.Errorf("MaxEdgeLength failed: expected %v, got %v", diagonal, result.MaxEdgeLength)
	}

	prism := 0.5 * 16 * math.Sin(2*math.Pi/16) * 2
	if math.Abs(result.Volume-prism) > 1e-3 {
		t.Errorf("Volume failed: expected %v, got %v", prism, result.Volume)
	}

	// The rim reaches +-1 on both axes, so the box is 2 x 2 x 2.
	if math.Abs(result.Diagonal-math.Sqrt(12)) > 1e-4 {
		t.Errorf("Diagonal failed: expected %v, got %v", math.Sqrt(12), result.Diagonal)
	}
	if fill := prism / 8 * 100; math.Abs(result.BoxFill-fill) > 1e-2 {
		t.Errorf("BoxFill failed: expected %v, got %v", fill, result.BoxFill)
	}
}

func TestAnalyzeModelEmpty(t *testing.T) {
	result := AnalyzeModel(stl.NewModel("empty"))
	if result.BoxFill != 0 || result.EdgeCount != 0 {
		t.Errorf("empty model should have no fill or edges: %+v", result)
	}
}

func TestFormatVector(t *testing.T) {
	got := FormatVector(geometry.NewVector3(1, -2.5, 0))
	if got != "(1.000000, -2.500000, 0.000000)" {
		t.Errorf("FormatVector failed: got %s", got)
	}
}
