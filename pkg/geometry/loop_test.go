package geometry

import (
	"math"
	"testing"
)

func square(half float32) Loop {
	l, err := NewLoop([]Point2{
		NewPoint2(-half, -half),
		NewPoint2(half, -half),
		NewPoint2(half, half),
		NewPoint2(-half, half),
	})
	if err != nil {
		panic(err)
	}
	return l
}

func ellipseLoop(a, b float32, n int) Loop {
	vs := make([]Point2, n)
	for i := range vs {
		angle := 2 * math.Pi * float64(i) / float64(n)
		vs[i] = NewPoint2(a*float32(math.Cos(angle)), b*float32(math.Sin(angle)))
	}
	l, err := NewLoop(vs)
	if err != nil {
		panic(err)
	}
	return l
}

func TestNewLoopRejectsDegenerate(t *testing.T) {
	_, err := NewLoop([]Point2{NewPoint2(0, 0), NewPoint2(1, 0)})
	if err == nil {
		t.Fatal("expected error for a loop with 2 vertices")
	}
}

func TestLoopClosingEdge(t *testing.T) {
	l := square(1)

	from, to := l.Edge(0)
	if from != NewPoint2(-1, 1) || to != NewPoint2(-1, -1) {
		t.Errorf("Edge(0) should close the loop: got %v -> %v", from, to)
	}

	from, to = l.Edge(2)
	if from != NewPoint2(1, -1) || to != NewPoint2(1, 1) {
		t.Errorf("Edge(2) failed: got %v -> %v", from, to)
	}
}

func TestLoopBounds(t *testing.T) {
	l := ellipseLoop(10, 4, 64)
	b := l.Bounds()

	if b.Min.X != -10 || b.Max.X != 10 {
		t.Errorf("X bounds failed: got [%v, %v]", b.Min.X, b.Max.X)
	}
	if abs32(b.Min.Y+4) > 1e-6 || abs32(b.Max.Y-4) > 1e-6 {
		t.Errorf("Y bounds failed: got [%v, %v]", b.Min.Y, b.Max.Y)
	}
}

func TestLoopContainsPoint(t *testing.T) {
	l := square(5)

	cases := []struct {
		p    Point2
		want bool
	}{
		{NewPoint2(0, 0), true},
		{NewPoint2(4.9, -4.9), true},
		{NewPoint2(6, 0), false},
		{NewPoint2(0, -7), false},
		{NewPoint2(-5.5, 5.5), false},
	}

	for _, tc := range cases {
		if got := l.ContainsPoint(tc.p); got != tc.want {
			t.Errorf("ContainsPoint(%v): expected %v, got %v", tc.p, tc.want, got)
		}
	}
}

func TestLoopContainsPointConcave(t *testing.T) {
	// U shape opening upwards; the notch is outside.
	l, err := NewLoop([]Point2{
		NewPoint2(0, 0), NewPoint2(3, 0), NewPoint2(3, 3), NewPoint2(2, 3),
		NewPoint2(2, 1), NewPoint2(1, 1), NewPoint2(1, 3), NewPoint2(0, 3),
	})
	if err != nil {
		t.Fatal(err)
	}

	if l.ContainsPoint(NewPoint2(1.5, 2)) {
		t.Error("point in notch should be outside")
	}
	if !l.ContainsPoint(NewPoint2(0.5, 2)) {
		t.Error("point in left arm should be inside")
	}
	if !l.ContainsPoint(NewPoint2(1.5, 0.5)) {
		t.Error("point in base should be inside")
	}
}

func TestLoopContainsPointRotationInvariant(t *testing.T) {
	l := ellipseLoop(40, 25, 64)

	var probes []Point2
	for x := float32(-45); x <= 45; x += 3.7 {
		for y := float32(-30); y <= 30; y += 2.9 {
			probes = append(probes, NewPoint2(x, y))
		}
	}

	for k := 1; k < l.NumVertices(); k += 7 {
		rotated := l.Rotate(k)
		for _, p := range probes {
			if l.ContainsPoint(p) != rotated.ContainsPoint(p) {
				t.Fatalf("rotation by %d changed result for %v", k, p)
			}
		}
	}
}
