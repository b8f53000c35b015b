package geometry

// DiscriminantTolerance is the minimum |discriminant| for a segment/circle
// intersection to count as a crossing. Tangent hits below it are ignored.
const DiscriminantTolerance = 1e-4

// Circle is a disk in a layer's local plane.
type Circle struct {
	Center Point2
	Radius float32
}

// NewCircle creates a circle of the given radius centered at (x, y)
func NewCircle(radius, x, y float32) Circle {
	return Circle{Center: Point2{X: x, Y: y}, Radius: radius}
}

// Mirror returns the circle reflected across the Y axis.
func (c Circle) Mirror() Circle {
	return Circle{Center: Point2{X: -c.Center.X, Y: c.Center.Y}, Radius: c.Radius}
}

// Area returns the disk area.
func (c Circle) Area() float32 {
	return pi32 * c.Radius * c.Radius
}

// ContainsPoint reports whether p lies in the closed disk.
func (c Circle) ContainsPoint(p Point2) bool {
	return c.Center.DistanceSquared(p) <= c.Radius*c.Radius
}

// Overlaps reports whether two disks share interior area, allowing eps of
// slack on the center distance.
func (c Circle) Overlaps(other Circle, eps float32) bool {
	rr := c.Radius + other.Radius - eps
	return c.Center.DistanceSquared(other.Center) < rr*rr
}

// CrossesSegment reports whether the circle boundary crosses the segment
// p1-p2 at a parameter strictly inside (0, 1).
//
// Substituting p1 + t(p2-p1) into the circle equation gives
// a*t^2 + b*t + c = 0 with the coefficients below.
func (c Circle) CrossesSegment(p1, p2 Point2) bool {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	ox := p1.X - c.Center.X
	oy := p1.Y - c.Center.Y

	qa := dx*dx + dy*dy
	qb := 2 * (dx*ox + dy*oy)
	qc := ox*ox + oy*oy - c.Radius*c.Radius

	det := qb*qb - 4*qa*qc
	if abs(det) <= DiscriminantTolerance {
		return false
	}

	// A negative discriminant gives NaN roots, which fail both range checks.
	root := sqrt32(det)
	t1 := (-qb + root) / (2 * qa)
	t2 := (-qb - root) / (2 * qa)

	return (0 < t1 && t1 < 1) || (0 < t2 && t2 < 1)
}

// InsideLoop reports whether the disk lies strictly inside the loop: the
// center is inside, no loop vertex is within the disk, and no edge crosses
// the boundary circle.
func (c Circle) InsideLoop(l Loop) bool {
	if !l.ContainsPoint(c.Center) {
		return false
	}

	for i := 0; i < l.NumVertices(); i++ {
		p1, p2 := l.Edge(i)
		if c.ContainsPoint(p1) || c.ContainsPoint(p2) {
			return false
		}
		if c.CrossesSegment(p1, p2) {
			return false
		}
	}
	return true
}

const pi32 = float32(3.14159265358979323846264338327950288419716939937510582097494459)

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
