package geometry

// Point2 is a point in a layer's local plane.
type Point2 struct {
	X, Y float32
}

// NewPoint2 creates a new 2D point
func NewPoint2(x, y float32) Point2 {
	return Point2{X: x, Y: y}
}

// DistanceSquared returns the squared distance between two points
func (p Point2) DistanceSquared(other Point2) float32 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// Distance returns the distance between two points
func (p Point2) Distance(other Point2) float32 {
	return sqrt32(p.DistanceSquared(other))
}

// At lifts the point to 3D at height z.
func (p Point2) At(z float32) Vector3 {
	return Vector3{X: p.X, Y: p.Y, Z: z}
}
