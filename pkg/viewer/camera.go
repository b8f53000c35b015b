package viewer

import (
	"math"

	"github.com/philipparndt/coinpack/pkg/geometry"
)

// Camera orbits a target point. With both rotations at zero it looks down
// the -Z axis, so a layer of coins is seen from above.
type Camera struct {
	Position  geometry.Vector3
	Target    geometry.Vector3
	Up        geometry.Vector3
	FOV       float32 // Field of view in radians
	Distance  float32
	RotationX float32 // Tilt towards +Y
	RotationY float32 // Turn around the vertical axis
}

// NewCamera creates a camera that frames the bounding box. An empty box
// frames the unit cube at the origin.
func NewCamera(bbox geometry.BoundingBox) *Camera {
	if bbox.Min.X > bbox.Max.X {
		bbox = geometry.BoundingBox{Min: geometry.NewVector3(-1, -1, -1), Max: geometry.NewVector3(1, 1, 1)}
	}

	size := bbox.Size()
	distance := max(size.X, size.Y, size.Z) * 1.5
	if distance <= 0 {
		distance = 1
	}

	c := &Camera{
		Target:   bbox.Center(),
		Up:       geometry.NewVector3(0, 1, 0),
		FOV:      math.Pi / 4,
		Distance: distance,
	}
	c.UpdatePosition()
	return c
}

// UpdatePosition updates camera position based on rotation angles
func (c *Camera) UpdatePosition() {
	rx, ry, d := float64(c.RotationX), float64(c.RotationY), float64(c.Distance)

	x := d * math.Cos(rx) * math.Sin(ry)
	y := -d * math.Sin(rx)
	z := d * math.Cos(rx) * math.Cos(ry)

	c.Position = c.Target.Add(geometry.NewVector3(float32(x), float32(y), float32(z)))
}

// Rotate rotates the camera by the given angles
func (c *Camera) Rotate(deltaX, deltaY float32) {
	c.RotationX += deltaX
	c.RotationY += deltaY

	// Clamp X rotation to prevent gimbal lock
	const maxAngle = math.Pi/2 - 0.1
	c.RotationX = min(max(c.RotationX, -maxAngle), maxAngle)

	c.UpdatePosition()
}

// Zoom changes the camera distance
func (c *Camera) Zoom(delta float32) {
	c.Distance *= 1 + delta
	if c.Distance < 0.1 {
		c.Distance = 0.1
	}
	c.UpdatePosition()
}

// Project maps a point to screen coordinates and its depth along the view
// direction. Points behind the camera get a depth of 0.01.
func (c *Camera) Project(point geometry.Vector3, width, height float32) (float32, float32, float32) {
	forward := c.Target.Sub(c.Position).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward).Normalize()

	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	if z <= 0.01 {
		z = 0.01
	}

	aspect := width / height
	fovScale := float32(math.Tan(float64(c.FOV) / 2))

	screenX := (x/(z*fovScale*aspect))*(width/2) + width/2
	screenY := (-y/(z*fovScale))*(height/2) + height/2

	return screenX, screenY, z
}

// ViewDirection is the unit vector from the camera to its target.
func (c *Camera) ViewDirection() geometry.Vector3 {
	return c.Target.Sub(c.Position).Normalize()
}
