package viewer

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/philipparndt/coinpack/pkg/geometry"
	"github.com/philipparndt/coinpack/pkg/mesh"
)

func TestCameraProjectsTargetToCenter(t *testing.T) {
	bbox := geometry.BoundingBox{Min: geometry.NewVector3(-2, -2, 0), Max: geometry.NewVector3(2, 2, 1)}
	cam := NewCamera(bbox)

	x, y, z := cam.Project(bbox.Center(), 200, 100)
	if math.Abs(float64(x-100)) > 1e-3 || math.Abs(float64(y-50)) > 1e-3 {
		t.Errorf("Project failed: expected (100, 50), got (%v, %v)", x, y)
	}
	if math.Abs(float64(z-cam.Distance)) > 1e-3 {
		t.Errorf("depth failed: expected %v, got %v", cam.Distance, z)
	}
}

func TestCameraTopViewOrientation(t *testing.T) {
	cam := NewCamera(geometry.BoundingBox{Min: geometry.NewVector3(-1, -1, -1), Max: geometry.NewVector3(1, 1, 1)})

	xr, _, _ := cam.Project(geometry.NewVector3(1, 0, 0), 100, 100)
	_, yu, _ := cam.Project(geometry.NewVector3(0, 1, 0), 100, 100)
	if xr <= 50 {
		t.Errorf("+X should project right of center, got x=%v", xr)
	}
	if yu >= 50 {
		t.Errorf("+Y should project above center, got y=%v", yu)
	}
}

func TestCameraRotateClampsTilt(t *testing.T) {
	cam := NewCamera(geometry.NewBoundingBox())
	cam.Rotate(10, 0)

	if cam.RotationX >= math.Pi/2 {
		t.Errorf("RotationX not clamped: %v", cam.RotationX)
	}
	if d := cam.Position.Distance(cam.Target); math.Abs(float64(d-cam.Distance)) > 1e-4 {
		t.Errorf("camera left its orbit: distance %v, want %v", d, cam.Distance)
	}
}

func TestCameraZoomFloor(t *testing.T) {
	cam := NewCamera(geometry.NewBoundingBox())
	cam.Zoom(-0.999999)
	if cam.Distance < 0.1 {
		t.Errorf("Distance below floor: %v", cam.Distance)
	}
}

func TestFillTriangleDepth(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	zbuffer := make([]float32, 100)
	for i := range zbuffer {
		zbuffer[i] = math.MaxFloat32
	}

	near := color.RGBA{R: 255, A: 255}
	far := color.RGBA{B: 255, A: 255}

	fillTriangleWithDepth(img, zbuffer, screenVertex{0, 0, 1}, screenVertex{9, 0, 1}, screenVertex{0, 9, 1}, near)
	fillTriangleWithDepth(img, zbuffer, screenVertex{0, 0, 5}, screenVertex{9, 0, 5}, screenVertex{0, 9, 5}, far)

	if got := img.RGBAAt(2, 2); got != near {
		t.Errorf("far triangle overwrote near one: got %v", got)
	}
	if got := img.RGBAAt(9, 9); got != (color.RGBA{}) {
		t.Errorf("pixel outside triangle was drawn: %v", got)
	}
}

func TestRenderImageCylinder(t *testing.T) {
	triangles := mesh.Cylinder(geometry.NewVector3(0, 0, 0), 5, 1)
	bbox := geometry.NewBoundingBox()
	for _, tri := range triangles {
		bbox.Extend(tri.V1)
		bbox.Extend(tri.V2)
		bbox.Extend(tri.V3)
	}

	img := RenderImage(triangles, NewCamera(bbox), 64, 64)

	if got := img.RGBAAt(32, 32); got == Background {
		t.Error("center of the cylinder not drawn")
	}
	if got := img.RGBAAt(0, 0); got != Background {
		t.Errorf("corner should be background, got %v", got)
	}
}

func TestRenderImageEmpty(t *testing.T) {
	img := RenderImage(nil, NewCamera(geometry.NewBoundingBox()), 8, 8)
	if img.Bounds().Dx() != 8 || img.RGBAAt(4, 4) != Background {
		t.Error("empty render should be plain background")
	}
}
