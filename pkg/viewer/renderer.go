package viewer

import (
	"image"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/coinpack/pkg/geometry"
)

// MeshView is a widget that renders triangles in 3D. Drag to rotate,
// scroll to zoom.
type MeshView struct {
	widget.BaseWidget

	mu        sync.Mutex
	triangles []geometry.Triangle
	camera    *Camera
	raster    *canvas.Raster
}

// NewMeshView creates an empty 3D view
func NewMeshView() *MeshView {
	v := &MeshView{
		camera: NewCamera(geometry.NewBoundingBox()),
	}
	v.raster = canvas.NewRaster(v.draw)
	v.raster.SetMinSize(fyne.NewSize(400, 400))
	v.ExtendBaseWidget(v)
	return v
}

// SetTriangles replaces the displayed mesh and reframes the camera,
// keeping its current rotation.
func (v *MeshView) SetTriangles(triangles []geometry.Triangle) {
	bbox := geometry.NewBoundingBox()
	for _, t := range triangles {
		bbox.Extend(t.V1)
		bbox.Extend(t.V2)
		bbox.Extend(t.V3)
	}

	v.mu.Lock()
	old := v.camera
	v.triangles = triangles
	v.camera = NewCamera(bbox)
	v.camera.Rotate(old.RotationX, old.RotationY)
	v.mu.Unlock()

	v.raster.Refresh()
}

// CreateRenderer creates the renderer for the widget
func (v *MeshView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.raster)
}

func (v *MeshView) draw(width, height int) image.Image {
	v.mu.Lock()
	defer v.mu.Unlock()
	return RenderImage(v.triangles, v.camera, width, height)
}

// Dragged handles mouse drag events for rotation
func (v *MeshView) Dragged(event *fyne.DragEvent) {
	v.mu.Lock()
	v.camera.Rotate(event.Dragged.DY*0.01, event.Dragged.DX*0.01)
	v.mu.Unlock()
	v.raster.Refresh()
}

// DragEnd handles the end of a drag event
func (v *MeshView) DragEnd() {}

// Scrolled handles scroll events for zooming
func (v *MeshView) Scrolled(event *fyne.ScrollEvent) {
	v.mu.Lock()
	v.camera.Zoom(-event.Scrolled.DY * 0.001)
	v.mu.Unlock()
	v.raster.Refresh()
}
