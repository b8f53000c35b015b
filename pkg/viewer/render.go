package viewer

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/philipparndt/coinpack/pkg/geometry"
)

var (
	Background = color.RGBA{R: 0x20, G: 0x22, B: 0x28, A: 0xff}
	BaseColor  = color.RGBA{R: 0xd4, G: 0x9a, B: 0x34, A: 0xff}
)

// RenderImage draws flat-shaded triangles as seen by the camera. Faces are
// lit from the camera, so both windings are shaded the same.
func RenderImage(triangles []geometry.Triangle, cam *Camera, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
	if width <= 0 || height <= 0 {
		return img
	}

	zbuffer := make([]float32, width*height)
	for i := range zbuffer {
		zbuffer[i] = math.MaxFloat32
	}

	w, h := float32(width), float32(height)
	view := cam.ViewDirection()

	for _, t := range triangles {
		var v [3]screenVertex
		for i, p := range [3]geometry.Vector3{t.V1, t.V2, t.V3} {
			x, y, z := cam.Project(p, w, h)
			v[i] = screenVertex{x: x, y: y, z: z}
		}

		normal := t.Normal
		if normal.Length() == 0 {
			normal = t.CalculateNormal()
		}
		fillTriangleWithDepth(img, zbuffer, v[0], v[1], v[2], shade(BaseColor, normal, view))
	}

	return img
}

func shade(base color.RGBA, normal, view geometry.Vector3) color.RGBA {
	intensity := 0.25 + 0.75*float32(math.Abs(float64(normal.Dot(view))))
	return color.RGBA{
		R: uint8(float32(base.R) * intensity),
		G: uint8(float32(base.G) * intensity),
		B: uint8(float32(base.B) * intensity),
		A: base.A,
	}
}
