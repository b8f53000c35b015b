// Package preview rasterises packed layers to images.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/vector"

	"github.com/philipparndt/coinpack/pkg/geometry"
	"github.com/philipparndt/coinpack/pkg/packing"
)

// DefaultSize is the default edge length of a preview in pixels.
const DefaultSize = 512

var (
	Background = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Section    = color.RGBA{R: 0xd8, G: 0xdc, B: 0xe3, A: 0xff}
	Coin       = color.RGBA{R: 0xc0, G: 0x8a, B: 0x2a, A: 0xff}
)

// Options controls the rendering of a layer.
type Options struct {
	// Size is the width and height of the image. Zero means DefaultSize.
	Size int
	// Extent is the half-width of the square drawn, in model units. Zero
	// fits the layer. Use a fixed extent to compare layers at the same
	// scale.
	Extent float32
}

// Render draws the cross-section of a layer and its coins, viewed from
// above with +y pointing up.
func Render(layer packing.PackedLayer, opts Options) *image.RGBA {
	size := opts.Size
	if size <= 0 {
		size = DefaultSize
	}

	extent := opts.Extent
	if extent <= 0 {
		extent = max(layer.Layer.A, layer.Layer.B) * 1.05
	}
	if extent <= 0 {
		extent = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	t := transform{scale: float32(size) / (2 * extent), extent: extent, size: float32(size)}
	r := vector.NewRasterizer(size, size)

	boundary := layer.Layer.Boundary
	if boundary.NumVertices() >= 3 {
		addLoop(r, t, boundary)
		r.Draw(dst, dst.Bounds(), image.NewUniform(Section), image.Point{})
	}

	if len(layer.Circles) > 0 {
		r.Reset(size, size)
		for _, c := range layer.Circles {
			x, y := t.apply(c.Center)
			addCircle(r, x, y, c.Radius*t.scale)
		}
		r.Draw(dst, dst.Bounds(), image.NewUniform(Coin), image.Point{})
	}

	return dst
}

// Encode writes a PNG of the layer to w.
func Encode(w io.Writer, layer packing.PackedLayer, opts Options) error {
	if err := png.Encode(w, Render(layer, opts)); err != nil {
		return fmt.Errorf("failed to encode preview: %w", err)
	}
	return nil
}

// WriteFile writes a PNG of the layer to path, replacing any existing file.
func WriteFile(path string, layer packing.PackedLayer, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := Encode(f, layer, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

type transform struct {
	scale  float32
	extent float32
	size   float32
}

func (t transform) apply(p geometry.Point2) (float32, float32) {
	return (p.X + t.extent) * t.scale, t.size - (p.Y+t.extent)*t.scale
}

func addLoop(r *vector.Rasterizer, t transform, loop geometry.Loop) {
	x, y := t.apply(loop.Vertex(0))
	r.MoveTo(x, y)
	for i := 1; i < loop.NumVertices(); i++ {
		x, y = t.apply(loop.Vertex(i))
		r.LineTo(x, y)
	}
	r.ClosePath()
}

// addCircle approximates a circle with four cubic Bézier curves.
func addCircle(r *vector.Rasterizer, cx, cy, radius float32) {
	const k = float32(0.5522847498)
	kr := k * radius

	r.MoveTo(cx, cy-radius)
	r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
	r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
	r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
	r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	r.ClosePath()
}
