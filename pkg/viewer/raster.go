package viewer

import (
	"image"
	"image/color"
)

type screenVertex struct {
	x, y, z float32
}

// fillTriangleWithDepth fills a triangle with depth testing
func fillTriangleWithDepth(img *image.RGBA, zbuffer []float32, a, b, c screenVertex, col color.RGBA) {
	// Sort vertices by Y coordinate (top to bottom)
	if a.y > b.y {
		a, b = b, a
	}
	if b.y > c.y {
		b, c = c, b
	}
	if a.y > b.y {
		a, b = b, a
	}

	bounds := img.Bounds()
	width := bounds.Max.X

	yStart := max(0, int(a.y))
	yEnd := min(bounds.Max.Y-1, int(c.y))

	for y := yStart; y <= yEnd; y++ {
		fy := float32(y)

		var hits [3]screenVertex
		n := 0
		for _, e := range [3][2]screenVertex{{a, b}, {b, c}, {a, c}} {
			p, q := e[0], e[1]
			if p.y == q.y || fy < p.y || fy > q.y {
				continue
			}
			t := (fy - p.y) / (q.y - p.y)
			hits[n] = screenVertex{x: p.x + t*(q.x-p.x), z: p.z + t*(q.z-p.z)}
			n++
		}
		if n < 2 {
			continue
		}

		start, end := hits[0], hits[1]
		if start.x > end.x {
			start, end = end, start
		}

		xStart := max(0, int(start.x))
		xEnd := min(bounds.Max.X-1, int(end.x))

		for x := xStart; x <= xEnd; x++ {
			var t float32
			if end.x != start.x {
				t = (float32(x) - start.x) / (end.x - start.x)
			}
			z := start.z + t*(end.z-start.z)

			// Draw if closer
			idx := y*width + x
			if z < zbuffer[idx] {
				zbuffer[idx] = z
				img.SetRGBA(x, y, col)
			}
		}
	}
}
