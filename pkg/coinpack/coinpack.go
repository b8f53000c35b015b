// Package coinpack runs the full pipeline: slice the ellipsoid into layers,
// pack every layer with coins and triangulate each coin into the output
// mesh.
package coinpack

import (
	"errors"
	"fmt"
	"sync"

	"github.com/philipparndt/coinpack/pkg/analysis"
	"github.com/philipparndt/coinpack/pkg/ellipsoid"
	"github.com/philipparndt/coinpack/pkg/geometry"
	"github.com/philipparndt/coinpack/pkg/mesh"
	"github.com/philipparndt/coinpack/pkg/packing"
	"github.com/philipparndt/coinpack/pkg/stl"
)

// ErrNoLayers is returned when a layer is requested from a run that
// produced none.
var ErrNoLayers = errors.New("ellipsoid produced no layers")

// Params describes one packing problem.
type Params struct {
	Coin      ellipsoid.Coin
	Ellipsoid ellipsoid.Ellipsoid
}

// Name is a short description used as the STL header.
func (p Params) Name() string {
	return fmt.Sprintf("coinpack r=%g h=%g a=%g b=%g c=%g",
		p.Coin.Radius, p.Coin.Height, p.Ellipsoid.A, p.Ellipsoid.B, p.Ellipsoid.C)
}

// Options tunes how a run executes without changing its result.
type Options struct {
	// Workers is the number of layers processed concurrently. Values
	// below 2 run sequentially.
	Workers int
	// SkipMesh leaves Result.Model empty, for callers that only need the
	// packing.
	SkipMesh bool
}

// Result is the outcome of a run.
type Result struct {
	Params  Params
	Layers  []packing.PackedLayer
	Model   *stl.Model
	Summary analysis.PackingSummary
}

// CircleCount returns the number of coins packed across all layers.
func (r *Result) CircleCount() int {
	return r.Summary.Circles
}

// Layer returns the packed layer at index.
func (r *Result) Layer(index int) (packing.PackedLayer, error) {
	if len(r.Layers) == 0 {
		return packing.PackedLayer{}, ErrNoLayers
	}
	if index < 0 || index >= len(r.Layers) {
		return packing.PackedLayer{}, fmt.Errorf("layer %d out of range: have %d layers", index, len(r.Layers))
	}
	return r.Layers[index], nil
}

// Run packs the ellipsoid described by p. An ellipsoid with non-positive
// semi-axes is not an error; it yields no layers.
func Run(p Params, opts Options) (*Result, error) {
	if err := p.Coin.Validate(); err != nil {
		return nil, err
	}

	layers := p.Ellipsoid.Layers(p.Coin.Height)

	packed := make([]packing.PackedLayer, len(layers))
	var triangles [][]geometry.Triangle
	if !opts.SkipMesh {
		triangles = make([][]geometry.Triangle, len(layers))
	}

	forEachLayer(len(layers), opts.Workers, func(i int) {
		packed[i] = packing.PackLayer(layers[i], p.Coin)
		if triangles != nil {
			triangles[i] = mesh.Layer(packed[i])
		}
	})

	model := stl.NewModel(p.Name())
	for _, t := range triangles {
		model.AddTriangles(t)
	}

	return &Result{
		Params:  p,
		Layers:  packed,
		Model:   model,
		Summary: analysis.Summarize(p.Ellipsoid, p.Coin, packed),
	}, nil
}

// forEachLayer calls fn for every index in [0, n). Each index is handled by
// exactly one goroutine, so fn may write to slot i of a shared slice.
func forEachLayer(n, workers int, fn func(i int)) {
	if workers < 2 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				fn(i)
			}
		}()
	}

	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}
