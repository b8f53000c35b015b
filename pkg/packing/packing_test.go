package packing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/coinpack/pkg/ellipsoid"
	"github.com/philipparndt/coinpack/pkg/geometry"
	"github.com/philipparndt/coinpack/pkg/search"
)

func TestRowCount(t *testing.T) {
	// floor(1 + 20/sqrt(3)) = floor(12.55)
	assert.Equal(t, 12, RowCount(1, 10))
	assert.Equal(t, 1, RowCount(5, 0))
}

func TestStartOffset(t *testing.T) {
	layer := ellipsoid.NewLayer(0, 10, 10, 0, 1)

	y, ok := StartOffset(layer.Boundary, 1, layer.B)
	require.True(t, ok)
	// The lowest boundary vertex sits at (0, -10).
	assert.InDelta(t, -9, y, 1e-2)
	assert.True(t, geometry.NewCircle(1, 0, y).InsideLoop(layer.Boundary))
}

func TestStartOffsetNotFound(t *testing.T) {
	layer := ellipsoid.NewLayer(0, 0.5, 0.5, 0, 1)

	y, ok := StartOffset(layer.Boundary, 1, layer.B)
	assert.False(t, ok)
	assert.Equal(t, search.Limit, y)
}

func TestPackLayerSkipsWhenNothingFits(t *testing.T) {
	layer := ellipsoid.NewLayer(3, 0.5, 0.5, 0, 1)

	packed := PackLayer(layer, ellipsoid.Coin{Radius: 1, Height: 1})
	assert.True(t, packed.Skipped)
	assert.Empty(t, packed.Circles)
	assert.Equal(t, 3, packed.Layer.Index)
}

func TestPackSingleCircle(t *testing.T) {
	// Room for exactly one coin on the axis.
	layer := ellipsoid.NewLayer(0, 1.6, 1.6, 0, 1)

	circles := Pack(layer.Boundary, 1, layer.B)
	require.Len(t, circles, 1)
	assert.Equal(t, float32(0), circles[0].Center.X)
}

func TestPackRowsAreHexagonal(t *testing.T) {
	layer := ellipsoid.NewLayer(0, 10, 10, 0, 1)
	circles := Pack(layer.Boundary, 1, layer.B)
	require.NotEmpty(t, circles)

	startY, ok := StartOffset(layer.Boundary, 1, layer.B)
	require.True(t, ok)

	for _, c := range circles {
		row := (c.Center.Y - startY) / RowSpacing(1)
		rounded := float32(int(row + 0.5))
		require.InDelta(t, rounded, row, 1e-3, "circle %v off the row grid", c)

		// Even rows hold even multiples of r, odd rows odd multiples.
		parity := int(rounded) % 2
		k := int(abs(c.Center.X) + 0.5)
		assert.Equal(t, parity, k%2, "circle %v has wrong stagger", c)
	}
}

func assertValidPacking(t *testing.T, boundary geometry.Loop, radius float32, circles []geometry.Circle) {
	t.Helper()

	for i, a := range circles {
		require.Equal(t, radius, a.Radius)
		require.True(t, a.InsideLoop(boundary), "circle %v not inside boundary", a)
		for _, b := range circles[i+1:] {
			require.False(t, a.Overlaps(b, 1e-3), "circles %v and %v overlap", a, b)
		}
	}

	centers := make(map[geometry.Point2]bool, len(circles))
	for _, c := range circles {
		centers[c.Center] = true
	}
	for _, c := range circles {
		if c.Center.X == 0 {
			continue
		}
		assert.True(t, centers[c.Mirror().Center], "circle %v has no mirror", c)
	}
}

func TestPackPropertiesOnEllipsoidLayers(t *testing.T) {
	e := ellipsoid.Ellipsoid{A: 150, B: 300, C: 150}
	coin := ellipsoid.Coin{Radius: 9.525, Height: 1.52}

	layers := e.Layers(coin.Height)
	require.NotEmpty(t, layers)

	// Equator, a mid-latitude layer and one near the pole.
	for _, idx := range []int{len(layers) / 2, len(layers) / 4, 3} {
		layer := layers[idx]
		packed := PackLayer(layer, coin)
		assertValidPacking(t, layer.Boundary, coin.Radius, packed.Circles)
	}

	equator := PackLayer(layers[len(layers)/2], coin)
	assert.False(t, equator.Skipped)
	assert.Greater(t, len(equator.Circles), 100)
}

func TestPackDeterministic(t *testing.T) {
	layer := ellipsoid.NewLayer(0, 80, 45, 0, 1)

	first := Pack(layer.Boundary, 4, layer.B)
	second := Pack(layer.Boundary, 4, layer.B)
	assert.Equal(t, first, second)
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func TestPackedLayerCoverage(t *testing.T) {
	coin := ellipsoid.Coin{Radius: 1, Height: 1}

	single := PackLayer(ellipsoid.NewLayer(0, 1.6, 1.6, 0, 1), coin)
	require.Len(t, single.Circles, 1)
	assert.InDelta(t, 1/2.56, single.Coverage(), 1e-5)

	full := PackLayer(ellipsoid.NewLayer(0, 10, 10, 0, 1), coin)
	assert.Greater(t, full.Coverage(), float32(0.5))
	assert.Less(t, full.Coverage(), float32(1))

	degenerate := PackedLayer{Layer: ellipsoid.NewLayer(0, 0, 5, 0, 1)}
	assert.Zero(t, degenerate.Coverage())
}

func TestAdvanceStopsWhenStepIsLost(t *testing.T) {
	c := geometry.NewCircle(1, 3, 0)
	require.True(t, advance(&c))
	assert.Equal(t, float32(5), c.Center.X)

	// float32 spacing at 2^26 is 8, so a step of 2 rounds away.
	far := geometry.NewCircle(1, 1<<26, 0)
	assert.False(t, advance(&far))
	assert.Equal(t, float32(1<<26), far.Center.X)
}
