package analysis

import (
	"github.com/philipparndt/coinpack/pkg/ellipsoid"
	"github.com/philipparndt/coinpack/pkg/packing"
)

// PackingSummary describes how much of an ellipsoid a packing run filled.
type PackingSummary struct {
	Layers          int
	SkippedLayers   int
	Circles         int
	CoinVolume      float64
	EllipsoidVolume float64
	// FillPercent is the share of the ellipsoid volume occupied by coins.
	FillPercent float64
}

// Summarize computes the run summary for a set of packed layers.
func Summarize(e ellipsoid.Ellipsoid, coin ellipsoid.Coin, layers []packing.PackedLayer) PackingSummary {
	s := PackingSummary{
		Layers:          len(layers),
		CoinVolume:      float64(coin.Volume()),
		EllipsoidVolume: float64(e.Volume()),
	}

	for _, l := range layers {
		if l.Skipped {
			s.SkippedLayers++
		}
		s.Circles += len(l.Circles)
	}

	if s.EllipsoidVolume > 0 {
		s.FillPercent = float64(s.Circles) * s.CoinVolume / s.EllipsoidVolume * 100
	}
	return s
}
