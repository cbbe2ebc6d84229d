package route

import (
	"github.com/lintang-b-s/cyclenav/pkg/util"
	"gonum.org/v1/gonum/floats"
)

// ElevationProfile is the elevation along a route, sampled at evenly spaced positions over [0, length].
type ElevationProfile struct {
	length       float64
	samples      []float64
	elevation    util.Function
	minElevation float64
	maxElevation float64
	totalAscent  float64
	totalDescent float64
}

func NewElevationProfile(length float64, samples []float64) (*ElevationProfile, error) {
	if !(length > 0) {
		return nil, util.WrapErrorf(nil, util.ErrInvalidArgument, "elevation profile length must be > 0, got %v", length)
	}
	if len(samples) < 2 {
		return nil, util.WrapErrorf(nil, util.ErrInvalidArgument, "elevation profile needs at least 2 samples, got %d",
			len(samples))
	}
	copySamples := make([]float64, len(samples))
	copy(copySamples, samples)

	elevation, err := util.SampledFunction(copySamples, length)
	if err != nil {
		return nil, err
	}

	ascent, descent := 0.0, 0.0
	for i := 1; i < len(copySamples); i++ {
		diff := copySamples[i] - copySamples[i-1]
		if diff > 0 {
			ascent += diff
		} else {
			descent -= diff
		}
	}

	return &ElevationProfile{
		length:       length,
		samples:      copySamples,
		elevation:    elevation,
		minElevation: floats.Min(copySamples),
		maxElevation: floats.Max(copySamples),
		totalAscent:  ascent,
		totalDescent: descent,
	}, nil
}

func (ep *ElevationProfile) Length() float64 {
	return ep.length
}

func (ep *ElevationProfile) MinElevation() float64 {
	return ep.minElevation
}

func (ep *ElevationProfile) MaxElevation() float64 {
	return ep.maxElevation
}

func (ep *ElevationProfile) TotalAscent() float64 {
	return ep.totalAscent
}

func (ep *ElevationProfile) TotalDescent() float64 {
	return ep.totalDescent
}

// ElevationAt. elevation at position, the first or last sample outside of [0, length].
func (ep *ElevationProfile) ElevationAt(position float64) float64 {
	return ep.elevation(position)
}

func (ep *ElevationProfile) Samples() []float64 {
	samples := make([]float64, len(ep.samples))
	copy(samples, ep.samples)
	return samples
}
