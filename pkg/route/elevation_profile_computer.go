package route

import (
	"math"

	"github.com/lintang-b-s/cyclenav/pkg/util"
	"gonum.org/v1/gonum/floats"
)

// ComputeElevationProfile samples the elevation of r every maxStep meters at most. positions without elevation
// data take the value of the closest known sample at either end of the route and are interpolated linearly in
// between. a route without any elevation data gets a flat profile at 0.
func ComputeElevationProfile(r Route, maxStep float64) (*ElevationProfile, error) {
	if !(maxStep > 0) {
		return nil, util.WrapErrorf(nil, util.ErrInvalidArgument, "elevation step must be > 0, got %v", maxStep)
	}
	length := r.Length()
	if !(length > 0) {
		return nil, util.WrapErrorf(nil, util.ErrInvalidArgument, "cannot compute the profile of a route of length %v",
			length)
	}

	count := int(math.Ceil(length/maxStep)) + 1
	samples := floats.Span(make([]float64, count), 0, length)
	for i, position := range samples {
		samples[i] = r.ElevationAt(position)
	}
	fillMissingSamples(samples)

	return NewElevationProfile(length, samples)
}

// fillMissingSamples replaces the NaN samples in place.
func fillMissingSamples(samples []float64) {
	first, last := -1, -1
	for i, s := range samples {
		if !math.IsNaN(s) {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		for i := range samples {
			samples[i] = 0
		}
		return
	}

	for i := 0; i < first; i++ {
		samples[i] = samples[first]
	}
	for i := last + 1; i < len(samples); i++ {
		samples[i] = samples[last]
	}

	for i := first + 1; i < last; i++ {
		if !math.IsNaN(samples[i]) {
			continue
		}
		// samples[i-1] is known, find the next known sample.
		end := i
		for math.IsNaN(samples[end]) {
			end++
		}
		y0, y1 := samples[i-1], samples[end]
		gaps := float64(end - i + 1)
		for j := i; j < end; j++ {
			samples[j] = util.Interpolate(y0, y1, float64(j-i+1)/gaps)
		}
		i = end
	}
}
