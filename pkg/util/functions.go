package util

import "math"

// Function is a real function of one real variable.
type Function func(x float64) float64

func ConstantFunction(y float64) Function {
	return func(float64) float64 {
		return y
	}
}

// SampledFunction. piecewise linear function through len(samples) evenly spaced samples over [0, xMax].
// outside of [0, xMax] it takes the value of the closest end sample.
func SampledFunction(samples []float64, xMax float64) (Function, error) {
	if len(samples) < 2 {
		return nil, WrapErrorf(nil, ErrInvalidArgument, "sampled function needs at least 2 samples, got %d", len(samples))
	}
	if !(xMax > 0) {
		return nil, WrapErrorf(nil, ErrInvalidArgument, "sampled function needs xMax > 0, got %v", xMax)
	}

	copySamples := make([]float64, len(samples))
	copy(copySamples, samples)
	last := len(copySamples) - 1
	gap := xMax / float64(last)

	return func(x float64) float64 {
		if x >= xMax {
			return copySamples[last]
		}
		if x <= 0 {
			return copySamples[0]
		}
		pos := x / gap
		i := int(math.Floor(pos))
		if i >= last {
			return copySamples[last]
		}
		return Interpolate(copySamples[i], copySamples[i+1], pos-float64(i))
	}, nil
}
