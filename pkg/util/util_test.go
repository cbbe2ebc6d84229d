package util

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapErrorfMatchesCodeAndOrig(t *testing.T) {
	orig := errors.New("short read")
	err := WrapErrorf(orig, ErrResource, "read %s", "nodes.bin")

	assert.True(t, errors.Is(err, ErrResource))
	assert.True(t, errors.Is(err, orig))
	assert.False(t, errors.Is(err, ErrOutOfRange))
	assert.Equal(t, "read nodes.bin: short read", err.Error())

	wrapped := fmt.Errorf("load graph: %w", err)
	assert.True(t, errors.Is(wrapped, ErrResource))

	var uerr *Error
	require.True(t, errors.As(wrapped, &uerr))
	assert.Equal(t, ErrResource, uerr.Code())
}

func TestCeilDiv(t *testing.T) {
	testCases := []struct {
		name string
		x, y int
		want int
	}{
		{name: "exact", x: 32, y: 32, want: 1},
		{name: "round up", x: 33, y: 32, want: 2},
		{name: "zero", x: 0, y: 7, want: 0},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CeilDiv(tt.x, tt.y)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := CeilDiv(-1, 2)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = CeilDiv(1, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 10, Clamp(0, 12, 10))
	assert.Equal(t, 0, Clamp(0, -2, 10))
	assert.Equal(t, 7, Clamp(0, 7, 10))
	assert.Equal(t, -1.0, Clamp(-1.0, -3.5, 1.0))
	assert.Equal(t, 1.0, Clamp(-1.0, math.Inf(1), 1.0))
}

func TestInterpolate(t *testing.T) {
	assert.Equal(t, 5.0, Interpolate(0, 10, 0.5))
	assert.Equal(t, 3.0, Interpolate(3, 9, 0))
	assert.Equal(t, 9.0, Interpolate(3, 9, 1))
}

func TestSampledFunction(t *testing.T) {
	f, err := SampledFunction([]float64{0, 10, 5}, 4)
	require.NoError(t, err)

	testCases := []struct {
		name string
		x    float64
		want float64
	}{
		{name: "start", x: 0, want: 0},
		{name: "first half", x: 1, want: 5},
		{name: "middle sample", x: 2, want: 10},
		{name: "second half", x: 3, want: 7.5},
		{name: "end", x: 4, want: 5},
		{name: "before start", x: -3, want: 0},
		{name: "after end", x: 100, want: 5},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, f(tt.x), 1e-12)
		})
	}

	_, err = SampledFunction([]float64{1}, 3)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = SampledFunction([]float64{1, 2}, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	assert.True(t, math.IsNaN(ConstantFunction(math.NaN())(12)))
}

func TestReverseGLeavesInputIntact(t *testing.T) {
	in := []int{1, 2, 3}
	assert.Equal(t, []int{3, 2, 1}, ReverseG(in))
	assert.Equal(t, []int{1, 2, 3}, in)
}
