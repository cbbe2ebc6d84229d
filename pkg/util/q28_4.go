package util

import "math"

// Q28.4 fixed point: 28 integer bits and 4 fractional bits.
const q28FractionalBits = 4

var q28Scale = math.Ldexp(1, -q28FractionalBits)

func Q28OfInt(i int32) int32 {
	return i << q28FractionalBits
}

func Q28AsFloat64(q28 int32) float64 {
	return float64(q28) * q28Scale
}

func Q28AsFloat32(q28 int32) float32 {
	return float32(Q28AsFloat64(q28))
}

// Q28OfFloat64 rounds v to the nearest Q28.4 value.
func Q28OfFloat64(v float64) int32 {
	return int32(math.Round(math.Ldexp(v, q28FractionalBits)))
}
