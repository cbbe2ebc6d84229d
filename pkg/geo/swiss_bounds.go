package geo

import (
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// Swiss bounds in the CH1903+ (LV95) planar system, in meters.
const (
	SWISS_MIN_E  = 2_485_000.0
	SWISS_MAX_E  = 2_834_000.0
	SWISS_MIN_N  = 1_075_000.0
	SWISS_MAX_N  = 1_296_000.0
	SWISS_WIDTH  = SWISS_MAX_E - SWISS_MIN_E
	SWISS_HEIGHT = SWISS_MAX_N - SWISS_MIN_N
)

// SwissBounds is the valid coordinate rectangle, x = east, y = north.
var SwissBounds = r2.Rect{
	X: r1.Interval{Lo: SWISS_MIN_E, Hi: SWISS_MAX_E},
	Y: r1.Interval{Lo: SWISS_MIN_N, Hi: SWISS_MAX_N},
}

// ContainsEN. bounds are inclusive.
func ContainsEN(e, n float64) bool {
	return SwissBounds.ContainsPoint(r2.Point{X: e, Y: n})
}
