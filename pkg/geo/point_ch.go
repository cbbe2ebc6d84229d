package geo

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/lintang-b-s/cyclenav/pkg/util"
)

// PointCh is a point of the Swiss planar coordinate system, always inside SwissBounds.
type PointCh struct {
	e float64
	n float64
}

func NewPointCh(e, n float64) (PointCh, error) {
	if !ContainsEN(e, n) {
		return PointCh{}, util.WrapErrorf(nil, util.ErrInvalidArgument, "point (%v, %v) is outside the swiss bounds", e, n)
	}
	return PointCh{e: e, n: n}, nil
}

// MustPointCh panics if (e, n) is outside the swiss bounds.
func MustPointCh(e, n float64) PointCh {
	p, err := NewPointCh(e, n)
	if err != nil {
		panic(err)
	}
	return p
}

func (p PointCh) E() float64 {
	return p.e
}

func (p PointCh) N() float64 {
	return p.n
}

func (p PointCh) R2() r2.Point {
	return r2.Point{X: p.e, Y: p.n}
}

func (p PointCh) SquaredDistanceTo(that PointCh) float64 {
	return SquaredNorm(that.e-p.e, that.n-p.n)
}

func (p PointCh) DistanceTo(that PointCh) float64 {
	return Norm(that.e-p.e, that.n-p.n)
}

// Lon. WGS84 longitude in radians.
func (p PointCh) Lon() float64 {
	return Ch1903Lon(p.e, p.n)
}

// Lat. WGS84 latitude in radians.
func (p PointCh) Lat() float64 {
	return Ch1903Lat(p.e, p.n)
}

// Lerp returns the point at fraction t of the segment p -> to. t is clamped to [0, 1] so the result stays in bounds.
func (p PointCh) Lerp(to PointCh, t float64) PointCh {
	t = util.Clamp(0, t, 1)
	return PointCh{
		e: util.Interpolate(p.e, to.e, t),
		n: util.Interpolate(p.n, to.n, t),
	}
}

func (p PointCh) Equal(that PointCh) bool {
	return p.e == that.e && p.n == that.n
}

func (p PointCh) String() string {
	return fmt.Sprintf("PointCh(%.3f, %.3f)", p.e, p.n)
}

// Coordinate. WGS84 coordinate in degrees.
func (p PointCh) Coordinate() Coordinate {
	return NewCoordinate(util.RadiansToDegree(p.Lat()), util.RadiansToDegree(p.Lon()))
}

// PointChFromLonLat. lon, lat in degrees.
func PointChFromLonLat(lonDeg, latDeg float64) (PointCh, error) {
	if math.IsNaN(lonDeg) || math.IsNaN(latDeg) {
		return PointCh{}, util.WrapErrorf(nil, util.ErrInvalidArgument, "coordinate is not a number")
	}
	lon, lat := util.DegreeToRadians(lonDeg), util.DegreeToRadians(latDeg)
	return NewPointCh(Ch1903E(lon, lat), Ch1903N(lon, lat))
}
