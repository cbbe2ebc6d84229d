package route

import (
	"math"

	"github.com/lintang-b-s/cyclenav/pkg/geo"
)

var nan = math.NaN()

// RoutePoint is the point of a route closest to a reference point.
type RoutePoint struct {
	point               geo.PointCh
	position            float64
	distanceToReference float64
	none                bool
}

// NoneRoutePoint has no point, a NaN position and an infinite distance, so any real point is closer.
var NoneRoutePoint = RoutePoint{position: nan, distanceToReference: math.Inf(1), none: true}

func NewRoutePoint(point geo.PointCh, position, distanceToReference float64) RoutePoint {
	return RoutePoint{point: point, position: position, distanceToReference: distanceToReference}
}

func (rp RoutePoint) GetPoint() geo.PointCh {
	return rp.point
}

func (rp RoutePoint) GetPosition() float64 {
	return rp.position
}

func (rp RoutePoint) GetDistanceToReference() float64 {
	return rp.distanceToReference
}

func (rp RoutePoint) IsNone() bool {
	return rp.none
}

func (rp RoutePoint) WithPositionShiftedBy(positionDifference float64) RoutePoint {
	rp.position += positionDifference
	return rp
}

// Min keeps rp unless that is strictly closer to the reference.
func (rp RoutePoint) Min(that RoutePoint) RoutePoint {
	if rp.distanceToReference <= that.distanceToReference {
		return rp
	}
	return that
}

func (rp RoutePoint) MinWith(point geo.PointCh, position, distanceToReference float64) RoutePoint {
	if rp.distanceToReference <= distanceToReference {
		return rp
	}
	return NewRoutePoint(point, position, distanceToReference)
}
