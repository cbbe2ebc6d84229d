package planner

import (
	"github.com/lintang-b-s/cyclenav/pkg/geo"
	"github.com/lintang-b-s/cyclenav/pkg/route"
)

// Itinerary is the planned route through a list of waypoints.
type Itinerary struct {
	waypoints []Waypoint
	route     *route.MultiRoute
	profile   *route.ElevationProfile
}

func (it *Itinerary) GetWaypoints() []Waypoint {
	waypoints := make([]Waypoint, len(it.waypoints))
	copy(waypoints, it.waypoints)
	return waypoints
}

func (it *Itinerary) GetRoute() *route.MultiRoute {
	return it.route
}

func (it *Itinerary) GetElevationProfile() *route.ElevationProfile {
	return it.profile
}

// SegmentLengths. length of the route between each pair of consecutive waypoints, 0 for pairs on the same node.
func (it *Itinerary) SegmentLengths() []float64 {
	if len(it.waypoints) < 2 {
		return nil
	}
	lengths := make([]float64, len(it.waypoints)-1)
	segments := it.route.Segments()
	s := 0
	for i := range lengths {
		if it.waypoints[i].nodeId == it.waypoints[i+1].nodeId {
			continue
		}
		lengths[i] = segments[s].Length()
		s++
	}
	return lengths
}

// PointClosestTo. point of the route closest to point, with the index of the waypoint pair it lies between.
func (it *Itinerary) PointClosestTo(point geo.PointCh) (route.RoutePoint, int) {
	rp := it.route.PointClosestTo(point)
	return rp, IndexOfNonEmptySegmentAt(it.waypoints, it.route, rp.GetPosition())
}
