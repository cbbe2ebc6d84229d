package usecases

import (
	"errors"

	"github.com/lintang-b-s/cyclenav/pkg/geo"
	"github.com/lintang-b-s/cyclenav/pkg/planner"
	"github.com/lintang-b-s/cyclenav/pkg/util"
)

// pointFromCoordinate converts a wgs84 coordinate to swiss coordinates, failing outside of the swiss bounds.
func pointFromCoordinate(c geo.Coordinate) (geo.PointCh, error) {
	p, err := geo.PointChFromLonLat(c.GetLon(), c.GetLat())
	if err != nil {
		return geo.PointCh{}, util.WrapErrorf(err, util.ErrBadParamInput, "coordinate %f,%f is outside of the map",
			c.GetLat(), c.GetLon())
	}
	return p, nil
}

// snapWaypoints snaps every coordinate to its closest node.
func (rs *RoutingService) snapWaypoints(coords []geo.Coordinate) ([]planner.Waypoint, error) {
	waypoints := make([]planner.Waypoint, len(coords))
	for i, c := range coords {
		p, err := pointFromCoordinate(c)
		if err != nil {
			return nil, err
		}
		waypoints[i], err = rs.planner.NewWaypoint(p)
		if err != nil {
			if errors.Is(err, util.ErrNotFound) {
				return nil, util.WrapErrorf(err, util.ErrNotFound, "waypoint %d has no road nearby", i)
			}
			return nil, err
		}
	}
	return waypoints, nil
}
