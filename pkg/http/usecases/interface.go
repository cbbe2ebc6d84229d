package usecases

import (
	"context"

	"github.com/lintang-b-s/cyclenav/pkg/datastructure"
	"github.com/lintang-b-s/cyclenav/pkg/geo"
	"github.com/lintang-b-s/cyclenav/pkg/planner"
)

type Planner interface {
	NewWaypoint(point geo.PointCh) (planner.Waypoint, error)
	Plan(ctx context.Context, waypoints []planner.Waypoint) (*planner.Itinerary, bool, error)
}

type NodeLocator interface {
	NodeClosestTo(point geo.PointCh, searchDistance float64) (datastructure.Index, bool)
}

type Graph interface {
	NodePoint(nodeId datastructure.Index) (geo.PointCh, error)
}
