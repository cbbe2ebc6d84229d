package controllers

import (
	"context"

	"github.com/lintang-b-s/cyclenav/pkg/datastructure"
	"github.com/lintang-b-s/cyclenav/pkg/geo"
	"github.com/lintang-b-s/cyclenav/pkg/http/usecases"
	"github.com/lintang-b-s/cyclenav/pkg/planner"
)

type RoutingService interface {
	ComputeRoute(ctx context.Context, coords []geo.Coordinate) (*planner.Itinerary, error)
	NearestNode(coord geo.Coordinate, distance float64) (datastructure.Index, geo.PointCh, error)
	ClosestPoint(ctx context.Context, coords []geo.Coordinate, coord geo.Coordinate) (usecases.ClosestPoint, error)
}
