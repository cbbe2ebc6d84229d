package usecases

import (
	"context"

	"github.com/lintang-b-s/cyclenav/pkg/datastructure"
	"github.com/lintang-b-s/cyclenav/pkg/geo"
	"github.com/lintang-b-s/cyclenav/pkg/planner"
	"github.com/lintang-b-s/cyclenav/pkg/route"
	"github.com/lintang-b-s/cyclenav/pkg/util"
	"go.uber.org/zap"
)

type RoutingService struct {
	log     *zap.Logger
	planner Planner
	locator NodeLocator
	graph   Graph
}

func NewRoutingService(log *zap.Logger, planner Planner, locator NodeLocator, graph Graph) *RoutingService {
	return &RoutingService{
		log:     log,
		planner: planner,
		locator: locator,
		graph:   graph,
	}
}

// ComputeRoute plans the itinerary through coords.
func (rs *RoutingService) ComputeRoute(ctx context.Context, coords []geo.Coordinate) (*planner.Itinerary, error) {
	waypoints, err := rs.snapWaypoints(coords)
	if err != nil {
		return nil, err
	}
	it, found, err := rs.planner.Plan(ctx, waypoints)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, util.WrapErrorf(nil, util.ErrNotFound, "no route found through %d waypoints", len(coords))
	}
	rs.log.Debug("route computed", zap.Int("waypoints", len(coords)),
		zap.Float64("length", it.GetRoute().Length()))
	return it, nil
}

// NearestNode. node closest to coord within distance meters, with its position.
func (rs *RoutingService) NearestNode(coord geo.Coordinate, distance float64) (datastructure.Index, geo.PointCh, error) {
	p, err := pointFromCoordinate(coord)
	if err != nil {
		return 0, geo.PointCh{}, err
	}
	nodeId, ok := rs.locator.NodeClosestTo(p, distance)
	if !ok {
		return 0, geo.PointCh{}, util.WrapErrorf(nil, util.ErrNotFound, "no node within %v m of %f,%f", distance,
			coord.GetLat(), coord.GetLon())
	}
	nodePoint, err := rs.graph.NodePoint(nodeId)
	if err != nil {
		return 0, geo.PointCh{}, err
	}
	return nodeId, nodePoint, nil
}

type ClosestPoint struct {
	RoutePoint   route.RoutePoint
	Elevation    float64
	SegmentIndex int
	NodeId       datastructure.Index
}

// ClosestPoint plans the itinerary through coords and returns its point closest to coord.
func (rs *RoutingService) ClosestPoint(ctx context.Context, coords []geo.Coordinate, coord geo.Coordinate) (
	ClosestPoint, error) {
	p, err := pointFromCoordinate(coord)
	if err != nil {
		return ClosestPoint{}, err
	}
	it, err := rs.ComputeRoute(ctx, coords)
	if err != nil {
		return ClosestPoint{}, err
	}
	rp, segment := it.PointClosestTo(p)
	return ClosestPoint{
		RoutePoint:   rp,
		Elevation:    it.GetElevationProfile().ElevationAt(rp.GetPosition()),
		SegmentIndex: segment,
		NodeId:       it.GetRoute().NodeClosestTo(rp.GetPosition()),
	}, nil
}
