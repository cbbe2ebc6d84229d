package route

import (
	"sort"

	"github.com/lintang-b-s/cyclenav/pkg/datastructure"
	"github.com/lintang-b-s/cyclenav/pkg/geo"
	"github.com/lintang-b-s/cyclenav/pkg/util"
)

// SingleRoute is a route made of one segment.
type SingleRoute struct {
	edges []Edge
	// positions[i] is the position of the start of edges[i], positions[len(edges)] the route length.
	positions []float64
}

func NewSingleRoute(edges []Edge) (*SingleRoute, error) {
	if len(edges) == 0 {
		return nil, util.WrapErrorf(nil, util.ErrInvalidArgument, "a route needs at least one edge")
	}
	copyEdges := make([]Edge, len(edges))
	copy(copyEdges, edges)

	positions := make([]float64, len(edges)+1)
	for i, e := range copyEdges {
		positions[i+1] = positions[i] + e.Length()
	}
	return &SingleRoute{edges: copyEdges, positions: positions}, nil
}

func (r *SingleRoute) IndexOfSegmentAt(position float64) int {
	return 0
}

func (r *SingleRoute) Length() float64 {
	return r.positions[len(r.edges)]
}

func (r *SingleRoute) Edges() []Edge {
	edges := make([]Edge, len(r.edges))
	copy(edges, r.edges)
	return edges
}

func (r *SingleRoute) Points() []geo.PointCh {
	points := make([]geo.PointCh, 0, len(r.edges)+1)
	points = append(points, r.edges[0].FromPoint())
	for _, e := range r.edges {
		points = append(points, e.ToPoint())
	}
	return points
}

func (r *SingleRoute) PointAt(position float64) geo.PointCh {
	i, reduced := r.edgeAt(position)
	return r.edges[i].PointAt(reduced)
}

func (r *SingleRoute) ElevationAt(position float64) float64 {
	i, reduced := r.edgeAt(position)
	return r.edges[i].ElevationAt(reduced)
}

// NodeClosestTo. the from node of the edge at position, unless position is past the middle of that edge.
func (r *SingleRoute) NodeClosestTo(position float64) datastructure.Index {
	i, reduced := r.edgeAt(position)
	e := r.edges[i]
	if reduced <= e.Length()/2 {
		return e.FromNodeId()
	}
	return e.ToNodeId()
}

func (r *SingleRoute) PointClosestTo(point geo.PointCh) RoutePoint {
	closest := NoneRoutePoint
	for i, e := range r.edges {
		position := util.Clamp(0, e.PositionClosestTo(point), e.Length())
		onEdge := e.PointAt(position)
		closest = closest.MinWith(onEdge, position+r.positions[i], point.DistanceTo(onEdge))
	}
	return closest
}

// edgeAt clamps position and returns the index of the edge containing it with the position relative to that edge.
func (r *SingleRoute) edgeAt(position float64) (int, float64) {
	position = util.Clamp(0, position, r.Length())
	// last edge whose start is <= position
	i := sort.Search(len(r.edges), func(i int) bool {
		return r.positions[i] > position
	}) - 1
	if i < 0 {
		i = 0
	}
	return i, position - r.positions[i]
}
