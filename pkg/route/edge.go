package route

import (
	"github.com/lintang-b-s/cyclenav/pkg/datastructure"
	"github.com/lintang-b-s/cyclenav/pkg/geo"
	"github.com/lintang-b-s/cyclenav/pkg/util"
)

type EdgeSource interface {
	NodePoint(nodeId datastructure.Index) (geo.PointCh, error)
	EdgeLength(edgeId datastructure.Index) (float64, error)
	EdgeProfile(edgeId datastructure.Index) (util.Function, error)
}

// Edge is an edge of a route: a straight segment between two graph nodes with the elevation profile of the
// graph edge. the profile returns NaN everywhere when the graph edge has none.
type Edge struct {
	fromNodeId datastructure.Index
	toNodeId   datastructure.Index
	fromPoint  geo.PointCh
	toPoint    geo.PointCh
	length     float64
	profile    util.Function
}

func NewEdge(graph EdgeSource, edgeId, fromNodeId, toNodeId datastructure.Index) (Edge, error) {
	fromPoint, err := graph.NodePoint(fromNodeId)
	if err != nil {
		return Edge{}, err
	}
	toPoint, err := graph.NodePoint(toNodeId)
	if err != nil {
		return Edge{}, err
	}
	length, err := graph.EdgeLength(edgeId)
	if err != nil {
		return Edge{}, err
	}
	profile, err := graph.EdgeProfile(edgeId)
	if err != nil {
		return Edge{}, err
	}
	return MakeEdge(fromNodeId, toNodeId, fromPoint, toPoint, length, profile), nil
}

// MakeEdge builds an edge from its parts. a nil profile means the edge has no elevation data.
func MakeEdge(fromNodeId, toNodeId datastructure.Index, fromPoint, toPoint geo.PointCh, length float64,
	profile util.Function) Edge {
	if profile == nil {
		profile = util.ConstantFunction(nan)
	}
	return Edge{
		fromNodeId: fromNodeId,
		toNodeId:   toNodeId,
		fromPoint:  fromPoint,
		toPoint:    toPoint,
		length:     length,
		profile:    profile,
	}
}

func (e Edge) FromNodeId() datastructure.Index {
	return e.fromNodeId
}

func (e Edge) ToNodeId() datastructure.Index {
	return e.toNodeId
}

func (e Edge) FromPoint() geo.PointCh {
	return e.fromPoint
}

func (e Edge) ToPoint() geo.PointCh {
	return e.toPoint
}

func (e Edge) Length() float64 {
	return e.length
}

// PositionClosestTo. position along the edge line of the projection of point, may lie outside [0, length].
func (e Edge) PositionClosestTo(point geo.PointCh) float64 {
	if e.fromPoint.Equal(e.toPoint) {
		return 0
	}
	return geo.ProjectionLength(e.fromPoint.E(), e.fromPoint.N(), e.toPoint.E(), e.toPoint.N(), point.E(), point.N())
}

func (e Edge) PointAt(position float64) geo.PointCh {
	if e.length == 0 {
		return e.fromPoint
	}
	return e.fromPoint.Lerp(e.toPoint, position/e.length)
}

func (e Edge) ElevationAt(position float64) float64 {
	return e.profile(position)
}
