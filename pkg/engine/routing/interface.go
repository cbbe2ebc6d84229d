package routing

import (
	"github.com/lintang-b-s/cyclenav/pkg/datastructure"
	"github.com/lintang-b-s/cyclenav/pkg/route"
)

type Graph interface {
	route.EdgeSource
	NodeCount() int
	NodeOutDegree(nodeId datastructure.Index) (int, error)
	NodeOutEdgeId(nodeId datastructure.Index, i int) (datastructure.Index, error)
	EdgeTargetNodeId(edgeId datastructure.Index) (datastructure.Index, error)
}

type CostFunction interface {
	CostFactor(nodeId, edgeId datastructure.Index) float64
}

type Router interface {
	BestRouteBetween(startNodeId, endNodeId datastructure.Index) (*route.SingleRoute, bool, error)
}

var _ route.EdgeSource = (*datastructure.Graph)(nil)
var _ Graph = (*datastructure.Graph)(nil)
