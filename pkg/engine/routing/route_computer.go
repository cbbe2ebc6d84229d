package routing

import (
	"math"

	da "github.com/lintang-b-s/cyclenav/pkg/datastructure"
	"github.com/lintang-b-s/cyclenav/pkg/route"
	"github.com/lintang-b-s/cyclenav/pkg/util"
)

// RouteComputer finds least cost routes with A*, using the straight line distance to the end node as heuristic.
// cost factors must be >= 1 for that heuristic to be admissible.
type RouteComputer struct {
	graph        Graph
	costFunction CostFunction
}

func NewRouteComputer(graph Graph, costFunction CostFunction) *RouteComputer {
	return &RouteComputer{graph: graph, costFunction: costFunction}
}

// settled marks a node whose distance is final.
var settled = math.Inf(-1)

// BestRouteBetween. least cost route from startNodeId to endNodeId. returns false without error when endNodeId
// cannot be reached.
func (rc *RouteComputer) BestRouteBetween(startNodeId, endNodeId da.Index) (*route.SingleRoute, bool, error) {
	if startNodeId == endNodeId {
		return nil, false, util.WrapErrorf(nil, util.ErrInvalidArgument, "start and end node are the same: %d",
			startNodeId)
	}
	nodeCount := rc.graph.NodeCount()
	if int(startNodeId) >= nodeCount || int(endNodeId) >= nodeCount {
		return nil, false, util.WrapErrorf(nil, util.ErrOutOfRange, "node id out of range [0, %d): %d -> %d",
			nodeCount, startNodeId, endNodeId)
	}
	endPoint, err := rc.graph.NodePoint(endNodeId)
	if err != nil {
		return nil, false, err
	}

	dist := make([]float64, nodeCount)
	pred := make([]da.Index, nodeCount)
	for i := range dist {
		dist[i] = math.Inf(1)
		pred[i] = da.INVALID_VERTEX_ID
	}

	pq := da.NewBinaryHeap[da.Index]()
	dist[startNodeId] = 0
	pq.Insert(da.NewPriorityQueueNode(0, startNodeId))

	for !pq.IsEmpty() {
		top, err := pq.ExtractMin()
		if err != nil {
			return nil, false, err
		}
		u := top.GetItem()
		uDist := dist[u]
		if uDist == settled {
			// stale entry
			continue
		}
		if u == endNodeId {
			r, err := rc.buildRoute(pred, startNodeId, endNodeId)
			if err != nil {
				return nil, false, err
			}
			return r, true, nil
		}
		dist[u] = settled

		outDegree, err := rc.graph.NodeOutDegree(u)
		if err != nil {
			return nil, false, err
		}
		for i := 0; i < outDegree; i++ {
			edgeId, err := rc.graph.NodeOutEdgeId(u, i)
			if err != nil {
				return nil, false, err
			}
			v, err := rc.graph.EdgeTargetNodeId(edgeId)
			if err != nil {
				return nil, false, err
			}
			if dist[v] == settled {
				continue
			}
			length, err := rc.graph.EdgeLength(edgeId)
			if err != nil {
				return nil, false, err
			}

			newDist := uDist + rc.costFunction.CostFactor(u, edgeId)*length
			if newDist < dist[v] {
				vPoint, err := rc.graph.NodePoint(v)
				if err != nil {
					return nil, false, err
				}
				dist[v] = newDist
				pred[v] = u
				pq.Insert(da.NewPriorityQueueNode(newDist+vPoint.DistanceTo(endPoint), v))
			}
		}
	}
	return nil, false, nil
}

// buildRoute walks the predecessors back from endNodeId. between two nodes the first outgoing edge reaching the
// next node is used.
func (rc *RouteComputer) buildRoute(pred []da.Index, startNodeId, endNodeId da.Index) (*route.SingleRoute, error) {
	edges := make([]route.Edge, 0)
	for v := endNodeId; v != startNodeId; v = pred[v] {
		u := pred[v]
		edgeId, err := rc.edgeBetween(u, v)
		if err != nil {
			return nil, err
		}
		e, err := route.NewEdge(rc.graph, edgeId, u, v)
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}
	return route.NewSingleRoute(util.ReverseG(edges))
}

func (rc *RouteComputer) edgeBetween(u, v da.Index) (da.Index, error) {
	outDegree, err := rc.graph.NodeOutDegree(u)
	if err != nil {
		return 0, err
	}
	for i := 0; i < outDegree; i++ {
		edgeId, err := rc.graph.NodeOutEdgeId(u, i)
		if err != nil {
			return 0, err
		}
		target, err := rc.graph.EdgeTargetNodeId(edgeId)
		if err != nil {
			return 0, err
		}
		if target == v {
			return edgeId, nil
		}
	}
	return 0, util.WrapErrorf(nil, util.ErrOutOfRange, "no edge from node %d to node %d", u, v)
}
