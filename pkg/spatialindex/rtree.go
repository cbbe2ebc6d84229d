package spatialindex

import (
	"github.com/lintang-b-s/cyclenav/pkg/datastructure"
	"github.com/lintang-b-s/cyclenav/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

type NodePoints interface {
	NodeCount() int
	NodePoint(nodeId datastructure.Index) (geo.PointCh, error)
}

// NodeIndex is an r-tree over the graph nodes, keyed by their swiss coordinates.
type NodeIndex struct {
	tr *rtree.RTreeG[datastructure.Index]
}

func NewNodeIndex() *NodeIndex {
	var tr rtree.RTreeG[datastructure.Index]
	return &NodeIndex{
		tr: &tr,
	}
}

// Build inserts every node of graph as a point.
func (ni *NodeIndex) Build(graph NodePoints, log *zap.Logger) error {
	log.Info("Building R-tree node index...", zap.Int("nodes", graph.NodeCount()))
	for nodeId := datastructure.Index(0); int(nodeId) < graph.NodeCount(); nodeId++ {
		p, err := graph.NodePoint(nodeId)
		if err != nil {
			return err
		}
		en := [2]float64{p.E(), p.N()}
		ni.tr.Insert(en, en, nodeId)
	}
	log.Info("R-tree node index built.")
	return nil
}

func (ni *NodeIndex) Len() int {
	return ni.tr.Len()
}

// NodeClosestTo. closest node at most searchDistance meters away from point. node ids follow the sector order, so
// keeping the smallest id among nodes at the same distance gives the same node as the sector scan.
func (ni *NodeIndex) NodeClosestTo(point geo.PointCh, searchDistance float64) (datastructure.Index, bool) {
	if !(searchDistance >= 0) {
		return datastructure.INVALID_VERTEX_ID, false
	}
	closest := datastructure.INVALID_VERTEX_ID
	minSquaredDistance := searchDistance * searchDistance
	found := false

	lower := [2]float64{point.E() - searchDistance, point.N() - searchDistance}
	upper := [2]float64{point.E() + searchDistance, point.N() + searchDistance}
	ni.tr.Search(lower, upper, func(min, _ [2]float64, nodeId datastructure.Index) bool {
		d := geo.SquaredNorm(min[0]-point.E(), min[1]-point.N())
		if d < minSquaredDistance || (d == minSquaredDistance && (!found || nodeId < closest)) {
			minSquaredDistance = d
			closest = nodeId
			found = true
		}
		return true
	})
	return closest, found
}
