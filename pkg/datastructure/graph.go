package datastructure

import (
	"math"

	"github.com/lintang-b-s/cyclenav/pkg/geo"
	"github.com/lintang-b-s/cyclenav/pkg/util"
)

type Index uint32

const INVALID_VERTEX_ID Index = math.MaxUint32

// Graph is the immutable road network. all accessors fail with util.ErrOutOfRange on an invalid id.
// it is safe for concurrent use.
type Graph struct {
	nodes         GraphNodes
	sectors       GraphSectors
	edges         GraphEdges
	attributeSets []AttributeSet

	tables GraphTables
	closer func() error
}

// NewGraph checks the tables and builds the graph over them. the tables are not copied.
func NewGraph(tables GraphTables) (*Graph, error) {
	g := &Graph{
		nodes:   GraphNodes{buffer: tables.Nodes},
		sectors: GraphSectors{buffer: tables.Sectors},
		edges:   GraphEdges{edges: tables.Edges, profileIds: tables.ProfileIds, elevations: tables.Elevations},
		tables:  tables,
	}
	if err := g.validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Graph) Tables() GraphTables {
	return g.tables
}

// Close releases the memory mappings of a graph returned by LoadGraph. the graph must not be used afterwards.
func (g *Graph) Close() error {
	if g.closer == nil {
		return nil
	}
	closer := g.closer
	g.closer = nil
	return closer()
}

func (g *Graph) NodeCount() int {
	return g.nodes.Count()
}

func (g *Graph) EdgeCount() int {
	return g.edges.Count()
}

func (g *Graph) checkNode(nodeId Index) error {
	if int(nodeId) >= g.nodes.Count() {
		return util.WrapErrorf(nil, util.ErrOutOfRange, "node %d out of range [0, %d)", nodeId, g.nodes.Count())
	}
	return nil
}

func (g *Graph) checkEdge(edgeId Index) error {
	if int(edgeId) >= g.edges.Count() {
		return util.WrapErrorf(nil, util.ErrOutOfRange, "edge %d out of range [0, %d)", edgeId, g.edges.Count())
	}
	return nil
}

func (g *Graph) NodePoint(nodeId Index) (geo.PointCh, error) {
	if err := g.checkNode(nodeId); err != nil {
		return geo.PointCh{}, err
	}
	return geo.NewPointCh(g.nodes.E(nodeId), g.nodes.N(nodeId))
}

func (g *Graph) NodeOutDegree(nodeId Index) (int, error) {
	if err := g.checkNode(nodeId); err != nil {
		return 0, err
	}
	return g.nodes.OutDegree(nodeId), nil
}

// NodeOutEdgeId. id of the i-th outgoing edge of nodeId, 0 <= i < out degree.
func (g *Graph) NodeOutEdgeId(nodeId Index, i int) (Index, error) {
	if err := g.checkNode(nodeId); err != nil {
		return 0, err
	}
	if i < 0 || i >= g.nodes.OutDegree(nodeId) {
		return 0, util.WrapErrorf(nil, util.ErrOutOfRange, "edge index %d out of range [0, %d) for node %d", i,
			g.nodes.OutDegree(nodeId), nodeId)
	}
	return g.nodes.EdgeId(nodeId, i), nil
}

// NodeClosestTo. closest node at most searchDistance meters away from point. among nodes at the same distance
// the first one in sector scan order wins.
func (g *Graph) NodeClosestTo(point geo.PointCh, searchDistance float64) (Index, bool) {
	if !(searchDistance >= 0) {
		return INVALID_VERTEX_ID, false
	}
	closest := INVALID_VERTEX_ID
	minSquaredDistance := searchDistance * searchDistance
	found := false
	for _, sector := range g.sectors.SectorsInArea(point, searchDistance) {
		for nodeId := sector.StartNodeId; nodeId < sector.EndNodeId; nodeId++ {
			e, n := g.nodes.E(nodeId), g.nodes.N(nodeId)
			d := geo.SquaredNorm(e-point.E(), n-point.N())
			if d < minSquaredDistance || (!found && d == minSquaredDistance) {
				minSquaredDistance = d
				closest = nodeId
				found = true
			}
		}
	}
	return closest, found
}

func (g *Graph) SectorsInArea(center geo.PointCh, distance float64) []Sector {
	return g.sectors.SectorsInArea(center, distance)
}

func (g *Graph) EdgeTargetNodeId(edgeId Index) (Index, error) {
	if err := g.checkEdge(edgeId); err != nil {
		return 0, err
	}
	return g.edges.TargetNodeId(edgeId), nil
}

func (g *Graph) EdgeIsInverted(edgeId Index) (bool, error) {
	if err := g.checkEdge(edgeId); err != nil {
		return false, err
	}
	return g.edges.IsInverted(edgeId), nil
}

// EdgeLength. in meters.
func (g *Graph) EdgeLength(edgeId Index) (float64, error) {
	if err := g.checkEdge(edgeId); err != nil {
		return 0, err
	}
	return g.edges.Length(edgeId), nil
}

// EdgeElevationGain. positive elevation gain in meters.
func (g *Graph) EdgeElevationGain(edgeId Index) (float64, error) {
	if err := g.checkEdge(edgeId); err != nil {
		return 0, err
	}
	return g.edges.ElevationGain(edgeId), nil
}

func (g *Graph) EdgeAttributes(edgeId Index) (AttributeSet, error) {
	if err := g.checkEdge(edgeId); err != nil {
		return 0, err
	}
	return g.attributeSets[g.edges.AttributesIndex(edgeId)], nil
}

// EdgeProfileSamples. elevation samples of the edge in its direction, empty if the edge has no profile.
func (g *Graph) EdgeProfileSamples(edgeId Index) ([]float64, error) {
	if err := g.checkEdge(edgeId); err != nil {
		return nil, err
	}
	return g.edges.ProfileSamples(edgeId), nil
}

// EdgeProfile. elevation as a function of the position along the edge, NaN everywhere if the edge has no profile.
func (g *Graph) EdgeProfile(edgeId Index) (util.Function, error) {
	if err := g.checkEdge(edgeId); err != nil {
		return nil, err
	}
	samples := g.edges.ProfileSamples(edgeId)
	switch len(samples) {
	case 0:
		return util.ConstantFunction(math.NaN()), nil
	case 1:
		return util.ConstantFunction(samples[0]), nil
	}
	return util.SampledFunction(samples, g.edges.Length(edgeId))
}
