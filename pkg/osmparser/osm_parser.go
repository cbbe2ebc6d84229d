package osmparser

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/lintang-b-s/cyclenav/pkg/datastructure"
	"github.com/lintang-b-s/cyclenav/pkg/geo"
	"github.com/lintang-b-s/cyclenav/pkg/util"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"go.uber.org/zap"
)

// highway values that are not (yet) roads.
var rejectedHighwayType = map[string]struct{}{
	"proposed":     {},
	"construction": {},
	"abandoned":    {},
	"disused":      {},
	"platform":     {},
	"raceway":      {},
	"bus_guideway": {},
	"elevator":     {},
	"corridor":     {},
	"services":     {},
	"rest_area":    {},
}

// longest edge whose length fits the 16 bit Q28.4 edge record.
var maxEdgeLength = util.Q28AsFloat64(0xFFFF)

type osmWay struct {
	nodes      []osm.NodeID
	attributes datastructure.AttributeSet
}

type ParseStats struct {
	Ways          int
	Nodes         int
	Edges         int
	SkippedEdges  int
	OutsideNodes  int
	IncompleteSegments  int
	AttributeSets int
}

// OsmParser turns the highways of an openstreetmap extract into graph tables. every way node becomes a graph node
// and every pair of consecutive way nodes two edges, one per direction. the edge against the way direction is
// inverted.
type OsmParser struct {
	ways        []osmWay
	wayNodeMap  map[osm.NodeID]struct{}
	nodeCoords  map[osm.NodeID]geo.PointCh
	outsideNode int
}

func NewOsmParser() *OsmParser {
	return &OsmParser{
		wayNodeMap: make(map[osm.NodeID]struct{}),
		nodeCoords: make(map[osm.NodeID]geo.PointCh),
	}
}

func acceptOsmWay(way *osm.Way) bool {
	if len(way.Nodes) < 2 {
		return false
	}
	highway := way.Tags.Find("highway")
	if highway == "" || way.Tags.Find("area") == "yes" {
		return false
	}
	_, rejected := rejectedHighwayType[highway]
	return !rejected
}

// Parse reads the pbf file in two passes, ways then the nodes they use, and builds the graph tables.
func (p *OsmParser) Parse(ctx context.Context, mapFile string, logger *zap.Logger) (datastructure.GraphTables,
	ParseStats, error) {
	f, err := os.Open(mapFile)
	if err != nil {
		return datastructure.GraphTables{}, ParseStats{}, util.WrapErrorf(err, util.ErrResource, "open %s", mapFile)
	}
	defer f.Close()

	scanner := osmpbf.New(ctx, f, 0)
	scanner.SkipNodes = true
	scanner.SkipRelations = true
	countWays := 0
	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok {
			continue
		}
		if p.processWay(way) {
			countWays++
			if countWays%100000 == 0 {
				logger.Sugar().Infof("scanning openstreetmap ways: %d...", countWays)
			}
		}
	}
	err = scanner.Err()
	scanner.Close()
	if err != nil {
		return datastructure.GraphTables{}, ParseStats{}, util.WrapErrorf(err, util.ErrResource, "scan ways of %s", mapFile)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return datastructure.GraphTables{}, ParseStats{}, util.WrapErrorf(err, util.ErrResource, "rewind %s", mapFile)
	}

	scanner = osmpbf.New(ctx, f, 0)
	scanner.SkipWays = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		if node, ok := scanner.Object().(*osm.Node); ok {
			p.processNode(node)
		}
	}
	err = scanner.Err()
	scanner.Close()
	if err != nil {
		return datastructure.GraphTables{}, ParseStats{}, util.WrapErrorf(err, util.ErrResource, "scan nodes of %s", mapFile)
	}

	tables, stats, err := p.BuildGraph()
	if err != nil {
		return tables, stats, err
	}
	logger.Info("openstreetmap extract parsed", zap.String("file", mapFile), zap.Int("ways", stats.Ways),
		zap.Int("nodes", stats.Nodes), zap.Int("edges", stats.Edges), zap.Int("skippedEdges", stats.SkippedEdges),
		zap.Int("outsideNodes", stats.OutsideNodes), zap.Int("attributeSets", stats.AttributeSets))
	return tables, stats, nil
}

// processWay keeps way if it is a highway and returns whether it was kept.
func (p *OsmParser) processWay(way *osm.Way) bool {
	if !acceptOsmWay(way) {
		return false
	}
	nodes := make([]osm.NodeID, len(way.Nodes))
	for i, wn := range way.Nodes {
		nodes[i] = wn.ID
		p.wayNodeMap[wn.ID] = struct{}{}
	}
	p.ways = append(p.ways, osmWay{nodes: nodes, attributes: datastructure.AttributeSetFromTags(way.Tags)})
	return true
}

// processNode records the swiss coordinates of a node used by a kept way.
func (p *OsmParser) processNode(node *osm.Node) {
	if _, ok := p.wayNodeMap[node.ID]; !ok {
		return
	}
	point, err := geo.PointChFromLonLat(node.Lon, node.Lat)
	if err != nil {
		p.outsideNode++
		return
	}
	p.nodeCoords[node.ID] = point
}

type segment struct {
	from, to   osm.NodeID
	attributes datastructure.AttributeSet
}

// BuildGraph numbers the nodes in sector order, then by openstreetmap id, and packs the graph tables.
func (p *OsmParser) BuildGraph() (datastructure.GraphTables, ParseStats, error) {
	stats := ParseStats{Ways: len(p.ways), OutsideNodes: p.outsideNode}

	segments := make([]segment, 0)
	used := make(map[osm.NodeID]struct{})
	for _, w := range p.ways {
		for i := 0; i+1 < len(w.nodes); i++ {
			from, to := w.nodes[i], w.nodes[i+1]
			_, fromOk := p.nodeCoords[from]
			_, toOk := p.nodeCoords[to]
			if !fromOk || !toOk {
				stats.IncompleteSegments++
				continue
			}
			if from == to {
				continue
			}
			segments = append(segments, segment{from: from, to: to, attributes: w.attributes})
			used[from] = struct{}{}
			used[to] = struct{}{}
		}
	}

	osmIds := make([]osm.NodeID, 0, len(used))
	sectorOf := make(map[osm.NodeID]int, len(used))
	for id := range used {
		osmIds = append(osmIds, id)
		sectorOf[id] = datastructure.SectorOf(p.nodeCoords[id])
	}
	sort.Slice(osmIds, func(i, j int) bool {
		si, sj := sectorOf[osmIds[i]], sectorOf[osmIds[j]]
		if si != sj {
			return si < sj
		}
		return osmIds[i] < osmIds[j]
	})

	builder := datastructure.NewGraphBuilder()
	nodeIDMap := make(map[osm.NodeID]datastructure.Index, len(osmIds))
	outDegree := make([]int, len(osmIds))
	for _, id := range osmIds {
		nodeIDMap[id] = builder.AddNode(p.nodeCoords[id])
	}
	stats.Nodes = len(osmIds)

	addEdge := func(from, to datastructure.Index, length float64, attributes datastructure.AttributeSet,
		inverted bool) error {
		if outDegree[from] == datastructure.MAX_OUT_DEGREE {
			stats.SkippedEdges++
			return nil
		}
		err := builder.AddEdge(from, to, datastructure.EdgeSpec{Length: length, Attributes: attributes,
			Inverted: inverted})
		if err != nil {
			return err
		}
		outDegree[from]++
		stats.Edges++
		return nil
	}

	for _, s := range segments {
		from, to := nodeIDMap[s.from], nodeIDMap[s.to]
		length := p.nodeCoords[s.from].DistanceTo(p.nodeCoords[s.to])
		if length > maxEdgeLength {
			stats.SkippedEdges += 2
			continue
		}
		if err := addEdge(from, to, length, s.attributes, false); err != nil {
			return datastructure.GraphTables{}, stats, err
		}
		if err := addEdge(to, from, length, s.attributes, true); err != nil {
			return datastructure.GraphTables{}, stats, err
		}
	}

	tables, err := builder.Build()
	if err != nil {
		return tables, stats, fmt.Errorf("build graph tables: %w", err)
	}
	stats.AttributeSets = len(tables.Attributes) / datastructure.ATTRIBUTE_SET_BYTES
	return tables, stats, nil
}
