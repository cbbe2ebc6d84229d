package datastructure

import (
	"encoding/binary"

	"github.com/lintang-b-s/cyclenav/pkg/geo"
	"github.com/lintang-b-s/cyclenav/pkg/util"
)

// EdgeSpec describes an edge added to a GraphBuilder. Profile holds the samples in the edge direction and must
// have SampleCount(Q28 length) values when ProfileType is not PROFILE_NONE.
type EdgeSpec struct {
	Length        float64
	ElevationGain float64
	Attributes    AttributeSet
	Inverted      bool
	ProfileType   ProfileType
	Profile       []float64
}

type builderEdge struct {
	to   Index
	spec EdgeSpec
}

// GraphBuilder packs nodes and edges into graph tables. nodes must be added in sector order, the outgoing edges
// of a node get consecutive ids in the order they are added.
type GraphBuilder struct {
	points   []geo.PointCh
	outEdges [][]builderEdge
}

func NewGraphBuilder() *GraphBuilder {
	return &GraphBuilder{}
}

func (b *GraphBuilder) AddNode(p geo.PointCh) Index {
	b.points = append(b.points, p)
	b.outEdges = append(b.outEdges, nil)
	return Index(len(b.points) - 1)
}

func (b *GraphBuilder) AddEdge(from, to Index, spec EdgeSpec) error {
	if int(from) >= len(b.points) || int(to) >= len(b.points) {
		return util.WrapErrorf(nil, util.ErrOutOfRange, "edge %d -> %d uses an unknown node", from, to)
	}
	if len(b.outEdges[from]) == MAX_OUT_DEGREE {
		return util.WrapErrorf(nil, util.ErrInvalidArgument, "node %d already has %d outgoing edges", from, MAX_OUT_DEGREE)
	}
	b.outEdges[from] = append(b.outEdges[from], builderEdge{to: to, spec: spec})
	return nil
}

// AddEdgeBetween adds an edge whose length is the straight line distance between its nodes.
func (b *GraphBuilder) AddEdgeBetween(from, to Index, attributes AttributeSet) error {
	if int(from) >= len(b.points) || int(to) >= len(b.points) {
		return util.WrapErrorf(nil, util.ErrOutOfRange, "edge %d -> %d uses an unknown node", from, to)
	}
	return b.AddEdge(from, to, EdgeSpec{Length: b.points[from].DistanceTo(b.points[to]), Attributes: attributes})
}

func (b *GraphBuilder) BuildGraph() (*Graph, error) {
	tables, err := b.Build()
	if err != nil {
		return nil, err
	}
	return NewGraph(tables)
}

func (b *GraphBuilder) Build() (GraphTables, error) {
	var tables GraphTables

	edgeCount := 0
	for _, out := range b.outEdges {
		edgeCount += len(out)
	}
	if edgeCount > MAX_EDGE_ID+1 {
		return tables, util.WrapErrorf(nil, util.ErrInvalidArgument, "too many edges: %d", edgeCount)
	}

	tables.Nodes = make([]byte, len(b.points)*NODE_BYTES)
	sectorCounts := make([]int, SECTOR_COUNT)
	lastSector := 0
	firstEdge := 0
	for v, p := range b.points {
		sector := SectorOf(p)
		if sector < lastSector {
			return tables, util.WrapErrorf(nil, util.ErrInvalidArgument, "node %d is in sector %d, after sector %d", v, sector, lastSector)
		}
		lastSector = sector
		sectorCounts[sector]++

		record := tables.Nodes[v*NODE_BYTES:]
		binary.BigEndian.PutUint32(record[NODE_OFFSET_E:], uint32(util.Q28OfFloat64(p.E())))
		binary.BigEndian.PutUint32(record[NODE_OFFSET_N:], uint32(util.Q28OfFloat64(p.N())))
		outEdges := uint32(len(b.outEdges[v]))<<NODE_OUT_DEGREE_START | uint32(firstEdge)
		binary.BigEndian.PutUint32(record[NODE_OFFSET_OUT_EDGES:], outEdges)
		firstEdge += len(b.outEdges[v])
	}

	tables.Sectors = make([]byte, SECTOR_COUNT*SECTOR_BYTES)
	start := 0
	for s, count := range sectorCounts {
		if count > 0xFFFF {
			return tables, util.WrapErrorf(nil, util.ErrInvalidArgument, "sector %d has %d nodes", s, count)
		}
		record := tables.Sectors[s*SECTOR_BYTES:]
		binary.BigEndian.PutUint32(record[SECTOR_OFFSET_FIRST_NODE:], uint32(start))
		binary.BigEndian.PutUint16(record[SECTOR_OFFSET_NODE_COUNT:], uint16(count))
		start += count
	}

	tables.Edges = make([]byte, edgeCount*EDGE_BYTES)
	tables.ProfileIds = make([]byte, edgeCount*PROFILE_ID_BYTES)
	var (
		elevations     []uint16
		attributeSets  []AttributeSet
		attributeIndex = make(map[AttributeSet]int)
	)
	edgeId := 0
	for from, out := range b.outEdges {
		for _, e := range out {
			lengthQ28 := util.Q28OfFloat64(e.spec.Length)
			gainQ28 := util.Q28OfFloat64(e.spec.ElevationGain)
			if lengthQ28 < 0 || lengthQ28 > 0xFFFF || gainQ28 < 0 || gainQ28 > 0xFFFF {
				return tables, util.WrapErrorf(nil, util.ErrInvalidArgument, "edge %d -> %d: length %v or gain %v out of range",
					from, e.to, e.spec.Length, e.spec.ElevationGain)
			}

			index, ok := attributeIndex[e.spec.Attributes]
			if !ok {
				if len(attributeSets) > 0xFFFF {
					return tables, util.WrapErrorf(nil, util.ErrInvalidArgument, "more than %d attribute sets", 0xFFFF+1)
				}
				index = len(attributeSets)
				attributeIndex[e.spec.Attributes] = index
				attributeSets = append(attributeSets, e.spec.Attributes)
			}

			target := int32(e.to)
			if e.spec.Inverted {
				target = ^target
			}
			record := tables.Edges[edgeId*EDGE_BYTES:]
			binary.BigEndian.PutUint32(record[EDGE_OFFSET_TARGET:], uint32(target))
			binary.BigEndian.PutUint16(record[EDGE_OFFSET_LENGTH:], uint16(lengthQ28))
			binary.BigEndian.PutUint16(record[EDGE_OFFSET_ELEVATION:], uint16(gainQ28))
			binary.BigEndian.PutUint16(record[EDGE_OFFSET_ATTRS:], uint16(index))

			profileId := uint32(0)
			if e.spec.ProfileType != PROFILE_NONE {
				words, err := encodeProfile(e.spec, lengthQ28)
				if err != nil {
					return tables, util.WrapErrorf(err, util.ErrInvalidArgument, "edge %d -> %d profile", from, e.to)
				}
				profileId = uint32(e.spec.ProfileType)<<PROFILE_TYPE_START | uint32(len(elevations))
				elevations = append(elevations, words...)
			}
			binary.BigEndian.PutUint32(tables.ProfileIds[edgeId*PROFILE_ID_BYTES:], profileId)
			edgeId++
		}
	}
	if len(elevations) >= 1<<PROFILE_INDEX_LENGTH {
		return tables, util.WrapErrorf(nil, util.ErrInvalidArgument, "too many elevation samples: %d", len(elevations))
	}

	tables.Elevations = make([]byte, len(elevations)*ELEVATION_BYTES)
	for i, w := range elevations {
		binary.BigEndian.PutUint16(tables.Elevations[i*ELEVATION_BYTES:], w)
	}
	tables.Attributes = make([]byte, len(attributeSets)*ATTRIBUTE_SET_BYTES)
	for i, set := range attributeSets {
		binary.BigEndian.PutUint64(tables.Attributes[i*ATTRIBUTE_SET_BYTES:], set.Bits())
	}
	return tables, nil
}

// encodeProfile packs the samples as stored: reversed for inverted edges, first sample raw then deltas.
func encodeProfile(spec EdgeSpec, lengthQ28 int32) ([]uint16, error) {
	nbSamples := SampleCount(lengthQ28)
	if len(spec.Profile) != nbSamples {
		return nil, util.WrapErrorf(nil, util.ErrInvalidArgument, "%d samples, want %d", len(spec.Profile), nbSamples)
	}
	samples := spec.Profile
	if spec.Inverted {
		samples = util.ReverseG(samples)
	}

	q := make([]int32, nbSamples)
	for i, s := range samples {
		q[i] = util.Q28OfFloat64(s)
		if q[i] < 0 || q[i] > 0xFFFF {
			return nil, util.WrapErrorf(nil, util.ErrInvalidArgument, "sample %v out of range", s)
		}
	}

	words := make([]uint16, spec.ProfileType.wordCount(nbSamples))
	words[0] = uint16(q[0])
	if spec.ProfileType == PROFILE_UNCOMPRESSED {
		for i := 1; i < nbSamples; i++ {
			words[i] = uint16(q[i])
		}
		return words, nil
	}

	perWord := spec.ProfileType.deltasPerWord()
	bits := spec.ProfileType.deltaBits()
	minDelta, maxDelta := -int32(1)<<(bits-1), int32(1)<<(bits-1)-1
	mask := uint16(1)<<bits - 1
	for i := 1; i < nbSamples; i++ {
		delta := q[i] - q[i-1]
		if delta < minDelta || delta > maxDelta {
			return nil, util.WrapErrorf(nil, util.ErrInvalidArgument, "delta %d does not fit %d bits", delta, bits)
		}
		start := bits * (perWord - 1 - (i-1)%perWord)
		words[1+(i-1)/perWord] |= (uint16(delta) & mask) << start
	}
	return words, nil
}
