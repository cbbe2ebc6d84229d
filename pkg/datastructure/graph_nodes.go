package datastructure

import (
	"encoding/binary"

	"github.com/lintang-b-s/cyclenav/pkg/util"
)

// node record: e (Q28.4), n (Q28.4), out edges (out degree in bits 28-31, first edge id in bits 0-27).
const (
	NODE_OFFSET_E         = 0
	NODE_OFFSET_N         = NODE_OFFSET_E + 4
	NODE_OFFSET_OUT_EDGES = NODE_OFFSET_N + 4
	NODE_BYTES            = NODE_OFFSET_OUT_EDGES + 4

	NODE_OUT_DEGREE_START  = 28
	NODE_OUT_DEGREE_LENGTH = 4
	NODE_FIRST_EDGE_LENGTH = 28
	MAX_OUT_DEGREE         = 1<<NODE_OUT_DEGREE_LENGTH - 1
	MAX_EDGE_ID            = 1<<NODE_FIRST_EDGE_LENGTH - 1
)

// GraphNodes reads node records. ids are not checked here, Graph does it.
type GraphNodes struct {
	buffer []byte
}

func (gn GraphNodes) Count() int {
	return len(gn.buffer) / NODE_BYTES
}

func (gn GraphNodes) word(nodeId Index, offset int) int32 {
	i := int(nodeId)*NODE_BYTES + offset
	return int32(binary.BigEndian.Uint32(gn.buffer[i : i+4]))
}

func (gn GraphNodes) E(nodeId Index) float64 {
	return util.Q28AsFloat64(gn.word(nodeId, NODE_OFFSET_E))
}

func (gn GraphNodes) N(nodeId Index) float64 {
	return util.Q28AsFloat64(gn.word(nodeId, NODE_OFFSET_N))
}

func (gn GraphNodes) OutDegree(nodeId Index) int {
	return int(util.MustExtractUnsigned(gn.word(nodeId, NODE_OFFSET_OUT_EDGES), NODE_OUT_DEGREE_START, NODE_OUT_DEGREE_LENGTH))
}

func (gn GraphNodes) firstEdgeId(nodeId Index) Index {
	return Index(util.MustExtractUnsigned(gn.word(nodeId, NODE_OFFSET_OUT_EDGES), 0, NODE_FIRST_EDGE_LENGTH))
}

func (gn GraphNodes) EdgeId(nodeId Index, i int) Index {
	return gn.firstEdgeId(nodeId) + Index(i)
}
