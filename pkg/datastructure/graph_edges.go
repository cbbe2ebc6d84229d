package datastructure

import (
	"encoding/binary"

	"github.com/lintang-b-s/cyclenav/pkg/util"
)

// edge record: target node (int32, negative = inverted, target = ^value), length (uint16 Q28.4),
// elevation gain (uint16 Q28.4), attribute set index (uint16).
const (
	EDGE_OFFSET_TARGET    = 0
	EDGE_OFFSET_LENGTH    = EDGE_OFFSET_TARGET + 4
	EDGE_OFFSET_ELEVATION = EDGE_OFFSET_LENGTH + 2
	EDGE_OFFSET_ATTRS     = EDGE_OFFSET_ELEVATION + 2
	EDGE_BYTES            = EDGE_OFFSET_ATTRS + 2

	PROFILE_ID_BYTES    = 4
	ELEVATION_BYTES     = 2
	ATTRIBUTE_SET_BYTES = 8

	// profile id word: type in bits 30-31, first sample index in bits 0-29.
	PROFILE_TYPE_START   = 30
	PROFILE_TYPE_LENGTH  = 2
	PROFILE_INDEX_LENGTH = 30

	// profile samples are 2 meters apart.
	PROFILE_SAMPLE_SPACING = 2
)

type ProfileType uint8

const (
	PROFILE_NONE ProfileType = iota
	PROFILE_UNCOMPRESSED
	PROFILE_COMPRESSED_8
	PROFILE_COMPRESSED_4
)

// deltas per 16 bit word, and their width in bits.
func (pt ProfileType) deltasPerWord() int {
	switch pt {
	case PROFILE_COMPRESSED_8:
		return 2
	case PROFILE_COMPRESSED_4:
		return 4
	}
	return 1
}

func (pt ProfileType) deltaBits() int {
	return 16 / pt.deltasPerWord()
}

// wordCount. number of elevation words used by nbSamples samples.
func (pt ProfileType) wordCount(nbSamples int) int {
	if pt == PROFILE_NONE {
		return 0
	}
	if pt == PROFILE_UNCOMPRESSED {
		return nbSamples
	}
	perWord := pt.deltasPerWord()
	return 1 + (nbSamples-1+perWord-1)/perWord
}

type GraphEdges struct {
	edges      []byte
	profileIds []byte
	elevations []byte
}

func (ge GraphEdges) Count() int {
	return len(ge.edges) / EDGE_BYTES
}

func (ge GraphEdges) ElevationCount() int {
	return len(ge.elevations) / ELEVATION_BYTES
}

func (ge GraphEdges) targetWord(edgeId Index) int32 {
	i := int(edgeId)*EDGE_BYTES + EDGE_OFFSET_TARGET
	return int32(binary.BigEndian.Uint32(ge.edges[i:]))
}

func (ge GraphEdges) uint16At(edgeId Index, offset int) uint16 {
	i := int(edgeId)*EDGE_BYTES + offset
	return binary.BigEndian.Uint16(ge.edges[i:])
}

func (ge GraphEdges) IsInverted(edgeId Index) bool {
	return ge.targetWord(edgeId) < 0
}

func (ge GraphEdges) TargetNodeId(edgeId Index) Index {
	t := ge.targetWord(edgeId)
	if t < 0 {
		t = ^t
	}
	return Index(t)
}

func (ge GraphEdges) lengthQ28(edgeId Index) int32 {
	return int32(ge.uint16At(edgeId, EDGE_OFFSET_LENGTH))
}

func (ge GraphEdges) Length(edgeId Index) float64 {
	return util.Q28AsFloat64(ge.lengthQ28(edgeId))
}

func (ge GraphEdges) ElevationGain(edgeId Index) float64 {
	return util.Q28AsFloat64(int32(ge.uint16At(edgeId, EDGE_OFFSET_ELEVATION)))
}

func (ge GraphEdges) AttributesIndex(edgeId Index) int {
	return int(ge.uint16At(edgeId, EDGE_OFFSET_ATTRS))
}

func (ge GraphEdges) profileWord(edgeId Index) int32 {
	i := int(edgeId) * PROFILE_ID_BYTES
	return int32(binary.BigEndian.Uint32(ge.profileIds[i:]))
}

func (ge GraphEdges) ProfileType(edgeId Index) ProfileType {
	return ProfileType(util.MustExtractUnsigned(ge.profileWord(edgeId), PROFILE_TYPE_START, PROFILE_TYPE_LENGTH))
}

func (ge GraphEdges) firstSampleIndex(edgeId Index) int {
	return int(util.MustExtractUnsigned(ge.profileWord(edgeId), 0, PROFILE_INDEX_LENGTH))
}

// SampleCount. number of profile samples of an edge of the given Q28.4 length.
func SampleCount(lengthQ28 int32) int {
	n, _ := util.CeilDiv(int(lengthQ28), int(util.Q28OfInt(PROFILE_SAMPLE_SPACING)))
	return 1 + n
}

func (ge GraphEdges) elevationWord(i int) int32 {
	return int32(binary.BigEndian.Uint16(ge.elevations[i*ELEVATION_BYTES:]))
}

// ProfileSamples decodes the samples of the edge, in the edge direction. nil if the edge has no profile.
func (ge GraphEdges) ProfileSamples(edgeId Index) []float64 {
	profileType := ge.ProfileType(edgeId)
	if profileType == PROFILE_NONE {
		return nil
	}

	nbSamples := SampleCount(ge.lengthQ28(edgeId))
	first := ge.firstSampleIndex(edgeId)
	samples := make([]float64, nbSamples)
	samples[0] = util.Q28AsFloat64(ge.elevationWord(first))

	if profileType == PROFILE_UNCOMPRESSED {
		for i := 1; i < nbSamples; i++ {
			samples[i] = util.Q28AsFloat64(ge.elevationWord(first + i))
		}
	} else {
		perWord := profileType.deltasPerWord()
		bits := profileType.deltaBits()
		for i := 1; i < nbSamples; i++ {
			word := ge.elevationWord(first + 1 + (i-1)/perWord)
			// first delta of a word is in its most significant bits.
			start := bits * (perWord - 1 - (i-1)%perWord)
			delta := util.MustExtractSigned(word, start, bits)
			samples[i] = samples[i-1] + util.Q28AsFloat64(delta)
		}
	}

	if ge.IsInverted(edgeId) {
		for i, j := 0, len(samples)-1; i < j; i, j = i+1, j-1 {
			samples[i], samples[j] = samples[j], samples[i]
		}
	}
	return samples
}
