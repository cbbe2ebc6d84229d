package datastructure

import (
	"strings"

	"github.com/lintang-b-s/cyclenav/pkg/util"
	"github.com/paulmach/osm"
)

// AttributeSet is a bit set of attributes, bit i set iff Attribute(i) is present.
type AttributeSet uint64

func NewAttributeSet(bits uint64) (AttributeSet, error) {
	if AttributeCount < 64 && bits>>AttributeCount != 0 {
		return 0, util.WrapErrorf(nil, util.ErrInvalidArgument, "attribute set %#x has bits above attribute %d", bits, AttributeCount)
	}
	return AttributeSet(bits), nil
}

func AttributeSetOf(attributes ...Attribute) AttributeSet {
	var bits uint64
	for _, a := range attributes {
		bits |= 1 << a
	}
	return AttributeSet(bits)
}

// AttributeSetFromTags keeps the tags that are known attributes and ignores the rest.
func AttributeSetFromTags(tags osm.Tags) AttributeSet {
	var set AttributeSet
	for _, tag := range tags {
		if a, ok := AttributeOf(tag.Key, tag.Value); ok {
			set |= AttributeSetOf(a)
		}
	}
	return set
}

func (s AttributeSet) Bits() uint64 {
	return uint64(s)
}

func (s AttributeSet) Contains(a Attribute) bool {
	return s&(1<<a) != 0
}

func (s AttributeSet) Intersects(that AttributeSet) bool {
	return s&that != 0
}

func (s AttributeSet) Attributes() []Attribute {
	attributes := make([]Attribute, 0)
	for _, a := range AllAttributes() {
		if s.Contains(a) {
			attributes = append(attributes, a)
		}
	}
	return attributes
}

func (s AttributeSet) Tags() osm.Tags {
	attributes := s.Attributes()
	tags := make(osm.Tags, 0, len(attributes))
	for _, a := range attributes {
		tags = append(tags, a.Tag())
	}
	return tags
}

// String. "{highway=track,tracktype=grade1}"
func (s AttributeSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, a := range s.Attributes() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(a.KeyValue())
	}
	sb.WriteByte('}')
	return sb.String()
}
