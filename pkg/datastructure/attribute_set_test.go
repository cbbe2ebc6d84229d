package datastructure

import (
	"testing"

	"github.com/lintang-b-s/cyclenav/pkg/util"
	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeTable(t *testing.T) {
	assert.Equal(t, 62, AttributeCount)
	assert.Equal(t, "highway=service", HIGHWAY_SERVICE.KeyValue())
	assert.Equal(t, "oneway:bicycle", ONEWAY_BICYCLE_NO.Key())
	assert.Equal(t, "-1", ONEWAY_M1.Value())
	assert.Equal(t, osm.Tag{Key: "ncn", Value: "yes"}, NCN_YES.Tag())

	for _, a := range AllAttributes() {
		got, ok := AttributeOf(a.Key(), a.Value())
		require.True(t, ok, a.KeyValue())
		assert.Equal(t, a, got)
	}
	_, ok := AttributeOf("highway", "motorroad")
	assert.False(t, ok)
}

func TestNewAttributeSet(t *testing.T) {
	set, err := NewAttributeSet(1<<61 | 1)
	require.NoError(t, err)
	assert.True(t, set.Contains(NCN_YES))
	assert.True(t, set.Contains(HIGHWAY_SERVICE))

	_, err = NewAttributeSet(1 << 62)
	assert.ErrorIs(t, err, util.ErrInvalidArgument)
}

func TestAttributeSetOperations(t *testing.T) {
	testCases := []struct {
		name           string
		set            AttributeSet
		other          AttributeSet
		wantIntersects bool
		wantString     string
	}{
		{
			name:           "shared attribute",
			set:            AttributeSetOf(TRACKTYPE_GRADE1, HIGHWAY_TRACK),
			other:          AttributeSetOf(HIGHWAY_TRACK, SURFACE_GRAVEL),
			wantIntersects: true,
			wantString:     "{highway=track,tracktype=grade1}",
		},
		{
			name:       "disjoint",
			set:        AttributeSetOf(BICYCLE_DESIGNATED),
			other:      AttributeSetOf(BICYCLE_NO, BICYCLE_PRIVATE),
			wantString: "{bicycle=designated}",
		},
		{
			name:       "empty",
			set:        AttributeSetOf(),
			other:      AttributeSetOf(HIGHWAY_PATH),
			wantString: "{}",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantIntersects, tt.set.Intersects(tt.other))
			assert.Equal(t, tt.wantIntersects, tt.other.Intersects(tt.set))
			assert.Equal(t, tt.wantString, tt.set.String())
		})
	}
}

func TestAttributeSetTags(t *testing.T) {
	tags := osm.Tags{
		{Key: "highway", Value: "cycleway"},
		{Key: "surface", Value: "asphalt"},
		{Key: "name", Value: "Aareweg"},
	}
	set := AttributeSetFromTags(tags)
	assert.Equal(t, AttributeSetOf(HIGHWAY_CYCLEWAY, SURFACE_ASPHALT), set)
	assert.Equal(t, tags[:2], set.Tags())
}
