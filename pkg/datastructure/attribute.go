package datastructure

import "github.com/paulmach/osm"

// Attribute is an OpenStreetMap key=value tag kept on edges. the ordinal of each attribute is its bit
// in AttributeSet, so the order below is part of the attributes.bin format.
type Attribute uint8

const (
	HIGHWAY_SERVICE Attribute = iota
	HIGHWAY_TRACK
	HIGHWAY_RESIDENTIAL
	HIGHWAY_FOOTWAY
	HIGHWAY_PATH
	HIGHWAY_UNCLASSIFIED
	HIGHWAY_TERTIARY
	HIGHWAY_SECONDARY
	HIGHWAY_STEPS
	HIGHWAY_PRIMARY
	HIGHWAY_CYCLEWAY
	HIGHWAY_MOTORWAY
	HIGHWAY_TRUNK
	HIGHWAY_LIVING_STREET
	HIGHWAY_MOTORWAY_LINK
	HIGHWAY_PEDESTRIAN
	HIGHWAY_TRUNK_LINK
	HIGHWAY_PRIMARY_LINK
	HIGHWAY_SECONDARY_LINK
	HIGHWAY_TERTIARY_LINK
	HIGHWAY_BRIDLEWAY
	HIGHWAY_CONSTRUCTION
	HIGHWAY_ROAD

	TRACKTYPE_GRADE1
	TRACKTYPE_GRADE2
	TRACKTYPE_GRADE3
	TRACKTYPE_GRADE4
	TRACKTYPE_GRADE5

	SURFACE_ASPHALT
	SURFACE_UNPAVED
	SURFACE_GRAVEL
	SURFACE_PAVED
	SURFACE_GROUND
	SURFACE_CONCRETE
	SURFACE_PAVING_STONES
	SURFACE_GRASS
	SURFACE_DIRT
	SURFACE_FINE_GRAVEL
	SURFACE_SETT
	SURFACE_COMPACTED
	SURFACE_COBBLESTONE

	ONEWAY_YES
	ONEWAY_M1
	ONEWAY_BICYCLE_YES
	ONEWAY_BICYCLE_NO

	VEHICLE_NO
	VEHICLE_PRIVATE
	ACCESS_NO
	ACCESS_PRIVATE

	BICYCLE_YES
	BICYCLE_NO
	BICYCLE_DESIGNATED
	BICYCLE_DISMOUNT
	BICYCLE_USE_SIDEPATH
	BICYCLE_PERMISSIVE
	BICYCLE_PRIVATE

	CYCLEWAY_OPPOSITE
	CYCLEWAY_OPPOSITE_LANE
	CYCLEWAY_OPPOSITE_TRACK

	LCN_YES
	RCN_YES
	NCN_YES

	attributeCount
)

const AttributeCount = int(attributeCount)

var attributeTags = [AttributeCount]osm.Tag{
	{Key: "highway", Value: "service"},
	{Key: "highway", Value: "track"},
	{Key: "highway", Value: "residential"},
	{Key: "highway", Value: "footway"},
	{Key: "highway", Value: "path"},
	{Key: "highway", Value: "unclassified"},
	{Key: "highway", Value: "tertiary"},
	{Key: "highway", Value: "secondary"},
	{Key: "highway", Value: "steps"},
	{Key: "highway", Value: "primary"},
	{Key: "highway", Value: "cycleway"},
	{Key: "highway", Value: "motorway"},
	{Key: "highway", Value: "trunk"},
	{Key: "highway", Value: "living_street"},
	{Key: "highway", Value: "motorway_link"},
	{Key: "highway", Value: "pedestrian"},
	{Key: "highway", Value: "trunk_link"},
	{Key: "highway", Value: "primary_link"},
	{Key: "highway", Value: "secondary_link"},
	{Key: "highway", Value: "tertiary_link"},
	{Key: "highway", Value: "bridleway"},
	{Key: "highway", Value: "construction"},
	{Key: "highway", Value: "road"},

	{Key: "tracktype", Value: "grade1"},
	{Key: "tracktype", Value: "grade2"},
	{Key: "tracktype", Value: "grade3"},
	{Key: "tracktype", Value: "grade4"},
	{Key: "tracktype", Value: "grade5"},

	{Key: "surface", Value: "asphalt"},
	{Key: "surface", Value: "unpaved"},
	{Key: "surface", Value: "gravel"},
	{Key: "surface", Value: "paved"},
	{Key: "surface", Value: "ground"},
	{Key: "surface", Value: "concrete"},
	{Key: "surface", Value: "paving_stones"},
	{Key: "surface", Value: "grass"},
	{Key: "surface", Value: "dirt"},
	{Key: "surface", Value: "fine_gravel"},
	{Key: "surface", Value: "sett"},
	{Key: "surface", Value: "compacted"},
	{Key: "surface", Value: "cobblestone"},

	{Key: "oneway", Value: "yes"},
	{Key: "oneway", Value: "-1"},
	{Key: "oneway:bicycle", Value: "yes"},
	{Key: "oneway:bicycle", Value: "no"},

	{Key: "vehicle", Value: "no"},
	{Key: "vehicle", Value: "private"},
	{Key: "access", Value: "no"},
	{Key: "access", Value: "private"},

	{Key: "bicycle", Value: "yes"},
	{Key: "bicycle", Value: "no"},
	{Key: "bicycle", Value: "designated"},
	{Key: "bicycle", Value: "dismount"},
	{Key: "bicycle", Value: "use_sidepath"},
	{Key: "bicycle", Value: "permissive"},
	{Key: "bicycle", Value: "private"},

	{Key: "cycleway", Value: "opposite"},
	{Key: "cycleway", Value: "opposite_lane"},
	{Key: "cycleway", Value: "opposite_track"},

	{Key: "lcn", Value: "yes"},
	{Key: "rcn", Value: "yes"},
	{Key: "ncn", Value: "yes"},
}

var attributeByKeyValue = func() map[string]Attribute {
	m := make(map[string]Attribute, AttributeCount)
	for i, tag := range attributeTags {
		m[tag.Key+"="+tag.Value] = Attribute(i)
	}
	return m
}()

func AllAttributes() []Attribute {
	all := make([]Attribute, AttributeCount)
	for i := range all {
		all[i] = Attribute(i)
	}
	return all
}

// AttributeOf looks an attribute up by osm key and value.
func AttributeOf(key, value string) (Attribute, bool) {
	a, ok := attributeByKeyValue[key+"="+value]
	return a, ok
}

func (a Attribute) Tag() osm.Tag {
	return attributeTags[a]
}

func (a Attribute) Key() string {
	return attributeTags[a].Key
}

func (a Attribute) Value() string {
	return attributeTags[a].Value
}

func (a Attribute) KeyValue() string {
	return a.Key() + "=" + a.Value()
}

func (a Attribute) String() string {
	return a.KeyValue()
}
