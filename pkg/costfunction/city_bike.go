package costfunction

import (
	"math"

	da "github.com/lintang-b-s/cyclenav/pkg/datastructure"
)

var (
	bicycleForbidden   = da.AttributeSetOf(da.BICYCLE_NO, da.BICYCLE_PRIVATE, da.BICYCLE_USE_SIDEPATH)
	bicycleAllowed     = da.AttributeSetOf(da.BICYCLE_YES, da.BICYCLE_DESIGNATED, da.BICYCLE_PERMISSIVE)
	accessForbidden    = da.AttributeSetOf(da.ACCESS_NO, da.ACCESS_PRIVATE, da.VEHICLE_NO, da.VEHICLE_PRIVATE)
	motorRoads         = da.AttributeSetOf(da.HIGHWAY_MOTORWAY, da.HIGHWAY_MOTORWAY_LINK, da.HIGHWAY_CONSTRUCTION)
	cycleRoutes        = da.AttributeSetOf(da.LCN_YES, da.RCN_YES, da.NCN_YES)
	contraflowCycleway = da.AttributeSetOf(da.CYCLEWAY_OPPOSITE, da.CYCLEWAY_OPPOSITE_LANE, da.CYCLEWAY_OPPOSITE_TRACK,
		da.ONEWAY_BICYCLE_NO)
	roughSurfaces = da.AttributeSetOf(da.SURFACE_UNPAVED, da.SURFACE_GRAVEL, da.SURFACE_GROUND, da.SURFACE_DIRT,
		da.SURFACE_GRASS, da.SURFACE_FINE_GRAVEL, da.SURFACE_COMPACTED)
	bumpySurfaces = da.AttributeSetOf(da.SURFACE_SETT, da.SURFACE_COBBLESTONE, da.SURFACE_PAVING_STONES)
)

type attributeFactor struct {
	attribute da.Attribute
	factor    float64
}

// checked in order, the first attribute present gives the factor.
var highwayFactors = []attributeFactor{
	{da.HIGHWAY_CYCLEWAY, 1.0},
	{da.HIGHWAY_LIVING_STREET, 1.1},
	{da.HIGHWAY_RESIDENTIAL, 1.2},
	{da.HIGHWAY_SERVICE, 1.3},
	{da.HIGHWAY_UNCLASSIFIED, 1.3},
	{da.HIGHWAY_ROAD, 1.4},
	{da.HIGHWAY_TERTIARY, 1.5},
	{da.HIGHWAY_TERTIARY_LINK, 1.5},
	{da.HIGHWAY_SECONDARY, 2.0},
	{da.HIGHWAY_SECONDARY_LINK, 2.0},
	{da.HIGHWAY_PRIMARY, 3.0},
	{da.HIGHWAY_PRIMARY_LINK, 3.0},
	{da.HIGHWAY_TRUNK, 5.0},
	{da.HIGHWAY_TRUNK_LINK, 5.0},
	{da.HIGHWAY_PATH, 2.0},
	{da.HIGHWAY_FOOTWAY, 3.0},
	{da.HIGHWAY_PEDESTRIAN, 3.0},
	{da.HIGHWAY_BRIDLEWAY, 3.0},
	{da.HIGHWAY_STEPS, 8.0},
}

var trackFactors = []attributeFactor{
	{da.TRACKTYPE_GRADE1, 1.2},
	{da.TRACKTYPE_GRADE2, 1.5},
	{da.TRACKTYPE_GRADE3, 2.0},
	{da.TRACKTYPE_GRADE4, 3.0},
	{da.TRACKTYPE_GRADE5, 4.0},
}

const (
	unknownHighwayFactor = 2.0
	unknownTrackFactor   = 2.0
	dismountFactor       = 4.0
	allowedMaxFactor     = 1.5
	cycleRouteBonus      = 0.7
	roughSurfaceFactor   = 1.5
	bumpySurfaceFactor   = 1.2
	// slope above which climbing is penalised, and the penalty per unit of extra slope.
	comfortableSlope = 0.04
	slopePenalty     = 10.0
)

// CityBike prefers cycleways, cycle routes and quiet streets, avoids steep climbs and rough surfaces, and
// never uses edges closed to bicycles or ridden against a one way street.
type CityBike struct {
	graph EdgeAttributes
}

func NewCityBikeCostFunction(graph EdgeAttributes) *CityBike {
	return &CityBike{graph: graph}
}

func (cb *CityBike) CostFactor(_, edgeId da.Index) float64 {
	attrs, err := cb.graph.EdgeAttributes(edgeId)
	if err != nil {
		return math.Inf(1)
	}
	inverted, err := cb.graph.EdgeIsInverted(edgeId)
	if err != nil {
		return math.Inf(1)
	}

	if !cb.allowed(attrs, inverted) {
		return math.Inf(1)
	}

	factor := cb.highwayFactor(attrs)
	if attrs.Contains(da.BICYCLE_DISMOUNT) {
		factor = math.Max(factor, dismountFactor)
	}
	if attrs.Intersects(roughSurfaces) {
		factor *= roughSurfaceFactor
	} else if attrs.Intersects(bumpySurfaces) {
		factor *= bumpySurfaceFactor
	}
	if attrs.Intersects(cycleRoutes) {
		factor *= cycleRouteBonus
	}
	factor *= cb.slopeFactor(edgeId)

	return math.Max(1, factor)
}

func (cb *CityBike) allowed(attrs da.AttributeSet, inverted bool) bool {
	if attrs.Intersects(bicycleForbidden) || attrs.Intersects(motorRoads) {
		return false
	}
	if attrs.Intersects(accessForbidden) && !attrs.Intersects(bicycleAllowed) {
		return false
	}
	if attrs.Intersects(contraflowCycleway) {
		return true
	}
	if inverted && attrs.Contains(da.ONEWAY_YES) || !inverted && attrs.Contains(da.ONEWAY_M1) {
		return false
	}
	return !attrs.Contains(da.ONEWAY_BICYCLE_YES) || !inverted
}

func (cb *CityBike) highwayFactor(attrs da.AttributeSet) float64 {
	if attrs.Contains(da.HIGHWAY_TRACK) {
		for _, tf := range trackFactors {
			if attrs.Contains(tf.attribute) {
				return tf.factor
			}
		}
		return unknownTrackFactor
	}
	for _, hf := range highwayFactors {
		if attrs.Contains(hf.attribute) {
			if hf.factor > allowedMaxFactor && attrs.Intersects(bicycleAllowed) {
				return allowedMaxFactor
			}
			return hf.factor
		}
	}
	return unknownHighwayFactor
}

func (cb *CityBike) slopeFactor(edgeId da.Index) float64 {
	length, err := cb.graph.EdgeLength(edgeId)
	if err != nil || length == 0 {
		return 1
	}
	gain, err := cb.graph.EdgeElevationGain(edgeId)
	if err != nil {
		return 1
	}
	slope := gain / length
	if slope <= comfortableSlope {
		return 1
	}
	return 1 + (slope-comfortableSlope)*slopePenalty
}
