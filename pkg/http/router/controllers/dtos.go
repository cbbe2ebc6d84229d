package controllers

import (
	"github.com/lintang-b-s/cyclenav/pkg/datastructure"
	"github.com/lintang-b-s/cyclenav/pkg/geo"
	"github.com/lintang-b-s/cyclenav/pkg/http/usecases"
	"github.com/lintang-b-s/cyclenav/pkg/planner"
	"github.com/paulmach/orb/geojson"
)

type coordinateRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}

func (c coordinateRequest) toCoordinate() geo.Coordinate {
	return geo.NewCoordinate(c.Lat, c.Lon)
}

type routeRequest struct {
	Points []coordinateRequest `json:"points" validate:"required,min=2,max=50,dive"`
}

func (rr routeRequest) coordinates() []geo.Coordinate {
	coords := make([]geo.Coordinate, len(rr.Points))
	for i, p := range rr.Points {
		coords[i] = p.toCoordinate()
	}
	return coords
}

type nearestRequest struct {
	Point    coordinateRequest `json:"point"`
	Distance float64           `json:"distance" validate:"gte=0,lte=10000"`
}

type closestRequest struct {
	routeRequest
	Point coordinateRequest `json:"point"`
}

type waypointResponse struct {
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	NodeId uint32  `json:"node_id"`
}

type routeResponse struct {
	Length           float64            `json:"length"`
	TotalAscent      float64            `json:"total_ascent"`
	TotalDescent     float64            `json:"total_descent"`
	MinElevation     float64            `json:"min_elevation"`
	MaxElevation     float64            `json:"max_elevation"`
	ElevationProfile []float64          `json:"elevation_profile"`
	SegmentLengths   []float64          `json:"segment_lengths"`
	Waypoints        []waypointResponse `json:"waypoints"`
	Path             string             `json:"path"`
	GeoJSON          *geojson.Feature   `json:"geojson"`
}

func NewRouteResponse(it *planner.Itinerary) routeResponse {
	r := it.GetRoute()
	profile := it.GetElevationProfile()
	points := r.Points()

	waypoints := make([]waypointResponse, 0, len(it.GetWaypoints()))
	for _, w := range it.GetWaypoints() {
		c := w.GetPoint().Coordinate()
		waypoints = append(waypoints, waypointResponse{Lat: c.GetLat(), Lon: c.GetLon(), NodeId: uint32(w.GetNodeId())})
	}

	return routeResponse{
		Length:           r.Length(),
		TotalAscent:      profile.TotalAscent(),
		TotalDescent:     profile.TotalDescent(),
		MinElevation:     profile.MinElevation(),
		MaxElevation:     profile.MaxElevation(),
		ElevationProfile: profile.Samples(),
		SegmentLengths:   it.SegmentLengths(),
		Waypoints:        waypoints,
		Path:             geo.PolylineFromPoints(points),
		GeoJSON: geo.NewRouteFeature(points, map[string]interface{}{
			"length":        r.Length(),
			"total_ascent":  profile.TotalAscent(),
			"total_descent": profile.TotalDescent(),
		}),
	}
}

type nodeResponse struct {
	NodeId uint32  `json:"node_id"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	E      float64 `json:"e"`
	N      float64 `json:"n"`
}

func NewNodeResponse(nodeId datastructure.Index, p geo.PointCh) nodeResponse {
	c := p.Coordinate()
	return nodeResponse{NodeId: uint32(nodeId), Lat: c.GetLat(), Lon: c.GetLon(), E: p.E(), N: p.N()}
}

type closestResponse struct {
	Lat                 float64 `json:"lat"`
	Lon                 float64 `json:"lon"`
	Position            float64 `json:"position"`
	DistanceToReference float64 `json:"distance_to_reference"`
	Elevation           float64 `json:"elevation"`
	SegmentIndex        int     `json:"segment_index"`
	NodeId              uint32  `json:"node_id"`
}

func NewClosestResponse(cp usecases.ClosestPoint) closestResponse {
	c := cp.RoutePoint.GetPoint().Coordinate()
	return closestResponse{
		Lat:                 c.GetLat(),
		Lon:                 c.GetLon(),
		Position:            cp.RoutePoint.GetPosition(),
		DistanceToReference: cp.RoutePoint.GetDistanceToReference(),
		Elevation:           cp.Elevation,
		SegmentIndex:        cp.SegmentIndex,
		NodeId:              uint32(cp.NodeId),
	}
}
