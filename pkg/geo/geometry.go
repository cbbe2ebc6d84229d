package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/twpayne/go-polyline"
)

// PolylineFromPoints. google encoded polyline of the points in (lat, lon) degrees.
func PolylineFromPoints(points []PointCh) string {
	coords := make([][]float64, 0, len(points))
	for _, p := range points {
		c := p.Coordinate()
		coords = append(coords, []float64{c.Lat, c.Lon})
	}
	return string(polyline.EncodeCoords(coords))
}

// LineString. orb geometry of the points, x = lon, y = lat in degrees.
func LineString(points []PointCh) orb.LineString {
	ls := make(orb.LineString, 0, len(points))
	for _, p := range points {
		c := p.Coordinate()
		ls = append(ls, orb.Point{c.Lon, c.Lat})
	}
	return ls
}

func NewRouteFeature(points []PointCh, properties map[string]interface{}) *geojson.Feature {
	f := geojson.NewFeature(LineString(points))
	for k, v := range properties {
		f.Properties[k] = v
	}
	return f
}
