package route

import (
	"github.com/lintang-b-s/cyclenav/pkg/datastructure"
	"github.com/lintang-b-s/cyclenav/pkg/geo"
)

// Route is a path made of contiguous edges. positions are distances in meters from the start of the route, and
// every position based query clamps its position to [0, Length()].
type Route interface {
	// IndexOfSegmentAt. index of the leaf segment containing position, counting the segments of nested routes.
	IndexOfSegmentAt(position float64) int
	Length() float64
	Edges() []Edge
	Points() []geo.PointCh
	PointAt(position float64) geo.PointCh
	ElevationAt(position float64) float64
	NodeClosestTo(position float64) datastructure.Index
	PointClosestTo(point geo.PointCh) RoutePoint
}
