package route

import (
	"github.com/lintang-b-s/cyclenav/pkg/datastructure"
	"github.com/lintang-b-s/cyclenav/pkg/geo"
	"github.com/lintang-b-s/cyclenav/pkg/util"
)

// MultiRoute is a route made of consecutive segments, each of which is itself a route.
type MultiRoute struct {
	segments []Route
}

func NewMultiRoute(segments []Route) (*MultiRoute, error) {
	if len(segments) == 0 {
		return nil, util.WrapErrorf(nil, util.ErrInvalidArgument, "a multi route needs at least one segment")
	}
	copySegments := make([]Route, len(segments))
	copy(copySegments, segments)
	return &MultiRoute{segments: copySegments}, nil
}

func (r *MultiRoute) Segments() []Route {
	segments := make([]Route, len(r.segments))
	copy(segments, r.segments)
	return segments
}

func (r *MultiRoute) IndexOfSegmentAt(position float64) int {
	position = util.Clamp(0, position, r.Length())
	index := 0
	for _, s := range r.segments {
		length := s.Length()
		if length < position {
			index += s.IndexOfSegmentAt(length) + 1
			position -= length
			continue
		}
		return index + s.IndexOfSegmentAt(position)
	}
	// rounding left position past the end, it belongs to the last leaf segment.
	return index - 1
}

func (r *MultiRoute) Length() float64 {
	length := 0.0
	for _, s := range r.segments {
		length += s.Length()
	}
	return length
}

func (r *MultiRoute) Edges() []Edge {
	var edges []Edge
	for _, s := range r.segments {
		edges = append(edges, s.Edges()...)
	}
	return edges
}

func (r *MultiRoute) Points() []geo.PointCh {
	edges := r.Edges()
	points := make([]geo.PointCh, 0, len(edges)+1)
	points = append(points, edges[0].FromPoint())
	for _, e := range edges {
		points = append(points, e.ToPoint())
	}
	return points
}

func (r *MultiRoute) PointAt(position float64) geo.PointCh {
	s, reduced := r.segmentAt(position)
	return s.PointAt(reduced)
}

func (r *MultiRoute) ElevationAt(position float64) float64 {
	s, reduced := r.segmentAt(position)
	return s.ElevationAt(reduced)
}

func (r *MultiRoute) NodeClosestTo(position float64) datastructure.Index {
	s, reduced := r.segmentAt(position)
	return s.NodeClosestTo(reduced)
}

func (r *MultiRoute) PointClosestTo(point geo.PointCh) RoutePoint {
	closest := NoneRoutePoint
	offset := 0.0
	for _, s := range r.segments {
		closest = closest.Min(s.PointClosestTo(point).WithPositionShiftedBy(offset))
		offset += s.Length()
	}
	return closest
}

// segmentAt clamps position and returns the first segment whose length reaches it, with the position relative to
// that segment.
func (r *MultiRoute) segmentAt(position float64) (Route, float64) {
	position = util.Clamp(0, position, r.Length())
	for _, s := range r.segments[:len(r.segments)-1] {
		length := s.Length()
		if length >= position {
			return s, position
		}
		position -= length
	}
	return r.segments[len(r.segments)-1], position
}
