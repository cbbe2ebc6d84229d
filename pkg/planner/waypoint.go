package planner

import (
	"github.com/lintang-b-s/cyclenav/pkg/datastructure"
	"github.com/lintang-b-s/cyclenav/pkg/geo"
	"github.com/lintang-b-s/cyclenav/pkg/route"
)

// Waypoint is a point chosen by the user together with the graph node it was snapped to.
type Waypoint struct {
	point  geo.PointCh
	nodeId datastructure.Index
}

func NewWaypoint(point geo.PointCh, nodeId datastructure.Index) Waypoint {
	return Waypoint{point: point, nodeId: nodeId}
}

func (w Waypoint) GetPoint() geo.PointCh {
	return w.point
}

func (w Waypoint) GetNodeId() datastructure.Index {
	return w.nodeId
}

// IndexOfNonEmptySegmentAt maps the segment of r at position to the index of the waypoint pair it joins. r must
// have one segment per pair of consecutive waypoints on different nodes, pairs on the same node have no segment.
func IndexOfNonEmptySegmentAt(waypoints []Waypoint, r route.Route, position float64) int {
	index := r.IndexOfSegmentAt(position)
	for i := 0; i <= index && i+1 < len(waypoints); i++ {
		if waypoints[i].nodeId == waypoints[i+1].nodeId {
			index++
		}
	}
	return index
}
