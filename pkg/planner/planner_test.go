package planner

import (
	"context"
	"errors"
	"math"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lintang-b-s/cyclenav/pkg/datastructure"
	"github.com/lintang-b-s/cyclenav/pkg/geo"
	"github.com/lintang-b-s/cyclenav/pkg/route"
	"github.com/lintang-b-s/cyclenav/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	baseE = 2_600_000.0
	baseN = 1_200_000.0
)

// node i lies 100 m east of node i-1.
func nodePoint(nodeId datastructure.Index) geo.PointCh {
	return geo.MustPointCh(baseE+100*float64(nodeId), baseN)
}

// lineRouter joins any two nodes with a straight edge, except pairs involving an unreachable node.
type lineRouter struct {
	calls       atomic.Int32
	unreachable datastructure.Index
	err         error
	block       chan struct{}
}

func (lr *lineRouter) BestRouteBetween(startNodeId, endNodeId datastructure.Index) (*route.SingleRoute, bool, error) {
	lr.calls.Add(1)
	if lr.block != nil {
		<-lr.block
	}
	if lr.err != nil {
		return nil, false, lr.err
	}
	if startNodeId == lr.unreachable || endNodeId == lr.unreachable {
		return nil, false, nil
	}
	length := math.Abs(float64(endNodeId)-float64(startNodeId)) * 100
	e := route.MakeEdge(startNodeId, endNodeId, nodePoint(startNodeId), nodePoint(endNodeId), length,
		util.ConstantFunction(float64(400+startNodeId)))
	r, err := route.NewSingleRoute([]route.Edge{e})
	return r, true, err
}

// gridLocator snaps a point to the node with the closest east coordinate.
type gridLocator struct{}

func (gridLocator) NodeClosestTo(point geo.PointCh, searchDistance float64) (datastructure.Index, bool) {
	nodeId := math.Round((point.E() - baseE) / 100)
	if nodeId < 0 || point.DistanceTo(nodePoint(datastructure.Index(nodeId))) > searchDistance {
		return datastructure.INVALID_VERTEX_ID, false
	}
	return datastructure.Index(nodeId), true
}

func newTestPlanner(t *testing.T, router *lineRouter) *Planner {
	t.Helper()
	p, err := NewPlanner(router, gridLocator{}, Config{SearchDistance: 500, ElevationStep: 5, CacheSize: 50},
		zap.NewNop())
	require.NoError(t, err)
	return p
}

func waypoints(nodeIds ...datastructure.Index) []Waypoint {
	ws := make([]Waypoint, len(nodeIds))
	for i, nodeId := range nodeIds {
		ws[i] = NewWaypoint(nodePoint(nodeId), nodeId)
	}
	return ws
}

func TestNewPlannerValidatesConfig(t *testing.T) {
	testCases := []struct {
		name   string
		config Config
	}{
		{name: "negative search distance", config: Config{SearchDistance: -1, ElevationStep: 5, CacheSize: 50}},
		{name: "zero elevation step", config: Config{SearchDistance: 500, ElevationStep: 0, CacheSize: 50}},
		{name: "zero cache size", config: Config{SearchDistance: 500, ElevationStep: 5, CacheSize: 0}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPlanner(&lineRouter{}, gridLocator{}, tt.config, zap.NewNop())
			assert.ErrorIs(t, err, util.ErrInvalidArgument)
		})
	}
}

func TestPlannerNewWaypoint(t *testing.T) {
	p := newTestPlanner(t, &lineRouter{})

	w, err := p.NewWaypoint(geo.MustPointCh(baseE+310, baseN+20))
	require.NoError(t, err)
	assert.Equal(t, datastructure.Index(3), w.GetNodeId())
	assert.True(t, w.GetPoint().Equal(geo.MustPointCh(baseE+310, baseN+20)))

	_, err = p.NewWaypoint(geo.MustPointCh(baseE+300, baseN+900))
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestPlannerPlan(t *testing.T) {
	router := &lineRouter{}
	p := newTestPlanner(t, router)

	it, found, err := p.Plan(context.Background(), waypoints(0, 2, 5))
	require.NoError(t, err)
	require.True(t, found)

	r := it.GetRoute()
	assert.Equal(t, 500.0, r.Length())
	assert.Len(t, r.Segments(), 2)
	assert.Equal(t, []float64{200, 300}, it.SegmentLengths())
	assert.Equal(t, int32(2), router.calls.Load())
	assert.Equal(t, 2, p.CachedRoutes())

	profile := it.GetElevationProfile()
	assert.Equal(t, 500.0, profile.Length())
	assert.Len(t, profile.Samples(), 101)
	assert.Equal(t, 400.0, profile.MinElevation())
	assert.Equal(t, 402.0, profile.MaxElevation())

	// same pairs again come from the cache
	_, found, err = p.Plan(context.Background(), waypoints(0, 2, 5))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int32(2), router.calls.Load())
}

func TestPlannerSkipsWaypointsOnTheSameNode(t *testing.T) {
	p := newTestPlanner(t, &lineRouter{})
	ws := waypoints(1, 1, 3, 3, 4)

	it, found, err := p.Plan(context.Background(), ws)
	require.NoError(t, err)
	require.True(t, found)
	assert.Len(t, it.GetRoute().Segments(), 2)
	assert.Equal(t, []float64{0, 200, 0, 100}, it.SegmentLengths())

	assert.Equal(t, 1, IndexOfNonEmptySegmentAt(ws, it.GetRoute(), 50))
	assert.Equal(t, 3, IndexOfNonEmptySegmentAt(ws, it.GetRoute(), 250))

	rp, pair := it.PointClosestTo(geo.MustPointCh(baseE+350, baseN+10))
	assert.InDelta(t, 250.0, rp.GetPosition(), 1e-9)
	assert.InDelta(t, 10.0, rp.GetDistanceToReference(), 1e-9)
	assert.Equal(t, 3, pair)
}

func TestPlannerWithoutItinerary(t *testing.T) {
	testCases := []struct {
		name      string
		router    *lineRouter
		waypoints []Waypoint
	}{
		{name: "unreachable segment", router: &lineRouter{unreachable: 7}, waypoints: waypoints(2, 4, 7)},
		{name: "single node", router: &lineRouter{}, waypoints: waypoints(2, 2, 2)},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlanner(t, tt.router)
			it, found, err := p.Plan(context.Background(), tt.waypoints)
			assert.NoError(t, err)
			assert.False(t, found)
			assert.Nil(t, it)
		})
	}
}

func TestPlannerErrors(t *testing.T) {
	p := newTestPlanner(t, &lineRouter{})
	_, _, err := p.Plan(context.Background(), waypoints(1))
	assert.ErrorIs(t, err, util.ErrInvalidArgument)

	searchErr := util.WrapErrorf(nil, util.ErrOutOfRange, "bad node")
	p = newTestPlanner(t, &lineRouter{err: searchErr})
	_, _, err = p.Plan(context.Background(), waypoints(1, 2))
	assert.ErrorIs(t, err, util.ErrOutOfRange)
}

func TestPlannerCancelled(t *testing.T) {
	router := &lineRouter{block: make(chan struct{})}
	p := newTestPlanner(t, router)
	ctx, cancel := context.WithCancel(context.Background())

	var (
		wg      sync.WaitGroup
		planErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _, planErr = p.Plan(ctx, waypoints(1, 2, 3))
	}()

	require.Eventually(t, func() bool {
		return router.calls.Load() > 0
	}, time.Second, time.Millisecond)
	cancel()
	wg.Wait()
	close(router.block)

	assert.True(t, errors.Is(planErr, context.Canceled))
}
