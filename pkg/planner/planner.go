package planner

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lintang-b-s/cyclenav/pkg/datastructure"
	"github.com/lintang-b-s/cyclenav/pkg/engine/routing"
	"github.com/lintang-b-s/cyclenav/pkg/geo"
	"github.com/lintang-b-s/cyclenav/pkg/metrics"
	"github.com/lintang-b-s/cyclenav/pkg/route"
	"github.com/lintang-b-s/cyclenav/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type NodeLocator interface {
	NodeClosestTo(point geo.PointCh, searchDistance float64) (datastructure.Index, bool)
}

type Config struct {
	// SearchDistance. meters around a point in which its waypoint node is looked for.
	SearchDistance float64
	// ElevationStep. maximum distance in meters between two samples of the itinerary elevation profile.
	ElevationStep float64
	CacheSize     int
}

func NewConfig(engineConfig util.EngineConfig) Config {
	return Config{
		SearchDistance: engineConfig.SearchDistance,
		ElevationStep:  engineConfig.ElevationStep,
		CacheSize:      engineConfig.RouteCacheSize,
	}
}

type segmentKey struct {
	startNodeId datastructure.Index
	endNodeId   datastructure.Index
}

// Planner plans itineraries through waypoints, searching the route of each pair of consecutive waypoints in
// parallel. routes are cached per pair of nodes.
type Planner struct {
	router  routing.Router
	locator NodeLocator
	cache   *lru.Cache[segmentKey, *route.SingleRoute]
	config  Config
	log     *zap.Logger
}

func NewPlanner(router routing.Router, locator NodeLocator, config Config, log *zap.Logger) (*Planner, error) {
	if !(config.SearchDistance >= 0) {
		return nil, util.WrapErrorf(nil, util.ErrInvalidArgument, "search distance must be >= 0, got %v",
			config.SearchDistance)
	}
	if !(config.ElevationStep > 0) {
		return nil, util.WrapErrorf(nil, util.ErrInvalidArgument, "elevation step must be > 0, got %v",
			config.ElevationStep)
	}
	cache, err := lru.New[segmentKey, *route.SingleRoute](config.CacheSize)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrInvalidArgument, "invalid route cache size %d", config.CacheSize)
	}
	return &Planner{
		router:  router,
		locator: locator,
		cache:   cache,
		config:  config,
		log:     log,
	}, nil
}

// NewWaypoint snaps point to the closest node within the search distance.
func (p *Planner) NewWaypoint(point geo.PointCh) (Waypoint, error) {
	nodeId, ok := p.locator.NodeClosestTo(point, p.config.SearchDistance)
	if !ok {
		return Waypoint{}, util.WrapErrorf(nil, util.ErrNotFound, "no road within %v m of %v", p.config.SearchDistance,
			point)
	}
	return NewWaypoint(point, nodeId), nil
}

// Plan computes the itinerary through waypoints. it returns false without error when some pair of consecutive
// waypoints cannot be joined, or when all waypoints lie on the same node.
func (p *Planner) Plan(ctx context.Context, waypoints []Waypoint) (*Itinerary, bool, error) {
	if len(waypoints) < 2 {
		return nil, false, util.WrapErrorf(nil, util.ErrInvalidArgument, "an itinerary needs at least 2 waypoints, got %d",
			len(waypoints))
	}

	keys := make([]segmentKey, 0, len(waypoints)-1)
	for i := 0; i+1 < len(waypoints); i++ {
		if waypoints[i].nodeId == waypoints[i+1].nodeId {
			continue
		}
		keys = append(keys, segmentKey{startNodeId: waypoints[i].nodeId, endNodeId: waypoints[i+1].nodeId})
	}
	if len(keys) == 0 {
		metrics.ItinerariesTotal.WithLabelValues(metrics.OUTCOME_NOT_FOUND).Inc()
		return nil, false, nil
	}

	segments, err := p.searchSegments(ctx, keys)
	if err != nil {
		outcome := metrics.OUTCOME_ERROR
		if ctx.Err() != nil {
			outcome = metrics.OUTCOME_CANCELLED
		}
		metrics.ItinerariesTotal.WithLabelValues(outcome).Inc()
		return nil, false, err
	}

	routes := make([]route.Route, len(segments))
	for i, s := range segments {
		if s == nil {
			p.log.Debug("no route between waypoints", zap.Uint32("startNodeId", uint32(keys[i].startNodeId)),
				zap.Uint32("endNodeId", uint32(keys[i].endNodeId)))
			metrics.ItinerariesTotal.WithLabelValues(metrics.OUTCOME_NOT_FOUND).Inc()
			return nil, false, nil
		}
		routes[i] = s
	}

	multiRoute, err := route.NewMultiRoute(routes)
	if err != nil {
		return nil, false, err
	}
	profile, err := route.ComputeElevationProfile(multiRoute, p.config.ElevationStep)
	if err != nil {
		return nil, false, err
	}

	metrics.ItinerariesTotal.WithLabelValues(metrics.OUTCOME_FOUND).Inc()
	copyWaypoints := make([]Waypoint, len(waypoints))
	copy(copyWaypoints, waypoints)
	return &Itinerary{waypoints: copyWaypoints, route: multiRoute, profile: profile}, true, nil
}

// searchSegments runs one search per key. a nil route means the key has no route. when ctx is done before all
// searches finish their results are discarded.
func (p *Planner) searchSegments(ctx context.Context, keys []segmentKey) ([]*route.SingleRoute, error) {
	segments := make([]*route.SingleRoute, len(keys))

	g, gCtx := errgroup.WithContext(ctx)
	for i, key := range keys {
		i, key := i, key
		g.Go(func() error {
			if util.StopConcurrentOperation(gCtx) {
				return gCtx.Err()
			}
			r, err := p.segment(key)
			if err != nil {
				return err
			}
			segments[i] = r
			return nil
		})
	}

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
	}()

	select {
	case <-ctx.Done():
		return nil, util.WrapErrorf(ctx.Err(), util.ErrResource, "itinerary planning cancelled")
	case err := <-done:
		if err != nil {
			return nil, err
		}
		return segments, nil
	}
}

func (p *Planner) segment(key segmentKey) (*route.SingleRoute, error) {
	if r, ok := p.cache.Get(key); ok {
		metrics.RouteCacheRequests.WithLabelValues(metrics.CACHE_HIT).Inc()
		metrics.RouteSearchesTotal.WithLabelValues(metrics.OUTCOME_CACHED).Inc()
		return r, nil
	}
	metrics.RouteCacheRequests.WithLabelValues(metrics.CACHE_MISS).Inc()

	start := time.Now()
	r, found, err := p.router.BestRouteBetween(key.startNodeId, key.endNodeId)
	metrics.RouteSearchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RouteSearchesTotal.WithLabelValues(metrics.OUTCOME_ERROR).Inc()
		return nil, err
	}
	if !found {
		metrics.RouteSearchesTotal.WithLabelValues(metrics.OUTCOME_NOT_FOUND).Inc()
		return nil, nil
	}
	metrics.RouteSearchesTotal.WithLabelValues(metrics.OUTCOME_FOUND).Inc()
	p.cache.Add(key, r)
	return r, nil
}

// CachedRoutes. number of segment routes currently cached.
func (p *Planner) CachedRoutes() int {
	return p.cache.Len()
}
