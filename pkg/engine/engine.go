package engine

import (
	"github.com/lintang-b-s/cyclenav/pkg/costfunction"
	"github.com/lintang-b-s/cyclenav/pkg/datastructure"
	"github.com/lintang-b-s/cyclenav/pkg/engine/routing"
	"github.com/lintang-b-s/cyclenav/pkg/geo"
	"github.com/lintang-b-s/cyclenav/pkg/spatialindex"
	"github.com/lintang-b-s/cyclenav/pkg/util"
	"go.uber.org/zap"
)

const (
	SPATIAL_INDEX_SECTORS = "sectors"
	SPATIAL_INDEX_RTREE   = "rtree"
)

type NodeLocator interface {
	NodeClosestTo(point geo.PointCh, searchDistance float64) (datastructure.Index, bool)
}

// Engine owns a loaded graph and the search components built on it.
type Engine struct {
	graph         *datastructure.Graph
	locator       NodeLocator
	costFunction  costfunction.CostFunction
	routeComputer *routing.RouteComputer
}

func (e *Engine) GetGraph() *datastructure.Graph {
	return e.graph
}

func (e *Engine) GetLocator() NodeLocator {
	return e.locator
}

func (e *Engine) GetCostFunction() costfunction.CostFunction {
	return e.costFunction
}

func (e *Engine) GetRouteComputer() *routing.RouteComputer {
	return e.routeComputer
}

// NewEngine loads the graph tables found in config.GraphDir.
func NewEngine(config util.EngineConfig, logger *zap.Logger) (*Engine, error) {
	logger.Info("Starting cycling route engine...")

	logger.Info("Reading graph from ", zap.String("graphDir", config.GraphDir))
	graph, err := datastructure.LoadGraph(config.GraphDir, logger)
	if err != nil {
		return nil, err
	}

	e, err := NewEngineFromGraph(graph, config.SpatialIndex, config.CostFunction, logger)
	if err != nil {
		_ = graph.Close()
		return nil, err
	}
	return e, nil
}

func NewEngineFromGraph(graph *datastructure.Graph, spatialIndex, costFunctionName string,
	logger *zap.Logger) (*Engine, error) {
	var locator NodeLocator
	switch spatialIndex {
	case SPATIAL_INDEX_SECTORS:
		locator = graph
	case SPATIAL_INDEX_RTREE:
		index := spatialindex.NewNodeIndex()
		if err := index.Build(graph, logger); err != nil {
			return nil, err
		}
		locator = index
	default:
		return nil, util.WrapErrorf(nil, util.ErrInvalidArgument, "unknown spatial index %q", spatialIndex)
	}

	costFunction, err := costfunction.NewCostFunction(costFunctionName, graph)
	if err != nil {
		return nil, err
	}

	logger.Info("Route engine ready", zap.Int("nodes", graph.NodeCount()), zap.Int("edges", graph.EdgeCount()),
		zap.String("spatialIndex", spatialIndex), zap.String("costFunction", costFunctionName))

	return &Engine{
		graph:         graph,
		locator:       locator,
		costFunction:  costFunction,
		routeComputer: routing.NewRouteComputer(graph, costFunction),
	}, nil
}

func (e *Engine) Close() error {
	return e.graph.Close()
}
