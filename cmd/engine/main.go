package main

import (
	"context"
	"errors"
	"flag"

	"github.com/lintang-b-s/cyclenav/pkg/engine"
	"github.com/lintang-b-s/cyclenav/pkg/http"
	"github.com/lintang-b-s/cyclenav/pkg/http/usecases"
	"github.com/lintang-b-s/cyclenav/pkg/logger"
	"github.com/lintang-b-s/cyclenav/pkg/planner"
	"github.com/lintang-b-s/cyclenav/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	graphDir     = flag.String("graph_dir", "", "directory of the graph tables, overrides GRAPH_DIR")
	spatialIndex = flag.String("spatial_index", "", "node locator: sectors or rtree, overrides SPATIAL_INDEX")
)

func main() {
	flag.Parse()
	configErr := util.ReadConfig()
	if *graphDir != "" {
		viper.Set("GRAPH_DIR", *graphDir)
	}
	if *spatialIndex != "" {
		viper.Set("SPATIAL_INDEX", *spatialIndex)
	}
	config := util.NewEngineConfig()

	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	if configErr != nil {
		logger.Warn("no config file, using defaults and environment", zap.Error(configErr))
	}

	routingEngine, err := engine.NewEngine(config, logger)
	if err != nil {
		logger.Fatal("failed to load route engine", zap.Error(err))
	}
	defer routingEngine.Close()

	routePlanner, err := planner.NewPlanner(routingEngine.GetRouteComputer(), routingEngine.GetLocator(),
		planner.NewConfig(config), logger)
	if err != nil {
		logger.Fatal("failed to create planner", zap.Error(err))
	}

	routingService := usecases.NewRoutingService(logger, routePlanner, routingEngine.GetLocator(),
		routingEngine.GetGraph())

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	api := http.NewServer(logger).Use(ctx, config, routingService)

	signal := http.GracefulShutdown()
	logger.Info("cyclenav route server stopping", zap.String("signal", signal.String()))
	cleanup()
	if err := api.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("route server stopped with error", zap.Error(err))
	}
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
