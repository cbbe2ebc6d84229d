package http

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	http_router "github.com/lintang-b-s/cyclenav/pkg/http/router"
	"github.com/lintang-b-s/cyclenav/pkg/http/router/controllers"
	http_server "github.com/lintang-b-s/cyclenav/pkg/http/server"
	"github.com/lintang-b-s/cyclenav/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger
	g   *errgroup.Group
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

// Use starts the api in the background. Wait returns its error once ctx is cancelled.
func (s *Server) Use(
	ctx context.Context,
	config util.EngineConfig,
	routingService controllers.RoutingService,
) *Server {
	serverConfig := http_server.Config{
		Port:    config.APIPort,
		Timeout: config.APITimeout,
	}
	rateLimit := http_router.RateLimit{
		Enabled: config.RateLimit,
		RPS:     config.RateLimitRPS,
		Burst:   config.RateLimitBurst,
	}

	server := http_router.NewAPI(s.Log)

	s.g = &errgroup.Group{}
	s.g.Go(func() error {
		return server.Run(ctx, serverConfig, rateLimit, routingService)
	})
	return s
}

func (s *Server) Wait() error {
	if s.g == nil {
		return nil
	}
	return s.g.Wait()
}

// GracefulShutdown blocks until the process receives SIGINT or SIGTERM and returns that signal.
func GracefulShutdown() os.Signal {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	return <-quit
}
