package router

import (
	"context"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/lintang-b-s/cyclenav/pkg/http/router/controllers"
	router_helper "github.com/lintang-b-s/cyclenav/pkg/http/router/routerhelper"
	http_server "github.com/lintang-b-s/cyclenav/pkg/http/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type RateLimit struct {
	Enabled bool
	RPS     float64
	Burst   int
}

type API struct {
	log *zap.Logger
}

func NewAPI(log *zap.Logger) *API {
	return &API{log: log}
}

// Handler builds the router of the api with its middleware chain.
func (api *API) Handler(rateLimit RateLimit, routingService controllers.RoutingService) http.Handler {
	router := httprouter.New()

	corsHandler := cors.New(cors.Options{ //nolint:gocritic // ignore
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, //nolint:mnd // ignore
	})

	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	group := router_helper.NewRouteGroup(router, "/api")
	routingRoutes := controllers.New(routingService, api.log)
	routingRoutes.Routes(group)

	mwChain := []alice.Constructor{corsHandler.Handler, api.recoverPanic, RealIP, Heartbeat("healthz"),
		Logger(api.log), Metrics}
	if rateLimit.Enabled {
		mwChain = append(mwChain, Limit(rateLimit.RPS, rateLimit.Burst))
	}
	return alice.New(mwChain...).Then(router)
}

// Run serves the api until ctx is cancelled or the server fails.
func (api *API) Run(
	ctx context.Context,
	config http_server.Config,
	rateLimit RateLimit,
	routingService controllers.RoutingService,
) error {
	api.log.Info("Run httprouter API")

	srv := http_server.New(ctx, api.Handler(rateLimit, routingService), config, false)
	api.log.Info(fmt.Sprintf("API run on port %d", config.Port))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		api.log.Info("HTTP server stopped", zap.Error(err))
		return err
	case <-ctx.Done():
		api.log.Info("Context canceled, shutting down server")
		_ = srv.Shutdown(context.Background())
		return ctx.Err()
	}
}
