package http_server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"
)

type Config struct {
	Port    int
	Timeout time.Duration
}

// New builds the api server. requests share ctx as base context so cancelling it cancels in flight requests.
func New(ctx context.Context, handler http.Handler, config Config, debug bool) *http.Server {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Port),
		Handler: http.TimeoutHandler(handler, config.Timeout, `{"error":"request timeout"}`),
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      config.Timeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}
	if debug {
		srv.Handler = handler
	}
	return srv
}
