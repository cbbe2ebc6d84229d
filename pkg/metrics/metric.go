package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RouteSearchesTotal counts segment searches by outcome: found, not_found, cached, error.
	RouteSearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cyclenav_route_searches_total",
			Help: "Total number of route searches between two nodes",
		},
		[]string{"outcome"},
	)

	RouteSearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cyclenav_route_search_duration_seconds",
			Help:    "Duration of a route search between two nodes in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	RouteCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cyclenav_route_cache_requests_total",
			Help: "Route cache lookups by result",
		},
		[]string{"result"},
	)

	ItinerariesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cyclenav_itineraries_total",
			Help: "Total number of planned itineraries by outcome",
		},
		[]string{"outcome"},
	)

	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cyclenav_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cyclenav_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "path"},
	)
)

const (
	OUTCOME_FOUND     = "found"
	OUTCOME_NOT_FOUND = "not_found"
	OUTCOME_CACHED    = "cached"
	OUTCOME_ERROR     = "error"
	OUTCOME_CANCELLED = "cancelled"

	CACHE_HIT  = "hit"
	CACHE_MISS = "miss"
)
