package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled requests by method, route, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cowry_http_requests_total",
		Help: "Total number of HTTP requests handled.",
	}, []string{"method", "route", "status"})

	// HTTPRequestDuration observes request latency by method and route.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cowry_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// DirectoryCallsTotal counts identity-directory calls by operation and
	// outcome, since every flow bottoms out in a remote directory call.
	DirectoryCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cowry_directory_calls_total",
		Help: "Total number of identity directory calls.",
	}, []string{"operation", "outcome"})
)
