// Package metrics declares the Prometheus collectors shared by the engine,
// the HTTP API and the CLI. Collectors are registered on the default
// registry through promauto, so importing the package is enough.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for RouteQueries.
const (
	OutcomeFound      = "found"
	OutcomeNoPath     = "no_path"
	OutcomeUnresolved = "unresolved"
)

var (
	// GraphNodes is the node count of the most recently built graph.
	GraphNodes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "indoornav_graph_nodes",
		Help: "Number of navigation nodes in the loaded graph",
	})

	// GraphEdges is the accepted edge count of the most recently built graph.
	GraphEdges = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "indoornav_graph_edges",
		Help: "Number of accepted edges in the loaded graph",
	})

	// RecordsDropped counts node and edge records skipped at load time.
	RecordsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "indoornav_records_dropped_total",
			Help: "Node and edge records skipped while building the graph",
		},
		[]string{"kind", "reason"},
	)

	// MatrixBuildSeconds measures the all-pairs closure. It is O(N^3), so
	// the buckets reach well past what a single building should need.
	MatrixBuildSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "indoornav_matrix_build_seconds",
		Help:    "Time spent building the all-pairs distance matrix",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
	})

	// RouteQueries counts Navigate calls by outcome.
	RouteQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "indoornav_route_queries_total",
			Help: "Route queries by outcome",
		},
		[]string{"outcome"},
	)

	// NearbyQueries counts nearby-POI lookups.
	NearbyQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "indoornav_nearby_queries_total",
		Help: "Nearby POI queries served",
	})

	// HTTPRequestsTotal counts API requests by method, route template and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "indoornav_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures API latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "indoornav_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"method", "path"},
	)
)
