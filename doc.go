// SPDX-License-Identifier: MIT

// Package indoornav computes walking routes inside multi-floor buildings.
//
// A map is a GeoJSON feature collection of nodes, edges, points of interest
// and rooms. Loading it builds a weighted directed graph, precomputes the
// all-pairs distance matrix and indexes every location, after which routes
// and nearby-POI queries are answered from memory.
//
// Packages:
//
//	core/       Graph, Node, Edge and descriptive statistics
//	builder/    node/edge records into a validated core.Graph, with warnings
//	geojson/    feature collection decoding into builder records and locations
//	matrix/     dense all-pairs distance matrix (Floyd-Warshall)
//	dijkstra/   single-pair shortest paths with deterministic tie-breaking
//	bfs/        breadth-first traversal and connected components
//	itinerary/  step-by-step walking instructions for a node path
//	locate/     POI/room registry and location-to-node resolution
//	navigator/  the facade tying the above together
//	config/     YAML settings
//	metrics/    Prometheus collectors
//
// Quick example:
//
//	nav, err := navigator.Open("building.geojson")
//	if err != nil {
//		log.Fatal(err)
//	}
//	route, ok, err := nav.Navigate("r1", "lift")
//	if err == nil && ok {
//		for _, line := range route.Instructions {
//			fmt.Println(line)
//		}
//	}
//
// The indoornav command (cmd/indoornav) prints reports, serves an HTTP API
// or exposes the same queries as MCP tools over stdio.
package indoornav
