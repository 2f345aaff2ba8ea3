// Package matrix holds the dense all-pairs distance structures of the
// navigation engine.
//
// Layers, bottom-up:
//
//   - Dense          – row-major float64 storage with bounds-checked At/Set.
//   - FloydWarshall  – in-place all-pairs closure, fixed k→i→j loop order.
//   - DistanceMatrix – a Dense closure bound to a core.Graph: indices follow
//     the graph's sorted node IDs, entries are shortest total edge weights.
//
// Policy:
//
//	diagonal = 0, unreachable = +Inf, entries are weights (never distances).
//	One-way edges only populate [start][end], mirroring the adjacency index.
//	Parallel edges keep the smallest weight.
//	Negative weights are not supported (they are rejected upstream).
//
// Cost: O(N³) time and O(N²) memory in the node count N. That is fine for a
// single building (low hundreds of nodes) and does not scale to city-sized
// graphs; use package dijkstra for single pairs on anything larger.
package matrix
