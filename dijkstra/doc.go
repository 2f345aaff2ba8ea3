// Package dijkstra implements uniform-cost (Dijkstra) search over the
// adjacency index of a core.Graph.
//
// Overview:
//
//   - Dijkstra computes minimum total Weight from a source to every node
//     reachable from it, optionally stopping as soon as a target is settled.
//   - ShortestPath wraps it for the single-pair case and rebuilds the node
//     sequence from the predecessor map.
//   - Edge direction comes from the adjacency index only: a one-way edge is
//     never walked backwards.
//
// Determinism and tie-breaking:
//
//   - The frontier is a min-heap ordered by (distance, push sequence). Among
//     equal tentative distances the entry pushed first is settled first.
//   - A predecessor is replaced only on strict improvement, so among
//     equal-weight alternatives the first-discovered predecessor is kept.
//   - Both rules depend on adjacency insertion order, i.e. on edge order in
//     the input. Results are reproducible for the same input; reordering the
//     input may pick a different path of the same cost.
//
// Consistency:
//
//   - For every reachable pair the returned Cost equals the all-pairs value of
//     matrix.DistanceMatrix on the same graph. The two never diverge because
//     the graph is immutable.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with lazy decrease-key.
//   - Space: O(V + E).
//
// Errors (sentinel):
//
//   - ErrEmptySource     – no source given.
//   - ErrNilGraph        – nil graph.
//   - ErrVertexNotFound  – source or target is not a node.
//   - ErrBadMaxDistance  – negative MaxDistance (panics in the option constructor).
//
// "No path" is not an error: ShortestPath reports it with found == false and
// Dijkstra leaves the node at +Inf.
package dijkstra
