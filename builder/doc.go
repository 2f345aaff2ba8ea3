// Package builder turns raw node and edge records, as decoded from a map
// export, into a validated core.Graph.
//
// The builder is the lenient half of graph construction. core.NewGraph is
// strict and fails on the first bad input; Build instead degrades gracefully:
//
//   - Node records are always processed before edge records, so edge
//     validation sees the complete node set.
//   - An edge missing an endpoint ID, or naming a node that does not exist,
//     is skipped with a Warning and a WARN log line; loading continues.
//   - Negative or NaN distances/weights are skipped the same way.
//   - Duplicate or empty node IDs are skipped; the first record wins.
//
// Defaults mirror the map editor's export: floor 1, rotation "0,1", index 0,
// distance 0, bidirectional true, weight = distance. Edges without an ID get
// "edge_<n>", where n is the number of edges accepted so far.
//
// Options:
//
//	WithLogger(l)         – structured logger for warnings and the load summary
//	WithEdgeIDScheme(fn)  – fallback edge ID generator (default "edge_<n>")
//	WithStrict()          – turn the first warning into ErrMalformedRecord
//
// Side effects: one INFO "graph loaded" line with node and edge counts, and
// the metrics.GraphNodes / GraphEdges / RecordsDropped collectors.
package builder
