// Package core provides the immutable in-memory navigation graph: nodes,
// explicit edges and the adjacency index derived from them.
//
// The Graph G = (V,E) is built exactly once from already-validated nodes and
// edges (see package builder for the lenient, record-level loader) and never
// mutated afterwards. Every read method is therefore safe for concurrent use
// without locks; reloading a map means building a brand-new Graph.
//
// Model:
//
//   - Node     – a walkable point (ID unique across all floors, 2D position,
//     floor, rotation sentinel "0,1", index, optional intersection tag,
//     open-ended Attributes).
//   - Edge     – an author-specified connection From→To with a physical
//     Distance (reported to users) and a Weight (optimized by searches).
//     Weight defaults to Distance. Bidirectional=false makes it one-way.
//   - Neighbor – one adjacency entry (neighbor ID, weight, source edge ID).
//
// Adjacency policy:
//
//	For every edge e in insertion order:
//	    adjacency[e.From] += (e.To,   e.Weight)
//	    if e.Bidirectional:
//	        adjacency[e.To] += (e.From, e.Weight)
//
// A one-way edge never yields a reverse entry; directionality is enforced
// exactly once per edge, here, and every algorithm reads it from here.
//
// Core methods:
//
//	NewGraph(nodes, edges) (*Graph, error) // O(V log V + E)
//	HasNode(id) bool                       // O(1)
//	Node(id) (Node, bool)                  // O(1)
//	NodeIDs() []string                     // O(V), sorted ascending
//	Edges() []Edge                         // O(E), insertion order
//	Neighbors(id) ([]Neighbor, error)      // O(deg), insertion order
//	EdgeBetween(from, to) (Edge, bool)     // O(E), first match wins
//	Stats() Stats                          // O(V+E)
//
// Errors:
//
//	ErrEmptyNodeID      – zero-length node ID
//	ErrDuplicateNode    – two nodes share an ID
//	ErrNodeNotFound     – lookup of an unknown node
//	ErrUnknownEndpoint  – edge references a node outside the node set
//	ErrNegativeWeight   – negative distance or weight
package core
