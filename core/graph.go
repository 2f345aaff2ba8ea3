// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Immutable Graph construction and read-only queries.
// Determinism:
//   - NodeIDs() is sorted ascending; Edges() and Neighbors() keep insertion order.
// Concurrency:
//   - No locks: nothing is written after NewGraph returns.

package core

import (
	"fmt"
	"math"
	"slices"
)

// Graph is the immutable navigation graph.
//
// nodes maps ID to Node; ids is the sorted canonical node ordering shared by
// every index-based consumer (the distance matrix in particular); edges keeps
// the accepted edges in load order; adjacency is derived once from edges.
type Graph struct {
	nodes     map[string]Node       // node ID → Node
	ids       []string              // sorted node IDs
	edges     []Edge                // accepted edges, insertion order
	adjacency map[string][]Neighbor // node ID → outgoing hops, insertion order
}

// NewGraph builds a Graph from nodes and edges.
//
// Implementation:
//   - Stage 1: Register nodes; reject empty and duplicate IDs.
//   - Stage 2: Validate each edge (known endpoints, non-negative, finite) and append it.
//   - Stage 3: Derive the adjacency index, applying directionality exactly once per edge.
//
// Behavior highlights:
//   - Strict: the first invalid input aborts construction. Lenient, skip-and-warn
//     loading lives in package builder, which feeds only valid input here.
//   - Attributes are shallow-copied so callers cannot mutate the graph afterwards.
//
// Errors:
//   - ErrEmptyNodeID, ErrDuplicateNode, ErrUnknownEndpoint, ErrNegativeWeight (wrapped with context).
//
// Complexity:
//   - Time O(V log V + E), Space O(V + E).
func NewGraph(nodes []Node, edges []Edge) (*Graph, error) {
	g := &Graph{
		nodes:     make(map[string]Node, len(nodes)),
		ids:       make([]string, 0, len(nodes)),
		edges:     make([]Edge, 0, len(edges)),
		adjacency: make(map[string][]Neighbor, len(nodes)),
	}

	// Stage 1: nodes.
	for _, n := range nodes {
		if n.ID == "" {
			return nil, ErrEmptyNodeID
		}
		if _, dup := g.nodes[n.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, n.ID)
		}
		n.Attrs = n.Attrs.Clone()
		g.nodes[n.ID] = n
		g.ids = append(g.ids, n.ID)
		g.adjacency[n.ID] = nil
	}
	slices.Sort(g.ids)

	// Stage 2: edges.
	for _, e := range edges {
		if err := g.validateEdge(e); err != nil {
			return nil, err
		}
		e.Attrs = e.Attrs.Clone()
		g.edges = append(g.edges, e)
	}

	// Stage 3: adjacency.
	for _, e := range g.edges {
		g.adjacency[e.From] = append(g.adjacency[e.From], Neighbor{ID: e.To, Weight: e.Weight, EdgeID: e.ID})
		if e.Bidirectional {
			g.adjacency[e.To] = append(g.adjacency[e.To], Neighbor{ID: e.From, Weight: e.Weight, EdgeID: e.ID})
		}
	}

	return g, nil
}

// validateEdge checks endpoint membership and the numeric policy for one edge.
func (g *Graph) validateEdge(e Edge) error {
	if _, ok := g.nodes[e.From]; !ok {
		return fmt.Errorf("%w: edge %s start %q", ErrUnknownEndpoint, e.ID, e.From)
	}
	if _, ok := g.nodes[e.To]; !ok {
		return fmt.Errorf("%w: edge %s end %q", ErrUnknownEndpoint, e.ID, e.To)
	}
	if e.Distance < 0 || e.Weight < 0 || math.IsNaN(e.Distance) || math.IsNaN(e.Weight) {
		return fmt.Errorf("%w: edge %s distance=%g weight=%g", ErrNegativeWeight, e.ID, e.Distance, e.Weight)
	}

	return nil
}

// HasNode reports whether id is a node of the graph.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]

	return ok
}

// Node returns the node with the given ID.
// Complexity: O(1).
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]

	return n, ok
}

// NodeIDs returns all node IDs sorted ascending. The returned slice is a copy.
// This ordering is the canonical index space used by package matrix.
// Complexity: O(V).
func (g *Graph) NodeIDs() []string {
	return slices.Clone(g.ids)
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int { return len(g.ids) }

// EdgeCount returns |E| (accepted edges; a bidirectional edge counts once).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns a copy of the edge list in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	return slices.Clone(g.edges)
}

// Neighbors returns the adjacency entries of id in insertion order.
//
// Errors:
//   - ErrNodeNotFound if id is not a node.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return slices.Clone(nbrs), nil
}

// EachNeighbor calls fn for every adjacency entry of id, in insertion order,
// without copying. Unknown IDs yield no calls. Hot loops (searches) use this.
func (g *Graph) EachNeighbor(id string, fn func(Neighbor)) {
	for _, nb := range g.adjacency[id] {
		fn(nb)
	}
}

// EdgeBetween returns the first edge, in edge-list order, that can be
// traversed from → to (forward match, or reverse match on a bidirectional edge).
// Complexity: O(E).
func (g *Graph) EdgeBetween(from, to string) (Edge, bool) {
	for _, e := range g.edges {
		if e.Connects(from, to) {
			return e, true
		}
	}

	return Edge{}, false
}
