// Package bfs provides hop-count breadth-first traversal and a connected
// component census over a core.Graph.
//
// Traversal follows the adjacency index, so one-way edges are honored by
// default. WithUndirected walks every edge both ways, which is what
// Components uses to report weakly connected parts of a building.
//
// Determinism: neighbors are expanded in adjacency insertion order and
// Components seeds from node IDs in ascending order, so Order, Parent and
// the component list are reproducible for the same input.
//
// Complexity: O(V + E) time and space per traversal.
package bfs
