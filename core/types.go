// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, Neighbor value types, defaults and sentinel errors.

package core

import (
	"errors"
	"fmt"
	"maps"
)

// Sentinel errors for core graph construction and queries.
var (
	// ErrEmptyNodeID indicates that a node was supplied with an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates that two nodes share the same ID.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrUnknownEndpoint indicates an edge endpoint is not part of the node set.
	ErrUnknownEndpoint = errors.New("core: edge endpoint not in node set")

	// ErrNegativeWeight indicates a negative distance or weight on an edge.
	ErrNegativeWeight = errors.New("core: negative edge distance or weight")
)

// Defaults applied by loaders when a field is absent.
const (
	// DefaultFloor is the floor assumed for nodes and edges without one.
	DefaultFloor = 1

	// DefaultRotation is the orientation sentinel for nodes without one.
	DefaultRotation = "0,1"
)

// Attributes is the open-ended key/value extension bag carried by nodes and
// edges next to their fixed schema. Values are whatever the input decoder
// produced (string, float64, bool, nested maps).
type Attributes map[string]any

// Clone returns a shallow copy; nil stays nil.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}

	return maps.Clone(a)
}

// Position is a planar map coordinate in the editor's units (meters).
type Position struct {
	X float64
	Y float64
}

// Node is a single walkable point in the indoor graph.
//
// ID is unique across the whole graph, not per floor.
type Node struct {
	ID           string
	Position     Position
	Floor        int
	Rotation     string
	Index        int
	Intersection string // optional "inct" tag; empty when absent
	Attrs        Attributes
}

// String implements fmt.Stringer.
func (n Node) String() string {
	return fmt.Sprintf("NavNode(id=%s, pos=(%g, %g), floor=%d)", n.ID, n.Position.X, n.Position.Y, n.Floor)
}

// Edge is an author-specified connection between two nodes.
//
// Distance is what users are told; Weight is what searches minimize. They may
// diverge, e.g. an elevator with a short Distance but an inflated Weight.
type Edge struct {
	ID            string
	From          string
	To            string
	Distance      float64
	Weight        float64
	Bidirectional bool
	Floor         int
	Attrs         Attributes
}

// Connects reports whether the edge can be traversed from → to, honoring
// directionality: a one-way edge only matches its own orientation.
// Complexity: O(1).
func (e Edge) Connects(from, to string) bool {
	if e.From == from && e.To == to {
		return true
	}

	return e.Bidirectional && e.From == to && e.To == from
}

// String implements fmt.Stringer.
func (e Edge) String() string {
	direction := "->"
	if e.Bidirectional {
		direction = "<->"
	}

	return fmt.Sprintf("Edge(%s %s %s, d=%.2fm)", e.From, direction, e.To, e.Distance)
}

// Neighbor is one adjacency entry: a reachable node, the weight of the hop,
// and the edge that produced it.
type Neighbor struct {
	ID     string
	Weight float64
	EdgeID string
}
