// SPDX-License-Identifier: MIT
// Package: indoornav/builder
//
// records.go - raw input records and the load report.

package builder

import (
	"fmt"

	"github.com/katalvlaran/indoornav/core"
)

// NodeRecord is one navigation node as read from the input, before defaults.
// Optional fields use pointers so that an explicit zero (floor 0) is
// distinguishable from an absent value.
type NodeRecord struct {
	ID           string
	X, Y         float64
	Floor        *int
	Rotation     string // empty → core.DefaultRotation
	Index        int
	Intersection string
	Attrs        core.Attributes
}

// EdgeRecord is one explicit edge as read from the input, before defaults.
type EdgeRecord struct {
	ID            string // empty → auto-assigned
	From          string
	To            string
	Distance      float64
	Bidirectional *bool    // nil → true
	Weight        *float64 // nil → Distance
	Floor         *int
	Attrs         core.Attributes
}

// Kind tells which record family a Warning refers to.
type Kind string

const (
	KindNode Kind = "node"
	KindEdge Kind = "edge"
)

// Reason classifies why a record was dropped.
type Reason string

const (
	ReasonEmptyNodeID     Reason = "empty_node_id"
	ReasonDuplicateNode   Reason = "duplicate_node"
	ReasonMissingEndpoint Reason = "missing_endpoint"
	ReasonUnknownEndpoint Reason = "unknown_endpoint"
	ReasonNegativeWeight  Reason = "negative_weight"
)

// Warning describes one skipped record.
type Warning struct {
	Kind   Kind
	ID     string
	Reason Reason
	Detail string
}

// String implements fmt.Stringer.
func (w Warning) String() string {
	return fmt.Sprintf("%s %s skipped (%s): %s", w.Kind, w.ID, w.Reason, w.Detail)
}

// Report summarizes one Build call.
type Report struct {
	Nodes    int // accepted nodes
	Edges    int // accepted edges
	Warnings []Warning
}

// Dropped counts warnings with the given reason.
func (r Report) Dropped(reason Reason) int {
	n := 0
	for _, w := range r.Warnings {
		if w.Reason == reason {
			n++
		}
	}

	return n
}
