// SPDX-License-Identifier: MIT
// Package: indoornav/builder
//
// build.go - the single public entry-point of the package.

package builder

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/indoornav/core"
	"github.com/katalvlaran/indoornav/metrics"
)

// ErrMalformedRecord is returned by Build under WithStrict when a record
// would otherwise have been skipped.
var ErrMalformedRecord = errors.New("builder: malformed record")

// Build validates node and edge records and assembles a core.Graph.
//
// Implementation:
//   - Stage 1: Apply node defaults; skip empty and duplicate IDs.
//   - Stage 2: With the complete node set known, apply edge defaults and skip
//     edges with missing/unknown endpoints or negative numbers.
//   - Stage 3: Hand the surviving input to core.NewGraph, log the summary and
//     publish the graph gauges.
//
// Errors:
//   - ErrMalformedRecord (strict mode only), wrapping the first skip reason.
//   - Any core.NewGraph error; unreachable for input that passed stages 1-2.
//
// Complexity:
//   - Time O(V log V + E), Space O(V + E).
func Build(nodes []NodeRecord, edges []EdgeRecord, opts ...Option) (*core.Graph, Report, error) {
	cfg := newConfig(opts...)
	b := &run{cfg: cfg, seen: make(map[string]struct{}, len(nodes))}

	// Stage 1: nodes first.
	accepted := make([]core.Node, 0, len(nodes))
	for _, rec := range nodes {
		n, ok := b.node(rec)
		if !ok {
			if b.err != nil {
				return nil, b.report, b.err
			}
			continue
		}
		accepted = append(accepted, n)
	}

	// Stage 2: edges, validated against the complete node set.
	kept := make([]core.Edge, 0, len(edges))
	for _, rec := range edges {
		e, ok := b.edge(rec, len(kept))
		if !ok {
			if b.err != nil {
				return nil, b.report, b.err
			}
			continue
		}
		kept = append(kept, e)
	}

	// Stage 3: assemble.
	g, err := core.NewGraph(accepted, kept)
	if err != nil {
		return nil, b.report, fmt.Errorf("builder: %w", err)
	}
	b.report.Nodes = g.NodeCount()
	b.report.Edges = g.EdgeCount()

	cfg.logger.Info("graph loaded",
		"nodes", b.report.Nodes,
		"edges", b.report.Edges,
		"skipped", len(b.report.Warnings))
	metrics.GraphNodes.Set(float64(b.report.Nodes))
	metrics.GraphEdges.Set(float64(b.report.Edges))

	return g, b.report, nil
}

// run holds the mutable state of one Build call.
type run struct {
	cfg    config
	seen   map[string]struct{} // accepted node IDs
	report Report
	err    error // set only in strict mode
}

// node applies defaults to rec, or records a skip.
func (b *run) node(rec NodeRecord) (core.Node, bool) {
	if rec.ID == "" {
		b.skip(KindNode, "", ReasonEmptyNodeID, "node record without id")
		return core.Node{}, false
	}
	if _, dup := b.seen[rec.ID]; dup {
		b.skip(KindNode, rec.ID, ReasonDuplicateNode, "node id already loaded; first record wins")
		return core.Node{}, false
	}
	b.seen[rec.ID] = struct{}{}

	n := core.Node{
		ID:           rec.ID,
		Position:     core.Position{X: rec.X, Y: rec.Y},
		Floor:        core.DefaultFloor,
		Rotation:     rec.Rotation,
		Index:        rec.Index,
		Intersection: rec.Intersection,
		Attrs:        rec.Attrs,
	}
	if rec.Floor != nil {
		n.Floor = *rec.Floor
	}
	if n.Rotation == "" {
		n.Rotation = core.DefaultRotation
	}

	return n, true
}

// edge applies defaults to rec, or records a skip. accepted is the number of
// edges kept so far and seeds the fallback ID.
func (b *run) edge(rec EdgeRecord, accepted int) (core.Edge, bool) {
	id := rec.ID
	if id == "" {
		id = b.cfg.edgeIDFn(accepted)
	}

	if rec.From == "" || rec.To == "" {
		b.skip(KindEdge, id, ReasonMissingEndpoint, "missing start/end nodes")
		return core.Edge{}, false
	}
	_, okFrom := b.seen[rec.From]
	_, okTo := b.seen[rec.To]
	if !okFrom || !okTo {
		b.skip(KindEdge, id, ReasonUnknownEndpoint,
			fmt.Sprintf("references unknown nodes %s -> %s", rec.From, rec.To))
		return core.Edge{}, false
	}

	e := core.Edge{
		ID:            id,
		From:          rec.From,
		To:            rec.To,
		Distance:      rec.Distance,
		Weight:        rec.Distance,
		Bidirectional: true,
		Floor:         core.DefaultFloor,
		Attrs:         rec.Attrs,
	}
	if rec.Weight != nil {
		e.Weight = *rec.Weight
	}
	if rec.Bidirectional != nil {
		e.Bidirectional = *rec.Bidirectional
	}
	if rec.Floor != nil {
		e.Floor = *rec.Floor
	}

	if !validNumber(e.Distance) || !validNumber(e.Weight) {
		b.skip(KindEdge, id, ReasonNegativeWeight,
			fmt.Sprintf("distance=%g weight=%g", e.Distance, e.Weight))
		return core.Edge{}, false
	}

	return e, true
}

// validNumber rejects negatives and NaN. +Inf is allowed: it marks an edge
// that exists but is never worth taking.
func validNumber(v float64) bool {
	return v >= 0 && !math.IsNaN(v)
}

// skip records a Warning, logs it and counts it; in strict mode it also
// latches ErrMalformedRecord.
func (b *run) skip(kind Kind, id string, reason Reason, detail string) {
	w := Warning{Kind: kind, ID: id, Reason: reason, Detail: detail}
	b.report.Warnings = append(b.report.Warnings, w)
	metrics.RecordsDropped.WithLabelValues(string(kind), string(reason)).Inc()

	if b.cfg.strict {
		b.err = fmt.Errorf("%w: %s", ErrMalformedRecord, w)
		return
	}
	b.cfg.logger.Warn("record skipped",
		"kind", kind,
		"id", id,
		"reason", reason,
		"detail", detail)
}
