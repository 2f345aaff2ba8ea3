// SPDX-License-Identifier: MIT
package builder_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/katalvlaran/indoornav/builder"
	"github.com/katalvlaran/indoornav/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

// quietLogger discards output but keeps the records observable when needed.
func quietLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func scenarioNodes() []builder.NodeRecord {
	return []builder.NodeRecord{
		{ID: "a1", X: 0, Y: 0},
		{ID: "a2", X: 10, Y: 0},
		{ID: "b1", X: 10, Y: 10},
	}
}

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	g, rep, err := builder.Build(
		[]builder.NodeRecord{{ID: "a", X: 1, Y: 2}, {ID: "b", Floor: ptr(0), Rotation: "1,0", Index: 4, Intersection: "c3"}},
		[]builder.EdgeRecord{{From: "a", To: "b", Distance: 7}},
		builder.WithLogger(quietLogger(&buf)),
	)
	require.NoError(t, err)
	assert.Empty(t, rep.Warnings)

	a, ok := g.Node("a")
	require.True(t, ok)
	assert.Equal(t, core.DefaultFloor, a.Floor)
	assert.Equal(t, core.DefaultRotation, a.Rotation)
	assert.Equal(t, 0, a.Index)
	assert.Equal(t, core.Position{X: 1, Y: 2}, a.Position)

	b, _ := g.Node("b")
	assert.Equal(t, 0, b.Floor, "explicit floor 0 must survive")
	assert.Equal(t, "1,0", b.Rotation)
	assert.Equal(t, 4, b.Index)
	assert.Equal(t, "c3", b.Intersection)

	edges := g.Edges()
	require.Len(t, edges, 1)
	e := edges[0]
	assert.Equal(t, "edge_0", e.ID)
	assert.True(t, e.Bidirectional)
	assert.Equal(t, 7.0, e.Weight, "weight defaults to distance")
	assert.Equal(t, core.DefaultFloor, e.Floor)

	assert.Contains(t, buf.String(), "graph loaded")
}

func TestBuild_WeightOverride(t *testing.T) {
	t.Parallel()
	g, _, err := builder.Build(
		scenarioNodes(),
		[]builder.EdgeRecord{{ID: "lift", From: "a1", To: "a2", Distance: 2, Weight: ptr(50.0), Bidirectional: ptr(false)}},
		builder.WithLogger(quietLogger(&bytes.Buffer{})),
	)
	require.NoError(t, err)

	e, ok := g.EdgeBetween("a1", "a2")
	require.True(t, ok)
	assert.Equal(t, 2.0, e.Distance)
	assert.Equal(t, 50.0, e.Weight)
	assert.False(t, e.Bidirectional)
}

func TestBuild_SkipsMalformedEdges(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	g, rep, err := builder.Build(
		scenarioNodes(),
		[]builder.EdgeRecord{
			{ID: "ok", From: "a1", To: "a2", Distance: 10},
			{ID: "dangling", From: "a2", To: "c9", Distance: 3},
			{ID: "half", From: "a1", Distance: 1},
			{ID: "neg", From: "a1", To: "b1", Distance: -1},
		},
		builder.WithLogger(quietLogger(&buf)),
	)
	require.NoError(t, err)

	assert.Equal(t, 3, g.NodeCount(), "node count is unaffected by dropped edges")
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 3, rep.Nodes)
	assert.Equal(t, 1, rep.Edges)
	assert.Equal(t, 1, rep.Dropped(builder.ReasonUnknownEndpoint))
	assert.Equal(t, 1, rep.Dropped(builder.ReasonMissingEndpoint))
	assert.Equal(t, 1, rep.Dropped(builder.ReasonNegativeWeight))
	assert.Contains(t, buf.String(), "record skipped")
}

func TestBuild_AutoIDCountsAcceptedEdges(t *testing.T) {
	t.Parallel()
	g, _, err := builder.Build(
		scenarioNodes(),
		[]builder.EdgeRecord{
			{From: "a1", To: "a2", Distance: 1},
			{From: "a1", To: "zz", Distance: 1}, // dropped, does not advance the counter
			{From: "a2", To: "b1", Distance: 1},
		},
		builder.WithLogger(quietLogger(&bytes.Buffer{})),
	)
	require.NoError(t, err)

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, "edge_0", edges[0].ID)
	assert.Equal(t, "edge_1", edges[1].ID)
}

func TestBuild_DuplicateAndEmptyNodes(t *testing.T) {
	t.Parallel()
	g, rep, err := builder.Build(
		[]builder.NodeRecord{{ID: "a", X: 1}, {ID: "a", X: 99}, {ID: ""}},
		nil,
		builder.WithLogger(quietLogger(&bytes.Buffer{})),
	)
	require.NoError(t, err)

	assert.Equal(t, 1, g.NodeCount())
	n, _ := g.Node("a")
	assert.Equal(t, 1.0, n.Position.X, "first record wins")
	assert.Equal(t, 1, rep.Dropped(builder.ReasonDuplicateNode))
	assert.Equal(t, 1, rep.Dropped(builder.ReasonEmptyNodeID))
}

func TestBuild_Strict(t *testing.T) {
	t.Parallel()
	_, rep, err := builder.Build(
		scenarioNodes(),
		[]builder.EdgeRecord{{ID: "dangling", From: "a1", To: "c9"}},
		builder.WithStrict(),
	)
	require.ErrorIs(t, err, builder.ErrMalformedRecord)
	require.Len(t, rep.Warnings, 1)
	assert.Equal(t, "dangling", rep.Warnings[0].ID)
}

func TestBuild_EdgeIDScheme(t *testing.T) {
	t.Parallel()
	g, _, err := builder.Build(
		scenarioNodes(),
		[]builder.EdgeRecord{{From: "a1", To: "a2"}},
		builder.WithLogger(quietLogger(&bytes.Buffer{})),
		builder.WithEdgeIDScheme(func(n int) string { return "link" }),
	)
	require.NoError(t, err)
	assert.Equal(t, "link", g.Edges()[0].ID)

	g, _, err = builder.Build(
		scenarioNodes(),
		[]builder.EdgeRecord{{From: "a1", To: "a2"}, {From: "a2", To: "a1"}},
		builder.WithLogger(quietLogger(&bytes.Buffer{})),
		builder.WithEdgeIDPrefix("hall-"),
	)
	require.NoError(t, err)
	assert.Equal(t, "hall-1", g.Edges()[1].ID)
}

func TestOptions_PanicOnNil(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { builder.WithLogger(nil) })
	assert.Panics(t, func() { builder.WithEdgeIDScheme(nil) })
	assert.Panics(t, func() { builder.WithEdgeIDPrefix("") })
}
