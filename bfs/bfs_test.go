package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/indoornav/bfs"
	"github.com/katalvlaran/indoornav/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a1 <-> a2 -> b1, plus an isolated island x <-> y.
func building(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(
		[]core.Node{{ID: "a1"}, {ID: "a2"}, {ID: "b1"}, {ID: "x"}, {ID: "y"}},
		[]core.Edge{
			{ID: "e1", From: "a1", To: "a2", Distance: 10, Weight: 10, Bidirectional: true},
			{ID: "e2", From: "a2", To: "b1", Distance: 10, Weight: 10},
			{ID: "e3", From: "y", To: "x", Distance: 1, Weight: 1, Bidirectional: true},
		},
	)
	require.NoError(t, err)

	return g
}

func TestBFS_Errors(t *testing.T) {
	t.Parallel()
	g := building(t)

	_, err := bfs.BFS(nil, "a1")
	require.ErrorIs(t, err, bfs.ErrGraphNil)
	_, err = bfs.BFS(g, "nope")
	require.ErrorIs(t, err, bfs.ErrStartNotFound)
	_, err = bfs.BFS(g, "a1", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, "a1", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)

	boom := errors.New("boom")
	_, err = bfs.BFS(g, "a1", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "a2" {
			return boom
		}
		return nil
	}))
	require.ErrorIs(t, err, boom)
}

func TestBFS_RespectsDirection(t *testing.T) {
	t.Parallel()
	g := building(t)

	res, err := bfs.BFS(g, "a1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2", "b1"}, res.Order)
	assert.Equal(t, 2, res.Depth["b1"])
	path, err := res.PathTo("b1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2", "b1"}, path)

	res, err = bfs.BFS(g, "b1")
	require.NoError(t, err)
	assert.Equal(t, []string{"b1"}, res.Order)
	assert.False(t, res.Reached("a1"))
	_, err = res.PathTo("a1")
	require.ErrorIs(t, err, bfs.ErrNotReached)
}

func TestBFS_Undirected(t *testing.T) {
	t.Parallel()
	res, err := bfs.BFS(building(t), "b1", bfs.WithUndirected())
	require.NoError(t, err)
	assert.Equal(t, []string{"b1", "a2", "a1"}, res.Order)
	assert.False(t, res.Reached("x"))
}

func TestBFS_MaxDepth(t *testing.T) {
	t.Parallel()
	res, err := bfs.BFS(building(t), "a1", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2"}, res.Order)
}

func TestComponents(t *testing.T) {
	t.Parallel()
	assert.Equal(t, [][]string{{"a1", "a2", "b1"}, {"x", "y"}}, bfs.Components(building(t)))
	assert.Nil(t, bfs.Components(nil))

	empty, err := core.NewGraph(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, bfs.Components(empty))
}
