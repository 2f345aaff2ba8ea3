package mcptools_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/indoornav/builder"
	"github.com/katalvlaran/indoornav/config"
	"github.com/katalvlaran/indoornav/geojson"
	"github.com/katalvlaran/indoornav/internal/mcptools"
	"github.com/katalvlaran/indoornav/locate"
	"github.com/katalvlaran/indoornav/navigator"
)

func ptr[T any](v T) *T { return &v }

func testNavigator(t *testing.T) *navigator.Navigator {
	t.Helper()
	n, err := navigator.New(&geojson.Collection{
		EdgeType: geojson.ExplicitEdges,
		Nodes:    []builder.NodeRecord{{ID: "a1"}, {ID: "a2"}, {ID: "b1"}},
		Edges: []builder.EdgeRecord{
			{ID: "e1", From: "a1", To: "a2", Distance: 10},
			{ID: "e2", From: "a2", To: "b1", Distance: 10, Bidirectional: ptr(false)},
		},
		POIs: []locate.Location{
			{ID: "lift", Kind: locate.KindElevator, AccessNodes: []string{"b1"}},
			{ID: "wc", Kind: locate.KindWomenToilet, AccessNodes: []string{"a2"}},
		},
		Rooms: []locate.Location{{ID: "r1", AccessNodes: []string{"a1", "a2"}}},
	}, navigator.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)

	return n
}

func TestService_Navigate(t *testing.T) {
	t.Parallel()
	nav := testNavigator(t)
	svc := mcptools.NewService(func() *navigator.Navigator { return nav }, config.Default().Nearby)
	ctx := context.Background()

	res, out, err := svc.Navigate(ctx, nil, mcptools.NavigateArgs{From: "r1", To: "lift"})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, out.Found)
	assert.Equal(t, []string{"a1", "a2", "b1"}, out.Path)
	assert.Equal(t, 20.0, out.Distance)
	require.Len(t, res.Content, 1)
	assert.Contains(t, res.Content[0].(*mcp.TextContent).Text, "1. Walk from a1 to a2 (10.0m)")

	_, out, err = svc.Navigate(ctx, nil, mcptools.NavigateArgs{From: "b1", To: "a1"})
	require.NoError(t, err)
	assert.False(t, out.Found)

	_, _, err = svc.Navigate(ctx, nil, mcptools.NavigateArgs{From: "x", To: "a1"})
	require.ErrorIs(t, err, navigator.ErrUnresolved)

	_, _, err = svc.Navigate(ctx, nil, mcptools.NavigateArgs{From: "a1"})
	require.Error(t, err)
}

func TestService_NearbyPOIs(t *testing.T) {
	t.Parallel()
	nav := testNavigator(t)
	svc := mcptools.NewService(func() *navigator.Navigator { return nav }, config.NearbyConfig{Radius: 15, Limit: 5})
	ctx := context.Background()

	_, out, err := svc.NearbyPOIs(ctx, nil, mcptools.NearbyArgs{From: "a1"})
	require.NoError(t, err)
	require.Len(t, out.POIs, 1, "default radius excludes lift at 20m")
	assert.Equal(t, "wc", out.POIs[0].ID)

	_, out, err = svc.NearbyPOIs(ctx, nil, mcptools.NearbyArgs{From: "a1", Max: 50, Limit: 1})
	require.NoError(t, err)
	require.Len(t, out.POIs, 1)

	_, out, err = svc.NearbyPOIs(ctx, nil, mcptools.NearbyArgs{From: "a1", Max: 50})
	require.NoError(t, err)
	assert.Len(t, out.POIs, 2)

	_, _, err = svc.NearbyPOIs(ctx, nil, mcptools.NearbyArgs{})
	require.Error(t, err)
}

func TestServer_InMemory(t *testing.T) {
	t.Parallel()
	nav := testNavigator(t)
	ctx := context.Background()

	srv := mcptools.NewServer(func() *navigator.Navigator { return nav }, config.Default().Nearby, "test")
	clientT, serverT := mcp.NewInMemoryTransports()
	ss, err := srv.Connect(ctx, serverT, nil)
	require.NoError(t, err)
	defer ss.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0"}, nil)
	cs, err := client.Connect(ctx, clientT, nil)
	require.NoError(t, err)
	defer cs.Close()

	tools, err := cs.ListTools(ctx, nil)
	require.NoError(t, err)
	names := make([]string, 0, len(tools.Tools))
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"navigate", "nearby_pois"}, names)

	res, err := cs.CallTool(ctx, &mcp.CallToolParams{
		Name:      "navigate",
		Arguments: map[string]any{"from": "a1", "to": "b1"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	raw, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	var out mcptools.NavigateResult
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, []string{"a1", "a2", "b1"}, out.Path)

	res, err = cs.CallTool(ctx, &mcp.CallToolParams{
		Name:      "navigate",
		Arguments: map[string]any{"from": "nowhere", "to": "b1"},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
}
