package geojson_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/indoornav/geojson"
	"github.com/katalvlaran/indoornav/locate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Building(t *testing.T) {
	t.Parallel()
	c, err := geojson.Load(filepath.Join("testdata", "building.geojson"))
	require.NoError(t, err)

	assert.Equal(t, "2.1", c.FormatVersion)
	assert.True(t, c.ExplicitEdgeType())
	assert.Equal(t, 1, c.Ignored)

	require.Len(t, c.Nodes, 3)
	a1, a2 := c.Nodes[0], c.Nodes[1]
	assert.Equal(t, "a1", a1.ID)
	assert.Equal(t, "x1", a1.Intersection)
	assert.Equal(t, "Lobby", a1.Attrs["label"])
	require.NotNil(t, a2.Floor)
	assert.Equal(t, 2, *a2.Floor, "numeric string floor")
	assert.Equal(t, 10.0, a2.X)
	assert.Equal(t, "1,0", a2.Rotation)
	assert.Equal(t, 3, a2.Index)
	assert.Nil(t, c.Nodes[2].Floor)

	require.Len(t, c.Skipped, 1)
	assert.Equal(t, "bad", c.Skipped[0].ID)
	assert.Equal(t, 3, c.Skipped[0].Index)

	require.Len(t, c.Edges, 3)
	e1, e2 := c.Edges[0], c.Edges[1]
	assert.Equal(t, "e1", e1.ID)
	assert.Nil(t, e1.Bidirectional)
	assert.Nil(t, e1.Weight)
	assert.Equal(t, "carpet", e1.Attrs["surface"])
	assert.Empty(t, e2.ID)
	assert.Equal(t, 10.0, e2.Distance)
	require.NotNil(t, e2.Bidirectional)
	assert.False(t, *e2.Bidirectional)
	require.NotNil(t, e2.Weight)
	assert.Equal(t, 12.5, *e2.Weight)
	assert.Equal(t, "c9", c.Edges[2].To)

	require.Len(t, c.POIs, 2)
	assert.Equal(t, locate.Location{
		ID: "lift", Name: "Main lift", Kind: locate.KindElevator, Floor: 2, AccessNodes: []string{"b1"},
	}, c.POIs[0])
	assert.Equal(t, "wc", c.POIs[1].Name, "name defaults to id")
	assert.Equal(t, 1, c.POIs[1].Floor)
	assert.Equal(t, []string{"a2", "a1"}, c.POIs[1].AccessNodes)

	require.Len(t, c.Rooms, 1)
	assert.Equal(t, []string{"a1", "a2"}, c.Rooms[0].AccessNodes)
}

func TestDecode_Defaults(t *testing.T) {
	t.Parallel()
	c, err := geojson.Decode(strings.NewReader(`{"type":"FeatureCollection","features":[]}`))
	require.NoError(t, err)
	assert.Equal(t, geojson.DefaultFormatVersion, c.FormatVersion)
	assert.False(t, c.ExplicitEdgeType())
	assert.Empty(t, c.Nodes)
}

func TestLoad_Failures(t *testing.T) {
	t.Parallel()
	_, err := geojson.Load(filepath.Join("testdata", "missing.geojson"))
	require.ErrorIs(t, err, geojson.ErrLoad)

	_, err = geojson.Decode(strings.NewReader(`{"type":`))
	require.ErrorIs(t, err, geojson.ErrLoad)
}
