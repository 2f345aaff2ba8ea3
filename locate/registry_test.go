package locate_test

import (
	"testing"

	"github.com/katalvlaran/indoornav/locate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccessNodes(t *testing.T) {
	t.Parallel()
	cases := map[string][]string{
		"":          nil,
		";":         nil,
		"a1":        {"a1"},
		"a1;a2":     {"a1", "a2"},
		" a1 ; ;a2": {"a1", "a2"},
	}
	for in, want := range cases {
		assert.Equal(t, want, locate.ParseAccessNodes(in), "input %q", in)
	}
}

func TestRegistry_OrderAndDefaults(t *testing.T) {
	t.Parallel()
	reg := locate.NewRegistry()

	for _, id := range []string{"wc2", "lift", "wc1"} {
		_, err := reg.AddPOI(locate.Location{ID: id})
		require.NoError(t, err)
	}
	pois := reg.POIs()
	require.Len(t, pois, 3)
	assert.Equal(t, []string{"lift", "wc1", "wc2"}, []string{pois[0].ID, pois[1].ID, pois[2].ID})
	assert.Equal(t, "lift", pois[0].Name, "name defaults to ID")
	assert.Equal(t, locate.KindPOI, pois[0].Kind)

	replaced, err := reg.AddPOI(locate.Location{ID: "lift", Name: "Main lift", Kind: locate.KindElevator})
	require.NoError(t, err)
	assert.True(t, replaced)
	got, ok := reg.POI("lift")
	require.True(t, ok)
	assert.Equal(t, "Main lift", got.Name)

	n, r := reg.Len()
	assert.Equal(t, 3, n)
	assert.Zero(t, r)
	assert.Empty(t, reg.Rooms())
}

func TestRegistry_Rejects(t *testing.T) {
	t.Parallel()
	reg := locate.NewRegistry()

	_, err := reg.AddPOI(locate.Location{})
	require.ErrorIs(t, err, locate.ErrEmptyID)
	_, err = reg.AddPOI(locate.Location{ID: "x", Kind: locate.KindRoom})
	require.ErrorIs(t, err, locate.ErrWrongKind)
	_, err = reg.AddRoom(locate.Location{ID: "x", Kind: locate.KindStair})
	require.ErrorIs(t, err, locate.ErrWrongKind)
}

func TestRegistry_CopiesAccessNodes(t *testing.T) {
	t.Parallel()
	reg := locate.NewRegistry()
	nodes := []string{"a1", "a2"}
	_, err := reg.AddRoom(locate.Location{ID: "r", AccessNodes: nodes})
	require.NoError(t, err)
	nodes[0] = "mutated"

	got, _ := reg.Room("r")
	assert.Equal(t, []string{"a1", "a2"}, got.AccessNodes)
}

func TestParseKind(t *testing.T) {
	t.Parallel()
	k, ok := locate.ParseKind("men_toilet")
	require.True(t, ok)
	assert.True(t, k.IsPOI())

	k, ok = locate.ParseKind("room")
	require.True(t, ok)
	assert.False(t, k.IsPOI())

	_, ok = locate.ParseKind("point")
	assert.False(t, ok)
}
