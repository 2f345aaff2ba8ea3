package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/indoornav/internal/cli"
	"github.com/katalvlaran/indoornav/navigator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMap = filepath.Join("..", "..", "internal", "app", "testdata", "building.geojson")

func TestRun_Route(t *testing.T) {
	var out, logs bytes.Buffer
	err := run(context.Background(), &out, &logs, []string{testMap, "a1", "b1"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Route: a1 -> b1")
}

func TestRun_Unresolved(t *testing.T) {
	var out, logs bytes.Buffer
	err := run(context.Background(), &out, &logs, []string{testMap, "a1", "nowhere"})
	require.ErrorIs(t, err, navigator.ErrUnresolved)
	assert.Equal(t, cli.ExitUnresolved, cli.ExitCode(err))
}

func TestRun_Help(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &out, &bytes.Buffer{}, []string{"-h"}))
	assert.Contains(t, out.String(), "-nearby")
}
