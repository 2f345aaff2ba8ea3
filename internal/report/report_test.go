package report_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/indoornav/internal/report"
	"github.com/katalvlaran/indoornav/itinerary"
	"github.com/katalvlaran/indoornav/locate"
	"github.com/katalvlaran/indoornav/navigator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoute(t *testing.T) {
	t.Parallel()
	steps := []itinerary.Step{
		{From: "a1", To: "a2", Distance: 10, Cumulative: 10, Text: "Walk from a1 to a2 (10.0m)"},
		{From: "a2", To: "b1", Distance: 10, Cumulative: 20, Text: "Walk from a2 to b1 (10.0m)"},
	}
	var buf bytes.Buffer
	require.NoError(t, report.Route(&buf, navigator.Route{
		Start: "r1", End: "lift", Path: []string{"a1", "a2", "b1"},
		Distance: 20, Steps: steps, StepCount: 2,
	}))

	out := buf.String()
	assert.Contains(t, out, "Route: r1 -> lift")
	assert.Contains(t, out, "Total Distance: 20.0m")
	assert.Contains(t, out, "Number of Steps: 2")
	assert.Contains(t, out, "Path: a1 -> a2 -> b1")
	assert.Contains(t, out, " 2. Walk from a2 to b1 (10.0m)\n    Cumulative: 20.0m")
}

func TestInfo(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, report.Info(&buf, navigator.Info{
		FormatVersion: "1.0", Nodes: 3, Edges: 2, Bidirectional: 1, Unidirectional: 1,
		NodesPerFloor: map[int]int{1: 2, 2: 1}, Floors: []int{1, 2},
		TotalDistance: 20, AverageDistance: 10, Components: 1,
	}))

	out := buf.String()
	assert.Contains(t, out, "format v1.0")
	assert.Regexp(t, `Total Nodes:\s+3`, out)
	assert.Regexp(t, `Floor 2:\s+1 nodes`, out)
	assert.Regexp(t, `Average Edge Length:\s+10.00m`, out)
	assert.NotContains(t, out, "Skipped Records")
}

func TestNearbyAndNoRoute(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	pois := []navigator.Nearby{
		{ID: "wc", Name: "WC", Kind: locate.KindMenToilet, Distance: 4},
		{ID: "lift", Name: "Lift", Kind: locate.KindElevator, Distance: 9.25},
	}
	require.NoError(t, report.Nearby(&buf, pois, 1))
	assert.Contains(t, buf.String(), "* WC (men_toilet) - 4.0m")
	assert.NotContains(t, buf.String(), "Lift")

	buf.Reset()
	require.NoError(t, report.Nearby(&buf, nil, 5))
	assert.Contains(t, buf.String(), "(none)")

	buf.Reset()
	require.NoError(t, report.NoRoute(&buf, "b1", "a1"))
	assert.Contains(t, buf.String(), "No route found between b1 and a1")
}
