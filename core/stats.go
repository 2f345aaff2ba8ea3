// SPDX-License-Identifier: MIT

package core

import (
	"maps"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats is a read-only census of a Graph.
type Stats struct {
	Nodes          int
	Edges          int
	Bidirectional  int
	Unidirectional int

	// NodesPerFloor counts nodes by floor; Floors lists its keys ascending.
	NodesPerFloor map[int]int
	Floors        []int

	// TotalDistance and AverageDistance aggregate declared edge distances
	// (each edge once, regardless of direction). Average is 0 without edges.
	TotalDistance   float64
	AverageDistance float64
}

// Stats computes the graph census.
// Complexity: O(V + E).
func (g *Graph) Stats() Stats {
	s := Stats{
		Nodes:         len(g.ids),
		Edges:         len(g.edges),
		NodesPerFloor: make(map[int]int),
	}

	for _, id := range g.ids {
		s.NodesPerFloor[g.nodes[id].Floor]++
	}
	s.Floors = slices.Sorted(maps.Keys(s.NodesPerFloor))

	if len(g.edges) == 0 {
		return s
	}

	distances := make([]float64, len(g.edges))
	for i, e := range g.edges {
		distances[i] = e.Distance
		if e.Bidirectional {
			s.Bidirectional++
		} else {
			s.Unidirectional++
		}
	}
	s.TotalDistance = floats.Sum(distances)
	s.AverageDistance = stat.Mean(distances, nil)

	return s
}
