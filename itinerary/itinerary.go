// Package itinerary turns a node path into distance-annotated walking steps.
//
// Step distances are physical (core.Edge.Distance), not the routing weight.
// The first edge in edge-list order that connects two consecutive nodes is
// used, honoring one-way edges; a DistanceLookup is consulted only when no
// such edge exists.
package itinerary

import (
	"fmt"

	"github.com/katalvlaran/indoornav/core"
)

// EdgeLookup finds the first edge traversable from → to.
// *core.Graph implements it.
type EdgeLookup interface {
	EdgeBetween(from, to string) (core.Edge, bool)
}

// DistanceLookup returns a pairwise distance. *matrix.DistanceMatrix implements it.
type DistanceLookup interface {
	Distance(a, b string) float64
}

// Step is one leg of an itinerary.
type Step struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	Distance   float64 `json:"distance"`
	Cumulative float64 `json:"cumulative"`
	Text       string  `json:"text"`
}

// String implements fmt.Stringer.
func (s Step) String() string { return s.Text }

// Generate builds one Step per consecutive pair of path. A path shorter than
// two nodes yields an empty, non-nil slice. fallback may be nil, in which
// case an unmatched pair contributes distance 0.
//
// Complexity: O(len(path) * E) with the linear core.Graph lookup.
func Generate(edges EdgeLookup, fallback DistanceLookup, path []string) []Step {
	if len(path) < 2 {
		return []Step{}
	}

	steps := make([]Step, 0, len(path)-1)
	var total float64
	for i := 0; i+1 < len(path); i++ {
		from, to := path[i], path[i+1]
		d := stepDistance(edges, fallback, from, to)
		total += d
		steps = append(steps, Step{
			From:       from,
			To:         to,
			Distance:   d,
			Cumulative: total,
			Text:       Phrase(from, to, d),
		})
	}

	return steps
}

func stepDistance(edges EdgeLookup, fallback DistanceLookup, from, to string) float64 {
	if edges != nil {
		if e, ok := edges.EdgeBetween(from, to); ok {
			return e.Distance
		}
	}
	if fallback != nil {
		return fallback.Distance(from, to)
	}

	return 0
}

// Phrase renders the instruction text for a single leg.
func Phrase(from, to string, d float64) string {
	return fmt.Sprintf("Walk from %s to %s (%.1fm)", from, to, d)
}

// Total returns the final cumulative distance of steps, 0 when empty.
func Total(steps []Step) float64 {
	if len(steps) == 0 {
		return 0
	}

	return steps[len(steps)-1].Cumulative
}

// Texts returns the instruction phrases in order.
func Texts(steps []Step) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.Text
	}

	return out
}
