package navigator

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/indoornav/locate"
	"github.com/katalvlaran/indoornav/metrics"
)

// ErrBadRadius indicates a negative or NaN search radius.
var ErrBadRadius = errors.New("navigator: radius must be a non-negative number")

// Nearby is one POI within reach of an origin.
type Nearby struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Kind     locate.Kind `json:"type"`
	Floor    int         `json:"floor"`
	Node     string      `json:"node"`
	Distance float64     `json:"distance"`
}

// NearbyPOIs lists POIs (rooms excluded) whose matrix distance from location
// is at most maxDistance, nearest first, ties by ID. Unreachable POIs are
// never listed.
//
// Errors: ErrUnresolved for an unknown origin, ErrBadRadius.
func (n *Navigator) NearbyPOIs(location string, maxDistance float64) ([]Nearby, error) {
	if maxDistance < 0 || math.IsNaN(maxDistance) {
		return nil, fmt.Errorf("%w: %g", ErrBadRadius, maxDistance)
	}
	origin, ok := n.Resolve(location)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnresolved, location)
	}
	metrics.NearbyQueries.Inc()

	out := []Nearby{}
	for _, poi := range n.resolver.Registry().POIs() {
		node, ok := n.Resolve(poi.ID)
		if !ok {
			continue
		}
		d := n.dist.Distance(origin, node)
		if math.IsInf(d, 1) || d > maxDistance {
			continue
		}
		out = append(out, Nearby{
			ID:       poi.ID,
			Name:     poi.Name,
			Kind:     poi.Kind,
			Floor:    poi.Floor,
			Node:     node,
			Distance: d,
		})
	}
	slices.SortStableFunc(out, func(a, b Nearby) int {
		if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return out, nil
}
