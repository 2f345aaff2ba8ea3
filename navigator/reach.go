package navigator

import (
	"context"
	"fmt"

	"github.com/katalvlaran/indoornav/bfs"
)

// Reached is one node reachable from an origin.
type Reached struct {
	ID       string  `json:"id"`
	Hops     int     `json:"hops"`
	Distance float64 `json:"distance"`
}

// Reachable lists the nodes reachable from location by following edge
// direction, in breadth-first order. maxHops > 0 bounds the walk; 0 means
// no bound. Distance is the weighted matrix distance, not the hop count.
//
// Errors: ErrUnresolved, bfs.ErrOptionViolation for maxHops < 0, or the
// context error.
func (n *Navigator) Reachable(ctx context.Context, location string, maxHops int) ([]Reached, error) {
	origin, ok := n.Resolve(location)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnresolved, location)
	}

	res, err := bfs.BFS(n.graph, origin, bfs.WithContext(ctx), bfs.WithMaxDepth(maxHops))
	if err != nil {
		return nil, err
	}

	out := make([]Reached, 0, len(res.Order))
	for _, id := range res.Order {
		out = append(out, Reached{ID: id, Hops: res.Depth[id], Distance: n.dist.Distance(origin, id)})
	}

	return out, nil
}
