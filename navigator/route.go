package navigator

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/indoornav/dijkstra"
	"github.com/katalvlaran/indoornav/itinerary"
	"github.com/katalvlaran/indoornav/metrics"
)

// Route is the result of a successful Navigate call.
//
// Distance is physical: the sum of step distances users are told. Cost is
// the routing weight minimized by the search; the two differ when edges
// carry a weight override.
type Route struct {
	Start        string           `json:"start"`
	End          string           `json:"end"`
	StartNode    string           `json:"start_node"`
	EndNode      string           `json:"end_node"`
	Path         []string         `json:"path"`
	Distance     float64          `json:"distance"`
	Cost         float64          `json:"cost"`
	Instructions []string         `json:"instructions"`
	Steps        []itinerary.Step `json:"steps"`
	StepCount    int              `json:"num_steps"`
}

// Navigate resolves start and end and finds a route between them.
//
// Returns ok == false with a nil error when both endpoints resolve but no
// path exists. An endpoint that cannot be resolved yields an error wrapping
// ErrUnresolved that names every failing endpoint.
func (n *Navigator) Navigate(start, end string) (Route, bool, error) {
	from, okFrom := n.Resolve(start)
	to, okTo := n.Resolve(end)
	if !okFrom || !okTo {
		var failed []string
		if !okFrom {
			failed = append(failed, fmt.Sprintf("start %q", start))
		}
		if !okTo {
			failed = append(failed, fmt.Sprintf("end %q", end))
		}
		metrics.RouteQueries.WithLabelValues(metrics.OutcomeUnresolved).Inc()

		return Route{}, false, fmt.Errorf("%w: %s", ErrUnresolved, strings.Join(failed, ", "))
	}

	p, found, err := dijkstra.ShortestPath(n.graph, from, to)
	if err != nil {
		return Route{}, false, fmt.Errorf("navigator: %w", err)
	}
	if !found {
		metrics.RouteQueries.WithLabelValues(metrics.OutcomeNoPath).Inc()
		n.logger.Debug("no path", "from", from, "to", to)

		return Route{}, false, nil
	}

	steps := itinerary.Generate(n.graph, n.dist, p.Nodes)
	metrics.RouteQueries.WithLabelValues(metrics.OutcomeFound).Inc()

	return Route{
		Start:        start,
		End:          end,
		StartNode:    from,
		EndNode:      to,
		Path:         p.Nodes,
		Distance:     itinerary.Total(steps),
		Cost:         n.dist.Distance(from, to),
		Instructions: itinerary.Texts(steps),
		Steps:        steps,
		StepCount:    len(steps),
	}, true, nil
}
