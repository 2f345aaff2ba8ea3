package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/indoornav/core"
)

// Dijkstra computes shortest total weights from Options.Source to every node
// of g reachable from it.
//
// Returns:
//
//   - dist: node ID → minimum weight (+Inf if unreachable or beyond MaxDistance,
//     or not settled before an early stop at Target).
//   - prev: predecessor map if ReturnPath (nil otherwise). prev[v] == u means
//     the best path to v arrives from u; prev[source] and unreachable nodes map to "".
//   - err:  ErrEmptySource, ErrNilGraph or ErrVertexNotFound.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty.
//  2. g must be non-nil.
//  3. g must contain Source, and Target when set.
//
// Negative weights cannot reach this point: core.NewGraph rejects them.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasNode(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, cfg.Source)
	}
	if cfg.Target != "" && !g.HasNode(cfg.Target) {
		return nil, nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, cfg.Target)
	}

	r := newRunner(g, cfg)
	r.init()
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns the minimum-weight node sequence from source to target.
//
// found is false when target is unreachable; that is not an error. When
// source == target the path is [source] with cost 0.
//
// Errors: same as Dijkstra.
func ShortestPath(g *core.Graph, source, target string) (Path, bool, error) {
	dist, prev, err := Dijkstra(g, Source(source), Target(target), WithReturnPath())
	if err != nil {
		return Path{}, false, err
	}

	cost := dist[target]
	if math.IsInf(cost, 1) {
		return Path{}, false, nil
	}

	nodes := []string{target}
	for cur := target; cur != source; {
		cur = prev[cur]
		nodes = append(nodes, cur)
	}
	slices.Reverse(nodes)

	return Path{Nodes: nodes, Cost: cost}, true, nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
	seq     uint64 // push counter; ties on dist settle in push order
}

func newRunner(g *core.Graph, cfg Options) *runner {
	n := g.NodeCount()

	return &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, n),
		prev:    make(map[string]string, n),
		visited: make(map[string]bool, n),
		pq:      make(nodePQ, 0, n),
	}
}

// init sets every distance to +Inf, the source to 0, and seeds the heap.
func (r *runner) init() {
	inf := math.Inf(1)
	for _, id := range r.g.NodeIDs() {
		r.dist[id] = inf
		r.prev[id] = ""
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	r.push(r.options.Source, 0)
}

func (r *runner) push(id string, d float64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.seq})
	r.seq++
}

// process pops the closest unsettled node until the heap drains, the
// frontier passes MaxDistance, or Target is settled.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// stale entry
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if u == r.options.Target {
			return
		}
		r.relax(u, item.dist)
	}
}

// relax tries to improve every unsettled neighbor of u. Only a strictly
// smaller candidate replaces the current distance and predecessor.
func (r *runner) relax(u string, du float64) {
	r.g.EachNeighbor(u, func(nb core.Neighbor) {
		if r.visited[nb.ID] {
			return
		}
		cand := du + nb.Weight
		if cand > r.options.MaxDistance || cand >= r.dist[nb.ID] {
			return
		}
		r.dist[nb.ID] = cand
		r.prev[nb.ID] = u
		r.push(nb.ID, cand)
	})
}

// nodeItem is one heap entry.
type nodeItem struct {
	id   string
	dist float64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq). Outdated entries
// stay in the heap and are skipped when popped ("lazy decrease-key").
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
