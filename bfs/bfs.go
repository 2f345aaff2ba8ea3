package bfs

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/indoornav/core"
)

type queueItem struct {
	id    string
	depth int
}

type walker struct {
	next    func(id string, fn func(string))
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS walks g from start.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrStartNotFound, the context
// error on cancellation, or the wrapped OnVisit error.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	next := directed(g)
	if o.Undirected {
		next = undirected(g)
	}
	w := newWalker(g.NodeCount(), o, next)
	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

// Components returns the weakly connected components of g. Each component
// is sorted ascending and components are ordered by their smallest ID.
// A nil graph has no components.
func Components(g *core.Graph) [][]string {
	if g == nil {
		return nil
	}

	next := undirected(g)
	seen := make(map[string]bool, g.NodeCount())
	var out [][]string
	for _, id := range g.NodeIDs() {
		if seen[id] {
			continue
		}
		w := newWalker(0, DefaultOptions(), next)
		w.enqueue(id, 0, "")
		_ = w.loop() // background context, no hook: cannot fail

		comp := w.res.Order
		for _, v := range comp {
			seen[v] = true
		}
		slices.Sort(comp)
		out = append(out, comp)
	}

	return out
}

func newWalker(n int, o Options, next func(string, func(string))) *walker {
	return &walker{
		next:    next,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
}

// directed expands along the adjacency index.
func directed(g *core.Graph) func(string, func(string)) {
	return func(id string, fn func(string)) {
		g.EachNeighbor(id, func(nb core.Neighbor) { fn(nb.ID) })
	}
}

// undirected adds the reverse of every one-way edge to the adjacency index.
func undirected(g *core.Graph) func(string, func(string)) {
	reverse := make(map[string][]string)
	for _, e := range g.Edges() {
		if !e.Bidirectional {
			reverse[e.To] = append(reverse[e.To], e.From)
		}
	}

	return func(id string, fn func(string)) {
		g.EachNeighbor(id, func(nb core.Neighbor) { fn(nb.ID) })
		for _, from := range reverse[id] {
			fn(from)
		}
	}
}

func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}

		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		w.next(item.id, func(nbr string) {
			if !w.visited[nbr] {
				w.enqueue(nbr, nextDepth, item.id)
			}
		})
	}

	return nil
}
