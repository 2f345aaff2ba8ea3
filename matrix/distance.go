// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"time"

	"github.com/katalvlaran/indoornav/core"
	"github.com/katalvlaran/indoornav/metrics"
)

const opNewDistanceMatrix = "NewDistanceMatrix"

// DistanceMatrix is the all-pairs shortest-weight closure of a core.Graph.
//
// Row/column i corresponds to ids[i], the graph's node IDs sorted ascending,
// so indices are reproducible across runs for the same node set. The matrix
// is built once and never written afterwards; a reloaded graph gets a new one.
type DistanceMatrix struct {
	ids   []string       // index → node ID (sorted)
	index map[string]int // node ID → index
	dist  *Dense         // closed distances
}

// NewDistanceMatrix builds the closure for g.
//
// Implementation:
//   - Stage 1: Index nodes by sorted ID.
//   - Stage 2: Seed diag = 0, everything else +Inf.
//   - Stage 3: For each edge write weight into [from][to], and into [to][from]
//     when bidirectional; parallel edges keep the minimum.
//   - Stage 4: Run FloydWarshall in place.
//
// Errors:
//   - ErrGraphNil.
//
// Complexity: Time O(N³ + E), Space O(N²).
func NewDistanceMatrix(g *core.Graph) (*DistanceMatrix, error) {
	if g == nil {
		return nil, matrixErrorf(opNewDistanceMatrix, ErrGraphNil)
	}
	start := time.Now()

	// Stage 1: canonical index.
	ids := g.NodeIDs()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	// Stage 2: seed.
	d, err := NewFilledDense(len(ids), 0, math.Inf(1))
	if err != nil {
		return nil, matrixErrorf(opNewDistanceMatrix, err)
	}

	// Stage 3: direct edges, same directionality rule as the adjacency index.
	n := len(ids)
	for _, e := range g.Edges() {
		u, v := index[e.From], index[e.To]
		relaxDirect(d.data, u*n+v, e.Weight)
		if e.Bidirectional {
			relaxDirect(d.data, v*n+u, e.Weight)
		}
	}

	// Stage 4: closure.
	if err = FloydWarshall(d); err != nil {
		return nil, matrixErrorf(opNewDistanceMatrix, err)
	}
	metrics.MatrixBuildSeconds.Observe(time.Since(start).Seconds())

	return &DistanceMatrix{ids: ids, index: index, dist: d}, nil
}

// relaxDirect keeps the smaller of the current entry and w.
func relaxDirect(data []float64, off int, w float64) {
	if w < data[off] {
		data[off] = w
	}
}

// Distance returns the shortest total weight from a to b, +Inf when b is
// unreachable from a or when either ID is not a node. It never fails.
// Complexity: O(1).
func (m *DistanceMatrix) Distance(a, b string) float64 {
	i, ok := m.index[a]
	if !ok {
		return math.Inf(1)
	}
	j, ok := m.index[b]
	if !ok {
		return math.Inf(1)
	}

	return m.dist.data[i*len(m.ids)+j]
}

// Reachable reports whether Distance(a, b) is finite.
func (m *DistanceMatrix) Reachable(a, b string) bool {
	return !math.IsInf(m.Distance(a, b), 1)
}

// Index returns the row/column of id.
func (m *DistanceMatrix) Index(id string) (int, bool) {
	i, ok := m.index[id]

	return i, ok
}

// IDs returns the index → node ID mapping (copy).
func (m *DistanceMatrix) IDs() []string {
	out := make([]string, len(m.ids))
	copy(out, m.ids)

	return out
}

// Order returns N, the number of nodes.
func (m *DistanceMatrix) Order() int { return len(m.ids) }

// Dense returns a copy of the underlying closure.
func (m *DistanceMatrix) Dense() *Dense { return m.dist.Clone() }
