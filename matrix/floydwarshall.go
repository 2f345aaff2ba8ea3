// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) with deterministic loop order.
//
// Contract:
//   - Square matrix; +Inf means "no path"; diagonal must be 0 before calling.

package matrix

import "math"

const opFloydWarshall = "FloydWarshall"

// FloydWarshall closes m in place: for every intermediate k, for every pair
// (i, j), m[i][j] = min(m[i][j], m[i][k] + m[k][j]).
//
// Determinism:
//   - Loop order is fixed (k → i → j) and only strict improvements are
//     written, so accumulation order is stable across runs.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (wrapped with the operation tag).
//
// Complexity: Time O(n³), extra space O(1).
func FloydWarshall(m *Dense) error {
	if m == nil {
		return matrixErrorf(opFloydWarshall, ErrNilMatrix)
	}
	if m.r != m.c {
		return matrixErrorf(opFloydWarshall, ErrNonSquare)
	}

	n := m.r
	data := m.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) { // i cannot reach k; nothing to gain via k
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	return nil
}
