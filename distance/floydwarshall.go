// SPDX-License-Identifier: MIT
package distance

import (
	"fmt"

	"github.com/katalvlaran/ventflow/valve"
)

// AllPairs builds the hop-count matrix for the given valve table and
// closes it with Floyd–Warshall.
//
// Contract:
//   - valves is a normalized table (valves[i].ID == i); every id in every
//     Exits list must index the table, otherwise ErrExitOutOfRange.
//
// Determinism: seeding and relaxation follow fixed loop orders, so the
// same table always yields an identical matrix.
//
// Complexity: Time O(V³), Space O(V²).
func AllPairs(valves []valve.Valve) (*Matrix, error) {
	n := len(valves)
	m := &Matrix{n: n, hops: make([]int, n*n)}

	// Seed: diagonal 0, direct exits 1, everything else Unreachable.
	var (
		i, j, e int
		base    int
	)
	for i = 0; i < n; i++ {
		base = i * n
		for j = 0; j < n; j++ {
			if i != j {
				m.hops[base+j] = Unreachable
			}
		}
		for _, e = range valves[i].Exits {
			if e < 0 || e >= n {
				return nil, fmt.Errorf("%w: valve %d exit %d (table size %d)", ErrExitOutOfRange, i, e, n)
			}
			if e != i { // self-loops never beat the zero diagonal
				m.hops[base+e] = 1
			}
		}
	}

	floydWarshallInPlace(m)

	return m, nil
}

// floydWarshallInPlace runs the APSP closure on m in place.
//
// Loop order is fixed (k → i → j) for deterministic accumulation.
// Unreachable operands are skipped instead of added, which is the
// saturating-addition rule: no path through k can improve i→j, and no
// finite sum can overflow.
// Time: O(n³); Extra space: O(1). No allocations inside the hot loops.
func floydWarshallInPlace(m *Matrix) {
	n := m.n

	// Predeclare all loop counters and temporaries; nothing allocates here.
	var (
		k, i, j      int // loop indices
		baseK, baseI int // row base offsets for k and i in the flat buffer
		ik, kj, cand int // hops i→k, k→j and the candidate i→k→j
	)

	data := m.hops

	for k = 0; k < n; k++ { // outer: intermediate valve k
		baseK = k * n

		for i = 0; i < n; i++ { // middle: source valve i
			ik = data[i*n+k]
			if ik == Unreachable { // i cannot reach k:
				continue // no path via k can improve i→j
			}
			baseI = i * n

			for j = 0; j < n; j++ { // inner: destination valve j
				kj = data[baseK+j]
				if kj == Unreachable { // k cannot reach j
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
	}
}
