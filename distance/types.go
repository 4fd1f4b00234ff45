// SPDX-License-Identifier: MIT
package distance

import (
	"errors"
	"math"
)

// Unreachable marks a pair with no connecting path. Kept far below
// math.MaxInt so that accidental arithmetic on it is still detectable,
// but large enough that no real hop count approaches it.
const Unreachable = math.MaxInt32

// ErrExitOutOfRange is returned when an adjacency entry references an id
// outside the valve table. A normalized table cannot contain one; hitting
// this error indicates a bug in the caller, not a runtime condition.
var ErrExitOutOfRange = errors.New("distance: exit id out of range")

// Matrix is a dense, immutable all-pairs hop-count table over valve ids.
// Row-major flat storage keeps At on the hot path allocation-free.
type Matrix struct {
	n    int
	hops []int // hops[i*n+j] = min hop count i→j, or Unreachable
}

// Len returns the number of valves the matrix covers.
func (m *Matrix) Len() int { return m.n }

// At returns the minimum hop count from valve i to valve j
// (Unreachable if no path exists). Bounds are the caller's contract;
// ids come from the same normalized table the matrix was built from.
func (m *Matrix) At(i, j int) int { return m.hops[i*m.n+j] }

// Row returns the row of hop counts out of valve i. The returned slice
// aliases the matrix storage and must not be modified.
func (m *Matrix) Row(i int) []int { return m.hops[i*m.n : (i+1)*m.n] }
