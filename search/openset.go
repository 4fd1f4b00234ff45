package search

import "math/bits"

// openSetCap is the largest valve id an openSet can hold. Two machine
// words keep the set a comparable value type with O(1) copies, which
// matters because every state expansion clones it.
const openSetCap = 128

// openSet is a fixed-size bitset of opened valve ids. Along a single
// search path the set only ever grows: valves are never closed again.
type openSet [2]uint64

// insert marks valve id as opened. Inserting an already-open id is a
// no-op, which is exactly what two agents finishing the same valve need.
func (s *openSet) insert(id int) { s[id>>6] |= 1 << (uint(id) & 63) }

// contains reports whether valve id is opened.
func (s openSet) contains(id int) bool { return s[id>>6]&(1<<(uint(id)&63)) != 0 }

// count returns the number of opened valves.
func (s openSet) count() int { return bits.OnesCount64(s[0]) + bits.OnesCount64(s[1]) }
