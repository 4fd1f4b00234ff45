// SPDX-License-Identifier: MIT
// Package distance precomputes all-pairs shortest hop counts over a
// normalized valve table.
//
// The solver never walks tunnels one by one: an agent that commits to a
// target valve travels the shortest corridor toward it, so the only
// structural fact the search needs is the minimum hop count between every
// pair of valves. AllPairs seeds a dense matrix from the adjacency lists
// (every tunnel costs one hop) and closes it with Floyd–Warshall.
//
// Unreachable pairs keep the Unreachable sentinel; relaxation skips them
// instead of adding, so "no path" can never overflow into a finite value.
//
// Complexity: O(V³) time, O(V²) space — fine for the tens-of-valves
// networks this library targets.
package distance
