// Package ventflow finds the maximum total flow a team of agents can
// release from a network of valves before a fixed time budget expires.
//
// 🚀 What is ventflow?
//
//	A small, deterministic optimization library built from three layers:
//		• valve/    — text parsing & normalization of the valve network
//		              into a dense integer-id table
//		• distance/ — all-pairs shortest hop counts (Floyd–Warshall)
//		• search/   — best-first branch-and-bound over lockstep agent
//		              state machines, pruned by an admissible heuristic
//
// The problem:
//
//	Each valve has a flow rate and tunnels to neighboring valves. An agent
//	may walk one tunnel per tick or spend one tick opening the valve it
//	stands on; an open valve releases its flow rate on every remaining
//	tick. One or more agents cooperate; the search returns the maximum
//	total flow achievable within the budget.
//
// Quick example:
//
//	valves, _ := valve.Parse(strings.NewReader(input), "AA")
//	best, _ := search.FindOptimalTotalFlow([]int{0}, valves, 30)
//
// Guarantees:
//
//   - Exact: the pruning bound never underestimates, so the returned
//     value is the true optimum (A*-equivalent).
//   - Deterministic: no randomness, no goroutines, no hidden state.
//   - Pure Go: the library layers carry no runtime dependencies.
package ventflow
