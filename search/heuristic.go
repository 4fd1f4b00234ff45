package search

// bound returns an optimistic upper limit on the flow still obtainable
// from the closed valves, given the opened set and the remaining ticks.
//
// Teleportation relaxation: travel cost and valve exclusivity are
// ignored. The simulation walks the remaining ticks accruing the current
// virtual rate; on every second tick each agent "opens" the next-best
// closed valve as if it had teleported there. Once nothing is left to
// open, the remainder collapses into one multiplication.
//
// Admissibility: in reality an agent's first opening needs at least one
// tick (opening the valve under its feet) and every later opening at
// least two (one travel hop + one opening tick, since its own valve is
// already open). The virtual cadence opens at ticks 0, 2, 4, … — always
// at least one tick early — and always picks the highest rates first, so
// no achievable completion can exceed the bound. Branch-and-bound
// pruning, and with it the optimality of the search, rests on this.
//
// Complexity: O(timeLeft + V).
func (e *engine) bound(opened openSet, timeLeft int) int {
	var (
		total, cur int
		next       int // cursor into ranked: next closed candidate
		i, a       int
		virtually  bool // opened at least one valve this boundary
	)

	// Current real rate; newly "opened" valves contribute from the
	// following virtual tick, mirroring the real accrual rule.
	cur = e.rateOf(opened)

	for i = 0; i < timeLeft; i++ {
		total += cur

		if i%2 != 0 {
			continue
		}
		virtually = false
		for a = 0; a < len(e.startIDs); a++ {
			for next < len(e.ranked) && opened.contains(e.ranked[next]) {
				next++ // skip valves that were already open on entry
			}
			if next >= len(e.ranked) {
				break
			}
			cur += e.valves[e.ranked[next]].FlowRate
			next++
			virtually = true
		}
		if !virtually {
			// Everything is open: the rate is final for the rest of the
			// budget, close the accumulation in one step.
			return total + cur*(timeLeft-i-1)
		}
	}

	return total
}
