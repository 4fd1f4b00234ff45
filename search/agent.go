package search

// openCost is the fixed number of ticks an agent spends turning a valve.
const openCost = 1

// phase enumerates the three states of the per-agent machine. The
// lifecycle is strictly cyclic: idle → travelling → opening → idle, until
// the clock runs out (an unfinished action is simply abandoned).
type phase uint8

const (
	phaseIdle phase = iota
	phaseTravelling
	phaseOpening
)

// agentState is the per-agent sub-state, kept small and passed by value:
// one expansion clones many of these.
type agentState struct {
	// phase selects the variant.
	phase phase

	// dest is the agent's location when idle, or the valve it is moving
	// toward / opening otherwise.
	dest int

	// timeLeft is the remaining countdown of the current action
	// (always 0 while idle).
	timeLeft int
}

// idleAt returns the initial agent state: idle at the given valve.
func idleAt(id int) agentState {
	return agentState{phase: phaseIdle, dest: id, timeLeft: 0}
}

// settle applies the deterministic boundary transitions that fire when a
// countdown has reached zero, before the next tick elapses:
//
//   - opening with countdown 0 → the valve joins opened and the agent is
//     idle at it (free to pick a new target this very tick);
//   - travelling with countdown 0 → the agent starts opening (openCost).
//
// Agents mid-action are returned unchanged. opened is updated in place;
// the agent value is returned.
func (a agentState) settle(opened *openSet) agentState {
	switch a.phase {
	case phaseOpening:
		if a.timeLeft == 0 {
			opened.insert(a.dest)

			return idleAt(a.dest)
		}
	case phaseTravelling:
		if a.timeLeft == 0 {
			return agentState{phase: phaseOpening, dest: a.dest, timeLeft: openCost}
		}
	}

	return a
}

// elapse consumes one tick of the agent's current action. Countdowns
// saturate at zero; idle agents are untouched.
func (a agentState) elapse() agentState {
	if a.phase != phaseIdle && a.timeLeft > 0 {
		a.timeLeft--
	}

	return a
}

// options returns the agent's candidate next states at a decision point.
//
// A non-idle agent has exactly one option: continue its action. An idle
// agent branches to every closed, positive-flow valve it can reach within
// timeLeft that no other agent already holds as an in-flight destination;
// with no such valve it stays idle and waits out the clock. All
// equally-reachable targets branch — completeness over any tie-break.
//
// The engine supplies ranked (positive-flow valves reachable from the
// start set), so the flow and reachability filters are implicit.
func (e *engine) options(agents []agentState, idx int, opened openSet, timeLeft int) []agentState {
	a := agents[idx]
	if a.phase != phaseIdle {
		return []agentState{a}
	}

	// Valves other agents are already committed to.
	var claimed openSet
	var j int
	for j = range agents {
		if j != idx && agents[j].phase != phaseIdle {
			claimed.insert(agents[j].dest)
		}
	}

	var (
		row   = e.dist.Row(a.dest)
		cands []agentState
		id, d int
	)
	for _, id = range e.ranked {
		if opened.contains(id) || claimed.contains(id) {
			continue
		}
		d = row[id]
		if d >= timeLeft { // Unreachable included: it dwarfs any budget
			continue
		}
		if d == 0 {
			// Already standing on the valve: go straight to opening.
			cands = append(cands, agentState{phase: phaseOpening, dest: id, timeLeft: openCost})
			continue
		}
		cands = append(cands, agentState{phase: phaseTravelling, dest: id, timeLeft: d})
	}
	if len(cands) == 0 {
		return []agentState{a}
	}

	return cands
}
