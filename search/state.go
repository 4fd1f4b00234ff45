package search

// globalState is the unit of search: the joint agent vector, the opened
// set, the flow banked so far and the remaining budget. States are values
// — expansion builds fresh children and never mutates a parent, because
// many divergent futures are explored from one state.
type globalState struct {
	agents   []agentState
	opened   openSet
	flow     int // accumulated flow, monotonically non-decreasing
	timeLeft int // ticks remaining, strictly decreasing to 0
	estimate int // flow + optimistic bound; ordering only, never the answer
}

// expandChildren builds every child of s one tick ahead:
//
//  1. settle the boundary — completed openings join the opened set
//     (before this tick's accrual rate is read), arrivals begin opening;
//  2. gather each agent's candidate next states;
//  3. take the Cartesian product across agents — the joint branching is
//     the product of the independent per-agent choices;
//  4. advance each combination one tick: bank one tick of the settled
//     flow rate, consume one tick of every countdown, decrement the
//     budget, and score the child with the admissible bound. Openings
//     that finished this tick count as open when scoring — they settle
//     for free at the child's own boundary.
//
// Children that cannot beat the incumbent are counted and dropped; the
// survivors are pushed onto the frontier.
func (e *engine) expandChildren(s *globalState) {
	// 1. Boundary: clone agents, apply completed transitions.
	var (
		settled = make([]agentState, len(s.agents))
		opened  = s.opened
		i       int
	)
	for i = range s.agents {
		settled[i] = s.agents[i].settle(&opened)
	}
	rate := e.rateOf(opened)

	// 2. Per-agent candidate lists.
	lists := make([][]agentState, len(settled))
	for i = range settled {
		lists[i] = e.options(settled, i, opened, s.timeLeft)
	}

	// 3.–4. Odometer over the cross-product; one child per combination.
	var (
		idxs  = make([]int, len(lists))
		combo []agentState
		child globalState
		p     int
	)
	for {
		combo = make([]agentState, len(lists))
		for i = range lists {
			combo[i] = lists[i][idxs[i]].elapse()
		}

		child = globalState{
			agents:   combo,
			opened:   opened,
			flow:     s.flow + rate,
			timeLeft: s.timeLeft - 1,
		}
		child.estimate = child.flow + e.bound(settledOpenings(child.agents, child.opened), child.timeLeft)

		// Branch-and-bound cut: an admissible estimate that cannot beat
		// the incumbent proves the whole subtree hopeless.
		if child.estimate > e.best {
			e.push(child)
			e.res.Enqueued++
		} else {
			e.res.Pruned++
		}

		// Advance the odometer.
		for p = len(idxs) - 1; p >= 0; p-- {
			idxs[p]++
			if idxs[p] < len(lists[p]) {
				break
			}
			idxs[p] = 0
		}
		if p < 0 {
			return
		}
	}
}

// settledOpenings folds completed-but-unsettled openings into opened: an
// agent whose opening countdown has hit zero settles its valve at the
// next boundary, before any further accrual, so for scoring purposes the
// valve already flows for every remaining tick. opened is a value; the
// caller's copy is untouched.
func settledOpenings(agents []agentState, opened openSet) openSet {
	var a agentState
	for _, a = range agents {
		if a.phase == phaseOpening && a.timeLeft == 0 {
			opened.insert(a.dest)
		}
	}

	return opened
}

// rateOf sums the flow rates of the opened valves. Only positive-flow
// valves are ever opened, so walking the ranked list covers the set.
func (e *engine) rateOf(opened openSet) int {
	var rate, id int
	for _, id = range e.ranked {
		if opened.contains(id) {
			rate += e.valves[id].FlowRate
		}
	}

	return rate
}
