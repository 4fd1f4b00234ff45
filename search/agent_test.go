package search

import (
	"testing"

	"github.com/katalvlaran/ventflow/distance"
	"github.com/katalvlaran/ventflow/valve"
	"github.com/stretchr/testify/require"
)

// newTestEngine wires an engine over the given table with agents starting
// at the listed ids, exactly as Solve does.
func newTestEngine(t *testing.T, valves []valve.Valve, startIDs []int) *engine {
	t.Helper()
	dist, err := distance.AllPairs(valves)
	require.NoError(t, err)
	e := &engine{valves: valves, dist: dist, startIDs: startIDs}
	e.rankCandidates()
	return e
}

// triangle: 0 (start, no flow) connected to 1 and 2; 1—2 also linked.
func triangle() []valve.Valve {
	return []valve.Valve{
		{ID: 0, FlowRate: 0, Exits: []int{1, 2}},
		{ID: 1, FlowRate: 5, Exits: []int{0, 2}},
		{ID: 2, FlowRate: 9, Exits: []int{0, 1}},
	}
}

func TestSettle_OpeningCompletes(t *testing.T) {
	var opened openSet
	a := agentState{phase: phaseOpening, dest: 3, timeLeft: 0}.settle(&opened)
	require.Equal(t, idleAt(3), a)
	require.True(t, opened.contains(3))
}

func TestSettle_ArrivalStartsOpening(t *testing.T) {
	var opened openSet
	a := agentState{phase: phaseTravelling, dest: 4, timeLeft: 0}.settle(&opened)
	require.Equal(t, agentState{phase: phaseOpening, dest: 4, timeLeft: openCost}, a)
	require.Zero(t, opened.count())
}

func TestSettle_MidActionUnchanged(t *testing.T) {
	var opened openSet
	mid := agentState{phase: phaseTravelling, dest: 4, timeLeft: 2}
	require.Equal(t, mid, mid.settle(&opened))
	still := agentState{phase: phaseOpening, dest: 4, timeLeft: 1}
	require.Equal(t, still, still.settle(&opened))
	require.Zero(t, opened.count())
}

func TestElapse_CountdownAndSaturation(t *testing.T) {
	a := agentState{phase: phaseTravelling, dest: 1, timeLeft: 2}.elapse()
	require.Equal(t, 1, a.timeLeft)
	a = a.elapse()
	require.Zero(t, a.timeLeft)
	// Saturates: never negative.
	a = a.elapse()
	require.Zero(t, a.timeLeft)
	// Idle agents keep their zero countdown.
	require.Equal(t, idleAt(7), idleAt(7).elapse())
}

func TestOptions_EnumeratesReachableClosedValves(t *testing.T) {
	e := newTestEngine(t, triangle(), []int{0})
	agents := []agentState{idleAt(0)}

	cands := e.options(agents, 0, openSet{}, 30)
	// Both flow valves, ranked by rate descending: 2 (9) before 1 (5).
	require.Equal(t, []agentState{
		{phase: phaseTravelling, dest: 2, timeLeft: 1},
		{phase: phaseTravelling, dest: 1, timeLeft: 1},
	}, cands)
}

func TestOptions_ExcludesOpenedAndClaimed(t *testing.T) {
	e := newTestEngine(t, triangle(), []int{0, 0})

	// Agent 1 is en route to valve 2: agent 0 must not chase it too.
	agents := []agentState{
		idleAt(0),
		{phase: phaseTravelling, dest: 2, timeLeft: 1},
	}
	cands := e.options(agents, 0, openSet{}, 30)
	require.Equal(t, []agentState{{phase: phaseTravelling, dest: 1, timeLeft: 1}}, cands)

	// With valve 1 already open as well, nothing is left: stay idle.
	var opened openSet
	opened.insert(1)
	cands = e.options(agents, 0, opened, 30)
	require.Equal(t, []agentState{idleAt(0)}, cands)
}

func TestOptions_RespectsTimeBudget(t *testing.T) {
	// 0 — 1 — 2 — 3 chain; only valve 3 has flow, three hops away.
	valves := []valve.Valve{
		{ID: 0, Exits: []int{1}},
		{ID: 1, Exits: []int{0, 2}},
		{ID: 2, Exits: []int{1, 3}},
		{ID: 3, FlowRate: 10, Exits: []int{2}},
	}
	e := newTestEngine(t, valves, []int{0})
	agents := []agentState{idleAt(0)}

	// dist(0,3)=3: admissible while timeLeft > 3, gone at 3.
	require.Len(t, e.options(agents, 0, openSet{}, 4), 1)
	require.Equal(t, []agentState{idleAt(0)}, e.options(agents, 0, openSet{}, 3))
}

func TestOptions_StandingOnClosedValveOpensDirectly(t *testing.T) {
	valves := []valve.Valve{{ID: 0, FlowRate: 7, Exits: nil}}
	e := newTestEngine(t, valves, []int{0})
	agents := []agentState{idleAt(0)}

	cands := e.options(agents, 0, openSet{}, 5)
	require.Equal(t, []agentState{{phase: phaseOpening, dest: 0, timeLeft: openCost}}, cands)
}

func TestOptions_NonIdleAgentContinues(t *testing.T) {
	e := newTestEngine(t, triangle(), []int{0})
	mid := agentState{phase: phaseTravelling, dest: 2, timeLeft: 3}
	require.Equal(t, []agentState{mid}, e.options([]agentState{mid}, 0, openSet{}, 30))
}
