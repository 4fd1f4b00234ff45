package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSettledOpenings_FoldsCompletedOpenings(t *testing.T) {
	agents := []agentState{
		{phase: phaseOpening, dest: 2, timeLeft: 0},
		{phase: phaseTravelling, dest: 1, timeLeft: 2},
		idleAt(0),
	}
	var opened openSet
	folded := settledOpenings(agents, opened)
	require.True(t, folded.contains(2))
	require.False(t, folded.contains(1))
	require.Equal(t, 1, folded.count())
	// Value semantics: the caller's set is untouched.
	require.Zero(t, opened.count())
}

func TestExpandChildren_EstimateCoversCompletedOpening(t *testing.T) {
	// The agent reaches valve 2 (rate 9) exactly at the boundary: it
	// settles into opening and the single child carries the opening with
	// its countdown spent. From the child, valve 2 settles for free and
	// flows all 5 remaining ticks (45), and opening valve 1 afterwards
	// can still add 3 ticks of flow (15). The child's optimistic score
	// must dominate that achievable 60, or the cut in run would discard
	// an optimal line.
	e := newTestEngine(t, triangle(), []int{0})
	parent := globalState{
		agents:   []agentState{{phase: phaseTravelling, dest: 2, timeLeft: 0}},
		timeLeft: 6,
	}
	e.expandChildren(&parent)
	require.Equal(t, 1, e.frontier.Len())

	child := e.frontier[0]
	require.Equal(t, agentState{phase: phaseOpening, dest: 2, timeLeft: 0}, child.agents[0])
	require.GreaterOrEqual(t, child.estimate, 60)
}
