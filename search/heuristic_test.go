package search

import (
	"testing"

	"github.com/katalvlaran/ventflow/valve"
	"github.com/stretchr/testify/require"
)

func TestBound_TeleportCadence(t *testing.T) {
	// Two closed valves (13 and 2) reachable from a flowless start.
	// Virtual schedule: open 13 at tick 0 (flows ticks 1..3 = 39),
	// open 2 at tick 2 (flows tick 3 = 2) → 41.
	valves := []valve.Valve{
		{ID: 0, FlowRate: 0, Exits: []int{1, 2}},
		{ID: 1, FlowRate: 13, Exits: []int{0}},
		{ID: 2, FlowRate: 2, Exits: []int{0}},
	}
	e := newTestEngine(t, valves, []int{0})
	require.Equal(t, 41, e.bound(openSet{}, 4))
}

func TestBound_TwoAgentsOpenInParallel(t *testing.T) {
	// With two agents both valves open at virtual tick 0 and flow for
	// the remaining two ticks: 2 × 10 × 2.
	valves := []valve.Valve{
		{ID: 0, FlowRate: 0, Exits: []int{1, 2}},
		{ID: 1, FlowRate: 10, Exits: []int{0}},
		{ID: 2, FlowRate: 10, Exits: []int{0}},
	}
	e := newTestEngine(t, valves, []int{0, 0})
	require.Equal(t, 40, e.bound(openSet{}, 3))
}

func TestBound_EverythingOpenCollapses(t *testing.T) {
	valves := triangle()
	e := newTestEngine(t, valves, []int{0})
	var opened openSet
	opened.insert(1)
	opened.insert(2)
	// Nothing left to open: rate × remaining ticks, in one step.
	require.Equal(t, (5+9)*6, e.bound(opened, 6))
}

func TestBound_ZeroTime(t *testing.T) {
	e := newTestEngine(t, triangle(), []int{0})
	require.Zero(t, e.bound(openSet{}, 0))
}

// exactSingle is a tiny exhaustive single-agent optimum used to verify
// admissibility: the bound must never fall below the true best.
func exactSingle(valves []valve.Valve, at, timeLeft int, open uint64, memo map[[3]uint64]int) int {
	if timeLeft == 0 {
		return 0
	}
	key := [3]uint64{uint64(at), open, uint64(timeLeft)}
	if v, ok := memo[key]; ok {
		return v
	}

	var cur int
	for id := range valves {
		if open&(1<<uint(id)) != 0 {
			cur += valves[id].FlowRate
		}
	}
	best := cur * timeLeft
	if open&(1<<uint(at)) == 0 && valves[at].FlowRate > 0 {
		if v := cur + exactSingle(valves, at, timeLeft-1, open|1<<uint(at), memo); v > best {
			best = v
		}
	}
	for _, ex := range valves[at].Exits {
		if v := cur + exactSingle(valves, ex, timeLeft-1, open, memo); v > best {
			best = v
		}
	}
	memo[key] = best
	return best
}

func TestBound_Admissible(t *testing.T) {
	graphs := [][]valve.Valve{
		triangle(),
		{
			{ID: 0, FlowRate: 3, Exits: []int{1}},
			{ID: 1, FlowRate: 0, Exits: []int{0, 2}},
			{ID: 2, FlowRate: 11, Exits: []int{1, 3}},
			{ID: 3, FlowRate: 6, Exits: []int{2}},
		},
		{
			{ID: 0, FlowRate: 0, Exits: []int{1, 2, 3}},
			{ID: 1, FlowRate: 8, Exits: []int{0}},
			{ID: 2, FlowRate: 3, Exits: []int{0}},
			{ID: 3, FlowRate: 5, Exits: []int{0}},
		},
	}
	for gi, valves := range graphs {
		e := newTestEngine(t, valves, []int{0})
		for budget := 0; budget <= 12; budget++ {
			exact := exactSingle(valves, 0, budget, 0, map[[3]uint64]int{})
			require.GreaterOrEqual(t, e.bound(openSet{}, budget), exact,
				"graph %d budget %d", gi, budget)
		}
	}
}
