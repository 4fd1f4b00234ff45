package search

import (
	"container/heap"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/katalvlaran/ventflow/distance"
	"github.com/katalvlaran/ventflow/valve"
)

// FindOptimalTotalFlow returns the maximum total flow a team of agents
// starting at startIDs can release from valves within timeBudget ticks.
//
// The result is exact (see the package documentation for the optimality
// argument), never negative, and never exceeds sum(flowRate)×timeBudget.
// Degenerate inputs yield definite answers: a zero budget or an all-zero
// flow graph returns 0.
//
// Errors: ErrNoAgents, ErrStartOutOfRange, ErrNegativeTimeBudget,
// ErrNegativeFlowRate, ErrTooManyValves, ErrOptionViolation, plus
// distance.ErrExitOutOfRange if the table was not normalized.
func FindOptimalTotalFlow(startIDs []int, valves []valve.Valve, timeBudget int, opts ...Option) (int, error) {
	res, err := Solve(startIDs, valves, timeBudget, opts...)
	if err != nil {
		return 0, err
	}

	return res.MaxFlow, nil
}

// Solve runs the same search as FindOptimalTotalFlow and additionally
// reports frontier statistics. With WithTimeLimit the result may be
// truncated: MaxFlow is then the best incumbent, a lower bound on the
// optimum, flagged by Result.Truncated.
func Solve(startIDs []int, valves []valve.Valve, timeBudget int, opts ...Option) (Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	// 2) Validate the instance.
	if len(startIDs) == 0 {
		return Result{}, ErrNoAgents
	}
	if timeBudget < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrNegativeTimeBudget, timeBudget)
	}
	if len(valves) > openSetCap {
		return Result{}, fmt.Errorf("%w: %d > %d", ErrTooManyValves, len(valves), openSetCap)
	}
	var id int
	for _, id = range startIDs {
		if id < 0 || id >= len(valves) {
			return Result{}, fmt.Errorf("%w: %d (table size %d)", ErrStartOutOfRange, id, len(valves))
		}
	}
	var v valve.Valve
	for _, v = range valves {
		if v.FlowRate < 0 {
			return Result{}, fmt.Errorf("%w: valve %d rate %d", ErrNegativeFlowRate, v.ID, v.FlowRate)
		}
	}

	// 3) Structural precompute: all-pairs hop counts.
	dist, err := distance.AllPairs(valves)
	if err != nil {
		return Result{}, err
	}

	// 4) Assemble the engine and run.
	e := &engine{
		valves:   valves,
		dist:     dist,
		startIDs: startIDs,
		opts:     cfg,
	}
	e.rankCandidates()
	if cfg.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(cfg.TimeLimit)
	}
	e.run(timeBudget)

	e.res.MaxFlow = e.best

	return e.res, nil
}

// engine holds all search data for one invocation. A dedicated struct
// (rather than closures) keeps dependencies explicit and hot-path state
// predictable.
type engine struct {
	// Read-only problem data
	valves   []valve.Valve
	dist     *distance.Matrix
	startIDs []int

	// ranked lists positive-flow valves reachable from at least one
	// start, sorted by flow rate descending (index tiebreak). It drives
	// both candidate enumeration and the heuristic bound; valves outside
	// it can never be opened and never contribute.
	ranked []int

	// Policy
	opts        Options
	useDeadline bool
	deadline    time.Time
	steps       int // sparse deadline check counter

	// Search state
	frontier frontier
	best     int // incumbent: best provable total so far
	res      Result
}

// rankCandidates precomputes the ranked valve list (see engine.ranked).
func (e *engine) rankCandidates() {
	var id, s int
	var reachable bool
	for id = range e.valves {
		if e.valves[id].FlowRate <= 0 {
			continue
		}
		reachable = false
		for _, s = range e.startIDs {
			if e.dist.At(s, id) != distance.Unreachable {
				reachable = true
				break
			}
		}
		if reachable {
			e.ranked = append(e.ranked, id)
		}
	}
	sort.SliceStable(e.ranked, func(i, j int) bool {
		return e.valves[e.ranked[i]].FlowRate > e.valves[e.ranked[j]].FlowRate
	})
}

// deadlineExpired performs a rare wall-clock test (every 1024 pops) so
// the soft limit costs nearly nothing on the hot path.
func (e *engine) deadlineExpired() bool {
	e.steps++
	if !e.useDeadline || (e.steps&1023) != 0 {
		return false
	}

	return time.Now().After(e.deadline)
}

// run drives the best-first loop until the frontier drains (or the soft
// deadline fires). Termination is guaranteed without it: every child
// carries timeLeft one lower than its parent, and zero-budget states
// produce no children.
func (e *engine) run(timeBudget int) {
	// Root: all agents idle at their starts, nothing open, full budget.
	// The +∞ estimate sentinel guarantees the root is popped first.
	root := globalState{
		agents:   make([]agentState, len(e.startIDs)),
		timeLeft: timeBudget,
		estimate: math.MaxInt,
	}
	var i int
	for i = range e.startIDs {
		root.agents[i] = idleAt(e.startIDs[i])
	}
	e.push(root)

	var (
		s    *globalState
		wait int
	)
	for e.frontier.Len() > 0 {
		s = heap.Pop(&e.frontier).(*globalState)
		e.res.Expanded++
		if e.opts.OnExpand != nil {
			e.opts.OnExpand(s.timeLeft, s.estimate, e.best)
		}
		if e.deadlineExpired() {
			e.res.Truncated = true

			return
		}

		// "Do nothing further" is always a valid answer: bank the flow of
		// the open valves — completed openings settle for free at the
		// next boundary — for the remaining ticks.
		wait = s.flow + s.timeLeft*e.rateOf(settledOpenings(s.agents, s.opened))
		if wait > e.best {
			e.best = wait
		}

		if s.timeLeft == 0 {
			continue
		}

		// Lazy cut: the incumbent may have improved since this entry was
		// pushed; an overtaken estimate proves the subtree hopeless.
		if s.estimate <= e.best {
			e.res.Pruned++

			continue
		}

		e.expandChildren(s)
	}
}

// push enqueues a state onto the frontier.
func (e *engine) push(s globalState) {
	heap.Push(&e.frontier, &s)
}

// frontier is a max-heap of *globalState ordered by estimate descending:
// the most promising state is always expanded next. Stale entries whose
// estimate has been overtaken by the incumbent are skipped on pop rather
// than removed (the lazy strategy).
type frontier []*globalState

// Len returns the number of states in the heap.
func (f frontier) Len() int { return len(f) }

// Less defines the comparison: larger estimate → higher priority.
func (f frontier) Less(i, j int) bool { return f[i].estimate > f[j].estimate }

// Swap swaps two elements in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *globalState.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*globalState)) }

// Pop removes and returns the highest-estimate element.
// Called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
