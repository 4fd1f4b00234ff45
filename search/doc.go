// Package search implements the time-boxed multi-agent flow optimizer:
// a best-first branch-and-bound over the joint state of N cooperating
// agents walking a valve network.
//
// Model:
//
//	Time advances in discrete ticks. Each agent is a tiny state machine —
//	Idle (free to pick a closed valve to pursue), Travelling (counting
//	down the shortest hop distance), Opening (one tick to turn the
//	valve). Open valves release their flow rate on every subsequent tick.
//	All agents advance in lockstep; the joint search state is the agent
//	vector plus the opened-valve set, the flow accumulated so far and the
//	remaining time.
//
// Search:
//
//	A max-priority queue orders states by an optimistic estimate of their
//	final total (accumulated flow + an admissible teleport-relaxation
//	bound). The driver pops the most promising state, folds in the
//	"do nothing further" answer, expands the Cartesian product of each
//	agent's options one tick forward, and discards any child whose
//	estimate cannot beat the best answer found so far. Because the bound
//	never underestimates, the returned value is the exact optimum — the
//	same guarantee A* gives.
//
// The search is single-threaded and purely synchronous; the only
// "concurrency" is the logical lockstep of the simulated agents.
//
// Entry points: FindOptimalTotalFlow (just the number) and Solve (number
// plus search statistics).
package search
