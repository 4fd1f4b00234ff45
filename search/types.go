package search

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for search invocation.
var (
	// ErrNoAgents is returned when startIDs is empty.
	ErrNoAgents = errors.New("search: at least one agent is required")

	// ErrStartOutOfRange is returned when a start id does not index the
	// valve table.
	ErrStartOutOfRange = errors.New("search: start id out of range")

	// ErrNegativeTimeBudget is returned for a negative tick budget.
	ErrNegativeTimeBudget = errors.New("search: time budget cannot be negative")

	// ErrNegativeFlowRate is returned when the table contains a valve
	// with negative flow; the optimizer has no meaning for such graphs.
	ErrNegativeFlowRate = errors.New("search: negative flow rate")

	// ErrTooManyValves is returned when the table exceeds the opened-set
	// capacity (see openSetCap).
	ErrTooManyValves = errors.New("search: valve table exceeds opened-set capacity")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Option configures the search via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when
// the search is invoked.
type Option func(*Options)

// Options holds the tunable parameters of one search invocation.
type Options struct {
	// TimeLimit, if > 0, soft-bounds the wall-clock duration of the
	// search. On expiry the driver stops and returns the best incumbent
	// found so far with Result.Truncated set; the value is then a lower
	// bound on the optimum rather than the optimum itself.
	TimeLimit time.Duration

	// OnExpand, if non-nil, is called once per expanded state with the
	// state's remaining ticks, its ordering estimate and the incumbent
	// best value at that moment.
	OnExpand func(timeLeft, estimate, best int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no wall-clock limit and no hooks.
func DefaultOptions() Options {
	return Options{
		TimeLimit: 0,
		OnExpand:  nil,
		err:       nil,
	}
}

// WithTimeLimit soft-bounds the wall-clock duration of the search.
//
//	d > 0: stop after roughly d, returning the best incumbent
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: TimeLimit cannot be negative (%v)", ErrOptionViolation, d)

			return
		}
		o.TimeLimit = d
	}
}

// WithOnExpand registers a callback observed once per expanded state.
func WithOnExpand(fn func(timeLeft, estimate, best int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result holds the outcome of one search invocation.
type Result struct {
	// MaxFlow is the maximum total flow achievable within the budget
	// (exact unless Truncated).
	MaxFlow int

	// Expanded counts states popped from the frontier.
	Expanded int

	// Enqueued counts child states pushed onto the frontier.
	Enqueued int

	// Pruned counts states discarded by the bound cut: children rejected
	// at push time plus frontier entries skipped at pop after the
	// incumbent overtook their estimate.
	Pruned int

	// Truncated reports that the soft wall-clock limit expired before
	// the frontier drained; MaxFlow is then best-so-far, not proven
	// optimal.
	Truncated bool
}
