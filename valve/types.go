package valve

import "errors"

// MaxValves is the largest network Normalize accepts. The bound exists so
// that the search layer can represent opened-valve sets as a fixed-size
// 128-bit value copied on every state expansion.
const MaxValves = 128

// Sentinel errors for parsing and normalization.
var (
	// ErrMalformedLine is returned when a line does not match the valve
	// description grammar (bad name, non-numeric flow rate, empty or
	// malformed neighbor list).
	ErrMalformedLine = errors.New("valve: malformed valve description")

	// ErrDuplicateName is returned when the same valve name is declared
	// more than once.
	ErrDuplicateName = errors.New("valve: duplicate valve declaration")

	// ErrTooManyValves is returned when the network exceeds MaxValves
	// distinct names.
	ErrTooManyValves = errors.New("valve: too many valves")
)

// Record is the collaborator-facing input shape: one declared valve with
// its flow rate and the names of its direct neighbors.
type Record struct {
	// Name is the valve label as it appears in the input (e.g. "AA").
	Name string

	// FlowRate is the flow released per tick while the valve is open.
	FlowRate int

	// Exits lists the labels reachable through one tunnel hop.
	Exits []string
}

// Valve is one entry of the normalized table. Immutable once built.
type Valve struct {
	// ID is the dense index of this valve; 0 is the start valve.
	ID int

	// FlowRate is the flow released per tick while the valve is open.
	// Valves known only as neighbor references default to 0.
	FlowRate int

	// Exits holds the ids of valves reachable through one tunnel hop,
	// in input order. Every entry is a valid index into the table.
	Exits []int
}
