// Package valve converts the textual valve-network description into the
// dense, immutable table the solver layers consume.
//
// Two stages:
//
//  1. ParseLine / Parse — turn lines of the form
//     "Valve BB has flow rate=13; tunnels lead to valves CC, AA"
//     into Record values (name, flow rate, neighbor names). Any malformed
//     line aborts the whole pipeline with ErrMalformedLine; there is no
//     partial or recoverable mode.
//
//  2. Normalize — assign dense integer ids over the union of declared
//     names and all neighbor references, with the start label pinned to
//     id 0. Names that appear only as neighbors still receive an id and a
//     zero-flow table entry, so every id in every Exits list is a valid
//     index into the returned table.
//
// The resulting []Valve is created once and never mutated; downstream
// packages (distance, search) treat it as read-only for the whole call.
package valve
