package valve

import "fmt"

// Normalize assigns dense integer ids to every name mentioned in records
// (declared or referenced as a neighbor) and returns the valve table
// indexed by id.
//
// Id assignment:
//   - start is pinned to id 0, whether or not it is declared;
//   - remaining ids follow first-seen order: all declared names in input
//     order, then neighbor references in input order;
//   - names appearing only as neighbors get a zero-flow, exit-less entry,
//     so every id in every Exits list is a valid table index.
//
// Errors: ErrDuplicateName on a repeated declaration, ErrTooManyValves
// beyond MaxValves distinct names.
//
// Complexity: O(V+E) time and space.
func Normalize(records []Record, start string) ([]Valve, error) {
	// Pass 1 — build the name→id mapping in deterministic order.
	ids := make(map[string]int, len(records)+1)
	ids[start] = 0
	next := 1

	var (
		rec  Record
		name string
		ok   bool
	)
	for _, rec = range records {
		if _, ok = ids[rec.Name]; !ok {
			ids[rec.Name] = next
			next++
		}
	}
	for _, rec = range records {
		for _, name = range rec.Exits {
			if _, ok = ids[name]; !ok {
				ids[name] = next
				next++
			}
		}
	}
	if next > MaxValves {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyValves, next, MaxValves)
	}

	// Pass 2 — fill the table. Undeclared ids keep the zero-flow default.
	valves := make([]Valve, next)
	var id int
	for id = range valves {
		valves[id].ID = id
	}

	seen := make([]bool, next)
	var exits []int
	for _, rec = range records {
		id = ids[rec.Name]
		if seen[id] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, rec.Name)
		}
		seen[id] = true

		exits = make([]int, len(rec.Exits))
		for i, name := range rec.Exits {
			exits[i] = ids[name]
		}
		valves[id].FlowRate = rec.FlowRate
		valves[id].Exits = exits
	}

	return valves, nil
}
