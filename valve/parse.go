package valve

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// lineRE matches one valve declaration. Singular/plural forms of
// "tunnel(s) lead(s) to valve(s)" both occur in the input format.
var lineRE = regexp.MustCompile(
	`^Valve (\w+) has flow rate=(\d+); tunnels? leads? to valves? (\w+(?:, \w+)*)$`,
)

// ParseLine parses a single valve declaration into a Record.
//
// Grammar:
//
//	Valve <Name> has flow rate=<n>; tunnel(s) lead(s) to valve(s) <A>, <B>, …
//
// Returns ErrMalformedLine (wrapped with the offending text) when the line
// does not match or the flow rate does not fit an int.
func ParseLine(line string) (Record, error) {
	m := lineRE.FindStringSubmatch(line)
	if m == nil {
		return Record{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	// The \d+ group guarantees digits; Atoi can still fail on overflow.
	rate, err := strconv.Atoi(m[2])
	if err != nil {
		return Record{}, fmt.Errorf("%w: flow rate %q: %v", ErrMalformedLine, m[2], err)
	}

	exits := strings.Split(m[3], ", ")

	return Record{Name: m[1], FlowRate: rate, Exits: exits}, nil
}

// Parse reads valve declarations line by line from r, skipping blank
// lines, and returns the normalized table with the start label mapped to
// id 0. The first malformed line aborts the whole pipeline.
//
// Complexity: O(L) parsing + O(V+E) normalization.
func Parse(r io.Reader, start string) ([]Valve, error) {
	var (
		records []Record
		rec     Record
		line    string
		lineNo  int
		err     error
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line = strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		rec, err = ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		records = append(records, rec)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("valve: read input: %w", err)
	}

	return Normalize(records, start)
}
