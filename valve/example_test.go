package valve_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ventflow/valve"
)

// ExampleParse: normalization pins the start label to id 0 and rewrites
// neighbor names into dense ids.
func ExampleParse() {
	const input = `Valve BB has flow rate=13; tunnels lead to valves AA
Valve AA has flow rate=0; tunnels lead to valves BB`

	valves, err := valve.Parse(strings.NewReader(input), "AA")
	if err != nil {
		fmt.Println("parse:", err)
		return
	}
	for _, v := range valves {
		fmt.Printf("id=%d rate=%d exits=%v\n", v.ID, v.FlowRate, v.Exits)
	}
	// Output:
	// id=0 rate=0 exits=[1]
	// id=1 rate=13 exits=[0]
}
