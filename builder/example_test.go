// File: builder/example_test.go
package builder_test

import (
	"fmt"

	"github.com/kul-sudo/graphs/builder"
	"github.com/kul-sudo/graphs/graph"
)

// ExampleRandom demonstrates sampling a graph under the two hard
// constraints: the edge count matches the target exactly and every node
// keeps the degree floor a Hamiltonian cycle would need. A fixed seed
// pins the outcome.
func ExampleRandom() {
	g, err := builder.Random(8, 12, builder.WithSeed(42))
	if err != nil {
		fmt.Println("generate:", err)
		return
	}

	minDeg := g.NodeCount()
	for i := 0; i < g.NodeCount(); i++ {
		if d := g.Degree(i); d < minDeg {
			minDeg = d
		}
	}

	fmt.Println("edges:", g.EdgeCount())
	fmt.Println("min degree ok:", minDeg >= graph.MinDegree)
	fmt.Println("verify:", g.Verify())

	// Output:
	// edges: 12
	// min degree ok: true
	// verify: <nil>
}
