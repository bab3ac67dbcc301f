// File: graph/example_test.go
package graph_test

import (
	"fmt"

	"github.com/kul-sudo/graphs/graph"
)

// ExampleNew demonstrates building a small 4-node cycle by hand and
// querying its structure. SetEdge writes both mirrored matrix cells, so
// the symmetry invariant holds after every mutation.
func ExampleNew() {
	g, _ := graph.New(4, 4)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		_ = g.SetEdge(e[0], e[1], true)
	}

	fmt.Println("edges:", g.EdgeCount())
	fmt.Println("degree(0):", g.Degree(0))
	fmt.Println("neighbors(2):", g.Neighbors(2))
	fmt.Println("verify:", g.Verify())

	// Output:
	// edges: 4
	// degree(0): 2
	// neighbors(2): [1 3]
	// verify: <nil>
}
