package graph

// Connected reports whether every node is reachable from node 0 over
// present edges. An unconnected graph cannot be Hamiltonian, which makes
// this a cheap necessary-condition screen ahead of the exponential
// Hamiltonicity search.
//
// Implemented as an iterative breadth-first traversal over the adjacency
// matrix.
//
// Time Complexity: O(V²); Memory: O(V)
func (g *Graph) Connected() bool {
	visited := make([]bool, g.nodeCount)
	queue := make([]int, 0, g.nodeCount)

	visited[0] = true
	queue = append(queue, 0)
	seen := 1

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for j := 0; j < g.nodeCount; j++ {
			if !g.adjacency[current][j] || visited[j] {
				continue
			}
			visited[j] = true
			seen++
			queue = append(queue, j)
		}
	}

	return seen == g.nodeCount
}
