package hamilton_test

import (
	"testing"

	"github.com/kul-sudo/graphs/graph"
	"github.com/kul-sudo/graphs/hamilton"
	"github.com/stretchr/testify/require"
)

// buildGraph constructs a graph with the given edges; the target edge
// count is metadata only and is not enforced by these fixtures.
func buildGraph(t *testing.T, n int, edges [][2]int) *graph.Graph {
	t.Helper()
	g, err := graph.New(n, n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.SetEdge(e[0], e[1], true))
	}
	return g
}

func complete(t *testing.T, n int) *graph.Graph {
	t.Helper()
	g, err := graph.New(n, graph.MaxEdgeCount(n))
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			require.NoError(t, g.SetEdge(i, j, true))
		}
	}
	return g
}

func TestIsHamiltonian_Complete4(t *testing.T) {
	require.True(t, hamilton.IsHamiltonian(complete(t, 4)))
}

func TestIsHamiltonian_Star4(t *testing.T) {
	// Center 0 connected to the other three; no cycle can exist.
	star := buildGraph(t, 4, [][2]int{{0, 1}, {0, 2}, {0, 3}})
	require.False(t, hamilton.IsHamiltonian(star))
}

func TestIsHamiltonian_CycleAndPath(t *testing.T) {
	cycle := buildGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})
	require.True(t, hamilton.IsHamiltonian(cycle))

	// Removing one edge leaves a path, which is not Hamiltonian.
	require.NoError(t, cycle.SetEdge(4, 0, false))
	require.False(t, hamilton.IsHamiltonian(cycle))
}

func TestIsHamiltonian_DegreeOneNode(t *testing.T) {
	// Node 4 hangs off a 4-cycle by a single edge.
	g := buildGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 4}})
	require.False(t, hamilton.IsHamiltonian(g))
}

func TestFindCycle_WitnessIsSound(t *testing.T) {
	g := complete(t, 6)
	cycle, ok := hamilton.FindCycle(g)
	require.True(t, ok)
	require.Len(t, cycle, 7)
	require.NoError(t, hamilton.ValidateCycle(g, cycle))
	require.True(t, hamilton.IsHamiltonian(g))
}

func TestFindCycle_IncreasingIndexOrder(t *testing.T) {
	// On K4 the first cycle found under increasing-index exploration is
	// the identity ordering.
	cycle, ok := hamilton.FindCycle(complete(t, 4))
	require.True(t, ok)
	require.Equal(t, []int{0, 1, 2, 3, 0}, cycle)
}

func TestFindCycle_NoneExists(t *testing.T) {
	star := buildGraph(t, 4, [][2]int{{0, 1}, {0, 2}, {0, 3}})
	cycle, ok := hamilton.FindCycle(star)
	require.False(t, ok)
	require.Nil(t, cycle)
}

func TestFindCycle_Deterministic(t *testing.T) {
	g := buildGraph(t, 6, [][2]int{
		{0, 1}, {0, 3}, {1, 2}, {1, 4}, {2, 3}, {2, 5}, {3, 4}, {4, 5},
	})
	first, ok := hamilton.FindCycle(g)
	require.True(t, ok)
	second, ok := hamilton.FindCycle(g)
	require.True(t, ok)
	require.Equal(t, first, second)
}

func TestValidateCycle_Violations(t *testing.T) {
	g := complete(t, 4)
	cases := []struct {
		name  string
		cycle []int
	}{
		{"wrong length", []int{0, 1, 2, 0}},
		{"wrong endpoints", []int{1, 2, 3, 0, 1}},
		{"repeated node", []int{0, 1, 1, 3, 0}},
		{"out of range", []int{0, 1, 7, 3, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, hamilton.ValidateCycle(g, tc.cycle), hamilton.ErrInvalidCycle)
		})
	}

	// Missing edge case needs a sparser graph.
	sparse := buildGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	require.ErrorIs(t,
		hamilton.ValidateCycle(sparse, []int{0, 1, 2, 3, 0}),
		hamilton.ErrInvalidCycle)
}

func TestBothForms_Agree(t *testing.T) {
	graphs := []*graph.Graph{
		complete(t, 4),
		complete(t, 5),
		buildGraph(t, 4, [][2]int{{0, 1}, {0, 2}, {0, 3}}),
		buildGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}}),
		buildGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}),
	}
	for _, g := range graphs {
		cycle, ok := hamilton.FindCycle(g)
		require.Equal(t, hamilton.IsHamiltonian(g), ok)
		if ok {
			require.NoError(t, hamilton.ValidateCycle(g, cycle))
		}
	}
}
