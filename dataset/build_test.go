package dataset_test

import (
	"context"
	"testing"

	"github.com/kul-sudo/graphs/dataset"
	"github.com/kul-sudo/graphs/graph"
	"github.com/kul-sudo/graphs/hamilton"
	"github.com/stretchr/testify/require"
)

// rebuild turns a stored adjacency snapshot back into a live graph so the
// oracle can be re-run against it.
func rebuild(t *testing.T, cfg dataset.Config, m [][]bool) *graph.Graph {
	t.Helper()
	g, err := graph.New(cfg.NodeCount, cfg.TargetEdgeCount)
	require.NoError(t, err)
	for i := range m {
		for j := i + 1; j < len(m[i]); j++ {
			if m[i][j] {
				require.NoError(t, g.SetEdge(i, j, true))
			}
		}
	}
	return g
}

func baseConfig() dataset.Config {
	return dataset.Config{
		NodeCount:       5,
		TargetEdgeCount: 6,
		GraphsPerClass:  10,
		Seed:            1,
	}
}

func checkDataset(t *testing.T, cfg dataset.Config, d *dataset.Dataset) {
	t.Helper()
	require.Len(t, d.Hamiltonian, cfg.GraphsPerClass)
	require.Len(t, d.NonHamiltonian, cfg.GraphsPerClass)
	require.Equal(t, cfg.NodeCount, d.Meta.NodeCount)
	require.Equal(t, cfg.TargetEdgeCount, d.Meta.TargetEdgeCount)
	require.Equal(t, cfg.GraphsPerClass, d.Meta.GraphsPerClass)

	for bucketIdx, bucket := range [][][][]bool{d.Hamiltonian, d.NonHamiltonian} {
		wantHamiltonian := bucketIdx == 0
		for _, m := range bucket {
			require.Len(t, m, cfg.NodeCount)
			for i := range m {
				require.False(t, m[i][i], "diagonal must stay empty")
				for j := range m[i] {
					require.Equal(t, m[i][j], m[j][i], "snapshot must stay symmetric")
				}
			}
			g := rebuild(t, cfg, m)
			require.NoError(t, g.Verify())
			require.Equal(t, wantHamiltonian, hamilton.IsHamiltonian(g))
		}
	}
}

func TestBuild_TerminatesAndLabelsCorrectly(t *testing.T) {
	cfg := baseConfig()
	d, err := dataset.Build(context.Background(), cfg)
	require.NoError(t, err)
	checkDataset(t, cfg, d)
}

func TestBuild_ReproduciblePerSeedSequential(t *testing.T) {
	cfg := baseConfig()
	a, err := dataset.Build(context.Background(), cfg)
	require.NoError(t, err)
	b, err := dataset.Build(context.Background(), cfg)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestBuild_ParallelMeetsQuotaExactly(t *testing.T) {
	cfg := baseConfig()
	cfg.Workers = 4
	d, err := dataset.Build(context.Background(), cfg)
	require.NoError(t, err)
	checkDataset(t, cfg, d)
}

func TestBuild_HeuristicsKeepClassesIntact(t *testing.T) {
	cfg := baseConfig()
	cfg.Heuristics = true
	d, err := dataset.Build(context.Background(), cfg)
	require.NoError(t, err)
	checkDataset(t, cfg, d)
}

func TestBuild_ValidatesConfig(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*dataset.Config)
		wantErr error
	}{
		{"zero quota", func(c *dataset.Config) { c.GraphsPerClass = 0 }, dataset.ErrBadQuota},
		{"negative workers", func(c *dataset.Config) { c.Workers = -1 }, dataset.ErrBadWorkers},
		{"too few nodes", func(c *dataset.Config) { c.NodeCount = 2; c.TargetEdgeCount = 2 }, graph.ErrTooFewNodes},
		{"too few edges", func(c *dataset.Config) { c.TargetEdgeCount = 4 }, graph.ErrTooFewEdges},
		{"too many edges", func(c *dataset.Config) { c.TargetEdgeCount = 11 }, graph.ErrTooManyEdges},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := baseConfig()
			tc.mutate(&cfg)
			d, err := dataset.Build(context.Background(), cfg)
			require.ErrorIs(t, err, tc.wantErr)
			require.Nil(t, d)
		})
	}
}

func TestBuild_HonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := baseConfig()
	cfg.GraphsPerClass = 1000
	d, err := dataset.Build(ctx, cfg)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, d)
}
