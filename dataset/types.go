package dataset

import (
	"errors"
	"fmt"

	"github.com/kul-sudo/graphs/graph"
)

var (
	// ErrBadQuota indicates GraphsPerClass < 1.
	ErrBadQuota = errors.New("dataset: graphs per class must be positive")
	// ErrBadWorkers indicates Workers < 0.
	ErrBadWorkers = errors.New("dataset: worker count must not be negative")
)

// Config parameterizes a dataset build. All knobs are explicit and
// passed at call time; there is no hidden global state.
type Config struct {
	// NodeCount is the fixed node count of every generated graph (≥ 3).
	NodeCount int
	// TargetEdgeCount is the exact edge count of every generated graph,
	// within [NodeCount, NodeCount*(NodeCount-1)/2].
	TargetEdgeCount int
	// GraphsPerClass is the quota each class bucket must reach (≥ 1).
	GraphsPerClass int
	// Seed pins all randomness; 0 selects the fixed default stream.
	// Worker streams are derived from it, so a fixed seed pins every
	// stream even in parallel runs.
	Seed int64
	// Workers is the number of concurrent producers. 0 and 1 both mean
	// sequential (fully reproducible bucket order for a fixed Seed).
	Workers int
	// Heuristics enables the pre-oracle structural screens applied once a
	// bucket has filled: a disconnected candidate is surely
	// non-Hamiltonian and a candidate meeting Dirac's degree bound
	// (every degree ≥ NodeCount/2) is surely Hamiltonian, so candidates
	// that would land in the already-full bucket are discarded without
	// paying for the exponential search. Both screens are exact
	// implications — the oracle alone ever labels a stored graph.
	Heuristics bool
}

// Validate checks the full parameter space before any generation begins.
// Node/edge bounds are owned by graph.New; its sentinels propagate
// unchanged so callers can branch on graph.ErrTooFewNodes and friends.
func (c Config) Validate() error {
	if c.GraphsPerClass < 1 {
		return fmt.Errorf("Config: GraphsPerClass=%d: %w", c.GraphsPerClass, ErrBadQuota)
	}
	if c.Workers < 0 {
		return fmt.Errorf("Config: Workers=%d: %w", c.Workers, ErrBadWorkers)
	}
	if _, err := graph.New(c.NodeCount, c.TargetEdgeCount); err != nil {
		return fmt.Errorf("Config: %w", err)
	}

	return nil
}

// Meta records how a dataset was parameterized. Field names follow the
// established on-disk format of the dataset consumers.
type Meta struct {
	NodeCount       int `json:"nodes_n"`
	TargetEdgeCount int `json:"edges_n"`
	GraphsPerClass  int `json:"graphs_n"`
}

// Dataset holds the two labeled classes produced by Build. Buckets store
// adjacency-matrix snapshots (rows in node-index order), not live graphs;
// order within a bucket is discovery order. Identical matrices may recur —
// no deduplication is performed.
type Dataset struct {
	Meta           Meta
	Hamiltonian    [][][]bool
	NonHamiltonian [][][]bool
}
