package dataset

import (
	"context"
	"math/rand"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/kul-sudo/graphs/builder"
	"github.com/kul-sudo/graphs/graph"
	"github.com/kul-sudo/graphs/hamilton"
)

// Build produces exactly cfg.GraphsPerClass graphs labeled Hamiltonian
// and the same number labeled non-Hamiltonian.
//
// Each candidate runs generate → classify → bucket to completion before
// the next begins (per worker); a candidate whose class bucket is already
// full is discarded without counting. Build returns once both buckets
// reach quota, or early with ctx.Err() when the context is canceled —
// the core itself imposes no timeout; a wrapping application may.
//
// Complexity: per candidate, generation is O(V²) and classification is
// exponential in V (the supported node counts stay small, see package
// hamilton). The number of candidates is
// probabilistic: it depends on how the density regime splits between the
// two classes.
func Build(ctx context.Context, cfg Config) (*Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := newBuckets(cfg.GraphsPerClass)

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers == 1 {
		// Sequential path: one stream, reproducible bucket order.
		if err := produce(ctx, cfg, b, builder.DeriveRNG(cfg.Seed, 0)); err != nil {
			return nil, err
		}
	} else {
		eg, egCtx := errgroup.WithContext(ctx)
		for w := 0; w < workers; w++ {
			rng := builder.DeriveRNG(cfg.Seed, uint64(w)) // per-worker stream
			eg.Go(func() error {
				return produce(egCtx, cfg, b, rng)
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	}

	return &Dataset{
		Meta: Meta{
			NodeCount:       cfg.NodeCount,
			TargetEdgeCount: cfg.TargetEdgeCount,
			GraphsPerClass:  cfg.GraphsPerClass,
		},
		Hamiltonian:    b.ham,
		NonHamiltonian: b.non,
	}, nil
}

// produce generates and classifies candidates until both buckets are full
// or the context is canceled. The RNG must be owned exclusively by this
// call; Build hands each worker its own derived stream.
func produce(ctx context.Context, cfg Config, b *buckets, rng *rand.Rand) error {
	for {
		needHam, needNon := b.state()
		if !needHam && !needNon {
			return nil
		}
		// Cancellation is observed between candidates; generation and
		// classification themselves run to completion.
		if err := ctx.Err(); err != nil {
			return err
		}

		g, err := builder.Random(cfg.NodeCount, cfg.TargetEdgeCount, builder.WithRand(rng))
		if err != nil {
			return err
		}

		// Structural pre-filters: both are exact implications, so they
		// only ever skip candidates whose class bucket is already full —
		// the oracle below remains the sole judge of stored graphs.
		if cfg.Heuristics {
			// A disconnected graph is surely non-Hamiltonian.
			if !needNon && !g.Connected() {
				continue
			}
			// Dirac's bound: minimum degree ≥ V/2 (V ≥ 3) guarantees a
			// Hamiltonian cycle.
			if !needHam && minDegree(g) >= (cfg.NodeCount+1)/2 {
				continue
			}
		}

		b.add(g.Matrix(), hamilton.IsHamiltonian(g))
	}
}

// minDegree returns the smallest node degree in g.
func minDegree(g *graph.Graph) int {
	min := g.NodeCount()
	for i := 0; i < g.NodeCount(); i++ {
		if d := g.Degree(i); d < min {
			min = d
		}
	}

	return min
}

// buckets is the shared quota-bounded pair of class collections. An add
// is a single mutex-held check-then-append, so concurrent producers can
// never push a bucket past its quota.
type buckets struct {
	mu    sync.Mutex
	quota int
	ham   [][][]bool
	non   [][][]bool
}

func newBuckets(quota int) *buckets {
	return &buckets{
		quota: quota,
		ham:   make([][][]bool, 0, quota),
		non:   make([][][]bool, 0, quota),
	}
}

// add appends a snapshot to its class bucket unless the bucket already
// reached quota; it reports whether the snapshot was kept.
func (b *buckets) add(m [][]bool, hamiltonian bool) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if hamiltonian {
		if len(b.ham) >= b.quota {
			return false
		}
		b.ham = append(b.ham, m)

		return true
	}
	if len(b.non) >= b.quota {
		return false
	}
	b.non = append(b.non, m)

	return true
}

// state reports, under one lock acquisition, whether each bucket still
// needs graphs. Producers use it both as the loop condition and to drive
// the density pre-filter.
func (b *buckets) state() (needHam, needNon bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.ham) < b.quota, len(b.non) < b.quota
}
