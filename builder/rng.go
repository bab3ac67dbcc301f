// SPDX-License-Identifier: MIT
// Package: graphs/builder
//
// rng.go — deterministic RNG utilities shared by the sampling strategies.
//
// Goals:
//   - Determinism: same seed ⇒ identical graphs across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; helpers are total over their documented domains.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines. Use DeriveRNG to create independent streams for parallel
//     dataset workers.

package builder

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed using a SplitMix64-style avalanche mix, eliminating
// correlations between derived substreams.
//
// Constants are the canonical SplitMix64 multipliers/finalizer (Vigna
// 2014): small input changes produce large, well-distributed output
// changes.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveRNG creates an independent deterministic RNG stream from a parent
// seed and a stream identifier. Each dataset worker derives its own
// stream so parallel runs need no RNG synchronization, and a fixed
// parent seed still pins every stream.
//
// Call during setup (not in hot loops).
//
// Complexity: O(1).
func DeriveRNG(parentSeed int64, stream uint64) *rand.Rand {
	if parentSeed == 0 {
		parentSeed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(deriveSeed(parentSeed, stream)))
}

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// permRange returns a permutation of 0..n-1 generated deterministically
// from rng. Allocation is required by contract (the returned slice).
//
// Complexity: O(n) time, O(n) space.
func permRange(n int, rng *rand.Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	shuffleIntsInPlace(p, rng)

	return p
}

// sampleIndices selects k distinct indices from 0..n-1 uniformly without
// replacement via a partial Fisher–Yates pass, returning the first k
// entries of the shuffled range. Requires 0 ≤ k ≤ n.
//
// Complexity: O(n) time, O(n) space.
func sampleIndices(n, k int, rng *rand.Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	// Only the first k positions need to be settled.
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		p[i], p[j] = p[j], p[i]
	}

	return p[:k]
}
