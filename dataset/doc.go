// Package dataset drives the generator and the Hamiltonicity oracle in a
// loop, partitioning candidate graphs into a "Hamiltonian" and a
// "non-Hamiltonian" class until both reach a configured quota, and
// persists the result as JSON.
//
// Class membership is decided solely by the hamilton oracle. The optional
// density heuristic only discards candidates before the oracle runs to
// raise the acceptance rate; it can never mislabel a graph.
//
// Candidates are independent: each graph is generated, classified, and
// stored or discarded with no shared mutable state, so the loop
// parallelizes naturally. With Workers > 1 a pool of goroutines feeds the
// shared buckets; each worker owns a deterministic RNG stream derived
// from the base seed, and an append is a single mutex-held
// check-then-store so a quota can never overshoot. A single worker keeps
// bucket insertion order reproducible for a fixed seed.
//
// No I/O happens inside the loop; files are written only after both
// quotas are met, so a fatal error never leaves a partial dataset behind.
package dataset
