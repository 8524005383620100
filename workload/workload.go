// Package workload builds deterministic inputs for the benchmark
// bodies. All randomness flows from a single seeded source so two runs
// with the same seed measure identical data.
package workload

import (
	mrand "math/rand"
)

// Config controls input generation.
type Config struct {
	Seed int64
}

// Generator produces deterministic benchmark inputs from a Config.
type Generator struct {
	cfg Config
	rng *mrand.Rand
}

// NewGenerator creates a Generator from the given Config.
func NewGenerator(cfg Config) *Generator {
	return &Generator{
		cfg: cfg,
		rng: mrand.New(mrand.NewSource(cfg.Seed)),
	}
}

// Sequence returns the values 0..n-1 in order.
func (g *Generator) Sequence(n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = int64(i)
	}

	return out
}

// Permutation returns the values 0..n-1 in a seeded random order.
// Used for set insertion order, where the order must vary between
// seeds without changing the set contents.
func (g *Generator) Permutation(n int) []int64 {
	out := g.Sequence(n)
	g.rng.Shuffle(n, func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})

	return out
}

// Lookups returns count keys cycling through [0, domain), the key
// stream used by the lookup benchmarks. The stream is independent of
// the seed so hit rates stay identical across runs.
func (g *Generator) Lookups(count, domain int) []int64 {
	out := make([]int64, count)
	for i := range out {
		out[i] = int64(i % domain)
	}

	return out
}
