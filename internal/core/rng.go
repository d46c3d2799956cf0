package core

import (
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r    *rand.Rand
	seed int64
}

// NewRNG creates a deterministic RNG using the provided seed. A zero seed
// draws one from the wall clock.
func NewRNG(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0)), seed: seed}
}

// Seed reports the seed the generator was created with.
func (r *RNG) Seed() int64 { return r.seed }

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Range returns a value in [min, max).
func (r *RNG) Range(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + r.r.Float64()*(max-min)
}

// Centered returns a value in [-span/2, span/2).
func (r *RNG) Centered(span float64) float64 {
	return (r.r.Float64() - 0.5) * span
}

// IntN returns a value in [0, n). A non-positive n returns 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
