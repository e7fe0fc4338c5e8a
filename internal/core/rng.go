package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// FillBernoulli sets each cell to 1 with probability p and to 0 otherwise.
// p <= 0 clears the buffer, p >= 1 fills it.
func FillBernoulli(r *rand.Rand, buf []uint8, p float64) {
	for i := range buf {
		buf[i] = 0
		if p > 0 && r.Float64() < p {
			buf[i] = 1
		}
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
