package game

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// signal-origin sampling.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float returns a random value in [0, 1).
func (r *RNG) Float() float64 {
	return r.r.Float64()
}

// Point returns a random point in the normalized unit square.
func (r *RNG) Point() Vec2 {
	return Vec2{X: r.Float(), Y: r.Float()}
}
