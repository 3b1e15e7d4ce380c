package core

import (
	"math"
	"math/rand/v2"
)

// DefaultBias shifts the uniform draw left so roughly 30% of cells start alive.
const DefaultBias = 0.2

// Sampler decides the initial state of the cell at (x, y).
type Sampler func(x, y int) bool

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// BiasedSampler marks a cell alive when a uniform draw minus bias reaches 0.5.
func BiasedSampler(r *rand.Rand, bias float64) Sampler {
	return func(int, int) bool {
		return r.Float64()-bias >= 0.5
	}
}

// DensitySampler marks each cell alive with probability p.
func DensitySampler(r *rand.Rand, p float64) Sampler {
	return func(int, int) bool {
		return r.Float64() < p
	}
}

// GaussianSampler folds a Box-Muller normal draw into [0, 1) around 0.5 and
// applies the same threshold as BiasedSampler.
func GaussianSampler(r *rand.Rand, bias float64) Sampler {
	return func(int, int) bool {
		u := 1 - r.Float64()
		v := 1 - r.Float64()
		n := math.Sqrt(-2*math.Log(u)) * math.Cos(2*math.Pi*v)
		return math.Abs((n+3.5)/7)-bias >= 0.5
	}
}

// Dead is a Sampler that leaves every cell dead.
func Dead(int, int) bool { return false }
