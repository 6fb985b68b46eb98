// Package random provides the injectable uniform random source used by the
// mini-games. Engines never read a global generator, so a seeded source makes
// every run reproducible.
package random

import (
	"math/rand/v2"
	"time"
)

// Source produces uniformly distributed values in [0, 1).
type Source interface {
	Float64() float64
}

// PCGSource is a seeded Source backed by a PCG generator.
type PCGSource struct {
	seed uint64
	rng  *rand.Rand
}

var _ Source = &PCGSource{}

// NewSource returns a Source seeded with seed. A zero seed is replaced by a
// time based one; use Seed to read back the value that was actually used.
func NewSource(seed uint64) *PCGSource {
	if seed == 0 {
		seed = SeedFromTime()
	}
	return &PCGSource{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s *PCGSource) Float64() float64 {
	return s.rng.Float64()
}

// Seed returns the seed the source was created with.
func (s *PCGSource) Seed() uint64 {
	return s.seed
}

// SeedFromTime returns a non-zero seed derived from the wall clock.
func SeedFromTime() uint64 {
	seed := uint64(time.Now().UnixNano())
	if seed == 0 {
		seed = 1
	}
	return seed
}

// Uniform draws a value in [min, max) from src.
func Uniform(src Source, min, max float64) float64 {
	return min + src.Float64()*(max-min)
}
