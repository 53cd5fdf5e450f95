package vmath

import "math/rand/v2"

// RandRange returns a uniform sample in [min, max)
func RandRange(rng *rand.Rand, min, max float64) float64 {
	return rng.Float64()*(max-min) + min
}

// NewRand returns a PCG-backed source; seed 0 draws a random seed
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
