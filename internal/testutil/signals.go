package testutil

import "math/rand"

// DeterministicUniform returns length values drawn uniformly from [0, 1)
// with a fixed seed, matching the distribution the benchmark CLI uses.
func DeterministicUniform(seed int64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Float64()
	}
	return out
}

// DC returns a constant-valued slice.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return DC(1.0, n)
}

// Squares returns [0, 1, 4, 9, ...] so that Σ sqrt is n(n-1)/2.
func Squares(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i * i)
	}
	return out
}
