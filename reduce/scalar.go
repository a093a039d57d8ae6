package reduce

import "math"

// Scalar returns Σ math.Sqrt(x[i]) accumulated in index order.
// Returns 0 for an empty slice.
func Scalar(x []float64) float64 {
	s := 0.0
	for _, v := range x {
		s += math.Sqrt(v)
	}
	return s
}
