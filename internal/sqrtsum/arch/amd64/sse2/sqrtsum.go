//go:build amd64 && !purego

package sse2

import "github.com/cwbudde/algo-sqrtsum/internal/sqrtsum/arch/generic"

// SqrtSum returns Σ sqrt(x[i]). Each four-lane step is split across two
// 128-bit SQRTPD; the final partial step uses the generic masked tail.
// Returns 0 for an empty slice.
func SqrtSum(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	full := len(x) &^ (generic.Lanes - 1)
	s := 0.0
	if full > 0 {
		s = sqrtSumSSE2(x[:full])
	}
	return s + generic.SqrtSumTail(x[full:])
}

// sqrtSumSSE2 requires len(x) to be a multiple of four.
//
//go:noescape
func sqrtSumSSE2(x []float64) float64
