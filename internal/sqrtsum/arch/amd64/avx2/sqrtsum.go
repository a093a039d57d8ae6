//go:build amd64 && !purego

package avx2

// SqrtSum returns Σ sqrt(x[i]) using 256-bit lanes (four float64 per step).
// The remainder is loaded with VMASKMOVPD so inactive lanes are never read.
// Returns 0 for an empty slice.
func SqrtSum(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return sqrtSumAVX2(x)
}

//go:noescape
func sqrtSumAVX2(x []float64) float64
