package reduce

import (
	"github.com/cwbudde/algo-sqrtsum/internal/sqrtsum"
	"github.com/cwbudde/algo-sqrtsum/internal/sqrtsum/arch/generic"
)

// Lanes is the number of float64 values a vectorized step processes.
const Lanes = generic.Lanes

// Vectorized returns Σ sqrt(x[i]) four lanes at a time. Whole steps load four
// contiguous values; a trailing step with fewer than four values uses a
// per-lane mask so nothing past the end of x is read or summed.
// Returns 0 for an empty slice.
func Vectorized(x []float64) float64 {
	return sqrtsum.SqrtSum(x)
}

// Implementation names the kernel Vectorized dispatches to on this host
// ("avx2", "sse2" or "generic").
func Implementation() string {
	return sqrtsum.Name()
}
