package generic

// SqrtSum returns Σ sqrt(x[i]) processing Lanes values per step.
// The trailing partial step goes through a predicate mask so lanes past the
// end of x are neither read nor summed.
// Returns 0 for an empty slice.
func SqrtSum(x []float64) float64 {
	s := 0.0
	n := len(x)
	i := 0
	for ; i+Lanes <= n; i += Lanes {
		s += SumActive(FullMask, Sqrt(Load(x[i:])))
	}
	if i < n {
		s += SqrtSumTail(x[i:])
	}
	return s
}

// SqrtSumTail reduces fewer than Lanes trailing values with one masked step.
// SIMD kernels that only handle whole steps use it for their remainder.
func SqrtSumTail(tail []float64) float64 {
	if len(tail) == 0 {
		return 0
	}
	m := TailMask(len(tail))
	return SumActive(m, Sqrt(MaskLoad(m, tail)))
}
