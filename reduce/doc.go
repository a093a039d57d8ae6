// Package reduce computes Σ sqrt(x[i]) over float64 slices.
//
// Three strategies are provided:
//
//   - Scalar: a sequential loop, also the correctness baseline.
//   - Vectorized: four lanes per step with a masked tail, dispatched to the
//     best kernel for the host CPU (AVX2, SSE2 or pure Go).
//   - Parallel: the slice is split into lane-aligned partitions, one goroutine
//     reduces each partition with either kernel, and partial sums are merged
//     into a per-call accumulator under a mutex.
//
// Floating-point addition is not associative, so the strategies agree to a
// relative tolerance rather than bit for bit.
//
// Inputs are expected to be non-negative; negative values yield NaN exactly
// as math.Sqrt does.
package reduce
