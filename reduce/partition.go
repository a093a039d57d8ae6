package reduce

import (
	"fmt"
	"math"

	"github.com/samber/lo"
)

// Range is a contiguous view [Start, Start+Len) of the input slice.
type Range struct {
	Start int
	Len   int
}

// End returns the exclusive end index.
func (r Range) End() int { return r.Start + r.Len }

// Of returns the sub-slice of x covered by r without copying.
// The capacity is clipped so a worker cannot reach past its range.
func (r Range) Of(x []float64) []float64 {
	return x[r.Start:r.End():r.End()]
}

// MaxLen is the largest n Partition accepts; above it the lane round-up of
// ChunkSize would overflow int.
const MaxLen = math.MaxInt - 2*Lanes

// ChunkSize returns the per-worker stride for n elements over threads
// workers: n/threads + 1, rounded up to a multiple of Lanes.
// n must not exceed MaxLen and threads must be positive.
func ChunkSize(n, threads int) int {
	chunk := n/threads + 1
	return (chunk + Lanes - 1) &^ (Lanes - 1)
}

// Partition splits [0, n) into at most threads contiguous ranges of
// ChunkSize(n, threads) elements; the last range is shortened to what remains
// and no empty ranges are produced, so small inputs may yield fewer ranges
// than threads. Every range start is a multiple of Lanes.
//
// Since ChunkSize(n, threads)*threads > n, the ranges always cover [0, n) exactly.
func Partition(n, threads int) ([]Range, error) {
	if threads <= 0 {
		return nil, fmt.Errorf("%w: thread count %d must be positive", ErrInvalidArgument, threads)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: length %d must not be negative", ErrInvalidArgument, n)
	}
	if n > MaxLen {
		return nil, fmt.Errorf("%w: length %d exceeds %d", ErrInvalidArgument, n, MaxLen)
	}

	chunk := ChunkSize(n, threads)
	ranges := make([]Range, 0, min(threads, n/chunk+1))
	for start := 0; start < n && len(ranges) < threads; {
		r := Range{Start: start, Len: min(chunk, n-start)}
		ranges = append(ranges, r)
		start = r.End()
	}
	return ranges, nil
}

// Covered returns the total number of elements in ranges.
func Covered(ranges []Range) int {
	return lo.SumBy(ranges, func(r Range) int { return r.Len })
}
