package reduce

import (
	"fmt"
	"math"
	"unsafe"
)

// Alignment is the byte alignment of one full vector step (Lanes × 8 bytes).
const Alignment = Lanes * 8

// AllocAligned returns a zeroed slice of n float64 whose first element sits on
// an Alignment boundary. Partitions from Partition start at multiples of Lanes,
// so each of them stays aligned as well.
//
// The kernels tolerate unaligned input; alignment only avoids split loads.
func AllocAligned(n int) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrAllocation, n)
	}
	if n == 0 {
		return []float64{}, nil
	}
	const pad = Alignment / 8
	if n > (math.MaxInt/8)-pad {
		return nil, fmt.Errorf("%w: %d elements exceed the addressable size", ErrAllocation, n)
	}

	buf := make([]float64, n+pad)
	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // alignment needs the address
	off := int((Alignment-addr%Alignment)%Alignment) / 8
	return buf[off : off+n : off+n], nil
}

// IsAligned reports whether x starts on an Alignment boundary.
// An empty slice is considered aligned.
func IsAligned(x []float64) bool {
	if len(x) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&x[0]))%Alignment == 0 //nolint:gosec // alignment needs the address
}
