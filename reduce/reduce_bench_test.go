package reduce

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-sqrtsum/internal/testutil"
)

func BenchmarkScalar(b *testing.B) {
	for _, size := range []int{1024, 65536, 1 << 20} {
		x := testutil.DeterministicUniform(1, size)
		b.Run(testutil.SizeStr(size), func(b *testing.B) {
			b.SetBytes(int64(size * 8))
			for i := 0; i < b.N; i++ {
				_ = Scalar(x)
			}
		})
	}
}

func BenchmarkVectorized(b *testing.B) {
	for _, size := range []int{1024, 65536, 1 << 20} {
		x := testutil.DeterministicUniform(1, size)
		b.Run(testutil.SizeStr(size), func(b *testing.B) {
			b.SetBytes(int64(size * 8))
			for i := 0; i < b.N; i++ {
				_ = Vectorized(x)
			}
		})
	}
}

func BenchmarkParallel(b *testing.B) {
	const size = 1 << 20
	x, err := AllocAligned(size)
	if err != nil {
		b.Fatal(err)
	}
	copy(x, testutil.DeterministicUniform(1, size))

	for _, mode := range []Mode{ModeScalar, ModeVectorized} {
		for _, threads := range []int{1, 2, 4, 8} {
			b.Run(mode.String()+"/threads="+strconv.Itoa(threads), func(b *testing.B) {
				b.SetBytes(size * 8)
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := Parallel(x, threads, mode); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
