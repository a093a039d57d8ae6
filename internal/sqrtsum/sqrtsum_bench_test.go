package sqrtsum

import (
	"testing"

	"github.com/cwbudde/algo-sqrtsum/internal/testutil"
)

func BenchmarkKernels(b *testing.B) {
	sizes := []int{16, 1024, 65536, 1 << 20}
	for _, k := range Kernels() {
		for _, size := range sizes {
			x := testutil.DeterministicUniform(1, size)
			b.Run(k.Name+"/"+testutil.SizeStr(size), func(b *testing.B) {
				b.SetBytes(int64(size * 8))
				for i := 0; i < b.N; i++ {
					_ = k.SqrtSum(x)
				}
			})
		}
	}
}
