package sqrtsum

import (
	"sync"

	"github.com/cwbudde/algo-sqrtsum/internal/sqrtsum/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

var (
	sqrtSumImpl     registry.SqrtSumFn
	sqrtSumName     string
	sqrtSumInitOnce sync.Once
)

func initSqrtSum() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("sqrtsum: no kernel registered (missing generic fallback?)")
	}
	if entry.SqrtSum == nil {
		panic("sqrtsum: selected kernel " + entry.Name + " has no SqrtSum")
	}
	sqrtSumImpl = entry.SqrtSum
	sqrtSumName = entry.Name
}

// SqrtSum returns Σ sqrt(x[i]) using the selected kernel.
// Returns 0 for an empty slice.
func SqrtSum(x []float64) float64 {
	sqrtSumInitOnce.Do(initSqrtSum)
	return sqrtSumImpl(x)
}

// Name reports the selected kernel ("avx2", "sse2" or "generic").
func Name() string {
	sqrtSumInitOnce.Do(initSqrtSum)
	return sqrtSumName
}

// Kernels returns every registered kernel the host can run, best first.
func Kernels() []registry.OpEntry {
	return registry.Global.Supported(cpu.DetectFeatures())
}
