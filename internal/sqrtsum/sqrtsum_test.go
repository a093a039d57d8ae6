package sqrtsum

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-sqrtsum/internal/sqrtsum/registry"
	"github.com/cwbudde/algo-sqrtsum/internal/testutil"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func scalarRef(x []float64) float64 {
	s := 0.0
	for _, v := range x {
		s += math.Sqrt(v)
	}
	return s
}

func TestSqrtSumSelectedKernel(t *testing.T) {
	if Name() == "" {
		t.Fatal("no kernel name reported")
	}

	for _, n := range []int{0, 1, 3, 4, 5, 17, 1000, 1021, 65539} {
		x := testutil.DeterministicUniform(int64(n)+1, n)
		testutil.RequireRelNear(t, SqrtSum(x), scalarRef(x), 1e-9)
	}
}

func TestKernelsIncludeGenericFallback(t *testing.T) {
	kernels := Kernels()
	if len(kernels) == 0 {
		t.Fatal("no kernels available")
	}
	if last := kernels[len(kernels)-1]; last.Name != "generic" {
		t.Fatalf("lowest-priority kernel = %q, want generic", last.Name)
	}
	if kernels[0].Name != Name() {
		t.Fatalf("best kernel %q differs from selected %q", kernels[0].Name, Name())
	}
}

// Every kernel the host supports must agree with the scalar reference.
func TestKernelParity(t *testing.T) {
	sizes := []int{0, 1, 2, 3, 4, 5, 7, 8, 9, 15, 16, 17, 63, 64, 65, 1023, 1024, 1025, 100003}
	for _, k := range Kernels() {
		t.Run(k.Name, func(t *testing.T) {
			for _, n := range sizes {
				x := testutil.DeterministicUniform(int64(n)*31+7, n)
				testutil.RequireRelNear(t, k.SqrtSum(x), scalarRef(x), 1e-9)
			}
		})
	}
}

func TestForcedGenericLookup(t *testing.T) {
	cpu.SetForcedFeatures(cpu.Features{ForceGeneric: true})
	defer cpu.ResetDetection()

	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil || entry.Name != "generic" {
		t.Fatalf("forced lookup = %+v, want generic", entry)
	}
}
