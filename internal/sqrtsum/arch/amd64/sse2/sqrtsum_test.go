//go:build amd64 && !purego

package sse2

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-sqrtsum/internal/sqrtsum/arch/generic"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func requireHostSSE2(t *testing.T) {
	t.Helper()
	if !cpu.DetectFeatures().HasSSE2 {
		t.Skip("SSE2 not available on this host")
	}
}

func TestSqrtSumExact(t *testing.T) {
	requireHostSSE2(t)

	cases := []struct {
		name string
		x    []float64
		want float64
	}{
		{name: "empty", x: nil, want: 0},
		{name: "one", x: []float64{25}, want: 5},
		{name: "tail only", x: []float64{0, 1, 4}, want: 3},
		{name: "one step", x: []float64{0, 1, 4, 9}, want: 6},
		{name: "step and tail", x: []float64{0, 1, 4, 9, 16, 25}, want: 15},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SqrtSum(tc.x); got != tc.want {
				t.Fatalf("SqrtSum() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSqrtSumMatchesGeneric(t *testing.T) {
	requireHostSSE2(t)

	for _, n := range []int{1, 2, 3, 5, 6, 7, 8, 9, 31, 33, 1023, 4097} {
		x := make([]float64, n)
		for i := range x {
			x[i] = float64((i*7919)%1000) / 1000
		}
		got := SqrtSum(x)
		want := generic.SqrtSum(x)
		if diff := math.Abs(got - want); diff > 1e-9*math.Max(1, math.Abs(want)) {
			t.Fatalf("n=%d: SqrtSum() = %v, generic = %v", n, got, want)
		}
	}
}

func TestSqrtSumTailIgnoresFollowingMemory(t *testing.T) {
	requireHostSSE2(t)

	// NaN just past the view must not leak into the masked tail
	backing := []float64{1, 4, 9, 16, 25, math.NaN(), math.NaN(), math.NaN()}
	if got := SqrtSum(backing[:5]); got != 15 {
		t.Fatalf("SqrtSum() = %v, want 15", got)
	}
}
