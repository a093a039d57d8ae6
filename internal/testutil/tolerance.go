package testutil

import (
	"math"
	"strconv"
	"testing"
)

// RelDiff returns |a-b| / max(1, |a|, |b|). The floor of 1 keeps the
// comparison absolute around zero.
func RelDiff(a, b float64) float64 {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) / scale
}

// RequireRelNear fails t if got and want differ by more than rel relative tolerance.
func RequireRelNear(t *testing.T, got, want, rel float64) {
	t.Helper()
	if math.IsNaN(got) || math.IsNaN(want) {
		t.Fatalf("non-finite comparison: got %v, want %v", got, want)
	}
	if d := RelDiff(got, want); d > rel {
		t.Fatalf("got %v, want %v (relative diff %v > %v)", got, want, d, rel)
	}
}

// SizeStr names a sub-test or benchmark after an input length.
func SizeStr(n int) string {
	switch {
	case n >= 1<<20 && n%(1<<20) == 0:
		return "n=" + strconv.Itoa(n>>20) + "M"
	case n >= 1<<10 && n%(1<<10) == 0:
		return "n=" + strconv.Itoa(n>>10) + "K"
	default:
		return "n=" + strconv.Itoa(n)
	}
}
