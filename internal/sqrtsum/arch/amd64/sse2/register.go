//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-sqrtsum/internal/sqrtsum/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the SSE2 kernel, part of the amd64 baseline.
//
// Priority: 10
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,
		SqrtSum:   SqrtSum,
	})
}
