//go:build amd64 && !purego

package avx2

import (
	"github.com/cwbudde/algo-sqrtsum/internal/sqrtsum/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the AVX2 kernel. One 256-bit register holds exactly one
// four-lane step, and VMASKMOVPD gives a hardware masked tail.
//
// Priority: 20 (preferred over SSE2 and generic when available)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		SqrtSum:   SqrtSum,
	})
}
