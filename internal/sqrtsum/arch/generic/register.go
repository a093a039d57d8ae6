package generic

import (
	"github.com/cwbudde/algo-sqrtsum/internal/sqrtsum/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the pure Go kernel, the fallback on every platform and the
// only kernel under the purego build tag.
//
// Priority: 0
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		SqrtSum:   SqrtSum,
	})
}
