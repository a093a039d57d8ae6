//go:build !amd64 || purego

package sqrtsum

// Pure Go fallback only.
import _ "github.com/cwbudde/algo-sqrtsum/internal/sqrtsum/arch/generic"
