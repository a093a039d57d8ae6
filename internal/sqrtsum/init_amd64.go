//go:build amd64 && !purego

package sqrtsum

// Imported for their init() registrations.
import (
	_ "github.com/cwbudde/algo-sqrtsum/internal/sqrtsum/arch/amd64/avx2"
	_ "github.com/cwbudde/algo-sqrtsum/internal/sqrtsum/arch/amd64/sse2"
	_ "github.com/cwbudde/algo-sqrtsum/internal/sqrtsum/arch/generic"
)
