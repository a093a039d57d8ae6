package reduce

import (
	"fmt"
	"strings"
)

// Mode selects the per-partition reducer used by the parallel coordinator.
type Mode int

const (
	// ModeScalar reduces each partition with Scalar.
	ModeScalar Mode = iota
	// ModeVectorized reduces each partition with Vectorized.
	ModeVectorized
)

func (m Mode) String() string {
	switch m {
	case ModeScalar:
		return "scalar"
	case ModeVectorized:
		return "vectorized"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "scalar" or "vectorized" (also "vector", "simd"), case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scalar":
		return ModeScalar, nil
	case "vectorized", "vector", "simd":
		return ModeVectorized, nil
	default:
		return 0, fmt.Errorf("%w: unknown mode %q", ErrInvalidArgument, s)
	}
}

func (m Mode) reducer() (func([]float64) float64, error) {
	switch m {
	case ModeScalar:
		return Scalar, nil
	case ModeVectorized:
		return Vectorized, nil
	default:
		return nil, fmt.Errorf("%w: unknown mode %d", ErrInvalidArgument, int(m))
	}
}
