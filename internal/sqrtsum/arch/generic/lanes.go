package generic

import "math"

// Lanes is the number of float64 values processed per step.
const Lanes = 4

// Vec holds one step worth of lanes.
type Vec [Lanes]float64

// Mask selects active lanes of a Vec.
type Mask [Lanes]bool

// FullMask has every lane active.
var FullMask = Mask{true, true, true, true}

// TailMask activates lanes [0, remaining). remaining is clamped to [0, Lanes].
func TailMask(remaining int) Mask {
	var m Mask
	for i := range m {
		m[i] = i < remaining
	}
	return m
}

// Load reads Lanes contiguous values. src must hold at least Lanes elements.
func Load(src []float64) Vec {
	_ = src[Lanes-1]
	return Vec{src[0], src[1], src[2], src[3]}
}

// MaskLoad reads only the active lanes of m; inactive lanes are zero and
// src is never indexed for them.
func MaskLoad(m Mask, src []float64) Vec {
	var v Vec
	for i := range v {
		if m[i] {
			v[i] = src[i]
		}
	}
	return v
}

// Sqrt applies math.Sqrt to every lane.
func Sqrt(v Vec) Vec {
	for i := range v {
		v[i] = math.Sqrt(v[i])
	}
	return v
}

// SumActive adds the active lanes of v in lane order.
func SumActive(m Mask, v Vec) float64 {
	s := 0.0
	for i := range v {
		if m[i] {
			s += v[i]
		}
	}
	return s
}
