// Package registry provides the kernel registry for sum-of-square-roots reductions.
//
// Several Lane-Width Reducer variants (generic, SSE2, AVX2) can coexist in one
// binary. Each architecture package registers itself from init(), and the
// sqrtsum package selects the highest-priority kernel the host CPU supports.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// SqrtSumFn returns Σ sqrt(x[i]) over x, processing four lanes per step.
type SqrtSumFn func(x []float64) float64

// OpEntry is one registered kernel implementation.
type OpEntry struct {
	// Name is a human-readable identifier (e.g. "avx2", "generic").
	Name string

	// SIMDLevel is the instruction set the kernel requires.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when several entries are supported.
	// Suggested values:
	//   - Generic (SIMDNone): 0
	//   - SSE2: 10
	//   - AVX2: 20
	Priority int

	// SqrtSum is the lane-width reduction kernel.
	SqrtSum SqrtSumFn
}

// OpRegistry stores the available kernels.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // entries sorted by priority, descending
}

// Global is the registry populated by the arch packages.
var Global = &OpRegistry{}

// Register adds an entry. All registrations should complete before the first Lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority entry supported by features, or nil
// when nothing matches (which means the generic fallback was not linked in).
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// Supported returns every entry usable with features, best first.
func (r *OpRegistry) Supported(features cpu.Features) []OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []OpEntry
	for _, entry := range r.entries {
		if cpu.Supports(features, entry.SIMDLevel) {
			out = append(out, entry)
		}
	}
	return out
}

// ListEntries returns a copy of all entries, sorted by priority.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Tests only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}

func (r *OpRegistry) ensureSorted() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
}

// sortByPriority must be called with r.mu held.
func (r *OpRegistry) sortByPriority() {
	// insertion sort, the registry holds a handful of entries
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}
