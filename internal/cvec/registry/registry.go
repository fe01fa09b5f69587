// Package registry holds the implementation registry for batched complex
// arithmetic kernels.
//
// Implementation variants (generic, and SIMD entries where available) register
// themselves via init() functions; the best entry for the current CPU is
// selected at runtime.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-harmonic/internal/cpu"
)

// OpEntry is a registered kernel variant. Only the operations available at the
// entry's SIMD level need to be populated.
type OpEntry struct {
	// Name is a human-readable identifier ("generic", "avx2", ...).
	Name string

	// SIMDLevel is the instruction set this entry requires.
	SIMDLevel cpu.SIMDLevel

	// Priority orders selection when multiple entries are compatible.
	// Generic is 0; SIMD entries use higher values.
	Priority int

	// MulBlock performs elementwise complex multiplication:
	// dst[i] = a[i] * b[i].
	MulBlock func(dst, a, b []complex128)

	// RotateBlock multiplies every element by a single factor in place:
	// data[i] *= w.
	RotateBlock func(data []complex128, w complex128)
}

// OpRegistry manages registration and lookup of kernel variants.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the registry instance used by the cvec package.
var Global = &OpRegistry{}

// Register adds a kernel variant. Called from init() functions; registrations
// must complete before the first Lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority entry compatible with features, or nil
// if nothing is registered.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

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

// sortByPriority sorts entries descending. Caller holds the write lock.
// Insertion sort; the registry holds a handful of entries.
func (r *OpRegistry) sortByPriority() {
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
