// Package cvec exposes batched complex-multiply kernels behind a runtime
// dispatch. The selected implementation is resolved once against the detected
// CPU features; after the first call every invocation is a direct function
// pointer call.
//
// All kernels are mathematically identical to the scalar complex product;
// architecture-specific entries may reorder the real/imaginary arithmetic but
// must stay within floating-point round-off of the generic path.
package cvec

import (
	"sync"

	"github.com/cwbudde/algo-harmonic/internal/cpu"
	"github.com/cwbudde/algo-harmonic/internal/cvec/registry"

	// Generic implementations (pure Go fallback). Architecture-specific
	// kernel packages register themselves the same way.
	_ "github.com/cwbudde/algo-harmonic/internal/cvec/arch/generic"
)

var (
	mulBlockImpl    func(dst, a, b []complex128)
	rotateBlockImpl func(data []complex128, w complex128)
	dispatchOnce    sync.Once
)

func initDispatch() {
	features := cpu.DetectFeatures()

	entry := registry.Global.Lookup(features)
	if entry == nil {
		panic("cvec: no implementation registered (missing generic fallback?)")
	}

	if entry.MulBlock == nil || entry.RotateBlock == nil {
		panic("cvec: selected implementation is incomplete")
	}

	mulBlockImpl = entry.MulBlock
	rotateBlockImpl = entry.RotateBlock
}

// MulBlock performs elementwise complex multiplication: dst[i] = a[i] * b[i].
// All slices must have equal length; panics on mismatch. dst must not alias
// b, dst may alias a.
func MulBlock(dst, a, b []complex128) {
	dispatchOnce.Do(initDispatch)
	mulBlockImpl(dst, a, b)
}

// RotateBlock multiplies every element of data by the rotation factor w in
// place.
func RotateBlock(data []complex128, w complex128) {
	dispatchOnce.Do(initDispatch)
	rotateBlockImpl(data, w)
}
