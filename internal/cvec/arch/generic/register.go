package generic

import (
	"github.com/cwbudde/algo-harmonic/internal/cpu"
	"github.com/cwbudde/algo-harmonic/internal/cvec/registry"
)

// init registers the pure Go implementations as the baseline fallback.
// Priority 0: used when no SIMD entry is compatible or ForceGeneric is set.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		MulBlock:    MulBlock,
		RotateBlock: RotateBlock,
	})
}
