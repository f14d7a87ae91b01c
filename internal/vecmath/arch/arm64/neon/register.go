//go:build arm64 && !purego

package neon

import (
	"github.com/Prophetizo/vectorwave/internal/cpu"
	"github.com/Prophetizo/vectorwave/internal/vecmath/registry"
)

// init registers the NEON-optimized implementations with the vecmath registry.
//
// NEON (ARM Advanced SIMD) provides 128-bit SIMD operations and is mandatory
// on ARMv8 (arm64), so it's available on all arm64 CPUs.
//
// Only MaxAbs is registered for NEON; the package's other NEON functions are
// not registered, and Lookup fills those operations from the generic entry.
//
// Priority: 15 (medium-high - ARM's equivalent to AVX/AVX2)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,

		// Reduction operations
		MaxAbs: MaxAbs,

		// Other operations are left nil here; Lookup takes them from the
		// generic entry.
	})
}
