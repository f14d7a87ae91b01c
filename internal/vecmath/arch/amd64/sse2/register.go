//go:build amd64 && !purego

package sse2

import (
	"github.com/Prophetizo/vectorwave/internal/cpu"
	"github.com/Prophetizo/vectorwave/internal/vecmath/registry"
)

// init registers the SSE2-optimized implementations with the vecmath registry.
//
// SSE2 provides 128-bit SIMD operations and is part of the x86-64 baseline,
// so it's available on all amd64 CPUs.
//
// Only MaxAbs is registered for SSE2; the package's other SSE2 functions are
// not registered, and Lookup fills those operations from the generic entry.
//
// Priority: 10 (medium - preferred over generic, but lower than AVX2)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,

		// Reduction operations
		MaxAbs: MaxAbs,

		// Other operations are left nil here; Lookup takes them from the
		// generic entry.
	})
}
