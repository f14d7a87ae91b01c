package vecmath

import (
	"sync"

	"github.com/Prophetizo/vectorwave/internal/cpu"
	"github.com/Prophetizo/vectorwave/internal/vecmath/registry"
)

var (
	// Cached function pointer for magnitude operation (initialized once, used many times)
	magnitudeImpl func([]float64, []float64, []float64)
	magnitudeOnce sync.Once
)

// initMagnitudeOperation performs one-time initialization of magnitude operation function pointer.
// This function selects the best implementation based on detected CPU features and
// caches the function pointer for subsequent calls.
func initMagnitudeOperation() {
	features := cpu.DetectFeatures()
	entry := registry.Global.Lookup(features)

	if entry == nil {
		panic("vecmath: no magnitude implementation registered (missing generic fallback?)")
	}

	if entry.Magnitude == nil {
		panic("vecmath: selected implementation missing magnitude operation")
	}

	magnitudeImpl = entry.Magnitude
}

// Magnitude computes magnitude from separate real and imaginary parts: dst[i] = sqrt(re[i]^2 + im[i]^2).
//
// All slices must have equal length. Panics if lengths differ.
//
// The implementation is taken from the registry entry selected for the CPU
// (see registry.Lookup). Only the generic entry registers Magnitude, so the
// pure Go version runs on every CPU.
//
// After the first call, subsequent calls have zero dispatch overhead
// (direct function pointer call, equivalent to hand-written dispatch).
func Magnitude(dst, re, im []float64) {
	magnitudeOnce.Do(initMagnitudeOperation)
	magnitudeImpl(dst, re, im)
}
