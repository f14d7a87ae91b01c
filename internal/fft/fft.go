// Package fft exposes the FFT contract the padding selector and CWT engine
// need — forward/inverse complex transforms and a linear-convolution
// helper — as a thin adapter over algo-fft's plan API. algo-fft already
// implements radix-2/split-radix dispatch for powers of two and
// Bluestein's algorithm for arbitrary lengths with a SIMD/scalar kernel
// selection of its own, so this package does not reimplement any of that;
// it only owns plan caching and the zero-padding conventions the transform
// packages share.
package fft

import (
	"fmt"
	"math/bits"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/Prophetizo/vectorwave/dsp/errs"
)

var (
	plansMu sync.RWMutex
	plans   = map[int]*algofft.Plan[complex128]{}
)

// planFor returns the cached FFT plan for length n, creating and caching it
// on first use, matching the "twiddle tables built once per length behind
// a one-time construction barrier" resource policy.
func planFor(n int) (*algofft.Plan[complex128], error) {
	plansMu.RLock()
	p, ok := plans[n]
	plansMu.RUnlock()
	if ok {
		return p, nil
	}

	plansMu.Lock()
	defer plansMu.Unlock()
	if p, ok := plans[n]; ok {
		return p, nil
	}
	p, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, errs.Wrap(errs.InvalidArgument, "fft.planFor", fmt.Sprintf("cannot build plan for length %d", n), err)
	}
	plans[n] = p
	return p, nil
}

// Forward computes the forward complex-to-complex DFT of src into dst. dst
// and src may alias. len(dst) must equal len(src).
func Forward(dst, src []complex128) error {
	if len(dst) != len(src) {
		return errs.New(errs.InvalidArgument, "fft.Forward", "dst/src length mismatch")
	}
	p, err := planFor(len(src))
	if err != nil {
		return err
	}
	return p.Forward(dst, src)
}

// Inverse computes the inverse complex-to-complex DFT of src into dst.
func Inverse(dst, src []complex128) error {
	if len(dst) != len(src) {
		return errs.New(errs.InvalidArgument, "fft.Inverse", "dst/src length mismatch")
	}
	p, err := planFor(len(src))
	if err != nil {
		return err
	}
	return p.Inverse(dst, src)
}

// RealToComplex forward-transforms a real-valued signal by lifting it into
// the complex domain.
func RealToComplex(x []float64) ([]complex128, error) {
	in := make([]complex128, len(x))
	for i, v := range x {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, len(x))
	if err := Forward(out, in); err != nil {
		return nil, err
	}
	return out, nil
}

// NextPow2 returns the smallest power of two >= n.
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << uint(bits.Len(uint(n-1)))
}

// Convolve produces the linear convolution of signal x and filter w via
// zero-padded FFT multiplication: both inputs are padded to the next power
// of two >= len(x)+len(w)-1, transformed, multiplied pointwise, inverse
// transformed, and the result truncated to the first len(x) samples.
func Convolve(x, w []float64) ([]float64, error) {
	if len(x) == 0 || len(w) == 0 {
		return nil, errs.New(errs.InvalidArgument, "fft.Convolve", "x and w must be non-empty")
	}
	n := NextPow2(len(x) + len(w) - 1)

	xPadded := make([]complex128, n)
	for i, v := range x {
		xPadded[i] = complex(v, 0)
	}
	wPadded := make([]complex128, n)
	for i, v := range w {
		wPadded[i] = complex(v, 0)
	}

	xFreq := make([]complex128, n)
	wFreq := make([]complex128, n)
	if err := Forward(xFreq, xPadded); err != nil {
		return nil, err
	}
	if err := Forward(wFreq, wPadded); err != nil {
		return nil, err
	}

	prod := make([]complex128, n)
	for i := range prod {
		prod[i] = xFreq[i] * wFreq[i]
	}

	timeDomain := make([]complex128, n)
	if err := Inverse(timeDomain, prod); err != nil {
		return nil, err
	}

	out := make([]float64, len(x))
	for i := range out {
		out[i] = real(timeDomain[i])
	}
	return out, nil
}

// SharedSignalSpectrum zero-pads x to fftSize and forward-transforms it
// once, for callers (the CWT engine) that reuse the same signal spectrum
// across many per-scale kernel multiplications.
func SharedSignalSpectrum(x []float64, fftSize int) ([]complex128, error) {
	padded := make([]complex128, fftSize)
	for i, v := range x {
		padded[i] = complex(v, 0)
	}
	freq := make([]complex128, fftSize)
	if err := Forward(freq, padded); err != nil {
		return nil, err
	}
	return freq, nil
}

// ConvolveWithSpectrum multiplies a precomputed signal spectrum (from
// SharedSignalSpectrum) by the spectrum of a zero-padded kernel and
// inverse-transforms the product, returning the full linear-convolution
// result of length fftSize (the caller's to window/truncate).
func ConvolveWithSpectrum(signalFreq []complex128, kernel []complex128, fftSize int) ([]complex128, error) {
	kernelPadded := make([]complex128, fftSize)
	copy(kernelPadded, kernel)

	kernelFreq := make([]complex128, fftSize)
	if err := Forward(kernelFreq, kernelPadded); err != nil {
		return nil, err
	}

	prod := make([]complex128, fftSize)
	for i := range prod {
		prod[i] = signalFreq[i] * kernelFreq[i]
	}

	out := make([]complex128, fftSize)
	if err := Inverse(out, prod); err != nil {
		return nil, err
	}
	return out, nil
}
