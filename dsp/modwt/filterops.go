// Package modwt implements the Maximal-Overlap Discrete Wavelet Transform:
// a shift-invariant, non-decimated analysis/synthesis pair built on the
// wavelet filter banks in dsp/wavelet.
package modwt

import (
	"math"

	"github.com/Prophetizo/vectorwave/dsp/boundary"
	"github.com/Prophetizo/vectorwave/internal/vecmath"
)

// sqrt2 is used to build the MODWT-scaled filters h~ = h0/sqrt(2), g~ = g0/sqrt(2).
const sqrt2 = math.Sqrt2

// scale divides every tap of f by sqrt(2), producing the MODWT analysis or
// synthesis filter from a DWT filter bank tap.
func scale(f []float64) []float64 {
	out := make([]float64, len(f))
	for i, v := range f {
		out[i] = v / sqrt2
	}
	return out
}

// dilate inserts 2^(level-1) - 1 zeros between each tap of f, producing the
// filter used at decomposition level `level` (level 1 returns f unchanged).
// The returned filter has length (len(f)-1)*2^(level-1) + 1.
func dilate(f []float64, level int) []float64 {
	if level <= 1 {
		out := make([]float64, len(f))
		copy(out, f)
		return out
	}
	stride := 1 << uint(level-1)
	out := make([]float64, (len(f)-1)*stride+1)
	for k, v := range f {
		out[k*stride] = v
	}
	return out
}

// dilationStride returns 2^(level-1), the step between taps used directly
// in the circular-convolution index formula (equivalent to convolving with
// the dilated filter from dilate, but without materializing the zeros).
func dilationStride(level int) int {
	return 1 << uint(level-1)
}

// circularConvolveForward computes y[t] = sum_k f[k] * x[(t - stride*k) mod N]
// for every t in [0, N), per the MODWT analysis kernel in the filter
// operations design. stride is 2^(level-1); f has L taps.
func circularConvolveForward(x, f []float64, stride int, mode boundary.Mode, dst []float64) {
	n := len(x)
	l := len(f)

	// Fast path: stride 1, Periodic mode, and every tap position falls in
	// range without wraparound. This covers the common level-1 case for
	// t in [stride*(l-1), n), letting the inner loop run as a plain dot
	// product via vecmath instead of per-tap boundary resolution.
	if mode == boundary.Periodic && stride == 1 && n >= l {
		rev := make([]float64, l)
		for k := 0; k < l; k++ {
			rev[k] = f[k]
		}
		reverseInPlace(rev)
		for t := 0; t < n; t++ {
			lo := t - (l - 1)
			if lo >= 0 {
				dst[t] = vecmath.DotProduct(x[lo:t+1], rev)
				continue
			}
			dst[t] = circularTapSum(x, f, t, stride, mode)
		}
		return
	}

	for t := 0; t < n; t++ {
		dst[t] = circularTapSum(x, f, t, stride, mode)
	}
}

// circularConvolveInverse computes x[t] = sum_k f[k] * c[(t + stride*k) mod N],
// the MODWT synthesis kernel (index sign flipped relative to forward).
func circularConvolveInverse(c, f []float64, stride int, mode boundary.Mode, dst []float64) {
	n := len(c)
	for t := 0; t < n; t++ {
		sum := 0.0
		for k, fk := range f {
			if fk == 0 {
				continue
			}
			idx := t + stride*k
			v, ok := indexAt(c, idx, mode)
			if ok {
				sum += fk * v
			}
		}
		dst[t] += sum
	}
}

func circularTapSum(x, f []float64, t, stride int, mode boundary.Mode) float64 {
	sum := 0.0
	for k, fk := range f {
		if fk == 0 {
			continue
		}
		idx := t - stride*k
		v, ok := indexAt(x, idx, mode)
		if ok {
			sum += fk * v
		}
	}
	return sum
}

// indexAt resolves index i against a signal of length n under the given
// boundary mode. Unlike dsp/boundary.At, it treats ZeroPadding's
// out-of-range case as "contributes" with value 0 rather than skipping,
// since the dilated multi-level kernel still needs a defined value at
// every tap; Periodic and Symmetric delegate directly.
func indexAt(x []float64, i int, mode boundary.Mode) (float64, bool) {
	n := len(x)
	if mode == boundary.ZeroPadding {
		if i < 0 || i >= n {
			return 0, true
		}
		return x[i], true
	}
	v, ok := boundary.At(x, i, mode)
	return v, ok
}

func reverseInPlace(x []float64) {
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
	}
}
