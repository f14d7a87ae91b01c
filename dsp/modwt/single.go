package modwt

import (
	"fmt"

	"github.com/Prophetizo/vectorwave/dsp/boundary"
	"github.com/Prophetizo/vectorwave/dsp/errs"
	"github.com/Prophetizo/vectorwave/dsp/wavelet"
)

// Forward computes the single-level MODWT of x: the approximation A and
// detail D coefficient arrays, each of length len(x), using the wavelet's
// MODWT-scaled analysis filters h~ = h0/sqrt(2), g~ = g0/sqrt(2).
func Forward(x []float64, w *wavelet.Wavelet, mode boundary.Mode) (A, D []float64, err error) {
	if err := validateSignal(x, "modwt.Forward"); err != nil {
		return nil, nil, err
	}
	if !w.IsDiscrete() {
		return nil, nil, errs.New(errs.InvalidArgument, "modwt.Forward", fmt.Sprintf("wavelet %q has no discrete filter bank", w.Name))
	}
	if len(x) < w.SupportWidth() && mode == boundary.ZeroPadding {
		return nil, nil, errs.New(errs.InvalidArgument, "modwt.Forward", "signal shorter than filter support under ZeroPadding")
	}

	hTilde := scale(w.H0)
	gTilde := scale(w.G0)

	A = make([]float64, len(x))
	D = make([]float64, len(x))
	circularConvolveForward(x, hTilde, dilationStride(1), mode, A)
	circularConvolveForward(x, gTilde, dilationStride(1), mode, D)
	return A, D, nil
}

// ForwardSlice processes a contiguous window x[offset:offset+length] without
// copying the backing slice; the caller owns the returned coefficient
// arrays. Boundary resolution is relative to the window, not the original
// signal.
func ForwardSlice(x []float64, offset, length int, w *wavelet.Wavelet, mode boundary.Mode) (A, D []float64, err error) {
	if offset < 0 || length <= 0 || offset+length > len(x) {
		return nil, nil, errs.New(errs.InvalidArgument, "modwt.ForwardSlice", "offset/length out of range")
	}
	return Forward(x[offset:offset+length], w, mode)
}

// Inverse reconstructs a signal of length len(A) from single-level
// approximation and detail coefficients, using the MODWT-scaled synthesis
// filters h~1 = h1/sqrt(2), g~1 = g1/sqrt(2). Requires len(A) == len(D).
func Inverse(A, D []float64, w *wavelet.Wavelet, mode boundary.Mode) ([]float64, error) {
	if len(A) == 0 || len(D) == 0 {
		return nil, errs.New(errs.InvalidArgument, "modwt.Inverse", "A and D must be non-empty")
	}
	if len(A) != len(D) {
		return nil, errs.New(errs.InvalidArgument, "modwt.Inverse", "A and D length mismatch")
	}
	if !w.IsDiscrete() {
		return nil, errs.New(errs.InvalidArgument, "modwt.Inverse", fmt.Sprintf("wavelet %q has no discrete filter bank", w.Name))
	}

	h1Tilde := scale(w.H1)
	g1Tilde := scale(w.G1)

	x := make([]float64, len(A))
	circularConvolveInverse(A, h1Tilde, dilationStride(1), mode, x)
	circularConvolveInverse(D, g1Tilde, dilationStride(1), mode, x)
	return x, nil
}

func validateSignal(x []float64, op string) error {
	if len(x) == 0 {
		return errs.New(errs.InvalidArgument, op, "signal must not be empty")
	}
	for _, v := range x {
		if isNonFinite(v) {
			return errs.New(errs.InvalidSignal, op, "signal contains NaN or Inf")
		}
	}
	return nil
}

func isNonFinite(v float64) bool {
	return v != v || v > maxFinite || v < -maxFinite
}

const maxFinite = 1.7976931348623157e+308
