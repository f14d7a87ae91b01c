package wavelet

import (
	"fmt"
	"math"

	"github.com/Prophetizo/vectorwave/dsp/errs"
)

const coefficientTolerance = 1e-8

// VerifyCoefficients checks a discrete wavelet's filter bank against its
// defining algebraic identities: normalization of the low-pass filter for
// every discrete wavelet, unit energy and the QMF relation for orthogonal
// wavelets, and the dual biorthogonality relation for biorthogonal pairs.
// Continuous wavelets always pass, since they carry no discrete filter to
// check.
func VerifyCoefficients(w *Wavelet) error {
	if !w.IsDiscrete() {
		return nil
	}
	if err := checkNormalization(w.Name, w.H0, w.Kind == Orthogonal); err != nil {
		return err
	}
	switch w.Kind {
	case Orthogonal:
		return checkOrthogonalQMF(w)
	case Biorthogonal:
		return checkBiorthogonalDual(w)
	default:
		return nil
	}
}

func checkNormalization(name string, h0 []float64, unitEnergy bool) error {
	sum := 0.0
	sumSq := 0.0
	for _, c := range h0 {
		sum += c
		sumSq += c * c
	}
	if math.Abs(sum-math.Sqrt2) > coefficientTolerance {
		return errs.New(errs.InvalidConfiguration, "wavelet.VerifyCoefficients",
			fmt.Sprintf("%s: H0 sums to %v, want sqrt(2)", name, sum))
	}
	if unitEnergy && math.Abs(sumSq-1) > coefficientTolerance {
		return errs.New(errs.InvalidConfiguration, "wavelet.VerifyCoefficients",
			fmt.Sprintf("%s: H0 sum of squares is %v, want 1", name, sumSq))
	}
	return nil
}

// checkOrthogonalQMF verifies g0[k] = (-1)^k * h0[L-1-k] and that H0 is
// orthogonal to its even shifts.
func checkOrthogonalQMF(w *Wavelet) error {
	l := len(w.H0)
	for k := 0; k < l; k++ {
		sign := 1.0
		if k%2 == 1 {
			sign = -1.0
		}
		want := sign * w.H0[l-1-k]
		if math.Abs(w.G0[k]-want) > coefficientTolerance {
			return errs.New(errs.InvalidConfiguration, "wavelet.VerifyCoefficients",
				fmt.Sprintf("%s: QMF relation fails at tap %d", w.Name, k))
		}
	}
	for shift := 2; shift < l; shift += 2 {
		dot := 0.0
		for k := 0; k+shift < l; k++ {
			dot += w.H0[k] * w.H0[k+shift]
		}
		if math.Abs(dot) > coefficientTolerance {
			return errs.New(errs.InvalidConfiguration, "wavelet.VerifyCoefficients",
				fmt.Sprintf("%s: H0 not orthogonal to shift %d (dot=%v)", w.Name, shift, dot))
		}
	}
	return nil
}

// checkBiorthogonalDual verifies sum_k h0[k]*h1[k+2m] = delta(m) for all
// valid shifts m, the dual relation between analysis and synthesis
// low-pass filters.
func checkBiorthogonalDual(w *Wavelet) error {
	l := len(w.H0)
	if len(w.H1) != l {
		return errs.New(errs.InvalidConfiguration, "wavelet.VerifyCoefficients",
			fmt.Sprintf("%s: H0 and H1 length mismatch (%d vs %d)", w.Name, l, len(w.H1)))
	}
	maxShift := l - 1
	for m := -maxShift / 2; m <= maxShift/2; m++ {
		dot := 0.0
		shift := 2 * m
		for k := 0; k < l; k++ {
			j := k + shift
			if j < 0 || j >= l {
				continue
			}
			dot += w.H0[k] * w.H1[j]
		}
		want := 0.0
		if m == 0 {
			want = 1.0
		}
		if math.Abs(dot-want) > coefficientTolerance {
			return errs.New(errs.InvalidConfiguration, "wavelet.VerifyCoefficients",
				fmt.Sprintf("%s: dual relation fails at shift %d (got %v, want %v)", w.Name, m, dot, want))
		}
	}
	return nil
}
