package modwt

import (
	"math"
	"testing"

	"github.com/Prophetizo/vectorwave/dsp/boundary"
)

func TestScaleDividesBySqrt2(t *testing.T) {
	h0 := []float64{1, 2, 3}
	got := scale(h0)
	want := []float64{1 / sqrt2, 2 / sqrt2, 3 / sqrt2}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-15 {
			t.Errorf("scale[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDilateInsertsZeros(t *testing.T) {
	f := []float64{1, 2, 3}
	got := dilate(f, 2)
	want := []float64{1, 0, 2, 0, 3}
	if len(got) != len(want) {
		t.Fatalf("dilate length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("dilate[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

// TestStrideEquivalentToDilation confirms that convolving with a compact
// filter at stride=2^(level-1) produces the same result as convolving the
// explicitly zero-dilated filter at stride=1, the equivalence the
// multi-level cascade relies on to avoid materializing zeros.
func TestStrideEquivalentToDilation(t *testing.T) {
	f := []float64{0.2, -0.5, 0.9, 0.1}
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	for level := 1; level <= 3; level++ {
		stride := dilationStride(level)
		dilated := dilate(f, level)

		strided := make([]float64, len(x))
		viaZeros := make([]float64, len(x))
		circularConvolveForward(x, f, stride, boundary.Periodic, strided)
		circularConvolveForward(x, dilated, 1, boundary.Periodic, viaZeros)

		for i := range x {
			if math.Abs(strided[i]-viaZeros[i]) > 1e-9 {
				t.Errorf("level %d: strided[%d]=%v, dilated[%d]=%v", level, i, strided[i], i, viaZeros[i])
			}
		}
	}
}

func TestCircularConvolveForwardPeriodic(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	f := []float64{0.5, 0.5}
	dst := make([]float64, len(x))
	circularConvolveForward(x, f, 1, boundary.Periodic, dst)
	// y[t] = 0.5*x[t] + 0.5*x[t-1 mod 4]
	want := []float64{0.5*1 + 0.5*4, 0.5*2 + 0.5*1, 0.5*3 + 0.5*2, 0.5*4 + 0.5*3}
	for i := range want {
		if math.Abs(dst[i]-want[i]) > 1e-12 {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestCircularConvolveForwardZeroPadding(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	f := []float64{1, 1}
	dst := make([]float64, len(x))
	circularConvolveForward(x, f, 1, boundary.ZeroPadding, dst)
	// y[t] = x[t] + x[t-1], with x[-1] = 0
	want := []float64{1, 3, 5, 7}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}
