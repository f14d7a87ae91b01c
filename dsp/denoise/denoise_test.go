package denoise

import (
	"context"
	"math"
	"testing"

	"github.com/Prophetizo/vectorwave/dsp/boundary"
	"github.com/Prophetizo/vectorwave/dsp/wavelet"
)

func TestDenoiseOutputLength(t *testing.T) {
	w, err := wavelet.Get("db4")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	x := make([]float64, 128)
	for i := range x {
		x[i] = math.Sin(float64(i) * 0.1)
	}
	out, err := Denoise(context.Background(), x, w, 3, boundary.Periodic)
	if err != nil {
		t.Fatalf("Denoise: %v", err)
	}
	if len(out) != len(x) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(x))
	}
}

func TestDenoiseZeroSignalStaysZero(t *testing.T) {
	w, err := wavelet.Get("haar")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	x := make([]float64, 64)
	out, err := Denoise(context.Background(), x, w, 2, boundary.Periodic)
	if err != nil {
		t.Fatalf("Denoise: %v", err)
	}
	for i, v := range out {
		if math.Abs(v) > 1e-9 {
			t.Errorf("out[%d] = %v, want 0", i, v)
		}
	}
}

func TestDenoiseReducesResidualAgainstClean(t *testing.T) {
	w, err := wavelet.Get("db4")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	n := 256
	clean := make([]float64, n)
	for i := range clean {
		clean[i] = math.Sin(float64(i) * 0.05)
	}
	// deterministic pseudo-noise (no math/rand dependency on global state)
	noisy := make([]float64, n)
	seed := uint64(12345)
	for i := range noisy {
		seed = seed*6364136223846793005 + 1
		noise := (float64(seed>>11)/(1<<53) - 0.5) * 0.4
		noisy[i] = clean[i] + noise
	}

	denoised, err := Denoise(context.Background(), noisy, w, 3, boundary.Periodic, WithEstimator(Universal), WithRule(Soft))
	if err != nil {
		t.Fatalf("Denoise: %v", err)
	}

	var noisyErr, denoisedErr float64
	for i := range clean {
		noisyErr += (noisy[i] - clean[i]) * (noisy[i] - clean[i])
		denoisedErr += (denoised[i] - clean[i]) * (denoised[i] - clean[i])
	}
	if denoisedErr >= noisyErr {
		t.Errorf("denoised error %v did not improve on noisy error %v", denoisedErr, noisyErr)
	}
}
