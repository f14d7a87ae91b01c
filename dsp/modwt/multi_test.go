package modwt

import (
	"context"
	"math"
	"testing"

	"github.com/Prophetizo/vectorwave/dsp/boundary"
	"github.com/Prophetizo/vectorwave/dsp/wavelet"
)

func TestDecomposeReconstructRoundTrip(t *testing.T) {
	w, err := wavelet.Get("db4")
	if err != nil {
		t.Fatalf("Get(db4): %v", err)
	}
	x := testSignal(256)
	for _, strategy := range []Strategy{Sequential, ScaleParallel, ChunkParallel, HybridParallel} {
		result, err := Decompose(context.Background(), x, w, 4, boundary.Periodic, WithStrategy(strategy), WithChunkSize(37))
		if err != nil {
			t.Fatalf("%s: Decompose: %v", strategy, err)
		}
		if len(result.D) != 4 {
			t.Fatalf("%s: expected 4 detail levels, got %d", strategy, len(result.D))
		}
		recon, err := Reconstruct(result, w, boundary.Periodic)
		if err != nil {
			t.Fatalf("%s: Reconstruct: %v", strategy, err)
		}
		for i := range x {
			if math.Abs(recon[i]-x[i]) > 1e-8 {
				t.Errorf("%s: recon[%d] = %v, want %v", strategy, i, recon[i], x[i])
			}
		}
	}
}

func TestLevelCap(t *testing.T) {
	cases := []struct {
		n, l, want int
	}{
		{256, 8, 5},
		{64, 8, 3},
		{8, 8, 0},
	}
	for _, c := range cases {
		if got := LevelCap(c.n, c.l); got != c.want {
			t.Errorf("LevelCap(%d, %d) = %d, want %d", c.n, c.l, got, c.want)
		}
	}
}

func TestDecomposeRejectsLevelsAboveCap(t *testing.T) {
	w, _ := wavelet.Get("db4")
	x := testSignal(16)
	cap := LevelCap(len(x), w.SupportWidth())
	if _, err := Decompose(context.Background(), x, w, cap+1, boundary.Periodic); err == nil {
		t.Fatal("expected error for levels above cap")
	}
}

func TestSelectStrategy(t *testing.T) {
	cfg := defaultConfig()
	if got := cfg.selectStrategy(100, 2); got != Sequential {
		t.Errorf("selectStrategy(100,2) = %v, want Sequential", got)
	}
	if got := cfg.selectStrategy(4000, 5); got != ScaleParallel {
		t.Errorf("selectStrategy(4000,5) = %v, want ScaleParallel", got)
	}
	if got := cfg.selectStrategy(16384, 2); got != ChunkParallel {
		t.Errorf("selectStrategy(16384,2) = %v, want ChunkParallel", got)
	}
	if got := cfg.selectStrategy(16384, 5); got != HybridParallel {
		t.Errorf("selectStrategy(16384,5) = %v, want HybridParallel", got)
	}
}
