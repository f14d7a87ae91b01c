package modwt

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Prophetizo/vectorwave/dsp/boundary"
	"github.com/Prophetizo/vectorwave/dsp/errs"
	"github.com/Prophetizo/vectorwave/dsp/wavelet"
)

// Result holds a J-level MODWT decomposition: the level-J approximation and
// the detail coefficients at every level, D[0] being the finest (level 1).
type Result struct {
	A []float64
	D [][]float64
}

// Decompose runs a J-level MODWT on x, selecting sequential, scale-parallel,
// chunk-parallel, or hybrid-parallel execution per the level/length
// selector, unless overridden with WithStrategy.
func Decompose(ctx context.Context, x []float64, w *wavelet.Wavelet, levels int, mode boundary.Mode, opts ...Option) (*Result, error) {
	if err := validateSignal(x, "modwt.Decompose"); err != nil {
		return nil, err
	}
	if !w.IsDiscrete() {
		return nil, errs.New(errs.InvalidArgument, "modwt.Decompose", fmt.Sprintf("wavelet %q has no discrete filter bank", w.Name))
	}
	if levels <= 0 {
		return nil, errs.New(errs.InvalidArgument, "modwt.Decompose", "levels must be positive")
	}
	if cap := LevelCap(len(x), w.SupportWidth()); levels > cap {
		return nil, errs.New(errs.InvalidConfiguration, "modwt.Decompose",
			fmt.Sprintf("levels %d exceeds cap %d for N=%d, L=%d", levels, cap, len(x), w.SupportWidth()))
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(x)
	strategy := cfg.selectStrategy(n, levels)

	hTilde := scale(w.H0)
	gTilde := scale(w.G0)

	details := make([][]float64, levels)
	approx := make([]float64, n)
	copy(approx, x)

	switch strategy {
	case ScaleParallel:
		if err := decomposeScaleParallel(ctx, approx, hTilde, gTilde, levels, mode, details); err != nil {
			return nil, err
		}
	case ChunkParallel, HybridParallel:
		if err := decomposeChunked(ctx, approx, hTilde, gTilde, levels, mode, cfg.chunkSize, details); err != nil {
			return nil, err
		}
	default:
		decomposeSequential(approx, hTilde, gTilde, levels, mode, details)
	}

	return &Result{A: approx, D: details}, nil
}

// decomposeSequential runs the cascade on the calling goroutine: level j's
// detail and next approximation depend only on level j-1's approximation.
func decomposeSequential(approx, hTilde, gTilde []float64, levels int, mode boundary.Mode, details [][]float64) {
	n := len(approx)
	for level := 1; level <= levels; level++ {
		stride := dilationStride(level)
		hDil := hTilde
		gDil := gTilde

		d := make([]float64, n)
		a := make([]float64, n)
		circularConvolveForward(approx, gDil, stride, mode, d)
		circularConvolveForward(approx, hDil, stride, mode, a)

		details[level-1] = d
		copy(approx, a)
	}
}

// decomposeScaleParallel still runs the cascade level by level (detail j
// depends on approximation j-1, which is itself produced by the cascade),
// but computes each level's detail and next-approximation convolutions
// concurrently, since within a level they're independent of one another.
func decomposeScaleParallel(ctx context.Context, approx, hTilde, gTilde []float64, levels int, mode boundary.Mode, details [][]float64) error {
	n := len(approx)
	for level := 1; level <= levels; level++ {
		stride := dilationStride(level)
		hDil := hTilde
		gDil := gTilde

		d := make([]float64, n)
		a := make([]float64, n)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			circularConvolveForward(approx, gDil, stride, mode, d)
			return nil
		})
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			circularConvolveForward(approx, hDil, stride, mode, a)
			return nil
		})
		if err := g.Wait(); err != nil {
			return errs.Wrap(errs.InvalidState, "modwt.Decompose", "scale-parallel level failed", err)
		}

		details[level-1] = d
		copy(approx, a)
	}
	return nil
}

// decomposeChunked runs each level's convolution over signal segments in
// parallel. Segment boundaries widen by the dilated filter's support so
// each chunk's taps near the edges are resolved against the full signal
// rather than only the chunk's own slice (the "boundary exchange" of L-1
// elements generalized to a dilated filter's reach).
func decomposeChunked(ctx context.Context, approx, hTilde, gTilde []float64, levels int, mode boundary.Mode, chunkSize int, details [][]float64) error {
	n := len(approx)
	if chunkSize <= 0 || chunkSize > n {
		chunkSize = n
	}
	for level := 1; level <= levels; level++ {
		stride := dilationStride(level)
		hDil := hTilde
		gDil := gTilde

		d := make([]float64, n)
		a := make([]float64, n)

		g, gctx := errgroup.WithContext(ctx)
		for start := 0; start < n; start += chunkSize {
			start := start
			end := start + chunkSize
			if end > n {
				end = n
			}
			g.Go(func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				for t := start; t < end; t++ {
					d[t] = circularTapSum(approx, gDil, t, stride, mode)
					a[t] = circularTapSum(approx, hDil, t, stride, mode)
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return errs.Wrap(errs.InvalidState, "modwt.Decompose", "chunk-parallel level failed", err)
		}

		details[level-1] = d
		copy(approx, a)
	}
	return nil
}

// Reconstruct inverts a J-level decomposition, combining levels from J down
// to 1 to recover the original signal.
func Reconstruct(result *Result, w *wavelet.Wavelet, mode boundary.Mode) ([]float64, error) {
	if result == nil || len(result.A) == 0 {
		return nil, errs.New(errs.InvalidArgument, "modwt.Reconstruct", "result must not be empty")
	}
	if !w.IsDiscrete() {
		return nil, errs.New(errs.InvalidArgument, "modwt.Reconstruct", fmt.Sprintf("wavelet %q has no discrete filter bank", w.Name))
	}
	levels := len(result.D)
	n := len(result.A)

	h1Tilde := scale(w.H1)
	g1Tilde := scale(w.G1)

	approx := make([]float64, n)
	copy(approx, result.A)

	for level := levels; level >= 1; level-- {
		stride := dilationStride(level)
		hDil := h1Tilde
		gDil := g1Tilde

		next := make([]float64, n)
		circularConvolveInverse(approx, hDil, stride, mode, next)
		circularConvolveInverse(result.D[level-1], gDil, stride, mode, next)
		approx = next
	}
	return approx, nil
}
