package cwt

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/Prophetizo/vectorwave/dsp/errs"
	"github.com/Prophetizo/vectorwave/dsp/spectrum"
	"github.com/Prophetizo/vectorwave/dsp/wavelet"
	"github.com/Prophetizo/vectorwave/internal/fft"
)

// Result holds an S-scale-by-N-sample CWT coefficient matrix. Rows are
// complex128 regardless of wavelet realness; callers of a real wavelet can
// read Row(i) and ignore the (zero) imaginary part, or use Magnitude for a
// scalogram.
type Result struct {
	Scales []float64
	C      [][]complex128
}

// Row returns the coefficient row for scale index i.
func (r *Result) Row(i int) []complex128 { return r.C[i] }

// Magnitude returns |c[s,tau]| for scale index i, reusing the SIMD-dispatched
// magnitude kernel shared with spectral analysis.
func (r *Result) Magnitude(i int) []float64 { return spectrum.Magnitude(r.C[i]) }

// Analyze computes c[s,tau] = sum_n x[tau+n] * psi_s[n] for every requested
// scale, where psi_s is w's continuous wavelet sampled per
// wavelet.Wavelet.Discretize and n ranges over [-ceil(4s), ceil(4s)].
// Indices outside [0, len(x)) contribute zero. Analyze picks a direct or
// FFT-accelerated path and a sequential/scale/chunk/hybrid parallel
// strategy; see Option.
func Analyze(ctx context.Context, x []float64, scales []float64, w *wavelet.Wavelet, opts ...Option) (*Result, error) {
	if err := validateSignal(x); err != nil {
		return nil, err
	}
	if w.Kind != wavelet.ContinuousAnalytic {
		return nil, errs.New(errs.InvalidArgument, "cwt.Analyze", fmt.Sprintf("wavelet %q is not a continuous analyzing wavelet", w.Name))
	}
	if len(scales) == 0 {
		return nil, errs.New(errs.InvalidArgument, "cwt.Analyze", "scales must not be empty")
	}
	for _, s := range scales {
		if !(s > 0) || math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, errs.New(errs.InvalidArgument, "cwt.Analyze", fmt.Sprintf("scale %v must be finite and positive", s))
		}
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(x)
	s := len(scales)

	halfWidths := make([]int, s)
	kernels := make([][]complex128, s)
	maxHalf := 0
	for i, scale := range scales {
		hw := kernelHalfWidth(scale)
		halfWidths[i] = hw
		kernels[i] = w.Discretize(scale, 2*hw+1)
		if hw > maxHalf {
			maxHalf = hw
		}
	}

	useFFT := cfg.shouldUseFFT(n, w.IsReal())

	var signalFreq []complex128
	var fftSize int
	if useFFT {
		fftSize = fft.NextPow2(n + 2*maxHalf + 1 - 1)
		var err error
		signalFreq, err = fft.SharedSignalSpectrum(x, fftSize)
		if err != nil {
			return nil, errs.Wrap(errs.InvalidState, "cwt.Analyze", "failed to compute shared signal spectrum", err)
		}
	}

	rows := make([][]complex128, s)
	strategy := cfg.selectStrategy(s, n)

	rowFn := func(i int) ([]complex128, error) {
		if useFFT {
			return fftRow(x, signalFreq, kernels[i], halfWidths[i], fftSize, n)
		}
		return directRow(x, kernels[i], halfWidths[i]), nil
	}

	var err error
	switch {
	case useFFT:
		// The FFT path's value is in sharing one signal transform across
		// every scale; subdividing a single scale's row into chunks would
		// only add per-chunk FFT overhead, so ChunkParallel/HybridParallel
		// degrade to ScaleParallel here.
		if strategy == Sequential {
			err = analyzeSequential(rowFn, rows)
		} else {
			err = analyzeScaleParallel(ctx, rowFn, rows)
		}
	case strategy == ScaleParallel:
		err = analyzeScaleParallel(ctx, rowFn, rows)
	case strategy == ChunkParallel || strategy == HybridParallel:
		err = analyzeChunked(ctx, x, kernels, halfWidths, cfg.chunkSize, rows)
	default:
		err = analyzeSequential(rowFn, rows)
	}
	if err != nil {
		return nil, err
	}

	applyNormalization(rows, scales, cfg.normalization)

	return &Result{Scales: append([]float64(nil), scales...), C: rows}, nil
}

func analyzeSequential(rowFn func(i int) ([]complex128, error), rows [][]complex128) error {
	for i := range rows {
		row, err := rowFn(i)
		if err != nil {
			return err
		}
		rows[i] = row
	}
	return nil
}

func analyzeScaleParallel(ctx context.Context, rowFn func(i int) ([]complex128, error), rows [][]complex128) error {
	g, gctx := errgroup.WithContext(ctx)
	for i := range rows {
		i := i
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			row, err := rowFn(i)
			if err != nil {
				return err
			}
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return errs.Wrap(errs.InvalidState, "cwt.Analyze", "scale-parallel analysis failed", err)
	}
	return nil
}

// analyzeChunked runs the direct-correlation path, splitting every scale's
// tau range into chunkSize-sized tasks. Each chunk reads only from the
// original signal within its own halo (+-halfWidth[i]), so no exchange
// between chunks is needed: the kernel's finite support guarantees adjacent
// chunks agree at their shared boundary.
func analyzeChunked(ctx context.Context, x []float64, kernels [][]complex128, halfWidths []int, chunkSize int, rows [][]complex128) error {
	n := len(x)
	if chunkSize <= 0 || chunkSize > n {
		chunkSize = n
	}
	g, gctx := errgroup.WithContext(ctx)
	for i := range rows {
		i := i
		row := make([]complex128, n)
		rows[i] = row
		kernel := kernels[i]
		hw := halfWidths[i]
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
				directRowChunk(x, kernel, hw, start, end, row)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return errs.Wrap(errs.InvalidState, "cwt.Analyze", "chunk-parallel analysis failed", err)
	}
	return nil
}

// directRow computes one scale's full coefficient row by direct
// zero-padded correlation against the signal.
func directRow(x []float64, kernel []complex128, halfWidth int) []complex128 {
	n := len(x)
	row := make([]complex128, n)
	directRowChunk(x, kernel, halfWidth, 0, n, row)
	return row
}

func directRowChunk(x []float64, kernel []complex128, halfWidth, start, end int, dst []complex128) {
	n := len(x)
	for tau := start; tau < end; tau++ {
		var acc complex128
		lo := -halfWidth
		hi := halfWidth
		if tau+lo < 0 {
			lo = -tau
		}
		if tau+hi >= n {
			hi = n - 1 - tau
		}
		for nn := lo; nn <= hi; nn++ {
			acc += complex(x[tau+nn], 0) * kernel[nn+halfWidth]
		}
		dst[tau] = acc
	}
}

// fftRow computes one scale's coefficient row via the shared signal
// spectrum. The correlation c[tau] = sum_n x[tau+n]*kernel[n+hw] equals
// linearConv(x, reverse(kernel))[tau+hw], so the kernel is reversed before
// multiplication and the result windowed at an offset of hw.
func fftRow(x []float64, signalFreq []complex128, kernel []complex128, halfWidth, fftSize, n int) ([]complex128, error) {
	reversed := make([]complex128, len(kernel))
	for i, v := range kernel {
		reversed[len(kernel)-1-i] = v
	}
	full, err := fft.ConvolveWithSpectrum(signalFreq, reversed, fftSize)
	if err != nil {
		return nil, errs.Wrap(errs.InvalidState, "cwt.Analyze", "fft convolution failed", err)
	}
	row := make([]complex128, n)
	copy(row, full[halfWidth:halfWidth+n])
	return row, nil
}

func applyNormalization(rows [][]complex128, scales []float64, norm Normalization) {
	if norm != UnitArea {
		return
	}
	// Discretize already divides by sqrt(s); UnitArea wants division by s,
	// so apply one more factor of 1/sqrt(s) on top.
	for i, scale := range scales {
		factor := complex(1/math.Sqrt(scale), 0)
		for t := range rows[i] {
			rows[i][t] *= factor
		}
	}
}

func validateSignal(x []float64) error {
	if len(x) == 0 {
		return errs.New(errs.InvalidArgument, "cwt.Analyze", "signal must not be empty")
	}
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errs.New(errs.InvalidSignal, "cwt.Analyze", "signal contains non-finite values")
		}
	}
	return nil
}
