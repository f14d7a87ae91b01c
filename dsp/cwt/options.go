package cwt

import "math"

// Strategy selects how Analyze distributes work across goroutines.
type Strategy int

const (
	// Sequential processes scales one after another on the calling
	// goroutine.
	Sequential Strategy = iota
	// ScaleParallel runs one goroutine per scale.
	ScaleParallel
	// ChunkParallel splits each scale's correlation into signal chunks;
	// the kernel's finite support means chunks need no boundary exchange,
	// only a halo read into the original signal.
	ChunkParallel
	// HybridParallel combines scale- and chunk-level parallelism.
	HybridParallel
)

func (s Strategy) String() string {
	switch s {
	case Sequential:
		return "sequential"
	case ScaleParallel:
		return "scale_parallel"
	case ChunkParallel:
		return "chunk_parallel"
	case HybridParallel:
		return "hybrid_parallel"
	default:
		return "unknown"
	}
}

// Normalization selects how scale-s coefficients are scaled.
type Normalization int

const (
	// UnitEnergy divides by sqrt(s), preserving L2 norm across scales
	// (already built into the kernel sampling, so this is the default
	// no-op case).
	UnitEnergy Normalization = iota
	// UnitArea divides by s instead of sqrt(s).
	UnitArea
)

// config holds the tunables behind Analyze's FFT/direct and parallel
// selectors.
type config struct {
	fftSizeThreshold int // N at or above this (with a real wavelet) uses the FFT path
	forceFFT         bool
	forcedFFT        bool

	sequentialThreshold int // S*N at or below this runs Sequential
	scaleParallelN      int // N below this (with S>=scaleParallelS) runs ScaleParallel
	scaleParallelS      int
	chunkParallelN      int // N at/above this (with S<scaleParallelS) runs ChunkParallel
	chunkSize           int
	forced              Strategy
	forceStrategy       bool

	normalization Normalization
}

func defaultConfig() config {
	return config{
		fftSizeThreshold:    1024,
		sequentialThreshold: 4096,
		scaleParallelN:      8192,
		scaleParallelS:      4,
		chunkParallelN:      8192,
		chunkSize:           2048,
		normalization:       UnitEnergy,
	}
}

// Option configures an Analyze call.
type Option func(*config)

// WithFFTThreshold overrides the signal length at or above which Analyze
// prefers the FFT-accelerated path for real wavelets.
func WithFFTThreshold(n int) Option {
	return func(c *config) { c.fftSizeThreshold = n }
}

// WithForceFFT forces (or forbids) the FFT path regardless of should_use_fft,
// for benchmarking; it is still refused for complex wavelets.
func WithForceFFT(use bool) Option {
	return func(c *config) {
		c.forceFFT = use
		c.forcedFFT = true
	}
}

// WithSequentialThreshold overrides the S*N product at or below which
// Analyze runs Sequential.
func WithSequentialThreshold(threshold int) Option {
	return func(c *config) { c.sequentialThreshold = threshold }
}

// WithChunkSize overrides the chunk length used by ChunkParallel and the
// chunked half of HybridParallel.
func WithChunkSize(size int) Option {
	return func(c *config) { c.chunkSize = size }
}

// WithStrategy forces a specific Strategy, bypassing the selector.
func WithStrategy(s Strategy) Option {
	return func(c *config) {
		c.forced = s
		c.forceStrategy = true
	}
}

// WithNormalization overrides the per-scale coefficient normalization.
func WithNormalization(n Normalization) Option {
	return func(c *config) { c.normalization = n }
}

func (c config) selectStrategy(s, n int) Strategy {
	if c.forceStrategy {
		return c.forced
	}
	switch {
	case s*n <= c.sequentialThreshold:
		return Sequential
	case s >= c.scaleParallelS && n < c.scaleParallelN:
		return ScaleParallel
	case s < c.scaleParallelS && n >= c.chunkParallelN:
		return ChunkParallel
	default:
		return HybridParallel
	}
}

// shouldUseFFT reports whether the FFT-accelerated path applies: the
// wavelet must be real-valued, and either the signal meets the size
// threshold or the FFT path was forced on.
func (c config) shouldUseFFT(n int, real bool) bool {
	if !real {
		return false
	}
	if c.forcedFFT {
		return c.forceFFT
	}
	return n >= c.fftSizeThreshold
}

// kernelHalfWidth returns ceil(4*scale), the one-sided sample reach of a
// wavelet kernel at the given scale.
func kernelHalfWidth(scale float64) int {
	return int(math.Ceil(4 * scale))
}
