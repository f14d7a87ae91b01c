package denoise

import "math"

// NoiseWindow is a fixed-size circular buffer of recent absolute detail
// values, used by StreamingDenoiser to recompute sigma without retaining
// the whole signal.
type NoiseWindow struct {
	data     []float64
	writePos int
	filled   int
}

// NewNoiseWindow allocates a window holding up to capacity absolute
// detail values.
func NewNoiseWindow(capacity int) *NoiseWindow {
	if capacity < 1 {
		capacity = 1
	}
	return &NoiseWindow{data: make([]float64, capacity)}
}

// Update folds one detail block into the window. If the block is no
// larger than the window, every value is appended (oldest entries
// rotate out). Otherwise the block is sampled at a uniform stride to
// preserve temporal diversity across the block, with the final window
// slot reserved for the block's true last sample so the most recent
// value is never dropped by the stride.
func (w *NoiseWindow) Update(detail []float64) {
	capacity := len(w.data)
	n := len(detail)
	if n == 0 {
		return
	}
	if n <= capacity {
		for _, v := range detail {
			w.push(math.Abs(v))
		}
		return
	}
	step := float64(n) / float64(capacity)
	for i := 0; i < capacity-1; i++ {
		idx := int(float64(i) * step)
		w.push(math.Abs(detail[idx]))
	}
	w.push(math.Abs(detail[n-1]))
}

func (w *NoiseWindow) push(v float64) {
	w.data[w.writePos%len(w.data)] = v
	w.writePos++
	if w.filled < len(w.data) {
		w.filled++
	}
}

// Sigma returns the MAD-based noise estimate over the window's current
// contents: median(window) / 0.6745.
func (w *NoiseWindow) Sigma() float64 {
	if w.filled == 0 {
		return 0
	}
	return NoiseSigma(w.data[:w.filled])
}

// StreamingDenoiser applies threshold-based denoising per level using a
// per-level NoiseWindow instead of a whole-signal sigma estimate, so
// sigma adapts as new blocks arrive.
type StreamingDenoiser struct {
	cfg     config
	windows []*NoiseWindow
}

// NewStreamingDenoiser builds a denoiser tracking `levels` independent
// noise windows of the given capacity.
func NewStreamingDenoiser(levels, windowCapacity int, opts ...Option) *StreamingDenoiser {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	windows := make([]*NoiseWindow, levels)
	for i := range windows {
		windows[i] = NewNoiseWindow(windowCapacity)
	}
	return &StreamingDenoiser{cfg: cfg, windows: windows}
}

// ProcessLevel folds detail into level's noise window, estimates a fresh
// threshold from the window's current sigma, and returns the thresholded
// coefficients. detail is not modified.
func (s *StreamingDenoiser) ProcessLevel(level int, detail []float64) []float64 {
	w := s.windows[level]
	w.Update(detail)
	sigma := w.Sigma()
	t := thresholdFor(s.cfg.estimator, detail, sigma)
	return Apply(detail, t, s.cfg.rule)
}
