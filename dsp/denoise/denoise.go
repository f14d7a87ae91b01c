package denoise

import (
	"context"

	"github.com/Prophetizo/vectorwave/dsp/boundary"
	"github.com/Prophetizo/vectorwave/dsp/errs"
	"github.com/Prophetizo/vectorwave/dsp/modwt"
	"github.com/Prophetizo/vectorwave/dsp/wavelet"
)

// Denoise runs a J-level MODWT decomposition, thresholds every detail
// level independently with the configured estimator and rule, and
// reconstructs. Noise sigma is estimated once from the finest-level
// detail coefficients (D[0]) per NoiseSigma, and reused (or re-derived
// per level, for Bayes) across every level's threshold.
func Denoise(ctx context.Context, x []float64, w *wavelet.Wavelet, levels int, mode boundary.Mode, opts ...Option) ([]float64, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	result, err := modwt.Decompose(ctx, x, w, levels, mode, cfg.modwtOpts...)
	if err != nil {
		return nil, err
	}
	if len(result.D) == 0 {
		return nil, errs.New(errs.InvalidArgument, "denoise.Denoise", "decomposition produced no detail levels")
	}

	sigma := NoiseSigma(result.D[0])
	thresholded := make([][]float64, len(result.D))
	for j, d := range result.D {
		t := thresholdFor(cfg.estimator, d, sigma)
		thresholded[j] = Apply(d, t, cfg.rule)
	}

	recon, err := modwt.Reconstruct(&modwt.Result{A: result.A, D: thresholded}, w, mode)
	if err != nil {
		return nil, err
	}
	return recon, nil
}

func thresholdFor(e Estimator, d []float64, sigma float64) float64 {
	switch e {
	case SURE:
		return EstimateSURE(d, sigma)
	case Bayes:
		return EstimateBayes(d, sigma)
	default:
		return EstimateUniversal(sigma, len(d))
	}
}
