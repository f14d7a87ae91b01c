// Package denoise implements threshold-based wavelet denoising: hard/soft
// shrinkage rules, three threshold estimators (Universal, SURE, Bayes)
// operating on dsp/modwt detail coefficients, and a streaming variant that
// recomputes its noise estimate from a rolling window of recent detail
// magnitudes rather than the whole signal.
package denoise
