// Package cwt implements the Continuous Wavelet Transform: correlating a
// scaled, normalized analyzing wavelet against a signal over a bank of
// scales to produce a scale-by-time coefficient matrix.
//
// Two execution paths compute the same coefficients: direct correlation
// (dsp/modwt's circular-convolution helpers generalize naturally to linear,
// zero-padded correlation here) and an FFT-accelerated path that shares one
// signal spectrum across every scale's kernel multiplication. Analyze picks
// between them per signal length and wavelet realness, and picks its
// parallel strategy per scale count and signal length, the same selector
// shape as dsp/modwt's level/chunk/hybrid strategy.
package cwt
