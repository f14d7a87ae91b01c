// Package spectrum provides SIMD-dispatched magnitude/power extraction from
// complex FFT spectrum bins, shared by dsp/cwt's scalogram extraction and
// dsp/padding's FFT-based periodicity scoring.
package spectrum
