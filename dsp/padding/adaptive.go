package padding

import (
	"fmt"
	"math"

	"github.com/Prophetizo/vectorwave/dsp/errs"
	"github.com/Prophetizo/vectorwave/dsp/spectrum"
	"github.com/Prophetizo/vectorwave/internal/fft"
	mstats "github.com/montanaflynn/stats"
)

// Characteristics summarizes the signal analysis the adaptive selector's
// decision tree runs against.
type Characteristics struct {
	Smoothness     float64
	TrendStrength  float64
	NoiseLevel     float64
	Stationarity   float64
	Discontinuity  bool
	Periodicity    float64
}

// Decision is the adaptive selector's verdict: the chosen strategy plus a
// human-readable account of the scores that produced it.
type Decision struct {
	Strategy        *Strategy
	Characteristics Characteristics
	Reason          string
}

// SelectAndPad analyzes x and picks a padding strategy per the adaptive
// decision tree, then applies it to reach targetLength.
func SelectAndPad(x []float64, targetLength int) ([]float64, *Decision, error) {
	if len(x) == 0 {
		return nil, nil, errs.New(errs.InvalidArgument, "padding.SelectAndPad", "signal must not be empty")
	}
	decision := Select(x)
	padded, err := Pad(x, targetLength, decision.Strategy)
	if err != nil {
		return nil, nil, err
	}
	return padded, decision, nil
}

// Select runs the signal-characteristics analysis and decision tree
// without padding, for callers that want to inspect or override the
// verdict before calling Pad.
func Select(x []float64) *Decision {
	n := len(x)
	c := analyze(x)

	var strat *Strategy
	var reason string

	switch {
	case n < 5:
		strat = New(Constant)
		reason = "N < 5: too short for any fit-based strategy"
	case c.Periodicity > 0.7:
		strat = New(Periodic)
		reason = fmt.Sprintf("periodicity %.3f > 0.7", c.Periodicity)
	case c.Discontinuity && c.Smoothness < 0.3:
		strat = New(Zero)
		reason = fmt.Sprintf("edge discontinuity with smoothness %.3f < 0.3", c.Smoothness)
	case c.TrendStrength > 0.8:
		if c.NoiseLevel < 0.2 {
			strat = New(Polynomial, WithDegree(3))
			reason = fmt.Sprintf("trend %.3f > 0.8, noise %.3f < 0.2: cubic fit", c.TrendStrength, c.NoiseLevel)
		} else {
			strat = New(Statistical, WithStatMode(Trend))
			reason = fmt.Sprintf("trend %.3f > 0.8, noise %.3f >= 0.2: statistical trend", c.TrendStrength, c.NoiseLevel)
		}
	case c.Smoothness > 0.7 && c.NoiseLevel < 0.3:
		if c.TrendStrength > 0.5 {
			strat = New(Linear)
			reason = fmt.Sprintf("smooth %.3f, low noise %.3f, trend %.3f > 0.5: linear", c.Smoothness, c.NoiseLevel, c.TrendStrength)
		} else {
			strat = New(Polynomial, WithDegree(3))
			reason = fmt.Sprintf("smooth %.3f, low noise %.3f, weak trend: cubic fit", c.Smoothness, c.NoiseLevel)
		}
	case c.Stationarity > 0.7:
		if c.NoiseLevel > 0.5 {
			strat = New(Statistical, WithStatMode(Mean))
			reason = fmt.Sprintf("stationary %.3f, noisy %.3f: statistical mean", c.Stationarity, c.NoiseLevel)
		} else {
			strat = New(Constant)
			reason = fmt.Sprintf("stationary %.3f, quiet: constant", c.Stationarity)
		}
	case c.NoiseLevel > 0.6:
		strat = New(SymmetricKind)
		reason = fmt.Sprintf("noise %.3f > 0.6: symmetric", c.NoiseLevel)
	default:
		strat = New(SymmetricKind)
		reason = "default: symmetric"
	}

	return &Decision{Strategy: strat, Characteristics: c, Reason: reason}
}

func analyze(x []float64) Characteristics {
	return Characteristics{
		Smoothness:    smoothness(x),
		TrendStrength: linearFitRSquared(x, len(x)),
		NoiseLevel:    noiseLevel(x),
		Stationarity:  stationarity(x),
		Discontinuity: hasDiscontinuity(x),
		Periodicity:   periodicity(x),
	}
}

func firstDifferences(x []float64) []float64 {
	if len(x) < 2 {
		return nil
	}
	d := make([]float64, len(x)-1)
	for i := 1; i < len(x); i++ {
		d[i-1] = x[i] - x[i-1]
	}
	return d
}

func secondDifferences(x []float64) []float64 {
	d1 := firstDifferences(x)
	return firstDifferences(d1)
}

func sumAbs(x []float64) float64 {
	s := 0.0
	for _, v := range x {
		s += math.Abs(v)
	}
	return s
}

// smoothness is exp(-sum|second diff| / sum|first diff|): close to 1 for
// smooth signals, decaying toward 0 as curvature dominates.
func smoothness(x []float64) float64 {
	d1 := firstDifferences(x)
	d2 := secondDifferences(x)
	sumD1 := sumAbs(d1)
	if sumD1 == 0 {
		return 1
	}
	ratio := sumAbs(d2) / sumD1
	return math.Exp(-ratio)
}

// noiseLevel is the median absolute first difference scaled by the signal
// range, clamped to [0,1].
func noiseLevel(x []float64) float64 {
	d1 := firstDifferences(x)
	if len(d1) == 0 {
		return 0
	}
	absD1 := make([]float64, len(d1))
	for i, v := range d1 {
		absD1[i] = math.Abs(v)
	}
	med, _ := mstats.Median(absD1)

	rng := signalRange(x)
	if rng == 0 {
		return 0
	}
	level := (med / rng) * 4
	return math.Max(0, math.Min(1, level))
}

func signalRange(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	lo, hi := x[0], x[0]
	for _, v := range x {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return hi - lo
}

// stationarity splits x into 4 equal segments and compares per-segment
// mean/variance dispersion against the signal's global statistics.
func stationarity(x []float64) float64 {
	n := len(x)
	if n < 8 {
		return 0
	}
	segLen := n / 4
	means := make([]float64, 4)
	vars := make([]float64, 4)
	for i := 0; i < 4; i++ {
		start := i * segLen
		end := start + segLen
		if i == 3 {
			end = n
		}
		seg := x[start:end]
		mean, _ := mstats.Mean(seg)
		v, _ := mstats.Variance(seg)
		means[i] = mean
		vars[i] = v
	}

	globalMean, _ := mstats.Mean(x)
	globalVar, _ := mstats.Variance(x)

	meanVariation := dispersion(means, globalMean)
	varVariation := dispersion(vars, globalVar)

	return math.Exp(-2 * (meanVariation + varVariation) / 2)
}

// dispersion normalizes the spread of values around a reference by the
// reference's own magnitude, falling back to raw standard deviation when
// the reference is ~0.
func dispersion(values []float64, reference float64) float64 {
	sd, _ := mstats.StandardDeviation(values)
	denom := math.Abs(reference)
	if denom < 1e-12 {
		return sd
	}
	return sd / denom
}

// hasDiscontinuity reports whether either edge's first difference exceeds
// 3x the mean absolute first difference.
func hasDiscontinuity(x []float64) bool {
	if len(x) < 3 {
		return false
	}
	d1 := firstDifferences(x)
	meanAbs := sumAbs(d1) / float64(len(d1))
	if meanAbs == 0 {
		return false
	}
	return math.Abs(d1[0]) > 3*meanAbs || math.Abs(d1[len(d1)-1]) > 3*meanAbs
}

// periodicity scores the strongest normalized autocorrelation peak, using
// direct lag-by-lag correlation for short signals and an FFT-based
// Wiener-Khinchin estimate for longer ones.
func periodicity(x []float64) float64 {
	n := len(x)
	if n < 4 {
		return 0
	}
	if n < 32 {
		return directPeriodicity(x)
	}
	return fftPeriodicity(x)
}

func directPeriodicity(x []float64) float64 {
	n := len(x)
	maxLag := n / 2
	if maxLag > 10 {
		maxLag = 10
	}
	if maxLag < 2 {
		return 0
	}
	mean, _ := mstats.Mean(x)
	variance, _ := mstats.Variance(x)
	if variance == 0 {
		return 0
	}

	best := 0.0
	for lag := 2; lag <= maxLag; lag++ {
		num := 0.0
		count := n - lag
		for i := 0; i < count; i++ {
			num += (x[i] - mean) * (x[i+lag] - mean)
		}
		score := math.Abs(num/float64(count)) / variance
		if score > best {
			best = score
		}
	}
	return math.Max(0, math.Min(1, best))
}

func fftPeriodicity(x []float64) float64 {
	n := len(x)
	mean, _ := mstats.Mean(x)
	centered := make([]float64, n)
	for i, v := range x {
		centered[i] = v - mean
	}

	size := fft.NextPow2(2 * n)
	padded := make([]complex128, size)
	for i, v := range centered {
		padded[i] = complex(v, 0)
	}

	freq := make([]complex128, size)
	if err := fft.Forward(freq, padded); err != nil {
		return directPeriodicity(x)
	}
	powerMag := spectrum.Power(freq)
	power := make([]complex128, size)
	for i, p := range powerMag {
		power[i] = complex(p, 0)
	}
	auto := make([]complex128, size)
	if err := fft.Inverse(auto, power); err != nil {
		return directPeriodicity(x)
	}

	variance, _ := mstats.Variance(x)
	if variance == 0 {
		return 0
	}
	acf0 := real(auto[0])
	if acf0 == 0 {
		return 0
	}

	maxLag := n / 2
	if maxLag > 50 {
		maxLag = 50
	}
	if maxLag < 2 {
		return 0
	}

	best := 0.0
	for lag := 2; lag <= maxLag; lag++ {
		if lag >= 1 && lag+1 < maxLag {
			prev := real(auto[lag-1])
			cur := real(auto[lag])
			next := real(auto[lag+1])
			if cur < prev || cur < next {
				continue
			}
		}
		weight := math.Min(1, float64(n)/(3*float64(lag)))
		score := (real(auto[lag]) / acf0) * weight
		if score > best {
			best = score
		}
	}
	return math.Max(0, math.Min(1, best))
}
