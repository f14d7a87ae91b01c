package padding

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	mstats "github.com/montanaflynn/stats"
)

// edgeWindow returns the last min(fitPoints, len(x)) samples of x along
// with their signal-domain indices, the window every fit-based strategy
// draws on.
func edgeWindow(x []float64, fitPoints int) (xs, ys []float64) {
	k := fitPoints
	if k > len(x) {
		k = len(x)
	}
	start := len(x) - k
	xs = make([]float64, k)
	ys = make([]float64, k)
	for i := 0; i < k; i++ {
		xs[i] = float64(start + i)
		ys[i] = x[start+i]
	}
	return xs, ys
}

// linearFit returns the slope and intercept of a least-squares line through
// the last fitPoints samples of x.
func linearFit(x []float64, fitPoints int) (slope, intercept float64) {
	xs, ys := edgeWindow(x, fitPoints)
	if len(xs) < 2 {
		if len(ys) == 1 {
			return 0, ys[0]
		}
		return 0, 0
	}
	intercept, slope = stat.LinearRegression(xs, ys, nil, false)
	return slope, intercept
}

// linearFitRSquared fits the same window as linearFit and reports the R^2
// of the fit, used by the adaptive selector's trend-strength score.
func linearFitRSquared(x []float64, fitPoints int) float64 {
	xs, ys := edgeWindow(x, fitPoints)
	if len(xs) < 2 {
		return 0
	}
	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	r2 := stat.RSquared(xs, ys, nil, intercept, slope)
	if math.IsNaN(r2) {
		return 0
	}
	return math.Max(0, math.Min(1, r2))
}

// polyFit returns the degree-d least-squares polynomial coefficients
// (lowest order first) fitted to the last fitPoints samples of x.
func polyFit(x []float64, fitPoints, degree int) []float64 {
	xs, ys := edgeWindow(x, fitPoints)
	n := len(xs)
	if n == 0 {
		return make([]float64, degree+1)
	}
	cols := degree + 1
	if cols > n {
		cols = n
	}

	a := mat.NewDense(n, cols, nil)
	for i := 0; i < n; i++ {
		p := 1.0
		for j := 0; j < cols; j++ {
			a.Set(i, j, p)
			p *= xs[i]
		}
	}
	b := mat.NewDense(n, 1, ys)

	var coeffs mat.Dense
	if err := coeffs.Solve(a, b); err != nil {
		// Degenerate design matrix (e.g. all-equal x values): fall back to
		// a constant fit at the window mean.
		mean, _ := mstats.Mean(ys)
		out := make([]float64, degree+1)
		out[0] = mean
		return out
	}

	out := make([]float64, degree+1)
	for j := 0; j < cols; j++ {
		out[j] = coeffs.At(j, 0)
	}
	return out
}

func evalPoly(coeffs []float64, t float64) float64 {
	sum := 0.0
	p := 1.0
	for _, c := range coeffs {
		sum += c * p
		p *= t
	}
	return sum
}

// residualVariance returns the sample variance of (y - fitted line) over
// the fit window, used by Statistical(Trend) to size its injected noise.
func residualVariance(x []float64, fitPoints int) float64 {
	xs, ys := edgeWindow(x, fitPoints)
	if len(xs) < 2 {
		return 0
	}
	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	residuals := make([]float64, len(ys))
	for i := range ys {
		residuals[i] = ys[i] - (slope*xs[i] + intercept)
	}
	v, _ := mstats.Variance(residuals)
	return v
}

func extendStatistical(x []float64, count int, s *Strategy) ([]float64, error) {
	out := make([]float64, count)
	switch s.StatMode {
	case Mean:
		mean, _ := mstats.Mean(x)
		for i := range out {
			out[i] = mean
		}
	case Median:
		med, _ := mstats.Median(x)
		for i := range out {
			out[i] = med
		}
	case Trend:
		slope, intercept := linearFit(x, s.FitPoints)
		variance := residualVariance(x, s.FitPoints)
		stddev := math.Sqrt(variance)
		src := rand.New(rand.NewSource(trendSeed(x)))
		for i := range out {
			t := float64(len(x) + i)
			noise := 0.0
			if stddev > 0 {
				noise = src.NormFloat64() * stddev
			}
			out[i] = slope*t + intercept + noise
		}
	}
	return out, nil
}

// trendSeed derives a deterministic seed from every sample of the signal so
// that repeated calls to Pad with the same input are reproducible, while
// different inputs get different noise draws.
func trendSeed(x []float64) int64 {
	var acc uint64 = 1469598103934665603
	for _, v := range x {
		acc ^= math.Float64bits(v)
		acc *= 1099511628211
	}
	seed := int64(acc)
	if seed == 0 {
		seed = 1
	}
	return seed
}
