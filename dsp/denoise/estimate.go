package denoise

import (
	"math"
	"sort"

	mstats "github.com/montanaflynn/stats"
)

// Estimator identifies a threshold estimation rule.
type Estimator int

const (
	Universal Estimator = iota
	SURE
	Bayes
)

func (e Estimator) String() string {
	switch e {
	case Universal:
		return "universal"
	case SURE:
		return "sure"
	case Bayes:
		return "bayes"
	default:
		return "unknown"
	}
}

// NoiseSigma estimates the noise standard deviation from the finest-level
// detail coefficients via the median absolute deviation estimator
// sigma = median(|D_1|) / 0.6745.
func NoiseSigma(finestDetail []float64) float64 {
	if len(finestDetail) == 0 {
		return 0
	}
	abs := make([]float64, len(finestDetail))
	for i, v := range finestDetail {
		abs[i] = math.Abs(v)
	}
	med, _ := mstats.Median(abs)
	return med / 0.6745
}

// EstimateUniversal returns the universal threshold sigma*sqrt(2*ln(n)).
func EstimateUniversal(sigma float64, n int) float64 {
	if n <= 1 {
		return 0
	}
	return sigma * math.Sqrt(2*math.Log(float64(n)))
}

// EstimateSURE returns Stein's Unbiased Risk Estimate threshold, found by
// scanning candidate thresholds at every coefficient's (normalized)
// magnitude, per Donoho & Johnstone's SURE-shrink. d is normalized by
// sigma before the scan and the result is scaled back.
func EstimateSURE(d []float64, sigma float64) float64 {
	n := len(d)
	if n == 0 || sigma <= 0 {
		return 0
	}
	sq := make([]float64, n)
	for i, v := range d {
		y := v / sigma
		sq[i] = y * y
	}
	sort.Float64s(sq)

	bestRisk := math.Inf(1)
	bestT := 0.0
	cum := 0.0
	for k := 0; k < n; k++ {
		cum += sq[k]
		t2 := sq[k]
		risk := float64(n) - 2*float64(k+1) + cum + float64(n-(k+1))*t2
		if risk < bestRisk {
			bestRisk = risk
			bestT = math.Sqrt(t2)
		}
	}
	return bestT * sigma
}

// EstimateBayes returns the per-level BayesShrink threshold
// T = sigma^2 / sigma_X, where sigma_X = sqrt(max(0, mean(D^2) - sigma^2))
// is the estimated signal standard deviation at this level. If the level
// shows no variance beyond the noise floor, the threshold is +Inf (kill
// every coefficient at this level).
func EstimateBayes(d []float64, sigma float64) float64 {
	n := len(d)
	if n == 0 {
		return 0
	}
	sumSq := 0.0
	for _, v := range d {
		sumSq += v * v
	}
	meanSq := sumSq / float64(n)
	sigmaX := math.Sqrt(math.Max(0, meanSq-sigma*sigma))
	if sigmaX == 0 {
		return math.Inf(1)
	}
	return sigma * sigma / sigmaX
}
