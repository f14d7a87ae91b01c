// Package padding implements the boundary-extension strategies used to
// bring a signal up to a target length before transformation, and their
// exact inverses for trimming a padded result back down.
package padding

import (
	"fmt"
	"math"

	"github.com/Prophetizo/vectorwave/dsp/errs"
)

// Side selects which edge sample a Constant strategy repeats: Left repeats
// the first sample, Right and BothSides the last. Padding is still appended
// on the right (see Pad), and no other strategy reads Side.
type Side int

const (
	Left Side = iota
	Right
	BothSides
)

// PointMode distinguishes whole-point (mirror about the boundary sample)
// from half-point (mirror between samples) reflection.
type PointMode int

const (
	WholePoint PointMode = iota
	HalfPoint
)

// Kind identifies a padding strategy.
type Kind int

const (
	Zero Kind = iota
	Constant
	Periodic
	SymmetricKind
	Reflect
	Antisymmetric
	Linear
	Polynomial
	Statistical
	Composite
)

// StatisticalMode selects the Statistical strategy's fill rule.
type StatisticalMode int

const (
	Mean StatisticalMode = iota
	Median
	Trend
)

// Strategy is an immutable padding configuration. Zero value is Zero
// padding. Construct specific variants with the With* option functions via
// New.
type Strategy struct {
	Kind          Kind
	Side          Side
	PointMode     PointMode
	Degree        int             // Polynomial degree, Linear/Polynomial fit order
	FitPoints     int             // number of edge samples used for Linear/Polynomial/Trend fits
	StatMode      StatisticalMode // Statistical sub-mode
	Left_, Right_ *Strategy       // Composite: strategy per side
	SplitRatio    float64         // Composite: fraction of padding assigned to the left side
}

// New builds a Strategy of the given kind with defaults suitable for most
// callers; use the With* option functions to customize.
func New(kind Kind, opts ...Option) *Strategy {
	s := &Strategy{
		Kind:       kind,
		PointMode:  HalfPoint,
		Degree:     3,
		FitPoints:  8,
		SplitRatio: 0.5,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Option configures a Strategy built with New.
type Option func(*Strategy)

func WithSide(side Side) Option             { return func(s *Strategy) { s.Side = side } }
func WithPointMode(m PointMode) Option       { return func(s *Strategy) { s.PointMode = m } }
func WithDegree(d int) Option                { return func(s *Strategy) { s.Degree = d } }
func WithFitPoints(n int) Option             { return func(s *Strategy) { s.FitPoints = n } }
func WithStatMode(m StatisticalMode) Option  { return func(s *Strategy) { s.StatMode = m } }
func WithComposite(left, right *Strategy, splitRatio float64) Option {
	return func(s *Strategy) {
		s.Left_ = left
		s.Right_ = right
		s.SplitRatio = splitRatio
	}
}

// Pad extends x to targetLength, returning the padded signal. Padding is
// appended only on the right for simple strategies and split according to
// SplitRatio for Composite; trim's inverse assumes the same convention.
func Pad(x []float64, targetLength int, s *Strategy) ([]float64, error) {
	if err := validatePad(x, targetLength, s); err != nil {
		return nil, err
	}
	if targetLength <= len(x) {
		out := make([]float64, targetLength)
		copy(out, x[:targetLength])
		return out, nil
	}
	total := targetLength - len(x)

	switch s.Kind {
	case Composite:
		leftCount := int(math.Round(float64(total) * s.SplitRatio))
		rightCount := total - leftCount
		return padComposite(x, leftCount, rightCount, s)
	default:
		return padSingleSide(x, total, s)
	}
}

// Trim extracts the original originalLength samples from a signal padded
// by Pad with the same Strategy, undoing whichever split Pad used.
func Trim(padded []float64, originalLength int, s *Strategy) ([]float64, error) {
	if originalLength < 0 || originalLength > len(padded) {
		return nil, errs.New(errs.InvalidArgument, "padding.Trim", "originalLength out of range")
	}
	total := len(padded) - originalLength
	if total == 0 {
		out := make([]float64, originalLength)
		copy(out, padded)
		return out, nil
	}

	var leftCount int
	if s.Kind == Composite {
		leftCount = int(math.Round(float64(total) * s.SplitRatio))
	}
	out := make([]float64, originalLength)
	copy(out, padded[leftCount:leftCount+originalLength])
	return out, nil
}

func validatePad(x []float64, targetLength int, s *Strategy) error {
	if targetLength < 0 {
		return errs.New(errs.InvalidArgument, "padding.Pad", "target length must be non-negative")
	}
	if s == nil {
		return errs.New(errs.InvalidArgument, "padding.Pad", "strategy must not be nil")
	}
	if s.Kind == Composite && (s.SplitRatio < 0 || s.SplitRatio > 1) {
		return errs.New(errs.InvalidArgument, "padding.Pad", "composite split ratio must be in [0,1]")
	}
	if (s.Kind == Linear || s.Kind == Polynomial || s.Kind == Statistical && s.StatMode == Trend) && s.FitPoints < 2 {
		return errs.New(errs.InvalidArgument, "padding.Pad", "fit points must be >= 2")
	}
	if len(x) == 0 && targetLength > 0 && s.Kind != Zero && s.Kind != Constant {
		return errs.New(errs.InvalidArgument, "padding.Pad", "empty signal cannot be extended by this strategy")
	}
	return nil
}

func padComposite(x []float64, leftCount, rightCount int, s *Strategy) ([]float64, error) {
	left := s.Left_
	right := s.Right_
	if left == nil {
		left = New(Zero)
	}
	if right == nil {
		right = New(Zero)
	}

	reversed := reverseCopy(x)
	leftExtReversed, err := extendRight(reversed, leftCount, left)
	if err != nil {
		return nil, err
	}
	leftExt := reverseCopy(leftExtReversed)

	rightExt, err := extendRight(x, rightCount, right)
	if err != nil {
		return nil, err
	}

	out := make([]float64, 0, leftCount+len(x)+rightCount)
	out = append(out, leftExt...)
	out = append(out, x...)
	out = append(out, rightExt...)
	return out, nil
}

func padSingleSide(x []float64, total int, s *Strategy) ([]float64, error) {
	ext, err := extendRight(x, total, s)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0, len(x)+total)
	out = append(out, x...)
	out = append(out, ext...)
	return out, nil
}

// extendRight produces `count` new samples that would follow x, per
// strategy s. x is never modified.
func extendRight(x []float64, count int, s *Strategy) ([]float64, error) {
	if count == 0 {
		return nil, nil
	}
	n := len(x)
	out := make([]float64, count)

	switch s.Kind {
	case Zero:
		// already zero

	case Constant:
		edge := 0.0
		if n > 0 {
			switch s.Side {
			case Left:
				edge = x[0]
			default:
				edge = x[n-1]
			}
		}
		for i := range out {
			out[i] = edge
		}

	case Periodic:
		for i := range out {
			out[i] = x[(i)%n]
		}

	case SymmetricKind:
		for i := range out {
			out[i] = x[reflectIndexWhole(n+i, n, s.PointMode)]
		}

	case Reflect:
		for i := range out {
			out[i] = x[reflectIndexExcludingBoundary(n+i, n)]
		}

	case Antisymmetric:
		edge := 0.0
		if n > 0 {
			edge = x[n-1]
		}
		for i := range out {
			mirrored := x[reflectIndexWhole(n+i, n, s.PointMode)]
			out[i] = 2*edge - mirrored
		}

	case Linear:
		slope, intercept := linearFit(x, s.FitPoints)
		for i := range out {
			t := float64(n + i)
			out[i] = slope*t + intercept
		}

	case Polynomial:
		coeffs := polyFit(x, s.FitPoints, s.Degree)
		for i := range out {
			t := float64(n + i)
			out[i] = evalPoly(coeffs, t)
		}

	case Statistical:
		return extendStatistical(x, count, s)

	default:
		return nil, errs.New(errs.InvalidArgument, "padding.Pad", fmt.Sprintf("unknown strategy kind %d", s.Kind))
	}
	return out, nil
}

func reflectIndexWhole(i, n int, mode PointMode) int {
	if n <= 1 {
		return 0
	}
	if mode == WholePoint {
		period := 2 * (n - 1)
		i = ((i % period) + period) % period
		if i >= n {
			i = period - i
		}
		return i
	}
	period := 2 * n
	i = ((i % period) + period) % period
	if i >= n {
		i = period - 1 - i
	}
	return i
}

func reflectIndexExcludingBoundary(i, n int) int {
	if n <= 1 {
		return 0
	}
	period := 2 * (n - 1)
	i = ((i % period) + period) % period
	if i >= n {
		i = period - i
	}
	if i == 0 {
		i = 1 % n
	}
	return i
}

func reverseCopy(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[len(x)-1-i] = v
	}
	return out
}
