// Package wavelet provides the catalog of named filter banks and continuous
// analyzing wavelets used by the MODWT (dsp/modwt) and CWT (dsp/cwt)
// engines.
//
// Wavelets are immutable, process-wide values: Get returns a shared
// reference to a statically registered Wavelet, never a copy, matching the
// data model's "created once on first use" lifecycle.
package wavelet

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/Prophetizo/vectorwave/dsp/errs"
)

// Kind is the wavelet's tagged-union discriminant. Algorithms dispatch on
// Kind rather than on virtual methods, mirroring the source hierarchy's
// sealed {Orthogonal, Biorthogonal, ContinuousAnalytic} variants.
type Kind int

const (
	Orthogonal Kind = iota
	Biorthogonal
	ContinuousAnalytic
)

func (k Kind) String() string {
	switch k {
	case Orthogonal:
		return "Orthogonal"
	case Biorthogonal:
		return "Biorthogonal"
	case ContinuousAnalytic:
		return "ContinuousAnalytic"
	default:
		return "Unknown"
	}
}

// Psi is a (possibly complex-valued) continuous wavelet function sampled at
// t, already scaled to unit energy at scale 1.
type Psi func(t float64) complex128

// Wavelet is an immutable named filter bank or continuous analyzing
// function. Zero value is not meaningful; obtain instances via Get or the
// package-level constructors used by init().
type Wavelet struct {
	Name             string
	Kind             Kind
	VanishingMoments int

	// Discrete filter bank (Orthogonal, Biorthogonal). H1=H0 and G1=G0 for
	// Orthogonal wavelets.
	H0, G0, H1, G1 []float64

	// Continuous analyzing function (ContinuousAnalytic only).
	Psi             Psi
	CenterFrequency float64
	Bandwidth       float64
	// Real reports whether Psi's imaginary part is identically zero
	// (DOG, Shannon), as opposed to genuinely complex-valued (Morlet,
	// Paul). The CWT engine's FFT path requires a real wavelet.
	Real bool
}

// SupportWidth returns the discrete filter length L. Zero for continuous
// wavelets, which have unbounded analytic support.
func (w *Wavelet) SupportWidth() int {
	return len(w.H0)
}

// IsDiscrete reports whether w is a filter-bank wavelet (Orthogonal or
// Biorthogonal), as opposed to a continuous analyzing function.
func (w *Wavelet) IsDiscrete() bool {
	return w.Kind == Orthogonal || w.Kind == Biorthogonal
}

// IsReal reports whether w's wavelet function is real-valued, a
// precondition for the CWT engine's FFT-accelerated path.
func (w *Wavelet) IsReal() bool {
	return w.Real
}

// Discretize samples w's continuous wavelet at scale s over n points
// centered at zero: psi_s[i] = psi(-(i-(n-1)/2)/s) / sqrt(s), matching the CWT
// kernel-sampling convention in the component design. Panics if w is not
// ContinuousAnalytic; callers that only handle discrete wavelets should
// check IsDiscrete first.
func (w *Wavelet) Discretize(scale float64, n int) []complex128 {
	if w.Kind != ContinuousAnalytic {
		panic("wavelet: Discretize called on non-continuous wavelet " + w.Name)
	}
	out := make([]complex128, n)
	half := float64(n-1) / 2
	norm := complex(1/math.Sqrt(scale), 0)
	for i := range out {
		t := (float64(i) - half) / scale
		out[i] = norm * w.Psi(-t)
	}
	return out
}

var (
	registryMu sync.RWMutex
	registry   = map[string]*Wavelet{}
	families   = map[string][]string{} // family name -> registered tags, in registration order
)

func register(w *Wavelet, family string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	key := strings.ToLower(w.Name)
	registry[key] = w
	families[family] = append(families[family], w.Name)
}

// registerAlias makes w additionally reachable under alias (e.g. "mexh" for
// "dog2", "gaus2" for "dog2"), without adding a second family-list entry for
// what is the same underlying Wavelet value.
func registerAlias(w *Wavelet, alias string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[strings.ToLower(alias)] = w
}

// Get looks up a wavelet by its canonical tag, case-insensitively. Returns
// an InvalidArgument error if name is not registered.
func Get(name string) (*Wavelet, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	w, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, errs.New(errs.InvalidArgument, "wavelet.Get", fmt.Sprintf("unknown wavelet %q", name))
	}
	return w, nil
}

// ListByFamily returns the registered wavelet tags grouped by family name
// (e.g. "db", "sym", "coif", "bior", "morl", "paul", "dog", "shan").
func ListByFamily() map[string][]string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make(map[string][]string, len(families))
	for fam, names := range families {
		cp := make([]string, len(names))
		copy(cp, names)
		out[fam] = cp
	}
	return out
}

// qmf derives the high-pass decomposition filter from a low-pass filter via
// the quadrature-mirror relation g[k] = (-1)^k * h[L-1-k].
func qmf(h []float64) []float64 {
	l := len(h)
	g := make([]float64, l)
	for k := range g {
		sign := 1.0
		if k%2 == 1 {
			sign = -1.0
		}
		g[k] = sign * h[l-1-k]
	}
	return g
}

func newOrthogonal(name string, family string, vanishingMoments int, h0 []float64) *Wavelet {
	w := &Wavelet{
		Name:             name,
		Kind:             Orthogonal,
		VanishingMoments: vanishingMoments,
		H0:               h0,
		G0:               qmf(h0),
		Real:             true,
	}
	w.H1 = w.H0
	w.G1 = w.G0
	register(w, family)
	return w
}

// newBiorthogonal registers a biorthogonal pair. h0 and h1 must be the same
// length (zero-padded on the shorter side by the caller so that the dual
// relation sum_k h0[k]*h1[k+2m] = delta(m) can be checked index-aligned).
func newBiorthogonal(name string, decomposeMoments, reconstructMoments int, h0, h1 []float64) *Wavelet {
	w := &Wavelet{
		Name:             name,
		Kind:             Biorthogonal,
		VanishingMoments: decomposeMoments,
		H0:               h0,
		H1:               h1,
		G0:               qmf(h1),
		G1:               qmf(h0),
		Real:             true,
	}
	register(w, "bior")
	_ = reconstructMoments
	return w
}

func newContinuous(name, family string, psi Psi, centerFreq, bandwidth float64, real bool) *Wavelet {
	w := &Wavelet{
		Name:            name,
		Kind:            ContinuousAnalytic,
		Psi:             psi,
		CenterFrequency: centerFreq,
		Bandwidth:       bandwidth,
		Real:            real,
	}
	register(w, family)
	return w
}
