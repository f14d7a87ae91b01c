package padding

import (
	"math"
	"testing"
)

func sampleSignal() []float64 {
	return []float64{1, 2, 3, 4, 5, 6, 7, 8}
}

func assertRoundTrip(t *testing.T, x []float64, s *Strategy, targetLength int) []float64 {
	t.Helper()
	padded, err := Pad(x, targetLength, s)
	if err != nil {
		t.Fatalf("Pad: %v", err)
	}
	if len(padded) != targetLength {
		t.Fatalf("Pad returned length %d, want %d", len(padded), targetLength)
	}
	trimmed, err := Trim(padded, len(x), s)
	if err != nil {
		t.Fatalf("Trim: %v", err)
	}
	if len(trimmed) != len(x) {
		t.Fatalf("Trim returned length %d, want %d", len(trimmed), len(x))
	}
	for i := range x {
		if math.Abs(trimmed[i]-x[i]) > 1e-12 {
			t.Errorf("trim(pad(x))[%d] = %v, want %v", i, trimmed[i], x[i])
		}
	}
	return padded
}

func TestRoundTripAllStrategies(t *testing.T) {
	x := sampleSignal()
	strategies := []*Strategy{
		New(Zero),
		New(Constant),
		New(Periodic),
		New(SymmetricKind, WithPointMode(HalfPoint)),
		New(SymmetricKind, WithPointMode(WholePoint)),
		New(Reflect),
		New(Antisymmetric),
		New(Linear, WithFitPoints(4)),
		New(Polynomial, WithDegree(2), WithFitPoints(6)),
		New(Statistical, WithStatMode(Mean)),
		New(Statistical, WithStatMode(Median)),
		New(Statistical, WithStatMode(Trend), WithFitPoints(4)),
	}
	for _, s := range strategies {
		assertRoundTrip(t, x, s, 16)
	}
}

func TestCompositeRoundTrip(t *testing.T) {
	x := sampleSignal()
	s := New(Composite, WithComposite(New(Zero), New(Periodic), 0.5))
	assertRoundTrip(t, x, s, 20)
}

func TestZeroPaddingValues(t *testing.T) {
	x := []float64{1, 2, 3}
	padded, err := Pad(x, 6, New(Zero))
	if err != nil {
		t.Fatalf("Pad: %v", err)
	}
	want := []float64{1, 2, 3, 0, 0, 0}
	for i := range want {
		if padded[i] != want[i] {
			t.Errorf("padded[%d] = %v, want %v", i, padded[i], want[i])
		}
	}
}

func TestPeriodicPaddingValues(t *testing.T) {
	x := []float64{1, 2, 3}
	padded, err := Pad(x, 7, New(Periodic))
	if err != nil {
		t.Fatalf("Pad: %v", err)
	}
	want := []float64{1, 2, 3, 1, 2, 3, 1}
	for i := range want {
		if padded[i] != want[i] {
			t.Errorf("padded[%d] = %v, want %v", i, padded[i], want[i])
		}
	}
}

func TestPadRejectsNegativeTargetLength(t *testing.T) {
	if _, err := Pad([]float64{1, 2}, -1, New(Zero)); err == nil {
		t.Fatal("expected error for negative target length")
	}
}

func TestPadRejectsInvalidSplitRatio(t *testing.T) {
	s := New(Composite, WithComposite(New(Zero), New(Zero), 1.5))
	if _, err := Pad([]float64{1, 2}, 4, s); err == nil {
		t.Fatal("expected error for split ratio out of range")
	}
}

func TestPadRejectsTooFewFitPoints(t *testing.T) {
	s := New(Linear, WithFitPoints(1))
	if _, err := Pad([]float64{1, 2, 3}, 6, s); err == nil {
		t.Fatal("expected error for fit points < 2")
	}
}
