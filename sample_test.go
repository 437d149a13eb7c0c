package cst

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCosineSpacing(t *testing.T) {
	xs := CosineSpacing(21)
	if xs[0] != 0 || xs[len(xs)-1] != 1 {
		t.Errorf("endpoints %v and %v, want 0 and 1", xs[0], xs[len(xs)-1])
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			t.Fatalf("not strictly increasing at index %d: %v, %v", i, xs[i-1], xs[i])
		}
	}
	// Symmetric about the midpoint.
	for i := range xs {
		if got, want := xs[len(xs)-1-i], 1-xs[i]; math.Abs(got-want) > 1e-12 {
			t.Errorf("xs[%d] = %v, want %v", len(xs)-1-i, got, want)
		}
	}
	diff(t, 0.5, xs[10], cmpopts.EquateApprox(0, 1e-15))
}

func TestInterp(t *testing.T) {
	xp := []float64{0, 1, 2, 4}
	fp := []float64{0, 10, 10, 40}
	got := Interp([]float64{-1, 0, 0.5, 1, 1.5, 3, 4, 5}, xp, fp)
	want := []float64{0, 0, 5, 10, 10, 25, 40, 40}
	diff(t, want, got)
}

func TestInterpPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for mismatched lengths")
		}
	}()
	Interp([]float64{0}, []float64{0, 1}, []float64{0})
}
