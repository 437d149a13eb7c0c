package cst

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/floats"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// rms returns the root-mean-square difference between two equally long
// slices.
func rms(a, b []float64) float64 {
	return floats.Distance(a, b, 2) / math.Sqrt(float64(len(a)))
}

func linspace(lo, hi float64, n int) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}

// parabola returns the samples the analytical tests are built on:
// y = x² on [−1, 1], which a degree-2 Bernstein polynomial with
// coefficients [0, −2, 0] plus unit boundary offsets represents exactly
// on the domain (x0, dx) = (−1, 2).
func parabola(n int) (x, y []float64) {
	x = linspace(-1, 1, n)
	y = make([]float64, n)
	for i, v := range x {
		y[i] = v * v
	}
	return x, y
}
