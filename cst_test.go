package cst

import (
	"math"
	"testing"
)

func TestClass(t *testing.T) {
	tests := []struct {
		psi, n1, n2 float64
		want        float64
	}{
		{0.3, 0, 0, 1},
		{0, 0, 0, 1},
		{1, 0, 0, 1},
		{0.25, 1, 1, 0.1875},
		{0.25, 0.5, 1, 0.375},
		{0, 0.5, 1, 0},
		{1, 0.5, 1, 0},
	}
	for _, tt := range tests {
		if got := Class(tt.psi, tt.n1, tt.n2); math.Abs(got-tt.want) > 1e-15 {
			t.Errorf("Class(%v, %v, %v) = %v, want %v", tt.psi, tt.n1, tt.n2, got, tt.want)
		}
	}
}

func TestClassOutsideDomain(t *testing.T) {
	// Negative ψ with a non-integer exponent propagates NaN; it is the
	// caller's contract to keep ψ inside [0, 1].
	if got := Class(-0.1, 0.5, 1); !math.IsNaN(got) {
		t.Errorf("Class(-0.1, 0.5, 1) = %v, want NaN", got)
	}
	// Integer exponents remain well defined outside the domain.
	if got := Class(-1, 0, 0); got != 1 {
		t.Errorf("Class(-1, 0, 0) = %v, want 1", got)
	}
}

func TestBernsteinPartitionOfUnity(t *testing.T) {
	for _, n := range []int{1, 2, 5, 11} {
		for _, psi := range []float64{0, 0.1, 0.5, 0.9, 1} {
			var sum float64
			for i := 0; i <= n; i++ {
				sum += Bernstein(n, i, psi)
			}
			if math.Abs(sum-1) > 1e-12 {
				t.Errorf("Σ Bernstein(%d, i, %v) = %v, want 1", n, psi, sum)
			}
		}
	}
}

func TestBernsteinEndpoints(t *testing.T) {
	const n = 4
	for i := 0; i <= n; i++ {
		want0, want1 := 0.0, 0.0
		if i == 0 {
			want0 = 1
		}
		if i == n {
			want1 = 1
		}
		if got := Bernstein(n, i, 0); got != want0 {
			t.Errorf("Bernstein(%d, %d, 0) = %v, want %v", n, i, got, want0)
		}
		if got := Bernstein(n, i, 1); got != want1 {
			t.Errorf("Bernstein(%d, %d, 1) = %v, want %v", n, i, got, want1)
		}
	}
}

func TestEvalAnalytical(t *testing.T) {
	// (2ψ−1)² with ψ = (x+1)/2 is x², so this curve must reproduce the
	// parabola to machine precision.
	x, y := parabola(50)
	c := Curve{
		A:     []float64{0, -2, 0},
		Delta: [2]float64{1, 1},
		X0:    -1,
		DX:    2,
	}
	if e := rms(c.EvalAll(x), y); e > 1e-14 {
		t.Errorf("rms error %v, want ≈ 0", e)
	}
}

func TestEvalZeroDomain(t *testing.T) {
	// A zero DX evaluates on the unit interval, like NewCurve.
	zero := Curve{A: []float64{1, 0.5, 0.25}}
	unit := NewCurve(1, 0.5, 0.25)
	for _, x := range []float64{0, 0.3, 0.75, 1} {
		if got, want := zero.Eval(x), unit.Eval(x); got != want {
			t.Errorf("Eval(%v) = %v with zero domain, %v with unit domain", x, got, want)
		}
	}
}

func TestEvalAllReusesBuffer(t *testing.T) {
	c := NewCurve(0.5, 1)
	xs := linspace(0, 1, 8)
	buf := make([]float64, len(xs))
	if got := c.EvalAll(xs, buf); &got[0] != &buf[0] {
		t.Error("EvalAll did not write into the provided buffer")
	}
	diff(t, c.EvalAll(xs), buf)
}

func TestEvalDoesNotMutateInput(t *testing.T) {
	c := Curve{A: []float64{1, 2}, X0: 3, DX: 2}
	xs := []float64{3, 4, 5}
	c.EvalAll(xs)
	diff(t, []float64{3, 4, 5}, xs)
}
