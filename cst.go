package cst

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// Class evaluates the class function
//
//	C(ψ) = ψ^n1 (1−ψ)^n2
//
// which forms the envelope of a CST curve. The exponents select the
// behavior at the endpoints: a zero exponent leaves the endpoint free, a
// positive one pins the curve to zero there.
//
// For ψ outside [0, 1] with non-integer exponents the result is NaN, per
// the usual power-function semantics. This is not treated as an error;
// callers are responsible for choosing a domain mapping that keeps ψ
// inside the unit interval.
func Class(psi, n1, n2 float64) float64 {
	return math.Pow(psi, n1) * math.Pow(1-psi, n2)
}

// Bernstein evaluates the i-th Bernstein basis polynomial of degree n,
//
//	B(i, n, ψ) = C(n,i) ψ^i (1−ψ)^(n−i)
//
// for i in [0, n]. Bernstein panics if i is outside that range.
func Bernstein(n, i int, psi float64) float64 {
	return float64(combin.Binomial(n, i)) *
		math.Pow(psi, float64(i)) * math.Pow(1-psi, float64(n-i))
}

// Shape evaluates the shape function
//
//	S(ψ) = Σ aᵢ B(i, n, ψ)
//
// the Bernstein polynomial of degree n = len(a)−1 with coefficients a.
// The fitter builds its design matrix from the same basis evaluations, so
// evaluating a fitted curve on noiseless CST data is exact.
func Shape(a []float64, psi float64) float64 {
	n := len(a) - 1
	var s float64
	for i, ai := range a {
		s += ai * Bernstein(n, i, psi)
	}
	return s
}

// Curve is a curve in Class-Shape-Transformation form,
//
//	y(x) = C(ψ) S(ψ) + (1−ψ) Δ₀ + ψ Δ₁,  ψ = (x − X0) / DX
//
// A Curve is an immutable value; evaluating it has no side effects.
type Curve struct {
	// A holds the Bernstein coefficients of the shape function. The
	// shape polynomial has degree len(A)−1.
	A []float64
	// N1 and N2 are the class function exponents.
	N1, N2 float64
	// Delta holds the boundary offsets, blended linearly across the
	// domain: Delta[0] applies at ψ = 0 and Delta[1] at ψ = 1.
	Delta [2]float64
	// X0 and DX map an abscissa x to the normalized parameter
	// ψ = (x − X0) / DX. A DX of zero is treated as 1, so a zero
	// domain evaluates on the unit interval.
	X0, DX float64
}

// NewCurve returns a curve with the given shape coefficients on the unit
// domain, with no class shaping and zero boundary offsets.
func NewCurve(a ...float64) Curve {
	return Curve{A: a, DX: 1}
}

func (c Curve) psi(x float64) float64 {
	dx := c.DX
	if dx == 0 {
		dx = 1
	}
	return (x - c.X0) / dx
}

// Eval evaluates the curve at x.
func (c Curve) Eval(x float64) float64 {
	psi := c.psi(x)
	return Class(psi, c.N1, c.N2)*Shape(c.A, psi) +
		(1-psi)*c.Delta[0] + psi*c.Delta[1]
}

// EvalAll evaluates the curve at every abscissa in xs. If out is given,
// the ordinates are written into out[0], which is also returned;
// otherwise a new slice is allocated. xs is not modified.
func (c Curve) EvalAll(xs []float64, out ...[]float64) []float64 {
	var ys []float64
	if len(out) == 0 {
		ys = make([]float64, len(xs))
	} else {
		ys = out[0]
	}
	for i, x := range xs {
		ys[i] = c.Eval(x)
	}
	return ys
}
