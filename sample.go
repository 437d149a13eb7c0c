package cst

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// CosineSpacing returns n abscissae on [0, 1] following the distribution
//
//	ψ = (1 − cos(π t)) / 2,  t uniform on [0, 1]
//
// which clusters samples toward both endpoints. This is the customary
// spacing for resampling airfoil surfaces, where curvature concentrates
// at the leading edge.
func CosineSpacing(n int) []float64 {
	t := floats.Span(make([]float64, n), 0, 1)
	for i, v := range t {
		t[i] = (1 - math.Cos(math.Pi*v)) / 2
	}
	return t
}

// Interp linearly interpolates the sample points (xp[i], fp[i]) at each
// abscissa in xs. xp must be sorted in ascending order; abscissae outside
// xp's range are clamped to the first or last ordinate. Interp panics if
// xp and fp differ in length or are empty.
func Interp(xs, xp, fp []float64) []float64 {
	if len(xp) != len(fp) {
		panic("cst: xp and fp must have the same length")
	}
	if len(xp) == 0 {
		panic("cst: Interp needs at least one sample point")
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		switch j := sort.SearchFloat64s(xp, x); {
		case j == 0:
			out[i] = fp[0]
		case j == len(xp):
			out[i] = fp[len(fp)-1]
		default:
			t := (x - xp[j-1]) / (xp[j] - xp[j-1])
			out[i] = fp[j-1] + t*(fp[j]-fp[j-1])
		}
	}
	return out
}
