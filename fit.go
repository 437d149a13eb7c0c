package cst

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ShapeMismatchError reports abscissa and ordinate slices of incompatible
// lengths.
type ShapeMismatchError struct {
	XLen, YLen int
}

func (err ShapeMismatchError) Error() string {
	return fmt.Sprintf("cst: %d abscissae but %d ordinates", err.XLen, err.YLen)
}

// UnderdeterminedFitError reports a fit with fewer samples than unknown
// coefficients.
type UnderdeterminedFitError struct {
	Samples, Unknowns int
}

func (err UnderdeterminedFitError) Error() string {
	return fmt.Sprintf("cst: %d samples cannot determine %d coefficients", err.Samples, err.Unknowns)
}

// FitOpts describes options for [Fit]. The zero value fits with no class
// shaping, derives the domain mapping from the extent of the abscissae,
// and derives the boundary offsets from the ordinates at the domain
// endpoints.
type FitOpts struct {
	// N1 and N2 are the class function exponents.
	N1, N2 float64
	// Delta fixes the boundary offsets. If nil, Fit derives them from
	// the ordinates at the extremes of the normalized domain.
	Delta *[2]float64
	// X0 and DX define the domain mapping ψ = (x − X0) / DX. A DX of
	// zero derives the mapping from the extent of the abscissae, so
	// that the samples span the unit interval.
	X0, DX float64
}

func (o FitOpts) WithClass(n1, n2 float64) FitOpts  { o.N1, o.N2 = n1, n2; return o }
func (o FitOpts) WithDomain(x0, dx float64) FitOpts { o.X0, o.DX = x0, dx; return o }

func (o FitOpts) WithDelta(leading, trailing float64) FitOpts {
	o.Delta = &[2]float64{leading, trailing}
	return o
}

// Fit computes the CST curve with n shape coefficients that best
// reproduces the samples (x[i], y[i]) in the least-squares sense. The
// x slice need not be sorted and may contain duplicates.
//
// If opts.Delta is nil, the boundary offsets are taken from the ordinates
// at the lowest and highest normalized abscissae; the samples should
// therefore cover the domain endpoints. Either way the offset blend is
// subtracted from the ordinates and only the shape coefficients are
// solved for, so the returned curve's Delta is exact, not estimated.
//
// The least-squares system is solved by QR factorization. If the design
// matrix is rank-deficient — for instance when the samples contain too
// few distinct abscissae — Fit falls back to the SVD and returns the
// unique minimum-norm solution. Fewer samples than coefficients is
// reported as [UnderdeterminedFitError] instead.
//
// Fit panics if n < 1.
func Fit(x, y []float64, n int, opts FitOpts) (Curve, error) {
	if n < 1 {
		panic("cst: number of shape coefficients must be positive")
	}
	if len(x) != len(y) {
		return Curve{}, ShapeMismatchError{XLen: len(x), YLen: len(y)}
	}
	if len(x) < n {
		return Curve{}, UnderdeterminedFitError{Samples: len(x), Unknowns: n}
	}

	x0, dx := opts.X0, opts.DX
	if dx == 0 {
		x0 = floats.Min(x)
		dx = floats.Max(x) - x0
		if dx == 0 {
			return Curve{}, fmt.Errorf("cst: cannot derive a domain from %d identical abscissae", len(x))
		}
	}
	psi := make([]float64, len(x))
	for i, v := range x {
		psi[i] = (v - x0) / dx
	}

	var delta [2]float64
	if opts.Delta != nil {
		delta = *opts.Delta
	} else {
		delta = [2]float64{y[floats.MinIdx(psi)], y[floats.MaxIdx(psi)]}
	}

	design := mat.NewDense(len(psi), n, nil)
	for i, p := range psi {
		c := Class(p, opts.N1, opts.N2)
		for j := 0; j < n; j++ {
			design.Set(i, j, c*Bernstein(n-1, j, p))
		}
	}
	rhs := make([]float64, len(y))
	for i, v := range y {
		rhs[i] = v - (1-psi[i])*delta[0] - psi[i]*delta[1]
	}

	a, err := lstsq(design, rhs)
	if err != nil {
		return Curve{}, err
	}
	return Curve{A: a, N1: opts.N1, N2: opts.N2, Delta: delta, X0: x0, DX: dx}, nil
}

// lstsq solves the overdetermined least-squares problem min ‖m·a − b‖₂.
// It first attempts a QR solve; if the factorization reports an
// ill-conditioned or singular triangular factor, it falls back to the SVD
// and returns the minimum-norm solution.
func lstsq(m *mat.Dense, b []float64) ([]float64, error) {
	rows, cols := m.Dims()
	bvec := mat.NewVecDense(rows, b)
	sol := mat.NewVecDense(cols, nil)

	qr := new(mat.QR)
	qr.Factorize(m)
	if err := qr.SolveVecTo(sol, false, bvec); err == nil {
		return vecSlice(sol), nil
	}

	var svd mat.SVD
	if !svd.Factorize(m, mat.SVDThin) {
		return nil, fmt.Errorf("cst: SVD of the %d×%d design matrix did not converge", rows, cols)
	}
	values := svd.Values(nil)
	// Rank determination with the conventional tolerance
	// max(rows, cols)·ε·σ₀.
	eps := math.Nextafter(1, 2) - 1
	tol := float64(max(rows, cols)) * eps * values[0]
	rank := 0
	for _, sigma := range values {
		if sigma > tol {
			rank++
		}
	}
	if rank == 0 {
		// Zero design matrix; the minimum-norm solution is zero.
		return make([]float64, cols), nil
	}
	svd.SolveVecTo(sol, bvec, rank)
	return vecSlice(sol), nil
}

func vecSlice(v *mat.VecDense) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out
}
