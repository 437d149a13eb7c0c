// Package cst implements the Class-Shape-Transformation (CST) method for
// representing and fitting smooth geometric profiles — airfoil surfaces,
// propeller blade distribution curves, nozzle contours — with a compact set
// of coefficients.
//
// # The CST representation
//
// A CST curve maps an abscissa x to an ordinate
//
//	y(x) = C(ψ) S(ψ) + (1−ψ) Δ₀ + ψ Δ₁
//
// where ψ = (x − x0) / dx is the abscissa normalized to the unit interval.
// The class function
//
//	C(ψ) = ψ^n1 (1−ψ)^n2
//
// shapes the curve's endpoints; for example n1 = 0.5, n2 = 1 produces the
// round nose and sharp tail of a classical airfoil, while n1 = n2 = 0
// leaves the curve a plain polynomial. The shape function
//
//	S(ψ) = Σ aᵢ B(i, n, ψ)
//
// is a weighted sum of Bernstein basis polynomials and captures the curve's
// detail through its coefficients aᵢ. The boundary offsets Δ₀ and Δ₁ are
// blended linearly across the domain and represent additive corrections at
// the two endpoints, such as a finite trailing-edge thickness.
//
// [Curve] bundles these parameters and evaluates the curve; [Class],
// [Bernstein] and [Shape] expose the underlying basis functions.
//
// # Fitting
//
// Because S is linear in the coefficients, fitting a CST curve to observed
// samples is a linear least-squares problem. [Fit] assembles the design
// matrix from the same basis functions the evaluator uses and solves it by
// orthogonal factorization, so that fitting noiseless CST data reproduces
// it exactly. See [Fit] for how free boundary offsets and rank-deficient
// sample sets are handled.
//
// All operations are pure functions over their arguments: no state is
// retained between calls, and distinct calls may run concurrently.
//
// The method is described in B. M. Kulfan, "Universal Parametric Geometry
// Representation Method", Journal of Aircraft 45(1), 2008.
package cst
