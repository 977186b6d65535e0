package mpoly

import (
	"fmt"
	"math"
)

// maxIterationsPerCoefficient bounds the Newton-Raphson iteration budget as
// a multiple of the number of coefficient slots of the polynomial.
const maxIterationsPerCoefficient = 100

// epsilon is the double precision machine epsilon, 2^-52.
const epsilon = 0x1p-52

// Solve1D computes a root of a univariate polynomial with the accelerated
// Newton-Raphson iteration x -= multiplicity * p(x)/p'(x), starting from the
// first guess x0. The multiplicity is the assumed multiplicity of the root;
// pass 1 for a simple root.
//
// The root of the identically zero polynomial is defined as exactly 0,
// regardless of x0. A non-zero constant has no root and reports
// ErrDivisionByZero. When the iteration budget is exhausted the last
// abscissa reached is returned together with ErrNonConvergence.
func (p *Polynomial) Solve1D(x0 float64, multiplicity int) (float64, error) {
	return p.solve1D(x0, multiplicity, false)
}

// solve1D is the internal solver. With requirePositiveDerivative set the
// iteration is restricted to a branch with positive derivative and stops
// with an error as soon as the constraint is violated, which is used when
// searching a known-monotonic branch.
func (p *Polynomial) solve1D(x0 float64, multiplicity int, requirePositiveDerivative bool) (float64, error) {

	if p.dim != 1 {
		return 0, fmt.Errorf("cannot Solve1D: %w: dimension is %d", ErrIncompatibleDimensions, p.dim)
	}

	if multiplicity < 1 {
		return 0, fmt.Errorf("cannot Solve1D: %w: multiplicity %d", ErrInvalidArgument, multiplicity)
	}

	if p.root == nil {
		return 0, nil
	}

	if len(p.root.coeffs) == 1 {
		return x0, fmt.Errorf("cannot Solve1D: %w: a non-zero constant has no root", ErrDivisionByZero)
	}

	var (
		x            = x0
		rprev, dprev float64
		budget       = maxIterationsPerCoefficient * len(p.root.coeffs)
	)

	for i := 0; i < budget; i++ {

		r, d, err := p.Eval1DDeriv(x)
		if err != nil {
			return x, fmt.Errorf("cannot Solve1D: %w", err)
		}

		if requirePositiveDerivative && d <= 0 {
			return x, fmt.Errorf("cannot Solve1D: %w: derivative %g is not positive at x=%g", ErrInvalidArgument, d, x)
		}

		if r == 0 {
			return x, nil
		}

		if d == 0 {
			return x, fmt.Errorf("cannot Solve1D: %w: derivative vanished at x=%g with residual %g", ErrDivisionByZero, x, r)
		}

		// The correction stopped improving when the residual-derivative
		// ratio is no longer shrinking.
		if i > 0 && math.Abs(r*dprev) >= math.Abs(rprev*d) {
			return p.checkResidual(x, r, d)
		}

		xnew := x - float64(multiplicity)*r/d

		if math.Abs(xnew-x) <= math.Abs(x)*epsilon {
			return p.checkResidual(xnew, r, d)
		}

		rprev, dprev = r, d
		x = xnew
	}

	return x, fmt.Errorf("cannot Solve1D: %w after %d iterations", ErrNonConvergence, budget)
}

// checkResidual guards against a spurious convergence at a multiple root
// where rounding leaves a residual larger than the derivative: the residual
// is compared against the largest coefficient magnitude times the machine
// epsilon.
func (p *Polynomial) checkResidual(x, r, d float64) (float64, error) {

	var maxc float64
	for _, c := range p.root.coeffs {
		maxc = math.Max(maxc, math.Abs(c))
	}

	if math.Abs(r) > maxc*epsilon && math.Abs(r) > math.Abs(d) {
		return x, fmt.Errorf("cannot Solve1D: %w: residual %g at x=%g", ErrNonConvergence, r, x)
	}

	return x, nil
}
