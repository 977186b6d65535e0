package mpoly

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/polykit/utils/bignum"
)

// evalPrec is the bit precision of the internal Horner accumulator. The
// public results are truncated back to double precision.
const evalPrec = uint(128)

// Eval evaluates the polynomial at the point x, x[0] being the value of the
// first variable. The evaluation applies Horner's rule in every dimension,
// accumulating in extended precision.
func (p *Polynomial) Eval(x []float64) (float64, error) {

	if len(x) != p.dim {
		return 0, fmt.Errorf("cannot Eval: %w: len(x)=%d but dimension is %d", ErrIncompatibleDimensions, len(x), p.dim)
	}

	if p.root == nil {
		return 0, nil
	}

	xb := make([]*big.Float, p.dim)
	for i := range x {
		xb[i] = bignum.NewFloat(x[i], evalPrec)
	}

	y, _ := p.root.eval(p.dim-1, xb).Float64()

	return y, nil
}

// eval evaluates the subtree at depth with Horner's rule in the variable of
// that level, treating each child as a polynomial in the remaining
// variables. A nil child contributes 0.
func (nd *node) eval(depth int, x []*big.Float) *big.Float {

	if depth == 0 {
		return bignum.MonomialEval(x[0], nd.bigCoeffs())
	}

	n := len(nd.children)
	y := new(big.Float).SetPrec(evalPrec)
	if n == 0 {
		return y
	}

	if c := nd.children[n-1]; c != nil {
		y.Set(c.eval(depth-1, x))
	}
	for i := n - 2; i >= 0; i-- {
		y.Mul(y, x[depth])
		if c := nd.children[i]; c != nil {
			y.Add(y, c.eval(depth-1, x))
		}
	}

	return y
}

// bigCoeffs converts the leaf coefficients to extended precision, mapping
// zero entries to nil.
func (nd *node) bigCoeffs() []*big.Float {
	poly := make([]*big.Float, len(nd.coeffs))
	for i, c := range nd.coeffs {
		if c != 0 {
			poly[i] = bignum.NewFloat(c, evalPrec)
		}
	}
	return poly
}

// Eval1D evaluates a univariate polynomial at x.
func (p *Polynomial) Eval1D(x float64) (float64, error) {

	if p.dim != 1 {
		return 0, fmt.Errorf("cannot Eval1D: %w: dimension is %d", ErrIncompatibleDimensions, p.dim)
	}

	if p.root == nil {
		return 0, nil
	}

	y, _ := bignum.MonomialEval(bignum.NewFloat(x, evalPrec), p.root.bigCoeffs()).Float64()

	return y, nil
}

// Eval1DDeriv evaluates a univariate polynomial and its first derivative at
// x in a single nested Horner pass.
func (p *Polynomial) Eval1DDeriv(x float64) (y, dy float64, err error) {

	if p.dim != 1 {
		return 0, 0, fmt.Errorf("cannot Eval1DDeriv: %w: dimension is %d", ErrIncompatibleDimensions, p.dim)
	}

	if p.root == nil {
		return 0, 0, nil
	}

	yb, dyb := bignum.MonomialEvalDeriv(bignum.NewFloat(x, evalPrec), p.root.bigCoeffs())

	y, _ = yb.Float64()
	dy, _ = dyb.Float64()

	return y, dy, nil
}

// Eval1DDiff evaluates p(a) - p(b) of a univariate polynomial with a
// cancellation-free divided-difference Horner recurrence, together with
// p(a). It is the residual building block of the Newton-Raphson solver.
func (p *Polynomial) Eval1DDiff(a, b float64) (diff, pa float64, err error) {

	if p.dim != 1 {
		return 0, 0, fmt.Errorf("cannot Eval1DDiff: %w: dimension is %d", ErrIncompatibleDimensions, p.dim)
	}

	if p.root == nil {
		return 0, 0, nil
	}

	diffb, pab := bignum.MonomialEvalDiff(bignum.NewFloat(a, evalPrec), bignum.NewFloat(b, evalPrec), p.root.bigCoeffs())

	diff, _ = diffb.Float64()
	pa, _ = pab.Float64()

	return diff, pa, nil
}
