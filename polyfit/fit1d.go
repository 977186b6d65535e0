package polyfit

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/mat"

	"github.com/tuneinsight/polykit/mpoly"
	"github.com/tuneinsight/polykit/utils"
)

// Fit1D computes the least-squares univariate polynomial fit of the sample
// values y at positions x, over the monomials of power minDegree to
// maxDegree. The normal equations form a Hankel matrix built from power
// sums of the positions.
//
// When the fit starts from power zero the positions are first centered
// about their mean to reduce the conditioning of the system, and the fitted
// polynomial is shifted back afterwards. The symmetric hint declares the
// positions symmetric about the origin the monomials are built on: their
// mean when the fit is centered, zero otherwise. The odd skew-diagonals of
// the Hankel matrix are then exact zeros that are skipped rather than
// accumulated.
func Fit1D(x, y []float64, minDegree, maxDegree int, symmetric bool) (*mpoly.Polynomial, error) {

	if len(x) != len(y) {
		return nil, fmt.Errorf("cannot Fit1D: %w: %d positions but %d values", mpoly.ErrIncompatibleDimensions, len(x), len(y))
	}

	if minDegree < 0 || maxDegree < minDegree {
		return nil, fmt.Errorf("cannot Fit1D: %w: degree bounds [%d, %d]", mpoly.ErrInvalidArgument, minDegree, maxDegree)
	}

	nc := maxDegree - minDegree + 1
	n := len(x)

	if n < nc {
		return nil, fmt.Errorf("cannot Fit1D: %w: %d samples for %d coefficients", mpoly.ErrInvalidArgument, n, nc)
	}

	// diagnose insufficient sample diversity before the solver does
	if distinct := len(utils.GetDistincts(x)); distinct < nc {
		return nil, fmt.Errorf("cannot Fit1D: %w: %d distinct sample positions for %d coefficients", ErrSingularMatrix, distinct, nc)
	}

	pol, err := mpoly.NewPolynomial(1)
	if err != nil {
		return nil, fmt.Errorf("cannot Fit1D: %w", err)
	}

	// centering changes which monomials are fit, so it only applies when
	// every power from zero is fitted
	var mean float64
	centered := minDegree == 0 && maxDegree > 0
	u := x
	if centered {
		if mean, err = stats.Mean(x); err != nil {
			return nil, fmt.Errorf("cannot Fit1D: %w", err)
		}
		u = make([]float64, n)
		for i := range x {
			u[i] = x[i] - mean
		}
	}

	if nc == 1 {
		// single fitted coefficient: closed form, no linear solve
		var num, den float64
		for i := range u {
			xp := intPow(u[i], minDegree)
			num += y[i] * xp
			den += xp * xp
		}
		if den == 0 {
			return nil, fmt.Errorf("cannot Fit1D: %w: zero accumulated weight for power %d", mpoly.ErrDivisionByZero, minDegree)
		}
		if err := pol.SetCoefficient([]int{minDegree}, num/den); err != nil {
			return nil, fmt.Errorf("cannot Fit1D: %w", err)
		}
		return pol, nil
	}

	// power sums S_m = sum_k u_k^m; the Hankel matrix entry (i, j) is
	// S_{2*minDegree+i+j} and the right-hand side entry i is
	// sum_k y_k * u_k^{minDegree+i}
	sums := make([]float64, 2*maxDegree+1)
	rhs := make([]float64, nc)

	for k := range u {
		p := 1.0
		for m := 0; m <= 2*maxDegree; m++ {
			if m >= 2*minDegree && (!symmetric || m%2 == 0) {
				sums[m] += p
			}
			if m >= minDegree && m <= maxDegree {
				rhs[m-minDegree] += y[k] * p
			}
			p *= u[k]
		}
	}

	h := mat.NewSymDense(nc, nil)
	for i := 0; i < nc; i++ {
		for j := i; j < nc; j++ {
			h.SetSym(i, j, sums[2*minDegree+i+j])
		}
	}

	c, err := solveSPD(h, mat.NewVecDense(nc, rhs))
	if err != nil {
		return nil, fmt.Errorf("cannot Fit1D: %w", err)
	}

	for i := 0; i < nc; i++ {
		if err := pol.SetCoefficient([]int{minDegree + i}, c.AtVec(i)); err != nil {
			return nil, fmt.Errorf("cannot Fit1D: %w", err)
		}
	}

	if centered {
		if err := pol.Shift1D(0, -mean); err != nil {
			return nil, fmt.Errorf("cannot Fit1D: %w", err)
		}
	}

	return pol, nil
}

// intPow returns x^m for a small non-negative integer power.
func intPow(x float64, m int) (p float64) {
	p = 1
	for i := 0; i < m; i++ {
		p *= x
	}
	return
}
