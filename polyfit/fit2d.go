package polyfit

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/tuneinsight/polykit/mpoly"
	"github.com/tuneinsight/polykit/utils"
)

// Fit2D computes the least-squares bivariate polynomial fit of the sample
// values y at positions (x1, x2). In total-degree mode the fitted monomials
// x1^i * x2^j are those with MinDegree[0] <= i+j <= MaxDegree[0]; with
// PerDimension set the powers are bounded independently in each variable.
//
// The normal equations are formed from the Vandermonde design matrix over
// the fitted monomial basis and solved as a symmetric positive-definite
// system. The Symmetric hints declare the positions of a dimension
// symmetric about zero, zeroing the Gram entries of monomial pairs with an
// odd combined power in that variable.
func Fit2D(x1, x2, y []float64, p Parameters) (*mpoly.Polynomial, error) {

	if len(x1) != len(y) || len(x2) != len(y) {
		return nil, fmt.Errorf("cannot Fit2D: %w: %d, %d positions but %d values", mpoly.ErrIncompatibleDimensions, len(x1), len(x2), len(y))
	}

	powers, err := basis2D(p)
	if err != nil {
		return nil, fmt.Errorf("cannot Fit2D: %w", err)
	}

	nc := len(powers)
	n := len(y)

	if n < nc {
		return nil, fmt.Errorf("cannot Fit2D: %w: %d samples for %d coefficients", mpoly.ErrInvalidArgument, n, nc)
	}

	pairs := make([][2]float64, n)
	for k := range pairs {
		pairs[k] = [2]float64{x1[k], x2[k]}
	}
	if distinct := len(utils.GetDistincts(pairs)); distinct < nc {
		return nil, fmt.Errorf("cannot Fit2D: %w: %d distinct sample positions for %d coefficients", ErrSingularMatrix, distinct, nc)
	}

	sym1 := len(p.Symmetric) > 0 && p.Symmetric[0]
	sym2 := len(p.Symmetric) > 1 && p.Symmetric[1]

	// Vandermonde design matrix: one row per sample, one column per
	// fitted monomial
	v := mat.NewDense(n, nc, nil)
	for k := 0; k < n; k++ {
		for c, pw := range powers {
			v.Set(k, c, intPow(x1[k], pw[0])*intPow(x2[k], pw[1]))
		}
	}

	h := mat.NewSymDense(nc, nil)
	rhs := mat.NewVecDense(nc, nil)
	yv := mat.NewVecDense(n, y)

	for i := 0; i < nc; i++ {
		for j := i; j < nc; j++ {
			if sym1 && (powers[i][0]+powers[j][0])%2 == 1 {
				continue
			}
			if sym2 && (powers[i][1]+powers[j][1])%2 == 1 {
				continue
			}
			h.SetSym(i, j, mat.Dot(v.ColView(i), v.ColView(j)))
		}
		rhs.SetVec(i, mat.Dot(v.ColView(i), yv))
	}

	c, err := solveSPD(h, rhs)
	if err != nil {
		return nil, fmt.Errorf("cannot Fit2D: %w", err)
	}

	pol, err := mpoly.NewPolynomial(2)
	if err != nil {
		return nil, fmt.Errorf("cannot Fit2D: %w", err)
	}

	for i, pw := range powers {
		if err := pol.SetCoefficient([]int{pw[0], pw[1]}, c.AtVec(i)); err != nil {
			return nil, fmt.Errorf("cannot Fit2D: %w", err)
		}
	}

	return pol, nil
}

// basis2D enumerates the fitted monomial powers (i, j) selected by the
// fit parameters, in lexicographic order.
func basis2D(p Parameters) (powers [][2]int, err error) {

	if len(p.MinDegree) == 0 || len(p.MaxDegree) == 0 {
		return nil, fmt.Errorf("%w: empty degree bounds", mpoly.ErrInvalidArgument)
	}

	if p.PerDimension {
		if len(p.MinDegree) < 2 || len(p.MaxDegree) < 2 {
			return nil, fmt.Errorf("%w: per-dimension fit needs degree bounds for both dimensions", mpoly.ErrInvalidArgument)
		}
		for d := 0; d < 2; d++ {
			if p.MinDegree[d] < 0 || p.MaxDegree[d] < p.MinDegree[d] {
				return nil, fmt.Errorf("%w: degree bounds [%d, %d] for dimension %d", mpoly.ErrInvalidArgument, p.MinDegree[d], p.MaxDegree[d], d)
			}
		}
		for i := p.MinDegree[0]; i <= p.MaxDegree[0]; i++ {
			for j := p.MinDegree[1]; j <= p.MaxDegree[1]; j++ {
				powers = append(powers, [2]int{i, j})
			}
		}
		return powers, nil
	}

	if p.MinDegree[0] < 0 || p.MaxDegree[0] < p.MinDegree[0] {
		return nil, fmt.Errorf("%w: total degree bounds [%d, %d]", mpoly.ErrInvalidArgument, p.MinDegree[0], p.MaxDegree[0])
	}
	for i := 0; i <= p.MaxDegree[0]; i++ {
		for j := 0; i+j <= p.MaxDegree[0]; j++ {
			if i+j >= p.MinDegree[0] {
				powers = append(powers, [2]int{i, j})
			}
		}
	}
	return powers, nil
}
