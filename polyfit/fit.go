// Package polyfit implements least-squares fitting of sparse multivariate
// polynomials to sampled data, through the normal equations of a Vandermonde
// design matrix solved as a symmetric positive-definite system.
package polyfit

import (
	"errors"
	"fmt"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/mat"

	"github.com/tuneinsight/polykit/mpoly"
)

// ErrSingularMatrix is returned when the normal equations are singular,
// which diagnoses insufficient distinct sample positions for the requested
// number of coefficients.
var ErrSingularMatrix = errors.New("singular matrix")

// Parameters configures a fit.
//
// In total-degree mode (PerDimension unset) MinDegree and MaxDegree hold a
// single entry bounding the total power of the fitted monomials. With
// PerDimension set they hold one entry per dimension, bounding the power of
// each variable independently.
//
// Symmetric holds optional per-dimension hints that the sample positions
// are symmetric about their mean, allowing entries of the normal equations
// known a priori to be zero to be skipped, both for speed and to avoid
// round-off perturbing an exact zero.
type Parameters struct {
	MinDegree    []int
	MaxDegree    []int
	PerDimension bool
	Symmetric    []bool
}

// Fit computes the least-squares polynomial fit of the sample values at the
// given positions. The positions matrix holds one row per dimension and one
// column per sample. Fitting is implemented for one and two dimensions.
//
// On failure the returned polynomial is nil; no partially fitted result is
// ever produced.
func Fit(positions *mat.Dense, values []float64, p Parameters) (*mpoly.Polynomial, error) {

	if positions == nil {
		return nil, fmt.Errorf("cannot Fit: %w: positions is nil", mpoly.ErrInvalidArgument)
	}

	dim, n := positions.Dims()

	if n != len(values) {
		return nil, fmt.Errorf("cannot Fit: %w: %d sample positions but %d values", mpoly.ErrIncompatibleDimensions, n, len(values))
	}

	if len(p.MinDegree) == 0 || len(p.MaxDegree) == 0 {
		return nil, fmt.Errorf("cannot Fit: %w: empty degree bounds", mpoly.ErrInvalidArgument)
	}

	switch dim {
	case 1:
		symmetric := len(p.Symmetric) > 0 && p.Symmetric[0]
		return Fit1D(mat.Row(nil, 0, positions), values, p.MinDegree[0], p.MaxDegree[0], symmetric)
	case 2:
		return Fit2D(mat.Row(nil, 0, positions), mat.Row(nil, 1, positions), values, p)
	default:
		return nil, fmt.Errorf("cannot Fit: %w: fitting dimension %d > 2", mpoly.ErrNotImplemented, dim)
	}
}

// MeanSquaredError returns the mean of the squared residuals of the fitted
// polynomial against the sample values at the given positions.
func MeanSquaredError(pol *mpoly.Polynomial, positions *mat.Dense, values []float64) (float64, error) {

	if pol == nil || positions == nil {
		return 0, fmt.Errorf("cannot MeanSquaredError: %w: nil argument", mpoly.ErrInvalidArgument)
	}

	dim, n := positions.Dims()

	if dim != pol.Dimension() {
		return 0, fmt.Errorf("cannot MeanSquaredError: %w: positions dimension %d but polynomial dimension %d", mpoly.ErrIncompatibleDimensions, dim, pol.Dimension())
	}

	if n != len(values) {
		return 0, fmt.Errorf("cannot MeanSquaredError: %w: %d sample positions but %d values", mpoly.ErrIncompatibleDimensions, n, len(values))
	}

	if n == 0 {
		return 0, fmt.Errorf("cannot MeanSquaredError: %w: no samples", mpoly.ErrInvalidArgument)
	}

	point := make([]float64, dim)
	squared := make([]float64, n)

	for k := 0; k < n; k++ {
		for d := 0; d < dim; d++ {
			point[d] = positions.At(d, k)
		}
		y, err := pol.Eval(point)
		if err != nil {
			return 0, fmt.Errorf("cannot MeanSquaredError: %w", err)
		}
		r := values[k] - y
		squared[k] = r * r
	}

	mse, err := stats.Mean(squared)
	if err != nil {
		return 0, fmt.Errorf("cannot MeanSquaredError: %w", err)
	}

	return mse, nil
}

// solveSPD solves the symmetric positive-definite system h*c = rhs with a
// Cholesky factorization, diagnosing singularity instead of returning
// garbage coefficients.
func solveSPD(h *mat.SymDense, rhs *mat.VecDense) (*mat.VecDense, error) {

	var chol mat.Cholesky
	if ok := chol.Factorize(h); !ok {
		return nil, ErrSingularMatrix
	}

	n, _ := h.Dims()
	c := mat.NewVecDense(n, nil)
	if err := chol.SolveVecTo(c, rhs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularMatrix, err)
	}

	return c, nil
}
