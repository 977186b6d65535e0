// Package mpoly implements sparse multivariate polynomials with double
// precision coefficients over a recursive coefficient tree, supporting exact
// coefficient access, Horner-rule evaluation with extended precision
// accumulation, calculus and polynomial algebra.
package mpoly

import (
	"fmt"
	"strings"

	"github.com/tuneinsight/polykit/utils"
)

// Polynomial is a sparse polynomial in one or more variables. Its zero value
// is not usable; polynomials are created with NewPolynomial.
//
// A nil coefficient tree represents the identically zero polynomial: reading
// any coefficient of it returns 0 and its degree is 0. This is a meaningful
// state, not an error.
type Polynomial struct {
	dim    int
	degree int
	root   *node
}

// NewPolynomial creates a new zero polynomial in dim variables.
func NewPolynomial(dim int) (*Polynomial, error) {
	if dim < 1 {
		return nil, fmt.Errorf("cannot NewPolynomial: %w: dimension must be positive but is %d", ErrInvalidArgument, dim)
	}
	return &Polynomial{dim: dim}, nil
}

// Dimension returns the number of variables of the polynomial.
func (p *Polynomial) Dimension() int {
	return p.dim
}

// Degree returns the maximum total power over the non-zero coefficients of
// the polynomial. The degree of the zero polynomial is 0.
func (p *Polynomial) Degree() int {
	return p.degree
}

// IsZero returns true if the polynomial is identically zero.
func (p *Polynomial) IsZero() bool {
	return p.root == nil
}

// validatePowers checks a power vector against the polynomial's dimension.
func (p *Polynomial) validatePowers(powers []int) error {
	if len(powers) != p.dim {
		return fmt.Errorf("%w: len(powers)=%d but dimension is %d", ErrIncompatibleDimensions, len(powers), p.dim)
	}
	for i, pw := range powers {
		if pw < 0 {
			return fmt.Errorf("%w: powers[%d]=%d is negative", ErrInvalidArgument, i, pw)
		}
	}
	return nil
}

// Coefficient returns the coefficient of the monomial with the given power
// vector, powers[0] being the power of the first variable. Reading an unset
// coefficient is not an error and returns 0.
func (p *Polynomial) Coefficient(powers []int) (float64, error) {

	if err := p.validatePowers(powers); err != nil {
		return 0, fmt.Errorf("cannot Coefficient: %w", err)
	}

	cur := p.root
	for d := p.dim - 1; d > 0; d-- {
		if cur == nil {
			return 0, nil
		}
		i := powers[d]
		if i >= len(cur.children) {
			return 0, nil
		}
		cur = cur.children[i]
	}

	if cur == nil || powers[0] >= len(cur.coeffs) {
		return 0, nil
	}

	return cur.coeffs[powers[0]], nil
}

// SetCoefficient sets the coefficient of the monomial with the given power
// vector. Setting a coefficient to 0 deletes it and is indistinguishable
// from never having set it.
func (p *Polynomial) SetCoefficient(powers []int, value float64) error {

	if err := p.validatePowers(powers); err != nil {
		return fmt.Errorf("cannot SetCoefficient: %w", err)
	}

	if value == 0 {
		p.deleteCoefficient(powers)
		return nil
	}

	if p.root == nil {
		p.root = newNode(p.dim-1, powers[p.dim-1]+1)
	}

	cur := p.root
	for d := p.dim - 1; d > 0; d-- {
		i := powers[d]
		cur.growChildren(i + 1)
		if cur.children[i] == nil {
			cur.children[i] = newNode(d-1, 0)
		}
		cur = cur.children[i]
	}

	cur.growCoeffs(powers[0] + 1)
	cur.coeffs[powers[0]] = value

	p.degree = utils.Max(p.degree, powerSum(powers))

	return nil
}

// deleteCoefficient zeroes the targeted coefficient, prunes any branch that
// collapsed and recomputes the cached degree if the delete could have
// lowered it.
func (p *Polynomial) deleteCoefficient(powers []int) {

	if p.root == nil {
		return
	}

	cur := p.root
	for d := p.dim - 1; d > 0; d-- {
		i := powers[d]
		if i >= len(cur.children) || cur.children[i] == nil {
			return
		}
		cur = cur.children[i]
	}

	if powers[0] >= len(cur.coeffs) || cur.coeffs[powers[0]] == 0 {
		return
	}

	cur.coeffs[powers[0]] = 0

	if p.root.prune(p.dim - 1) {
		p.root = nil
	}

	if powerSum(powers) >= p.degree {
		p.degree = p.maxPowerSum()
	}
}

func (p *Polynomial) maxPowerSum() int {
	if p.root == nil {
		return 0
	}
	return p.root.maxPowerSum(p.dim - 1)
}

func powerSum(powers []int) (sum int) {
	for _, pw := range powers {
		sum += pw
	}
	return
}

// CopyNew returns a deep copy of the polynomial.
func (p *Polynomial) CopyNew() *Polynomial {
	cpy := &Polynomial{dim: p.dim, degree: p.degree}
	if p.root != nil {
		cpy.root = p.root.copyNode(p.dim - 1)
	}
	return cpy
}

// Copy overwrites the receiver with a deep copy of src. The receiver's
// dimension is reassigned to the one of src.
func (p *Polynomial) Copy(src *Polynomial) error {
	if src == nil {
		return fmt.Errorf("cannot Copy: %w: src is nil", ErrInvalidArgument)
	}
	if p == src {
		return nil
	}
	p.dim = src.dim
	p.degree = src.degree
	if src.root != nil {
		p.root = src.root.copyNode(src.dim - 1)
	} else {
		p.root = nil
	}
	return nil
}

// accumulate adds delta to the coefficient at the given (validated) power
// vector, deleting it if the sum cancels to zero.
func (p *Polynomial) accumulate(powers []int, delta float64) {
	c, _ := p.Coefficient(powers)
	_ = p.SetCoefficient(powers, c+delta)
}

// String returns a human readable dump of the non-zero terms, ordered by
// power vector.
func (p *Polynomial) String() string {

	if p.root == nil {
		return "0"
	}

	terms := map[string]float64{}
	powers := make([]int, p.dim)
	p.root.forEachTerm(p.dim-1, powers, func(pw []int, c float64) {
		terms[powerKey(pw)] = c
	})

	var sb strings.Builder
	for i, key := range utils.GetSortedKeys(terms) {
		if i > 0 {
			sb.WriteString(" + ")
		}
		fmt.Fprintf(&sb, "%g*x^(%s)", terms[key], key)
	}

	return sb.String()
}

// powerKey encodes a power vector as a sortable string key.
func powerKey(powers []int) string {
	parts := make([]string, len(powers))
	for i, pw := range powers {
		parts[i] = fmt.Sprintf("%06d", pw)
	}
	return strings.Join(parts, ",")
}

// terms returns the non-zero terms of p as a map from encoded power vector
// to coefficient, with the decoded power vectors alongside.
func (p *Polynomial) terms() (map[string]float64, map[string][]int) {
	coeffs := map[string]float64{}
	vectors := map[string][]int{}
	if p.root == nil {
		return coeffs, vectors
	}
	powers := make([]int, p.dim)
	p.root.forEachTerm(p.dim-1, powers, func(pw []int, c float64) {
		key := powerKey(pw)
		coeffs[key] = c
		vectors[key] = append([]int(nil), pw...)
	})
	return coeffs, vectors
}
