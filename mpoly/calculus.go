package mpoly

import (
	"fmt"

	"github.com/tuneinsight/polykit/utils"
)

// Derive differentiates the polynomial in place with respect to the variable
// of the given index. The dimension of the polynomial is unchanged even if
// the variable vanishes from the expression; the polynomial itself may
// collapse to zero.
func (p *Polynomial) Derive(dim int) error {

	if dim < 0 || dim >= p.dim {
		return fmt.Errorf("cannot Derive: %w: dimension index %d out of range [0, %d)", ErrInvalidArgument, dim, p.dim)
	}

	if p.root == nil {
		return nil
	}

	if deriveNode(p.root, p.dim-1, dim) {
		p.root = nil
	}

	p.degree = p.maxPowerSum()

	return nil
}

// deriveNode differentiates the subtree with respect to the variable at
// level target: the constant term of that level is dropped and the
// coefficient at power i is scaled by i and shifted down to power i-1.
// Returns true if the subtree collapsed to zero.
func deriveNode(nd *node, depth, target int) bool {

	if depth == target {

		if depth == 0 {
			n := len(nd.coeffs)
			if n <= 1 {
				nd.coeffs = nd.coeffs[:0]
				return true
			}
			for i := 1; i < n; i++ {
				nd.coeffs[i-1] = nd.coeffs[i] * float64(i)
			}
			nd.coeffs = nd.coeffs[:n-1]
			return false
		}

		n := len(nd.children)
		if n <= 1 {
			nd.children = nd.children[:0]
			return true
		}
		for i := 1; i < n; i++ {
			c := nd.children[i]
			if c != nil {
				c.scale(depth-1, float64(i))
			}
			nd.children[i-1] = c
		}
		nd.children = nd.children[:n-1]
		return false
	}

	for i, c := range nd.children {
		if c != nil && deriveNode(c, depth-1, target) {
			nd.children[i] = nil
		}
	}

	i := len(nd.children)
	for i > 0 && nd.children[i-1] == nil {
		i--
	}
	nd.children = nd.children[:i]
	return i == 0
}

// Shift1D transforms the polynomial in place so that the variable of index
// dim is replaced by itself plus u: p(..., x, ...) becomes p(..., x+u, ...).
// The degree is unchanged.
//
// For dim > 0 the coefficient tree is first transposed so that the target
// variable becomes the innermost one, the univariate binomial recurrence is
// applied at every leaf, and the tree is transposed back.
func (p *Polynomial) Shift1D(dim int, u float64) error {

	if dim < 0 || dim >= p.dim {
		return fmt.Errorf("cannot Shift1D: %w: dimension index %d out of range [0, %d)", ErrInvalidArgument, dim, p.dim)
	}

	if p.root == nil || u == 0 {
		return nil
	}

	if dim == 0 {
		shiftNode(p.root, p.dim-1, u)
		return nil
	}

	q := p.transposeNew(0, dim)
	shiftNode(q.root, q.dim-1, u)
	q = q.transposeNew(0, dim)
	p.root = q.root

	return nil
}

// shiftNode applies the binomial-expansion recurrence c[i] += c[i+1]*u at
// every leaf of the subtree, shifting the innermost variable by u.
func shiftNode(nd *node, depth int, u float64) {

	if depth == 0 {
		n := len(nd.coeffs)
		for j := 0; j < n-1; j++ {
			for i := n - 2; i >= j; i-- {
				nd.coeffs[i] += nd.coeffs[i+1] * u
			}
		}
		return
	}

	for _, c := range nd.children {
		if c != nil {
			shiftNode(c, depth-1, u)
		}
	}
}

// transposeNew returns a copy of the polynomial with the variables of index
// i and j exchanged. No coefficient is lost; the cost is one pass over the
// non-zero terms.
func (p *Polynomial) transposeNew(i, j int) *Polynomial {

	q := &Polynomial{dim: p.dim, degree: p.degree}

	if p.root == nil {
		return q
	}

	powers := make([]int, p.dim)
	scratch := make([]int, p.dim)
	p.root.forEachTerm(p.dim-1, powers, func(pw []int, c float64) {
		copy(scratch, pw)
		scratch[i], scratch[j] = scratch[j], scratch[i]
		_ = q.SetCoefficient(scratch, c)
	})

	return q
}

// Extract collapses the variable of index dim by substituting the constant
// value of replacement for it, returning a new polynomial in one dimension
// less. The replacement must have dimension p.Dimension()-1 and degree 0;
// substitution of a non-constant polynomial is not supported.
func (p *Polynomial) Extract(dim int, replacement *Polynomial) (*Polynomial, error) {

	if p.dim < 2 {
		return nil, fmt.Errorf("cannot Extract: %w: dimension is %d", ErrInvalidArgument, p.dim)
	}

	if dim < 0 || dim >= p.dim {
		return nil, fmt.Errorf("cannot Extract: %w: dimension index %d out of range [0, %d)", ErrInvalidArgument, dim, p.dim)
	}

	if replacement == nil {
		return nil, fmt.Errorf("cannot Extract: %w: replacement is nil", ErrInvalidArgument)
	}

	if replacement.dim != p.dim-1 {
		return nil, fmt.Errorf("cannot Extract: %w: replacement dimension is %d but must be %d", ErrIncompatibleDimensions, replacement.dim, p.dim-1)
	}

	if replacement.degree != 0 {
		return nil, fmt.Errorf("cannot Extract: %w: substitution of a non-constant polynomial", ErrNotImplemented)
	}

	value, err := replacement.Coefficient(make([]int, replacement.dim))
	if err != nil {
		return nil, fmt.Errorf("cannot Extract: %w", err)
	}

	result := &Polynomial{dim: p.dim - 1}

	if p.root == nil {
		return result, nil
	}

	// Bucket the terms by power of the collapsed variable, then run Horner's
	// rule at the tree level: the accumulator is scaled by the substitution
	// value and the next lower bucket is added in.
	type term struct {
		powers []int
		c      float64
	}

	buckets := map[int][]term{}
	maxPow := 0

	powers := make([]int, p.dim)
	p.root.forEachTerm(p.dim-1, powers, func(pw []int, c float64) {
		reduced := make([]int, 0, p.dim-1)
		reduced = append(reduced, pw[:dim]...)
		reduced = append(reduced, pw[dim+1:]...)
		buckets[pw[dim]] = append(buckets[pw[dim]], term{powers: reduced, c: c})
		maxPow = utils.Max(maxPow, pw[dim])
	})

	for i := maxPow; i >= 0; i-- {
		if err := result.MulScalar(result, value); err != nil {
			return nil, fmt.Errorf("cannot Extract: %w", err)
		}
		for _, t := range buckets[i] {
			result.accumulate(t.powers, t.c)
		}
	}

	return result, nil
}
