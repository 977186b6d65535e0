package mpoly

import (
	"fmt"
	"math"

	"github.com/tuneinsight/polykit/utils"
)

// Add sets the receiver to a + b. The receiver may be identical to a and/or
// b; the operands must all share the same dimension.
func (p *Polynomial) Add(a, b *Polynomial) error {
	if err := p.addSub(a, b, false); err != nil {
		return fmt.Errorf("cannot Add: %w", err)
	}
	return nil
}

// Sub sets the receiver to a - b. The receiver may be identical to a and/or
// b; the operands must all share the same dimension.
func (p *Polynomial) Sub(a, b *Polynomial) error {
	if err := p.addSub(a, b, true); err != nil {
		return fmt.Errorf("cannot Sub: %w", err)
	}
	return nil
}

// addSub merges the trees of a and b into a fresh tree which is swapped into
// the receiver at the end, making the operation safe under any aliasing of
// the three operands.
func (p *Polynomial) addSub(a, b *Polynomial, sub bool) error {

	if a == nil || b == nil {
		return fmt.Errorf("%w: operand is nil", ErrInvalidArgument)
	}

	if a.dim != b.dim || a.dim != p.dim {
		return fmt.Errorf("%w: %d, %d and %d", ErrIncompatibleDimensions, p.dim, a.dim, b.dim)
	}

	root := mergeNodes(a.root, b.root, a.dim-1, sub)
	if root != nil && root.prune(a.dim-1) {
		root = nil
	}

	p.root = root
	p.degree = p.maxPowerSum()

	return nil
}

// mergeNodes combines two subtrees index by index: overlapping entries
// combine coefficients or recurse into combining children, non-overlapping
// entries are copied (negated for a subtraction) from whichever operand is
// longer. Either operand may be nil.
func mergeNodes(a, b *node, depth int, sub bool) *node {

	if a == nil && b == nil {
		return nil
	}

	if b == nil {
		return a.copyNode(depth)
	}

	if a == nil {
		cpy := b.copyNode(depth)
		if sub {
			cpy.scale(depth, -1)
		}
		return cpy
	}

	if depth == 0 {
		n := utils.Max(len(a.coeffs), len(b.coeffs))
		out := newNode(0, n)
		out.growCoeffs(n)
		copy(out.coeffs, a.coeffs)
		for i, c := range b.coeffs {
			if sub {
				out.coeffs[i] -= c
			} else {
				out.coeffs[i] += c
			}
		}
		return out
	}

	n := utils.Max(len(a.children), len(b.children))
	out := newNode(depth, n)
	out.growChildren(n)
	for i := 0; i < n; i++ {
		var ca, cb *node
		if i < len(a.children) {
			ca = a.children[i]
		}
		if i < len(b.children) {
			cb = b.children[i]
		}
		out.children[i] = mergeNodes(ca, cb, depth-1, sub)
	}
	return out
}

// Mul sets the receiver to a * b: for every non-zero monomial c*x^k of b,
// a scaled by c and shifted by k in every dimension simultaneously is
// accumulated. The product is computed into a fresh tree and swapped into
// the receiver at the end, making the operation safe under any aliasing.
func (p *Polynomial) Mul(a, b *Polynomial) error {

	if a == nil || b == nil {
		return fmt.Errorf("cannot Mul: %w: operand is nil", ErrInvalidArgument)
	}

	if a.dim != b.dim || a.dim != p.dim {
		return fmt.Errorf("cannot Mul: %w: %d, %d and %d", ErrIncompatibleDimensions, p.dim, a.dim, b.dim)
	}

	tmp := &Polynomial{dim: a.dim}

	if a.root != nil && b.root != nil {

		outer := make([]int, a.dim)
		inner := make([]int, a.dim)
		shifted := make([]int, a.dim)

		b.root.forEachTerm(a.dim-1, outer, func(pb []int, cb float64) {
			a.root.forEachTerm(a.dim-1, inner, func(pa []int, ca float64) {
				for k := range shifted {
					shifted[k] = pa[k] + pb[k]
				}
				tmp.accumulate(shifted, ca*cb)
			})
		})
	}

	p.root = tmp.root
	p.degree = tmp.degree

	return nil
}

// MulScalar sets the receiver to a scaled by s. A zero factor clears the
// receiver to the zero polynomial; when the receiver is identical to a, the
// coefficients are scaled in place without reallocation.
func (p *Polynomial) MulScalar(a *Polynomial, s float64) error {

	if a == nil {
		return fmt.Errorf("cannot MulScalar: %w: operand is nil", ErrInvalidArgument)
	}

	if a.dim != p.dim {
		return fmt.Errorf("cannot MulScalar: %w: %d and %d", ErrIncompatibleDimensions, p.dim, a.dim)
	}

	if s == 0 {
		p.root = nil
		p.degree = 0
		return nil
	}

	if p != a {
		if err := p.Copy(a); err != nil {
			return fmt.Errorf("cannot MulScalar: %w", err)
		}
	}

	if p.root != nil {
		p.root.scale(p.dim-1, s)
	}

	return nil
}

// Compare returns the number of coefficients of a and b that differ by more
// than tol.
func Compare(a, b *Polynomial, tol float64) (int, error) {

	if a == nil || b == nil {
		return 0, fmt.Errorf("cannot Compare: %w: operand is nil", ErrInvalidArgument)
	}

	if tol < 0 {
		return 0, fmt.Errorf("cannot Compare: %w: tolerance %g is negative", ErrInvalidArgument, tol)
	}

	if a.dim != b.dim {
		return 0, fmt.Errorf("cannot Compare: %w: %d and %d", ErrIncompatibleDimensions, a.dim, b.dim)
	}

	var count int

	if a.root != nil {
		powers := make([]int, a.dim)
		a.root.forEachTerm(a.dim-1, powers, func(pw []int, ca float64) {
			cb, _ := b.Coefficient(pw)
			if math.Abs(ca-cb) > tol {
				count++
			}
		})
	}

	if b.root != nil {
		powers := make([]int, b.dim)
		b.root.forEachTerm(b.dim-1, powers, func(pw []int, cb float64) {
			if ca, _ := a.Coefficient(pw); ca == 0 && math.Abs(cb) > tol {
				count++
			}
		})
	}

	return count, nil
}
