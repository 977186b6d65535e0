package mpoly

import (
	"github.com/tuneinsight/polykit/utils"
)

// defaultCapacity is the minimum slot capacity of a freshly allocated node,
// amortizing the common case of setting coefficients incrementally from one
// end.
const defaultCapacity = 5

// node is one level of the coefficient tree. A node at depth 0 stores scalar
// coefficients for the innermost variable; a node at depth d > 0 stores one
// child per power of variable d, a nil child standing for an identically zero
// sub-polynomial. The length of the populated slice is the used count, its
// capacity the allocated one.
//
// Invariant: the trailing entry of a node is structurally non-zero, so the
// total degree can be read from the shape of the tree alone.
type node struct {
	coeffs   []float64
	children []*node
}

// newNode allocates a node for the given depth with capacity for at least
// size entries.
func newNode(depth, size int) *node {
	size = utils.Max(size, defaultCapacity)
	if depth == 0 {
		return &node{coeffs: make([]float64, 0, size)}
	}
	return &node{children: make([]*node, 0, size)}
}

// growCoeffs extends the coefficient slice with zeros so that it holds at
// least n entries.
func (nd *node) growCoeffs(n int) {
	for len(nd.coeffs) < n {
		nd.coeffs = append(nd.coeffs, 0)
	}
}

// growChildren extends the children slice with nil entries so that it holds
// at least n entries.
func (nd *node) growChildren(n int) {
	for len(nd.children) < n {
		nd.children = append(nd.children, nil)
	}
}

// copyNode returns a deep copy of the subtree rooted at nd.
func (nd *node) copyNode(depth int) *node {
	if depth == 0 {
		cpy := newNode(0, len(nd.coeffs))
		cpy.coeffs = append(cpy.coeffs, nd.coeffs...)
		return cpy
	}
	cpy := newNode(depth, len(nd.children))
	for _, c := range nd.children {
		if c != nil {
			cpy.children = append(cpy.children, c.copyNode(depth-1))
		} else {
			cpy.children = append(cpy.children, nil)
		}
	}
	return cpy
}

// prune restores the trailing-non-zero invariant bottom-up: children that
// collapsed to zero are removed, trailing zero entries are dropped. It
// returns true if the node itself became entirely empty, signaling the
// parent to discard it.
func (nd *node) prune(depth int) bool {
	if depth == 0 {
		i := len(nd.coeffs)
		for i > 0 && nd.coeffs[i-1] == 0 {
			i--
		}
		nd.coeffs = nd.coeffs[:i]
		return i == 0
	}

	for i, c := range nd.children {
		if c != nil && c.prune(depth-1) {
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

// maxPowerSum returns the maximum total power over the non-zero coefficients
// of the subtree, or 0 if the subtree holds none.
func (nd *node) maxPowerSum(depth int) (max int) {
	if depth == 0 {
		for i, c := range nd.coeffs {
			if c != 0 {
				max = i
			}
		}
		return
	}
	for i, c := range nd.children {
		if c != nil {
			max = utils.Max(max, i+c.maxPowerSum(depth-1))
		}
	}
	return
}

// scale multiplies every coefficient of the subtree by s.
func (nd *node) scale(depth int, s float64) {
	if depth == 0 {
		for i := range nd.coeffs {
			nd.coeffs[i] *= s
		}
		return
	}
	for _, c := range nd.children {
		if c != nil {
			c.scale(depth-1, s)
		}
	}
}

// forEachTerm calls f once per non-zero coefficient of the subtree, with the
// corresponding power vector. The powers buffer is reused across calls and
// must not be retained by f.
func (nd *node) forEachTerm(depth int, powers []int, f func(powers []int, c float64)) {
	if depth == 0 {
		for i, c := range nd.coeffs {
			if c != 0 {
				powers[0] = i
				f(powers, c)
			}
		}
		return
	}
	for i, c := range nd.children {
		if c != nil {
			powers[depth] = i
			c.forEachTerm(depth-1, powers, f)
		}
	}
}

// termCount returns the number of non-zero coefficients of the subtree.
func (nd *node) termCount(depth int) (count int) {
	if depth == 0 {
		for _, c := range nd.coeffs {
			if c != 0 {
				count++
			}
		}
		return
	}
	for _, c := range nd.children {
		if c != nil {
			count += c.termCount(depth - 1)
		}
	}
	return
}
