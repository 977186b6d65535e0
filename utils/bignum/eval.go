package bignum

import (
	"math/big"
)

// MonomialEval evaluates y = sum x^i * poly[i].
// A nil entry in poly is treated as a zero coefficient.
func MonomialEval(x *big.Float, poly []*big.Float) (y *big.Float) {
	n := len(poly)
	y = new(big.Float).SetPrec(x.Prec())
	if n == 0 {
		return
	}
	y.Set(poly[n-1])
	for i := n - 2; i >= 0; i-- {
		y.Mul(y, x)
		if poly[i] != nil {
			y.Add(y, poly[i])
		}
	}
	return
}

// MonomialEvalDeriv evaluates y = sum x^i * poly[i] together with the first
// derivative dy = sum i * x^(i-1) * poly[i] in a single Horner pass, by
// differentiating the Horner recurrence itself.
func MonomialEvalDeriv(x *big.Float, poly []*big.Float) (y, dy *big.Float) {

	n := len(poly)

	y = new(big.Float).SetPrec(x.Prec())
	dy = new(big.Float).SetPrec(x.Prec())

	if n == 0 {
		return
	}

	y.Set(poly[n-1])
	for i := n - 2; i >= 0; i-- {
		dy.Mul(dy, x)
		dy.Add(dy, y)
		y.Mul(y, x)
		if poly[i] != nil {
			y.Add(y, poly[i])
		}
	}

	return
}

// MonomialEvalDiff evaluates diff = p(a) - p(b) through a divided-difference
// Horner recurrence, avoiding the catastrophic cancellation of computing the
// two values separately when a and b are close. The value p(a) is returned
// alongside since the recurrence produces it for free.
func MonomialEvalDiff(a, b *big.Float, poly []*big.Float) (diff, pa *big.Float) {

	n := len(poly)

	diff = new(big.Float).SetPrec(a.Prec())
	pa = new(big.Float).SetPrec(a.Prec())

	if n == 0 {
		return
	}

	if n == 1 {
		if poly[0] != nil {
			pa.Set(poly[0])
		}
		return
	}

	// value accumulates the Horner evaluation of p at a, truncated to the
	// coefficients seen so far; diff accumulates (p(a)-p(b))/(a-b).
	value := new(big.Float).SetPrec(a.Prec()).Set(poly[n-1])
	diff.Set(poly[n-1])

	tmp := new(big.Float).SetPrec(a.Prec())

	for i := n - 2; i > 0; i-- {
		value.Mul(value, a)
		if poly[i] != nil {
			value.Add(value, poly[i])
		}
		diff.Mul(diff, b)
		diff.Add(diff, value)
	}

	pa.Mul(value, a)
	if poly[0] != nil {
		pa.Add(pa, poly[0])
	}

	tmp.Sub(a, b)
	diff.Mul(diff, tmp)

	return
}
