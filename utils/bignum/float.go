// Package bignum provides arbitrary precision arithmetic helpers and the
// extended precision Horner kernels used by the polynomial evaluators.
package bignum

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// NewFloat creates a new big.Float element with "prec" bits of precision.
// Valid types for x are: int, int64, uint, uint64, float64, *big.Int or *big.Float.
func NewFloat(x interface{}, prec uint) (y *big.Float) {

	y = new(big.Float)
	y.SetPrec(prec)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case float64:
		y.SetFloat64(x)
	case *big.Int:
		y.SetInt(x)
	case *big.Float:
		y.Set(x)
	default:
		panic(fmt.Errorf("invalid x.(type): valid types are int, int64, uint, uint64, float64, *big.Int or *big.Float but is %T", x))
	}

	return
}

// Log returns ln(x).
func Log(x *big.Float) (ln *big.Float) {
	return bigfloat.Log(x)
}

// Exp returns exp(x).
func Exp(x *big.Float) (exp *big.Float) {
	return bigfloat.Exp(x)
}

// Pow returns x^y.
func Pow(x, y *big.Float) (pow *big.Float) {
	return bigfloat.Pow(x, y)
}

// Sign returns the sign of x as a *big.Float in {-1, 0, 1}.
func Sign(x *big.Float) (y *big.Float) {
	return NewFloat(float64(x.Cmp(NewFloat(0.0, x.Prec()))), x.Prec())
}
