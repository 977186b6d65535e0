package mpoly

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/polykit/utils/bignum"
)

func TestEval(t *testing.T) {

	t.Run("HornerMatchesMonomialSum", func(t *testing.T) {

		cs := []float64{3, -2, 0, 0.5, -1, 4}
		p := newTestPoly1D(t, cs...)

		for _, x := range []float64{0, 1, -1, 0.125, -42.5, 1e6, -1e6} {

			var want float64
			for i := len(cs) - 1; i >= 0; i-- {
				want = want*x + cs[i]
			}

			y, err := p.Eval1D(x)
			require.NoError(t, err)
			require.InEpsilon(t, want+1, y+1, 1e-14) // offset avoids zero reference

			y, err = p.Eval([]float64{x})
			require.NoError(t, err)
			require.InEpsilon(t, want+1, y+1, 1e-14)
		}
	})

	t.Run("ExtendedPrecisionReference", func(t *testing.T) {

		cs := []float64{3, -2, 0, 0.5, -1, 4}
		p := newTestPoly1D(t, cs...)

		// monomial sum accumulated at 128 bits, powers through bignum.Pow,
		// rounded to float64 once at the end
		for _, x := range []float64{0.125, 0.75, 1.5, 42.5} {

			ref := bignum.NewFloat(0.0, 128)
			xb := bignum.NewFloat(x, 128)
			for i, c := range cs {
				if c == 0 {
					continue
				}
				term := bignum.Pow(xb, bignum.NewFloat(i, 128))
				term.Mul(term, bignum.NewFloat(c, 128))
				ref.Add(ref, term)
			}
			want, _ := ref.Float64()

			y, err := p.Eval1D(x)
			require.NoError(t, err)
			require.InEpsilon(t, want, y, 1e-14)
		}
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		p, err := NewPolynomial(2)
		require.NoError(t, err)
		_, err = p.Eval([]float64{1})
		require.ErrorIs(t, err, ErrIncompatibleDimensions)
		_, err = p.Eval1D(1)
		require.ErrorIs(t, err, ErrIncompatibleDimensions)
	})

	t.Run("Multivariate", func(t *testing.T) {

		// p(x, y, z) = 2 + x*y + 3*x^2*z - y*z^2
		p, err := NewPolynomial(3)
		require.NoError(t, err)
		require.NoError(t, p.SetCoefficient([]int{0, 0, 0}, 2))
		require.NoError(t, p.SetCoefficient([]int{1, 1, 0}, 1))
		require.NoError(t, p.SetCoefficient([]int{2, 0, 1}, 3))
		require.NoError(t, p.SetCoefficient([]int{0, 1, 2}, -1))

		for _, v := range [][3]float64{{0, 0, 0}, {1, 1, 1}, {-1, 2, 0.5}, {10, -3, 7}} {
			x, y, z := v[0], v[1], v[2]
			want := 2 + x*y + 3*x*x*z - y*z*z
			got, err := p.Eval([]float64{x, y, z})
			require.NoError(t, err)
			require.InDelta(t, want, got, math.Abs(want)*1e-14+1e-14)
		}
	})
}

func TestEval1DDeriv(t *testing.T) {

	// p(x) = x^3 - 2x + 1, p'(x) = 3x^2 - 2
	p := newTestPoly1D(t, 1, -2, 0, 1)

	for _, x := range []float64{0, 1, -1, 2.5, -0.75} {
		y, dy, err := p.Eval1DDeriv(x)
		require.NoError(t, err)
		require.InDelta(t, x*x*x-2*x+1, y, 1e-14)
		require.InDelta(t, 3*x*x-2, dy, 1e-14)
	}
}

func TestEval1DDiff(t *testing.T) {

	// p(x) = (x-1)^3
	p := newTestPoly1D(t, -1, 3, -3, 1)

	a, b := 1+1e-8, 1-1e-8

	diff, pa, err := p.Eval1DDiff(a, b)
	require.NoError(t, err)

	// p(a)-p(b) = 2e-24 up to the rounding of a and b
	require.InDelta(t, 2e-24, diff, 1e-30)
	require.InDelta(t, 1e-24, pa, 1e-30)

	// consistent with two separate evaluations at well separated points
	diff, pa, err = p.Eval1DDiff(3, -2)
	require.NoError(t, err)
	require.Equal(t, 8.0-(-27.0), diff)
	require.Equal(t, 8.0, pa)
}

func TestEval2DScenario(t *testing.T) {

	// p(x, y) = x^4 - 1e-5 * x^5 * y = x^4 * (1 - 1e-5*x*y)
	p, err := NewPolynomial(2)
	require.NoError(t, err)
	require.NoError(t, p.SetCoefficient([]int{4, 0}, 1))
	require.NoError(t, p.SetCoefficient([]int{5, 1}, -1e-5))

	for _, v := range [][2]float64{{1000, 100}, {1e5, 1}} {
		x, y := v[0], v[1]

		want := math.Pow(x, 4) - 1e-5*math.Pow(x, 5)*y

		got, err := p.Eval([]float64{x, y})
		require.NoError(t, err)

		// both points lie near algebraic roots of x^4*(1 - 1e-5*x*y); the
		// Horner evaluation must agree with the monomial sum to a few parts
		// in 1e-5 relative to the leading term
		require.InDelta(t, want, got, 1e-5*math.Pow(x, 4))
	}
}
