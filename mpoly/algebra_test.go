package mpoly

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/polykit/utils/sampling"
)

// requireEqualPoly asserts that a and b hold the same terms within tol,
// reporting the differing terms on failure.
func requireEqualPoly(t *testing.T, a, b *Polynomial, tol float64) {
	t.Helper()
	ta, _ := a.terms()
	tb, _ := b.terms()
	if diff := cmp.Diff(ta, tb, cmpopts.EquateApprox(0, tol)); diff != "" {
		t.Fatalf("polynomials differ (-a +b):\n%s", diff)
	}
}

func TestAddSub(t *testing.T) {

	t.Run("Basic", func(t *testing.T) {

		a := newTestPoly1D(t, 1, 2, 3)
		b := newTestPoly1D(t, -1, 0, 4, 5)

		sum, err := NewPolynomial(1)
		require.NoError(t, err)
		require.NoError(t, sum.Add(a, b))

		want := newTestPoly1D(t, 0, 2, 7, 5)
		requireEqualPoly(t, want, sum, 0)
		require.Equal(t, 3, sum.Degree())

		diff, err := NewPolynomial(1)
		require.NoError(t, err)
		require.NoError(t, diff.Sub(a, b))

		want = newTestPoly1D(t, 2, 2, -1, -5)
		requireEqualPoly(t, want, diff, 0)
	})

	t.Run("CancellationPrunes", func(t *testing.T) {

		a := newTestPoly1D(t, 1, 0, 3)
		b := newTestPoly1D(t, 0, 0, 3)

		diff, err := NewPolynomial(1)
		require.NoError(t, err)
		require.NoError(t, diff.Sub(a, b))

		// the leading terms cancel, the degree drops
		require.Equal(t, 0, diff.Degree())
		c, err := diff.Coefficient([]int{0})
		require.NoError(t, err)
		require.Equal(t, 1.0, c)

		// subtracting a polynomial from itself collapses to zero
		require.NoError(t, diff.Sub(a, a))
		require.True(t, diff.IsZero())
	})

	t.Run("Aliasing", func(t *testing.T) {

		prng, err := sampling.NewKeyedPRNG(testPRNGKey)
		require.NoError(t, err)

		a := newRandomPoly(t, prng, 2, 3)
		b := newRandomPoly(t, prng, 2, 2)

		want, err := NewPolynomial(2)
		require.NoError(t, err)
		require.NoError(t, want.Add(a, b))

		// dst == a
		got := a.CopyNew()
		require.NoError(t, got.Add(got, b))
		requireEqualPoly(t, want, got, 0)

		// dst == b
		got = b.CopyNew()
		require.NoError(t, got.Add(a, got))
		requireEqualPoly(t, want, got, 0)

		// dst == a == b
		doubled, err := NewPolynomial(2)
		require.NoError(t, err)
		require.NoError(t, doubled.Add(a, a))
		got = a.CopyNew()
		require.NoError(t, got.Add(got, got))
		requireEqualPoly(t, doubled, got, 0)
	})

	t.Run("IncompatibleDimensions", func(t *testing.T) {
		a, err := NewPolynomial(1)
		require.NoError(t, err)
		b, err := NewPolynomial(2)
		require.NoError(t, err)
		out, err := NewPolynomial(1)
		require.NoError(t, err)
		require.ErrorIs(t, out.Add(a, b), ErrIncompatibleDimensions)
	})
}

func TestMul(t *testing.T) {

	t.Run("Univariate", func(t *testing.T) {

		// (x+1) * (x-1) = x^2 - 1
		a := newTestPoly1D(t, 1, 1)
		b := newTestPoly1D(t, -1, 1)

		prod, err := NewPolynomial(1)
		require.NoError(t, err)
		require.NoError(t, prod.Mul(a, b))

		want := newTestPoly1D(t, -1, 0, 1)
		requireEqualPoly(t, want, prod, 0)
		require.Equal(t, 2, prod.Degree())
	})

	t.Run("CommutativeAndDistributive", func(t *testing.T) {

		prng, err := sampling.NewKeyedPRNG(testPRNGKey)
		require.NoError(t, err)

		for dim := 1; dim <= 2; dim++ {

			a := newRandomPoly(t, prng, dim, 2)
			b := newRandomPoly(t, prng, dim, 2)
			c := newRandomPoly(t, prng, dim, 2)

			ab, _ := NewPolynomial(dim)
			ba, _ := NewPolynomial(dim)
			require.NoError(t, ab.Mul(a, b))
			require.NoError(t, ba.Mul(b, a))
			requireEqualPoly(t, ab, ba, 1e-12)

			// a*(b+c) == a*b + a*c
			bc, _ := NewPolynomial(dim)
			require.NoError(t, bc.Add(b, c))
			lhs, _ := NewPolynomial(dim)
			require.NoError(t, lhs.Mul(a, bc))

			ac, _ := NewPolynomial(dim)
			require.NoError(t, ac.Mul(a, c))
			rhs, _ := NewPolynomial(dim)
			require.NoError(t, rhs.Add(ab, ac))

			requireEqualPoly(t, lhs, rhs, 1e-12)
		}
	})

	t.Run("Aliasing", func(t *testing.T) {

		prng, err := sampling.NewKeyedPRNG(testPRNGKey)
		require.NoError(t, err)

		a := newRandomPoly(t, prng, 2, 2)
		b := newRandomPoly(t, prng, 2, 2)

		want, err := NewPolynomial(2)
		require.NoError(t, err)
		require.NoError(t, want.Mul(a, b))

		got := a.CopyNew()
		require.NoError(t, got.Mul(got, b))
		requireEqualPoly(t, want, got, 0)

		square, err := NewPolynomial(2)
		require.NoError(t, err)
		require.NoError(t, square.Mul(a, a))
		got = a.CopyNew()
		require.NoError(t, got.Mul(got, got))
		requireEqualPoly(t, square, got, 0)
	})

	t.Run("ByZero", func(t *testing.T) {

		a := newTestPoly1D(t, 1, 2)
		zero, err := NewPolynomial(1)
		require.NoError(t, err)

		prod, err := NewPolynomial(1)
		require.NoError(t, err)
		require.NoError(t, prod.Mul(a, zero))
		require.True(t, prod.IsZero())
		require.Equal(t, 0, prod.Degree())
	})
}

func TestMulScalar(t *testing.T) {

	a := newTestPoly1D(t, 1, -2, 3)

	t.Run("Fresh", func(t *testing.T) {
		out, err := NewPolynomial(1)
		require.NoError(t, err)
		require.NoError(t, out.MulScalar(a, 2))
		requireEqualPoly(t, newTestPoly1D(t, 2, -4, 6), out, 0)
	})

	t.Run("Aliased", func(t *testing.T) {
		out := a.CopyNew()
		require.NoError(t, out.MulScalar(out, -1))
		requireEqualPoly(t, newTestPoly1D(t, -1, 2, -3), out, 0)
	})

	t.Run("ZeroFactorClears", func(t *testing.T) {
		out := a.CopyNew()
		require.NoError(t, out.MulScalar(out, 0))
		require.True(t, out.IsZero())
		require.Equal(t, 0, out.Degree())
	})
}

func TestCompare(t *testing.T) {

	a := newTestPoly1D(t, 1, 2, 3)
	b := newTestPoly1D(t, 1, 2.5, 3)

	count, err := Compare(a, b, 0.4)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	count, err = Compare(a, b, 0.6)
	require.NoError(t, err)
	require.Zero(t, count)

	// terms present on one side only are counted once
	c := newTestPoly1D(t, 1, 2, 3, 4)
	count, err = Compare(a, c, 0.1)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	_, err = Compare(a, nil, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Compare(a, b, -1)
	require.ErrorIs(t, err, ErrInvalidArgument)
}
