package mpoly

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/polykit/utils/sampling"
)

func TestSerialization(t *testing.T) {

	prng, err := sampling.NewKeyedPRNG(testPRNGKey)
	require.NoError(t, err)

	t.Run("MarshalBinary", func(t *testing.T) {

		p := newRandomPoly(t, prng, 3, 3)

		data, err := p.MarshalBinary()
		require.NoError(t, err)
		require.Equal(t, p.BinarySize(), len(data))

		q, err := NewPolynomial(1)
		require.NoError(t, err)
		require.NoError(t, q.UnmarshalBinary(data))

		require.Equal(t, p.Dimension(), q.Dimension())
		require.Equal(t, p.Degree(), q.Degree())
		requireEqualPoly(t, p, q, 0)
	})

	t.Run("WriteToReadFrom", func(t *testing.T) {

		p := newRandomPoly(t, prng, 2, 4)

		// through a plain io.Writer/io.Reader
		var buf bytes.Buffer
		n, err := p.WriteTo(&buf)
		require.NoError(t, err)
		require.Equal(t, int64(p.BinarySize()), n)

		q, err := NewPolynomial(1)
		require.NoError(t, err)
		_, err = q.ReadFrom(&buf)
		require.NoError(t, err)

		requireEqualPoly(t, p, q, 0)
	})

	t.Run("TruncatedStream", func(t *testing.T) {

		p := newRandomPoly(t, prng, 2, 3)

		data, err := p.MarshalBinary()
		require.NoError(t, err)

		q := newTestPoly1D(t, 4, 5)
		before := q.CopyNew()

		// cut the stream in the middle of the term list: the receiver must
		// come out of the failed decode unchanged
		require.Error(t, q.UnmarshalBinary(data[:len(data)-13]))
		require.Equal(t, before.Dimension(), q.Dimension())
		require.Equal(t, before.Degree(), q.Degree())
		requireEqualPoly(t, before, q, 0)
	})

	t.Run("ZeroPolynomial", func(t *testing.T) {

		p, err := NewPolynomial(2)
		require.NoError(t, err)

		data, err := p.MarshalBinary()
		require.NoError(t, err)
		require.Equal(t, 16, len(data))

		q, err := NewPolynomial(1)
		require.NoError(t, err)
		require.NoError(t, q.UnmarshalBinary(data))
		require.True(t, q.IsZero())
		require.Equal(t, 2, q.Dimension())
	})
}
