package mpoly

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tuneinsight/polykit/utils/buffer"
)

// Serialization uses a sparse term-list format: the dimension and the number
// of non-zero terms, then one power vector and one coefficient per term.

// BinarySize returns the serialized size of the polynomial in bytes.
func (p *Polynomial) BinarySize() (size int) {
	count := 0
	if p.root != nil {
		count = p.root.termCount(p.dim - 1)
	}
	return 16 + count*8*(p.dim+1)
}

// MarshalBinary encodes the polynomial on a slice of bytes.
func (p *Polynomial) MarshalBinary() (data []byte, err error) {
	buf := buffer.NewBufferSize(p.BinarySize())
	if _, err = p.WriteTo(buf); err != nil {
		return
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a slice of bytes generated by MarshalBinary on the
// polynomial.
func (p *Polynomial) UnmarshalBinary(data []byte) (err error) {
	_, err = p.ReadFrom(buffer.NewBuffer(data))
	return
}

// WriteTo writes the polynomial to w. If w is not a buffer.Writer it is
// wrapped in a bufio.Writer which is flushed before returning.
func (p *Polynomial) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64

		if inc, err = buffer.WriteInt(w, p.dim); err != nil {
			return n + inc, err
		}
		n += inc

		count := 0
		if p.root != nil {
			count = p.root.termCount(p.dim - 1)
		}

		if inc, err = buffer.WriteInt(w, count); err != nil {
			return n + inc, err
		}
		n += inc

		if p.root == nil {
			return n, w.Flush()
		}

		powers := make([]int, p.dim)
		p.root.forEachTerm(p.dim-1, powers, func(pw []int, c float64) {
			if err != nil {
				return
			}
			if inc, err = buffer.WriteIntSlice(w, pw); err == nil {
				n += inc
				if inc, err = buffer.WriteFloat64(w, c); err == nil {
					n += inc
				}
			}
		})

		if err != nil {
			return n, fmt.Errorf("cannot WriteTo: %w", err)
		}

		return n, w.Flush()

	default:
		bw := bufio.NewWriter(w)
		if n, err = p.WriteTo(bw); err != nil {
			return
		}
		return n, bw.Flush()
	}
}

// ReadFrom reads the polynomial from r, overwriting the receiver, including
// its dimension. If r is not a buffer.Reader it is wrapped in a
// bufio.Reader.
func (p *Polynomial) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var inc int

		var dim int
		if inc, err = buffer.ReadInt(r, &dim); err != nil {
			return n + int64(inc), err
		}
		n += int64(inc)

		if dim < 1 {
			return n, fmt.Errorf("cannot ReadFrom: %w: dimension %d", ErrInvalidArgument, dim)
		}

		var count int
		if inc, err = buffer.ReadInt(r, &count); err != nil {
			return n + int64(inc), err
		}
		n += int64(inc)

		if count < 0 {
			return n, fmt.Errorf("cannot ReadFrom: %w: term count %d", ErrInvalidArgument, count)
		}

		// decode into a scratch polynomial so that a mid-stream error
		// leaves the receiver untouched
		q := Polynomial{dim: dim}

		powers := make([]int, dim)
		var c float64

		for i := 0; i < count; i++ {

			if inc, err = buffer.ReadIntSlice(r, powers); err != nil {
				return n + int64(inc), err
			}
			n += int64(inc)

			if inc, err = buffer.ReadFloat64(r, &c); err != nil {
				return n + int64(inc), err
			}
			n += int64(inc)

			if err = q.SetCoefficient(powers, c); err != nil {
				return n, fmt.Errorf("cannot ReadFrom: %w", err)
			}
		}

		*p = q

		return

	default:
		return p.ReadFrom(bufio.NewReader(r))
	}
}
