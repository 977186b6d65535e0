package buffer

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// ReadUint64 reads a uint64 from r into c.
func ReadUint64(r Reader, c *uint64) (n int, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb [8]byte

	if n, err = io.ReadFull(r, bb[:]); err != nil {
		return n, fmt.Errorf("cannot ReadUint64: %w", err)
	}

	*c = binary.LittleEndian.Uint64(bb[:])

	return
}

// ReadInt reads an int encoded as a uint64 from r into c.
func ReadInt(r Reader, c *int) (n int, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadInt: c is nil")
	}

	var u uint64
	if n, err = ReadUint64(r, &u); err != nil {
		return
	}

	*c = int(u)

	return
}

// ReadFloat64 reads a float64 from its IEEE 754 binary representation in r into c.
func ReadFloat64(r Reader, c *float64) (n int, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadFloat64: c is nil")
	}

	var u uint64
	if n, err = ReadUint64(r, &u); err != nil {
		return
	}

	*c = math.Float64frombits(u)

	return
}

// ReadUint64Slice reads a slice of uint64 from r into c.
func ReadUint64Slice(r Reader, c []uint64) (n int, err error) {

	var inc int
	for i := range c {
		if inc, err = ReadUint64(r, &c[i]); err != nil {
			return n + inc, err
		}
		n += inc
	}

	return
}

// ReadIntSlice reads a slice of int encoded as uint64 from r into c.
func ReadIntSlice(r Reader, c []int) (n int, err error) {

	var inc int
	for i := range c {
		if inc, err = ReadInt(r, &c[i]); err != nil {
			return n + inc, err
		}
		n += inc
	}

	return
}

// ReadFloat64Slice reads a slice of float64 from r into c.
func ReadFloat64Slice(r Reader, c []float64) (n int, err error) {

	var inc int
	for i := range c {
		if inc, err = ReadFloat64(r, &c[i]); err != nil {
			return n + inc, err
		}
		n += inc
	}

	return
}
