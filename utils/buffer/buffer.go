// Package buffer implements methods for efficiently writing and reading
// values to and from io.Writer and io.Reader that also expose their internal
// buffers.
package buffer

import (
	"fmt"
	"io"
)

// Writer is an interface for writers that expose their internal
// buffers.
// This interface is notably implemented by the bufio.Writer type
// (see https://pkg.go.dev/bufio#Writer) and by the Buffer type.
type Writer interface {
	io.Writer
	Flush() (err error)
	AvailableBuffer() []byte
	Available() int
}

// Reader is an interface for readers that expose their internal
// buffers.
// This interface is notably implemented by the bufio.Reader type
// (see https://pkg.go.dev/bufio#Reader) and by the Buffer type.
type Reader interface {
	io.Reader
	Size() int
	Peek(n int) ([]byte, error)
	Discard(n int) (discarded int, err error)
}

// Buffer is a simple []byte-based buffer that complies to the
// Writer and Reader interfaces. This type assumes that its
// backing slice has a fixed size and won't attempt to extend
// it. Instead, writes beyond capacity will result in an error.
type Buffer struct {
	buf []byte
	n   int
	off int
}

// NewBuffer creates a new Buffer struct with buff as a backing
// []byte. The read and write offset are initialized at buff[0].
// Hence, writing new data will overwrite the content of buff.
func NewBuffer(buff []byte) *Buffer {
	b := new(Buffer)
	b.buf = buff
	return b
}

// NewBufferSize creates a new Buffer with size capacity.
func NewBufferSize(size int) *Buffer {
	b := new(Buffer)
	b.buf = make([]byte, size)
	return b
}

// Write writes p into b. It returns the number of bytes written
// and an error if attempting to write past the initial capacity
// of the buffer.
func (b *Buffer) Write(p []byte) (n int, err error) {
	if len(p) > len(b.buf)-b.n {
		return 0, fmt.Errorf("cannot Write: buffer is full")
	}
	n = copy(b.buf[b.n:], p)
	b.n += n
	return
}

// Flush is a no-op on a Buffer, it only exists to comply to the
// Writer interface.
func (b *Buffer) Flush() (err error) {
	return nil
}

// AvailableBuffer returns an empty byte slice aliasing the unwritten
// remainder of the backing slice.
func (b *Buffer) AvailableBuffer() []byte {
	return b.buf[b.n:][:0]
}

// Available returns how many bytes can still be written without error.
func (b *Buffer) Available() int {
	return len(b.buf) - b.n
}

// Bytes returns the written section of the backing slice.
func (b *Buffer) Bytes() []byte {
	return b.buf[:b.n]
}

// Reset resets the read and write offsets, without zeroing the
// backing slice.
func (b *Buffer) Reset() {
	b.n = 0
	b.off = 0
}

// Read reads up to len(p) bytes from the read offset of b into p. The whole
// backing slice is readable, so a Buffer wrapped around existing data can be
// read without writing to it first.
func (b *Buffer) Read(p []byte) (n int, err error) {
	n = copy(p, b.buf[b.off:])
	b.off += n
	if n < len(p) {
		return n, io.EOF
	}
	return
}

// Size returns the size of the underlying buffer.
func (b *Buffer) Size() int {
	return len(b.buf)
}

// Peek returns the next n bytes without advancing the read offset.
func (b *Buffer) Peek(n int) ([]byte, error) {
	if b.off+n > len(b.buf) {
		return b.buf[b.off:], io.EOF
	}
	return b.buf[b.off : b.off+n], nil
}

// Discard skips the next n bytes, advancing the read offset.
func (b *Buffer) Discard(n int) (discarded int, err error) {
	if n < 0 {
		return 0, fmt.Errorf("cannot Discard: negative count")
	}
	if b.off+n > len(b.buf) {
		discarded = len(b.buf) - b.off
		b.off = len(b.buf)
		return discarded, io.EOF
	}
	b.off += n
	return n, nil
}
