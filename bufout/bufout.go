// Package bufout provides Buffer, a caller-owned growable accumulator
// that collects rendered log output instead of writing it out.
//
// A Buffer is typically filled while building a multi-part report and
// then written to its final destination in one go. It is not safe for
// concurrent use; each Buffer belongs to one caller.
package bufout

import (
	"bytes"
	"io"
)

// Buffer accumulates output in memory
type Buffer struct {
	buf bytes.Buffer
}

// New creates an empty buffer
func New() *Buffer {
	return &Buffer{}
}

// Append appends p and returns the number of bytes appended
func (b *Buffer) Append(p []byte) int {
	n, _ := b.buf.Write(p)
	return n
}

// Bytes returns the accumulated bytes. The slice is valid until the
// next modification.
func (b *Buffer) Bytes() []byte {
	return b.buf.Bytes()
}

// String returns the accumulated output as a string
func (b *Buffer) String() string {
	return b.buf.String()
}

// Len returns the number of accumulated bytes
func (b *Buffer) Len() int {
	return b.buf.Len()
}

// Reset discards the accumulated output
func (b *Buffer) Reset() {
	b.buf.Reset()
}

// WriteTo writes the accumulated output to w and empties the buffer
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	return b.buf.WriteTo(w)
}
