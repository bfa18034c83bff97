package deltabp

import (
	"bufio"
	"io"
)

// countingByteReader wraps a bufio.Reader and tracks how many bytes have
// been pulled out of it, so a streaming decode can report how much of an
// io.Reader it consumed the same way decodeGeneric reports it for a byte
// slice via bytes.Reader.Len().
type countingByteReader struct {
	br *bufio.Reader
	n  int
}

func (c *countingByteReader) Read(p []byte) (int, error) {
	n, err := c.br.Read(p)
	c.n += n
	return n, err
}

func (c *countingByteReader) ReadByte() (byte, error) {
	b, err := c.br.ReadByte()
	if err == nil {
		c.n++
	}
	return b, err
}

// decodeGenericReader is decodeGeneric's io.Reader-based counterpart,
// matching the teacher's chunk_reader.go convention of reading a codec's
// input straight off an io.Reader instead of requiring the whole stream
// to be buffered into a byte slice first. An empty reader (no bytes
// before EOF) is treated the same way decodeGeneric treats an empty byte
// slice: zero values produced, nothing consumed, no error.
func decodeGenericReader[T intType](ops widthOps[T], r io.Reader, dest []T) (produced int, consumed int, err error) {
	br := bufio.NewReader(r)
	if _, peekErr := br.Peek(1); peekErr != nil {
		return 0, 0, nil
	}

	cr := &countingByteReader{br: br}
	d := &blockDecoder[T]{ops: ops, r: cr}

	return drainDecoder(d, dest, func() int { return cr.n })
}

// DecodeI32Reader is DecodeI32's streaming counterpart: it reads a
// DELTA_BINARY_PACKED stream directly from r instead of requiring the
// caller to buffer it into a []byte first.
func DecodeI32Reader(r io.Reader, dest []int32) (produced int, consumed int, err error) {
	return decodeGenericReader(int32Ops, r, dest)
}

// DecodeI64Reader is DecodeI64's streaming counterpart.
func DecodeI64Reader(r io.Reader, dest []int64) (produced int, consumed int, err error) {
	return decodeGenericReader(int64Ops, r, dest)
}
