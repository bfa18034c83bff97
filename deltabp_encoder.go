package deltabp

import (
	"bytes"
	"io"
)

// blockEncoder accumulates one value sequence into deltas and flushes
// full (or final partial) blocks to a staging buffer, exactly the way
// fraugster-parquet-go's deltaBitPackEncoder[T, I] does in
// deltabp_encoder.go: addValue appends to a delta buffer and flushes
// when it fills, flush() subtracts minDelta and bit-packs, and the
// header (block size, miniblock count, total values, first value) is
// only written once, by writeTo, in front of the accumulated
// block bytes.
type blockEncoder[T intType] struct {
	ops widthOps[T]

	blockSize      int
	miniBlockCount int
	miniBlockSize  int // values per miniblock

	valuesCount int
	firstValue  T
	previous    T

	haveMinDelta bool
	minDelta     T
	deltas       []T

	body bytes.Buffer
}

func newBlockEncoder[T intType](ops widthOps[T], blockSize, miniBlockSize int) (*blockEncoder[T], error) {
	if err := validateConfig(blockSize, miniBlockSize); err != nil {
		return nil, err
	}
	return &blockEncoder[T]{
		ops:            ops,
		blockSize:      blockSize,
		miniBlockCount: blockSize / miniBlockSize,
		miniBlockSize:  miniBlockSize,
		deltas:         make([]T, 0, blockSize),
	}, nil
}

func (e *blockEncoder[T]) addValue(v T) {
	e.valuesCount++
	if e.valuesCount == 1 {
		e.firstValue = v
		e.previous = v
		return
	}

	delta := v - e.previous // two's-complement wrap-around, matches spec section 3
	e.previous = v

	if !e.haveMinDelta || delta < e.minDelta {
		e.minDelta = delta
		e.haveMinDelta = true
	}
	e.deltas = append(e.deltas, delta)

	if len(e.deltas) == e.blockSize {
		e.flush()
	}
}

// flush implements the FlushBlock subroutine from spec.md section 4.1:
// emit minDelta, compute each miniblock's bit-width over the adjusted
// (non-negative, modulo wrap) deltas, emit the bit-width bytes, then the
// bit-packed bodies. Miniblocks past the end of a partial final block
// get a bit-width byte of 0 and no body bytes at all -- the open
// question in spec.md section 9 explicitly allows this choice, and it
// keeps the decoder's "entirely past totalValueCount" miniblocks free of
// any bytes to drain.
func (e *blockEncoder[T]) flush() {
	_ = e.ops.writeFirst(&e.body, e.minDelta)

	groupsPerMiniBlock := e.miniBlockSize / 8
	bitWidths := make([]uint8, 0, e.miniBlockCount)
	bodies := make([][]byte, 0, e.miniBlockCount)

	for i := 0; i < len(e.deltas); i += e.miniBlockSize {
		end := i + e.miniBlockSize
		if end > len(e.deltas) {
			end = len(e.deltas)
		}

		var scratch [8]T
		groups := make([][8]T, groupsPerMiniBlock)
		var max uint64
		for j := i; j < end; j++ {
			adjusted := e.deltas[j] - e.minDelta
			if raw := e.ops.toRaw(adjusted); raw > max {
				max = raw
			}
			t := j - i
			groups[t/8][t%8] = adjusted
		}

		bw := bitWidthOf(max)
		bitWidths = append(bitWidths, bw)

		body := make([]byte, 0, int(bw)*groupsPerMiniBlock)
		buf := make([]byte, bw)
		for _, g := range groups {
			scratch = g
			e.ops.pack(scratch, int(bw), buf)
			body = append(body, buf...)
		}
		bodies = append(bodies, body)
	}

	for len(bitWidths) < e.miniBlockCount {
		bitWidths = append(bitWidths, 0)
	}

	_, _ = e.body.Write(bitWidths)
	for _, b := range bodies {
		_, _ = e.body.Write(b)
	}

	e.haveMinDelta = false
	e.deltas = e.deltas[:0]
}

// writeTo emits the full stream: header followed by every flushed
// block's bytes. Any partial trailing block is flushed first.
func (e *blockEncoder[T]) writeTo(w io.Writer) error {
	if e.valuesCount == 0 {
		return nil
	}

	if len(e.deltas) > 0 {
		e.flush()
	}

	if err := writeUvarint(w, uint64(e.blockSize)); err != nil {
		return err
	}
	if err := writeUvarint(w, uint64(e.miniBlockCount)); err != nil {
		return err
	}
	if err := writeUvarint(w, uint64(e.valuesCount)); err != nil {
		return err
	}
	if err := e.ops.writeFirst(w, e.firstValue); err != nil {
		return err
	}

	_, err := w.Write(e.body.Bytes())
	return err
}

func encodeGeneric[T intType](ops widthOps[T], values []T, w io.Writer, blockSize, miniBlockSize int) error {
	if len(values) == 0 {
		// spec.md section 4.1: writes zero bytes when the sequence is
		// empty, even for an invalid config -- there is nothing to
		// validate against since no block will ever be framed.
		return nil
	}

	enc, err := newBlockEncoder(ops, blockSize, miniBlockSize)
	if err != nil {
		return err
	}

	for _, v := range values {
		enc.addValue(v)
	}

	return enc.writeTo(w)
}
