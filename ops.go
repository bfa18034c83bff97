package deltabp

import (
	"io"
	"math/bits"
)

// intType is the set of value widths this codec supports: signed 32-bit
// and 64-bit integers. Unsigned and floating-point values are explicitly
// out of scope (spec.md section 1, Non-goals).
type intType interface {
	int32 | int64
}

// widthOps bundles the handful of operations that differ between the
// int32 and int64 paths so the block framing in
// deltabp_encoder.go/deltabp_decoder.go
// can be written once and generalized over T, per the "width-generic
// abstraction parameterized by integer type, bit-packing primitive, and
// zig-zag width" recommendation in spec.md section 9. This mirrors the
// internalIntType[T] split fraugster-parquet-go/internal_types.go uses
// to keep deltaBitPackEncoder[T, I]/deltaBitPackDecoder[T, I] generic
// while PackDeltas/GetUnpacker stay width-specific.
type widthOps[T intType] struct {
	bits int

	writeFirst func(w io.Writer, v T) error
	readFirst  func(r io.ByteReader) (T, error)

	pack   func(src [8]T, bitWidth int, dst []byte)
	unpack func(src []byte, bitWidth int) [8]T

	// toRaw reinterprets v's bits as an unsigned, width-masked integer.
	// Packing and bit-width computation both need this: once minDelta is
	// subtracted, a delta can wrap around (see blockEncoder.flush's
	// comment), and the resulting bit pattern -- not its signed value --
	// is what determines how many bits it needs and what bytes get
	// packed.
	toRaw func(v T) uint64
}

var int32Ops = widthOps[int32]{
	bits:       32,
	writeFirst: writeZigzag32,
	readFirst:  readZigzag32,
	pack:       pack8ValuesLE32,
	unpack:     unpack8ValuesLE32,
	toRaw:      func(v int32) uint64 { return uint64(uint32(v)) },
}

var int64Ops = widthOps[int64]{
	bits:       64,
	writeFirst: writeZigzag64,
	readFirst:  readZigzag64,
	pack:       pack8ValuesLE64,
	unpack:     unpack8ValuesLE64,
	toRaw:      func(v int64) uint64 { return uint64(v) },
}

// bitWidthOf implements spec.md section 4.1's bitWidthOf: 0 for a
// raw value of 0, floor(log2(x))+1 otherwise. bits.Len64 is exactly
// that function.
func bitWidthOf(raw uint64) uint8 {
	return uint8(bits.Len64(raw))
}
