package deltabp

import "io"

// EncodeI32 serializes values as a DELTA_BINARY_PACKED stream and writes
// it to sink. It writes zero bytes for an empty sequence; otherwise the
// stream header is followed by zero or more block records (spec.md
// section 6.1). blockSize and miniBlockSize are validated eagerly
// (ErrInvalidConfig) before any bytes reach sink, per spec.md section 7:
// once the header has been written the encoder commits to finishing the
// stream, and only a failure from sink itself (SinkError, propagated
// verbatim) can stop it.
//
// This mirrors how fraugster-parquet-go's int32DeltaBPEncoder wires the
// generic deltaBitPackEncoder[T, I] engine to a concrete width; here
// EncodeI32 wires the same shared engine (deltabp_encoder.go) to
// int32Ops instead.
func EncodeI32(values []int32, sink io.Writer, blockSize, miniBlockSize int) error {
	return encodeGeneric(int32Ops, values, sink, blockSize, miniBlockSize)
}

// DecodeI32 parses a DELTA_BINARY_PACKED stream out of data into dest,
// returning the number of values written and the number of bytes of
// data consumed. If dest is smaller than the stream's total value
// count, decoding stops once dest is full (see ErrMalformed's sibling
// non-error policy for DestinationTooSmall in spec.md section 7) --
// resuming requires re-decoding from a block boundary, since partial
// miniblocks cannot be resumed.
func DecodeI32(data []byte, dest []int32) (produced int, consumed int, err error) {
	return decodeGeneric(int32Ops, data, dest)
}
