package deltabp

import "io"

// EncodeI64 is EncodeI32's int64 counterpart -- same wire format, same
// shared block-framing engine, wired to int64Ops instead of int32Ops.
func EncodeI64(values []int64, sink io.Writer, blockSize, miniBlockSize int) error {
	return encodeGeneric(int64Ops, values, sink, blockSize, miniBlockSize)
}

// DecodeI64 is DecodeI32's int64 counterpart.
func DecodeI64(data []byte, dest []int64) (produced int, consumed int, err error) {
	return decodeGeneric(int64Ops, data, dest)
}
