package deltabp

import (
	"encoding/binary"
	"fmt"
	"io"
)

// writeUvarint emits v as an unsigned LEB128 varint: 7 payload bits per
// byte, continuation bit in the MSB. encoding/binary already implements
// this exactly, and nothing in the example pack reaches for a dedicated
// varint library, so there is no third-party alternative to wire in here.
func writeUvarint(w io.Writer, v uint64) error {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], v)
	_, err := w.Write(buf[:n])
	return err
}

// readUvarint parses an unsigned LEB128 varint from r. Overflow (more
// than the 10 bytes needed for a 64-bit payload) and premature EOF both
// surface as ErrMalformed, per spec section 7.
func readUvarint(r io.ByteReader) (uint64, error) {
	v, err := binary.ReadUvarint(r)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return v, nil
}

// zigzag32/unzigzag32 implement the ZigZag mapping n -> (n<<1) ^ (n>>31)
// for 32-bit signed values, using Go's arithmetic right shift on signed
// integers.
func zigzag32(n int32) uint32 {
	return uint32((n << 1) ^ (n >> 31))
}

func unzigzag32(u uint32) int32 {
	return int32(u>>1) ^ -int32(u&1)
}

// zigzag64/unzigzag64 are the 64-bit width counterparts.
func zigzag64(n int64) uint64 {
	return uint64((n << 1) ^ (n >> 63))
}

func unzigzag64(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

func writeZigzag32(w io.Writer, n int32) error {
	return writeUvarint(w, uint64(zigzag32(n)))
}

func readZigzag32(r io.ByteReader) (int32, error) {
	u, err := readUvarint(r)
	if err != nil {
		return 0, err
	}
	if u > 0xFFFFFFFF {
		return 0, fmt.Errorf("%w: zigzag32 value out of range", ErrMalformed)
	}
	return unzigzag32(uint32(u)), nil
}

func writeZigzag64(w io.Writer, n int64) error {
	return writeUvarint(w, zigzag64(n))
}

func readZigzag64(r io.ByteReader) (int64, error) {
	u, err := readUvarint(r)
	if err != nil {
		return 0, err
	}
	return unzigzag64(u), nil
}
