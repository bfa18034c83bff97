package deltabp

// The sibling bit-packed codec spec.md treats as an external collaborator
// (Pack8ValuesLE/Unpack8ValuesLE) is implemented here directly: a codec
// that cannot produce a single packed byte isn't a codec. The layout
// follows spec section 6.1 exactly -- each of the 8 values occupies
// bitWidth consecutive bits, low-to-high, starting right after the
// previous value's bits; within a byte, bit 0 is the least significant
// bit. This is the same little-endian bit order fraugster-parquet-go's
// bitpack.go and internal_types.go use for PLAIN bit-packing and for the
// delta codec's miniblocks (pack8Int32FuncByWidth / unpack8Int32FuncByWidth),
// just expressed as one parameterized loop instead of a 0..64 entry table
// of generated closures -- the table itself wasn't present in the
// retrieval pack, and a width parameter is the direct idiomatic
// equivalent.

// packBitsLE packs 8 raw (already width-masked) values into exactly
// bitWidth bits per value, written into dst. len(dst) must equal
// bitWidth (8*bitWidth bits / 8 == bitWidth bytes).
func packBitsLE(raw [8]uint64, bitWidth int, dst []byte) {
	for i := range dst {
		dst[i] = 0
	}
	if bitWidth == 0 {
		return
	}
	bitPos := 0
	for _, v := range raw {
		for b := 0; b < bitWidth; b++ {
			if v&(1<<uint(b)) != 0 {
				dst[bitPos/8] |= 1 << uint(bitPos%8)
			}
			bitPos++
		}
	}
}

// unpackBitsLE is the inverse of packBitsLE: src must hold exactly
// bitWidth bytes.
func unpackBitsLE(src []byte, bitWidth int) [8]uint64 {
	var out [8]uint64
	if bitWidth == 0 {
		return out
	}
	bitPos := 0
	for i := 0; i < 8; i++ {
		var v uint64
		for b := 0; b < bitWidth; b++ {
			if src[bitPos/8]&(1<<uint(bitPos%8)) != 0 {
				v |= 1 << uint(b)
			}
			bitPos++
		}
		out[i] = v
	}
	return out
}

// pack8ValuesLE32 packs 8 int32 values (reinterpreted as their raw
// 32-bit unsigned bit pattern, zero-extended) into dst.
func pack8ValuesLE32(src [8]int32, bitWidth int, dst []byte) {
	var raw [8]uint64
	for i, v := range src {
		raw[i] = uint64(uint32(v))
	}
	packBitsLE(raw, bitWidth, dst)
}

// unpack8ValuesLE32 is the inverse of pack8ValuesLE32.
func unpack8ValuesLE32(src []byte, bitWidth int) [8]int32 {
	raw := unpackBitsLE(src, bitWidth)
	var out [8]int32
	for i, v := range raw {
		out[i] = int32(uint32(v))
	}
	return out
}

// pack8ValuesLE64 packs 8 int64 values (reinterpreted as their raw
// 64-bit unsigned bit pattern) into dst.
func pack8ValuesLE64(src [8]int64, bitWidth int, dst []byte) {
	var raw [8]uint64
	for i, v := range src {
		raw[i] = uint64(v)
	}
	packBitsLE(raw, bitWidth, dst)
}

// unpack8ValuesLE64 is the inverse of pack8ValuesLE64.
func unpack8ValuesLE64(src []byte, bitWidth int) [8]int64 {
	raw := unpackBitsLE(src, bitWidth)
	var out [8]int64
	for i, v := range raw {
		out[i] = int64(v)
	}
	return out
}
