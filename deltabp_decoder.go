package deltabp

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// byteReader is the minimal interface blockDecoder needs from its source:
// io.ReadFull needs io.Reader, the varint/zigzag helpers need io.ByteReader.
// Both *bytes.Reader (decodeGeneric) and *countingByteReader (the streaming
// entry points in stream.go) satisfy it.
type byteReader interface {
	io.Reader
	io.ByteReader
}

// blockDecoder pulls one value at a time out of a DELTA_BINARY_PACKED
// stream, mirroring fraugster-parquet-go's deltaBitPackDecoder[T, I]
// almost line for line: next() advances through 8-value miniblock
// groups lazily, reading a fresh block header whenever the current
// superblock's miniblocks are exhausted, and -- once it reads the group
// that contains the very last delta -- drains whatever
// padding bytes remain in that miniblock and any still-unconsumed
// miniblocks of the same block so a full decode consumes the entire
// stream (spec.md section 8, round-trip law 3).
type blockDecoder[T intType] struct {
	ops widthOps[T]
	r   byteReader

	blockSize      int
	miniBlockCount int
	miniBlockSize  int // values per miniblock
	valuesCount    int

	previousValue T
	minDelta      T

	miniBlockBitWidth []uint8
	currentMiniBlock  int
	currentBitWidth   uint8
	miniBlockPosition int
	position          int
	miniBlock         [8]T
}

var errTruncated = errors.New("deltabp: truncated block body")

// readHeader parses the four fixed header fields (spec.md section 6.1).
// Any failure here -- overflow or running out of input -- is
// unconditionally ErrMalformed: unlike a block body running out midway,
// a torn header can't be attributed to "the final block was truncated".
func (d *blockDecoder[T]) readHeader() error {
	bs, err := readUvarint(d.r)
	if err != nil {
		return err
	}
	mbc, err := readUvarint(d.r)
	if err != nil {
		return err
	}
	if bs == 0 || mbc == 0 || bs%mbc != 0 {
		return fmt.Errorf("%w: block size %d not a multiple of miniblock count %d", ErrMalformed, bs, mbc)
	}
	d.blockSize = int(bs)
	d.miniBlockCount = int(mbc)
	d.miniBlockSize = d.blockSize / d.miniBlockCount
	if d.miniBlockSize == 0 || d.miniBlockSize%8 != 0 {
		return fmt.Errorf("%w: invalid miniblock value count %d", ErrMalformed, d.miniBlockSize)
	}

	vc, err := readUvarint(d.r)
	if err != nil {
		return err
	}
	d.valuesCount = int(vc)

	first, err := d.ops.readFirst(d.r)
	if err != nil {
		return err
	}
	d.previousValue = first
	d.currentMiniBlock = d.miniBlockCount // force a block-header read on the first next() call

	return nil
}

// readMiniBlockHeader reads one block record's minDelta and its
// miniBlockCount bit-width bytes. Short reads of the bit-width bytes are
// tolerated per spec.md section 4.2 step 4b (missing trailing bytes
// read as 0); a torn minDelta varint or an outright EOF here is reported
// as errTruncated so next() can stop gracefully instead of failing the
// whole decode.
func (d *blockDecoder[T]) readMiniBlockHeader() error {
	minDelta, err := d.ops.readFirst(d.r)
	if err != nil {
		return errTruncated
	}
	d.minDelta = minDelta

	bw := make([]uint8, d.miniBlockCount)
	n, _ := io.ReadFull(d.r, bw)
	for i := n; i < len(bw); i++ {
		bw[i] = 0
	}
	for _, b := range bw {
		if int(b) > d.ops.bits {
			return fmt.Errorf("%w: miniblock bit width %d exceeds value width %d", ErrMalformed, b, d.ops.bits)
		}
	}
	d.miniBlockBitWidth = bw
	d.currentMiniBlock = 0

	return nil
}

// next returns the value at d.position and advances. It returns io.EOF
// both when the caller-visible value count is exhausted and when the
// input runs out early -- spec.md's decoder contract treats both as "no
// more values can be produced", with the distinction between a clean
// end and a truncated final block left to the (produced, consumed) pair
// the caller ultimately returns, not to an error value.
func (d *blockDecoder[T]) next() (T, error) {
	if d.position >= d.valuesCount {
		return 0, io.EOF
	}

	// Deltas are indexed 0..valuesCount-2, one per consecutive pair of
	// values; the last requested value has no delta of its own and needs
	// nothing beyond the already-reconstructed previousValue. Without this
	// check, a values count that lands exactly on a block/miniblock
	// boundary (e.g. totalValueCount-1 a multiple of blockSize) makes this
	// call try to read a block record that was never written.
	if d.position == d.valuesCount-1 {
		ret := d.previousValue
		d.position++
		return ret, nil
	}

	if d.position%8 == 0 {
		if d.position%d.miniBlockSize == 0 {
			if d.currentMiniBlock >= d.miniBlockCount {
				if err := d.readMiniBlockHeader(); err != nil {
					if errors.Is(err, errTruncated) {
						return 0, io.EOF
					}
					return 0, err
				}
			}
			d.currentBitWidth = d.miniBlockBitWidth[d.currentMiniBlock]
			d.miniBlockPosition = 0
			d.currentMiniBlock++
		}

		w := int(d.currentBitWidth)
		buf := make([]byte, w)
		if n, err := io.ReadFull(d.r, buf); err != nil || n != w {
			return 0, io.EOF
		}
		d.miniBlock = d.ops.unpack(buf, w)
		d.miniBlockPosition += w

		// This group holds the last delta (index valuesCount-2): drain
		// whatever is left of this miniblock's body plus any later
		// miniblocks in this same block that still carry real (bit width
		// != 0) data, so a full decode consumes every byte the encoder
		// wrote.
		if d.position+8 >= d.valuesCount-1 {
			l := (d.miniBlockSize/8)*w - d.miniBlockPosition
			if l < 0 {
				return 0, fmt.Errorf("%w: inconsistent miniblock position", ErrMalformed)
			}
			if l > 0 {
				_, _ = io.ReadFull(d.r, make([]byte, l))
			}
			for i := d.currentMiniBlock; i < d.miniBlockCount; i++ {
				if ww := int(d.miniBlockBitWidth[i]); ww != 0 {
					_, _ = io.ReadFull(d.r, make([]byte, (d.miniBlockSize/8)*ww))
				}
			}
		}
	}

	ret := d.previousValue
	d.previousValue += d.miniBlock[d.position%8] + d.minDelta
	d.position++

	return ret, nil
}

// drainDecoder runs the shared header-then-values decode loop against an
// already-constructed blockDecoder, reporting bytes consumed via
// consumedSoFar so callers can track it however suits their source (a
// bytes.Reader's Len() delta, or a running byte count for a streaming
// io.Reader).
func drainDecoder[T intType](d *blockDecoder[T], dest []T, consumedSoFar func() int) (produced int, consumed int, err error) {
	if err := d.readHeader(); err != nil {
		return 0, consumedSoFar(), err
	}

	if d.valuesCount == 0 || len(dest) == 0 {
		return 0, consumedSoFar(), nil
	}

	if d.valuesCount == 1 {
		dest[0] = d.previousValue
		return 1, consumedSoFar(), nil
	}

	limit := d.valuesCount
	if len(dest) < limit {
		limit = len(dest)
	}

	for i := 0; i < limit; i++ {
		v, nerr := d.next()
		if nerr != nil {
			if nerr == io.EOF {
				return i, consumedSoFar(), nil
			}
			return i, consumedSoFar(), nerr
		}
		dest[i] = v
	}

	return limit, consumedSoFar(), nil
}

func decodeGeneric[T intType](ops widthOps[T], data []byte, dest []T) (produced int, consumed int, err error) {
	if len(data) == 0 {
		return 0, 0, nil
	}

	r := bytes.NewReader(data)
	d := &blockDecoder[T]{ops: ops, r: r}

	return drainDecoder(d, dest, func() int { return len(data) - r.Len() })
}
