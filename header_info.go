package deltabp

import "bytes"

// HeaderInfo reports a stream's four fixed header fields without decoding
// any values, for tooling that wants to describe a stream (cmd/deltabp-tool
// inspect) rather than consume it.
type HeaderInfo struct {
	BlockSize       int
	MiniBlockCount  int
	MiniBlockSize   int
	TotalValueCount int
	FirstValue      int64
	HeaderBytes     int
}

// InspectI32Header parses just the header of an int32 stream.
func InspectI32Header(data []byte) (HeaderInfo, error) {
	r := bytes.NewReader(data)
	d := &blockDecoder[int32]{ops: int32Ops, r: r}
	if err := d.readHeader(); err != nil {
		return HeaderInfo{}, err
	}
	return HeaderInfo{
		BlockSize:       d.blockSize,
		MiniBlockCount:  d.miniBlockCount,
		MiniBlockSize:   d.miniBlockSize,
		TotalValueCount: d.valuesCount,
		FirstValue:      int64(d.previousValue),
		HeaderBytes:     len(data) - r.Len(),
	}, nil
}

// InspectI64Header parses just the header of an int64 stream.
func InspectI64Header(data []byte) (HeaderInfo, error) {
	r := bytes.NewReader(data)
	d := &blockDecoder[int64]{ops: int64Ops, r: r}
	if err := d.readHeader(); err != nil {
		return HeaderInfo{}, err
	}
	return HeaderInfo{
		BlockSize:       d.blockSize,
		MiniBlockCount:  d.miniBlockCount,
		MiniBlockSize:   d.miniBlockSize,
		TotalValueCount: d.valuesCount,
		FirstValue:      d.previousValue,
		HeaderBytes:     len(data) - r.Len(),
	}, nil
}
