package deltabp

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUvarintRoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 127, 128, 300, math.MaxUint32, math.MaxUint64}
	for _, v := range cases {
		var buf bytes.Buffer
		require.NoError(t, writeUvarint(&buf, v))

		got, err := readUvarint(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestReadUvarintTruncatedIsMalformed(t *testing.T) {
	// 0x80 alone is a continuation byte with nothing to continue into.
	_, err := readUvarint(bytes.NewReader([]byte{0x80}))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestReadUvarintEmptyIsMalformed(t *testing.T) {
	_, err := readUvarint(bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestZigzag32RoundTrip(t *testing.T) {
	cases := []int32{0, 1, -1, 2, -2, math.MaxInt32, math.MinInt32}
	for _, n := range cases {
		assert.Equal(t, n, unzigzag32(zigzag32(n)), "n=%d", n)
	}

	// ZigZag maps small-magnitude values to small unsigned values: -1 -> 1,
	// 1 -> 2, -2 -> 3, matching spec.md section 4.1's wire-format rationale.
	assert.EqualValues(t, 0, zigzag32(0))
	assert.EqualValues(t, 1, zigzag32(-1))
	assert.EqualValues(t, 2, zigzag32(1))
	assert.EqualValues(t, 3, zigzag32(-2))
}

func TestZigzag64RoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 2, -2, math.MaxInt64, math.MinInt64}
	for _, n := range cases {
		assert.Equal(t, n, unzigzag64(zigzag64(n)), "n=%d", n)
	}
}

func TestWriteReadZigzag32(t *testing.T) {
	for _, n := range []int32{0, -1, 1000, math.MinInt32, math.MaxInt32} {
		var buf bytes.Buffer
		require.NoError(t, writeZigzag32(&buf, n))

		got, err := readZigzag32(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
}

func TestWriteReadZigzag64(t *testing.T) {
	for _, n := range []int64{0, -1, 1000, math.MinInt64, math.MaxInt64} {
		var buf bytes.Buffer
		require.NoError(t, writeZigzag64(&buf, n))

		got, err := readZigzag64(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
}
