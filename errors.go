package deltabp

import "errors"

// ErrMalformed is returned by the decoder when the input cannot possibly
// encode a valid DELTA_BINARY_PACKED stream: a varint overflows, a
// miniblock bit-width exceeds the value width, or the header is cut off
// mid-field.
var ErrMalformed = errors.New("deltabp: malformed stream")

// ErrInvalidConfig is returned eagerly by the encoder, before any bytes
// are written, when blockSize/miniBlockSize violate the invariants in
// the wire format: both must be positive, blockSize must be a multiple
// of miniBlockSize, and miniBlockSize must be a multiple of 8.
var ErrInvalidConfig = errors.New("deltabp: invalid block/miniblock configuration")

// validateConfig checks the two encoder-supplied configuration integers
// against the invariants the wire format requires. Only the encoder
// calls it; the decoder checks the header fields it reads inline (see
// blockDecoder.readHeader) and reports a bad header as ErrMalformed.
func validateConfig(blockSize, miniBlockSize int) error {
	if blockSize <= 0 || miniBlockSize <= 0 {
		return ErrInvalidConfig
	}
	if blockSize%miniBlockSize != 0 {
		return ErrInvalidConfig
	}
	if miniBlockSize%8 != 0 {
		return ErrInvalidConfig
	}
	return nil
}
