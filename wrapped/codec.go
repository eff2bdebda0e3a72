// Package wrapped implements the VSF Wrapped value family (tag 'v'):
// algorithm byte + opaque encoded bytes, used to transparently compress,
// error-correct, or encrypt a VSF value's bytes. The codec itself never
// looks inside the wrapped payload; registered Codec implementations
// handle that.
package wrapped

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/nickspiker/vsf-sub001/errs"
	"github.com/nickspiker/vsf-sub001/format"
)

// Compressor compresses a byte payload.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a byte payload previously produced by the
// matching Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions under one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// maxDecompressBufferSize bounds the scratch-buffer growth any codec
// performs when a compressed block doesn't carry its own decompressed
// size, guarding against runaway allocation on corrupt or hostile input.
const maxDecompressBufferSize = 128 * 1024 * 1024

// codecErr wraps an underlying library error with the algorithm and
// direction that failed, so a caller can errors.Is(err, errs.ErrCodecFailed)
// regardless of which library produced it.
func codecErr(algo format.Algorithm, op string, err error) error {
	return fmt.Errorf("wrapped: %s %s: %w: %w", algo, op, errs.ErrCodecFailed, err)
}

var builtinCodecs = map[format.Algorithm]Codec{
	format.AlgNone: NoOpCodec{},
	format.AlgZstd: ZstdCodec{},
	format.AlgS2:   S2Codec{},
	format.AlgLZ4:  LZ4Codec{},
}

// CodecFor returns the built-in Codec registered for algo.
func CodecFor(algo format.Algorithm) (Codec, error) {
	if codec, ok := builtinCodecs[algo]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("wrapped: %w: %s", errs.ErrUnsupportedAlgorithm, algo)
}

// NoOpCodec bypasses compression and returns the input unchanged. Used
// for the format.AlgNone algorithm byte, and as a baseline for comparing
// the other codecs.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

func (NoOpCodec) Compress(data []byte) ([]byte, error) { return data, nil }

func (NoOpCodec) Decompress(data []byte) ([]byte, error) { return data, nil }

// S2Codec wraps klauspost/compress/s2, a Snappy-compatible codec tuned
// for high throughput; used for payloads where CPU cost matters more
// than compression ratio.
type S2Codec struct{}

var _ Codec = S2Codec{}

func (S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

func (S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	out, err := s2.Decode(nil, data)
	if err != nil {
		return nil, codecErr(format.AlgS2, "decompress", err)
	}

	return out, nil
}
