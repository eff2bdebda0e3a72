//go:build !nobuild

package wrapped

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/nickspiker/vsf-sub001/format"
)

// zstdDecoderPool pools decoders: klauspost/compress/zstd is designed to
// run allocation-free after warmup when the decoder is reused.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("wrapped: failed to create zstd decoder: %v", err))
		}

		return decoder
	},
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			panic(fmt.Sprintf("wrapped: failed to create zstd encoder: %v", err))
		}

		return encoder
	},
}

func (ZstdCodec) Compress(data []byte) ([]byte, error) {
	encoder := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(data, nil), nil
}

func (ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	decompressed, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, codecErr(format.AlgZstd, "decompress", err)
	}

	return decompressed, nil
}
