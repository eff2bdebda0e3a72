package wrapped

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/nickspiker/vsf-sub001/format"
)

// lz4CompressorPool pools lz4.Compressor instances; they carry internal
// state that benefits from reuse across calls.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Codec wraps pierrec/lz4/v4 block compression.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

func (LZ4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, codecErr(format.AlgLZ4, "compress", err)
	}

	return dst[:n], nil
}

// Decompress grows its scratch buffer geometrically since LZ4 blocks
// don't carry the decompressed size, bounded at maxDecompressBufferSize
// to avoid runaway allocation on corrupt input.
func (LZ4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bufSize := len(data) * 4

	for bufSize <= maxDecompressBufferSize {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxDecompressBufferSize {
				bufSize *= 2
				continue
			}

			return nil, codecErr(format.AlgLZ4, "decompress", err)
		}

		return buf[:n], nil
	}

	return nil, codecErr(format.AlgLZ4, "decompress", lz4.ErrInvalidSourceShortBuffer)
}
