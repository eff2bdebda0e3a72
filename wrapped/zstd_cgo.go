//go:build nobuild

package wrapped

import (
	"github.com/valyala/gozstd"

	"github.com/nickspiker/vsf-sub001/format"
)

// Alternate cgo-backed zstd path, never built by default (see the
// nobuild tag): kept available for a deployment willing to trade the
// pure-Go build for gozstd's lower per-call latency.
func (ZstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

func (ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	out, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, codecErr(format.AlgZstd, "decompress", err)
	}

	return out, nil
}
