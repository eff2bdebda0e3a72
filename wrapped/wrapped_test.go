package wrapped

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nickspiker/vsf-sub001/format"
)

func repeatable(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i % 17)
	}

	return data
}

func TestCodecsRoundTrip(t *testing.T) {
	algos := []format.Algorithm{format.AlgNone, format.AlgZstd, format.AlgS2, format.AlgLZ4}
	data := repeatable(4096)

	for _, algo := range algos {
		codec, err := CodecFor(algo)
		require.NoError(t, err, algo)

		compressed, err := codec.Compress(data)
		require.NoError(t, err, algo)

		decompressed, err := codec.Decompress(compressed)
		require.NoError(t, err, algo)

		assert.True(t, bytes.Equal(data, decompressed), "algo %s round trip", algo)
	}
}

func TestCodecForUnsupported(t *testing.T) {
	_, err := CodecFor(format.Algorithm('?'))
	assert.Error(t, err)
}

func TestValueWrapUnwrap(t *testing.T) {
	data := repeatable(1024)
	v, err := Wrap(format.AlgZstd, data)
	require.NoError(t, err)

	got, err := v.Unwrap()
	require.NoError(t, err)
	assert.True(t, bytes.Equal(data, got))
}

func TestValueAppendToAndDecode(t *testing.T) {
	v, err := Wrap(format.AlgS2, repeatable(256))
	require.NoError(t, err)

	encoded := v.AppendTo(nil)
	assert.Equal(t, byte(format.TagWrapped), encoded[0])

	decoded, consumed, err := Decode(encoded[1:])
	require.NoError(t, err)
	assert.Equal(t, v.Algo, decoded.Algo)
	assert.True(t, bytes.Equal(v.Payload, decoded.Payload))
	assert.Equal(t, len(encoded)-1, consumed)
}
