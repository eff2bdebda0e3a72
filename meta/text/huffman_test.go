package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHuffmanRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"a",
		"hello world",
		"the quick brown fox jumps over the lazy dog",
		"ISO_SPEED_100",
		"!@#$%^&*()",
	}

	var codec HuffmanCodec
	for _, s := range cases {
		encoded := codec.EncodeText(s)
		decoded, consumed, err := codec.DecodeTextWithSize(encoded, len([]rune(s)))
		require.NoError(t, err, s)
		assert.Equal(t, s, decoded, s)
		assert.LessOrEqual(t, consumed, len(encoded), s)
	}
}

func TestHuffmanAllBytesHaveCodes(t *testing.T) {
	for i := 0; i < 256; i++ {
		assert.Greater(t, huffmanCodes[i].len, uint8(0), "byte %d", i)
	}
}

func TestHuffmanUnicode(t *testing.T) {
	var codec HuffmanCodec
	s := "café 日本"
	encoded := codec.EncodeText(s)
	decoded, _, err := codec.DecodeTextWithSize(encoded, len([]rune(s)))
	require.NoError(t, err)
	assert.Equal(t, s, decoded)
}
