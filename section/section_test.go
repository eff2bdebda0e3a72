package section_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nickspiker/vsf-sub001/numcodec"
	"github.com/nickspiker/vsf-sub001/parse"
	"github.com/nickspiker/vsf-sub001/section"
	"github.com/nickspiker/vsf-sub001/value"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	s, err := section.New("metadata")
	require.NoError(t, err)

	width, err := value.NewUnsigned(1920, 0)
	require.NoError(t, err)
	require.NoError(t, s.AddField("width", width))
	require.NoError(t, s.AddField("ready", value.NewBool(true)))

	wire, err := s.Encode()
	require.NoError(t, err)

	got, n, err := section.Decode(wire, parse.Decode)
	require.NoError(t, err)
	assert.Equal(t, len(wire), n)
	assert.Equal(t, "metadata", got.Name)
	require.Len(t, got.Fields, 2)
	assert.Equal(t, "width", got.Fields[0].Name)
	assert.Equal(t, "ready", got.Fields[1].Name)
}

// TestPreambleSizeFieldIsPlain locks in that the preamble's size-in-bits
// field is plain-mode, not inclusive-mode: decoding it with the plain
// varint reader must recover exactly the bit count of the whole
// preamble+body span.
func TestPreambleSizeFieldIsPlain(t *testing.T) {
	s, err := section.New("metadata")
	require.NoError(t, err)
	width, err := value.NewUnsigned(1920, 0)
	require.NoError(t, err)
	require.NoError(t, s.AddField("width", width))

	wire, err := s.Encode()
	require.NoError(t, err)

	// Walk past tag('{'), count('n'+varint) to reach the 'b' tag.
	pos := 1
	_, n, err := numcodec.DecodeUint(wire[pos+1:])
	require.NoError(t, err)
	pos += 1 + n // skip tag('n') + count varint
	require.Equal(t, byte('b'), wire[pos])
	pos++

	gotBits, n, err := numcodec.DecodeUint(wire[pos:])
	require.NoError(t, err)
	assert.Equal(t, uint64(len(wire))*8, gotBits)
}

func TestEncodeWithoutHashOrSignatureDecodesNil(t *testing.T) {
	s, err := section.New("metadata")
	require.NoError(t, err)
	width, err := value.NewUnsigned(1920, 0)
	require.NoError(t, err)
	require.NoError(t, s.AddField("width", width))

	wire, err := s.Encode()
	require.NoError(t, err)

	got, _, err := section.Decode(wire, parse.Decode)
	require.NoError(t, err)
	assert.Nil(t, got.Hash)
	assert.Nil(t, got.Signature)
}
