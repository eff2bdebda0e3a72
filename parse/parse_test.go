package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nickspiker/vsf-sub001/errs"
	"github.com/nickspiker/vsf-sub001/format"
	"github.com/nickspiker/vsf-sub001/meta"
	"github.com/nickspiker/vsf-sub001/value"
)

func TestDecodeRoundTripsEachTag(t *testing.T) {
	u, err := value.NewUnsigned(42, 1)
	require.NoError(t, err)

	cases := []value.Value{
		u,
		meta.NewCount(7),
		meta.NewOffset(9),
		meta.NewVersion(1),
	}
	for _, c := range cases {
		wire := c.AppendTo(nil)
		got, n, err := Decode(wire)
		require.NoError(t, err)
		assert.Equal(t, len(wire), n)
		assert.Equal(t, c.Tag(), got.Tag())
	}
}

func TestDecodeDtypeName(t *testing.T) {
	name, err := meta.NewDtypeName("temperature")
	require.NoError(t, err)
	wire := name.AppendTo(nil)

	got, n, err := Decode(wire)
	require.NoError(t, err)
	assert.Equal(t, len(wire), n)
	assert.Equal(t, name, got)
}

func TestDecodeUnknownTag(t *testing.T) {
	_, _, err := Decode([]byte{0x00})
	assert.ErrorIs(t, err, errs.ErrInvalidTypeMarker)
}

func TestDecodeEmptyInput(t *testing.T) {
	_, _, err := Decode(nil)
	assert.ErrorIs(t, err, errs.ErrUnexpectedEOF)
}

func TestPeekDoesNotConsume(t *testing.T) {
	wire := meta.NewCount(7).AppendTo(nil)

	tag, err := Peek(wire)
	require.NoError(t, err)
	assert.Equal(t, format.TagCount, tag)

	// Peek must not have altered the buffer or advanced anything; a
	// follow-up Decode over the same bytes still succeeds.
	got, n, err := Decode(wire)
	require.NoError(t, err)
	assert.Equal(t, len(wire), n)
	assert.Equal(t, format.TagCount, got.Tag())
}

func TestPeekEmptyInput(t *testing.T) {
	_, err := Peek(nil)
	assert.ErrorIs(t, err, errs.ErrUnexpectedEOF)
}
