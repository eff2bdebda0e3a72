package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedPointRoundTrip(t *testing.T) {
	raw := []byte{0x01, 0x02, 0x03, 0x04, 0xAA, 0xBB, 0xCC, 0xDD}
	fp, err := NewFixedPoint(4, 4, raw)
	require.NoError(t, err)
	assert.Equal(t, 8, fp.ByteWidth())

	buf := fp.AppendTo(nil)
	assert.Equal(t, byte('s'), buf[0])

	got, n, err := DecodeFixedPoint(buf[1:])
	require.NoError(t, err)
	assert.Equal(t, len(buf)-1, n)
	assert.Equal(t, fp, got)
}

func TestFixedPointCircleRoundTrip(t *testing.T) {
	raw := []byte{0x01, 0x02}
	fc, err := NewFixedPointCircle(1, 1, raw)
	require.NoError(t, err)

	buf := fc.AppendTo(nil)
	assert.Equal(t, byte('c'), buf[0])

	got, n, err := DecodeFixedPointCircle(buf[1:])
	require.NoError(t, err)
	assert.Equal(t, len(buf)-1, n)
	assert.Equal(t, fc, got)
}

func TestFixedPointInvalidWidth(t *testing.T) {
	_, err := NewFixedPoint(3, 4, make([]byte, 7))
	assert.Error(t, err)
}

func TestFixedPointWrongRawLength(t *testing.T) {
	_, err := NewFixedPoint(4, 4, make([]byte, 7))
	assert.Error(t, err)
}

func TestFixedPointTagsDoNotCollide(t *testing.T) {
	fp, _ := NewFixedPoint(1, 1, []byte{0, 0})
	fc, _ := NewFixedPointCircle(1, 1, []byte{0, 0})
	assert.NotEqual(t, fp.Tag(), fc.Tag())
}
