package numcodec

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendDecodeUintRoundTrip(t *testing.T) {
	tests := []uint64{0, 1, 0xFF, 0x100, 0xFFFF, 0x10000, 0xFFFFFFFF, 0x100000000, ^uint64(0)}
	for _, v := range tests {
		buf := AppendUint(nil, v)
		got, consumed, err := DecodeUint(buf)
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Equal(t, len(buf), consumed)
	}
}

func TestAppendUintNarrowestWidth(t *testing.T) {
	assert.Equal(t, byte('3'), AppendUint(nil, 0)[0])
	assert.Equal(t, byte('3'), AppendUint(nil, 0xFF)[0])
	assert.Equal(t, byte('4'), AppendUint(nil, 0x100)[0])
	assert.Equal(t, byte('4'), AppendUint(nil, 0xFFFF)[0])
	assert.Equal(t, byte('5'), AppendUint(nil, 0x10000)[0])
	assert.Equal(t, byte('6'), AppendUint(nil, 0x100000000)[0])
}

func TestAppendDecodeUintBig128(t *testing.T) {
	v := new(big.Int).Lsh(big.NewInt(1), 100)
	buf := AppendUintBig(nil, v, 16)
	got, consumed, err := DecodeUintBig(buf)
	require.NoError(t, err)
	assert.Equal(t, 0, v.Cmp(got))
	assert.Equal(t, 17, consumed)
}

func TestAppendDecodeIntRoundTrip(t *testing.T) {
	tests := []int64{0, -1, 127, -128, 128, -129, 32767, -32768, 1 << 40, -(1 << 40)}
	for _, v := range tests {
		buf := AppendInt(nil, v)
		got, consumed, err := DecodeInt(buf)
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Equal(t, len(buf), consumed)
	}
}

func TestDecodeUintInvalidMarker(t *testing.T) {
	_, _, err := DecodeUint([]byte{'x', 0})
	require.Error(t, err)
}

func TestDecodeUintShortInput(t *testing.T) {
	_, _, err := DecodeUint([]byte{'5', 0, 0})
	require.Error(t, err)
}
