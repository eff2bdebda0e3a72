package numcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInclusiveScenario(t *testing.T) {
	buf, err := AppendInclusive(nil, 256)
	require.NoError(t, err)
	assert.Equal(t, []byte{'4', 0x01, 0x18}, buf)

	v, consumed, err := DecodeInclusive(buf)
	require.NoError(t, err)
	assert.Equal(t, uint64(256), v)
	assert.Equal(t, 3, consumed)
}

func TestInclusiveRoundTripSweep(t *testing.T) {
	for _, v := range []uint64{0, 1, 10, 250, 253, 65000, 1 << 20, 1 << 40} {
		buf, err := AppendInclusive(nil, v)
		require.NoError(t, err)
		got, consumed, err := DecodeInclusive(buf)
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Equal(t, len(buf), consumed)
	}
}

func TestInclusiveSelfConsistent(t *testing.T) {
	// encode_inclusive(len(encode_inclusive(n))) == encode_inclusive(n) when
	// n is exactly the byte length of its own inclusive encoding (marker
	// byte plus one value byte for small n).
	buf, err := AppendInclusive(nil, 2)
	require.NoError(t, err)
	require.Equal(t, 2, len(buf))

	buf2, err := AppendInclusive(nil, uint64(len(buf)))
	require.NoError(t, err)
	assert.Equal(t, buf, buf2)
}

func TestDecodeInclusiveUnderOverheadIsInvalid(t *testing.T) {
	// width-1 raw value smaller than overheadBits(1)=16 is invalid.
	_, _, err := DecodeInclusive([]byte{'3', 5})
	require.Error(t, err)
}
