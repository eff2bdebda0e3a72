package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitPacked4x4_8bit(t *testing.T) {
	samples := make([]uint64, 16)
	for i := range samples {
		samples[i] = uint64(i)
	}
	bp, err := NewBitPacked(8, []int{4, 4}, samples)
	require.NoError(t, err)

	buf := bp.AppendTo(nil)
	expected := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F}
	// buf = 'p' + shape-count + depth + shape[0] + shape[1] + data
	assert.Equal(t, expected, buf[len(buf)-len(expected):])
}

func TestBitPacked1x1_12bit(t *testing.T) {
	bp, err := NewBitPacked(12, []int{1}, []uint64{0x800})
	require.NoError(t, err)

	buf := bp.AppendTo(nil)
	assert.Equal(t, []byte{0x80, 0x00}, buf[len(buf)-2:])
}

func TestBitPackedRoundTripSweep(t *testing.T) {
	depths := []int{1, 4, 7, 8, 12, 16, 33, 64, 128, 255, 256}
	for _, depth := range depths {
		n := 6
		samples := make([]uint64, n)
		for i := range samples {
			if depth < 64 {
				samples[i] = uint64(i) & (uint64(1)<<uint(depth) - 1)
			} else {
				samples[i] = uint64(i) * 0x1111
			}
		}
		bp, err := NewBitPacked(depth, []int{2, 3}, samples)
		require.NoError(t, err, "depth=%d", depth)

		buf := bp.AppendTo(nil)
		got, consumed, err := DecodeBitPacked(buf[1:])
		require.NoError(t, err, "depth=%d", depth)
		assert.Equal(t, len(buf)-1, consumed)
		assert.Equal(t, depth, got.BitDepth)
		assert.Equal(t, []int{2, 3}, got.Shape)
		assert.Equal(t, samples, got.Samples, "depth=%d", depth)
		assert.Equal(t, bp.PackedLen(), got.PackedLen())
	}
}

func TestBitPackedSampleOutOfRange(t *testing.T) {
	_, err := NewBitPacked(4, []int{1}, []uint64{16})
	require.Error(t, err)
}

func TestBitPackedPackedByteCount(t *testing.T) {
	bp, err := NewBitPacked(3, []int{5}, []uint64{1, 2, 3, 4, 5})
	require.NoError(t, err)
	// 5 samples * 3 bits = 15 bits -> ceil(15/8) = 2 bytes
	assert.Equal(t, 2, bp.PackedLen())
}
