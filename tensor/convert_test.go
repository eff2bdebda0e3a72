package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint16RoundTrip(t *testing.T) {
	samples := []uint16{1, 256, 65535, 0}
	tn, err := NewTensorFromUint16([]int{4}, samples)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01, 0x01, 0x00, 0xFF, 0xFF, 0x00, 0x00}, tn.Data)

	got, err := tn.Uint16Samples()
	require.NoError(t, err)
	assert.Equal(t, samples, got)
}

func TestUint32RoundTrip(t *testing.T) {
	samples := []uint32{1, 1 << 20, 0xFFFFFFFF}
	tn, err := NewTensorFromUint32([]int{3}, samples)
	require.NoError(t, err)

	got, err := tn.Uint32Samples()
	require.NoError(t, err)
	assert.Equal(t, samples, got)
}

func TestUint64RoundTrip(t *testing.T) {
	samples := []uint64{1, 1 << 40, 0xFFFFFFFFFFFFFFFF}
	tn, err := NewTensorFromUint64([]int{3}, samples)
	require.NoError(t, err)

	got, err := tn.Uint64Samples()
	require.NoError(t, err)
	assert.Equal(t, samples, got)
}

func TestUint16SamplesWrongElem(t *testing.T) {
	tn, err := NewTensor([]int{1}, U8, []byte{1})
	require.NoError(t, err)
	_, err = tn.Uint16Samples()
	assert.Error(t, err)
}
