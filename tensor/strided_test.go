package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStridedRoundTrip(t *testing.T) {
	data := make([]byte, 6)
	for i := range data {
		data[i] = byte(i)
	}
	st, err := NewStrided([]int{2, 3}, []int{3, 1}, U8, data)
	require.NoError(t, err)
	assert.True(t, st.IsContiguous())

	buf := st.AppendTo(nil)
	got, consumed, err := DecodeStrided(buf[1:])
	require.NoError(t, err)
	assert.Equal(t, len(buf)-1, consumed)
	assert.Equal(t, st.Shape, got.Shape)
	assert.Equal(t, st.Stride, got.Stride)
	assert.Equal(t, st.Data, got.Data)
}

func TestStridedNonContiguous(t *testing.T) {
	// Column-major view of a 2x3 matrix: stride = [1, 2].
	data := make([]byte, 6)
	st, err := NewStrided([]int{2, 3}, []int{1, 2}, U8, data)
	require.NoError(t, err)
	assert.False(t, st.IsContiguous())
}

func TestStridedMismatchedArity(t *testing.T) {
	_, err := NewStrided([]int{2, 3}, []int{1}, U8, make([]byte, 6))
	require.Error(t, err)
}
