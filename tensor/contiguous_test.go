package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTensorRoundTrip(t *testing.T) {
	data := []byte{1, 0, 2, 0, 3, 0, 4, 0, 5, 0, 6, 0}
	tn, err := NewTensor([]int{2, 3}, U16, data)
	require.NoError(t, err)

	buf := tn.AppendTo(nil)
	got, consumed, err := DecodeTensor(buf[1:])
	require.NoError(t, err)
	assert.Equal(t, len(buf)-1, consumed)
	assert.Equal(t, tn.Shape, got.Shape)
	assert.Equal(t, tn.Elem, got.Elem)
	assert.Equal(t, tn.Data, got.Data)
}

func TestTensorElementCountMismatch(t *testing.T) {
	_, err := NewTensor([]int{2, 3}, U8, make([]byte, 5))
	require.Error(t, err)
}

func TestTensorRowMajorStride(t *testing.T) {
	tn := Tensor{Shape: []int{2, 3, 4}}
	assert.Equal(t, []int{12, 4, 1}, tn.RowMajorStride())
}
