package integrity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBLAKE3HasherDeterministic(t *testing.T) {
	h := BLAKE3Hasher{}
	data := []byte("vsf container bytes")
	a := h.Sum(data)
	b := h.Sum(data)
	assert.Equal(t, a, b)
	assert.Len(t, a, 32)
}

func TestBLAKE3HasherDetectsChange(t *testing.T) {
	h := BLAKE3Hasher{}
	a := h.Sum([]byte("abc"))
	b := h.Sum([]byte("abd"))
	assert.NotEqual(t, a, b)
}

func TestEd25519SignVerify(t *testing.T) {
	s, err := NewEd25519Signer()
	require.NoError(t, err)

	data := []byte("section bytes")
	sig := s.Sign(data)
	assert.True(t, s.Verify(data, sig))
	assert.False(t, s.Verify([]byte("tampered"), sig))
}
