package colour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneralRoundTrip(t *testing.T) {
	g, err := NewGeneral(3, 3, []byte{0x80, 0x00, 0xFF})
	require.NoError(t, err)
	encoded := g.AppendTo(nil)
	decoded, consumed, err := Decode(encoded[1:])
	require.NoError(t, err)
	assert.Equal(t, g, decoded)
	assert.Equal(t, len(encoded)-1, consumed)
}

func TestNamedRoundTrip(t *testing.T) {
	n, err := NewNamed(AliasRed)
	require.NoError(t, err)
	encoded := n.AppendTo(nil)
	decoded, consumed, err := Decode(encoded[1:])
	require.NoError(t, err)
	assert.Equal(t, n, decoded)
	assert.Equal(t, 1, consumed)
}

func TestNamedRejectsUnknownAlias(t *testing.T) {
	_, err := NewNamed(Alias('Q'))
	assert.Error(t, err)
}

func TestFormatRoundTrip(t *testing.T) {
	f, err := NewFormat(AliasRGB24, []byte{255, 0, 0})
	require.NoError(t, err)
	encoded := f.AppendTo(nil)
	decoded, consumed, err := Decode(encoded[1:])
	require.NoError(t, err)
	assert.Equal(t, f, decoded)
	assert.Equal(t, 4, consumed)
}

func TestFormatRejectsWrongWidth(t *testing.T) {
	_, err := NewFormat(AliasRGB24, []byte{1, 2})
	assert.Error(t, err)
}

func TestMatrixRoundTrip(t *testing.T) {
	m, err := NewMatrix(4, 3, []float32{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
		0.1, 0.2, 0.3,
	}, 2.2)
	require.NoError(t, err)
	encoded := m.AppendTo(nil)
	decoded, consumed, err := Decode(encoded[1:])
	require.NoError(t, err)
	assert.Equal(t, m, decoded)
	assert.Equal(t, len(encoded)-1, consumed)
}

func TestPurpleViaPacked8(t *testing.T) {
	// RGB = (130, 0, 255) -> quantized (3, 0, 5) -> ((3*7)+0)*6+5 = 131 = 0x83.
	f, err := NewFormat(AliasPacked8, []byte{0x83})
	require.NoError(t, err)
	assert.Equal(t, byte(0x83), f.Data[0])
}
