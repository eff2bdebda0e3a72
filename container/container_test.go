package container

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nickspiker/vsf-sub001/format"
	"github.com/nickspiker/vsf-sub001/integrity"
	"github.com/nickspiker/vsf-sub001/section"
	"github.com/nickspiker/vsf-sub001/value"
)

func mustUnsigned(t *testing.T, v uint64) value.Unsigned {
	t.Helper()
	u, err := value.NewUnsigned(v, 0)
	require.NoError(t, err)

	return u
}

// scenario 1: a single "metadata" section with width/height fields.
func TestBuildMinimalScenario(t *testing.T) {
	s, err := section.New("metadata")
	require.NoError(t, err)
	require.NoError(t, s.AddField("width", mustUnsigned(t, 1920)))
	require.NoError(t, s.AddField("height", mustUnsigned(t, 1080)))

	b, err := NewBuilder()
	require.NoError(t, err)
	require.NoError(t, b.AddSection(s))

	file, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, []byte{0x52, 0xC3, 0x85, 0x3C}, file[:4])

	f, err := Open(file)
	require.NoError(t, err)
	require.Len(t, f.Labels(), 1)
	assert.Equal(t, "metadata", f.Labels()[0].Name)

	assert.NoError(t, f.Verify(integrity.BLAKE3Hasher{}))
	assert.NoError(t, Verify(file, integrity.BLAKE3Hasher{}))

	got, err := f.Section("metadata")
	require.NoError(t, err)
	assert.Equal(t, "metadata", got.Name)
	require.Len(t, got.Fields, 2)
}

// scenario 2: an unboxed blob appended after the structured section.
func TestBuildUnboxedBlobScenario(t *testing.T) {
	s, err := section.New("metadata")
	require.NoError(t, err)
	require.NoError(t, s.AddField("width", mustUnsigned(t, 1920)))

	b, err := NewBuilder()
	require.NoError(t, err)
	require.NoError(t, b.AddSection(s))

	pixels := bytes.Repeat([]byte{0xFF}, 1024)
	require.NoError(t, b.AddUnboxedBlob("pixels", pixels))

	file, err := b.Build()
	require.NoError(t, err)

	f, err := Open(file)
	require.NoError(t, err)

	assert.Equal(t, pixels, file[len(file)-1024:])

	raw, err := f.Raw("pixels")
	require.NoError(t, err)
	assert.Equal(t, pixels, raw)

	for _, l := range f.Labels() {
		if l.Name == "pixels" {
			assert.Equal(t, uint64(1024), l.Size)
			assert.Equal(t, file[l.Offset:l.Offset+l.Size], pixels)
		}
	}
}

// scenario 6: two sections, second section's offset settles to the end
// of the first.
func TestBuildTwoSectionsOffsetsSettle(t *testing.T) {
	s1, err := section.New("section1")
	require.NoError(t, err)
	u1, err := value.NewUnsigned(1, 1)
	require.NoError(t, err)
	require.NoError(t, s1.AddField("a", u1))

	s2, err := section.New("section2")
	require.NoError(t, err)
	u2, err := value.NewUnsigned(2, 1)
	require.NoError(t, err)
	require.NoError(t, s2.AddField("b", u2))

	b, err := NewBuilder()
	require.NoError(t, err)
	require.NoError(t, b.AddSection(s1))
	require.NoError(t, b.AddSection(s2))

	file, err := b.Build()
	require.NoError(t, err)

	f, err := Open(file)
	require.NoError(t, err)
	labels := f.Labels()
	require.Len(t, labels, 2)
	assert.Equal(t, labels[0].Offset+labels[0].Size, labels[1].Offset)

	encoded1, err := s1.Encode()
	require.NoError(t, err)
	assert.Equal(t, uint64(len(encoded1)), labels[0].Size)
}

func TestVerifyDetectsTamper(t *testing.T) {
	s, err := section.New("metadata")
	require.NoError(t, err)
	require.NoError(t, s.AddField("width", mustUnsigned(t, 1920)))

	b, err := NewBuilder()
	require.NoError(t, err)
	require.NoError(t, b.AddSection(s))

	file, err := b.Build()
	require.NoError(t, err)

	tampered := append([]byte(nil), file...)
	tampered[len(tampered)-1] ^= 0xFF

	assert.Error(t, Verify(tampered, integrity.BLAKE3Hasher{}))
}

func TestBuilderAddSectionHash(t *testing.T) {
	s, err := section.New("metadata")
	require.NoError(t, err)
	require.NoError(t, s.AddField("width", mustUnsigned(t, 1920)))

	b, err := NewBuilder()
	require.NoError(t, err)
	require.NoError(t, b.AddSection(s))
	require.NoError(t, b.AddSectionHash("metadata", integrity.BLAKE3Hasher{}))

	file, err := b.Build()
	require.NoError(t, err)

	f, err := Open(file)
	require.NoError(t, err)
	got, err := f.Section("metadata")
	require.NoError(t, err)
	require.NotNil(t, got.Hash)
	assert.Equal(t, format.AlgBLAKE3, got.Hash.Algo)
}
