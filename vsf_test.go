package vsf

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nickspiker/vsf-sub001/integrity"
	"github.com/nickspiker/vsf-sub001/section"
	"github.com/nickspiker/vsf-sub001/value"
)

// TestBuildOpenVerifyRoundTrip exercises the top-level convenience API
// end to end: build a file with one section, open it back, and verify
// its whole-file hash.
func TestBuildOpenVerifyRoundTrip(t *testing.T) {
	b, err := NewBuilder(WithVersion(1))
	require.NoError(t, err)

	s, err := section.New("metadata")
	require.NoError(t, err)
	width, err := value.NewUnsigned(1920, 0)
	require.NoError(t, err)
	require.NoError(t, s.AddField("width", width))
	require.NoError(t, b.AddSection(s))

	data, err := b.Build()
	require.NoError(t, err)

	f, err := Open(data)
	require.NoError(t, err)
	require.Equal(t, uint64(1), f.Version())
	require.NoError(t, f.Verify(integrity.BLAKE3Hasher{}))
	require.NoError(t, Verify(data, integrity.BLAKE3Hasher{}))

	got, err := f.Section("metadata")
	require.NoError(t, err)
	require.Equal(t, "metadata", got.Name)
}
