package meta

import (
	"github.com/nickspiker/vsf-sub001/errs"
	"github.com/nickspiker/vsf-sub001/format"
)

// WorldCoord is a 64-bit Dymaxion icosahedral encoding of a (latitude,
// longitude) pair. The codec treats it as an opaque 8-byte value; the
// Dymaxion projection math itself is outside the core codec's scope.
type WorldCoord struct {
	Raw [8]byte
}

func NewWorldCoord(raw [8]byte) WorldCoord { return WorldCoord{Raw: raw} }

func (w WorldCoord) Tag() format.Tag { return format.TagWorldCoord }

func (w WorldCoord) AppendTo(buf []byte) []byte {
	buf = append(buf, byte(format.TagWorldCoord))

	return append(buf, w.Raw[:]...)
}

// DecodeWorldCoord decodes the 8 raw bytes following a 'w' tag. There is
// no size marker: the width is fixed.
func DecodeWorldCoord(data []byte) (WorldCoord, int, error) {
	if len(data) < 8 {
		return WorldCoord{}, 0, errs.ErrUnexpectedEOF
	}
	var w WorldCoord
	copy(w.Raw[:], data[:8])

	return w, 8, nil
}
