package tensor

import (
	"github.com/nickspiker/vsf-sub001/errs"
	"github.com/nickspiker/vsf-sub001/format"
)

// ElementType is the 2-byte element-type tag carried by contiguous and
// strided tensors, e.g. "u3" (unsigned, 1 byte) or "f6" (float, 8 bytes).
type ElementType struct {
	Kind        byte // 'u', 'i', or 'f'
	WidthMarker byte // one of format.Marker1..Marker16
}

// Common element types.
var (
	U8   = ElementType{'u', byte(format.Marker1)}
	U16  = ElementType{'u', byte(format.Marker2)}
	U32  = ElementType{'u', byte(format.Marker4)}
	U64  = ElementType{'u', byte(format.Marker8)}
	I8   = ElementType{'i', byte(format.Marker1)}
	I16  = ElementType{'i', byte(format.Marker2)}
	I32  = ElementType{'i', byte(format.Marker4)}
	I64  = ElementType{'i', byte(format.Marker8)}
	F32  = ElementType{'f', byte(format.Marker4)}
	F64  = ElementType{'f', byte(format.Marker8)}
)

// Width returns the element's byte width.
func (e ElementType) Width() int {
	return format.Marker(e.WidthMarker).Width()
}

func (e ElementType) valid() bool {
	switch e.Kind {
	case 'u', 'i', 'f':
	default:
		return false
	}

	return e.Width() != 0
}

func parseElementType(b []byte) (ElementType, error) {
	if len(b) < 2 {
		return ElementType{}, errs.ErrUnexpectedEOF
	}
	e := ElementType{Kind: b[0], WidthMarker: b[1]}
	if !e.valid() {
		return ElementType{}, errs.ErrInvalidData
	}

	return e, nil
}

func (e ElementType) appendTo(buf []byte) []byte {
	return append(buf, e.Kind, e.WidthMarker)
}
