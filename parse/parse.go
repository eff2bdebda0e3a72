// Package parse implements the top-level type dispatcher: given the next
// byte of a wire stream, it switches on the type tag, advances past
// however many bytes that type's own decoder consumes, and returns the
// resulting value.Value plus the total bytes consumed (tag included).
//
// This is the one place in the module that knows about every concrete
// wire type; every sub-package (value, tensor, meta, colour, wrapped)
// decodes its own body without needing to know about the others, so
// adding a new tag here never forces a change anywhere else.
package parse

import (
	"github.com/nickspiker/vsf-sub001/colour"
	"github.com/nickspiker/vsf-sub001/errs"
	"github.com/nickspiker/vsf-sub001/format"
	"github.com/nickspiker/vsf-sub001/meta"
	"github.com/nickspiker/vsf-sub001/tensor"
	"github.com/nickspiker/vsf-sub001/value"
	"github.com/nickspiker/vsf-sub001/wrapped"
)

// Peek returns the type tag of the next value without consuming any
// bytes, letting a caller iterating over a section's fields decide
// whether to decode a value at all before paying for it.
func Peek(data []byte) (format.Tag, error) {
	if len(data) < 1 {
		return 0, errs.ErrUnexpectedEOF
	}

	return format.Tag(data[0]), nil
}

// Decode reads one value.Value starting at data[0] (the type tag) and
// returns it along with the number of bytes consumed, tag included.
func Decode(data []byte) (value.Value, int, error) {
	if len(data) < 1 {
		return nil, 0, errs.ErrUnexpectedEOF
	}
	tag := format.Tag(data[0])
	rest := data[1:]

	switch tag {
	case format.TagUnsigned:
		v, n, err := value.DecodeUnsignedOrBool(rest)

		return v, 1 + n, err

	case format.TagSigned:
		v, n, err := value.DecodeSigned(rest)

		return v, 1 + n, err

	case format.TagFloat:
		v, n, err := value.DecodeFloat(rest)

		return v, 1 + n, err

	case format.TagComplex:
		v, n, err := value.DecodeComplex(rest)

		return v, 1 + n, err

	case format.TagBitPacked:
		v, n, err := tensor.DecodeBitPacked(rest)

		return v, 1 + n, err

	case format.TagTensor:
		v, n, err := tensor.DecodeTensor(rest)

		return v, 1 + n, err

	case format.TagStrided:
		v, n, err := tensor.DecodeStrided(rest)

		return v, 1 + n, err

	case format.TagString:
		v, n, err := meta.DecodeString(rest, meta.DefaultCodec)

		return v, 1 + n, err

	case format.TagDtypeName:
		v, n, err := meta.DecodeDtypeName(rest)

		return v, 1 + n, err

	case format.TagLabel:
		v, n, err := meta.DecodeLabel(rest)

		return v, 1 + n, err

	case format.TagEagleTime:
		v, n, err := meta.DecodeEagleTime(rest)

		return v, 1 + n, err

	case format.TagWorldCoord:
		v, n, err := meta.DecodeWorldCoord(rest)

		return v, 1 + n, err

	case format.TagOffset:
		v, n, err := meta.DecodeOffset(rest)

		return v, 1 + n, err

	case format.TagLength:
		// Plain (non-inclusive) context. The one inclusive-mode Length
		// field, the header's own length field, is decoded directly by
		// container.decodeHeader rather than through this dispatcher.
		v, n, err := meta.DecodeLength(rest)

		return v, 1 + n, err

	case format.TagCount:
		v, n, err := meta.DecodeCount(rest)

		return v, 1 + n, err

	case format.TagVersion:
		v, n, err := meta.DecodeVersion(rest)

		return v, 1 + n, err

	case format.TagBackwardVer:
		v, n, err := meta.DecodeBackwardVersion(rest)

		return v, 1 + n, err

	case format.TagMarkerDef:
		v, n, err := meta.DecodeMarkerDef(rest)

		return v, 1 + n, err

	case format.TagMarkerRef:
		v, n, err := meta.DecodeMarkerRef(rest)

		return v, 1 + n, err

	case format.TagHash:
		v, n, err := meta.DecodeHash(rest)

		return v, 1 + n, err

	case format.TagSignature:
		v, n, err := meta.DecodeSignature(rest)

		return v, 1 + n, err

	case format.TagKey:
		v, n, err := meta.DecodeKey(rest)

		return v, 1 + n, err

	case format.TagMAC:
		v, n, err := meta.DecodeMAC(rest)

		return v, 1 + n, err

	case format.TagWrapped:
		v, n, err := wrapped.Decode(rest)

		return v, 1 + n, err

	case format.TagColour:
		v, n, err := colour.Decode(rest)

		return v, 1 + n, err

	case format.TagFixedPoint:
		v, n, err := value.DecodeFixedPoint(rest)

		return v, 1 + n, err

	case format.TagFixedPointCircle:
		v, n, err := value.DecodeFixedPointCircle(rest)

		return v, 1 + n, err

	default:
		return nil, 0, errs.ErrInvalidTypeMarker
	}
}
