package value

import (
	"math"

	"github.com/nickspiker/vsf-sub001/errs"
	"github.com/nickspiker/vsf-sub001/format"
	"github.com/nickspiker/vsf-sub001/numcodec"
)

// Unsigned is an unsigned integer primitive at a declared width (8, 16,
// 32, or 64 bits) or the narrowest width fitting the value when Width is
// 0 ("auto"). The value is held as a uint64, so values wider than 64 bits
// are not representable; NewUnsigned rejects a 16-byte width.
type Unsigned struct {
	V     uint64
	Width int // byte width: 1, 2, 4, 8, or 0 for auto (narrowest)
}

// NewUnsigned constructs an Unsigned at an explicit byte width. Pass
// width 0 to let the encoder choose the narrowest width that fits v.
func NewUnsigned(v uint64, width int) (Unsigned, error) {
	switch width {
	case 0, 1, 2, 4, 8:
	default:
		return Unsigned{}, errs.ErrValueOutOfRange
	}
	if width != 0 {
		max := numcodec.MaxUnsigned(width)
		if !max.IsUint64() || v > max.Uint64() {
			return Unsigned{}, errs.ErrValueOutOfRange
		}
	}

	return Unsigned{V: v, Width: width}, nil
}

func (u Unsigned) Tag() format.Tag { return format.TagUnsigned }

func (u Unsigned) AppendTo(buf []byte) []byte {
	buf = append(buf, byte(format.TagUnsigned))
	if u.Width == 0 {
		return numcodec.AppendUint(buf, u.V)
	}

	return numcodec.AppendUintWidth(buf, u.V, u.Width)
}

// DecodeUnsignedOrBool decodes the byte(s) following a 'u' tag. If the
// next byte is a valid size-marker digit the value decodes as a normal
// Unsigned; otherwise, per the VSF boolean short form, that single byte
// is the literal boolean value (0x00 or 0xFF) and no further bytes are
// consumed.
func DecodeUnsignedOrBool(data []byte) (Value, int, error) {
	if len(data) < 1 {
		return nil, 0, errs.ErrUnexpectedEOF
	}

	if format.Marker(data[0]).Width() == 0 {
		// Not a recognized size marker: bare boolean short form.
		return Bool{V: data[0] != 0x00}, 1, nil
	}

	v, consumed, err := numcodec.DecodeUint(data)
	if err != nil {
		return nil, 0, err
	}

	return Unsigned{V: v, Width: consumed - 1}, consumed, nil
}

// Bool is the degenerate unsigned short form: a single byte, 0x00 or
// 0xFF, immediately following the 'u' tag with no size marker.
type Bool struct {
	V bool
}

func NewBool(v bool) Bool { return Bool{V: v} }

func (b Bool) Tag() format.Tag { return format.TagUnsigned }

func (b Bool) AppendTo(buf []byte) []byte {
	buf = append(buf, byte(format.TagUnsigned))
	if b.V {
		return append(buf, 0xFF)
	}

	return append(buf, 0x00)
}

// Signed is a signed two's-complement integer primitive.
type Signed struct {
	V     int64
	Width int // byte width: 1, 2, 4, 8, or 0 for auto (narrowest)
}

func NewSigned(v int64, width int) (Signed, error) {
	switch width {
	case 0, 1, 2, 4, 8:
	default:
		return Signed{}, errs.ErrValueOutOfRange
	}

	return Signed{V: v, Width: width}, nil
}

func (s Signed) Tag() format.Tag { return format.TagSigned }

func (s Signed) AppendTo(buf []byte) []byte {
	buf = append(buf, byte(format.TagSigned))
	if s.Width == 0 {
		return numcodec.AppendInt(buf, s.V)
	}

	return numcodec.AppendIntWidth(buf, s.V, s.Width)
}

// DecodeSigned decodes the bytes following an 'i' tag.
func DecodeSigned(data []byte) (Signed, int, error) {
	v, consumed, err := numcodec.DecodeInt(data)
	if err != nil {
		return Signed{}, 0, err
	}

	return Signed{V: v, Width: consumed - 1}, consumed, nil
}

// Float is an IEEE-754 float primitive at 32 or 64 bits.
type Float struct {
	V     float64
	Width int // 4 or 8
}

func NewFloat32(v float32) Float { return Float{V: float64(v), Width: 4} }
func NewFloat64(v float64) Float { return Float{V: v, Width: 8} }

func (f Float) Tag() format.Tag { return format.TagFloat }

func (f Float) AppendTo(buf []byte) []byte {
	buf = append(buf, byte(format.TagFloat))

	return appendFloatBits(buf, f.V, f.Width)
}

func appendFloatBits(buf []byte, v float64, width int) []byte {
	switch width {
	case 4:
		return numcodec.AppendUintWidth(buf, uint64(math.Float32bits(float32(v))), 4)
	default:
		return numcodec.AppendUintWidth(buf, math.Float64bits(v), 8)
	}
}

// DecodeFloat decodes the bytes following an 'f' tag.
func DecodeFloat(data []byte) (Float, int, error) {
	bits, consumed, err := numcodec.DecodeUint(data)
	if err != nil {
		return Float{}, 0, err
	}

	width := consumed - 1
	if width == 4 {
		return Float{V: float64(math.Float32frombits(uint32(bits))), Width: 4}, consumed, nil
	}

	return Float{V: math.Float64frombits(bits), Width: 8}, consumed, nil
}

// Complex is a complex number: two floats of the same width concatenated,
// sharing one size marker.
type Complex struct {
	Real, Imag float64
	Width      int // 4 or 8
}

func NewComplex64(re, im float32) Complex {
	return Complex{Real: float64(re), Imag: float64(im), Width: 4}
}

func NewComplex128(re, im float64) Complex {
	return Complex{Real: re, Imag: im, Width: 8}
}

func (c Complex) Tag() format.Tag { return format.TagComplex }

func (c Complex) AppendTo(buf []byte) []byte {
	buf = append(buf, byte(format.TagComplex))
	marker := format.MarkerForWidth(c.Width)
	buf = append(buf, byte(marker))
	buf = appendRawFloat(buf, c.Real, c.Width)
	buf = appendRawFloat(buf, c.Imag, c.Width)

	return buf
}

func appendRawFloat(buf []byte, v float64, width int) []byte {
	if width == 4 {
		bits := math.Float32bits(float32(v))

		return append(buf, byte(bits>>24), byte(bits>>16), byte(bits>>8), byte(bits))
	}
	bits := math.Float64bits(v)

	return append(buf,
		byte(bits>>56), byte(bits>>48), byte(bits>>40), byte(bits>>32),
		byte(bits>>24), byte(bits>>16), byte(bits>>8), byte(bits))
}

// DecodeComplex decodes the bytes following a 'j' tag.
func DecodeComplex(data []byte) (Complex, int, error) {
	if len(data) < 1 {
		return Complex{}, 0, errs.ErrUnexpectedEOF
	}
	width := format.Marker(data[0]).Width()
	if width != 4 && width != 8 {
		return Complex{}, 0, errs.ErrInvalidSizeMarker
	}
	need := 1 + 2*width
	if len(data) < need {
		return Complex{}, 0, errs.ErrUnexpectedEOF
	}

	re := decodeRawFloat(data[1:1+width], width)
	im := decodeRawFloat(data[1+width:1+2*width], width)

	return Complex{Real: re, Imag: im, Width: width}, need, nil
}

func decodeRawFloat(b []byte, width int) float64 {
	if width == 4 {
		bits := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])

		return float64(math.Float32frombits(bits))
	}
	bits := uint64(b[0])<<56 | uint64(b[1])<<48 | uint64(b[2])<<40 | uint64(b[3])<<32 |
		uint64(b[4])<<24 | uint64(b[5])<<16 | uint64(b[6])<<8 | uint64(b[7])

	return math.Float64frombits(bits)
}
