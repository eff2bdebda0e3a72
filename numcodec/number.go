// Package numcodec implements the VSF variable-length number encoding: a
// one-byte size marker ('3','4','5','6','7' for 1/2/4/8/16 raw bytes)
// followed by a big-endian value, plus the "inclusive" variant used for
// self-referential length fields (see AppendInclusive/DecodeInclusive in
// inclusive.go).
//
// The package always picks the narrowest width that holds the value. It
// supports widths up to 16 bytes (128 bits) via math/big so that the
// 128-bit integer primitives required by the data model can round-trip
// without precision loss; callers working with plain uint64/int64 use the
// non-Big helpers and never touch math/big directly.
package numcodec

import (
	"math/big"

	"github.com/nickspiker/vsf-sub001/errs"
	"github.com/nickspiker/vsf-sub001/format"
)

// Widths is the ordered list of supported byte widths, narrowest first.
var Widths = [5]int{1, 2, 4, 8, 16}

var maxUnsignedByWidth = func() map[int]*big.Int {
	m := make(map[int]*big.Int, len(Widths))
	for _, w := range Widths {
		max := new(big.Int).Lsh(big.NewInt(1), uint(w*8))
		max.Sub(max, big.NewInt(1))
		m[w] = max
	}

	return m
}()

// MaxUnsigned returns 2^(width*8)-1, or nil if width isn't supported.
func MaxUnsigned(width int) *big.Int {
	return maxUnsignedByWidth[width]
}

// NarrowestUnsignedWidth returns the smallest supported width that can hold
// v as an unsigned magnitude.
func NarrowestUnsignedWidth(v *big.Int) (int, error) {
	for _, w := range Widths {
		if v.Cmp(maxUnsignedByWidth[w]) <= 0 {
			return w, nil
		}
	}

	return 0, errs.ErrValueOutOfRange
}

// AppendUint appends value as an unsigned number at its narrowest width:
// one marker byte followed by a big-endian value of that width.
func AppendUint(buf []byte, v uint64) []byte {
	w := narrowestUintWidth(v)

	return AppendUintWidth(buf, v, w)
}

// narrowestUintWidth returns the smallest of {1,2,4,8} holding v.
func narrowestUintWidth(v uint64) int {
	switch {
	case v <= 0xFF:
		return 1
	case v <= 0xFFFF:
		return 2
	case v <= 0xFFFFFFFF:
		return 4
	default:
		return 8
	}
}

// AppendUintWidth appends value as an unsigned number at an explicit width
// (1, 2, 4, or 8 bytes). Use AppendUintBig for 16-byte (128-bit) values.
func AppendUintWidth(buf []byte, v uint64, width int) []byte {
	marker := format.MarkerForWidth(width)
	buf = append(buf, byte(marker))

	switch width {
	case 1:
		return append(buf, byte(v))
	case 2:
		return append(buf, byte(v>>8), byte(v))
	case 4:
		return append(buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	case 8:
		return append(buf,
			byte(v>>56), byte(v>>48), byte(v>>40), byte(v>>32),
			byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	default:
		big128 := new(big.Int).SetUint64(v)
		return AppendUintBig(buf[:len(buf)-1], big128, width)
	}
}

// AppendUintBig appends value as an unsigned number at the given width
// (any of 1,2,4,8,16 bytes), using a big.Int magnitude so 128-bit values
// are representable.
func AppendUintBig(buf []byte, v *big.Int, width int) []byte {
	marker := format.MarkerForWidth(width)
	buf = append(buf, byte(marker))

	start := len(buf)
	buf = append(buf, make([]byte, width)...)
	v.FillBytes(buf[start : start+width])

	return buf
}

// DecodeUint reads a marker byte followed by its big-endian value and
// returns it as a uint64. Returns ErrValueOutOfRange if the encoded width
// is 16 bytes and the value doesn't fit in 64 bits.
func DecodeUint(data []byte) (uint64, int, error) {
	v, consumed, err := DecodeUintBig(data)
	if err != nil {
		return 0, 0, err
	}
	if !v.IsUint64() {
		return 0, 0, errs.ErrValueOutOfRange
	}

	return v.Uint64(), consumed, nil
}

// DecodeUintBig reads a marker byte followed by its big-endian value and
// returns it as a math/big.Int magnitude, to support 128-bit values.
func DecodeUintBig(data []byte) (*big.Int, int, error) {
	if len(data) < 1 {
		return nil, 0, errs.ErrUnexpectedEOF
	}

	width := format.Marker(data[0]).Width()
	if width == 0 {
		return nil, 0, errs.ErrInvalidSizeMarker
	}
	if len(data) < 1+width {
		return nil, 0, errs.ErrUnexpectedEOF
	}

	v := new(big.Int).SetBytes(data[1 : 1+width])

	return v, 1 + width, nil
}

// AppendInt appends value as a signed number at its narrowest two's
// complement width.
func AppendInt(buf []byte, v int64) []byte {
	w := narrowestIntWidth(v)

	return AppendIntWidth(buf, v, w)
}

func narrowestIntWidth(v int64) int {
	switch {
	case v >= -0x80 && v <= 0x7F:
		return 1
	case v >= -0x8000 && v <= 0x7FFF:
		return 2
	case v >= -0x80000000 && v <= 0x7FFFFFFF:
		return 4
	default:
		return 8
	}
}

// AppendIntWidth appends value as a signed two's-complement number at an
// explicit width (1, 2, 4, or 8 bytes).
func AppendIntWidth(buf []byte, v int64, width int) []byte {
	return AppendUintWidth(buf, uint64(v), width)
}

// AppendIntBig appends value as a signed two's-complement number at the
// given width (any of 1,2,4,8,16 bytes).
func AppendIntBig(buf []byte, v *big.Int, width int) []byte {
	u := twosComplementEncode(v, width)

	return AppendUintBig(buf, u, width)
}

// DecodeInt reads a marker byte followed by its big-endian two's-complement
// value and returns it as an int64.
func DecodeInt(data []byte) (int64, int, error) {
	v, consumed, err := DecodeIntBig(data)
	if err != nil {
		return 0, 0, err
	}
	if !v.IsInt64() {
		return 0, 0, errs.ErrValueOutOfRange
	}

	return v.Int64(), consumed, nil
}

// DecodeIntBig reads a marker byte followed by its big-endian
// two's-complement value and returns it as a math/big.Int.
func DecodeIntBig(data []byte) (*big.Int, int, error) {
	if len(data) < 1 {
		return nil, 0, errs.ErrUnexpectedEOF
	}

	width := format.Marker(data[0]).Width()
	if width == 0 {
		return nil, 0, errs.ErrInvalidSizeMarker
	}
	if len(data) < 1+width {
		return nil, 0, errs.ErrUnexpectedEOF
	}

	u := new(big.Int).SetBytes(data[1 : 1+width])
	v := twosComplementDecode(u, width)

	return v, 1 + width, nil
}

// twosComplementEncode maps a signed magnitude to its unsigned two's
// complement representation at the given byte width.
func twosComplementEncode(v *big.Int, width int) *big.Int {
	if v.Sign() >= 0 {
		return new(big.Int).Set(v)
	}

	mod := new(big.Int).Lsh(big.NewInt(1), uint(width*8))

	return new(big.Int).Add(mod, v)
}

// twosComplementDecode maps an unsigned two's complement representation
// back to its signed value at the given byte width.
func twosComplementDecode(u *big.Int, width int) *big.Int {
	signBit := new(big.Int).Lsh(big.NewInt(1), uint(width*8-1))
	if u.Cmp(signBit) < 0 {
		return new(big.Int).Set(u)
	}

	mod := new(big.Int).Lsh(big.NewInt(1), uint(width*8))

	return new(big.Int).Sub(u, mod)
}
