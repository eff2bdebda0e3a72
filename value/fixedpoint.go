package value

import (
	"github.com/nickspiker/vsf-sub001/errs"
	"github.com/nickspiker/vsf-sub001/format"
)

// FixedPoint is an opaque Spirix fixed-point scalar. The source format
// offers 25 parametric types (a 5x5 grid of fraction-width x
// exponent-width choices, each width one of 1/2/4/8/16 bytes via the same
// '3'..'7' marker family the number codec uses); this port treats them
// all as one type carrying the chosen marker widths and the raw byte
// layout, since the codec only needs to know how many bytes to copy, not
// how to do fixed-point arithmetic.
type FixedPoint struct {
	FracWidth int // byte width: 1, 2, 4, 8, or 16
	ExpWidth  int // byte width: 1, 2, 4, 8, or 16
	Raw       []byte
}

// NewFixedPoint validates that raw's length matches fracWidth+expWidth.
func NewFixedPoint(fracWidth, expWidth int, raw []byte) (FixedPoint, error) {
	if format.MarkerForWidth(fracWidth) == 0 || format.MarkerForWidth(expWidth) == 0 {
		return FixedPoint{}, errs.ErrInvalidData
	}
	if len(raw) != fracWidth+expWidth {
		return FixedPoint{}, errs.ErrInvalidData
	}

	return FixedPoint{FracWidth: fracWidth, ExpWidth: expWidth, Raw: raw}, nil
}

// ByteWidth returns the total encoded payload size for this scalar.
func (f FixedPoint) ByteWidth() int { return f.FracWidth + f.ExpWidth }

func (f FixedPoint) Tag() format.Tag { return format.TagFixedPoint }

func (f FixedPoint) AppendTo(buf []byte) []byte {
	buf = append(buf, byte(f.Tag()))
	buf = append(buf, byte(format.MarkerForWidth(f.FracWidth)), byte(format.MarkerForWidth(f.ExpWidth)))

	return append(buf, f.Raw...)
}

// DecodeFixedPoint decodes the bytes following an 's' tag.
func DecodeFixedPoint(data []byte) (FixedPoint, int, error) {
	if len(data) < 2 {
		return FixedPoint{}, 0, errs.ErrUnexpectedEOF
	}
	fracWidth := format.Marker(data[0]).Width()
	expWidth := format.Marker(data[1]).Width()
	if fracWidth == 0 || expWidth == 0 {
		return FixedPoint{}, 0, errs.ErrInvalidSizeMarker
	}
	need := 2 + fracWidth + expWidth
	if len(data) < need {
		return FixedPoint{}, 0, errs.ErrUnexpectedEOF
	}

	return FixedPoint{FracWidth: fracWidth, ExpWidth: expWidth, Raw: append([]byte(nil), data[2:need]...)}, need, nil
}

// FixedPointCircle is the circular counterpart of FixedPoint: same grid
// of (fraction-width, exponent-width) choices, opaque raw payload.
type FixedPointCircle struct {
	FracWidth int
	ExpWidth  int
	Raw       []byte
}

func NewFixedPointCircle(fracWidth, expWidth int, raw []byte) (FixedPointCircle, error) {
	if format.MarkerForWidth(fracWidth) == 0 || format.MarkerForWidth(expWidth) == 0 {
		return FixedPointCircle{}, errs.ErrInvalidData
	}
	if len(raw) != fracWidth+expWidth {
		return FixedPointCircle{}, errs.ErrInvalidData
	}

	return FixedPointCircle{FracWidth: fracWidth, ExpWidth: expWidth, Raw: raw}, nil
}

func (f FixedPointCircle) ByteWidth() int { return f.FracWidth + f.ExpWidth }

func (f FixedPointCircle) Tag() format.Tag { return format.TagFixedPointCircle }

func (f FixedPointCircle) AppendTo(buf []byte) []byte {
	buf = append(buf, byte(f.Tag()))
	buf = append(buf, byte(format.MarkerForWidth(f.FracWidth)), byte(format.MarkerForWidth(f.ExpWidth)))

	return append(buf, f.Raw...)
}

// DecodeFixedPointCircle decodes the bytes following a 'c' tag.
func DecodeFixedPointCircle(data []byte) (FixedPointCircle, int, error) {
	if len(data) < 2 {
		return FixedPointCircle{}, 0, errs.ErrUnexpectedEOF
	}
	fracWidth := format.Marker(data[0]).Width()
	expWidth := format.Marker(data[1]).Width()
	if fracWidth == 0 || expWidth == 0 {
		return FixedPointCircle{}, 0, errs.ErrInvalidSizeMarker
	}
	need := 2 + fracWidth + expWidth
	if len(data) < need {
		return FixedPointCircle{}, 0, errs.ErrUnexpectedEOF
	}

	return FixedPointCircle{FracWidth: fracWidth, ExpWidth: expWidth, Raw: append([]byte(nil), data[2:need]...)}, need, nil
}
