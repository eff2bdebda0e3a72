package tensor

import (
	"github.com/nickspiker/vsf-sub001/errs"
	"github.com/nickspiker/vsf-sub001/format"
	"github.com/nickspiker/vsf-sub001/numcodec"
)

// Strided is a tensor with an explicit per-dimension stride vector. The
// decoder reports stride as declared; the producer owns the memory
// interpretation (overlapping or non-row-major views are legal).
type Strided struct {
	Shape  []int
	Stride []int
	Elem   ElementType
	Data   []byte
}

// NewStrided validates ndim >= 1, len(Stride) == len(Shape), every
// shape[i] >= 1, and that Data is at least as large as the span implied
// by shape and stride (1 + sum((shape[i]-1)*stride[i]) elements).
func NewStrided(shape, stride []int, elem ElementType, data []byte) (Strided, error) {
	if len(shape) < 1 || len(stride) != len(shape) {
		return Strided{}, errs.ErrInvalidTensor
	}
	if _, err := elementCount(shape); err != nil {
		return Strided{}, err
	}
	if !elem.valid() {
		return Strided{}, errs.ErrInvalidTensor
	}

	need := requiredSpan(shape, stride) * elem.Width()
	if len(data) < need {
		return Strided{}, errs.ErrInvalidTensor
	}

	return Strided{
		Shape:  append([]int(nil), shape...),
		Stride: append([]int(nil), stride...),
		Elem:   elem,
		Data:   append([]byte(nil), data...),
	}, nil
}

// IsContiguous reports whether Stride matches row-major layout for Shape.
func (s Strided) IsContiguous() bool {
	rowMajor := Tensor{Shape: s.Shape}.RowMajorStride()
	if len(rowMajor) != len(s.Stride) {
		return false
	}
	for i := range rowMajor {
		if rowMajor[i] != s.Stride[i] {
			return false
		}
	}

	return true
}

// requiredSpan returns the minimum element count spanned by shape+stride:
// 1 + sum((shape[i]-1)*stride[i]).
func requiredSpan(shape, stride []int) int {
	span := 1
	for i := range shape {
		span += (shape[i] - 1) * stride[i]
	}

	return span
}

func (s Strided) Tag() format.Tag { return format.TagStrided }

func (s Strided) AppendTo(buf []byte) []byte {
	buf = append(buf, byte(format.TagStrided))
	buf = numcodec.AppendUint(buf, uint64(len(s.Shape)))
	buf = s.Elem.appendTo(buf)
	for _, v := range s.Shape {
		buf = numcodec.AppendUint(buf, uint64(v))
	}
	for _, v := range s.Stride {
		buf = numcodec.AppendUint(buf, uint64(v))
	}

	return append(buf, s.Data...)
}

// DecodeStrided parses the bytes following a 'q' tag.
func DecodeStrided(data []byte) (Strided, int, error) {
	ndim, consumed, err := numcodec.DecodeUint(data)
	if err != nil {
		return Strided{}, 0, err
	}
	pos := consumed

	elem, err := parseElementType(data[pos:])
	if err != nil {
		return Strided{}, 0, err
	}
	pos += 2

	shape := make([]int, ndim)
	for i := range shape {
		v, n, err := numcodec.DecodeUint(data[pos:])
		if err != nil {
			return Strided{}, 0, err
		}
		shape[i] = int(v)
		pos += n
	}

	stride := make([]int, ndim)
	for i := range stride {
		v, n, err := numcodec.DecodeUint(data[pos:])
		if err != nil {
			return Strided{}, 0, err
		}
		stride[i] = int(v)
		pos += n
	}

	if _, err := elementCount(shape); err != nil {
		return Strided{}, 0, err
	}

	dataLen := requiredSpan(shape, stride) * elem.Width()
	if len(data) < pos+dataLen {
		return Strided{}, 0, errs.ErrUnexpectedEOF
	}
	payload := append([]byte(nil), data[pos:pos+dataLen]...)
	pos += dataLen

	return Strided{Shape: shape, Stride: stride, Elem: elem, Data: payload}, pos, nil
}
