package tensor

import (
	"github.com/nickspiker/vsf-sub001/errs"
	"github.com/nickspiker/vsf-sub001/format"
	"github.com/nickspiker/vsf-sub001/numcodec"
)

// Tensor is a row-major contiguous tensor: a shape vector plus a flat
// element buffer. len(Data) must equal product(Shape) * Elem.Width().
type Tensor struct {
	Shape []int
	Elem  ElementType
	Data  []byte
}

// NewTensor validates ndim >= 1, every shape[i] >= 1, and that Data's
// length matches product(Shape) * Elem.Width().
func NewTensor(shape []int, elem ElementType, data []byte) (Tensor, error) {
	if len(shape) < 1 {
		return Tensor{}, errs.ErrInvalidTensor
	}
	n, err := elementCount(shape)
	if err != nil {
		return Tensor{}, err
	}
	if !elem.valid() {
		return Tensor{}, errs.ErrInvalidTensor
	}
	if len(data) != n*elem.Width() {
		return Tensor{}, errs.ErrInvalidTensor
	}

	return Tensor{Shape: append([]int(nil), shape...), Elem: elem, Data: append([]byte(nil), data...)}, nil
}

func (t Tensor) Tag() format.Tag { return format.TagTensor }

func (t Tensor) AppendTo(buf []byte) []byte {
	buf = append(buf, byte(format.TagTensor))
	buf = numcodec.AppendUint(buf, uint64(len(t.Shape)))
	buf = t.Elem.appendTo(buf)
	for _, s := range t.Shape {
		buf = numcodec.AppendUint(buf, uint64(s))
	}

	return append(buf, t.Data...)
}

// RowMajorStride returns the stride vector of this tensor's row-major
// layout, i.e. stride[i] = product(shape[i+1:]).
func (t Tensor) RowMajorStride() []int {
	stride := make([]int, len(t.Shape))
	acc := 1
	for i := len(t.Shape) - 1; i >= 0; i-- {
		stride[i] = acc
		acc *= t.Shape[i]
	}

	return stride
}

// DecodeTensor parses the bytes following a 't' tag.
func DecodeTensor(data []byte) (Tensor, int, error) {
	ndim, consumed, err := numcodec.DecodeUint(data)
	if err != nil {
		return Tensor{}, 0, err
	}
	pos := consumed

	elem, err := parseElementType(data[pos:])
	if err != nil {
		return Tensor{}, 0, err
	}
	pos += 2

	shape := make([]int, ndim)
	for i := range shape {
		v, n, err := numcodec.DecodeUint(data[pos:])
		if err != nil {
			return Tensor{}, 0, err
		}
		shape[i] = int(v)
		pos += n
	}

	n, err := elementCount(shape)
	if err != nil {
		return Tensor{}, 0, err
	}

	dataLen := n * elem.Width()
	if len(data) < pos+dataLen {
		return Tensor{}, 0, errs.ErrUnexpectedEOF
	}
	payload := append([]byte(nil), data[pos:pos+dataLen]...)
	pos += dataLen

	return Tensor{Shape: shape, Elem: elem, Data: payload}, pos, nil
}
