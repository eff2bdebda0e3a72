package tensor

import (
	"github.com/nickspiker/vsf-sub001/endian"
	"github.com/nickspiker/vsf-sub001/errs"
)

// WireEngine is the byte order used to pack/unpack typed Go slices into a
// Tensor's raw Data: big-endian, matching every other multi-byte field in
// the container (number codec, float bits, Dymaxion WorldCoord bytes).
var WireEngine endian.EndianEngine = endian.GetBigEndianEngine()

// NewTensorFromUint16 packs a row-major uint16 slice into a contiguous
// Tensor's Data using WireEngine, sparing callers from hand-rolling the
// byte packing themselves.
func NewTensorFromUint16(shape []int, samples []uint16) (Tensor, error) {
	n, err := elementCount(shape)
	if err != nil {
		return Tensor{}, err
	}
	if len(samples) != n {
		return Tensor{}, errs.ErrInvalidTensor
	}

	data := make([]byte, 0, n*2)
	for _, s := range samples {
		data = WireEngine.AppendUint16(data, s)
	}

	return NewTensor(shape, U16, data)
}

// Uint16Samples unpacks t.Data as a row-major uint16 slice using
// WireEngine. Returns ErrInvalidTensor if t.Elem isn't U16.
func (t Tensor) Uint16Samples() ([]uint16, error) {
	if t.Elem != U16 {
		return nil, errs.ErrInvalidTensor
	}
	n := len(t.Data) / 2
	out := make([]uint16, n)
	for i := 0; i < n; i++ {
		out[i] = WireEngine.Uint16(t.Data[i*2 : i*2+2])
	}

	return out, nil
}

// NewTensorFromUint32 packs a row-major uint32 slice into a contiguous
// Tensor's Data using WireEngine.
func NewTensorFromUint32(shape []int, samples []uint32) (Tensor, error) {
	n, err := elementCount(shape)
	if err != nil {
		return Tensor{}, err
	}
	if len(samples) != n {
		return Tensor{}, errs.ErrInvalidTensor
	}

	data := make([]byte, 0, n*4)
	for _, s := range samples {
		data = WireEngine.AppendUint32(data, s)
	}

	return NewTensor(shape, U32, data)
}

// Uint32Samples unpacks t.Data as a row-major uint32 slice using
// WireEngine. Returns ErrInvalidTensor if t.Elem isn't U32.
func (t Tensor) Uint32Samples() ([]uint32, error) {
	if t.Elem != U32 {
		return nil, errs.ErrInvalidTensor
	}
	n := len(t.Data) / 4
	out := make([]uint32, n)
	for i := 0; i < n; i++ {
		out[i] = WireEngine.Uint32(t.Data[i*4 : i*4+4])
	}

	return out, nil
}

// NewTensorFromUint64 packs a row-major uint64 slice into a contiguous
// Tensor's Data using WireEngine.
func NewTensorFromUint64(shape []int, samples []uint64) (Tensor, error) {
	n, err := elementCount(shape)
	if err != nil {
		return Tensor{}, err
	}
	if len(samples) != n {
		return Tensor{}, errs.ErrInvalidTensor
	}

	data := make([]byte, 0, n*8)
	for _, s := range samples {
		data = WireEngine.AppendUint64(data, s)
	}

	return NewTensor(shape, U64, data)
}

// Uint64Samples unpacks t.Data as a row-major uint64 slice using
// WireEngine. Returns ErrInvalidTensor if t.Elem isn't U64.
func (t Tensor) Uint64Samples() ([]uint64, error) {
	if t.Elem != U64 {
		return nil, errs.ErrInvalidTensor
	}
	n := len(t.Data) / 8
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		out[i] = WireEngine.Uint64(t.Data[i*8 : i*8+8])
	}

	return out, nil
}
