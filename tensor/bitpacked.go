package tensor

import (
	"github.com/nickspiker/vsf-sub001/errs"
	"github.com/nickspiker/vsf-sub001/format"
	"github.com/nickspiker/vsf-sub001/numcodec"
)

// BitPacked is an N-dimensional tensor whose samples occupy an arbitrary
// bit width from 1 to 256 bits, packed MSB-first in row-major order with
// no padding between samples (only at the very end of the byte buffer).
//
// Samples are carried as uint64; for BitDepth > 64 the high bits are
// implicitly zero, so no sample can exceed 64 significant bits
// regardless of declared depth.
type BitPacked struct {
	BitDepth int // 1..256
	Shape    []int
	Samples  []uint64 // row-major, len == product(Shape)
}

// NewBitPacked validates bit depth, shape, and every sample against the
// declared bit depth, returning ErrSampleOutOfRange if any sample
// overflows (for BitDepth < 64; BitDepth >= 64 always accepts any uint64).
func NewBitPacked(bitDepth int, shape []int, samples []uint64) (BitPacked, error) {
	if bitDepth < 1 || bitDepth > 256 {
		return BitPacked{}, errs.ErrInvalidTensor
	}
	n, err := elementCount(shape)
	if err != nil {
		return BitPacked{}, err
	}
	if n != len(samples) {
		return BitPacked{}, errs.ErrInvalidTensor
	}
	if bitDepth < 64 {
		max := uint64(1)<<uint(bitDepth) - 1
		for _, s := range samples {
			if s > max {
				return BitPacked{}, errs.ErrSampleOutOfRange
			}
		}
	}

	return BitPacked{BitDepth: bitDepth, Shape: append([]int(nil), shape...), Samples: append([]uint64(nil), samples...)}, nil
}

func (b BitPacked) Tag() format.Tag { return format.TagBitPacked }

// PackedLen returns the number of packed bytes, ceil(product(shape)*depth/8).
func (b BitPacked) PackedLen() int {
	totalBits := len(b.Samples) * b.BitDepth

	return (totalBits + 7) / 8
}

func (b BitPacked) AppendTo(buf []byte) []byte {
	buf = append(buf, byte(format.TagBitPacked))
	buf = numcodec.AppendUint(buf, uint64(len(b.Shape)))

	depthByte := byte(b.BitDepth)
	if b.BitDepth == 256 {
		depthByte = 0
	}
	buf = append(buf, depthByte)

	for _, s := range b.Shape {
		buf = numcodec.AppendUint(buf, uint64(s))
	}

	packed := make([]byte, b.PackedLen())
	packBits(packed, b.Samples, b.BitDepth)

	return append(buf, packed...)
}

// packBits writes each sample's BitDepth bits, MSB-first, into dst starting
// at bit offset 0, with bit 7 of dst[0] written first.
func packBits(dst []byte, samples []uint64, bitDepth int) {
	bitOffset := 0
	for _, sample := range samples {
		for bit := bitDepth - 1; bit >= 0; bit-- {
			if bit < 64 && (sample>>uint(bit))&1 == 1 {
				byteIdx := bitOffset / 8
				bitInByte := 7 - (bitOffset % 8)
				dst[byteIdx] |= 1 << uint(bitInByte)
			}
			bitOffset++
		}
	}
}

// unpackBits reverses packBits, reading n samples of bitDepth bits each.
func unpackBits(src []byte, n, bitDepth int) []uint64 {
	samples := make([]uint64, n)
	bitOffset := 0
	for i := 0; i < n; i++ {
		var v uint64
		for bit := bitDepth - 1; bit >= 0; bit-- {
			byteIdx := bitOffset / 8
			bitInByte := 7 - (bitOffset % 8)
			set := (src[byteIdx]>>uint(bitInByte))&1 == 1
			if set && bit < 64 {
				v |= 1 << uint(bit)
			}
			bitOffset++
		}
		samples[i] = v
	}

	return samples
}

// DecodeBitPacked parses the bytes following a 'p' tag.
func DecodeBitPacked(data []byte) (BitPacked, int, error) {
	shapeCount, consumed, err := numcodec.DecodeUint(data)
	if err != nil {
		return BitPacked{}, 0, err
	}
	pos := consumed

	if len(data) < pos+1 {
		return BitPacked{}, 0, errs.ErrUnexpectedEOF
	}
	bitDepth := int(data[pos])
	if bitDepth == 0 {
		bitDepth = 256
	}
	pos++

	shape := make([]int, shapeCount)
	for i := range shape {
		v, n, err := numcodec.DecodeUint(data[pos:])
		if err != nil {
			return BitPacked{}, 0, err
		}
		shape[i] = int(v)
		pos += n
	}

	n, err := elementCount(shape)
	if err != nil {
		return BitPacked{}, 0, err
	}

	totalBits := n * bitDepth
	dataBytes := (totalBits + 7) / 8
	if len(data) < pos+dataBytes {
		return BitPacked{}, 0, errs.ErrUnexpectedEOF
	}

	samples := unpackBits(data[pos:pos+dataBytes], n, bitDepth)
	pos += dataBytes

	return BitPacked{BitDepth: bitDepth, Shape: shape, Samples: samples}, pos, nil
}

// elementCount returns product(shape), validating every dimension is >= 1.
func elementCount(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, errs.ErrInvalidTensor
	}
	n := 1
	for _, s := range shape {
		if s < 1 {
			return 0, errs.ErrInvalidTensor
		}
		n *= s
	}

	return n, nil
}
