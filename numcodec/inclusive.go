package numcodec

import (
	"math/big"

	"github.com/nickspiker/vsf-sub001/errs"
)

// overheadBits returns adder(w) = 8 (outer type byte) + 8*width (one bit
// per bit of the value field) for a width in bytes, matching the
// overhead table in the VSF spec (16, 24, 40, 72, 136 bits for widths
// 1, 2, 4, 8, 16 bytes).
func overheadBits(width int) uint64 {
	return uint64(8 + 8*width)
}

// AppendInclusive encodes value in "inclusive" mode: the encoder picks the
// narrowest width w such that value+overheadBits(w) fits unsigned in w
// bytes, and emits that adjusted value. This is used only for
// self-referential length fields, where value is the byte count of some
// span that includes this very encoding's own bytes.
func AppendInclusive(buf []byte, value uint64) ([]byte, error) {
	for _, w := range Widths {
		adjusted := new(big.Int).Add(new(big.Int).SetUint64(value), new(big.Int).SetUint64(overheadBits(w)))
		if adjusted.Cmp(MaxUnsigned(w)) <= 0 {
			return AppendUintBig(buf, adjusted, w), nil
		}
	}

	return nil, errs.ErrOverflowForInclusive
}

// DecodeInclusive reverses AppendInclusive: it reads the marker and raw
// value, then subtracts the overhead implied by the chosen width to
// recover the original value.
func DecodeInclusive(data []byte) (uint64, int, error) {
	raw, consumed, err := DecodeUintBig(data)
	if err != nil {
		return 0, 0, err
	}

	width := consumed - 1
	overhead := overheadBits(width)
	if raw.Cmp(new(big.Int).SetUint64(overhead)) < 0 {
		return 0, 0, errs.ErrInvalidInclusive
	}

	value := new(big.Int).Sub(raw, new(big.Int).SetUint64(overhead))
	if !value.IsUint64() {
		return 0, 0, errs.ErrValueOutOfRange
	}

	return value.Uint64(), consumed, nil
}
