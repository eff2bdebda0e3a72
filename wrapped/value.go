package wrapped

import (
	"github.com/nickspiker/vsf-sub001/errs"
	"github.com/nickspiker/vsf-sub001/format"
)

// Value is the Wrapped VSF value: an algorithm byte followed by opaque
// encoded bytes. Because the wrapped payload carries no internal length
// field, a Value is only meaningful as the outermost (or sole) value in
// whatever byte range its container delimits — it always consumes every
// remaining byte offered to it.
type Value struct {
	Algo    format.Algorithm
	Payload []byte
}

// Wrap compresses raw with the codec for algo and returns the resulting
// Value.
func Wrap(algo format.Algorithm, raw []byte) (Value, error) {
	codec, err := CodecFor(algo)
	if err != nil {
		return Value{}, err
	}
	payload, err := codec.Compress(raw)
	if err != nil {
		return Value{}, err
	}

	return Value{Algo: algo, Payload: payload}, nil
}

// Unwrap decompresses v's payload back to the original bytes.
func (v Value) Unwrap() ([]byte, error) {
	codec, err := CodecFor(v.Algo)
	if err != nil {
		return nil, err
	}

	return codec.Decompress(v.Payload)
}

func (v Value) Tag() format.Tag { return format.TagWrapped }

func (v Value) AppendTo(buf []byte) []byte {
	buf = append(buf, byte(format.TagWrapped))
	buf = append(buf, byte(v.Algo))

	return append(buf, v.Payload...)
}

// Decode reads the algorithm byte and takes every remaining byte in data
// as the opaque payload, per the Wrapped value's self-delimiting
// contract (see Value's doc comment): the caller must have already
// sliced data to the exact range this Wrapped value occupies.
func Decode(data []byte) (Value, int, error) {
	if len(data) < 1 {
		return Value{}, 0, errs.ErrUnexpectedEOF
	}

	payload := make([]byte, len(data)-1)
	copy(payload, data[1:])

	return Value{Algo: format.Algorithm(data[0]), Payload: payload}, len(data), nil
}
