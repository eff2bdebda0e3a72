package meta

import (
	"github.com/nickspiker/vsf-sub001/errs"
	"github.com/nickspiker/vsf-sub001/format"
	"github.com/nickspiker/vsf-sub001/numcodec"
)

// cryptoField is the shared wire shape of Hash, Signature, Key, and MAC:
// an algorithm byte, a var-uint length in bits, and ceil(bits/8) payload
// bytes. Length is stored in bits (not bytes) for forward compatibility
// with algorithms whose output isn't a whole number of bytes; this codec
// always rounds up to whole bytes on decode.
type cryptoField struct {
	Algo    format.Algorithm
	Payload []byte
}

func appendCryptoField(buf []byte, tag format.Tag, f cryptoField) []byte {
	buf = append(buf, byte(tag))
	buf = append(buf, byte(f.Algo))
	lengthBits := uint64(len(f.Payload)) * 8
	buf = numcodec.AppendUint(buf, lengthBits)

	return append(buf, f.Payload...)
}

func decodeCryptoField(data []byte) (cryptoField, int, error) {
	if len(data) < 1 {
		return cryptoField{}, 0, errs.ErrUnexpectedEOF
	}
	algo := format.Algorithm(data[0])

	lengthBits, consumed, err := numcodec.DecodeUint(data[1:])
	if err != nil {
		return cryptoField{}, 0, err
	}
	payloadLen := int((lengthBits + 7) / 8)

	start := 1 + consumed
	end := start + payloadLen
	if len(data) < end {
		return cryptoField{}, 0, errs.ErrUnexpectedEOF
	}

	payload := make([]byte, payloadLen)
	copy(payload, data[start:end])

	return cryptoField{Algo: algo, Payload: payload}, end, nil
}

// Hash carries a digest under a declared algorithm (e.g. BLAKE3, SHA256).
type Hash struct {
	Algo    format.Algorithm
	Payload []byte
}

func NewHash(algo format.Algorithm, payload []byte) Hash {
	return Hash{Algo: algo, Payload: payload}
}

func (h Hash) Tag() format.Tag { return format.TagHash }

func (h Hash) AppendTo(buf []byte) []byte {
	return appendCryptoField(buf, format.TagHash, cryptoField{Algo: h.Algo, Payload: h.Payload})
}

// DecodeHash decodes the bytes following an 'h' tag.
func DecodeHash(data []byte) (Hash, int, error) {
	f, consumed, err := decodeCryptoField(data)
	if err != nil {
		return Hash{}, 0, err
	}

	return Hash{Algo: f.Algo, Payload: f.Payload}, consumed, nil
}

// Signature carries a digital signature under a declared algorithm (e.g.
// Ed25519).
type Signature struct {
	Algo    format.Algorithm
	Payload []byte
}

func NewSignature(algo format.Algorithm, payload []byte) Signature {
	return Signature{Algo: algo, Payload: payload}
}

func (s Signature) Tag() format.Tag { return format.TagSignature }

func (s Signature) AppendTo(buf []byte) []byte {
	return appendCryptoField(buf, format.TagSignature, cryptoField{Algo: s.Algo, Payload: s.Payload})
}

// DecodeSignature decodes the bytes following a 'g' tag.
func DecodeSignature(data []byte) (Signature, int, error) {
	f, consumed, err := decodeCryptoField(data)
	if err != nil {
		return Signature{}, 0, err
	}

	return Signature{Algo: f.Algo, Payload: f.Payload}, consumed, nil
}

// Key carries key material under a declared algorithm.
type Key struct {
	Algo    format.Algorithm
	Payload []byte
}

func NewKey(algo format.Algorithm, payload []byte) Key {
	return Key{Algo: algo, Payload: payload}
}

func (k Key) Tag() format.Tag { return format.TagKey }

func (k Key) AppendTo(buf []byte) []byte {
	return appendCryptoField(buf, format.TagKey, cryptoField{Algo: k.Algo, Payload: k.Payload})
}

// DecodeKey decodes the bytes following a 'k' tag.
func DecodeKey(data []byte) (Key, int, error) {
	f, consumed, err := decodeCryptoField(data)
	if err != nil {
		return Key{}, 0, err
	}

	return Key{Algo: f.Algo, Payload: f.Payload}, consumed, nil
}

// MAC carries a message authentication code under a declared algorithm.
type MAC struct {
	Algo    format.Algorithm
	Payload []byte
}

func NewMAC(algo format.Algorithm, payload []byte) MAC {
	return MAC{Algo: algo, Payload: payload}
}

func (m MAC) Tag() format.Tag { return format.TagMAC }

func (m MAC) AppendTo(buf []byte) []byte {
	return appendCryptoField(buf, format.TagMAC, cryptoField{Algo: m.Algo, Payload: m.Payload})
}

// DecodeMAC decodes the bytes following an 'a' tag.
func DecodeMAC(data []byte) (MAC, int, error) {
	f, consumed, err := decodeCryptoField(data)
	if err != nil {
		return MAC{}, 0, err
	}

	return MAC{Algo: f.Algo, Payload: f.Payload}, consumed, nil
}
