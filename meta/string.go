package meta

import (
	"github.com/nickspiker/vsf-sub001/errs"
	"github.com/nickspiker/vsf-sub001/format"
	"github.com/nickspiker/vsf-sub001/meta/text"
	"github.com/nickspiker/vsf-sub001/numcodec"
)

// DefaultCodec is the string codec used by String values constructed
// without an explicit codec: static Huffman codes built once from a
// frequency table.
var DefaultCodec text.Codec = text.HuffmanCodec{}

// String is Unicode text encoded via a pluggable text.Codec. The wire
// form is a char-count prefix (number of runes, not bytes) followed by
// the codec's bytes; decoding requires knowing which codec produced the
// bytes, since the wire form carries no codec-selector byte.
type String struct {
	V     string
	Codec text.Codec
}

// NewString constructs a String using DefaultCodec.
func NewString(s string) String {
	return String{V: s, Codec: DefaultCodec}
}

// NewStringWithCodec constructs a String using an explicit codec (e.g.
// text.NullCodec{} for debugging).
func NewStringWithCodec(s string, codec text.Codec) String {
	return String{V: s, Codec: codec}
}

func (s String) Tag() format.Tag { return format.TagString }

func (s String) AppendTo(buf []byte) []byte {
	codec := s.Codec
	if codec == nil {
		codec = DefaultCodec
	}

	buf = append(buf, byte(format.TagString))
	buf = numcodec.AppendUint(buf, uint64(len([]rune(s.V))))

	return append(buf, codec.EncodeText(s.V)...)
}

// DecodeString decodes the bytes following an 'x' tag using codec. Callers
// that don't track which codec a producer used should pass DefaultCodec.
func DecodeString(data []byte, codec text.Codec) (String, int, error) {
	if codec == nil {
		codec = DefaultCodec
	}

	charCount, consumed, err := numcodec.DecodeUint(data)
	if err != nil {
		return String{}, 0, err
	}
	if consumed > len(data) {
		return String{}, 0, errs.ErrUnexpectedEOF
	}

	s, bodyConsumed, err := codec.DecodeTextWithSize(data[consumed:], int(charCount))
	if err != nil {
		return String{}, 0, err
	}

	return String{V: s, Codec: codec}, consumed + bodyConsumed, nil
}
