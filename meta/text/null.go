package text

import "github.com/nickspiker/vsf-sub001/errs"

// NullCodec is the identity string codec: it stores UTF-8 bytes verbatim.
// Useful for debugging a container without pulling in Huffman decoding,
// and as the baseline the Huffman codec is measured against.
type NullCodec struct{}

func (NullCodec) Name() string { return "null" }

func (NullCodec) EncodeText(s string) []byte {
	return []byte(s)
}

func (NullCodec) DecodeTextWithSize(data []byte, charCount int) (string, int, error) {
	consumed := 0
	count := 0
	for consumed < len(data) && count < charCount {
		_, size := decodeRune(data[consumed:])
		if size == 0 {
			return "", 0, errs.ErrInvalidData
		}
		consumed += size
		count++
	}
	if count != charCount {
		return "", 0, errs.ErrUnexpectedEOF
	}

	return string(data[:consumed]), consumed, nil
}

// decodeRune returns the byte length of the UTF-8 rune starting at b[0],
// without allocating or requiring "unicode/utf8" import cycles elsewhere.
func decodeRune(b []byte) (rune, int) {
	if len(b) == 0 {
		return 0, 0
	}
	lead := b[0]
	switch {
	case lead < 0x80:
		return rune(lead), 1
	case lead&0xE0 == 0xC0:
		if len(b) < 2 {
			return 0, 0
		}
		return 0, 2
	case lead&0xF0 == 0xE0:
		if len(b) < 3 {
			return 0, 0
		}
		return 0, 3
	case lead&0xF8 == 0xF0:
		if len(b) < 4 {
			return 0, 0
		}
		return 0, 4
	default:
		return 0, 0
	}
}
