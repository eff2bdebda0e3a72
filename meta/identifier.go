// Package meta implements the VSF metadata value family: strings (via the
// pluggable codec in meta/text), identifier-ish values (dtype name, label),
// Eagle Time, WorldCoord, the structural scalars (offset, length, count,
// version, backward-version, marker definition, marker reference), and the
// cryptographic fields (hash, signature, key, MAC).
package meta

import (
	"github.com/nickspiker/vsf-sub001/errs"
	"github.com/nickspiker/vsf-sub001/format"
	"github.com/nickspiker/vsf-sub001/numcodec"
)

// DtypeName is an ASCII-only, length-prefixed identifier naming an element
// or field's declared type.
type DtypeName struct {
	V string
}

func NewDtypeName(s string) (DtypeName, error) {
	if !isASCII(s) {
		return DtypeName{}, errs.ErrInvalidData
	}

	return DtypeName{V: s}, nil
}

func (d DtypeName) Tag() format.Tag { return format.TagDtypeName }

func (d DtypeName) AppendTo(buf []byte) []byte {
	buf = append(buf, byte(format.TagDtypeName))
	buf = numcodec.AppendUint(buf, uint64(len(d.V)))

	return append(buf, d.V...)
}

// DecodeDtypeName decodes the bytes following a 'd' tag.
func DecodeDtypeName(data []byte) (DtypeName, int, error) {
	s, consumed, err := decodeASCIIString(data)
	if err != nil {
		return DtypeName{}, 0, err
	}

	return DtypeName{V: s}, consumed, nil
}

// Label is an ASCII-only, length-prefixed free-form name, encoded with the
// same wire shape as DtypeName but a different tag.
type Label struct {
	V string
}

func NewLabel(s string) (Label, error) {
	if !isASCII(s) {
		return Label{}, errs.ErrInvalidData
	}

	return Label{V: s}, nil
}

func (l Label) Tag() format.Tag { return format.TagLabel }

func (l Label) AppendTo(buf []byte) []byte {
	buf = append(buf, byte(format.TagLabel))
	buf = numcodec.AppendUint(buf, uint64(len(l.V)))

	return append(buf, l.V...)
}

// DecodeLabel decodes the bytes following an 'l' tag.
func DecodeLabel(data []byte) (Label, int, error) {
	s, consumed, err := decodeASCIIString(data)
	if err != nil {
		return Label{}, 0, err
	}

	return Label{V: s}, consumed, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return false
		}
	}

	return true
}

func decodeASCIIString(data []byte) (string, int, error) {
	length, consumed, err := numcodec.DecodeUint(data)
	if err != nil {
		return "", 0, err
	}
	end := consumed + int(length)
	if len(data) < end {
		return "", 0, errs.ErrUnexpectedEOF
	}
	raw := data[consumed:end]
	if !isASCII(string(raw)) {
		return "", 0, errs.ErrInvalidData
	}

	return string(raw), end, nil
}
