package section

import (
	"github.com/nickspiker/vsf-sub001/errs"
	"github.com/nickspiker/vsf-sub001/format"
	"github.com/nickspiker/vsf-sub001/meta"
	"github.com/nickspiker/vsf-sub001/value"
)

// ValueDecoder decodes one Value starting at the front of data, returning
// the decoded Value and the number of bytes consumed. The parse package
// supplies the type-byte dispatcher (callers pass parse.Decode); section
// only depends on the function shape, not on the parse package.
type ValueDecoder func(data []byte) (value.Value, int, error)

// Decode parses a section's wire bytes ({preamble}[body]) using decode
// to interpret each field's value.
func Decode(data []byte, decode ValueDecoder) (*Section, int, error) {
	pos := 0

	if pos >= len(data) || format.Tag(data[pos]) != format.TagSectionOpen {
		return nil, 0, errs.ErrInvalidData
	}
	pos++

	if pos >= len(data) || format.Tag(data[pos]) != format.TagCount {
		return nil, 0, errs.ErrInvalidData
	}
	pos++
	count, n, err := decodeVarUint(data[pos:])
	if err != nil {
		return nil, 0, err
	}
	pos += n

	if pos >= len(data) || format.Tag(data[pos]) != format.TagLength {
		return nil, 0, errs.ErrInvalidData
	}
	pos++
	_, n, err = decodePreambleSize(data[pos:])
	if err != nil {
		return nil, 0, err
	}
	pos += n

	s := &Section{}

	for pos < len(data) && format.Tag(data[pos]) == format.TagHash {
		pos++
		h, n, err := meta.DecodeHash(data[pos:])
		if err != nil {
			return nil, 0, err
		}
		s.Hash = &h
		pos += n
	}
	for pos < len(data) && format.Tag(data[pos]) == format.TagSignature {
		pos++
		sig, n, err := meta.DecodeSignature(data[pos:])
		if err != nil {
			return nil, 0, err
		}
		s.Signature = &sig
		pos += n
	}

	if pos >= len(data) || format.Tag(data[pos]) != format.TagSectionClose {
		return nil, 0, errs.ErrInvalidData
	}
	pos++

	if pos >= len(data) || format.Tag(data[pos]) != format.TagBodyOpen {
		return nil, 0, errs.ErrInvalidData
	}
	pos++

	if pos >= len(data) || format.Tag(data[pos]) != format.TagDtypeName {
		return nil, 0, errs.ErrInvalidData
	}
	pos++
	sectionName, n, err := meta.DecodeDtypeName(data[pos:])
	if err != nil {
		return nil, 0, err
	}
	s.Name = sectionName.V
	pos += n

	for i := uint64(0); i < count; i++ {
		if pos >= len(data) || format.Tag(data[pos]) != format.TagFieldOpen {
			return nil, 0, errs.ErrInvalidData
		}
		pos++

		if pos >= len(data) || format.Tag(data[pos]) != format.TagDtypeName {
			return nil, 0, errs.ErrInvalidData
		}
		pos++
		fieldName, n, err := meta.DecodeDtypeName(data[pos:])
		if err != nil {
			return nil, 0, err
		}
		pos += n

		if pos >= len(data) || format.Tag(data[pos]) != format.TagFieldSep {
			return nil, 0, errs.ErrInvalidData
		}
		pos++

		v, n, err := decode(data[pos:])
		if err != nil {
			return nil, 0, err
		}
		pos += n

		if pos >= len(data) || format.Tag(data[pos]) != format.TagFieldClose {
			return nil, 0, errs.ErrInvalidData
		}
		pos++

		s.Fields = append(s.Fields, Field{Name: fieldName.V, Value: v})
	}

	if pos >= len(data) || format.Tag(data[pos]) != format.TagBodyClose {
		return nil, 0, errs.ErrInvalidData
	}
	pos++

	return s, pos, nil
}
