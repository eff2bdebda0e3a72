package container

import (
	"github.com/nickspiker/vsf-sub001/errs"
	"github.com/nickspiker/vsf-sub001/format"
	"github.com/nickspiker/vsf-sub001/meta"
)

// Label is a header entry mapping a section or unboxed blob name to its
// byte offset and size within the finalized file, plus a child count
// (always 0 in this port — the data model has no nested sections).
type Label struct {
	Name       string
	Offset     uint64
	Size       uint64
	ChildCount uint64
}

func (l Label) encode(buf []byte) ([]byte, error) {
	name, err := meta.NewDtypeName(l.Name)
	if err != nil {
		return nil, err
	}
	buf = append(buf, byte(format.TagFieldOpen))
	buf = name.AppendTo(buf)
	buf = meta.NewOffset(l.Offset).AppendTo(buf)
	buf = meta.NewLength(l.Size).AppendTo(buf)
	buf = meta.NewCount(l.ChildCount).AppendTo(buf)
	buf = append(buf, byte(format.TagFieldClose))

	return buf, nil
}

func decodeLabel(data []byte) (Label, int, error) {
	pos := 0
	if pos >= len(data) || format.Tag(data[pos]) != format.TagFieldOpen {
		return Label{}, 0, errs.ErrInvalidData
	}
	pos++

	if pos >= len(data) || format.Tag(data[pos]) != format.TagDtypeName {
		return Label{}, 0, errs.ErrInvalidData
	}
	pos++
	name, n, err := meta.DecodeDtypeName(data[pos:])
	if err != nil {
		return Label{}, 0, err
	}
	pos += n

	if pos >= len(data) || format.Tag(data[pos]) != format.TagOffset {
		return Label{}, 0, errs.ErrInvalidData
	}
	pos++
	offset, n, err := meta.DecodeOffset(data[pos:])
	if err != nil {
		return Label{}, 0, err
	}
	pos += n

	if pos >= len(data) || format.Tag(data[pos]) != format.TagLength {
		return Label{}, 0, errs.ErrInvalidData
	}
	pos++
	size, n, err := meta.DecodeLength(data[pos:])
	if err != nil {
		return Label{}, 0, err
	}
	pos += n

	if pos >= len(data) || format.Tag(data[pos]) != format.TagCount {
		return Label{}, 0, errs.ErrInvalidData
	}
	pos++
	children, n, err := meta.DecodeCount(data[pos:])
	if err != nil {
		return Label{}, 0, err
	}
	pos += n

	if pos >= len(data) || format.Tag(data[pos]) != format.TagFieldClose {
		return Label{}, 0, errs.ErrInvalidData
	}
	pos++

	return Label{Name: name.V, Offset: offset.V, Size: size.V, ChildCount: children.V}, pos, nil
}
